// File: telemed/database/repository/appointment/appointmentMongoQueries.go
package appointmentRepo

import (
	"fmt"
	"time"

	"telemed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetByParty retrieves appointments where the user is the patient or the
// doctor, newest date first.
func (r *MongoAppointmentRepo) GetByParty(userID string) ([]models.Appointment, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$or": []bson.M{
		{"patient": userID},
		{"doctor": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}, {Key: "createdAt", Value: -1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve appointments for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var appts []models.Appointment
	if err := cursor.All(ctx, &appts); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return appts, nil
}

// SlotTaken reports whether a non-rejected appointment already holds the
// (doctor, date, time) slot.
func (r *MongoAppointmentRepo) SlotTaken(doctorID, date, timeLabel string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"doctor": doctorID,
		"date":   date,
		"time":   timeLabel,
		"status": bson.M{"$ne": models.AppointmentRejected},
	}
	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("failed to check slot occupancy: %w", err)
	}
	return count > 0, nil
}

// CompletePastApproved marks approved appointments dated strictly before the
// given "YYYY-MM-DD" date as completed.
func (r *MongoAppointmentRepo) CompletePastApproved(before string) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"status": models.AppointmentApproved,
		"date":   bson.M{"$lt": before},
	}
	update := bson.M{"$set": bson.M{"status": models.AppointmentCompleted, "updatedAt": time.Now()}}

	result, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, fmt.Errorf("failed to complete past appointments: %w", err)
	}
	return result.ModifiedCount, nil
}

// CountByFilter counts appointments matching the filter.
func (r *MongoAppointmentRepo) CountByFilter(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count appointments: %w", err)
	}
	return count, nil
}

// GroupByStatus returns appointment counts grouped by status.
func (r *MongoAppointmentRepo) GroupByStatus() ([]models.StatusCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group appointments by status: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode group counts: %w", err)
	}
	return counts, nil
}
