package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"telemed/database"
	"telemed/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new AvailabilityRepository backed by MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.Collection("availability")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes enforces one availability document per doctor.
func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByDoctorID retrieves a doctor's availability set.
func (r *MongoAvailabilityRepo) GetByDoctorID(doctorID string) (*models.DoctorAvailability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var availability models.DoctorAvailability
	err := r.coll.FindOne(ctx, bson.M{"doctorId": doctorID}).Decode(&availability)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for doctor %s: %w", doctorID, err)
	}
	return &availability, nil
}

// Replace stores the given set as the doctor's availability (upsert).
func (r *MongoAvailabilityRepo) Replace(availability *models.DoctorAvailability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if availability.ID == "" {
		availability.ID = uuid.New().String()
	}
	availability.UpdatedAt = time.Now()

	filter := bson.M{"doctorId": availability.DoctorID}
	update := bson.M{"$set": bson.M{
		"id":        availability.ID,
		"doctorId":  availability.DoctorID,
		"days":      availability.Days,
		"updatedAt": availability.UpdatedAt,
	}}
	opts := options.Update().SetUpsert(true)

	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to replace availability for doctor %s: %w", availability.DoctorID, err)
	}
	return nil
}

// DeleteByDoctorID removes a doctor's availability set.
func (r *MongoAvailabilityRepo) DeleteByDoctorID(doctorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"doctorId": doctorID}); err != nil {
		return fmt.Errorf("failed to delete availability for doctor %s: %w", doctorID, err)
	}
	return nil
}
