// File: telemed/database/repository/user/userMongoQueries.go
package userRepo

import (
	"fmt"
	"time"

	"telemed/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAll retrieves all users.
func (r *MongoUserRepo) GetAll() ([]models.User, error) {
	return r.findAll(bson.M{}, nil)
}

// GetByRole retrieves all users holding the given role.
func (r *MongoUserRepo) GetByRole(role string) ([]models.User, error) {
	return r.findAll(bson.M{"role": role}, nil)
}

// GetRecent returns the latest registered users.
func (r *MongoUserRepo) GetRecent(limit int64) ([]models.User, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return r.findAll(bson.M{}, opts)
}

func (r *MongoUserRepo) findAll(filter bson.M, opts *options.FindOptions) ([]models.User, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// CountByFilter counts users matching the filter.
func (r *MongoUserRepo) CountByFilter(filter bson.M) (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// GroupByField returns counts of users grouped by the given field.
func (r *MongoUserRepo) GroupByField(field string) ([]models.StatusCount, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$group": bson.M{"_id": "$" + field, "count": bson.M{"$sum": 1}}},
		{"$sort": bson.M{"count": -1}},
	}
	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to group users by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	var counts []models.StatusCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode group counts: %w", err)
	}
	return counts, nil
}
