package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes backing the duplicate checks.
// Safe to call on every startup; index creation is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	specs := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		clientsCollection: {
			{Keys: bson.D{{Key: "passport_number", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "phone", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		guidesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "user_id", Value: 1}}, Options: unique},
		},
		countriesCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "region", Value: 1}}, Options: unique},
		},
		toursCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "country_id", Value: 1}}},
			{Keys: bson.D{{Key: "guide_id", Value: 1}}},
		},
		bookingsCollection: {
			{Keys: bson.D{{Key: "tour_id", Value: 1}, {Key: "client_id", Value: 1}, {Key: "booking_date", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "client_id", Value: 1}}},
		},
	}

	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes for %s: %w", coll, err)
		}
	}
	return nil
}
