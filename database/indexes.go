package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EnsureUserIndexes creates the unique email index the registration
// flow relies on: the duplicate-key error it produces is what gets
// translated into the "already exists" response.
func EnsureUserIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	emailIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName("email_unique").
			SetUnique(true),
	}

	_, err := db.Collection("users").Indexes().CreateOne(ctx, emailIndex)
	return err
}

func EnsureHotelIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "ownerId", Value: 1}},
			Options: options.Index().SetName("ownerId_index"),
		},
		{
			Keys:    bson.D{{Key: "lastUpdated", Value: -1}},
			Options: options.Index().SetName("lastUpdated_index"),
		},
	}

	_, err := db.Collection("hotels").Indexes().CreateMany(ctx, indexes)
	return err
}
