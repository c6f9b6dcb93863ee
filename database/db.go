package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	MongoClient *mongo.Client
	DB          *mongo.Database
)

// ConnectWithConfig connects to MongoDB using the provided URI and database name.
func ConnectWithConfig(mongoURL, dbName string) error {
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOptions := options.Client().ApplyURI(mongoURL)

	client, err := mongo.Connect(timeoutCtx, clientOptions)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	if err := client.Ping(timeoutCtx, nil); err != nil {
		return fmt.Errorf("failed to ping MongoDB: %w", err)
	}
	MongoClient = client
	DB = client.Database(dbName)
	zap.L().Info("Connected to MongoDB", zap.String("database", dbName))
	return nil
}

// EnsureIndexes creates the indexes the repositories query against. Safe to
// call on every startup; Mongo treats existing definitions as no-ops.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		"inventory_adjustments": {
			{Keys: bson.D{{Key: "inventory_item_id", Value: 1}, {Key: "created_at", Value: 1}}},
			{Keys: bson.D{{Key: "adjustment_type", Value: 1}, {Key: "pond_id", Value: 1}}},
			{Keys: bson.D{{Key: "season_id", Value: 1}}},
		},
		"inventory_items": {
			{Keys: bson.D{{Key: "type", Value: 1}}},
			{Keys: bson.D{{Key: "is_active", Value: 1}}},
		},
		"ponds": {
			{Keys: bson.D{{Key: "season_id", Value: 1}}},
		},
		"expenses": {
			{Keys: bson.D{{Key: "season_id", Value: 1}, {Key: "date", Value: 1}}},
			{Keys: bson.D{{Key: "pond_id", Value: 1}}},
		},
		"water_quality_readings": {
			{Keys: bson.D{{Key: "pond_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		"feed_inputs": {
			{Keys: bson.D{{Key: "pond_id", Value: 1}, {Key: "date", Value: -1}}},
		},
		"nursery_batches": {
			{Keys: bson.D{{Key: "season_id", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}
	return nil
}

// Close disconnects from MongoDB.
func Close() error {
	disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer disconnectCancel()

	if err := MongoClient.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("failed to disconnect from MongoDB: %w", err)
	}

	zap.L().Info("Disconnected from MongoDB")
	return nil
}
