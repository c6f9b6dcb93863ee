package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoNurseryRepository is the data access layer for nursery batches.
type MongoNurseryRepository struct {
	collection *mongo.Collection
}

func NewMongoNurseryRepository(db *mongo.Database) *MongoNurseryRepository {
	return &MongoNurseryRepository{collection: db.Collection("nursery_batches")}
}

func (r *MongoNurseryRepository) Create(ctx context.Context, batch *models.NurseryBatch) error {
	if _, err := r.collection.InsertOne(ctx, batch); err != nil {
		return fmt.Errorf("insert nursery batch: %w", err)
	}
	return nil
}

func (r *MongoNurseryRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.NurseryBatch, error) {
	filter := notDeleted()
	filter["_id"] = id

	var batch models.NurseryBatch
	if err := r.collection.FindOne(ctx, filter).Decode(&batch); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find nursery batch: %w", err)
	}
	return &batch, nil
}

func (r *MongoNurseryRepository) FindAll(ctx context.Context) ([]*models.NurseryBatch, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, notDeleted(), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find nursery batches: %w", err)
	}
	defer cursor.Close(ctx)

	var batches []*models.NurseryBatch
	if err := cursor.All(ctx, &batches); err != nil {
		return nil, fmt.Errorf("decode nursery batches: %w", err)
	}
	return batches, nil
}

func (r *MongoNurseryRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update nursery batch: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoNurseryRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete nursery batch: %w", err)
	}
	return res.MatchedCount, nil
}
