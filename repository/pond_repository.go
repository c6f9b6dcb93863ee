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

// PondRepository is the data access layer for ponds.
type PondRepository interface {
	Create(ctx context.Context, pond *models.Pond) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Pond, error)
	FindAll(ctx context.Context) ([]*models.Pond, error)
	FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]*models.Pond, error)
	CountBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error)
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
}

type MongoPondRepository struct {
	collection *mongo.Collection
}

func NewMongoPondRepository(db *mongo.Database) *MongoPondRepository {
	return &MongoPondRepository{collection: db.Collection("ponds")}
}

func notDeleted() bson.M {
	return bson.M{"deleted_at": bson.M{"$exists": false}}
}

func (r *MongoPondRepository) Create(ctx context.Context, pond *models.Pond) error {
	if _, err := r.collection.InsertOne(ctx, pond); err != nil {
		return fmt.Errorf("insert pond: %w", err)
	}
	return nil
}

func (r *MongoPondRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Pond, error) {
	filter := notDeleted()
	filter["_id"] = id

	var pond models.Pond
	if err := r.collection.FindOne(ctx, filter).Decode(&pond); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find pond: %w", err)
	}
	return &pond, nil
}

func (r *MongoPondRepository) FindAll(ctx context.Context) ([]*models.Pond, error) {
	return r.find(ctx, notDeleted())
}

func (r *MongoPondRepository) FindBySeason(ctx context.Context, seasonID uuid.UUID) ([]*models.Pond, error) {
	filter := notDeleted()
	filter["season_id"] = seasonID
	return r.find(ctx, filter)
}

func (r *MongoPondRepository) find(ctx context.Context, filter bson.M) ([]*models.Pond, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("find ponds: %w", err)
	}
	defer cursor.Close(ctx)

	var ponds []*models.Pond
	if err := cursor.All(ctx, &ponds); err != nil {
		return nil, fmt.Errorf("decode ponds: %w", err)
	}
	return ponds, nil
}

func (r *MongoPondRepository) CountBySeason(ctx context.Context, seasonID uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["season_id"] = seasonID
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoPondRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update pond: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoPondRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete pond: %w", err)
	}
	return res.MatchedCount, nil
}
