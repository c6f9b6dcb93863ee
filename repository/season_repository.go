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

// SeasonRepository is the data access layer for culture seasons.
type SeasonRepository interface {
	Create(ctx context.Context, season *models.Season) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Season, error)
	FindAll(ctx context.Context) ([]*models.Season, error)
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
}

type MongoSeasonRepository struct {
	collection *mongo.Collection
}

func NewMongoSeasonRepository(db *mongo.Database) *MongoSeasonRepository {
	return &MongoSeasonRepository{collection: db.Collection("seasons")}
}

func (r *MongoSeasonRepository) Create(ctx context.Context, season *models.Season) error {
	if _, err := r.collection.InsertOne(ctx, season); err != nil {
		return fmt.Errorf("insert season: %w", err)
	}
	return nil
}

func (r *MongoSeasonRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Season, error) {
	filter := notDeleted()
	filter["_id"] = id

	var season models.Season
	if err := r.collection.FindOne(ctx, filter).Decode(&season); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find season: %w", err)
	}
	return &season, nil
}

func (r *MongoSeasonRepository) FindAll(ctx context.Context) ([]*models.Season, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "start_date", Value: -1}})
	cursor, err := r.collection.Find(ctx, notDeleted(), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find seasons: %w", err)
	}
	defer cursor.Close(ctx)

	var seasons []*models.Season
	if err := cursor.All(ctx, &seasons); err != nil {
		return nil, fmt.Errorf("decode seasons: %w", err)
	}
	return seasons, nil
}

func (r *MongoSeasonRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update season: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoSeasonRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete season: %w", err)
	}
	return res.MatchedCount, nil
}
