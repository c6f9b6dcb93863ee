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

// FeedRepository is the data access layer for feed inputs.
type FeedRepository interface {
	Create(ctx context.Context, feed *models.FeedInput) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.FeedInput, error)
	Find(ctx context.Context, filter models.FeedFilter) ([]*models.FeedInput, error)
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
}

type MongoFeedRepository struct {
	collection *mongo.Collection
}

func NewMongoFeedRepository(db *mongo.Database) *MongoFeedRepository {
	return &MongoFeedRepository{collection: db.Collection("feed_inputs")}
}

func feedFilterQuery(f models.FeedFilter) bson.M {
	query := notDeleted()
	if f.PondID != nil {
		query["pond_id"] = *f.PondID
	}
	if f.SeasonID != nil {
		query["season_id"] = *f.SeasonID
	}
	dateRange := bson.M{}
	if f.From != nil {
		dateRange["$gte"] = *f.From
	}
	if f.To != nil {
		dateRange["$lte"] = *f.To
	}
	if len(dateRange) > 0 {
		query["date"] = dateRange
	}
	return query
}

func (r *MongoFeedRepository) Create(ctx context.Context, feed *models.FeedInput) error {
	if _, err := r.collection.InsertOne(ctx, feed); err != nil {
		return fmt.Errorf("insert feed input: %w", err)
	}
	return nil
}

func (r *MongoFeedRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.FeedInput, error) {
	filter := notDeleted()
	filter["_id"] = id

	var feed models.FeedInput
	if err := r.collection.FindOne(ctx, filter).Decode(&feed); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find feed input: %w", err)
	}
	return &feed, nil
}

func (r *MongoFeedRepository) Find(ctx context.Context, filter models.FeedFilter) ([]*models.FeedInput, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, feedFilterQuery(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find feed inputs: %w", err)
	}
	defer cursor.Close(ctx)

	var feeds []*models.FeedInput
	if err := cursor.All(ctx, &feeds); err != nil {
		return nil, fmt.Errorf("decode feed inputs: %w", err)
	}
	return feeds, nil
}

func (r *MongoFeedRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update feed input: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoFeedRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete feed input: %w", err)
	}
	return res.MatchedCount, nil
}
