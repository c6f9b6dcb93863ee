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

// WaterQualityRepository is the data access layer for water quality readings.
type WaterQualityRepository interface {
	Create(ctx context.Context, reading *models.WaterQualityReading) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.WaterQualityReading, error)
	Find(ctx context.Context, filter models.WaterQualityFilter) ([]*models.WaterQualityReading, error)
	LatestForPond(ctx context.Context, pondID uuid.UUID) (*models.WaterQualityReading, error)
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
}

type MongoWaterQualityRepository struct {
	collection *mongo.Collection
}

func NewMongoWaterQualityRepository(db *mongo.Database) *MongoWaterQualityRepository {
	return &MongoWaterQualityRepository{collection: db.Collection("water_quality_readings")}
}

func waterQualityFilterQuery(f models.WaterQualityFilter) bson.M {
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

func (r *MongoWaterQualityRepository) Create(ctx context.Context, reading *models.WaterQualityReading) error {
	if _, err := r.collection.InsertOne(ctx, reading); err != nil {
		return fmt.Errorf("insert water quality reading: %w", err)
	}
	return nil
}

func (r *MongoWaterQualityRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.WaterQualityReading, error) {
	filter := notDeleted()
	filter["_id"] = id

	var reading models.WaterQualityReading
	if err := r.collection.FindOne(ctx, filter).Decode(&reading); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find water quality reading: %w", err)
	}
	return &reading, nil
}

func (r *MongoWaterQualityRepository) Find(ctx context.Context, filter models.WaterQualityFilter) ([]*models.WaterQualityReading, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, waterQualityFilterQuery(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find water quality readings: %w", err)
	}
	defer cursor.Close(ctx)

	var readings []*models.WaterQualityReading
	if err := cursor.All(ctx, &readings); err != nil {
		return nil, fmt.Errorf("decode water quality readings: %w", err)
	}
	return readings, nil
}

func (r *MongoWaterQualityRepository) LatestForPond(ctx context.Context, pondID uuid.UUID) (*models.WaterQualityReading, error) {
	filter := notDeleted()
	filter["pond_id"] = pondID

	findOptions := options.FindOne().SetSort(bson.D{{Key: "date", Value: -1}})
	var reading models.WaterQualityReading
	if err := r.collection.FindOne(ctx, filter, findOptions).Decode(&reading); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find latest reading: %w", err)
	}
	return &reading, nil
}

func (r *MongoWaterQualityRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update water quality reading: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoWaterQualityRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete water quality reading: %w", err)
	}
	return res.MatchedCount, nil
}
