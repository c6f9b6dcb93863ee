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

// ExpenseRepository is the data access layer for expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	Find(ctx context.Context, filter models.ExpenseFilter) ([]*models.Expense, error)
	Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (int64, error)
	TotalByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error)
}

type MongoExpenseRepository struct {
	collection *mongo.Collection
}

func NewMongoExpenseRepository(db *mongo.Database) *MongoExpenseRepository {
	return &MongoExpenseRepository{collection: db.Collection("expenses")}
}

func expenseFilterQuery(f models.ExpenseFilter) bson.M {
	query := notDeleted()
	if f.SeasonID != nil {
		query["season_id"] = *f.SeasonID
	}
	if f.PondID != nil {
		query["pond_id"] = *f.PondID
	}
	if f.Category != "" {
		query["category"] = f.Category
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

func (r *MongoExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	if _, err := r.collection.InsertOne(ctx, expense); err != nil {
		return fmt.Errorf("insert expense: %w", err)
	}
	return nil
}

func (r *MongoExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	filter := notDeleted()
	filter["_id"] = id

	var expense models.Expense
	if err := r.collection.FindOne(ctx, filter).Decode(&expense); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find expense: %w", err)
	}
	return &expense, nil
}

func (r *MongoExpenseRepository) Find(ctx context.Context, filter models.ExpenseFilter) ([]*models.Expense, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cursor, err := r.collection.Find(ctx, expenseFilterQuery(filter), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find expenses: %w", err)
	}
	defer cursor.Close(ctx)

	var expenses []*models.Expense
	if err := cursor.All(ctx, &expenses); err != nil {
		return nil, fmt.Errorf("decode expenses: %w", err)
	}
	return expenses, nil
}

func (r *MongoExpenseRepository) Update(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id
	updates["updated_at"] = time.Now().UTC()

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": updates})
	if err != nil {
		return 0, fmt.Errorf("update expense: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoExpenseRepository) SoftDelete(ctx context.Context, id uuid.UUID) (int64, error) {
	filter := notDeleted()
	filter["_id"] = id

	res, err := r.collection.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"deleted_at": time.Now().UTC()}})
	if err != nil {
		return 0, fmt.Errorf("soft delete expense: %w", err)
	}
	return res.MatchedCount, nil
}

// TotalByCategory is a read-side rollup used by the dashboards.
func (r *MongoExpenseRepository) TotalByCategory(ctx context.Context, filter models.ExpenseFilter) ([]models.CategoryTotal, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: expenseFilterQuery(filter)}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category",
			"total": bson.M{"$sum": "$amount"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate expense totals: %w", err)
	}
	defer cursor.Close(ctx)

	var totals []models.CategoryTotal
	if err := cursor.All(ctx, &totals); err != nil {
		return nil, fmt.Errorf("decode expense totals: %w", err)
	}
	return totals, nil
}
