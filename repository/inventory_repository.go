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

// ErrNotFound is returned when a referenced document does not exist.
var ErrNotFound = errors.New("document not found")

// StockFilter narrows the current-stock projection.
type StockFilter struct {
	ItemType models.ItemType
	ItemName string
}

// UsageFilter narrows the usage rollup.
type UsageFilter struct {
	SeasonID *uuid.UUID
	PondID   *uuid.UUID
	ItemType models.ItemType
	ItemName string
}

// InventoryRepository is the data access layer for the item catalog and the
// append-only adjustment ledger.
type InventoryRepository interface {
	CreateItem(ctx context.Context, item *models.InventoryItem) error
	FindItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	ListItems(ctx context.Context, includeInactive bool) ([]*models.InventoryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error)
	SoftDeleteItem(ctx context.Context, id uuid.UUID) (int64, error)

	AppendAdjustment(ctx context.Context, adj *models.InventoryAdjustment) error
	AdjustmentsForItem(ctx context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error)
	CurrentQuantity(ctx context.Context, itemID uuid.UUID) (float64, error)
	StockLevels(ctx context.Context, filter StockFilter) ([]models.StockLevel, error)
	UsageSummary(ctx context.Context, filter UsageFilter) ([]models.UsageSummaryRow, error)
}

// MongoInventoryRepository implements InventoryRepository on two collections:
// inventory_items (catalog) and inventory_adjustments (ledger).
type MongoInventoryRepository struct {
	items       *mongo.Collection
	adjustments *mongo.Collection
}

func NewMongoInventoryRepository(db *mongo.Database) *MongoInventoryRepository {
	return &MongoInventoryRepository{
		items:       db.Collection("inventory_items"),
		adjustments: db.Collection("inventory_adjustments"),
	}
}

func (r *MongoInventoryRepository) CreateItem(ctx context.Context, item *models.InventoryItem) error {
	if _, err := r.items.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert inventory item: %w", err)
	}
	return nil
}

// FindItemByID returns the item regardless of its active flag. Ledger
// validation needs to see inactive items to reject them distinctly from
// missing ones.
func (r *MongoInventoryRepository) FindItemByID(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := r.items.FindOne(ctx, bson.M{"_id": id}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find inventory item: %w", err)
	}
	return &item, nil
}

func (r *MongoInventoryRepository) ListItems(ctx context.Context, includeInactive bool) ([]*models.InventoryItem, error) {
	filter := bson.M{}
	if !includeInactive {
		filter["is_active"] = true
	}

	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.items.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list inventory items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []*models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("decode inventory items: %w", err)
	}
	return items, nil
}

func (r *MongoInventoryRepository) UpdateItem(ctx context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	updates["updated_at"] = time.Now().UTC()
	res, err := r.items.UpdateOne(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": updates},
	)
	if err != nil {
		return 0, fmt.Errorf("update inventory item: %w", err)
	}
	return res.MatchedCount, nil
}

// SoftDeleteItem flips the item inactive. Adjustments referencing it stay in
// the ledger untouched.
func (r *MongoInventoryRepository) SoftDeleteItem(ctx context.Context, id uuid.UUID) (int64, error) {
	now := time.Now().UTC()
	res, err := r.items.UpdateOne(ctx,
		bson.M{"_id": id, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false, "deleted_at": now, "updated_at": now}},
	)
	if err != nil {
		return 0, fmt.Errorf("soft delete inventory item: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoInventoryRepository) AppendAdjustment(ctx context.Context, adj *models.InventoryAdjustment) error {
	if _, err := r.adjustments.InsertOne(ctx, adj); err != nil {
		return fmt.Errorf("append inventory adjustment: %w", err)
	}
	return nil
}

func (r *MongoInventoryRepository) AdjustmentsForItem(ctx context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cursor, err := r.adjustments.Find(ctx, bson.M{"inventory_item_id": itemID}, findOptions)
	if err != nil {
		return nil, fmt.Errorf("list adjustments: %w", err)
	}
	defer cursor.Close(ctx)

	var adjustments []*models.InventoryAdjustment
	if err := cursor.All(ctx, &adjustments); err != nil {
		return nil, fmt.Errorf("decode adjustments: %w", err)
	}
	return adjustments, nil
}

// CurrentQuantity sums the item's ledger rows. It is recomputed on every
// call; there is no stored counter to drift from the history.
func (r *MongoInventoryRepository) CurrentQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"inventory_item_id": itemID}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$quantity_change"},
		}}},
	}

	cursor, err := r.adjustments.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("aggregate current quantity: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Total float64 `bson:"total"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("decode current quantity: %w", err)
	}
	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Total, nil
}

// StockLevels joins the active catalog with the ledger sum per item.
func (r *MongoInventoryRepository) StockLevels(ctx context.Context, filter StockFilter) ([]models.StockLevel, error) {
	match := bson.M{"is_active": true}
	if filter.ItemType != "" {
		match["type"] = filter.ItemType
	}
	if filter.ItemName != "" {
		match["name.en"] = bson.M{"$regex": filter.ItemName, "$options": "i"}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "inventory_adjustments",
			"localField":   "_id",
			"foreignField": "inventory_item_id",
			"as":           "adjustments",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"current_quantity": bson.M{"$sum": "$adjustments.quantity_change"},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"low_stock": bson.M{"$and": bson.A{
				bson.M{"$gt": bson.A{"$low_stock_threshold", 0}},
				bson.M{"$lte": bson.A{"$current_quantity", "$low_stock_threshold"}},
			}},
		}}},
		{{Key: "$project", Value: bson.M{"adjustments": 0}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
	}

	cursor, err := r.items.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate stock levels: %w", err)
	}
	defer cursor.Close(ctx)

	var levels []models.StockLevel
	if err := cursor.All(ctx, &levels); err != nil {
		return nil, fmt.Errorf("decode stock levels: %w", err)
	}
	return levels, nil
}

// UsageSummary groups usage-type ledger rows by pond and item and costs them
// at the item's unit price. Usage rows carry negative quantity changes, so
// the totals are negated to report consumption as positive numbers.
func (r *MongoInventoryRepository) UsageSummary(ctx context.Context, filter UsageFilter) ([]models.UsageSummaryRow, error) {
	match := bson.M{"adjustment_type": models.AdjustmentUsage}
	if filter.PondID != nil {
		match["pond_id"] = *filter.PondID
	}
	if filter.SeasonID != nil {
		match["season_id"] = *filter.SeasonID
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"pond_id":           "$pond_id",
				"inventory_item_id": "$inventory_item_id",
			},
			"net_change": bson.M{"$sum": "$quantity_change"},
		}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "inventory_items",
			"localField":   "_id.inventory_item_id",
			"foreignField": "_id",
			"as":           "item",
		}}},
		{{Key: "$unwind", Value: "$item"}},
	}

	itemMatch := bson.M{}
	if filter.ItemType != "" {
		itemMatch["item.type"] = filter.ItemType
	}
	if filter.ItemName != "" {
		itemMatch["item.name.en"] = bson.M{"$regex": filter.ItemName, "$options": "i"}
	}
	if len(itemMatch) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: itemMatch}})
	}

	pipeline = append(pipeline,
		bson.D{{Key: "$project", Value: bson.M{
			"_id":                 0,
			"pond_id":             "$_id.pond_id",
			"inventory_item_id":   "$_id.inventory_item_id",
			"item_name":           "$item.name",
			"item_type":           "$item.type",
			"unit":                "$item.unit",
			"total_quantity_used": bson.M{"$multiply": bson.A{"$net_change", -1}},
			"total_cost_used":     bson.M{"$multiply": bson.A{"$net_change", -1, "$item.cost_per_unit"}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "pond_id", Value: 1}, {Key: "inventory_item_id", Value: 1}}}},
	)

	cursor, err := r.adjustments.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate usage summary: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []models.UsageSummaryRow
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode usage summary: %w", err)
	}
	return rows, nil
}
