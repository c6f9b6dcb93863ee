package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

var (
	// ErrItemNotFound is returned when an adjustment references a missing item.
	ErrItemNotFound = errors.New("inventory item not found")
	// ErrItemInactive is returned when an adjustment references a soft-deleted
	// item. Existing adjustments of such items stay valid; new ones are refused.
	ErrItemInactive = errors.New("inventory item is inactive")
	// ErrZeroQuantity is returned when an adjustment would not change stock.
	ErrZeroQuantity = errors.New("quantity change must be non-zero")
)

// AggregationParams narrows the aggregated inventory projection.
type AggregationParams struct {
	SeasonID *uuid.UUID
	PondID   *uuid.UUID
	ItemType models.ItemType
	ItemName string
}

// InventoryService exposes the item catalog and the adjustment ledger.
// Current quantities are always derived from the ledger, never stored.
type InventoryService interface {
	CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error)
	GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error)
	ListItems(ctx context.Context, includeInactive bool) ([]*models.InventoryItem, error)
	UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, error)
	DeactivateItem(ctx context.Context, id uuid.UUID) error

	RecordAdjustment(ctx context.Context, req *models.CreateAdjustmentRequest) (*models.InventoryAdjustment, error)
	RecordUsage(ctx context.Context, usage UsageRecord) (*models.InventoryAdjustment, error)
	Adjustments(ctx context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error)
	CurrentQuantity(ctx context.Context, itemID uuid.UUID) (float64, error)
	Aggregated(ctx context.Context, params AggregationParams) (*models.AggregatedInventory, error)
}

// UsageRecord describes a consumption event (feeding, water treatment) that
// should append a negative ledger row for the consumed item.
type UsageRecord struct {
	InventoryItemID      uuid.UUID
	Quantity             float64 // consumed amount, positive
	Reason               string
	RelatedDocument      uuid.UUID
	RelatedDocumentModel string
	PondID               uuid.UUID
	SeasonID             uuid.UUID
}

type inventoryService struct {
	repo   repository.InventoryRepository
	logger *zap.Logger
}

func NewInventoryService(repo repository.InventoryRepository, logger *zap.Logger) InventoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &inventoryService{repo: repo, logger: logger}
}

// CreateItem registers a catalog entry. Opening stock is represented only as
// an "Initial Stock" ledger row, so the derived quantity and the history can
// never disagree; the item's initialQuantity field is display metadata.
func (s *inventoryService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error) {
	now := time.Now().UTC()
	item := &models.InventoryItem{
		ID:                uuid.New(),
		Name:              req.Name,
		Type:              req.Type,
		Unit:              req.Unit,
		CostPerUnit:       req.CostPerUnit,
		InitialQuantity:   req.InitialQuantity,
		LowStockThreshold: req.LowStockThreshold,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create inventory item: %w", err)
	}

	if req.InitialQuantity > 0 {
		adj := &models.InventoryAdjustment{
			ID:              uuid.New(),
			InventoryItemID: item.ID,
			AdjustmentType:  models.AdjustmentInitialStock,
			QuantityChange:  req.InitialQuantity,
			Reason:          "Opening stock at item creation",
			CreatedAt:       now,
		}
		if err := s.repo.AppendAdjustment(ctx, adj); err != nil {
			return nil, fmt.Errorf("item created but opening stock row failed: %w", err)
		}
	}

	s.logger.Info("inventory item created",
		zap.String("item_id", item.ID.String()),
		zap.String("type", string(item.Type)),
		zap.Float64("initial_quantity", req.InitialQuantity),
	)
	return item, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) ListItems(ctx context.Context, includeInactive bool) ([]*models.InventoryItem, error) {
	return s.repo.ListItems(ctx, includeInactive)
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.InventoryItem, error) {
	updates := bson.M{}
	if len(req.Name) > 0 {
		updates["name"] = req.Name
	}
	if req.Unit != nil {
		updates["unit"] = *req.Unit
	}
	if req.CostPerUnit != nil {
		updates["cost_per_unit"] = *req.CostPerUnit
	}
	if req.LowStockThreshold != nil {
		updates["low_stock_threshold"] = *req.LowStockThreshold
	}

	if len(updates) > 0 {
		matched, err := s.repo.UpdateItem(ctx, id, updates)
		if err != nil {
			return nil, fmt.Errorf("failed to update inventory item: %w", err)
		}
		if matched == 0 {
			return nil, ErrItemNotFound
		}
	}
	return s.GetItem(ctx, id)
}

// DeactivateItem soft-deletes an item. The transition is one-way; there is
// no reactivation path.
func (s *inventoryService) DeactivateItem(ctx context.Context, id uuid.UUID) error {
	matched, err := s.repo.SoftDeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate inventory item: %w", err)
	}
	if matched == 0 {
		return ErrItemNotFound
	}
	s.logger.Info("inventory item deactivated", zap.String("item_id", id.String()))
	return nil
}

// RecordAdjustment appends one signed ledger row. The referenced item must
// exist and be active; the row itself is immutable once written.
func (s *inventoryService) RecordAdjustment(ctx context.Context, req *models.CreateAdjustmentRequest) (*models.InventoryAdjustment, error) {
	if req.QuantityChange == nil || *req.QuantityChange == 0 {
		return nil, ErrZeroQuantity
	}

	item, err := s.repo.FindItemByID(ctx, req.InventoryItemID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !item.IsActive {
		return nil, ErrItemInactive
	}

	adj := &models.InventoryAdjustment{
		ID:                   uuid.New(),
		InventoryItemID:      req.InventoryItemID,
		AdjustmentType:       req.AdjustmentType,
		QuantityChange:       *req.QuantityChange,
		Reason:               req.Reason,
		RelatedDocument:      req.RelatedDocument,
		RelatedDocumentModel: req.RelatedDocumentModel,
		PondID:               req.PondID,
		SeasonID:             req.SeasonID,
		CreatedAt:            time.Now().UTC(),
	}
	if err := s.repo.AppendAdjustment(ctx, adj); err != nil {
		return nil, fmt.Errorf("failed to record adjustment: %w", err)
	}

	s.logger.Info("inventory adjustment recorded",
		zap.String("item_id", req.InventoryItemID.String()),
		zap.String("type", req.AdjustmentType),
		zap.Float64("quantity_change", adj.QuantityChange),
	)
	return adj, nil
}

// RecordUsage translates a consumption event into a negative Usage row.
func (s *inventoryService) RecordUsage(ctx context.Context, usage UsageRecord) (*models.InventoryAdjustment, error) {
	if usage.Quantity <= 0 {
		return nil, ErrZeroQuantity
	}
	qty := -usage.Quantity
	related := usage.RelatedDocument
	pondID := usage.PondID
	seasonID := usage.SeasonID
	return s.RecordAdjustment(ctx, &models.CreateAdjustmentRequest{
		InventoryItemID:      usage.InventoryItemID,
		AdjustmentType:       models.AdjustmentUsage,
		QuantityChange:       &qty,
		Reason:               usage.Reason,
		RelatedDocument:      &related,
		RelatedDocumentModel: usage.RelatedDocumentModel,
		PondID:               &pondID,
		SeasonID:             &seasonID,
	})
}

func (s *inventoryService) Adjustments(ctx context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error) {
	if _, err := s.GetItem(ctx, itemID); err != nil {
		return nil, err
	}
	return s.repo.AdjustmentsForItem(ctx, itemID)
}

// CurrentQuantity derives the item's stock from its ledger. Inactive items
// are still summable; their history remains valid.
func (s *inventoryService) CurrentQuantity(ctx context.Context, itemID uuid.UUID) (float64, error) {
	if _, err := s.GetItem(ctx, itemID); err != nil {
		return 0, err
	}
	return s.repo.CurrentQuantity(ctx, itemID)
}

// Aggregated recomputes the combined stock and usage projection on demand.
func (s *inventoryService) Aggregated(ctx context.Context, params AggregationParams) (*models.AggregatedInventory, error) {
	stock, err := s.repo.StockLevels(ctx, repository.StockFilter{
		ItemType: params.ItemType,
		ItemName: params.ItemName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute stock levels: %w", err)
	}

	usage, err := s.repo.UsageSummary(ctx, repository.UsageFilter{
		SeasonID: params.SeasonID,
		PondID:   params.PondID,
		ItemType: params.ItemType,
		ItemName: params.ItemName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compute usage summary: %w", err)
	}

	return &models.AggregatedInventory{
		CurrentStock: stock,
		UsageSummary: usage,
	}, nil
}
