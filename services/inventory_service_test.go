package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// --- Mock Repository ---

type mockInventoryRepo struct {
	items       map[uuid.UUID]*models.InventoryItem
	adjustments []*models.InventoryAdjustment
	failAppend  bool
}

func newMockInventoryRepo() *mockInventoryRepo {
	return &mockInventoryRepo{items: make(map[uuid.UUID]*models.InventoryItem)}
}

func (m *mockInventoryRepo) CreateItem(_ context.Context, item *models.InventoryItem) error {
	m.items[item.ID] = item
	return nil
}

func (m *mockInventoryRepo) FindItemByID(_ context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return item, nil
}

func (m *mockInventoryRepo) ListItems(_ context.Context, includeInactive bool) ([]*models.InventoryItem, error) {
	var out []*models.InventoryItem
	for _, item := range m.items {
		if item.IsActive || includeInactive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *mockInventoryRepo) UpdateItem(_ context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	item, ok := m.items[id]
	if !ok || !item.IsActive {
		return 0, nil
	}
	if unit, ok := updates["unit"].(string); ok {
		item.Unit = unit
	}
	if cost, ok := updates["cost_per_unit"].(float64); ok {
		item.CostPerUnit = cost
	}
	return 1, nil
}

func (m *mockInventoryRepo) SoftDeleteItem(_ context.Context, id uuid.UUID) (int64, error) {
	item, ok := m.items[id]
	if !ok || !item.IsActive {
		return 0, nil
	}
	item.IsActive = false
	return 1, nil
}

func (m *mockInventoryRepo) AppendAdjustment(_ context.Context, adj *models.InventoryAdjustment) error {
	if m.failAppend {
		return errors.New("ledger write refused")
	}
	m.adjustments = append(m.adjustments, adj)
	return nil
}

func (m *mockInventoryRepo) AdjustmentsForItem(_ context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error) {
	var out []*models.InventoryAdjustment
	for _, adj := range m.adjustments {
		if adj.InventoryItemID == itemID {
			out = append(out, adj)
		}
	}
	return out, nil
}

func (m *mockInventoryRepo) CurrentQuantity(_ context.Context, itemID uuid.UUID) (float64, error) {
	var sum float64
	for _, adj := range m.adjustments {
		if adj.InventoryItemID == itemID {
			sum += adj.QuantityChange
		}
	}
	return sum, nil
}

func (m *mockInventoryRepo) StockLevels(_ context.Context, filter repository.StockFilter) ([]models.StockLevel, error) {
	var out []models.StockLevel
	for _, item := range m.items {
		if !item.IsActive {
			continue
		}
		if filter.ItemType != "" && item.Type != filter.ItemType {
			continue
		}
		qty, _ := m.CurrentQuantity(nil, item.ID)
		out = append(out, models.StockLevel{
			InventoryItemID: item.ID,
			Name:            item.Name,
			Type:            item.Type,
			Unit:            item.Unit,
			CostPerUnit:     item.CostPerUnit,
			CurrentQuantity: qty,
			LowStock:        item.LowStockThreshold > 0 && qty <= item.LowStockThreshold,
		})
	}
	return out, nil
}

func (m *mockInventoryRepo) UsageSummary(_ context.Context, filter repository.UsageFilter) ([]models.UsageSummaryRow, error) {
	totals := make(map[uuid.UUID]float64)
	for _, adj := range m.adjustments {
		if adj.AdjustmentType != models.AdjustmentUsage {
			continue
		}
		if filter.PondID != nil && (adj.PondID == nil || *adj.PondID != *filter.PondID) {
			continue
		}
		if filter.SeasonID != nil && (adj.SeasonID == nil || *adj.SeasonID != *filter.SeasonID) {
			continue
		}
		totals[adj.InventoryItemID] += -adj.QuantityChange
	}

	var out []models.UsageSummaryRow
	for itemID, used := range totals {
		item := m.items[itemID]
		out = append(out, models.UsageSummaryRow{
			InventoryItemID:   itemID,
			ItemName:          item.Name,
			ItemType:          item.Type,
			Unit:              item.Unit,
			TotalQuantityUsed: used,
			TotalCostUsed:     used * item.CostPerUnit,
		})
	}
	return out, nil
}

// --- Helpers ---

func createTestItem(t *testing.T, svc services.InventoryService, initial float64) *models.InventoryItem {
	t.Helper()
	item, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:            models.MultilingualText{"en": "Starter feed"},
		Type:            models.ItemTypeFeed,
		Unit:            "kg",
		CostPerUnit:     2.5,
		InitialQuantity: initial,
	})
	assert.NoError(t, err)
	return item
}

func floatPtr(f float64) *float64 { return &f }

// --- Tests ---

func TestCreateItemAppendsOpeningStockRow(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)

	item := createTestItem(t, svc, 100)

	assert.Len(t, repo.adjustments, 1)
	assert.Equal(t, models.AdjustmentInitialStock, repo.adjustments[0].AdjustmentType)
	assert.Equal(t, 100.0, repo.adjustments[0].QuantityChange)

	qty, err := svc.CurrentQuantity(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 100.0, qty)
}

func TestCreateItemWithoutInitialQuantity(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)

	item := createTestItem(t, svc, 0)

	assert.Empty(t, repo.adjustments)
	qty, err := svc.CurrentQuantity(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, qty)
}

func TestCurrentQuantityIsLedgerSum(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 0)
	ctx := context.Background()

	_, err := svc.RecordAdjustment(ctx, &models.CreateAdjustmentRequest{
		InventoryItemID: item.ID,
		AdjustmentType:  models.AdjustmentPurchase,
		QuantityChange:  floatPtr(500),
	})
	assert.NoError(t, err)

	_, err = svc.RecordAdjustment(ctx, &models.CreateAdjustmentRequest{
		InventoryItemID: item.ID,
		AdjustmentType:  models.AdjustmentUsage,
		QuantityChange:  floatPtr(-120),
	})
	assert.NoError(t, err)

	qty, err := svc.CurrentQuantity(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 380.0, qty)
}

func TestRecordAdjustmentMissingItem(t *testing.T) {
	svc := services.NewInventoryService(newMockInventoryRepo(), nil)

	_, err := svc.RecordAdjustment(context.Background(), &models.CreateAdjustmentRequest{
		InventoryItemID: uuid.New(),
		AdjustmentType:  models.AdjustmentPurchase,
		QuantityChange:  floatPtr(10),
	})
	assert.ErrorIs(t, err, services.ErrItemNotFound)
}

func TestRecordAdjustmentInactiveItem(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 50)
	ctx := context.Background()

	assert.NoError(t, svc.DeactivateItem(ctx, item.ID))

	_, err := svc.RecordAdjustment(ctx, &models.CreateAdjustmentRequest{
		InventoryItemID: item.ID,
		AdjustmentType:  models.AdjustmentPurchase,
		QuantityChange:  floatPtr(10),
	})
	assert.ErrorIs(t, err, services.ErrItemInactive)

	// History of the inactive item keeps counting.
	qty, err := svc.CurrentQuantity(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, qty)
}

func TestRecordAdjustmentZeroQuantity(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 0)

	_, err := svc.RecordAdjustment(context.Background(), &models.CreateAdjustmentRequest{
		InventoryItemID: item.ID,
		AdjustmentType:  models.AdjustmentCorrection,
		QuantityChange:  floatPtr(0),
	})
	assert.ErrorIs(t, err, services.ErrZeroQuantity)

	_, err = svc.RecordAdjustment(context.Background(), &models.CreateAdjustmentRequest{
		InventoryItemID: item.ID,
		AdjustmentType:  models.AdjustmentCorrection,
	})
	assert.ErrorIs(t, err, services.ErrZeroQuantity)
}

func TestRecordUsageAppendsNegativeRow(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 200)
	ctx := context.Background()

	adj, err := svc.RecordUsage(ctx, services.UsageRecord{
		InventoryItemID: item.ID,
		Quantity:        30,
		Reason:          "Feeding",
		PondID:          uuid.New(),
		SeasonID:        uuid.New(),
	})
	assert.NoError(t, err)
	assert.Equal(t, models.AdjustmentUsage, adj.AdjustmentType)
	assert.Equal(t, -30.0, adj.QuantityChange)

	qty, err := svc.CurrentQuantity(ctx, item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 170.0, qty)
}

func TestDeactivateItemTwice(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 0)
	ctx := context.Background()

	assert.NoError(t, svc.DeactivateItem(ctx, item.ID))
	assert.ErrorIs(t, svc.DeactivateItem(ctx, item.ID), services.ErrItemNotFound)
}

func TestAggregatedUsesNegatedUsageTotals(t *testing.T) {
	repo := newMockInventoryRepo()
	svc := services.NewInventoryService(repo, nil)
	item := createTestItem(t, svc, 500)
	ctx := context.Background()
	pondID := uuid.New()
	seasonID := uuid.New()

	_, err := svc.RecordUsage(ctx, services.UsageRecord{
		InventoryItemID: item.ID,
		Quantity:        120,
		PondID:          pondID,
		SeasonID:        seasonID,
	})
	assert.NoError(t, err)

	agg, err := svc.Aggregated(ctx, services.AggregationParams{SeasonID: &seasonID})
	assert.NoError(t, err)

	assert.Len(t, agg.CurrentStock, 1)
	assert.Equal(t, 380.0, agg.CurrentStock[0].CurrentQuantity)

	assert.Len(t, agg.UsageSummary, 1)
	assert.Equal(t, 120.0, agg.UsageSummary[0].TotalQuantityUsed)
	assert.Equal(t, 300.0, agg.UsageSummary[0].TotalCostUsed) // 120 * 2.5
}
