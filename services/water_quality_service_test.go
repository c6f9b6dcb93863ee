package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

// --- Mock Repository ---

type mockWaterQualityRepo struct {
	readings map[uuid.UUID]*models.WaterQualityReading
}

func newMockWaterQualityRepo() *mockWaterQualityRepo {
	return &mockWaterQualityRepo{readings: make(map[uuid.UUID]*models.WaterQualityReading)}
}

func (m *mockWaterQualityRepo) Create(_ context.Context, reading *models.WaterQualityReading) error {
	m.readings[reading.ID] = reading
	return nil
}

func (m *mockWaterQualityRepo) FindByID(_ context.Context, id uuid.UUID) (*models.WaterQualityReading, error) {
	reading, ok := m.readings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return reading, nil
}

func (m *mockWaterQualityRepo) Find(_ context.Context, _ models.WaterQualityFilter) ([]*models.WaterQualityReading, error) {
	var out []*models.WaterQualityReading
	for _, r := range m.readings {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockWaterQualityRepo) LatestForPond(_ context.Context, pondID uuid.UUID) (*models.WaterQualityReading, error) {
	var latest *models.WaterQualityReading
	for _, r := range m.readings {
		if r.PondID != pondID {
			continue
		}
		if latest == nil || r.Date.After(latest.Date) {
			latest = r
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

func (m *mockWaterQualityRepo) Update(_ context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	reading, ok := m.readings[id]
	if !ok {
		return 0, nil
	}
	if notes, ok := updates["notes"].(string); ok {
		reading.Notes = notes
	}
	return 1, nil
}

func (m *mockWaterQualityRepo) SoftDelete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.readings[id]; !ok {
		return 0, nil
	}
	delete(m.readings, id)
	return 1, nil
}

// --- Tests ---

func TestCreateReadingRecordsTreatmentUsage(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)
	item := createTestItem(t, inventory, 100)

	wqRepo := newMockWaterQualityRepo()
	svc := services.NewWaterQualityService(wqRepo, inventory, nil)

	ph := 7.8
	reading, outcome, err := svc.CreateReading(context.Background(), &models.CreateWaterQualityRequest{
		PondID:   uuid.New(),
		SeasonID: uuid.New(),
		Date:     time.Now(),
		PH:       &ph,
		Treatments: []models.WaterTreatment{
			{InventoryItemID: item.ID, Quantity: 10},
		},
	})

	assert.NoError(t, err)
	assert.False(t, outcome.Degraded())
	assert.Equal(t, 1, outcome.Attempted)
	assert.Equal(t, 1, outcome.Recorded)

	qty, err := inventory.CurrentQuantity(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 90.0, qty)

	// The usage row is tied back to the reading.
	adjustments, err := inventory.Adjustments(context.Background(), item.ID)
	assert.NoError(t, err)
	var usage *models.InventoryAdjustment
	for _, adj := range adjustments {
		if adj.AdjustmentType == models.AdjustmentUsage {
			usage = adj
		}
	}
	if assert.NotNil(t, usage) {
		assert.Equal(t, reading.ID, *usage.RelatedDocument)
		assert.Equal(t, "WaterQualityReading", usage.RelatedDocumentModel)
	}
}

func TestCreateReadingSurvivesLedgerFailure(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)
	item := createTestItem(t, inventory, 100)

	wqRepo := newMockWaterQualityRepo()
	svc := services.NewWaterQualityService(wqRepo, inventory, nil)

	invRepo.failAppend = true
	reading, outcome, err := svc.CreateReading(context.Background(), &models.CreateWaterQualityRequest{
		PondID:   uuid.New(),
		SeasonID: uuid.New(),
		Date:     time.Now(),
		Treatments: []models.WaterTreatment{
			{InventoryItemID: item.ID, Quantity: 5},
		},
	})

	// Primary write survives; the outcome reports the degradation.
	assert.NoError(t, err)
	assert.NotNil(t, reading)
	assert.True(t, outcome.Degraded())
	assert.Equal(t, 1, outcome.Attempted)
	assert.Equal(t, 0, outcome.Recorded)
	assert.Len(t, outcome.Failures, 1)

	stored, err := svc.GetReading(context.Background(), reading.ID)
	assert.NoError(t, err)
	assert.Equal(t, reading.ID, stored.ID)
}

func TestCreateReadingUnknownTreatmentItemDegrades(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)

	wqRepo := newMockWaterQualityRepo()
	svc := services.NewWaterQualityService(wqRepo, inventory, nil)

	reading, outcome, err := svc.CreateReading(context.Background(), &models.CreateWaterQualityRequest{
		PondID:   uuid.New(),
		SeasonID: uuid.New(),
		Date:     time.Now(),
		Treatments: []models.WaterTreatment{
			{InventoryItemID: uuid.New(), Quantity: 5},
		},
	})

	assert.NoError(t, err)
	assert.NotNil(t, reading)
	assert.True(t, outcome.Degraded())
}

func TestCreateReadingWithoutTreatments(t *testing.T) {
	inventory := services.NewInventoryService(newMockInventoryRepo(), nil)
	svc := services.NewWaterQualityService(newMockWaterQualityRepo(), inventory, nil)

	_, outcome, err := svc.CreateReading(context.Background(), &models.CreateWaterQualityRequest{
		PondID:   uuid.New(),
		SeasonID: uuid.New(),
		Date:     time.Now(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 0, outcome.Attempted)
	assert.False(t, outcome.Degraded())
}

func TestGetReadingNotFound(t *testing.T) {
	inventory := services.NewInventoryService(newMockInventoryRepo(), nil)
	svc := services.NewWaterQualityService(newMockWaterQualityRepo(), inventory, nil)

	_, err := svc.GetReading(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrReadingNotFound)
}
