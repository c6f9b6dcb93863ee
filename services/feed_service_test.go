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

type mockFeedRepo struct {
	feeds map[uuid.UUID]*models.FeedInput
}

func newMockFeedRepo() *mockFeedRepo {
	return &mockFeedRepo{feeds: make(map[uuid.UUID]*models.FeedInput)}
}

func (m *mockFeedRepo) Create(_ context.Context, feed *models.FeedInput) error {
	m.feeds[feed.ID] = feed
	return nil
}

func (m *mockFeedRepo) FindByID(_ context.Context, id uuid.UUID) (*models.FeedInput, error) {
	feed, ok := m.feeds[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return feed, nil
}

func (m *mockFeedRepo) Find(_ context.Context, _ models.FeedFilter) ([]*models.FeedInput, error) {
	var out []*models.FeedInput
	for _, f := range m.feeds {
		out = append(out, f)
	}
	return out, nil
}

func (m *mockFeedRepo) Update(_ context.Context, id uuid.UUID, updates bson.M) (int64, error) {
	feed, ok := m.feeds[id]
	if !ok {
		return 0, nil
	}
	if qty, ok := updates["quantity"].(float64); ok {
		feed.Quantity = qty
	}
	return 1, nil
}

func (m *mockFeedRepo) SoftDelete(_ context.Context, id uuid.UUID) (int64, error) {
	if _, ok := m.feeds[id]; !ok {
		return 0, nil
	}
	delete(m.feeds, id)
	return 1, nil
}

// --- Tests ---

func TestRecordFeedingChargesInventory(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)
	item := createTestItem(t, inventory, 500)

	svc := services.NewFeedService(newMockFeedRepo(), inventory, nil)

	feed, outcome, err := svc.RecordFeeding(context.Background(), &models.CreateFeedRequest{
		PondID:          uuid.New(),
		SeasonID:        uuid.New(),
		InventoryItemID: item.ID,
		Quantity:        25,
		Date:            time.Now(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, feed)
	assert.False(t, outcome.Degraded())

	qty, err := inventory.CurrentQuantity(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 475.0, qty)
}

func TestRecordFeedingUnknownItemFails(t *testing.T) {
	inventory := services.NewInventoryService(newMockInventoryRepo(), nil)
	feedRepo := newMockFeedRepo()
	svc := services.NewFeedService(feedRepo, inventory, nil)

	_, _, err := svc.RecordFeeding(context.Background(), &models.CreateFeedRequest{
		PondID:          uuid.New(),
		SeasonID:        uuid.New(),
		InventoryItemID: uuid.New(),
		Quantity:        25,
		Date:            time.Now(),
	})

	assert.ErrorIs(t, err, services.ErrItemNotFound)
	assert.Empty(t, feedRepo.feeds)
}

func TestRecordFeedingInactiveItemFails(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)
	item := createTestItem(t, inventory, 500)
	assert.NoError(t, inventory.DeactivateItem(context.Background(), item.ID))

	feedRepo := newMockFeedRepo()
	svc := services.NewFeedService(feedRepo, inventory, nil)

	_, _, err := svc.RecordFeeding(context.Background(), &models.CreateFeedRequest{
		PondID:          uuid.New(),
		SeasonID:        uuid.New(),
		InventoryItemID: item.ID,
		Quantity:        25,
		Date:            time.Now(),
	})

	assert.ErrorIs(t, err, services.ErrItemInactive)
	assert.Empty(t, feedRepo.feeds)
}

func TestRecordFeedingSurvivesLedgerFailure(t *testing.T) {
	invRepo := newMockInventoryRepo()
	inventory := services.NewInventoryService(invRepo, nil)
	item := createTestItem(t, inventory, 500)

	feedRepo := newMockFeedRepo()
	svc := services.NewFeedService(feedRepo, inventory, nil)

	invRepo.failAppend = true
	feed, outcome, err := svc.RecordFeeding(context.Background(), &models.CreateFeedRequest{
		PondID:          uuid.New(),
		SeasonID:        uuid.New(),
		InventoryItemID: item.ID,
		Quantity:        25,
		Date:            time.Now(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, feed)
	assert.True(t, outcome.Degraded())
	assert.Len(t, feedRepo.feeds, 1)

	// Stock is unchanged because the usage row never landed.
	qty, err := inventory.CurrentQuantity(context.Background(), item.ID)
	assert.NoError(t, err)
	assert.Equal(t, 500.0, qty)
}

func TestDeleteFeedingNotFound(t *testing.T) {
	inventory := services.NewInventoryService(newMockInventoryRepo(), nil)
	svc := services.NewFeedService(newMockFeedRepo(), inventory, nil)

	err := svc.DeleteFeeding(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrFeedNotFound)
}
