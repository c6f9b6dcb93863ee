package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/controllers"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
	"github.com/stretchr/testify/assert"
)

// --- Fake Service ---

type fakeInventoryService struct {
	items       map[uuid.UUID]*models.InventoryItem
	adjustments []*models.InventoryAdjustment
}

func newFakeInventoryService() *fakeInventoryService {
	return &fakeInventoryService{items: make(map[uuid.UUID]*models.InventoryItem)}
}

func (f *fakeInventoryService) addItem(active bool) *models.InventoryItem {
	item := &models.InventoryItem{
		ID:          uuid.New(),
		Name:        models.MultilingualText{"en": "Grower feed", "ta": "வளர்ப்பு தீவனம்"},
		Type:        models.ItemTypeFeed,
		Unit:        "kg",
		CostPerUnit: 2,
		IsActive:    active,
	}
	f.items[item.ID] = item
	return item
}

func (f *fakeInventoryService) CreateItem(_ context.Context, req *models.CreateItemRequest) (*models.InventoryItem, error) {
	item := &models.InventoryItem{
		ID:       uuid.New(),
		Name:     req.Name,
		Type:     req.Type,
		Unit:     req.Unit,
		IsActive: true,
	}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeInventoryService) GetItem(_ context.Context, id uuid.UUID) (*models.InventoryItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, services.ErrItemNotFound
	}
	return item, nil
}

func (f *fakeInventoryService) ListItems(_ context.Context, includeInactive bool) ([]*models.InventoryItem, error) {
	var out []*models.InventoryItem
	for _, item := range f.items {
		if item.IsActive || includeInactive {
			out = append(out, item)
		}
	}
	return out, nil
}

func (f *fakeInventoryService) UpdateItem(_ context.Context, id uuid.UUID, _ *models.UpdateItemRequest) (*models.InventoryItem, error) {
	return f.GetItem(nil, id)
}

func (f *fakeInventoryService) DeactivateItem(_ context.Context, id uuid.UUID) error {
	item, ok := f.items[id]
	if !ok || !item.IsActive {
		return services.ErrItemNotFound
	}
	item.IsActive = false
	return nil
}

func (f *fakeInventoryService) RecordAdjustment(_ context.Context, req *models.CreateAdjustmentRequest) (*models.InventoryAdjustment, error) {
	if req.QuantityChange == nil || *req.QuantityChange == 0 {
		return nil, services.ErrZeroQuantity
	}
	item, ok := f.items[req.InventoryItemID]
	if !ok {
		return nil, services.ErrItemNotFound
	}
	if !item.IsActive {
		return nil, services.ErrItemInactive
	}
	adj := &models.InventoryAdjustment{
		ID:              uuid.New(),
		InventoryItemID: req.InventoryItemID,
		AdjustmentType:  req.AdjustmentType,
		QuantityChange:  *req.QuantityChange,
		CreatedAt:       time.Now(),
	}
	f.adjustments = append(f.adjustments, adj)
	return adj, nil
}

func (f *fakeInventoryService) RecordUsage(_ context.Context, _ services.UsageRecord) (*models.InventoryAdjustment, error) {
	return nil, nil
}

func (f *fakeInventoryService) Adjustments(_ context.Context, itemID uuid.UUID) ([]*models.InventoryAdjustment, error) {
	if _, ok := f.items[itemID]; !ok {
		return nil, services.ErrItemNotFound
	}
	var out []*models.InventoryAdjustment
	for _, adj := range f.adjustments {
		if adj.InventoryItemID == itemID {
			out = append(out, adj)
		}
	}
	return out, nil
}

func (f *fakeInventoryService) CurrentQuantity(_ context.Context, itemID uuid.UUID) (float64, error) {
	if _, ok := f.items[itemID]; !ok {
		return 0, services.ErrItemNotFound
	}
	var sum float64
	for _, adj := range f.adjustments {
		if adj.InventoryItemID == itemID {
			sum += adj.QuantityChange
		}
	}
	return sum, nil
}

func (f *fakeInventoryService) Aggregated(_ context.Context, _ services.AggregationParams) (*models.AggregatedInventory, error) {
	return &models.AggregatedInventory{
		CurrentStock: []models.StockLevel{},
		UsageSummary: []models.UsageSummaryRow{},
	}, nil
}

// --- Router setup ---

func newInventoryRouter(svc services.InventoryService, store *cache.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ic := controllers.NewInventoryController(svc, store)

	r := gin.New()
	r.GET("/api/inventory-items", cache.Wrap(store, ic.ListItems))
	r.GET("/api/inventory-items/:id", cache.Wrap(store, ic.GetItem))
	r.GET("/api/inventory-items/:id/quantity", cache.Wrap(store, ic.GetQuantity))
	r.GET("/api/inventory/aggregated", cache.Wrap(store, ic.GetAggregated))
	r.POST("/api/inventory-adjustments", ic.CreateAdjustment)
	return r
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- Tests ---

func TestCreateAdjustmentSuccess(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(true)
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": item.ID,
		"adjustmentType":  models.AdjustmentPurchase,
		"quantityChange":  500,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var adj models.InventoryAdjustment
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &adj))
	assert.Equal(t, 500.0, adj.QuantityChange)
}

func TestCreateAdjustmentMissingQuantityChange(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(true)
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": item.ID,
		"adjustmentType":  models.AdjustmentPurchase,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAdjustmentZeroQuantityChange(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(true)
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": item.ID,
		"adjustmentType":  models.AdjustmentCorrection,
		"quantityChange":  0,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateAdjustmentUnknownItem(t *testing.T) {
	svc := newFakeInventoryService()
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": uuid.New(),
		"adjustmentType":  models.AdjustmentPurchase,
		"quantityChange":  10,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAdjustmentInactiveItem(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(false)
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": item.ID,
		"adjustmentType":  models.AdjustmentPurchase,
		"quantityChange":  10,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateAdjustmentInvalidatesCachedQuantity(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(true)
	store := cache.NewStore(time.Minute, nil)
	r := newInventoryRouter(svc, store)

	quantityURL := "/api/inventory-items/" + item.ID.String() + "/quantity"

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, quantityURL, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"currentQuantity":0`)

	postJSON(r, "/api/inventory-adjustments", gin.H{
		"inventoryItemId": item.ID,
		"adjustmentType":  models.AdjustmentPurchase,
		"quantityChange":  500,
	})

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, quantityURL, nil))
	assert.Contains(t, w.Body.String(), `"currentQuantity":500`)
}

func TestGetQuantityUnknownItem(t *testing.T) {
	svc := newFakeInventoryService()
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory-items/"+uuid.NewString()+"/quantity", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetItemLocalizesName(t *testing.T) {
	svc := newFakeInventoryService()
	item := svc.addItem(true)
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	req := httptest.NewRequest(http.MethodGet, "/api/inventory-items/"+item.ID.String()+"?lang=ta", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "வளர்ப்பு தீவனம்")
}

func TestGetAggregatedShape(t *testing.T) {
	svc := newFakeInventoryService()
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory/aggregated", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "currentStock")
	assert.Contains(t, body, "usageSummary")
}

func TestGetAggregatedRejectsBadSeasonID(t *testing.T) {
	svc := newFakeInventoryService()
	r := newInventoryRouter(svc, cache.NewStore(time.Minute, nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/inventory/aggregated?seasonId=nope", nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
