package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// InventoryController handles HTTP requests for inventory items and the
// adjustment ledger.
type InventoryController struct {
	service services.InventoryService
	store   *cache.Store
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(service services.InventoryService, store *cache.Store) *InventoryController {
	return &InventoryController{service: service, store: store}
}

func (ic *InventoryController) invalidate() {
	if ic.store == nil {
		return
	}
	// Covers /api/inventory-items and /api/inventory/aggregated.
	ic.store.InvalidatePrefix("/api/inventory")
	ic.store.InvalidatePrefix("/api/dashboard")
}

// itemResponse augments an item with its name resolved to the request
// language. The full multilingual map stays in the payload for clients that
// localize themselves.
type itemResponse struct {
	*models.InventoryItem
	LocalizedName string `json:"localizedName"`
}

func localizeItem(item *models.InventoryItem, lang string) itemResponse {
	return itemResponse{InventoryItem: item, LocalizedName: models.Localize(item.Name, lang)}
}

// ListItems returns the item catalog, localized to the request language.
// Inactive items are included only with ?includeInactive=true.
// GET /api/inventory-items
func (ic *InventoryController) ListItems(c *gin.Context) (int, interface{}) {
	includeInactive := c.Query("includeInactive") == "true"

	items, err := ic.service.ListItems(c.Request.Context(), includeInactive)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory items"}
	}

	lang := requestLanguage(c)
	out := make([]itemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, localizeItem(item, lang))
	}
	return http.StatusOK, out
}

// GetItem returns one inventory item.
// GET /api/inventory-items/:id
func (ic *InventoryController) GetItem(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid item ID"}
	}

	item, err := ic.service.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return http.StatusNotFound, gin.H{"error": "Inventory item not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch inventory item"}
	}
	return http.StatusOK, localizeItem(item, requestLanguage(c))
}

// GetQuantity returns the item's current quantity derived from the ledger.
// GET /api/inventory-items/:id/quantity
func (ic *InventoryController) GetQuantity(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid item ID"}
	}

	qty, err := ic.service.CurrentQuantity(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return http.StatusNotFound, gin.H{"error": "Inventory item not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to compute quantity"}
	}
	return http.StatusOK, gin.H{"inventoryItemId": id, "currentQuantity": qty}
}

// ListAdjustments returns the item's full ledger history, newest first.
// GET /api/inventory-items/:id/adjustments
func (ic *InventoryController) ListAdjustments(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid item ID"}
	}

	adjustments, err := ic.service.Adjustments(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return http.StatusNotFound, gin.H{"error": "Inventory item not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch adjustments"}
	}
	return http.StatusOK, adjustments
}

// GetAggregated returns the combined stock and usage projection.
// GET /api/inventory/aggregated?seasonId=&pondId=&itemType=&itemName=
func (ic *InventoryController) GetAggregated(c *gin.Context) (int, interface{}) {
	var params services.AggregationParams
	var err error
	if params.SeasonID, err = uuidQuery(c, "seasonId"); err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid seasonId"}
	}
	if params.PondID, err = uuidQuery(c, "pondId"); err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid pondId"}
	}
	params.ItemType = models.ItemType(c.Query("itemType"))
	params.ItemName = c.Query("itemName")

	agg, err := ic.service.Aggregated(c.Request.Context(), params)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to aggregate inventory"}
	}
	return http.StatusOK, agg
}

// CreateItem registers a new inventory item.
// POST /api/inventory-items
func (ic *InventoryController) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, err := ic.service.CreateItem(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inventory item"})
		return
	}

	ic.invalidate()
	c.JSON(http.StatusCreated, localizeItem(item, requestLanguage(c)))
}

// UpdateItem updates an inventory item's catalog fields.
// PUT /api/inventory-items/:id
func (ic *InventoryController) UpdateItem(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	item, err := ic.service.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update inventory item"})
		return
	}

	ic.invalidate()
	c.JSON(http.StatusOK, localizeItem(item, requestLanguage(c)))
}

// DeleteItem soft-deletes an item. Its ledger history stays intact.
// DELETE /api/inventory-items/:id
func (ic *InventoryController) DeleteItem(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if err := ic.service.DeactivateItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete inventory item"})
		return
	}

	ic.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Inventory item deactivated"})
}

// CreateAdjustment appends a ledger row directly. 404 for a missing or
// inactive item, 400 for a missing or zero quantityChange.
// POST /api/inventory-adjustments
func (ic *InventoryController) CreateAdjustment(c *gin.Context) {
	var req models.CreateAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	adj, err := ic.service.RecordAdjustment(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, services.ErrItemInactive):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item is inactive"})
		case errors.Is(err, services.ErrZeroQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantityChange must be non-zero"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record adjustment"})
		}
		return
	}

	ic.invalidate()
	c.JSON(http.StatusCreated, adj)
}
