package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// NurseryController handles HTTP requests for nursery batches.
type NurseryController struct {
	service services.NurseryService
	store   *cache.Store
}

// NewNurseryController creates a new NurseryController.
func NewNurseryController(service services.NurseryService, store *cache.Store) *NurseryController {
	return &NurseryController{service: service, store: store}
}

func (nc *NurseryController) invalidate() {
	if nc.store == nil {
		return
	}
	nc.store.InvalidatePrefix("/api/nursery-batches")
}

// ListBatches returns all nursery batches.
// GET /api/nursery-batches
func (nc *NurseryController) ListBatches(c *gin.Context) (int, interface{}) {
	batches, err := nc.service.ListBatches(c.Request.Context())
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch nursery batches"}
	}
	return http.StatusOK, batches
}

// GetBatch returns one nursery batch.
// GET /api/nursery-batches/:id
func (nc *NurseryController) GetBatch(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid batch ID"}
	}

	batch, err := nc.service.GetBatch(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			return http.StatusNotFound, gin.H{"error": "Nursery batch not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch nursery batch"}
	}
	return http.StatusOK, batch
}

// CreateBatch creates a nursery batch.
// POST /api/nursery-batches
func (nc *NurseryController) CreateBatch(c *gin.Context) {
	var req models.CreateNurseryBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	batch, err := nc.service.CreateBatch(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create nursery batch"})
		return
	}

	nc.invalidate()
	c.JSON(http.StatusCreated, batch)
}

// UpdateBatch updates a nursery batch.
// PUT /api/nursery-batches/:id
func (nc *NurseryController) UpdateBatch(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID"})
		return
	}

	var req models.UpdateNurseryBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	batch, err := nc.service.UpdateBatch(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nursery batch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update nursery batch"})
		return
	}

	nc.invalidate()
	c.JSON(http.StatusOK, batch)
}

// DeleteBatch soft-deletes a nursery batch.
// DELETE /api/nursery-batches/:id
func (nc *NurseryController) DeleteBatch(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid batch ID"})
		return
	}

	if err := nc.service.DeleteBatch(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrBatchNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Nursery batch not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete nursery batch"})
		return
	}

	nc.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Nursery batch deleted"})
}
