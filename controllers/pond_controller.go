package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// PondController handles HTTP requests for ponds.
type PondController struct {
	service services.PondService
	store   *cache.Store
}

// NewPondController creates a new PondController.
func NewPondController(service services.PondService, store *cache.Store) *PondController {
	return &PondController{service: service, store: store}
}

func (pc *PondController) invalidate() {
	if pc.store == nil {
		return
	}
	pc.store.InvalidatePrefix("/api/ponds")
	pc.store.InvalidatePrefix("/api/seasons")
	pc.store.InvalidatePrefix("/api/dashboard")
}

// ListPonds returns all ponds, optionally filtered by season.
// GET /api/ponds?seasonId=
func (pc *PondController) ListPonds(c *gin.Context) (int, interface{}) {
	seasonID, err := uuidQuery(c, "seasonId")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid seasonId"}
	}

	ponds, err := pc.service.ListPonds(c.Request.Context(), seasonID)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch ponds"}
	}
	return http.StatusOK, ponds
}

// ListPondsBySeason returns the ponds of one season.
// GET /api/seasons/:id/ponds
func (pc *PondController) ListPondsBySeason(c *gin.Context) (int, interface{}) {
	seasonID, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid season ID"}
	}

	ponds, err := pc.service.ListPonds(c.Request.Context(), &seasonID)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch ponds"}
	}
	return http.StatusOK, ponds
}

// GetPond returns one pond.
// GET /api/ponds/:id
func (pc *PondController) GetPond(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid pond ID"}
	}

	pond, err := pc.service.GetPond(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPondNotFound) {
			return http.StatusNotFound, gin.H{"error": "Pond not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch pond"}
	}
	return http.StatusOK, pond
}

// CreatePond creates a pond.
// POST /api/ponds
func (pc *PondController) CreatePond(c *gin.Context) {
	var req models.CreatePondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	pond, err := pc.service.CreatePond(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrSeasonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create pond"})
		return
	}

	pc.invalidate()
	c.JSON(http.StatusCreated, pond)
}

// UpdatePond updates a pond.
// PUT /api/ponds/:id
func (pc *PondController) UpdatePond(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pond ID"})
		return
	}

	var req models.UpdatePondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	pond, err := pc.service.UpdatePond(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrPondNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pond not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update pond"})
		return
	}

	pc.invalidate()
	c.JSON(http.StatusOK, pond)
}

// DeletePond soft-deletes a pond.
// DELETE /api/ponds/:id
func (pc *PondController) DeletePond(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pond ID"})
		return
	}

	if err := pc.service.DeletePond(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrPondNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pond not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete pond"})
		return
	}

	pc.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Pond deleted"})
}
