package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// SeasonController handles HTTP requests for culture seasons.
type SeasonController struct {
	service services.SeasonService
	store   *cache.Store
}

// NewSeasonController creates a new SeasonController.
func NewSeasonController(service services.SeasonService, store *cache.Store) *SeasonController {
	return &SeasonController{service: service, store: store}
}

func (sc *SeasonController) invalidate() {
	if sc.store == nil {
		return
	}
	sc.store.InvalidatePrefix("/api/seasons")
	sc.store.InvalidatePrefix("/api/dashboard")
}

// ListSeasons returns all seasons.
// GET /api/seasons
func (sc *SeasonController) ListSeasons(c *gin.Context) (int, interface{}) {
	seasons, err := sc.service.ListSeasons(c.Request.Context())
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch seasons"}
	}
	return http.StatusOK, seasons
}

// GetSeason returns one season.
// GET /api/seasons/:id
func (sc *SeasonController) GetSeason(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid season ID"}
	}

	season, err := sc.service.GetSeason(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSeasonNotFound) {
			return http.StatusNotFound, gin.H{"error": "Season not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch season"}
	}
	return http.StatusOK, season
}

// CreateSeason creates a season.
// POST /api/seasons
func (sc *SeasonController) CreateSeason(c *gin.Context) {
	var req models.CreateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	season, err := sc.service.CreateSeason(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create season"})
		return
	}

	sc.invalidate()
	c.JSON(http.StatusCreated, season)
}

// UpdateSeason updates a season.
// PUT /api/seasons/:id
func (sc *SeasonController) UpdateSeason(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	var req models.UpdateSeasonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	season, err := sc.service.UpdateSeason(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrSeasonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update season"})
		return
	}

	sc.invalidate()
	c.JSON(http.StatusOK, season)
}

// DeleteSeason soft-deletes a season.
// DELETE /api/seasons/:id
func (sc *SeasonController) DeleteSeason(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid season ID"})
		return
	}

	if err := sc.service.DeleteSeason(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrSeasonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Season not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete season"})
		return
	}

	sc.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Season deleted"})
}
