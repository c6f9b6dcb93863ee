package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// WaterQualityController handles HTTP requests for water quality readings.
type WaterQualityController struct {
	service services.WaterQualityService
	store   *cache.Store
}

// NewWaterQualityController creates a new WaterQualityController.
func NewWaterQualityController(service services.WaterQualityService, store *cache.Store) *WaterQualityController {
	return &WaterQualityController{service: service, store: store}
}

func (wc *WaterQualityController) invalidate() {
	if wc.store == nil {
		return
	}
	wc.store.InvalidatePrefix("/api/water-quality")
	wc.store.InvalidatePrefix("/api/inventory")
	wc.store.InvalidatePrefix("/api/dashboard")
}

func waterQualityFilterFromQuery(c *gin.Context) (models.WaterQualityFilter, error) {
	var filter models.WaterQualityFilter
	var err error
	if filter.PondID, err = uuidQuery(c, "pondId"); err != nil {
		return filter, errors.New("invalid pondId")
	}
	if filter.SeasonID, err = uuidQuery(c, "seasonId"); err != nil {
		return filter, errors.New("invalid seasonId")
	}
	if filter.From, err = timeQuery(c, "from"); err != nil {
		return filter, errors.New("invalid from date")
	}
	if filter.To, err = timeQuery(c, "to"); err != nil {
		return filter, errors.New("invalid to date")
	}
	return filter, nil
}

// ListReadings returns readings matching the query filters.
// GET /api/water-quality?pondId=&seasonId=&from=&to=
func (wc *WaterQualityController) ListReadings(c *gin.Context) (int, interface{}) {
	filter, err := waterQualityFilterFromQuery(c)
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	}

	readings, err := wc.service.ListReadings(c.Request.Context(), filter)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch readings"}
	}
	return http.StatusOK, readings
}

// GetReading returns one reading.
// GET /api/water-quality/:id
func (wc *WaterQualityController) GetReading(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid reading ID"}
	}

	reading, err := wc.service.GetReading(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrReadingNotFound) {
			return http.StatusNotFound, gin.H{"error": "Reading not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch reading"}
	}
	return http.StatusOK, reading
}

// CreateReading records a reading and charges its treatments against
// inventory. A failed treatment adjustment does not fail the request; the
// response carries a warning instead.
// POST /api/water-quality
func (wc *WaterQualityController) CreateReading(c *gin.Context) {
	var req models.CreateWaterQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	reading, outcome, err := wc.service.CreateReading(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reading"})
		return
	}

	wc.invalidate()
	body := gin.H{"reading": reading}
	if outcome.Degraded() {
		body["warning"] = "Some treatment adjustments were not recorded"
		body["adjustments"] = outcome
	}
	c.JSON(http.StatusCreated, body)
}

// UpdateReading updates a reading's measurements.
// PUT /api/water-quality/:id
func (wc *WaterQualityController) UpdateReading(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reading ID"})
		return
	}

	var req models.UpdateWaterQualityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	reading, err := wc.service.UpdateReading(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrReadingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reading"})
		return
	}

	wc.invalidate()
	c.JSON(http.StatusOK, reading)
}

// DeleteReading soft-deletes a reading.
// DELETE /api/water-quality/:id
func (wc *WaterQualityController) DeleteReading(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reading ID"})
		return
	}

	if err := wc.service.DeleteReading(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrReadingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Reading not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete reading"})
		return
	}

	wc.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted"})
}
