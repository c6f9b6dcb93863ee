package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/models"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// FeedController handles HTTP requests for feed inputs.
type FeedController struct {
	service services.FeedService
	store   *cache.Store
}

// NewFeedController creates a new FeedController.
func NewFeedController(service services.FeedService, store *cache.Store) *FeedController {
	return &FeedController{service: service, store: store}
}

func (fc *FeedController) invalidate() {
	if fc.store == nil {
		return
	}
	fc.store.InvalidatePrefix("/api/feeds")
	fc.store.InvalidatePrefix("/api/inventory")
	fc.store.InvalidatePrefix("/api/dashboard")
}

func feedFilterFromQuery(c *gin.Context) (models.FeedFilter, error) {
	var filter models.FeedFilter
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

// ListFeedings returns feed inputs matching the query filters.
// GET /api/feeds?pondId=&seasonId=&from=&to=
func (fc *FeedController) ListFeedings(c *gin.Context) (int, interface{}) {
	filter, err := feedFilterFromQuery(c)
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": err.Error()}
	}

	feeds, err := fc.service.ListFeedings(c.Request.Context(), filter)
	if err != nil {
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed inputs"}
	}
	return http.StatusOK, feeds
}

// GetFeeding returns one feed input.
// GET /api/feeds/:id
func (fc *FeedController) GetFeeding(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid feed ID"}
	}

	feed, err := fc.service.GetFeeding(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrFeedNotFound) {
			return http.StatusNotFound, gin.H{"error": "Feed input not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to fetch feed input"}
	}
	return http.StatusOK, feed
}

// CreateFeeding records a feeding and charges it against inventory.
// POST /api/feeds
func (fc *FeedController) CreateFeeding(c *gin.Context) {
	var req models.CreateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	feed, outcome, err := fc.service.RecordFeeding(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item not found"})
		case errors.Is(err, services.ErrItemInactive):
			c.JSON(http.StatusNotFound, gin.H{"error": "Inventory item is inactive"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record feeding"})
		}
		return
	}

	fc.invalidate()
	body := gin.H{"feed": feed}
	if outcome.Degraded() {
		body["warning"] = "Feed usage adjustment was not recorded"
		body["adjustments"] = outcome
	}
	c.JSON(http.StatusCreated, body)
}

// UpdateFeeding updates a feed input record.
// PUT /api/feeds/:id
func (fc *FeedController) UpdateFeeding(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed ID"})
		return
	}

	var req models.UpdateFeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	feed, err := fc.service.UpdateFeeding(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, services.ErrFeedNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feed input not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feed input"})
		return
	}

	fc.invalidate()
	c.JSON(http.StatusOK, feed)
}

// DeleteFeeding soft-deletes a feed input.
// DELETE /api/feeds/:id
func (fc *FeedController) DeleteFeeding(c *gin.Context) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed ID"})
		return
	}

	if err := fc.service.DeleteFeeding(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrFeedNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Feed input not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete feed input"})
		return
	}

	fc.invalidate()
	c.JSON(http.StatusOK, gin.H{"message": "Feed input deleted"})
}
