package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
)

// DashboardController serves the read-side rollups.
type DashboardController struct {
	service services.DashboardService
}

// NewDashboardController creates a new DashboardController.
func NewDashboardController(service services.DashboardService) *DashboardController {
	return &DashboardController{service: service}
}

// GetPondDashboard returns the rollup for one pond.
// GET /api/dashboard/ponds/:id
func (dc *DashboardController) GetPondDashboard(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid pond ID"}
	}

	dashboard, err := dc.service.PondDashboard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPondNotFound) {
			return http.StatusNotFound, gin.H{"error": "Pond not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to build pond dashboard"}
	}
	return http.StatusOK, dashboard
}

// GetSeasonSummary returns the rollup for one season.
// GET /api/dashboard/seasons/:id
func (dc *DashboardController) GetSeasonSummary(c *gin.Context) (int, interface{}) {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return http.StatusBadRequest, gin.H{"error": "Invalid season ID"}
	}

	summary, err := dc.service.SeasonSummary(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSeasonNotFound) {
			return http.StatusNotFound, gin.H{"error": "Season not found"}
		}
		return http.StatusInternalServerError, gin.H{"error": "Failed to build season summary"}
	}
	return http.StatusOK, summary
}
