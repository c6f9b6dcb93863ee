package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/controllers"
)

// Controllers bundles everything RegisterRoutes wires up.
type Controllers struct {
	Ponds        *controllers.PondController
	Seasons      *controllers.SeasonController
	Expenses     *controllers.ExpenseController
	WaterQuality *controllers.WaterQualityController
	Feeds        *controllers.FeedController
	Nursery      *controllers.NurseryController
	Inventory    *controllers.InventoryController
	Dashboard    *controllers.DashboardController
}

// RegisterRoutes mounts the API under /api. GET collection and detail
// endpoints are wrapped with the response cache; mutating endpoints
// invalidate the affected prefixes themselves after a successful write.
func RegisterRoutes(r *gin.Engine, store *cache.Store, c Controllers) {
	api := r.Group("/api")

	ponds := api.Group("/ponds")
	{
		ponds.GET("", cache.Wrap(store, c.Ponds.ListPonds))
		ponds.GET("/:id", cache.Wrap(store, c.Ponds.GetPond))
		ponds.POST("", c.Ponds.CreatePond)
		ponds.PUT("/:id", c.Ponds.UpdatePond)
		ponds.DELETE("/:id", c.Ponds.DeletePond)
	}

	seasons := api.Group("/seasons")
	{
		seasons.GET("", cache.Wrap(store, c.Seasons.ListSeasons))
		seasons.GET("/:id", cache.Wrap(store, c.Seasons.GetSeason))
		seasons.GET("/:id/ponds", cache.Wrap(store, c.Ponds.ListPondsBySeason))
		seasons.POST("", c.Seasons.CreateSeason)
		seasons.PUT("/:id", c.Seasons.UpdateSeason)
		seasons.DELETE("/:id", c.Seasons.DeleteSeason)
	}

	expenses := api.Group("/expenses")
	{
		expenses.GET("", cache.Wrap(store, c.Expenses.ListExpenses))
		expenses.GET("/:id", cache.Wrap(store, c.Expenses.GetExpense))
		expenses.POST("", c.Expenses.CreateExpense)
		expenses.PUT("/:id", c.Expenses.UpdateExpense)
		expenses.DELETE("/:id", c.Expenses.DeleteExpense)
	}

	waterQuality := api.Group("/water-quality")
	{
		waterQuality.GET("", cache.Wrap(store, c.WaterQuality.ListReadings))
		waterQuality.GET("/:id", cache.Wrap(store, c.WaterQuality.GetReading))
		waterQuality.POST("", c.WaterQuality.CreateReading)
		waterQuality.PUT("/:id", c.WaterQuality.UpdateReading)
		waterQuality.DELETE("/:id", c.WaterQuality.DeleteReading)
	}

	feeds := api.Group("/feeds")
	{
		feeds.GET("", cache.Wrap(store, c.Feeds.ListFeedings))
		feeds.GET("/:id", cache.Wrap(store, c.Feeds.GetFeeding))
		feeds.POST("", c.Feeds.CreateFeeding)
		feeds.PUT("/:id", c.Feeds.UpdateFeeding)
		feeds.DELETE("/:id", c.Feeds.DeleteFeeding)
	}

	nursery := api.Group("/nursery-batches")
	{
		nursery.GET("", cache.Wrap(store, c.Nursery.ListBatches))
		nursery.GET("/:id", cache.Wrap(store, c.Nursery.GetBatch))
		nursery.POST("", c.Nursery.CreateBatch)
		nursery.PUT("/:id", c.Nursery.UpdateBatch)
		nursery.DELETE("/:id", c.Nursery.DeleteBatch)
	}

	items := api.Group("/inventory-items")
	{
		items.GET("", cache.Wrap(store, c.Inventory.ListItems))
		items.GET("/:id", cache.Wrap(store, c.Inventory.GetItem))
		items.GET("/:id/quantity", cache.Wrap(store, c.Inventory.GetQuantity))
		items.GET("/:id/adjustments", cache.Wrap(store, c.Inventory.ListAdjustments))
		items.POST("", c.Inventory.CreateItem)
		items.PUT("/:id", c.Inventory.UpdateItem)
		items.DELETE("/:id", c.Inventory.DeleteItem)
	}

	api.POST("/inventory-adjustments", c.Inventory.CreateAdjustment)
	api.GET("/inventory/aggregated", cache.Wrap(store, c.Inventory.GetAggregated))

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/ponds/:id", cache.Wrap(store, c.Dashboard.GetPondDashboard))
		dashboard.GET("/seasons/:id", cache.Wrap(store, c.Dashboard.GetSeasonSummary))
	}
}
