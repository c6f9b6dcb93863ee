package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/cache"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/controllers"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/database"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/middleware"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/repository"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/routes"
	"github.com/sasitharanravikumar93/shrimp-farm-backend/services"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- MongoDB setup ---
	if err := database.ConnectWithConfig(cfg.MongoURI, cfg.MongoDB); err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	defer func() {
		if err := database.Close(); err != nil {
			logger.Warn("MongoDB disconnect failed", zap.Error(err))
		}
	}()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer indexCancel()
	if err := database.EnsureIndexes(indexCtx, database.DB); err != nil {
		logger.Fatal("Index creation failed", zap.Error(err))
	}

	// --- Response cache ---
	store := cache.NewStore(cfg.CacheTTL, logger)

	// --- Service wiring ---
	pondRepo := repository.NewMongoPondRepository(database.DB)
	seasonRepo := repository.NewMongoSeasonRepository(database.DB)
	expenseRepo := repository.NewMongoExpenseRepository(database.DB)
	waterQualityRepo := repository.NewMongoWaterQualityRepository(database.DB)
	feedRepo := repository.NewMongoFeedRepository(database.DB)
	nurseryRepo := repository.NewMongoNurseryRepository(database.DB)
	inventoryRepo := repository.NewMongoInventoryRepository(database.DB)

	inventoryService := services.NewInventoryService(inventoryRepo, logger)
	pondService := services.NewPondService(pondRepo, seasonRepo)
	seasonService := services.NewSeasonService(seasonRepo)
	expenseService := services.NewExpenseService(expenseRepo)
	waterQualityService := services.NewWaterQualityService(waterQualityRepo, inventoryService, logger)
	feedService := services.NewFeedService(feedRepo, inventoryService, logger)
	nurseryService := services.NewNurseryService(nurseryRepo)
	dashboardService := services.NewDashboardService(pondRepo, seasonRepo, expenseRepo, waterQualityRepo, inventoryRepo)

	ctrl := routes.Controllers{
		Ponds:        controllers.NewPondController(pondService, store),
		Seasons:      controllers.NewSeasonController(seasonService, store),
		Expenses:     controllers.NewExpenseController(expenseService, store),
		WaterQuality: controllers.NewWaterQualityController(waterQualityService, store),
		Feeds:        controllers.NewFeedController(feedService, store),
		Nursery:      controllers.NewNurseryController(nurseryService, store),
		Inventory:    controllers.NewInventoryController(inventoryService, store),
		Dashboard:    controllers.NewDashboardController(dashboardService),
	}

	// --- HTTP router ---
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware())

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	metrics := middleware.NewHTTPMetrics(registry)
	r.Use(metrics.Middleware())
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	routes.RegisterRoutes(r, store, ctrl)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}

	go func() {
		logger.Info("Shrimp Farm backend starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Stopped gracefully")
}
