package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/2az2000/fabioCoffee/controllers"
	"github.com/2az2000/fabioCoffee/database"
	"github.com/2az2000/fabioCoffee/middleware"
	"github.com/2az2000/fabioCoffee/models"
	"github.com/2az2000/fabioCoffee/repository"
	"github.com/2az2000/fabioCoffee/routes"
	"github.com/2az2000/fabioCoffee/services"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	// Prices serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := LoadConfig()
	if err != nil {
		logger.Fatal("Config load failed", zap.Error(err))
	}

	// --- Database ---
	if err := database.Connect(); err != nil {
		logger.Fatal("DB connection failed", zap.Error(err))
	}
	if err := database.DB.AutoMigrate(
		&models.Admin{},
		&models.Category{},
		&models.Item{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		logger.Fatal("Migration failed", zap.Error(err))
	}

	// --- Redis (optional, menu caching only) ---
	redisClient := database.NewRedisClient(cfg.RedisURL)

	// --- HTTP router ---
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS())
	r.Use(middleware.RequestLogger(logger))

	// Request timeout middleware
	r.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// --- Dependency injection ---
	adminRepo := repository.NewGormAdminRepository(database.DB)
	categoryRepo := repository.NewGormCategoryRepository(database.DB)
	itemRepo := repository.NewGormItemRepository(database.DB)
	tableRepo := repository.NewGormTableRepository(database.DB)
	orderRepo := repository.NewGormOrderRepository(database.DB)

	authService := services.NewAuthService(adminRepo, cfg.JWTSecret, cfg.TokenTTL, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	itemService := services.NewItemService(itemRepo, categoryRepo, logger)
	tableService := services.NewTableService(tableRepo, logger)
	orderService := services.NewOrderService(orderRepo, tableRepo, itemRepo, logger)

	menuCache := controllers.NewMenuCache(redisClient)

	ctrls := &routes.Controllers{
		Auth:     controllers.NewAuthController(authService),
		Category: controllers.NewCategoryController(categoryService, menuCache),
		Item:     controllers.NewItemController(itemService, menuCache, cfg.UploadsDir, cfg.AppURL),
		Table:    controllers.NewTableController(tableService),
		Order:    controllers.NewOrderController(orderService),
	}

	// Brute-force protection on login: 5 attempts per minute per IP.
	loginLimiter := middleware.NewRateLimiter(rate.Every(12*time.Second), 5, 10*time.Minute)

	routes.RegisterRoutes(r, ctrls, cfg.JWTSecret, loginLimiter)

	r.Static("/uploads", cfg.UploadsDir)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "service": "cafe-service"})
	})

	// --- HTTP server ---
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("Cafe Service started", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Initiating graceful shutdown...")
	httpShutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(httpShutdownCtx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			logger.Error("Redis close error", zap.Error(err))
		}
	}

	if err := database.Close(); err != nil {
		logger.Error("Database close error", zap.Error(err))
	}

	log.Println("Cafe Service stopped gracefully")
}
