package main

import (
	"context"
	"net/http"

	"design-service/internal/catalog"
	"design-service/internal/chat"
	"design-service/internal/design"
	"design-service/internal/handler"
	"design-service/internal/llm"
	mid "design-service/internal/middleware"
	"design-service/internal/recommend"
	"design-service/internal/store"
	"design-service/pkg/config"
	"design-service/pkg/database"
	"design-service/pkg/logger"
	"design-service/pkg/redisutil"
	"design-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; missing file is fine, environment variables and
	// config defaults take over
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting design-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Seed layout templates
	if err := catalog.SeedTemplates(db, log); err != nil {
		log.Fatal("Failed to seed layout templates", zap.Error(err))
	}

	// Redis backs session rate limiting and conversation context
	// caching; the service degrades gracefully without it
	redisClient, err := redisutil.NewClient(context.Background(), &appConfig.Redis)
	if err != nil {
		log.Warn("Redis unavailable, session caching disabled", zap.Error(err))
		redisClient = nil
	} else {
		log.Info("Redis connection established")
	}

	// Wire services
	catalogRepo := catalog.NewRepository(db)
	sessionStore := store.NewSessionStore(db)
	templateStore := store.NewTemplateStore(db)
	designStore := store.NewDesignStore(db)

	texter := llm.NewGeminiClient(&appConfig.Gemini)
	engine := design.NewEngine(appConfig.Engine, catalogRepo, texter, log)

	chatService := chat.NewService(sessionStore, catalogRepo, texter, redisClient, appConfig.Redis, log)
	recommendService := recommend.NewService(sessionStore, templateStore, designStore, engine, log)

	sessionHandler := handler.NewSessionHandler(sessionStore, chatService)
	designHandler := handler.NewDesignHandler(recommendService, designStore, templateStore)
	productHandler := handler.NewProductHandler(catalogRepo)

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Session and chat routes
	sessionAPI := e.Group("/api/sessions")
	sessionAPI.POST("/start", sessionHandler.Start)
	sessionAPI.GET("/:id", sessionHandler.Get)
	sessionAPI.GET("/:id/designs", designHandler.ListBySession)
	e.POST("/api/chat", sessionHandler.Chat)

	// Design routes
	designAPI := e.Group("/api/designs")
	designAPI.POST("/generate", designHandler.Generate)
	designAPI.GET("/:id", designHandler.Get)
	designAPI.GET("/:id/export-pdf", designHandler.ExportPDF)
	designAPI.GET("/:id/export-xlsx", designHandler.ExportXLSX)

	// Template routes
	e.GET("/api/templates", designHandler.ListTemplates)

	// Product API routes
	productAPI := e.Group("/api/products")
	productAPI.GET("", productHandler.List)
	productAPI.GET("/:id", productHandler.Get)
	productAPI.POST("", productHandler.Create)
	productAPI.PUT("/:id", productHandler.Update)
	productAPI.DELETE("/:id", productHandler.Delete)

	// Category API routes
	categoryAPI := e.Group("/api/categories")
	categoryAPI.GET("", productHandler.ListCategories)
	categoryAPI.POST("", productHandler.CreateCategory)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
