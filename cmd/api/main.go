package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"siteledger/internal/config"
	"siteledger/internal/database"
	"siteledger/internal/handlers"
	"siteledger/internal/logger"
	"siteledger/internal/middleware"
	"siteledger/internal/services"
	"siteledger/internal/storage"
	"siteledger/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "siteledger/internal/docs" // Import swagger docs
)

// @title           SiteLedger API
// @version         1.0
// @description     SiteLedger is a construction business tracker: an income/expense ledger, progress-payment schedules, projects, and subcontractors.

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize services
	store := storage.NewGormStore(dbManager.DB())
	ledgerService := services.NewLedgerService(store, appConfig.LedgerStrict)
	if err := ledgerService.Load(context.Background()); err != nil {
		return fmt.Errorf("failed to load ledger from storage: %w", err)
	}
	editSession := services.NewEditSession(ledgerService)
	exportService := services.NewExportService()
	progressService := services.NewProgressService()
	projectService := services.NewProjectService(store)
	subcontractorService := services.NewSubcontractorService(store)

	// Initialize handlers
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, editSession, exportService, appConfig.WeekStart)
	progressHandler := handlers.NewProgressHandler(progressService)
	projectHandler := handlers.NewProjectHandler(projectService)
	subcontractorHandler := handlers.NewSubcontractorHandler(subcontractorService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Ledger routes
	ledger := v1.Group("/ledger")
	ledger.GET("/records", ledgerHandler.GetRecords)
	ledger.GET("/categories", ledgerHandler.GetCategories)
	ledger.POST("/records", ledgerHandler.CreateRecord)
	ledger.PUT("/records/:id", ledgerHandler.UpdateRecord)
	ledger.DELETE("/records/:id", ledgerHandler.DeleteRecord)
	ledger.GET("/summary", ledgerHandler.GetSummary)
	ledger.POST("/edit/:id", ledgerHandler.StartEdit)
	ledger.DELETE("/edit", ledgerHandler.CancelEdit)
	ledger.GET("/edit", ledgerHandler.GetEditState)
	ledger.POST("/save", ledgerHandler.SaveRecord)
	ledger.GET("/export/csv", ledgerHandler.ExportCSV)
	ledger.GET("/export/xlsx", ledgerHandler.ExportXLSX)

	// Progress payment routes
	progress := v1.Group("/progress")
	progress.GET("/items", progressHandler.GetItems)
	progress.POST("/items", progressHandler.CreateItem)
	progress.POST("/items/:id/toggle", progressHandler.TogglePaid)
	progress.DELETE("/items/:id", progressHandler.DeleteItem)
	progress.GET("/summary", progressHandler.GetSummary)

	// Project routes
	projects := v1.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjects)
	projects.GET("/:id", projectHandler.GetProjectByID)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	// Subcontractor routes
	subcontractors := v1.Group("/subcontractors")
	subcontractors.POST("", subcontractorHandler.CreateSubcontractor)
	subcontractors.GET("", subcontractorHandler.GetSubcontractors)
	subcontractors.GET("/:id", subcontractorHandler.GetSubcontractorByID)
	subcontractors.PUT("/:id", subcontractorHandler.UpdateSubcontractor)
	subcontractors.DELETE("/:id", subcontractorHandler.DeleteSubcontractor)

	log.Infof("Starting SiteLedger backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
