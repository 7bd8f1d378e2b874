package integration

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"siteledger/internal/handlers"
	"siteledger/internal/logger"
	"siteledger/internal/middleware"
	"siteledger/internal/services"
	"siteledger/internal/storage"
	"siteledger/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	Store  storage.Store
	Ledger services.LedgerServicer
	Router *gin.Engine
}

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupApp creates a full application stack backed by an in-memory store.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	store := storage.NewMemoryStore()

	// Services
	ledgerService := services.NewLedgerService(store, false)
	if err := ledgerService.Load(context.Background()); err != nil {
		t.Fatalf("failed to load ledger: %v", err)
	}
	editSession := services.NewEditSession(ledgerService)
	exportService := services.NewExportService()
	progressService := services.NewProgressService()
	projectService := services.NewProjectService(store)
	subcontractorService := services.NewSubcontractorService(store)

	// Handlers
	ledgerHandler := handlers.NewLedgerHandler(ledgerService, editSession, exportService, time.Monday)
	progressHandler := handlers.NewProgressHandler(progressService)
	projectHandler := handlers.NewProjectHandler(projectService)
	subcontractorHandler := handlers.NewSubcontractorHandler(subcontractorService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

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

	progress := v1.Group("/progress")
	progress.GET("/items", progressHandler.GetItems)
	progress.POST("/items", progressHandler.CreateItem)
	progress.POST("/items/:id/toggle", progressHandler.TogglePaid)
	progress.DELETE("/items/:id", progressHandler.DeleteItem)
	progress.GET("/summary", progressHandler.GetSummary)

	projects := v1.Group("/projects")
	projects.POST("", projectHandler.CreateProject)
	projects.GET("", projectHandler.GetProjects)
	projects.GET("/:id", projectHandler.GetProjectByID)
	projects.PUT("/:id", projectHandler.UpdateProject)
	projects.DELETE("/:id", projectHandler.DeleteProject)

	subcontractors := v1.Group("/subcontractors")
	subcontractors.POST("", subcontractorHandler.CreateSubcontractor)
	subcontractors.GET("", subcontractorHandler.GetSubcontractors)
	subcontractors.GET("/:id", subcontractorHandler.GetSubcontractorByID)
	subcontractors.PUT("/:id", subcontractorHandler.UpdateSubcontractor)
	subcontractors.DELETE("/:id", subcontractorHandler.DeleteSubcontractor)

	return &testApp{Store: store, Ledger: ledgerService, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
