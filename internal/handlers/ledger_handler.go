package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
	"siteledger/internal/services"
)

// LedgerHandler handles finance record and edit session requests.
type LedgerHandler struct {
	ledger    services.LedgerServicer
	session   *services.EditSession
	export    services.ExportServicer
	weekStart time.Weekday
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger services.LedgerServicer, session *services.EditSession, export services.ExportServicer, weekStart time.Weekday) *LedgerHandler {
	return &LedgerHandler{ledger: ledger, session: session, export: export, weekStart: weekStart}
}

// RecordRequest represents the request payload for creating or saving a record.
type RecordRequest struct {
	Type        models.RecordType `json:"type" binding:"required,record_type"`
	Category    string            `json:"category" binding:"required,record_category"`
	Amount      float64           `json:"amount" binding:"required"`
	Description string            `json:"description" binding:"required,max=500"`
}

func (r RecordRequest) draft() services.RecordDraft {
	return services.RecordDraft{
		Type:        r.Type,
		Category:    r.Category,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

// UpdateRecordRequest represents the request payload for updating a record.
type UpdateRecordRequest struct {
	Type        *models.RecordType `json:"type" binding:"omitempty,record_type"`
	Category    *string            `json:"category" binding:"omitempty,record_category"`
	Amount      *float64           `json:"amount"`
	Description *string            `json:"description" binding:"omitempty,max=500"`
}

// RecordFilterQuery represents the query parameters for listing records.
type RecordFilterQuery struct {
	Category string `form:"category" binding:"omitempty,record_category"`
	Window   string `form:"window" binding:"omitempty,time_window"`
}

// GetRecords handles the retrieval of finance records
// @Summary     List finance records
// @Description Get all finance records, newest first, optionally filtered by category and time window
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       category query string false "Filter by category"
// @Param       window   query string false "Time window (all, today, this_week)"
// @Success     200 {object} map[string]interface{} "Records"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /ledger/records [get]
func (h *LedgerHandler) GetRecords(c *gin.Context) {
	var query RecordFilterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter := services.RecordFilter{
		Window:    services.WindowAll,
		WeekStart: h.weekStart,
	}
	if query.Category != "" {
		filter.Category = &query.Category
	}
	if query.Window != "" {
		filter.Window = services.TimeWindow(query.Window)
	}

	records := services.FilterRecords(h.ledger.Records(), filter)
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// GetCategories handles the retrieval of the fixed category set
// @Summary     List record categories
// @Description Get the fixed set of categories a record can belong to
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]interface{} "Categories"
// @Router      /ledger/categories [get]
func (h *LedgerHandler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories()})
}

// CreateRecord handles the creation of a new finance record
// @Summary     Create a finance record
// @Description Create a new income or expense record
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body RecordRequest true "Record details"
// @Success     201 {object} map[string]interface{} "Record created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/records [post]
func (h *LedgerHandler) CreateRecord(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.ledger.CreateRecord(c.Request.Context(), req.draft())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"record": record})
}

// UpdateRecord handles updating an existing finance record
// @Summary     Update a finance record
// @Description Update fields of an existing record; ID and date are preserved
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id      path int                 true "Record ID"
// @Param       request body UpdateRecordRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Updated record (null when the ID no longer exists)"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/records/{id} [put]
func (h *LedgerHandler) UpdateRecord(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.ledger.UpdateRecord(c.Request.Context(), id, services.RecordPatch{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// DeleteRecord handles the deletion of a finance record
// @Summary     Delete a finance record
// @Description Delete a record by ID
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id path int true "Record ID"
// @Success     200 {object} MessageResponse "Record deleted"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/records/{id} [delete]
func (h *LedgerHandler) DeleteRecord(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.ledger.DeleteRecord(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Record deleted successfully"})
}

// GetSummary handles the retrieval of ledger totals
// @Summary     Get ledger summary
// @Description Get total income, total expense, and balance over all records
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Success     200 {object} services.LedgerTotals "Totals"
// @Router      /ledger/summary [get]
func (h *LedgerHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.ledger.Totals())
}

// StartEdit begins editing a record
// @Summary     Start editing a record
// @Description Load a record into the edit session draft, replacing any in-flight draft
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       id path int true "Record ID"
// @Success     200 {object} map[string]interface{} "Draft"
// @Failure     400 {object} ErrorResponse "Invalid record ID"
// @Failure     404 {object} ErrorResponse "Record not found"
// @Router      /ledger/edit/{id} [post]
func (h *LedgerHandler) StartEdit(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	draft, err := h.session.Start(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"editing_id": id, "draft": draft})
}

// CancelEdit discards the edit session draft
// @Summary     Cancel editing
// @Description Discard the in-flight draft and return the session to idle
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Success     200 {object} MessageResponse "Edit cancelled"
// @Router      /ledger/edit [delete]
func (h *LedgerHandler) CancelEdit(c *gin.Context) {
	h.session.Cancel()
	c.JSON(http.StatusOK, gin.H{"message": "Edit cancelled"})
}

// GetEditState returns the edit session state
// @Summary     Get edit session state
// @Description Get the ID being edited (null when idle) and the current draft
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]interface{} "Session state"
// @Router      /ledger/edit [get]
func (h *LedgerHandler) GetEditState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"editing_id": h.session.EditingID(),
		"draft":      h.session.Draft(),
	})
}

// SaveRecord submits the form draft through the edit session
// @Summary     Save the record form
// @Description Create a new record when idle, or update the record being edited
// @Tags        ledger
// @Accept      json
// @Produce     json
// @Param       request body RecordRequest true "Form fields"
// @Success     200 {object} map[string]interface{} "Saved record"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/save [post]
func (h *LedgerHandler) SaveRecord(c *gin.Context) {
	var req RecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	record, err := h.session.Save(c.Request.Context(), req.draft())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"record": record})
}

// ExportCSV downloads the ledger as CSV
// @Summary     Export ledger as CSV
// @Description Download finance records as a CSV file, optionally bounded by from/to dates
// @Tags        ledger
// @Produce     text/csv
// @Param       from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {file} file "CSV document"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/export/csv [get]
func (h *LedgerHandler) ExportCSV(c *gin.Context) {
	records, err := h.exportRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out, err := h.export.LedgerCSV(records)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.sendAttachment(c, out, "csv", "text/csv; charset=utf-8")
}

// ExportXLSX downloads the ledger as an Excel workbook
// @Summary     Export ledger as XLSX
// @Description Download finance records and summary as an Excel workbook, optionally bounded by from/to dates
// @Tags        ledger
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param       from query string false "Start date (RFC3339 or YYYY-MM-DD)"
// @Param       to   query string false "End date (RFC3339 or YYYY-MM-DD)"
// @Success     200 {file} file "Excel document"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /ledger/export/xlsx [get]
func (h *LedgerHandler) ExportXLSX(c *gin.Context) {
	records, err := h.exportRecords(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out, err := h.export.LedgerXLSX(records)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.sendAttachment(c, out, "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

func (h *LedgerHandler) exportRecords(c *gin.Context) ([]models.FinanceRecord, error) {
	var from, to time.Time

	if v := c.Query("from"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from date, use RFC3339 or YYYY-MM-DD")
		}
		from = t
	}
	if v := c.Query("to"); v != "" {
		t, err := parseFlexibleTime(v)
		if err != nil {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to date, use RFC3339 or YYYY-MM-DD")
		}
		to = t
	}

	return services.RecordsInRange(h.ledger.Records(), from, to), nil
}

func (h *LedgerHandler) sendAttachment(c *gin.Context, data []byte, ext, contentType string) {
	filename := fmt.Sprintf("ledger-%s.%s", time.Now().Format("2006-01-02"), ext)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
