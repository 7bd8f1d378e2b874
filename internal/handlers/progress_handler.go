package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
	"siteledger/internal/services"
)

// ProgressHandler handles progress-payment schedule requests.
type ProgressHandler struct {
	progressService services.ProgressServicer
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService services.ProgressServicer) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// CreateProgressItemRequest represents the request payload for adding a schedule item.
type CreateProgressItemRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Quantity    float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice   float64 `json:"unit_price" binding:"required,gt=0"`
}

// ProgressItemResponse is a schedule item with its share of the grand total.
type ProgressItemResponse struct {
	models.ProgressItem
	PercentOfTotal *float64 `json:"percent_of_total,omitempty"`
}

// GetItems handles the retrieval of the progress-payment schedule
// @Summary     List progress items
// @Description Get the progress-payment schedule, newest first, with each item's share of the grand total
// @Tags        progress
// @Accept      json
// @Produce     json
// @Success     200 {object} map[string]interface{} "Items"
// @Router      /progress/items [get]
func (h *ProgressHandler) GetItems(c *gin.Context) {
	items := h.progressService.Items()
	grandTotal := h.progressService.Summary().Total

	out := make([]ProgressItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ProgressItemResponse{
			ProgressItem:   item,
			PercentOfTotal: services.ShareOfTotal(item.Total, grandTotal),
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": out})
}

// CreateItem handles adding a schedule item
// @Summary     Add a progress item
// @Description Add an item to the progress-payment schedule; total is quantity times unit price, fixed at creation
// @Tags        progress
// @Accept      json
// @Produce     json
// @Param       request body CreateProgressItemRequest true "Item details"
// @Success     201 {object} map[string]interface{} "Item created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /progress/items [post]
func (h *ProgressHandler) CreateItem(c *gin.Context) {
	var req CreateProgressItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	item, err := h.progressService.AddItem(services.ProgressDraft{
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item": item})
}

// TogglePaid handles flipping an item's paid flag
// @Summary     Toggle paid status
// @Description Flip the paid flag of a schedule item
// @Tags        progress
// @Accept      json
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} map[string]interface{} "Updated item"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Failure     404 {object} ErrorResponse "Item not found"
// @Router      /progress/items/{id}/toggle [post]
func (h *ProgressHandler) TogglePaid(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	item, err := h.progressService.TogglePaid(id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"item": item})
}

// DeleteItem handles removing a schedule item
// @Summary     Delete a progress item
// @Description Remove an item from the schedule
// @Tags        progress
// @Accept      json
// @Produce     json
// @Param       id path int true "Item ID"
// @Success     200 {object} MessageResponse "Item deleted"
// @Failure     400 {object} ErrorResponse "Invalid item ID"
// @Router      /progress/items/{id} [delete]
func (h *ProgressHandler) DeleteItem(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.progressService.DeleteItem(id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// GetSummary handles the retrieval of schedule totals
// @Summary     Get progress summary
// @Description Get the schedule's grand total, paid total, and unpaid total
// @Tags        progress
// @Accept      json
// @Produce     json
// @Success     200 {object} services.ProgressSummary "Summary"
// @Router      /progress/summary [get]
func (h *ProgressHandler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, h.progressService.Summary())
}
