package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/pagination"
	"siteledger/internal/services"
)

// SubcontractorHandler handles subcontractor directory requests.
type SubcontractorHandler struct {
	subcontractorService services.SubcontractorServicer
}

// NewSubcontractorHandler creates a new SubcontractorHandler.
func NewSubcontractorHandler(subcontractorService services.SubcontractorServicer) *SubcontractorHandler {
	return &SubcontractorHandler{subcontractorService: subcontractorService}
}

// CreateSubcontractorRequest represents the request payload for creating a subcontractor.
type CreateSubcontractorRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	Specialty string `json:"specialty" binding:"required,max=200"`
	Contact   string `json:"contact" binding:"required,max=200"`
}

// UpdateSubcontractorRequest represents the request payload for updating a subcontractor.
type UpdateSubcontractorRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=200"`
	Specialty *string `json:"specialty" binding:"omitempty,max=200"`
	Contact   *string `json:"contact" binding:"omitempty,max=200"`
}

// CreateSubcontractor handles the creation of a new subcontractor
// @Summary     Create a subcontractor
// @Description Add a subcontractor to the directory
// @Tags        subcontractors
// @Accept      json
// @Produce     json
// @Param       request body CreateSubcontractorRequest true "Subcontractor details"
// @Success     201 {object} map[string]interface{} "Subcontractor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcontractors [post]
func (h *SubcontractorHandler) CreateSubcontractor(c *gin.Context) {
	var req CreateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.subcontractorService.CreateSubcontractor(c.Request.Context(), services.SubcontractorDraft{
		Name:      req.Name,
		Specialty: req.Specialty,
		Contact:   req.Contact,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"subcontractor": sub})
}

// GetSubcontractors handles the retrieval of subcontractors
// @Summary     List subcontractors
// @Description Get a paginated list of subcontractors, newest first
// @Tags        subcontractors
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Subcontractor] "Paginated subcontractors"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcontractors [get]
func (h *SubcontractorHandler) GetSubcontractors(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.subcontractorService.GetSubcontractors(c.Request.Context(), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSubcontractorByID handles the retrieval of a specific subcontractor
// @Summary     Get subcontractor by ID
// @Description Get a specific subcontractor by ID
// @Tags        subcontractors
// @Accept      json
// @Produce     json
// @Param       id path int true "Subcontractor ID"
// @Success     200 {object} map[string]interface{} "Subcontractor details"
// @Failure     400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure     404 {object} ErrorResponse "Subcontractor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcontractors/{id} [get]
func (h *SubcontractorHandler) GetSubcontractorByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	sub, err := h.subcontractorService.GetSubcontractorByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subcontractor": sub})
}

// UpdateSubcontractor handles updating an existing subcontractor
// @Summary     Update subcontractor
// @Description Update fields of an existing subcontractor
// @Tags        subcontractors
// @Accept      json
// @Produce     json
// @Param       id      path int                        true "Subcontractor ID"
// @Param       request body UpdateSubcontractorRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Updated subcontractor"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Subcontractor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcontractors/{id} [put]
func (h *SubcontractorHandler) UpdateSubcontractor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateSubcontractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	sub, err := h.subcontractorService.UpdateSubcontractor(c.Request.Context(), id, services.SubcontractorPatch{
		Name:      req.Name,
		Specialty: req.Specialty,
		Contact:   req.Contact,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"subcontractor": sub})
}

// DeleteSubcontractor handles the deletion of a subcontractor
// @Summary     Delete subcontractor
// @Description Remove a subcontractor from the directory
// @Tags        subcontractors
// @Accept      json
// @Produce     json
// @Param       id path int true "Subcontractor ID"
// @Success     200 {object} MessageResponse "Subcontractor deleted"
// @Failure     400 {object} ErrorResponse "Invalid subcontractor ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /subcontractors/{id} [delete]
func (h *SubcontractorHandler) DeleteSubcontractor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.subcontractorService.DeleteSubcontractor(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subcontractor deleted successfully"})
}
