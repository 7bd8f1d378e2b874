package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/models"
	"siteledger/internal/pagination"
	"siteledger/internal/services"
)

// ProjectHandler handles project tracking requests.
type ProjectHandler struct {
	projectService services.ProjectServicer
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService services.ProjectServicer) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// CreateProjectRequest represents the request payload for creating a project.
type CreateProjectRequest struct {
	Name            string                  `json:"name" binding:"required,max=200"`
	Description     string                  `json:"description" binding:"max=2000"`
	ProjectType     models.ProjectType      `json:"project_type" binding:"omitempty,project_type"`
	Status          models.ProjectStatus    `json:"status" binding:"omitempty,project_status"`
	Priority        models.ProjectPriority  `json:"priority" binding:"omitempty,project_priority"`
	StartDate       *string                 `json:"start_date"`
	EndDate         *string                 `json:"end_date"`
	ClientCompany   string                  `json:"client_company" binding:"max=200"`
	ProjectManager  string                  `json:"project_manager" binding:"max=200"`
	Location        string                  `json:"location" binding:"max=200"`
	EstimatedBudget float64                 `json:"estimated_budget" binding:"omitempty,gte=0"`
}

// UpdateProjectRequest represents the request payload for updating a project.
type UpdateProjectRequest struct {
	Name            *string                 `json:"name" binding:"omitempty,max=200"`
	Description     *string                 `json:"description" binding:"omitempty,max=2000"`
	ProjectType     *models.ProjectType     `json:"project_type" binding:"omitempty,project_type"`
	Status          *models.ProjectStatus   `json:"status" binding:"omitempty,project_status"`
	Priority        *models.ProjectPriority `json:"priority" binding:"omitempty,project_priority"`
	StartDate       *string                 `json:"start_date"`
	EndDate         *string                 `json:"end_date"`
	ClientCompany   *string                 `json:"client_company" binding:"omitempty,max=200"`
	ProjectManager  *string                 `json:"project_manager" binding:"omitempty,max=200"`
	Location        *string                 `json:"location" binding:"omitempty,max=200"`
	EstimatedBudget *float64                `json:"estimated_budget" binding:"omitempty,gte=0"`
}

// CreateProject handles the creation of a new project
// @Summary     Create a project
// @Description Create a new construction project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       request body CreateProjectRequest true "Project details"
// @Success     201 {object} map[string]interface{} "Project created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	draft := services.ProjectDraft{
		Name:            req.Name,
		Description:     req.Description,
		ProjectType:     req.ProjectType,
		Status:          req.Status,
		Priority:        req.Priority,
		ClientCompany:   req.ClientCompany,
		ProjectManager:  req.ProjectManager,
		Location:        req.Location,
		EstimatedBudget: req.EstimatedBudget,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		draft.StartDate = parsed
	}
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		draft.EndDate = &parsed
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), draft)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"project": project})
}

// GetProjects handles the retrieval of projects
// @Summary     List projects
// @Description Get a paginated list of projects, newest first, with optional name search
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       page      query int    false "Page number (default 1)"
// @Param       page_size query int    false "Items per page (default 20, max 100)"
// @Param       search    query string false "Case-insensitive name filter"
// @Success     200 {object} pagination.PageResponse[models.Project] "Paginated projects"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects [get]
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.projectService.GetProjects(c.Request.Context(), c.Query("search"), page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProjectByID handles the retrieval of a specific project
// @Summary     Get project by ID
// @Description Get a specific project by ID
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {object} map[string]interface{} "Project details"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [get]
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	project, err := h.projectService.GetProjectByID(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// UpdateProject handles updating an existing project
// @Summary     Update project
// @Description Update fields of an existing project
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id      path int                  true "Project ID"
// @Param       request body UpdateProjectRequest true "Fields to update"
// @Success     200 {object} map[string]interface{} "Updated project"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Project not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	patch := services.ProjectPatch{
		Name:            req.Name,
		Description:     req.Description,
		ProjectType:     req.ProjectType,
		Status:          req.Status,
		Priority:        req.Priority,
		ClientCompany:   req.ClientCompany,
		ProjectManager:  req.ProjectManager,
		Location:        req.Location,
		EstimatedBudget: req.EstimatedBudget,
	}

	if req.StartDate != nil && *req.StartDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.StartDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		patch.StartDate = &parsed
	}
	if req.EndDate != nil && *req.EndDate != "" {
		parsed, parseErr := parseFlexibleTime(*req.EndDate)
		if parseErr != nil {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, parseErr.Error()))
			return
		}
		patch.EndDate = &parsed
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, patch)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": project})
}

// DeleteProject handles the deletion of a project
// @Summary     Delete project
// @Description Delete a project by ID
// @Tags        projects
// @Accept      json
// @Produce     json
// @Param       id path int true "Project ID"
// @Success     200 {object} MessageResponse "Project deleted"
// @Failure     400 {object} ErrorResponse "Invalid project ID"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
