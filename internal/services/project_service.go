package services

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/ident"
	"siteledger/internal/models"
	"siteledger/internal/pagination"
	"siteledger/internal/storage"
)

// projectService stores the project list whole under one key, reading and
// rewriting it on every operation the way each screen of the original app
// did against its storage layer.
type projectService struct {
	store storage.Store
	ids   ident.Generator
	mu    sync.Mutex
}

// NewProjectService creates a new ProjectServicer on top of the given store.
func NewProjectService(store storage.Store) ProjectServicer {
	return &projectService{store: store}
}

// CreateProject validates the draft, fills defaults, and prepends the new
// project to the persisted list.
func (s *projectService) CreateProject(ctx context.Context, draft ProjectDraft) (*models.Project, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	if draft.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if draft.EstimatedBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimated budget must not be negative")
	}
	if draft.ProjectType == "" {
		draft.ProjectType = models.ProjectTypeResidential
	}
	if draft.Status == "" {
		draft.Status = models.ProjectStatusPlanning
	}
	if draft.Priority == "" {
		draft.Priority = models.PriorityMedium
	}
	if draft.StartDate.IsZero() {
		draft.StartDate = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	project := models.Project{
		ID:              s.ids.Next(),
		Name:            draft.Name,
		Description:     draft.Description,
		ProjectType:     draft.ProjectType,
		Status:          draft.Status,
		Priority:        draft.Priority,
		StartDate:       draft.StartDate,
		EndDate:         draft.EndDate,
		ClientCompany:   draft.ClientCompany,
		ProjectManager:  draft.ProjectManager,
		Location:        draft.Location,
		EstimatedBudget: draft.EstimatedBudget,
		CreatedAt:       time.Now(),
	}

	updated := append([]models.Project{project}, projects...)
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}
	return &project, nil
}

// GetProjects returns a page of projects, optionally filtered by a
// case-insensitive name substring.
func (s *projectService) GetProjects(ctx context.Context, search string, page pagination.PageRequest) (*pagination.PageResponse[models.Project], error) {
	s.mu.Lock()
	projects, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if search != "" {
		needle := strings.ToLower(search)
		filtered := make([]models.Project, 0, len(projects))
		for _, p := range projects {
			if strings.Contains(strings.ToLower(p.Name), needle) {
				filtered = append(filtered, p)
			}
		}
		projects = filtered
	}

	result := pagination.Slice(projects, page)
	return &result, nil
}

// GetProjectByID returns the project with the given ID.
func (s *projectService) GetProjectByID(ctx context.Context, id int64) (*models.Project, error) {
	s.mu.Lock()
	projects, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	for i := range projects {
		if projects[i].ID == id {
			p := projects[i]
			return &p, nil
		}
	}
	return nil, apperrors.ErrProjectNotFound
}

// UpdateProject applies the patch over an existing project and persists the
// full list. The detail screen edits a loaded project, so a missing ID is
// always an error here.
func (s *projectService) UpdateProject(ctx context.Context, id int64, patch ProjectPatch) (*models.Project, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}
	if patch.EstimatedBudget != nil && *patch.EstimatedBudget < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "estimated budget must not be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range projects {
		if projects[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrProjectNotFound
	}

	p := &projects[idx]
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.ProjectType != nil {
		p.ProjectType = *patch.ProjectType
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Priority != nil {
		p.Priority = *patch.Priority
	}
	if patch.StartDate != nil {
		p.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		p.EndDate = patch.EndDate
	}
	if patch.ClientCompany != nil {
		p.ClientCompany = *patch.ClientCompany
	}
	if patch.ProjectManager != nil {
		p.ProjectManager = *patch.ProjectManager
	}
	if patch.Location != nil {
		p.Location = *patch.Location
	}
	if patch.EstimatedBudget != nil {
		p.EstimatedBudget = *patch.EstimatedBudget
	}

	if err := s.save(ctx, projects); err != nil {
		return nil, err
	}
	result := *p
	return &result, nil
}

// DeleteProject removes the project with the given ID. Deleting an absent
// ID is a silent no-op (swipe-to-delete semantics).
func (s *projectService) DeleteProject(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return nil
	}
	return s.save(ctx, kept)
}

// load reads the persisted list, seeding the ID generator so IDs from prior
// runs are never reissued.
func (s *projectService) load(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	found, err := s.store.Get(ctx, storage.KeyProjects, &projects)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !found {
		return []models.Project{}, nil
	}
	for _, p := range projects {
		s.ids.Seed(p.ID)
	}
	return projects, nil
}

func (s *projectService) save(ctx context.Context, projects []models.Project) error {
	if err := s.store.Set(ctx, storage.KeyProjects, projects); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
