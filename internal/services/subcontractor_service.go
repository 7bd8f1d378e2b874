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

// subcontractorService stores the subcontractor list whole under one key,
// mirroring the project list's read-modify-write pattern.
type subcontractorService struct {
	store storage.Store
	ids   ident.Generator
	mu    sync.Mutex
}

// NewSubcontractorService creates a new SubcontractorServicer on top of the given store.
func NewSubcontractorService(store storage.Store) SubcontractorServicer {
	return &subcontractorService{store: store}
}

// CreateSubcontractor validates the draft and prepends the new entry.
// Name, specialty, and contact are all required.
func (s *subcontractorService) CreateSubcontractor(ctx context.Context, draft SubcontractorDraft) (*models.Subcontractor, error) {
	draft.Name = strings.TrimSpace(draft.Name)
	draft.Specialty = strings.TrimSpace(draft.Specialty)
	draft.Contact = strings.TrimSpace(draft.Contact)
	if draft.Name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "subcontractor name is required")
	}
	if draft.Specialty == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "specialty is required")
	}
	if draft.Contact == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contact person is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	sub := models.Subcontractor{
		ID:        s.ids.Next(),
		Name:      draft.Name,
		Specialty: draft.Specialty,
		Contact:   draft.Contact,
		CreatedAt: time.Now(),
	}

	updated := append([]models.Subcontractor{sub}, subs...)
	if err := s.save(ctx, updated); err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetSubcontractors returns a page of subcontractors, newest first.
func (s *subcontractorService) GetSubcontractors(ctx context.Context, page pagination.PageRequest) (*pagination.PageResponse[models.Subcontractor], error) {
	s.mu.Lock()
	subs, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	result := pagination.Slice(subs, page)
	return &result, nil
}

// GetSubcontractorByID returns the subcontractor with the given ID.
func (s *subcontractorService) GetSubcontractorByID(ctx context.Context, id int64) (*models.Subcontractor, error) {
	s.mu.Lock()
	subs, err := s.load(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	for i := range subs {
		if subs[i].ID == id {
			sub := subs[i]
			return &sub, nil
		}
	}
	return nil, apperrors.ErrSubcontractorNotFound
}

// UpdateSubcontractor applies the patch over an existing entry.
func (s *subcontractorService) UpdateSubcontractor(ctx context.Context, id int64, patch SubcontractorPatch) (*models.Subcontractor, error) {
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "subcontractor name is required")
	}
	if patch.Specialty != nil && strings.TrimSpace(*patch.Specialty) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "specialty is required")
	}
	if patch.Contact != nil && strings.TrimSpace(*patch.Contact) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contact person is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range subs {
		if subs[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, apperrors.ErrSubcontractorNotFound
	}

	sub := &subs[idx]
	if patch.Name != nil {
		sub.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Specialty != nil {
		sub.Specialty = strings.TrimSpace(*patch.Specialty)
	}
	if patch.Contact != nil {
		sub.Contact = strings.TrimSpace(*patch.Contact)
	}

	if err := s.save(ctx, subs); err != nil {
		return nil, err
	}
	result := *sub
	return &result, nil
}

// DeleteSubcontractor removes the entry with the given ID; absent IDs are a
// silent no-op.
func (s *subcontractorService) DeleteSubcontractor(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	subs, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Subcontractor, 0, len(subs))
	for _, sub := range subs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	if len(kept) == len(subs) {
		return nil
	}
	return s.save(ctx, kept)
}

func (s *subcontractorService) load(ctx context.Context) ([]models.Subcontractor, error) {
	var subs []models.Subcontractor
	found, err := s.store.Get(ctx, storage.KeySubcontractors, &subs)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !found {
		return []models.Subcontractor{}, nil
	}
	for _, sub := range subs {
		s.ids.Seed(sub.ID)
	}
	return subs, nil
}

func (s *subcontractorService) save(ctx context.Context, subs []models.Subcontractor) error {
	if err := s.store.Set(ctx, storage.KeySubcontractors, subs); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	return nil
}
