package services

import (
	"context"
	"strings"
	"sync"
	"time"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/ident"
	"siteledger/internal/models"
	"siteledger/internal/storage"
)

// ledgerService owns the canonical income/expense record list, newest first.
// Every mutation rewrites the whole list to the store and only commits the
// in-memory copy once the write succeeds, so memory and storage never
// diverge. The mutex serializes mutations including their persistence
// round-trip, matching the one-action-at-a-time model of the mobile client.
type ledgerService struct {
	store  storage.Store
	ids    ident.Generator
	strict bool

	mu      sync.Mutex
	records []models.FinanceRecord
}

// NewLedgerService creates a new LedgerServicer on top of the given store.
// In strict mode, updating or deleting a missing record ID is an error;
// otherwise it is a silent no-op like in the original tracker.
func NewLedgerService(store storage.Store, strict bool) LedgerServicer {
	return &ledgerService{store: store, strict: strict}
}

// Load replaces the in-memory list with the persisted one. A never-written
// key yields an empty ledger. The ID generator is seeded past the highest
// loaded ID so reloaded IDs are never reissued.
func (s *ledgerService) Load(ctx context.Context) error {
	var records []models.FinanceRecord
	found, err := s.store.Get(ctx, storage.KeyFinanceRecords, &records)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	if !found {
		records = []models.FinanceRecord{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	for _, r := range records {
		s.ids.Seed(r.ID)
	}
	return nil
}

// Records returns a copy of the full record list, newest first.
func (s *ledgerService) Records() []models.FinanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.FinanceRecord, len(s.records))
	copy(out, s.records)
	return out
}

// GetRecordByID returns the record with the given ID.
func (s *ledgerService) GetRecordByID(id int64) (*models.FinanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			r := s.records[i]
			return &r, nil
		}
	}
	return nil, apperrors.ErrRecordNotFound
}

// CreateRecord validates the draft, assigns a fresh ID and a creation date
// at minute precision, prepends the record, and persists the full list.
func (s *ledgerService) CreateRecord(ctx context.Context, draft RecordDraft) (*models.FinanceRecord, error) {
	if err := validateDraft(&draft); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := models.FinanceRecord{
		ID:          s.ids.Next(),
		Type:        draft.Type,
		Category:    draft.Category,
		Amount:      draft.Amount,
		Description: draft.Description,
		Date:        time.Now().Truncate(time.Minute),
	}

	candidate := make([]models.FinanceRecord, 0, len(s.records)+1)
	candidate = append(candidate, record)
	candidate = append(candidate, s.records...)

	if err := s.commit(ctx, candidate); err != nil {
		return nil, err
	}
	return &record, nil
}

// UpdateRecord applies the patch over the record with the given ID, keeping
// ID and date untouched, and persists the full list. A missing ID is an
// error in strict mode and a silent no-op otherwise, in which case both the
// record and the error are nil.
func (s *ledgerService) UpdateRecord(ctx context.Context, id int64, patch RecordPatch) (*models.FinanceRecord, error) {
	if err := validatePatch(&patch); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.records {
		if s.records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		if s.strict {
			return nil, apperrors.ErrRecordNotFound
		}
		return nil, nil
	}

	candidate := make([]models.FinanceRecord, len(s.records))
	copy(candidate, s.records)

	updated := &candidate[idx]
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Category != nil {
		updated.Category = *patch.Category
	}
	if patch.Amount != nil {
		updated.Amount = *patch.Amount
	}
	if patch.Description != nil {
		updated.Description = strings.TrimSpace(*patch.Description)
	}

	if err := s.commit(ctx, candidate); err != nil {
		return nil, err
	}
	result := *updated
	return &result, nil
}

// DeleteRecord removes the record with the given ID and persists the full
// list. A missing ID is an error in strict mode and a silent no-op otherwise.
func (s *ledgerService) DeleteRecord(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	candidate := make([]models.FinanceRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			candidate = append(candidate, r)
		}
	}
	if len(candidate) == len(s.records) {
		if s.strict {
			return apperrors.ErrRecordNotFound
		}
		return nil
	}

	return s.commit(ctx, candidate)
}

// Totals recomputes the summary from the full unfiltered list. It is an
// eager O(n) pass on every call; there are no incrementally maintained sums
// that could drift.
func (s *ledgerService) Totals() LedgerTotals {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totals LedgerTotals
	for _, r := range s.records {
		switch r.Type {
		case models.RecordTypeIncome:
			totals.TotalIncome += r.Amount
		case models.RecordTypeExpense:
			totals.TotalExpense += r.Amount
		}
	}
	totals.Balance = totals.TotalIncome - totals.TotalExpense
	return totals
}

// commit persists the candidate list and adopts it in memory only on
// success. Callers must hold the mutex.
func (s *ledgerService) commit(ctx context.Context, candidate []models.FinanceRecord) error {
	if err := s.store.Set(ctx, storage.KeyFinanceRecords, candidate); err != nil {
		return apperrors.Wrap(apperrors.ErrStorage, err)
	}
	s.records = candidate
	return nil
}

// validateDraft checks and normalizes a draft in place.
func validateDraft(draft *RecordDraft) error {
	if draft.Type != models.RecordTypeIncome && draft.Type != models.RecordTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if !models.ValidCategory(draft.Category) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if draft.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	draft.Description = strings.TrimSpace(draft.Description)
	if draft.Description == "" {
		return apperrors.ErrMissingDescription
	}
	return nil
}

// validatePatch checks the fields a patch actually sets.
func validatePatch(patch *RecordPatch) error {
	if patch.Type != nil && *patch.Type != models.RecordTypeIncome && *patch.Type != models.RecordTypeExpense {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "type must be income or expense")
	}
	if patch.Category != nil && !models.ValidCategory(*patch.Category) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if patch.Amount != nil && *patch.Amount <= 0 {
		return apperrors.ErrInvalidAmount
	}
	if patch.Description != nil && strings.TrimSpace(*patch.Description) == "" {
		return apperrors.ErrMissingDescription
	}
	return nil
}
