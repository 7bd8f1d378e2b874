package services

import (
	"context"
	"sync"

	"siteledger/internal/models"
)

// EditSession tracks the single in-flight edit the tracker's one form
// allows. Idle means Save creates a new record; while a record is being
// edited, Save routes to an update of that record and then returns the
// session to idle. Starting a new edit silently replaces any previous
// draft, with no confirmation or merge.
type EditSession struct {
	ledger LedgerServicer

	mu        sync.Mutex
	editingID *int64
	draft     RecordDraft
}

// NewEditSession creates an idle edit session over the given ledger.
func NewEditSession(ledger LedgerServicer) *EditSession {
	return &EditSession{ledger: ledger}
}

// Start begins editing the record with the given ID, copying its fields
// into the draft buffer. Any in-flight draft is discarded.
func (s *EditSession) Start(id int64) (RecordDraft, error) {
	record, err := s.ledger.GetRecordByID(id)
	if err != nil {
		return RecordDraft{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = &record.ID
	s.draft = RecordDraft{
		Type:        record.Type,
		Category:    record.Category,
		Amount:      record.Amount,
		Description: record.Description,
	}
	return s.draft, nil
}

// Cancel discards the draft and returns to idle. The edited record is left
// unchanged. Cancelling an idle session is a no-op.
func (s *EditSession) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

// EditingID returns the ID of the record being edited, or nil when idle.
func (s *EditSession) EditingID() *int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.editingID == nil {
		return nil
	}
	id := *s.editingID
	return &id
}

// Draft returns the current draft buffer.
func (s *EditSession) Draft() RecordDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// Save submits the draft: an update of the in-flight record when editing,
// a create when idle. On success the session returns to idle with a fresh
// draft. A failed save keeps the session state so the user can retry.
func (s *EditSession) Save(ctx context.Context, draft RecordDraft) (*models.FinanceRecord, error) {
	s.mu.Lock()
	editingID := s.editingID
	s.mu.Unlock()

	var record *models.FinanceRecord
	var err error
	if editingID != nil {
		record, err = s.ledger.UpdateRecord(ctx, *editingID, patchFromDraft(draft))
	} else {
		record, err = s.ledger.CreateRecord(ctx, draft)
	}
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.reset()
	s.mu.Unlock()
	return record, nil
}

// reset clears the session. Callers must hold the mutex.
func (s *EditSession) reset() {
	s.editingID = nil
	s.draft = RecordDraft{}
}

// patchFromDraft turns a full form draft into a patch over every editable
// field. ID and date are preserved by the record store.
func patchFromDraft(draft RecordDraft) RecordPatch {
	return RecordPatch{
		Type:        &draft.Type,
		Category:    &draft.Category,
		Amount:      &draft.Amount,
		Description: &draft.Description,
	}
}
