package services

import (
	"strings"
	"sync"
	"time"

	apperrors "siteledger/internal/errors"
	"siteledger/internal/ident"
	"siteledger/internal/models"
)

// progressService holds the progress-payment schedule for the session.
// Items are not persisted; the schedule is rebuilt per engagement, which is
// how the site managers use the hakediş screen.
type progressService struct {
	ids ident.Generator

	mu    sync.Mutex
	items []models.ProgressItem
}

// NewProgressService creates an empty ProgressServicer.
func NewProgressService() ProgressServicer {
	return &progressService{}
}

// Items returns a copy of the schedule, newest first.
func (s *progressService) Items() []models.ProgressItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.ProgressItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddItem validates the draft and prepends a new item. Total is computed
// once here and never recomputed afterwards.
func (s *progressService) AddItem(draft ProgressDraft) (*models.ProgressItem, error) {
	draft.Description = strings.TrimSpace(draft.Description)
	if draft.Description == "" {
		return nil, apperrors.ErrMissingDescription
	}
	if draft.Quantity <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "quantity must be greater than zero")
	}
	if draft.UnitPrice <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unit price must be greater than zero")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.ProgressItem{
		ID:          s.ids.Next(),
		Description: draft.Description,
		Quantity:    draft.Quantity,
		UnitPrice:   draft.UnitPrice,
		Total:       draft.Quantity * draft.UnitPrice,
		Paid:        false,
		Date:        time.Now().Format("2006-01-02 15:04"),
	}
	s.items = append([]models.ProgressItem{item}, s.items...)
	return &item, nil
}

// TogglePaid flips the paid flag of the item with the given ID.
func (s *progressService) TogglePaid(id int64) (*models.ProgressItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Paid = !s.items[i].Paid
			item := s.items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrProgressItemNotFound
}

// DeleteItem removes the item with the given ID. Deleting an absent ID is a
// silent no-op, matching the swipe-to-delete behavior of the client.
func (s *progressService) DeleteItem(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	return nil
}

// Summary recomputes the schedule totals from scratch on every call.
func (s *progressService) Summary() ProgressSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	var summary ProgressSummary
	for _, item := range s.items {
		summary.Total += item.Total
		if item.Paid {
			summary.TotalPaid += item.Total
		}
	}
	summary.TotalUnpaid = summary.Total - summary.TotalPaid
	return summary
}

// ShareOfTotal returns itemTotal as a percentage of grandTotal, or nil when
// the grand total is zero and no share can be shown.
func ShareOfTotal(itemTotal, grandTotal float64) *float64 {
	if grandTotal == 0 {
		return nil
	}
	share := itemTotal / grandTotal * 100
	return &share
}
