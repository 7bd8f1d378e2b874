package services

import (
	"time"

	"siteledger/internal/models"
)

// TimeWindow names the time ranges the tracker can filter by.
type TimeWindow string

const (
	WindowAll      TimeWindow = "all"
	WindowToday    TimeWindow = "today"
	WindowThisWeek TimeWindow = "this_week"
)

// ValidWindow reports whether w names a supported time window.
func ValidWindow(w TimeWindow) bool {
	switch w {
	case WindowAll, WindowToday, WindowThisWeek:
		return true
	}
	return false
}

// RecordFilter selects records by category and time window. A nil Category
// matches every category. Now is the reference time for the window (zero
// means time.Now()); WeekStart is the first day of the week for the
// this-week window.
type RecordFilter struct {
	Category  *string
	Window    TimeWindow
	Now       time.Time
	WeekStart time.Weekday
}

// FilterRecords returns the records that satisfy both the category and time
// predicates. It is a pure projection over its inputs: no hidden state, and
// applying the same filter twice yields the same result.
func FilterRecords(records []models.FinanceRecord, filter RecordFilter) []models.FinanceRecord {
	now := filter.Now
	if now.IsZero() {
		now = time.Now()
	}

	out := make([]models.FinanceRecord, 0, len(records))
	for _, r := range records {
		if filter.Category != nil && r.Category != *filter.Category {
			continue
		}

		switch filter.Window {
		case WindowToday:
			if !sameDay(r.Date, now) {
				continue
			}
		case WindowThisWeek:
			if !sameWeek(r.Date, now, filter.WeekStart) {
				continue
			}
		}

		out = append(out, r)
	}
	return out
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// sameWeek reports whether date falls in the calendar week containing ref,
// with weeks beginning on weekStart at midnight.
func sameWeek(date, ref time.Time, weekStart time.Weekday) bool {
	start := startOfWeek(ref, weekStart)
	end := start.AddDate(0, 0, 7)
	return !date.Before(start) && date.Before(end)
}

// startOfWeek returns midnight of the most recent weekStart on or before t.
func startOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	back := (int(t.Weekday()) - int(weekStart) + 7) % 7
	y, m, d := t.AddDate(0, 0, -back).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
