package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"siteledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func next() int64 {
	return counter.Add(1)
}

// UniqueDescription returns a description no other fixture in the run uses.
func UniqueDescription(prefix string) string {
	return fmt.Sprintf("%s %d", prefix, next())
}

// MustRecords fails the test unless got contains exactly the expected IDs
// in order.
func MustRecords(t *testing.T, got []models.FinanceRecord, wantIDs ...int64) {
	t.Helper()

	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d records, got %d", len(wantIDs), len(got))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("record %d: expected ID %d, got %d", i, id, got[i].ID)
		}
	}
}
