// Package testutil provides test helpers for setting up in-memory stores,
// creating fixtures, and making assertions.
package testutil

import (
	"testing"

	"siteledger/internal/storage"
)

// NewStore creates an empty in-memory key-value store for a test.
func NewStore(t *testing.T) storage.Store {
	t.Helper()
	return storage.NewMemoryStore()
}

// NewFailingStore creates a store whose writes always fail, for exercising
// persistence-failure paths.
func NewFailingStore(t *testing.T) storage.Store {
	t.Helper()
	return storage.NewFailingStore()
}
