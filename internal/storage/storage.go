// Package storage defines the key-value persistence collaborator used by
// every service. Values are JSON-encoded structured data stored whole under
// a single key; there is no partial or delta persistence. The interface is
// injected at construction so tests can substitute an in-memory store.
package storage

import "context"

// Store is the persistence contract.
//
// Get decodes the value stored under key into dest and reports whether the
// key was present; a missing key is not an error. Set durably replaces any
// prior value under key. Remove and Clear exist for administrative use and
// are not on the steady-state path.
type Store interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Keys used by the application. Each screen-local collection persists its
// full list under one key.
const (
	KeyFinanceRecords = "financeRecords"
	KeyProjects       = "projects"
	KeySubcontractors = "subcontractors"
)
