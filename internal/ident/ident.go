// Package ident generates time-ordered integer identifiers for stored
// records. IDs are the Unix timestamp in milliseconds at creation time,
// bumped forward when two creations land on the same millisecond so that
// an ID is never handed out twice.
package ident

import (
	"sync"
	"time"
)

// Generator hands out monotonically increasing unix-milli IDs.
// The zero value is ready to use.
type Generator struct {
	mu   sync.Mutex
	last int64
}

// Next returns a new unique ID based on the current timestamp.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()

	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Seed advances the generator past id. Call after loading persisted
// records so reloaded IDs are never reissued.
func (g *Generator) Seed(id int64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if id > g.last {
		g.last = id
	}
}
