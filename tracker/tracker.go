// Package tracker keeps the session's log of in-flight and completed
// operations. The log is append-only, in-memory, and scoped to the
// process lifetime; there is no backing store.
package tracker

import (
	"sync"
	"time"

	"github.com/Valerii9116/TimaxPaySolanaTransak/types"
)

type Tracker struct {
	mu      sync.RWMutex
	records []types.TransactionRecord
	byID    map[string]struct{}
}

func New() *Tracker {
	return &Tracker{
		byID: make(map[string]struct{}),
	}
}

// Record appends a transaction. Idempotent on the provider-issued id:
// a record with an id already seen is dropped and Record returns false.
// Provider SDKs can fire duplicate completion events; coalescing here
// keeps the log at-most-once per id.
func (t *Tracker) Record(rec types.TransactionRecord) bool {
	if rec.ID == "" {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.byID[rec.ID]; exists {
		return false
	}

	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	t.byID[rec.ID] = struct{}{}
	t.records = append(t.records, rec)
	return true
}

// List returns all records, most recent first.
func (t *Tracker) List() []types.TransactionRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]types.TransactionRecord, len(t.records))
	for i, rec := range t.records {
		out[len(t.records)-1-i] = rec
	}
	return out
}

// Len returns the number of recorded transactions.
func (t *Tracker) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.records)
}
