// Package cache holds the process-wide refresh cache. The background worker
// builds a complete Snapshot each cycle and publishes it with a single
// pointer swap; request handlers always read a fully consistent generation,
// never a mixture of old items with a new timestamp.
package cache

import (
	"sync/atomic"

	"github.com/crypsidex/digest-bot/pkg/models"
)

// Store is the shared snapshot container. Safe for any number of concurrent
// readers alongside the single refreshing writer.
type Store struct {
	current atomic.Pointer[models.Snapshot]
}

// NewStore creates a store holding an empty snapshot
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&models.Snapshot{})
	return s
}

// Load returns the latest published snapshot. Never nil.
func (s *Store) Load() *models.Snapshot {
	return s.current.Load()
}

// Publish replaces the current snapshot. The snapshot must be fully built
// before publishing and never mutated afterwards.
func (s *Store) Publish(snap *models.Snapshot) {
	s.current.Store(snap)
}
