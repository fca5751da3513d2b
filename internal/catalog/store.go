package catalog

import (
	"sync/atomic"

	"github.com/VeloraJewelry/storefront_api/internal/models"
)

// Store holds the current catalog snapshot. Swaps are atomic and
// last-write-wins: a refresh replaces the whole snapshot, concurrent readers
// keep whichever snapshot they loaded, and nothing is ever merged. Concurrent
// refreshes are not sequenced against request-issue order; the data is
// advisory display state, not transactional.
type Store struct {
	current atomic.Pointer[models.Snapshot]
}

// NewStore returns an empty store. Load on an empty store returns nil;
// callers surface that as "catalog not yet available".
func NewStore() *Store {
	return &Store{}
}

// Load returns the current snapshot, or nil before the first swap.
func (s *Store) Load() *models.Snapshot {
	return s.current.Load()
}

// Swap installs a new snapshot, replacing the previous one wholesale.
func (s *Store) Swap(snap *models.Snapshot) {
	s.current.Store(snap)
}
