package memory

import (
	"sync"

	"shortlinks/internal/model"
)

// Store holds the shortened links created during this process's lifetime.
// Records are append-only and never removed.
type Store struct {
	mu    sync.RWMutex
	links []model.LinkRecord
}

// NewStore creates an empty in-memory store instance.
func NewStore() *Store {
	return &Store{}
}

// Append adds a record to the end of the collection. Records are not
// deduplicated: appending the same ID twice keeps both entries.
func (s *Store) Append(rec model.LinkRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.links = append(s.links, rec)
}

// List returns a copy of the collection, most recent first. The underlying
// storage order stays insertion order.
func (s *Store) List() []model.LinkRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.LinkRecord, len(s.links))
	for i, rec := range s.links {
		out[len(s.links)-1-i] = rec
	}
	return out
}

// FindByID returns the first record with the given ID, if present.
func (s *Store) FindByID(id string) (model.LinkRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.links {
		if rec.ID == id {
			return rec, true
		}
	}
	return model.LinkRecord{}, false
}
