// Package store holds the in-memory case collection for one session.
// Nothing is persisted; the collection lives and dies with the process.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/evidence-for-accountability/ecc-tracker-api/models"
)

// Store error kinds
var (
	ErrDuplicateID = errors.New("duplicate case id")
	ErrEmptyCaseID = errors.New("empty case id")
)

// CaseStore is an ordered in-memory case collection. Newly added cases
// go to the front; existing records are never edited or removed. Adds
// are serialized so concurrent HTTP writers cannot break the ordering
// or uniqueness guarantees.
type CaseStore struct {
	mu    sync.RWMutex
	cases []models.Case
	ids   map[string]bool
}

// New returns a CaseStore preloaded with the given cases, first case
// first
func New(initial ...models.Case) (*CaseStore, error) {
	s := &CaseStore{ids: map[string]bool{}}
	// append semantics here: the initial slice is already in display order
	for _, c := range initial {
		if c.CaseID == "" {
			return nil, ErrEmptyCaseID
		}
		if s.ids[c.CaseID] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.CaseID)
		}
		s.ids[c.CaseID] = true
		s.cases = append(s.cases, c)
	}
	return s, nil
}

// All returns a snapshot copy of the collection in display order
func (s *CaseStore) All() []models.Case {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Case, len(s.cases))
	copy(out, s.cases)
	return out
}

// Len returns the number of cases held
func (s *CaseStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cases)
}

// FindBySlug returns the case whose slug (or raw case id) matches
func (s *CaseStore) FindBySlug(slug string) (models.Case, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cases {
		if c.Slug == slug || c.CaseID == slug {
			return c, true
		}
	}
	return models.Case{}, false
}

// Add prepends a newly created case. It fails with ErrDuplicateID when
// the case id is already taken; the caller is expected to regenerate
// the id and retry.
func (s *CaseStore) Add(c models.Case) error {
	if c.CaseID == "" {
		return ErrEmptyCaseID
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ids[c.CaseID] {
		return fmt.Errorf("%w: %s", ErrDuplicateID, c.CaseID)
	}
	s.ids[c.CaseID] = true
	s.cases = append([]models.Case{c}, s.cases...)
	return nil
}
