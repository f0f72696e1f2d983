package vocabulary

import (
	"sync"
	"time"
)

// Store holds the current vocabulary. Replace swaps in a new slice; slices
// handed out by Words are never modified afterwards.
type Store struct {
	mu       sync.RWMutex
	words    []string
	source   string
	loadedAt time.Time
}

func NewStore(words []string, source string) *Store {
	return &Store{
		words:    words,
		source:   source,
		loadedAt: time.Now(),
	}
}

func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.words
}

func (s *Store) Replace(words []string, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = words
	s.source = source
	s.loadedAt = time.Now()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.words)
}

func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.source
}

func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadedAt
}
