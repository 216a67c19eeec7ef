// Package words holds the canonical word list and the rules a word must
// satisfy before it is stored.
package words

import (
	"sort"
	"sync"
)

// Store provides access to the word list
type Store interface {
	Add(word string)
	Remove(word string)
	Clear()
	Sort(ascending bool)
	List() []string
	Len() int
}

// MemoryStore is an in-memory implementation of Store.
//
// It performs no validation: duplicates, empty strings and over-long words
// are stored as given. Callers run Validate first.
type MemoryStore struct {
	mu    sync.RWMutex
	words []string
}

// NewMemoryStore creates a store seeded with a copy of seed
func NewMemoryStore(seed []string) *MemoryStore {
	words := make([]string, len(seed))
	copy(words, seed)
	return &MemoryStore{words: words}
}

// Add appends word to the end of the list
func (s *MemoryStore) Add(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = append(s.words, word)
}

// Remove deletes the first exact match of word, if any
func (s *MemoryStore) Remove(word string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.words {
		if w == word {
			s.words = append(s.words[:i], s.words[i+1:]...)
			return
		}
	}
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = s.words[:0]
}

// Sort reorders the list by code point, ascending or descending
func (s *MemoryStore) Sort(ascending bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ascending {
		sort.Strings(s.words)
		return
	}
	sort.Sort(sort.Reverse(sort.StringSlice(s.words)))
}

// List returns a snapshot of the list in its current order
func (s *MemoryStore) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Return a copy to prevent external modification
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}
