// Package token persists the admin bearer token between runs.
//
// The backend is swappable: the OS keyring is preferred, a plain file is the
// portable fallback, and an in-memory store backs tests. All backends follow
// the same contract: Get returns an empty string when no token is stored, and
// Set("") is equivalent to Clear.
package token

import "sync"

// Store reads and writes the persisted admin token.
type Store interface {
	Get() (string, error)
	Set(token string) error
	Clear() error
}

// MemoryStore is a process-local Store, used in tests and as a last-resort
// backend when no persistent store is available.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, nil
}

func (s *MemoryStore) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Set("")
}
