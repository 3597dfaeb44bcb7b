package core

import (
	"strings"
	"sync"
)

// SessionStore is the single source of truth for the vendor session token.
// An empty token means unauthenticated. The slot is owned by one client
// instance; concurrent readers observe either the previous or the new value,
// callers needing strict ordering must sequence their own calls.
type SessionStore struct {
	mu    sync.RWMutex
	token string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Set overwrites the stored token. The token is opaque: no format checks,
// no expiry tracking, validity is discovered on the next authenticated call.
func (s *SessionStore) Set(token string) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = strings.TrimSpace(token)
}

func (s *SessionStore) Get() string {
	if s == nil {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *SessionStore) Clear() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
