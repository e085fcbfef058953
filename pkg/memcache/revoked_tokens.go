package mem

import (
	"sync"
	"time"
)

// RevokedTokenStore remembers logged-out token ids until the token would
// have expired anyway.
type RevokedTokenStore interface {
	Revoke(tokenID string, until time.Time)
	IsRevoked(tokenID string) bool
}

type RevokedTokens struct {
	mu   sync.RWMutex
	data map[string]time.Time
	now  func() time.Time
}

func NewRevokedTokens() *RevokedTokens {
	return &RevokedTokens{
		data: make(map[string]time.Time),
		now:  time.Now,
	}
}

func (s *RevokedTokens) Revoke(tokenID string, until time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep()
	s.data[tokenID] = until
}

func (s *RevokedTokens) IsRevoked(tokenID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	until, ok := s.data[tokenID]
	return ok && s.now().Before(until)
}

// sweep drops entries whose tokens have expired. Caller holds the lock.
func (s *RevokedTokens) sweep() {
	now := s.now()
	for id, until := range s.data {
		if !now.Before(until) {
			delete(s.data, id)
		}
	}
}
