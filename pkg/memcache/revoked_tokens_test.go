package mem

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRevokedTokens(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := NewRevokedTokens()
	s.now = func() time.Time { return now }

	assert.False(t, s.IsRevoked("a"))

	s.Revoke("a", now.Add(time.Hour))
	assert.True(t, s.IsRevoked("a"))

	now = now.Add(2 * time.Hour)
	assert.False(t, s.IsRevoked("a"))

	s.Revoke("b", now.Add(time.Minute))
	assert.NotContains(t, s.data, "a")
	assert.Contains(t, s.data, "b")
}

func TestRevokedTokens_Concurrent(t *testing.T) {
	s := NewRevokedTokens()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Revoke("t", time.Now().Add(time.Minute))
			_ = s.IsRevoked("t")
		}()
	}
	wg.Wait()
	assert.True(t, s.IsRevoked("t"))
}
