package conversation

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDoWithoutSession(t *testing.T) {
	store := NewStore()
	called := false
	found := store.Do("u1", func(s *Session) bool {
		called = true
		assert.Nil(t, s)
		return true
	})
	assert.True(t, called)
	assert.False(t, found)
	assert.Zero(t, store.Len())
}

func TestStoreBeginOverwrites(t *testing.T) {
	store := NewStore()
	store.Begin("u1")
	store.Do("u1", func(s *Session) bool {
		s.OrgName = "old"
		s.State = StateAwaitQuantity
		return false
	})

	store.Begin("u1")
	store.Do("u1", func(s *Session) bool {
		assert.Empty(t, s.OrgName)
		assert.Equal(t, StateAwaitOrgName, s.State)
		return false
	})
	assert.Equal(t, 1, store.Len())
}

func TestStoreDoDeleteOnTrue(t *testing.T) {
	store := NewStore()
	store.Begin("u1")

	found := store.Do("u1", func(s *Session) bool { return true })
	assert.True(t, found)
	assert.Zero(t, store.Len())

	// Second delivery of the same completion event: no session left.
	found = store.Do("u1", func(s *Session) bool {
		assert.Nil(t, s)
		return true
	})
	assert.False(t, found)
}

func TestStoreDeleteIdempotent(t *testing.T) {
	store := NewStore()
	store.Begin("u1")
	store.Delete("u1")
	store.Delete("u1")
	assert.Zero(t, store.Len())
}

func TestStoreSweepIdle(t *testing.T) {
	store := NewStore()
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	store.Begin("stale")
	current = current.Add(45 * time.Minute)
	store.Begin("fresh")

	n := store.SweepIdle(30 * time.Minute)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, store.Len())

	require.True(t, store.Do("fresh", func(s *Session) bool { return false }))
	assert.False(t, store.Do("stale", func(s *Session) bool { return false }))
}

func TestStoreSweepIdleKeepsActiveSessions(t *testing.T) {
	store := NewStore()
	store.Begin("u1")
	assert.Zero(t, store.SweepIdle(time.Hour))
	assert.Equal(t, 1, store.Len())
}

func TestStoreConcurrentReadModifyWrite(t *testing.T) {
	store := NewStore()
	store.Begin("u1")

	// Parallel increments through Do must not lose updates.
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			store.Do("u1", func(s *Session) bool {
				s.Quantity++
				return false
			})
		}()
	}
	wg.Wait()

	store.Do("u1", func(s *Session) bool {
		assert.Equal(t, n, s.Quantity)
		return false
	})
}
