package view

import (
	"context"
	"testing"
	"time"

	"github.com/raushankrgupta/eco-packaging/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionsReuseController(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)

	id, first, created := s.Get("")
	assert.True(t, created)
	assert.NotEmpty(t, id)

	again, second, created := s.Get(id)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Same(t, first, second)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsUnknownIDGetsFreshSession(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)

	id, _, created := s.Get("not-a-session")
	assert.True(t, created)
	assert.NotEqual(t, "not-a-session", id)
}

func TestSessionsExpire(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }

	id, _, _ := s.Get("")

	now = now.Add(2 * time.Minute)
	newID, _, created := s.Get(id)
	assert.True(t, created)
	assert.NotEqual(t, id, newID)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsShareCatalog(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, 0)

	_, a, _ := s.Get("")
	_, b, _ := s.Get("")
	assert.NotSame(t, a, b)
	assert.Same(t, a.catalog, b.catalog)
}

func TestSessionsLookupDoesNotCreate(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)

	for _, id := range []string{"", "not-a-session"} {
		ctrl, ok := s.Lookup(id)
		assert.False(t, ok)
		assert.Nil(t, ctrl)
	}
	assert.Zero(t, s.Len())

	id, registered, _ := s.Get("")
	found, ok := s.Lookup(id)
	assert.True(t, ok)
	assert.Same(t, registered, found)
	assert.Equal(t, 1, s.Len())
}

func TestSessionsLookupIgnoresExpired(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }

	id, _, _ := s.Get("")
	now = now.Add(2 * time.Minute)

	_, ok := s.Lookup(id)
	assert.False(t, ok)
}

func TestSessionsSweep(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)
	now := time.Now()
	s.now = func() time.Time { return now }

	stale, _, _ := s.Get("")
	now = now.Add(45 * time.Second)
	fresh, _, _ := s.Get("")
	now = now.Add(30 * time.Second)

	assert.Equal(t, 1, s.Sweep())
	assert.Equal(t, 1, s.Len())
	_, ok := s.Lookup(stale)
	assert.False(t, ok)
	_, ok = s.Lookup(fresh)
	assert.True(t, ok)
}

func TestSessionsSweepWithoutTTL(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, 0)
	now := time.Now()
	s.now = func() time.Time { return now }

	s.Get("")
	now = now.Add(24 * time.Hour)
	assert.Zero(t, s.Sweep())
	assert.Equal(t, 1, s.Len())
}

func TestSessionsRunSweepsInBackground(t *testing.T) {
	s := NewSessions(catalog.Build(), 0, time.Minute)
	start := time.Now()
	s.now = func() time.Time { return start }
	s.Get("")
	s.Get("")
	require.Equal(t, 2, s.Len())

	s.mu.Lock()
	s.now = func() time.Time { return start.Add(time.Hour) }
	s.mu.Unlock()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
