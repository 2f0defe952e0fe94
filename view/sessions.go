package view

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/raushankrgupta/eco-packaging/catalog"
)

type session struct {
	controller *Controller
	lastSeen   time.Time
}

// Sessions hands out one Controller per page session. All controllers share
// the same read-only catalog.
type Sessions struct {
	catalog *catalog.Catalog
	delay   time.Duration
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewSessions creates a registry. Sessions idle for longer than ttl are
// dropped by Sweep; a ttl of zero keeps them forever.
func NewSessions(c *catalog.Catalog, delay, ttl time.Duration) *Sessions {
	return &Sessions{
		catalog:  c,
		delay:    delay,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Get returns the controller for id, creating a new session with a fresh id
// when id is empty, unknown or expired. The returned id is the one to keep.
func (s *Sessions) Get(id string) (string, *Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.liveLocked(id, now); ok {
		sess.lastSeen = now
		return id, sess.controller, false
	}
	delete(s.sessions, id)

	id = uuid.New().String()
	sess := &session{
		controller: NewController(s.catalog, s.delay),
		lastSeen:   now,
	}
	s.sessions[id] = sess
	return id, sess.controller, true
}

// Lookup returns the controller of a live session without creating one
func (s *Sessions) Lookup(id string) (*Controller, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.liveLocked(id, now)
	if !ok {
		return nil, false
	}
	sess.lastSeen = now
	return sess.controller, true
}

// Len returns the number of registered sessions
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep drops expired sessions and returns how many were removed
func (s *Sessions) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for id, sess := range s.sessions {
		if s.expired(sess, now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// Run sweeps expired sessions every interval until ctx is done
func (s *Sessions) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}

func (s *Sessions) liveLocked(id string, now time.Time) (*session, bool) {
	if id == "" {
		return nil, false
	}
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess, now) {
		return nil, false
	}
	return sess, true
}

func (s *Sessions) expired(sess *session, now time.Time) bool {
	return s.ttl > 0 && now.Sub(sess.lastSeen) > s.ttl
}
