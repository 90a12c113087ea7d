package checkout

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/grpkarunathilaka/the-restaurant-website/internal/pricing"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps the live ordering sessions in memory. Session state is
// ephemeral; nothing survives a restart.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	resolver  *pricing.Resolver
	placer    OrderPlacer
	scheduler Scheduler
}

func NewStore(resolver *pricing.Resolver, placer OrderPlacer, scheduler Scheduler) *Store {
	return &Store{
		sessions:  make(map[string]*Session),
		resolver:  resolver,
		placer:    placer,
		scheduler: scheduler,
	}
}

func (s *Store) Create() *Session {
	session := NewSession(uuid.New().String(), s.resolver, s.placer, s.scheduler)

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Close tears down every session, cancelling their pending timers.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		session.Close()
		delete(s.sessions, id)
	}
}
