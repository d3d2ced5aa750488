package out

import (
	"context"
	"fmt"
	"sync"

	"carbontrack/internal/modules/session/domain"
	sessionout "carbontrack/internal/modules/session/port/out"
	apperrors "carbontrack/internal/platform/errors"
)

// MemorySessionStore holds sessions for the lifetime of the process only.
type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.AppSession
}

func NewMemorySessionStore() sessionout.SessionStore {
	return &MemorySessionStore{sessions: map[string]*domain.AppSession{}}
}

func (s *MemorySessionStore) Create(_ context.Context, session *domain.AppSession) error {
	if session == nil || session.ID == "" {
		return fmt.Errorf("%w: session id is required", apperrors.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; ok {
		return fmt.Errorf("%w: session %s already exists", apperrors.ErrInvalidInput, session.ID)
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *MemorySessionStore) Update(_ context.Context, id string, fn func(*domain.AppSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return fn(session)
}

func (s *MemorySessionStore) View(_ context.Context, id string, fn func(*domain.AppSession) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return fmt.Errorf("session %s: %w", id, apperrors.ErrNotFound)
	}
	return fn(session)
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
