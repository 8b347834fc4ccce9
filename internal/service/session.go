package service

import (
	"errors"
	"sync"

	"numberhunt/internal/domain"
)

// ErrNoPendingNumber means the session reached the photo step
// without a number recorded
var ErrNoPendingNumber = errors.New("no pending number for session")

// SessionService tracks per-user submission dialog state
// (in-memory state machine)
type SessionService struct {
	mu       sync.RWMutex
	sessions map[int64]*domain.Session
}

// NewSessionService creates a new session service
func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[int64]*domain.Session),
	}
}

// State returns user's current dialog state
func (s *SessionService) State(userID int64) domain.UserState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists {
		return domain.StateIdle
	}
	return sess.State
}

// Begin starts a new submission, moving the user to the number step
func (s *SessionService) Begin(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &domain.Session{State: domain.StateAwaitingNumber}
}

// SetNumber validates the submitted text and, when it is a plain decimal
// number, records it and moves the user to the photo step.
// On validation failure the session is left untouched.
func (s *SessionService) SetNumber(userID int64, text string) (int, error) {
	number, err := domain.ParseNumber(text)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[userID] = &domain.Session{
		State:           domain.StateAwaitingPhoto,
		SubmittedNumber: number,
	}
	return number, nil
}

// PendingNumber returns the number recorded for the user's in-flight
// submission. Fails unless the user is at the photo step.
func (s *SessionService) PendingNumber(userID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, exists := s.sessions[userID]
	if !exists || sess.State != domain.StateAwaitingPhoto {
		return 0, ErrNoPendingNumber
	}
	return sess.SubmittedNumber, nil
}

// Reset returns the user to the idle state
func (s *SessionService) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
}
