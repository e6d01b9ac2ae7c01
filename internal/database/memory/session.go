// Package memory provides in-memory repository implementations sharing the
// same contracts as the PostgreSQL adapters. Used in tests and local runs
// without a database.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pantryline/pantryline/internal/domain"
)

// SessionRepository is an in-memory session store
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.ShoppingSession
}

// NewSessionRepository creates an empty in-memory session store
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[domain.SessionID]*domain.ShoppingSession),
	}
}

// Save upserts the session, enforcing the one-ACTIVE-session-per-user
// invariant the way the partial unique index does in PostgreSQL.
func (r *SessionRepository) Save(_ context.Context, session *domain.ShoppingSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if session.Status == domain.SessionStatusActive {
		for _, existing := range r.sessions {
			if existing.UserID == session.UserID &&
				existing.Status == domain.SessionStatusActive &&
				existing.ID != session.ID {
				return domain.ErrSessionAlreadyActive
			}
		}
	}

	r.sessions[session.ID] = copySession(session)
	return nil
}

// GetByID returns a copy of the session, or nil when absent
func (r *SessionRepository) GetByID(_ context.Context, id domain.SessionID) (*domain.ShoppingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, nil
	}
	return copySession(session), nil
}

// GetActiveByUserID returns a copy of the user's ACTIVE session, or nil
func (r *SessionRepository) GetActiveByUserID(_ context.Context, userID domain.UserID) (*domain.ShoppingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.UserID == userID && session.Status == domain.SessionStatusActive {
			return copySession(session), nil
		}
	}
	return nil, nil
}

// ListByUserID returns copies of the user's sessions, most recently started first
func (r *SessionRepository) ListByUserID(_ context.Context, userID domain.UserID, limit int) ([]*domain.ShoppingSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sessions []*domain.ShoppingSession
	for _, session := range r.sessions {
		if session.UserID == userID {
			sessions = append(sessions, copySession(session))
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartedAt.After(sessions[j].StartedAt)
	})
	if limit > 0 && len(sessions) > limit {
		sessions = sessions[:limit]
	}
	return sessions, nil
}

// copySession deep-copies the aggregate so callers cannot mutate the store
func copySession(s *domain.ShoppingSession) *domain.ShoppingSession {
	out := *s
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		out.CompletedAt = &t
	}
	if s.DeviceType != nil {
		d := *s.DeviceType
		out.DeviceType = &d
	}
	if s.Location != nil {
		l := *s.Location
		out.Location = &l
	}
	out.CheckedItems = make([]domain.CheckedItem, len(s.CheckedItems))
	copy(out.CheckedItems, s.CheckedItems)
	return &out
}
