package shopping

import (
	"context"
	"fmt"

	"github.com/pantryline/pantryline/internal/domain"
)

// DefaultListLimit caps session history queries that do not specify a limit
const DefaultListLimit = 20

// GetSession returns the session read model. Sessions are private to their
// owner; a requester who does not own the session gets
// domain.ErrSessionNotFound, same as for an absent session.
func (s *service) GetSession(ctx context.Context, sessionID, requesterID string) (*SessionProjection, error) {
	session, uid, err := s.loadSessionForCommand(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}
	if !SessionOwnedBy(uid).IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return NewSessionProjection(session), nil
}

// GetActiveSession returns the user's current ACTIVE session, or
// domain.ErrSessionNotFound when the user has none.
func (s *service) GetActiveSession(ctx context.Context, userID string) (*SessionProjection, error) {
	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}

	session, err := s.repo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCheckActive, err)
	}
	if session == nil {
		return nil, fmt.Errorf("%w: no active session for user %s", domain.ErrSessionNotFound, userID)
	}
	return NewSessionProjection(session), nil
}

// ListSessions returns the user's session history, most recently started
// first. A non-positive limit falls back to DefaultListLimit.
func (s *service) ListSessions(ctx context.Context, userID string, limit int) ([]*SessionProjection, error) {
	uid, err := domain.ParseUserID(userID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}

	sessions, err := s.repo.ListByUserID(ctx, uid, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListSessions, err)
	}

	projections := make([]*SessionProjection, 0, len(sessions))
	for _, session := range sessions {
		projections = append(projections, NewSessionProjection(session))
	}
	return projections, nil
}
