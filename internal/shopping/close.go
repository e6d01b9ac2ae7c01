package shopping

import (
	"context"
	"fmt"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/logger"
)

// CompleteSession closes an active session as finished. Only the owner may
// complete a session; anyone else gets domain.ErrNotSessionOwner.
func (s *service) CompleteSession(ctx context.Context, sessionID, requesterID string) (*SessionProjection, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCompleteSessionCalled, "sessionID", sessionID, "requesterID", requesterID)

	session, uid, err := s.loadSessionForCommand(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}

	if !SessionOwnedBy(uid).IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNotSessionOwner, sessionID)
	}

	if err := session.Complete(); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveSession, err)
	}

	s.publish(ctx, event.NewSessionCompletedEvent(session))

	log.Info(LogMsgSessionCompleted,
		"sessionID", sessionID,
		"itemsChecked", len(session.CheckedItems),
		"needingAttention", len(session.ItemsNeedingAttention()),
	)
	return NewSessionProjection(session), nil
}

// AbandonSession closes an active session without finishing the trip.
// Ownership failures are reported as domain.ErrSessionNotFound so a
// non-owner cannot probe for other users' session IDs.
func (s *service) AbandonSession(ctx context.Context, sessionID, requesterID, reason string) (*SessionProjection, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgAbandonSessionCalled, "sessionID", sessionID, "requesterID", requesterID)

	session, uid, err := s.loadSessionForCommand(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}

	if !SessionOwnedBy(uid).IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}

	if err := session.Abandon(reason); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveSession, err)
	}

	s.publish(ctx, event.NewSessionAbandonedEvent(session))

	log.Info(LogMsgSessionAbandoned, "sessionID", sessionID, "reason", reason)
	return NewSessionProjection(session), nil
}

// loadSessionForCommand parses the command identifiers and loads the session,
// translating an absent session to domain.ErrSessionNotFound.
func (s *service) loadSessionForCommand(ctx context.Context, sessionID, requesterID string) (*domain.ShoppingSession, domain.UserID, error) {
	sid, err := domain.ParseSessionID(sessionID)
	if err != nil {
		return nil, "", err
	}
	uid, err := domain.ParseUserID(requesterID)
	if err != nil {
		return nil, "", err
	}

	session, err := s.repo.GetByID(ctx, sid)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", ErrContextFailedToGetSession, err)
	}
	if session == nil {
		return nil, "", fmt.Errorf("%w: %s", domain.ErrSessionNotFound, sessionID)
	}
	return session, uid, nil
}
