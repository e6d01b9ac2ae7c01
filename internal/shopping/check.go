package shopping

import (
	"context"
	"fmt"
	"time"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/logger"
)

// CheckIngredient records one ingredient inspection in an active session.
// The ingredient's stock and expiry statuses are derived from its current
// snapshot and frozen into the checked item. A requester who is not the
// session owner gets domain.ErrNoCheckPermission.
func (s *service) CheckIngredient(ctx context.Context, sessionID, requesterID, ingredientID string) (*SessionProjection, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgCheckIngredientCalled, "sessionID", sessionID, "requesterID", requesterID, "ingredientID", ingredientID)

	iid, err := domain.ParseIngredientID(ingredientID)
	if err != nil {
		return nil, err
	}

	session, uid, err := s.loadSessionForCommand(ctx, sessionID, requesterID)
	if err != nil {
		return nil, err
	}

	// Guards are evaluated one at a time so each failure keeps its own
	// sentinel. Ownership comes before the activity check so a foreign
	// requester learns nothing about the session's state.
	if !SessionOwnedBy(uid).IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: session %s", domain.ErrNoCheckPermission, sessionID)
	}
	if !SessionIsActive().IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: status %s", domain.ErrSessionNotActive, session.Status)
	}
	if !IngredientNotYetChecked(iid).IsSatisfiedBy(session) {
		return nil, fmt.Errorf("%w: %s", domain.ErrAlreadyChecked, ingredientID)
	}

	ingredient, err := s.ingredients.GetByID(ctx, iid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetIngredient, err)
	}
	if ingredient == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrIngredientNotFound, ingredientID)
	}

	now := time.Now().UTC()
	item := domain.NewCheckedItemAt(
		ingredient.ID,
		ingredient.Name,
		ingredient.CurrentStockStatus(),
		ingredient.CurrentExpiryStatus(now),
		now,
	)

	if err := session.CheckIngredient(item); err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToSaveSession, err)
	}

	s.publish(ctx, event.NewItemCheckedEvent(session, item))

	log.Info(LogMsgItemChecked,
		"sessionID", sessionID,
		"ingredientID", ingredientID,
		"stockStatus", item.StockStatus(),
		"expiryStatus", item.ExpiryStatus(),
		"needsAttention", item.NeedsAttention(),
	)
	return NewSessionProjection(session), nil
}
