package shopping

import (
	"context"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/repository"
)

// Service defines the interface for shopping session operations.
// Each command mutates exactly one session aggregate and publishes its
// resulting events as a single batch after the state change is persisted.
type Service interface {
	StartSession(ctx context.Context, userID string, deviceType string, location *domain.Location) (*SessionProjection, error)
	CheckIngredient(ctx context.Context, sessionID, requesterID, ingredientID string) (*SessionProjection, error)
	CompleteSession(ctx context.Context, sessionID, requesterID string) (*SessionProjection, error)
	AbandonSession(ctx context.Context, sessionID, requesterID, reason string) (*SessionProjection, error)

	GetSession(ctx context.Context, sessionID, requesterID string) (*SessionProjection, error)
	GetActiveSession(ctx context.Context, userID string) (*SessionProjection, error)
	ListSessions(ctx context.Context, userID string, limit int) ([]*SessionProjection, error)
}

// IngredientLookup is the read-only ingredient snapshot used to derive
// statuses at check time. Satisfied by repository.Ingredient and by the
// ingredient service's cached lookup.
type IngredientLookup interface {
	GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error)
}

type service struct {
	repo        repository.Session
	ingredients IngredientLookup
	eventBus    event.Bus
}

// NewService creates a new shopping session service
func NewService(repo repository.Session, ingredients IngredientLookup, eventBus event.Bus) Service {
	return &service{
		repo:        repo,
		ingredients: ingredients,
		eventBus:    eventBus,
	}
}
