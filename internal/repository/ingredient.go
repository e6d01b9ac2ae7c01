package repository

import (
	"context"

	"github.com/pantryline/pantryline/internal/domain"
)

// Ingredient defines the data access contract for pantry ingredients
type Ingredient interface {
	Create(ctx context.Context, ingredient *domain.Ingredient) error
	Update(ctx context.Context, ingredient *domain.Ingredient) error
	Delete(ctx context.Context, id domain.IngredientID) error

	// GetByID returns the ingredient or nil when absent
	GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error)

	// ListByUserID returns the user's ingredients ordered by name
	ListByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Ingredient, error)
}
