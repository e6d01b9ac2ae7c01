package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/ingredient"
	"github.com/pantryline/pantryline/internal/shopping"
)

// MockShoppingService is a testify mock for shopping.Service
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) StartSession(ctx context.Context, userID, deviceType string, location *domain.Location) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, userID, deviceType, location)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) CheckIngredient(ctx context.Context, sessionID, requesterID, ingredientID string) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, sessionID, requesterID, ingredientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) CompleteSession(ctx context.Context, sessionID, requesterID string) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, sessionID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) AbandonSession(ctx context.Context, sessionID, requesterID, reason string) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, sessionID, requesterID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) GetSession(ctx context.Context, sessionID, requesterID string) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, sessionID, requesterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) GetActiveSession(ctx context.Context, userID string) (*shopping.SessionProjection, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shopping.SessionProjection), args.Error(1)
}

func (m *MockShoppingService) ListSessions(ctx context.Context, userID string, limit int) ([]*shopping.SessionProjection, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shopping.SessionProjection), args.Error(1)
}

// MockIngredientService is a testify mock for ingredient.Service
type MockIngredientService struct {
	mock.Mock
}

func (m *MockIngredientService) CreateIngredient(ctx context.Context, userID string, input ingredient.Input) (*domain.Ingredient, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientService) UpdateIngredient(ctx context.Context, userID, ingredientID string, input ingredient.Input) (*domain.Ingredient, error) {
	args := m.Called(ctx, userID, ingredientID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientService) DeleteIngredient(ctx context.Context, userID, ingredientID string) error {
	args := m.Called(ctx, userID, ingredientID)
	return args.Error(0)
}

func (m *MockIngredientService) GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

func (m *MockIngredientService) ListIngredients(ctx context.Context, userID string) ([]*domain.Ingredient, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Ingredient), args.Error(1)
}
