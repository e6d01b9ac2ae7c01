package shopping

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/event"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Save(ctx context.Context, session *domain.ShoppingSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id domain.SessionID) (*domain.ShoppingSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingSession), args.Error(1)
}

func (m *MockRepository) GetActiveByUserID(ctx context.Context, userID domain.UserID) (*domain.ShoppingSession, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingSession), args.Error(1)
}

func (m *MockRepository) ListByUserID(ctx context.Context, userID domain.UserID, limit int) ([]*domain.ShoppingSession, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ShoppingSession), args.Error(1)
}

// MockIngredientLookup
type MockIngredientLookup struct {
	mock.Mock
}

func (m *MockIngredientLookup) GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Ingredient), args.Error(1)
}

// recordingBus captures published events for assertions
type recordingBus struct {
	mu     sync.Mutex
	events []event.Event
}

func (b *recordingBus) Publish(_ context.Context, e event.Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, e)
	return nil
}

func (b *recordingBus) PublishAll(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		_ = b.Publish(ctx, e)
	}
	return nil
}

func (b *recordingBus) Subscribe(_ event.Type, _ event.Handler) {}

func (b *recordingBus) published() []event.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]event.Event, len(b.events))
	copy(out, b.events)
	return out
}
