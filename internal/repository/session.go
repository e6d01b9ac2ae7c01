package repository

import (
	"context"

	"github.com/pantryline/pantryline/internal/domain"
)

// Session defines the data access contract for shopping sessions.
// Implementations must make Save atomic with respect to the one-active-
// session-per-user invariant (e.g. a partial unique index), since the
// service's check-then-write spans a query and a write.
type Session interface {
	// Save upserts the full session state, replacing the checked items
	// collection. Creating a second ACTIVE session for the same user must
	// fail with domain.ErrSessionAlreadyActive.
	Save(ctx context.Context, session *domain.ShoppingSession) error

	// GetByID returns the session or nil when absent
	GetByID(ctx context.Context, id domain.SessionID) (*domain.ShoppingSession, error)

	// GetActiveByUserID returns the user's ACTIVE session or nil when absent
	GetActiveByUserID(ctx context.Context, userID domain.UserID) (*domain.ShoppingSession, error)

	// ListByUserID returns the user's sessions, most recently started first
	ListByUserID(ctx context.Context, userID domain.UserID, limit int) ([]*domain.ShoppingSession, error)
}
