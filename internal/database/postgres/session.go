package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryline/pantryline/internal/domain"
)

// SessionRepository implements the session repository for PostgreSQL
type SessionRepository struct {
	db *pgxpool.Pool
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

// Save upserts the session row and replaces its checked items in one
// transaction. The partial unique index on (user_id) WHERE status='ACTIVE'
// turns a concurrent second start into domain.ErrSessionAlreadyActive.
func (r *SessionRepository) Save(ctx context.Context, session *domain.ShoppingSession) error {
	var locationJSON []byte
	if session.Location != nil {
		data, err := json.Marshal(session.Location)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
		}
		locationJSON = data
	}

	var deviceType *string
	if session.DeviceType != nil {
		s := string(*session.DeviceType)
		deviceType = &s
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginSessionTx, err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO shopping_sessions (id, user_id, status, started_at, completed_at, device_type, location, abandon_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			completed_at = EXCLUDED.completed_at,
			abandon_reason = EXCLUDED.abandon_reason`,
		session.ID.String(), session.UserID.String(), string(session.Status),
		session.StartedAt, session.CompletedAt, deviceType, locationJSON, session.AbandonReason,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrSessionAlreadyActive
		}
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSession, err)
	}

	// Replace the item collection wholesale; items are append-only in the
	// aggregate so this only ever grows.
	if _, err := tx.Exec(ctx, `DELETE FROM checked_items WHERE session_id = $1`, session.ID.String()); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItems, err)
	}
	for i, item := range session.CheckedItems {
		_, err := tx.Exec(ctx, `
			INSERT INTO checked_items (session_id, ingredient_id, ingredient_name, stock_status, expiry_status, checked_at, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			session.ID.String(), item.IngredientID().String(), item.IngredientName(),
			string(item.StockStatus()), string(item.ExpiryStatus()), item.CheckedAt(), i,
		)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToSaveItems, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitSessionTx, err)
	}
	return nil
}

// GetByID retrieves a session with its checked items, or nil when absent
func (r *SessionRepository) GetByID(ctx context.Context, id domain.SessionID) (*domain.ShoppingSession, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, started_at, completed_at, device_type, location, abandon_reason
		FROM shopping_sessions WHERE id = $1`, id.String())

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}

	if err := r.loadItems(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetActiveByUserID retrieves the user's ACTIVE session, or nil when absent
func (r *SessionRepository) GetActiveByUserID(ctx context.Context, userID domain.UserID) (*domain.ShoppingSession, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, status, started_at, completed_at, device_type, location, abandon_reason
		FROM shopping_sessions WHERE user_id = $1 AND status = 'ACTIVE'`, userID.String())

	session, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSession, err)
	}

	if err := r.loadItems(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ListByUserID retrieves the user's sessions, most recently started first
func (r *SessionRepository) ListByUserID(ctx context.Context, userID domain.UserID, limit int) ([]*domain.ShoppingSession, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, status, started_at, completed_at, device_type, location, abandon_reason
		FROM shopping_sessions WHERE user_id = $1
		ORDER BY started_at DESC LIMIT $2`, userID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}
	defer rows.Close()

	var sessions []*domain.ShoppingSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListSessions, err)
	}

	for _, session := range sessions {
		if err := r.loadItems(ctx, session); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

// scanSession maps one session row into the aggregate, items excluded
func scanSession(row pgx.Row) (*domain.ShoppingSession, error) {
	var (
		id, userID, status, abandonReason string
		startedAt                         time.Time
		completedAt                       *time.Time
		deviceType                        *string
		locationJSON                      []byte
	)
	if err := row.Scan(&id, &userID, &status, &startedAt, &completedAt, &deviceType, &locationJSON, &abandonReason); err != nil {
		return nil, err
	}

	session := &domain.ShoppingSession{
		ID:            domain.SessionID(id),
		UserID:        domain.UserID(userID),
		Status:        domain.SessionStatus(status),
		StartedAt:     startedAt,
		CompletedAt:   completedAt,
		AbandonReason: abandonReason,
		CheckedItems:  []domain.CheckedItem{},
	}
	if deviceType != nil {
		d := domain.DeviceType(*deviceType)
		session.DeviceType = &d
	}
	if len(locationJSON) > 0 {
		var loc domain.Location
		if err := json.Unmarshal(locationJSON, &loc); err != nil {
			return nil, err
		}
		session.Location = &loc
	}
	return session, nil
}

// loadItems fills the session's checked items in insertion order
func (r *SessionRepository) loadItems(ctx context.Context, session *domain.ShoppingSession) error {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, ingredient_name, stock_status, expiry_status, checked_at
		FROM checked_items WHERE session_id = $1 ORDER BY position`, session.ID.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			ingredientID, name, stock, expiry string
			checkedAt                         time.Time
		)
		if err := rows.Scan(&ingredientID, &name, &stock, &expiry, &checkedAt); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
		}
		session.CheckedItems = append(session.CheckedItems, domain.NewCheckedItemAt(
			domain.IngredientID(ingredientID), name,
			domain.StockStatus(stock), domain.ExpiryStatus(expiry), checkedAt,
		))
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToLoadItems, err)
	}
	return nil
}
