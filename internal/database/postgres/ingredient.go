package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pantryline/pantryline/internal/domain"
)

// IngredientRepository implements the ingredient repository for PostgreSQL
type IngredientRepository struct {
	db *pgxpool.Pool
}

// NewIngredientRepository creates a new IngredientRepository
func NewIngredientRepository(db *pgxpool.Pool) *IngredientRepository {
	return &IngredientRepository{db: db}
}

// Create inserts a new ingredient record
func (r *IngredientRepository) Create(ctx context.Context, ing *domain.Ingredient) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ingredients (id, user_id, name, unit, quantity, threshold, best_before, use_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		ing.ID.String(), ing.UserID.String(), ing.Name, ing.Unit,
		ing.Quantity, ing.Threshold, ing.BestBefore, ing.UseBy, ing.CreatedAt, ing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCreateIngredient, err)
	}
	return nil
}

// Update replaces an ingredient's writable fields
func (r *IngredientRepository) Update(ctx context.Context, ing *domain.Ingredient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ingredients
		SET name = $2, unit = $3, quantity = $4, threshold = $5, best_before = $6, use_by = $7, updated_at = $8
		WHERE id = $1`,
		ing.ID.String(), ing.Name, ing.Unit, ing.Quantity, ing.Threshold, ing.BestBefore, ing.UseBy, ing.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateIngredient, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpdateIngredient, domain.ErrIngredientNotFound)
	}
	return nil
}

// Delete removes an ingredient record
func (r *IngredientRepository) Delete(ctx context.Context, id domain.IngredientID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ingredients WHERE id = $1`, id.String())
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredient, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteIngredient, domain.ErrIngredientNotFound)
	}
	return nil
}

// GetByID retrieves an ingredient, or nil when absent
func (r *IngredientRepository) GetByID(ctx context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, name, unit, quantity, threshold, best_before, use_by, created_at, updated_at
		FROM ingredients WHERE id = $1`, id.String())

	ing, err := scanIngredient(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetIngredient, err)
	}
	return ing, nil
}

// ListByUserID retrieves the user's ingredients ordered by name
func (r *IngredientRepository) ListByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, unit, quantity, threshold, best_before, use_by, created_at, updated_at
		FROM ingredients WHERE user_id = $1 ORDER BY name`, userID.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
	}
	defer rows.Close()

	var ingredients []*domain.Ingredient
	for rows.Next() {
		ing, err := scanIngredient(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListIngredients, err)
	}
	return ingredients, nil
}

func scanIngredient(row pgx.Row) (*domain.Ingredient, error) {
	var (
		id, userID, name, unit string
		quantity               float64
		threshold              *float64
		bestBefore, useBy      *time.Time
		createdAt, updatedAt   time.Time
	)
	if err := row.Scan(&id, &userID, &name, &unit, &quantity, &threshold, &bestBefore, &useBy, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return &domain.Ingredient{
		ID:         domain.IngredientID(id),
		UserID:     domain.UserID(userID),
		Name:       name,
		Unit:       unit,
		Quantity:   quantity,
		Threshold:  threshold,
		BestBefore: bestBefore,
		UseBy:      useBy,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}
