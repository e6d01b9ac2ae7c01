package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantryline/pantryline/internal/domain"
	"github.com/pantryline/pantryline/internal/repository"
)

var _ repository.Ingredient = (*IngredientRepository)(nil)

func newIngredient(userID, name string) *domain.Ingredient {
	now := time.Now().UTC()
	return &domain.Ingredient{
		ID:        domain.NewIngredientID(),
		UserID:    domain.UserID(userID),
		Name:      name,
		Quantity:  5,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestIngredientRepository_CreateAndGet(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()
	ing := newIngredient("user1", "Whole Milk")

	require.NoError(t, repo.Create(ctx, ing))

	got, err := repo.GetByID(ctx, ing.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Whole Milk", got.Name)
}

func TestIngredientRepository_GetByID_Absent(t *testing.T) {
	repo := NewIngredientRepository()

	got, err := repo.GetByID(context.Background(), domain.NewIngredientID())

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestIngredientRepository_Update(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()
	ing := newIngredient("user1", "Whole Milk")
	require.NoError(t, repo.Create(ctx, ing))

	ing.Quantity = 1
	require.NoError(t, repo.Update(ctx, ing))

	got, err := repo.GetByID(ctx, ing.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.Quantity)
}

func TestIngredientRepository_UpdateAbsent(t *testing.T) {
	repo := NewIngredientRepository()

	err := repo.Update(context.Background(), newIngredient("user1", "Ghost"))

	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
}

func TestIngredientRepository_Delete(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()
	ing := newIngredient("user1", "Whole Milk")
	require.NoError(t, repo.Create(ctx, ing))

	require.NoError(t, repo.Delete(ctx, ing.ID))

	got, err := repo.GetByID(ctx, ing.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.ErrorIs(t, repo.Delete(ctx, ing.ID), domain.ErrIngredientNotFound)
}

func TestIngredientRepository_ListByUserID_SortedByName(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, newIngredient("user1", "Yogurt")))
	require.NoError(t, repo.Create(ctx, newIngredient("user1", "Butter")))
	require.NoError(t, repo.Create(ctx, newIngredient("user2", "Eggs")))

	got, err := repo.ListByUserID(ctx, "user1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Butter", got[0].Name)
	assert.Equal(t, "Yogurt", got[1].Name)
}

func TestIngredientRepository_ReturnsCopies(t *testing.T) {
	repo := NewIngredientRepository()
	ctx := context.Background()
	ing := newIngredient("user1", "Whole Milk")
	require.NoError(t, repo.Create(ctx, ing))

	got, err := repo.GetByID(ctx, ing.ID)
	require.NoError(t, err)
	got.Quantity = 0

	fresh, err := repo.GetByID(ctx, ing.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, fresh.Quantity)
}
