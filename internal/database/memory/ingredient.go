package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/pantryline/pantryline/internal/domain"
)

// IngredientRepository is an in-memory ingredient store
type IngredientRepository struct {
	mu          sync.RWMutex
	ingredients map[domain.IngredientID]*domain.Ingredient
}

// NewIngredientRepository creates an empty in-memory ingredient store
func NewIngredientRepository() *IngredientRepository {
	return &IngredientRepository{
		ingredients: make(map[domain.IngredientID]*domain.Ingredient),
	}
}

// Create stores a new ingredient
func (r *IngredientRepository) Create(_ context.Context, ing *domain.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ingredients[ing.ID] = copyIngredient(ing)
	return nil
}

// Update replaces a stored ingredient
func (r *IngredientRepository) Update(_ context.Context, ing *domain.Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ingredients[ing.ID]; !ok {
		return domain.ErrIngredientNotFound
	}
	r.ingredients[ing.ID] = copyIngredient(ing)
	return nil
}

// Delete removes a stored ingredient
func (r *IngredientRepository) Delete(_ context.Context, id domain.IngredientID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ingredients[id]; !ok {
		return domain.ErrIngredientNotFound
	}
	delete(r.ingredients, id)
	return nil
}

// GetByID returns a copy of the ingredient, or nil when absent
func (r *IngredientRepository) GetByID(_ context.Context, id domain.IngredientID) (*domain.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ing, ok := r.ingredients[id]
	if !ok {
		return nil, nil
	}
	return copyIngredient(ing), nil
}

// ListByUserID returns copies of the user's ingredients ordered by name
func (r *IngredientRepository) ListByUserID(_ context.Context, userID domain.UserID) ([]*domain.Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ingredients []*domain.Ingredient
	for _, ing := range r.ingredients {
		if ing.UserID == userID {
			ingredients = append(ingredients, copyIngredient(ing))
		}
	}
	sort.Slice(ingredients, func(i, j int) bool {
		return ingredients[i].Name < ingredients[j].Name
	})
	return ingredients, nil
}

func copyIngredient(i *domain.Ingredient) *domain.Ingredient {
	out := *i
	if i.Threshold != nil {
		v := *i.Threshold
		out.Threshold = &v
	}
	if i.BestBefore != nil {
		t := *i.BestBefore
		out.BestBefore = &t
	}
	if i.UseBy != nil {
		t := *i.UseBy
		out.UseBy = &t
	}
	return &out
}
