package ingredient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIngredientCache_SetGet(t *testing.T) {
	cache := newIngredientCache(4, time.Minute)
	ing := existingIngredient("user1", 5, nil)

	_, found := cache.Get(ing.ID)
	assert.False(t, found)

	cache.Set(ing)
	got, found := cache.Get(ing.ID)
	assert.True(t, found)
	assert.Equal(t, ing, got)
}

func TestIngredientCache_Invalidate(t *testing.T) {
	cache := newIngredientCache(4, time.Minute)
	ing := existingIngredient("user1", 5, nil)
	cache.Set(ing)

	cache.Invalidate(ing.ID)

	_, found := cache.Get(ing.ID)
	assert.False(t, found)
}

func TestIngredientCache_TTLExpiry(t *testing.T) {
	cache := newIngredientCache(4, 10*time.Millisecond)
	ing := existingIngredient("user1", 5, nil)
	cache.Set(ing)

	time.Sleep(30 * time.Millisecond)

	_, found := cache.Get(ing.ID)
	assert.False(t, found)
}

func TestIngredientCache_EvictsLeastRecentlyUsed(t *testing.T) {
	cache := newIngredientCache(2, time.Minute)
	first := existingIngredient("user1", 1, nil)
	second := existingIngredient("user1", 2, nil)
	third := existingIngredient("user1", 3, nil)

	cache.Set(first)
	cache.Set(second)
	cache.Set(third)

	_, found := cache.Get(first.ID)
	assert.False(t, found)
	_, found = cache.Get(third.ID)
	assert.True(t, found)
}

func TestIngredientCache_Clear(t *testing.T) {
	cache := newIngredientCache(4, time.Minute)
	ing := existingIngredient("user1", 5, nil)
	cache.Set(ing)

	cache.Clear()

	_, found := cache.Get(ing.ID)
	assert.False(t, found)
}

func TestIngredientCache_VersionMismatchInvalidates(t *testing.T) {
	cache := newIngredientCache(4, time.Minute)
	ing := existingIngredient("user1", 5, nil)
	cache.lru.Add(ing.ID.String(), &cachedIngredientEntry{
		Version:    "0.9",
		Ingredient: ing,
		CachedAt:   time.Now(),
	})

	_, found := cache.Get(ing.ID)
	assert.False(t, found)

	// Entry was removed, not just skipped
	assert.Equal(t, 0, cache.lru.Len())
}
