package ingredient

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pantryline/pantryline/internal/domain"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedIngredientEntry wraps an ingredient with version metadata for cache invalidation
type cachedIngredientEntry struct {
	Version    string             `json:"version"`
	Ingredient *domain.Ingredient `json:"ingredient"`
	CachedAt   time.Time          `json:"cached_at"`
}

// ingredientCache provides an in-memory LRU cache for ingredient lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type ingredientCache struct {
	lru *expirable.LRU[string, *cachedIngredientEntry]
}

// newIngredientCache creates a new ingredient cache with the specified size and TTL.
// size: maximum number of cached ingredients
// ttl: time-to-live for cached entries
func newIngredientCache(size int, ttl time.Duration) *ingredientCache {
	return &ingredientCache{
		lru: expirable.NewLRU[string, *cachedIngredientEntry](size, nil, ttl),
	}
}

// Get retrieves an ingredient from the cache.
// Returns (ingredient, true) if found and version matches.
// Returns (nil, false) if not in cache, expired, or version mismatch.
// Automatically invalidates entries with mismatched versions.
func (c *ingredientCache) Get(id domain.IngredientID) (*domain.Ingredient, bool) {
	entry, found := c.lru.Get(id.String())
	if !found {
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(id.String())
		return nil, false
	}

	return entry.Ingredient, true
}

// Set stores an ingredient in the cache with current schema version.
func (c *ingredientCache) Set(ing *domain.Ingredient) {
	entry := &cachedIngredientEntry{
		Version:    CacheSchemaVersion,
		Ingredient: ing,
		CachedAt:   time.Now(),
	}
	c.lru.Add(ing.ID.String(), entry)
}

// Invalidate removes an ingredient from the cache.
// Useful when ingredient data is updated or deleted.
func (c *ingredientCache) Invalidate(id domain.IngredientID) {
	c.lru.Remove(id.String())
}

// Clear removes all entries from the cache.
func (c *ingredientCache) Clear() {
	c.lru.Purge()
}
