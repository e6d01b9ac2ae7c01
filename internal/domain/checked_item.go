package domain

import (
	"encoding/json"
	"time"
)

// CheckedItem is an immutable snapshot of one ingredient inspection during a
// shopping session. The ingredient name is captured at check time and never
// re-derived later, so renames do not rewrite history.
type CheckedItem struct {
	ingredientID   IngredientID
	ingredientName string
	stockStatus    StockStatus
	expiryStatus   ExpiryStatus
	checkedAt      time.Time
}

// NewCheckedItem creates a checked item stamped with the current time
func NewCheckedItem(ingredientID IngredientID, ingredientName string, stock StockStatus, expiry ExpiryStatus) CheckedItem {
	return NewCheckedItemAt(ingredientID, ingredientName, stock, expiry, time.Now().UTC())
}

// NewCheckedItemAt creates a checked item with an explicit timestamp.
// Used for backfill and deterministic tests.
func NewCheckedItemAt(ingredientID IngredientID, ingredientName string, stock StockStatus, expiry ExpiryStatus, checkedAt time.Time) CheckedItem {
	return CheckedItem{
		ingredientID:   ingredientID,
		ingredientName: ingredientName,
		stockStatus:    stock,
		expiryStatus:   expiry,
		checkedAt:      checkedAt,
	}
}

func (c CheckedItem) IngredientID() IngredientID { return c.ingredientID }
func (c CheckedItem) IngredientName() string     { return c.ingredientName }
func (c CheckedItem) StockStatus() StockStatus   { return c.stockStatus }
func (c CheckedItem) ExpiryStatus() ExpiryStatus { return c.expiryStatus }
func (c CheckedItem) CheckedAt() time.Time       { return c.checkedAt }

// NeedsAttention reports whether the item should be acted on: anything other
// than a fully stocked, fresh ingredient needs attention.
func (c CheckedItem) NeedsAttention() bool {
	return c.stockStatus != StockStatusInStock || c.expiryStatus != ExpiryStatusFresh
}

// Priority is the sum of the stock and expiry severities. Higher means more
// urgent; used to rank items needing action.
func (c CheckedItem) Priority() float64 {
	return float64(c.stockStatus.Severity()) + c.expiryStatus.Severity()
}

// Equals reports whether two checked items record the same inspection event.
// Identity is (ingredientID, checkedAt); the derived statuses are deliberately
// excluded, so two records of the same inspection compare equal even when
// their statuses were derived differently.
func (c CheckedItem) Equals(other CheckedItem) bool {
	return c.ingredientID == other.ingredientID && c.checkedAt.Equal(other.checkedAt)
}

// checkedItemJSON is the flattened wire form of a CheckedItem
type checkedItemJSON struct {
	IngredientID   string `json:"ingredient_id"`
	IngredientName string `json:"ingredient_name"`
	CheckedAt      string `json:"checked_at"`
	StockStatus    string `json:"stock_status"`
	ExpiryStatus   string `json:"expiry_status"`
}

// MarshalJSON flattens the item with an ISO-8601 checked_at timestamp
func (c CheckedItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(checkedItemJSON{
		IngredientID:   c.ingredientID.String(),
		IngredientName: c.ingredientName,
		CheckedAt:      c.checkedAt.Format(time.RFC3339Nano),
		StockStatus:    string(c.stockStatus),
		ExpiryStatus:   string(c.expiryStatus),
	})
}

// UnmarshalJSON reconstructs an item from its flattened wire form
func (c *CheckedItem) UnmarshalJSON(data []byte) error {
	var raw checkedItemJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	checkedAt, err := time.Parse(time.RFC3339Nano, raw.CheckedAt)
	if err != nil {
		return err
	}
	c.ingredientID = IngredientID(raw.IngredientID)
	c.ingredientName = raw.IngredientName
	c.checkedAt = checkedAt
	c.stockStatus = StockStatus(raw.StockStatus)
	c.expiryStatus = ExpiryStatus(raw.ExpiryStatus)
	return nil
}
