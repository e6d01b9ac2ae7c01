package domain

import "time"

// Ingredient is a pantry ingredient with its current stock facts. The
// shopping core reads it as a snapshot at check time to derive statuses;
// the ingredient service owns its lifecycle.
type Ingredient struct {
	ID         IngredientID `json:"id"`
	UserID     UserID       `json:"user_id"`
	Name       string       `json:"name"`
	Unit       string       `json:"unit,omitempty"`
	Quantity   float64      `json:"quantity"`
	Threshold  *float64     `json:"threshold,omitempty"`
	BestBefore *time.Time   `json:"best_before,omitempty"`
	UseBy      *time.Time   `json:"use_by,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// CurrentStockStatus derives the stock condition from the ingredient's
// current quantity and threshold
func (i *Ingredient) CurrentStockStatus() StockStatus {
	return DeriveStockStatus(i.Quantity, i.Threshold)
}

// CurrentExpiryStatus derives the expiry condition relative to now
func (i *Ingredient) CurrentExpiryStatus(now time.Time) ExpiryStatus {
	return DeriveExpiryStatus(now, i.BestBefore, i.UseBy)
}

// IsLowStock reports whether the ingredient sits at or below its configured
// threshold. Ingredients without a threshold are never low stock.
func (i *Ingredient) IsLowStock() bool {
	return i.Threshold != nil && i.Quantity <= *i.Threshold
}
