package domain

import "time"

// StockStatus describes how well stocked an ingredient is at check time
type StockStatus string

const (
	StockStatusInStock    StockStatus = "IN_STOCK"
	StockStatusLowStock   StockStatus = "LOW_STOCK"
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// ExpiryStatus describes how close an ingredient is to expiring at check time
type ExpiryStatus string

const (
	ExpiryStatusFresh        ExpiryStatus = "FRESH"
	ExpiryStatusNearExpiry   ExpiryStatus = "NEAR_EXPIRY"
	ExpiryStatusExpiringSoon ExpiryStatus = "EXPIRING_SOON"
	ExpiryStatusCritical     ExpiryStatus = "CRITICAL"
	ExpiryStatusExpired      ExpiryStatus = "EXPIRED"
)

// Expiry windows measured from the earliest of best-before/use-by.
// Anything past due is EXPIRED regardless of window.
const (
	ExpiryWindowCritical     = 2 * 24 * time.Hour
	ExpiryWindowExpiringSoon = 5 * 24 * time.Hour
	ExpiryWindowNearExpiry   = 14 * 24 * time.Hour
)

// Severity returns the ordinal severity of a stock status.
// Used only for sorting and priority scoring, never for equality.
func (s StockStatus) Severity() int {
	switch s {
	case StockStatusLowStock:
		return 2
	case StockStatusOutOfStock:
		return 3
	default:
		return 1
	}
}

// Severity returns the ordinal severity of an expiry status.
// Endpoints are FRESH=1 and EXPIRED=3; the three intermediate statuses sit
// strictly between them in half steps. Half steps keep the ordering strict
// while preserving the endpoint weights that priority scores are built on.
// Used only for sorting and priority scoring, never for equality.
func (e ExpiryStatus) Severity() float64 {
	switch e {
	case ExpiryStatusNearExpiry:
		return 1.5
	case ExpiryStatusExpiringSoon:
		return 2
	case ExpiryStatusCritical:
		return 2.5
	case ExpiryStatusExpired:
		return 3
	default:
		return 1
	}
}

// DeriveStockStatus computes the stock condition from current quantity and
// the optional low-stock threshold. Without a configured threshold the
// result is never LOW_STOCK.
func DeriveStockStatus(quantity float64, threshold *float64) StockStatus {
	if quantity <= 0 {
		return StockStatusOutOfStock
	}
	if threshold != nil && quantity <= *threshold {
		return StockStatusLowStock
	}
	return StockStatusInStock
}

// DeriveExpiryStatus computes the expiry condition from the earliest of the
// best-before/use-by dates relative to now. Ingredients without either date
// are treated as non-perishable and always FRESH.
func DeriveExpiryStatus(now time.Time, bestBefore, useBy *time.Time) ExpiryStatus {
	earliest := earliestDate(bestBefore, useBy)
	if earliest == nil {
		return ExpiryStatusFresh
	}

	remaining := earliest.Sub(now)
	switch {
	case remaining < 0:
		return ExpiryStatusExpired
	case remaining <= ExpiryWindowCritical:
		return ExpiryStatusCritical
	case remaining <= ExpiryWindowExpiringSoon:
		return ExpiryStatusExpiringSoon
	case remaining <= ExpiryWindowNearExpiry:
		return ExpiryStatusNearExpiry
	default:
		return ExpiryStatusFresh
	}
}

func earliestDate(a, b *time.Time) *time.Time {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if b.Before(*a) {
		return b
	}
	return a
}
