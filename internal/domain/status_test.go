package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func thresholdPtr(v float64) *float64 { return &v }

func datePtr(t time.Time) *time.Time { return &t }

func TestStockStatus_Severity(t *testing.T) {
	assert.Equal(t, 1, StockStatusInStock.Severity())
	assert.Equal(t, 2, StockStatusLowStock.Severity())
	assert.Equal(t, 3, StockStatusOutOfStock.Severity())
}

func TestExpiryStatus_Severity_StrictlyIncreasing(t *testing.T) {
	ordered := []ExpiryStatus{
		ExpiryStatusFresh,
		ExpiryStatusNearExpiry,
		ExpiryStatusExpiringSoon,
		ExpiryStatusCritical,
		ExpiryStatusExpired,
	}
	for i := 1; i < len(ordered); i++ {
		assert.Greater(t, ordered[i].Severity(), ordered[i-1].Severity(),
			"%s must rank above %s", ordered[i], ordered[i-1])
	}
	assert.Equal(t, 1.0, ExpiryStatusFresh.Severity())
	assert.Equal(t, 3.0, ExpiryStatusExpired.Severity())
}

func TestDeriveStockStatus(t *testing.T) {
	tests := []struct {
		name      string
		quantity  float64
		threshold *float64
		want      StockStatus
	}{
		{"above threshold", 10, thresholdPtr(2), StockStatusInStock},
		{"at threshold", 2, thresholdPtr(2), StockStatusLowStock},
		{"below threshold", 1, thresholdPtr(2), StockStatusLowStock},
		{"zero quantity", 0, thresholdPtr(2), StockStatusOutOfStock},
		{"negative quantity", -1, thresholdPtr(2), StockStatusOutOfStock},
		{"no threshold positive", 0.5, nil, StockStatusInStock},
		{"no threshold zero", 0, nil, StockStatusOutOfStock},
		{"zero threshold ignored when stocked", 3, thresholdPtr(0), StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStockStatus(tt.quantity, tt.threshold))
		})
	}
}

func TestDeriveExpiryStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		bestBefore *time.Time
		useBy      *time.Time
		want       ExpiryStatus
	}{
		{"no dates", nil, nil, ExpiryStatusFresh},
		{"far future", datePtr(now.Add(30 * 24 * time.Hour)), nil, ExpiryStatusFresh},
		{"within near-expiry window", datePtr(now.Add(10 * 24 * time.Hour)), nil, ExpiryStatusNearExpiry},
		{"within expiring-soon window", datePtr(now.Add(4 * 24 * time.Hour)), nil, ExpiryStatusExpiringSoon},
		{"within critical window", datePtr(now.Add(24 * time.Hour)), nil, ExpiryStatusCritical},
		{"past due", datePtr(now.Add(-time.Hour)), nil, ExpiryStatusExpired},
		{"use-by only", nil, datePtr(now.Add(24 * time.Hour)), ExpiryStatusCritical},
		{"earliest date wins", datePtr(now.Add(30 * 24 * time.Hour)), datePtr(now.Add(24 * time.Hour)), ExpiryStatusCritical},
		{"earliest date wins reversed", datePtr(now.Add(24 * time.Hour)), datePtr(now.Add(30 * 24 * time.Hour)), ExpiryStatusCritical},
		{"exactly at critical boundary", datePtr(now.Add(ExpiryWindowCritical)), nil, ExpiryStatusCritical},
		{"exactly at near-expiry boundary", datePtr(now.Add(ExpiryWindowNearExpiry)), nil, ExpiryStatusNearExpiry},
		{"expiring this instant", datePtr(now), nil, ExpiryStatusCritical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveExpiryStatus(now, tt.bestBefore, tt.useBy))
		})
	}
}

func TestDeriveExpiryStatus_IsPure(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	bestBefore := datePtr(now.Add(3 * 24 * time.Hour))

	first := DeriveExpiryStatus(now, bestBefore, nil)
	second := DeriveExpiryStatus(now, bestBefore, nil)
	assert.Equal(t, first, second)
}
