package domain

import (
	"fmt"
	"time"
)

// SessionStatus represents the current state of a shopping session
type SessionStatus string

const (
	SessionStatusActive    SessionStatus = "ACTIVE"
	SessionStatusCompleted SessionStatus = "COMPLETED"
	SessionStatusAbandoned SessionStatus = "ABANDONED"
)

// DeviceType identifies the kind of device a session was started from
type DeviceType string

const (
	DeviceTypeMobile  DeviceType = "MOBILE"
	DeviceTypeTablet  DeviceType = "TABLET"
	DeviceTypeDesktop DeviceType = "DESKTOP"
)

// Location is an optional geographic position recorded when a session starts
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
}

// ShoppingSession is the aggregate tracking one in-store shopping trip.
// It is ACTIVE from Start until exactly one of Complete or Abandon moves it
// to a terminal state; terminal sessions never mutate again. CheckedItems is
// ordered by insertion and holds at most one entry per ingredient.
//
// The one-active-session-per-user invariant spans aggregates and is enforced
// at the service/storage boundary, not here.
type ShoppingSession struct {
	ID            SessionID     `json:"id"`
	UserID        UserID        `json:"user_id"`
	Status        SessionStatus `json:"status"`
	StartedAt     time.Time     `json:"started_at"`
	CompletedAt   *time.Time    `json:"completed_at,omitempty"`
	DeviceType    *DeviceType   `json:"device_type,omitempty"`
	Location      *Location     `json:"location,omitempty"`
	AbandonReason string        `json:"abandon_reason,omitempty"`
	CheckedItems  []CheckedItem `json:"checked_items"`
}

// StartSession creates a new ACTIVE session for the given user
func StartSession(userID UserID, deviceType *DeviceType, location *Location) *ShoppingSession {
	return &ShoppingSession{
		ID:           NewSessionID(),
		UserID:       userID,
		Status:       SessionStatusActive,
		StartedAt:    time.Now().UTC(),
		DeviceType:   deviceType,
		Location:     location,
		CheckedItems: []CheckedItem{},
	}
}

// IsActive reports whether the session can still be mutated
func (s *ShoppingSession) IsActive() bool {
	return s.Status == SessionStatusActive
}

// IsOwnedBy reports whether the session belongs to the given user
func (s *ShoppingSession) IsOwnedBy(userID UserID) bool {
	return s.UserID == userID
}

// HasChecked reports whether an ingredient is already recorded in this session
func (s *ShoppingSession) HasChecked(ingredientID IngredientID) bool {
	for _, item := range s.CheckedItems {
		if item.IngredientID() == ingredientID {
			return true
		}
	}
	return false
}

// CheckIngredient appends an inspection record, preserving insertion order.
// Fails on non-ACTIVE sessions and on a repeated check of the same
// ingredient; the existing record is never altered.
func (s *ShoppingSession) CheckIngredient(item CheckedItem) error {
	if !s.IsActive() {
		return fmt.Errorf("%w: cannot check ingredients in status %s", ErrSessionNotActive, s.Status)
	}
	if s.HasChecked(item.IngredientID()) {
		return fmt.Errorf("%w: %s", ErrAlreadyChecked, item.IngredientID())
	}
	s.CheckedItems = append(s.CheckedItems, item)
	return nil
}

// Complete closes the session as finished. Only valid on ACTIVE sessions;
// a failed call leaves state untouched.
func (s *ShoppingSession) Complete() error {
	if !s.IsActive() {
		return fmt.Errorf("%w: cannot complete session in status %s", ErrSessionNotActive, s.Status)
	}
	now := time.Now().UTC()
	s.Status = SessionStatusCompleted
	s.CompletedAt = &now
	return nil
}

// Abandon closes the session without finishing the trip, recording an
// optional free-text reason. Only valid on ACTIVE sessions; a failed call
// leaves state untouched.
func (s *ShoppingSession) Abandon(reason string) error {
	if !s.IsActive() {
		return fmt.Errorf("%w: cannot abandon session in status %s", ErrSessionNotActive, s.Status)
	}
	now := time.Now().UTC()
	s.Status = SessionStatusAbandoned
	s.CompletedAt = &now
	s.AbandonReason = reason
	return nil
}

// ItemsNeedingAttention returns the checked items whose stock or expiry
// condition calls for action, in insertion order.
func (s *ShoppingSession) ItemsNeedingAttention() []CheckedItem {
	var items []CheckedItem
	for _, item := range s.CheckedItems {
		if item.NeedsAttention() {
			items = append(items, item)
		}
	}
	return items
}
