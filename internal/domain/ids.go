package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// SessionID uniquely identifies a shopping session
type SessionID string

// IngredientID uniquely identifies an ingredient
type IngredientID string

// UserID uniquely identifies a user
type UserID string

// NewSessionID generates a new random session identifier
func NewSessionID() SessionID {
	return SessionID(uuid.NewString())
}

// NewIngredientID generates a new random ingredient identifier
func NewIngredientID() IngredientID {
	return IngredientID(uuid.NewString())
}

// ParseSessionID validates and wraps a raw session identifier
func ParseSessionID(raw string) (SessionID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: session id %q", ErrInvalidInput, raw)
	}
	return SessionID(raw), nil
}

// ParseIngredientID validates and wraps a raw ingredient identifier
func ParseIngredientID(raw string) (IngredientID, error) {
	if _, err := uuid.Parse(raw); err != nil {
		return "", fmt.Errorf("%w: ingredient id %q", ErrInvalidInput, raw)
	}
	return IngredientID(raw), nil
}

// ParseUserID validates and wraps a raw user identifier. User identifiers
// come from the auth layer and are opaque here; only emptiness is rejected.
func ParseUserID(raw string) (UserID, error) {
	if raw == "" {
		return "", fmt.Errorf("%w: user id must not be empty", ErrInvalidInput)
	}
	return UserID(raw), nil
}

func (id SessionID) String() string    { return string(id) }
func (id IngredientID) String() string { return string(id) }
func (id UserID) String() string       { return string(id) }
