package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Session errors
	ErrMsgSessionNotFound      = "shopping session not found"
	ErrMsgSessionAlreadyActive = "an active shopping session already exists for this user"
	ErrMsgSessionNotActive     = "shopping session is not active"
	ErrMsgNotSessionOwner      = "not the owner of this session"
	ErrMsgNoCheckPermission    = "no permission to check ingredients in this session"

	// Checked item errors
	ErrMsgAlreadyChecked = "ingredient already checked in this session"

	// Ingredient errors
	ErrMsgIngredientNotFound = "ingredient not found"

	// User errors
	ErrMsgUserNotFound = "user not found"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
//
// The taxonomy the boundary maps from:
//   - not found:              ErrSessionNotFound, ErrIngredientNotFound, ErrUserNotFound
//   - business rule violated: ErrSessionAlreadyActive, ErrSessionNotActive,
//     ErrAlreadyChecked, ErrNoCheckPermission
//   - forbidden:              ErrNotSessionOwner
//   - validation:             ErrInvalidInput
var (
	// Session errors
	ErrSessionNotFound      = errors.New(ErrMsgSessionNotFound)
	ErrSessionAlreadyActive = errors.New(ErrMsgSessionAlreadyActive)
	ErrSessionNotActive     = errors.New(ErrMsgSessionNotActive)
	ErrNotSessionOwner      = errors.New(ErrMsgNotSessionOwner)
	ErrNoCheckPermission    = errors.New(ErrMsgNoCheckPermission)

	// Checked item errors
	ErrAlreadyChecked = errors.New(ErrMsgAlreadyChecked)

	// Ingredient errors
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)

	// User errors
	ErrUserNotFound = errors.New(ErrMsgUserNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
