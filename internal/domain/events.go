package domain

// Event type constants used across the application for event bus
// subscriptions and metrics tracking. These represent domain events that can
// be published and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "session.started")
const (
	// EventTypeSessionStarted is published when a shopping session begins
	EventTypeSessionStarted = "session.started"

	// EventTypeItemChecked is published when an ingredient is inspected during a session
	EventTypeItemChecked = "session.item_checked"

	// EventTypeSessionCompleted is published when a shopping session finishes
	EventTypeSessionCompleted = "session.completed"

	// EventTypeSessionAbandoned is published when a shopping session is abandoned
	EventTypeSessionAbandoned = "session.abandoned"

	// EventTypeIngredientCreated is published when an ingredient is added to the pantry
	EventTypeIngredientCreated = "ingredient.created"

	// EventTypeIngredientUpdated is published when an ingredient's facts change
	EventTypeIngredientUpdated = "ingredient.updated"

	// EventTypeIngredientDeleted is published when an ingredient is removed
	EventTypeIngredientDeleted = "ingredient.deleted"

	// EventTypeIngredientLowStock is published when a stock mutation crosses
	// the configured threshold downward. Emitted in the same batch as the
	// mutation's primary event.
	EventTypeIngredientLowStock = "ingredient.low_stock"
)
