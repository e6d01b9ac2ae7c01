package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pantryline/pantryline/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types, mirrored from the domain constants so subscribers can
// match on event.Type directly
const (
	SessionStarted     Type = domain.EventTypeSessionStarted
	ItemChecked        Type = domain.EventTypeItemChecked
	SessionCompleted   Type = domain.EventTypeSessionCompleted
	SessionAbandoned   Type = domain.EventTypeSessionAbandoned
	IngredientCreated  Type = domain.EventTypeIngredientCreated
	IngredientUpdated  Type = domain.EventTypeIngredientUpdated
	IngredientDeleted  Type = domain.EventTypeIngredientDeleted
	IngredientLowStock Type = domain.EventTypeIngredientLowStock
)

// Event is the envelope shared by every domain event in the system.
// The payload shape is fixed per event type; subscribers decode it with
// DecodePayload.
type Event struct {
	ID          string                 `json:"id"`
	AggregateID string                 `json:"aggregate_id"`
	Type        Type                   `json:"type"`
	OccurredAt  time.Time              `json:"occurred_at"`
	Payload     interface{}            `json:"payload"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	Version     int                    `json:"version"`
}

// newEvent stamps the envelope fields shared by all constructors
func newEvent(aggregateID string, eventType Type, payload interface{}) Event {
	return Event{
		ID:          uuid.NewString(),
		AggregateID: aggregateID,
		Type:        eventType,
		OccurredAt:  time.Now().UTC(),
		Payload:     payload,
		Version:     EventSchemaVersion,
	}
}

// Typed event payloads for type safety

// SessionStartedPayloadV1 is the typed payload for session started events
type SessionStartedPayloadV1 struct {
	SessionID  string           `json:"session_id"`
	UserID     string           `json:"user_id"`
	StartedAt  time.Time        `json:"started_at"`
	DeviceType string           `json:"device_type,omitempty"`
	Location   *domain.Location `json:"location,omitempty"`
}

// ItemCheckedPayloadV1 is the typed payload for item checked events
type ItemCheckedPayloadV1 struct {
	SessionID      string    `json:"session_id"`
	UserID         string    `json:"user_id"`
	IngredientID   string    `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name"`
	StockStatus    string    `json:"stock_status"`
	ExpiryStatus   string    `json:"expiry_status"`
	CheckedAt      time.Time `json:"checked_at"`
	NeedsAttention bool      `json:"needs_attention"`
	Priority       float64   `json:"priority"`
}

// SessionCompletedPayloadV1 is the typed payload for session completed events
type SessionCompletedPayloadV1 struct {
	SessionID             string    `json:"session_id"`
	UserID                string    `json:"user_id"`
	CompletedAt           time.Time `json:"completed_at"`
	ItemsChecked          int       `json:"items_checked"`
	ItemsNeedingAttention int       `json:"items_needing_attention"`
}

// SessionAbandonedPayloadV1 is the typed payload for session abandoned events
type SessionAbandonedPayloadV1 struct {
	SessionID    string    `json:"session_id"`
	UserID       string    `json:"user_id"`
	AbandonedAt  time.Time `json:"abandoned_at"`
	Reason       string    `json:"reason,omitempty"`
	ItemsChecked int       `json:"items_checked"`
}

// IngredientPayloadV1 is the typed payload for ingredient lifecycle events
type IngredientPayloadV1 struct {
	IngredientID string   `json:"ingredient_id"`
	UserID       string   `json:"user_id"`
	Name         string   `json:"name"`
	Quantity     float64  `json:"quantity"`
	Threshold    *float64 `json:"threshold,omitempty"`
}

// IngredientLowStockPayloadV1 is the typed payload for low stock events
type IngredientLowStockPayloadV1 struct {
	IngredientID string  `json:"ingredient_id"`
	UserID       string  `json:"user_id"`
	Name         string  `json:"name"`
	Quantity     float64 `json:"quantity"`
	Threshold    float64 `json:"threshold"`
}

// Type-safe event constructors

// NewSessionStartedEvent creates a session started event from the aggregate
func NewSessionStartedEvent(session *domain.ShoppingSession) Event {
	payload := SessionStartedPayloadV1{
		SessionID: session.ID.String(),
		UserID:    session.UserID.String(),
		StartedAt: session.StartedAt,
		Location:  session.Location,
	}
	if session.DeviceType != nil {
		payload.DeviceType = string(*session.DeviceType)
	}
	return newEvent(session.ID.String(), SessionStarted, payload)
}

// NewItemCheckedEvent creates an item checked event for one inspection
func NewItemCheckedEvent(session *domain.ShoppingSession, item domain.CheckedItem) Event {
	return newEvent(session.ID.String(), ItemChecked, ItemCheckedPayloadV1{
		SessionID:      session.ID.String(),
		UserID:         session.UserID.String(),
		IngredientID:   item.IngredientID().String(),
		IngredientName: item.IngredientName(),
		StockStatus:    string(item.StockStatus()),
		ExpiryStatus:   string(item.ExpiryStatus()),
		CheckedAt:      item.CheckedAt(),
		NeedsAttention: item.NeedsAttention(),
		Priority:       item.Priority(),
	})
}

// NewSessionCompletedEvent creates a session completed event
func NewSessionCompletedEvent(session *domain.ShoppingSession) Event {
	payload := SessionCompletedPayloadV1{
		SessionID:             session.ID.String(),
		UserID:                session.UserID.String(),
		ItemsChecked:          len(session.CheckedItems),
		ItemsNeedingAttention: len(session.ItemsNeedingAttention()),
	}
	if session.CompletedAt != nil {
		payload.CompletedAt = *session.CompletedAt
	}
	return newEvent(session.ID.String(), SessionCompleted, payload)
}

// NewSessionAbandonedEvent creates a session abandoned event
func NewSessionAbandonedEvent(session *domain.ShoppingSession) Event {
	payload := SessionAbandonedPayloadV1{
		SessionID:    session.ID.String(),
		UserID:       session.UserID.String(),
		Reason:       session.AbandonReason,
		ItemsChecked: len(session.CheckedItems),
	}
	if session.CompletedAt != nil {
		payload.AbandonedAt = *session.CompletedAt
	}
	return newEvent(session.ID.String(), SessionAbandoned, payload)
}

// NewIngredientLifecycleEvent creates a created/updated/deleted event for an
// ingredient. eventType must be one of the ingredient lifecycle types.
func NewIngredientLifecycleEvent(eventType Type, ing *domain.Ingredient) Event {
	return newEvent(ing.ID.String(), eventType, IngredientPayloadV1{
		IngredientID: ing.ID.String(),
		UserID:       ing.UserID.String(),
		Name:         ing.Name,
		Quantity:     ing.Quantity,
		Threshold:    ing.Threshold,
	})
}

// NewIngredientLowStockEvent creates a low stock event for an ingredient
// whose quantity crossed its configured threshold
func NewIngredientLowStockEvent(ing *domain.Ingredient) Event {
	var threshold float64
	if ing.Threshold != nil {
		threshold = *ing.Threshold
	}
	return newEvent(ing.ID.String(), IngredientLowStock, IngredientLowStockPayloadV1{
		IngredientID: ing.ID.String(),
		UserID:       ing.UserID.String(),
		Name:         ing.Name,
		Quantity:     ing.Quantity,
		Threshold:    threshold,
	})
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus. PublishAll submits every event
// from one command as a single batch, in order.
type Bus interface {
	Publish(ctx context.Context, event Event) error
	PublishAll(ctx context.Context, events []Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously. Dispatching to a worker pool is a
	// possible future change if subscribers get slow.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// PublishAll publishes a batch of events in order. Delivery is best effort:
// a failing event does not stop the rest of the batch, and all failures are
// reported together.
func (b *MemoryBus) PublishAll(ctx context.Context, events []Event) error {
	var errs []error
	for _, e := range events {
		if err := b.Publish(ctx, e); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("published batch of %d with %d failures: %v", len(events), len(errs), errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
