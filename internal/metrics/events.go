package metrics

import (
	"context"
	"strconv"

	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		event.SessionStarted,
		event.ItemChecked,
		event.SessionCompleted,
		event.SessionAbandoned,
		event.IngredientCreated,
		event.IngredientUpdated,
		event.IngredientDeleted,
		event.IngredientLowStock,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.SessionStarted:
		SessionsStarted.Inc()

	case event.SessionCompleted:
		SessionsCompleted.Inc()

	case event.SessionAbandoned:
		SessionsAbandoned.Inc()

	case event.ItemChecked:
		payload, err := event.DecodePayload[event.ItemCheckedPayloadV1](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadUnexpected, "type", evt.Type, "error", err)
			return nil
		}
		ItemsChecked.WithLabelValues(strconv.FormatBool(payload.NeedsAttention)).Inc()

	case event.IngredientLowStock:
		LowStockAlerts.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
