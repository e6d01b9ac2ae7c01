package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/pantryline/pantryline/internal/event"
	"github.com/pantryline/pantryline/internal/metrics"
)

// RegisterEventHandlers sets up all event subscribers. Currently that is the
// metrics collector, which turns domain events into Prometheus counters.
func RegisterEventHandlers(eventBus event.Bus) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(eventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
