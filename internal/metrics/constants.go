package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameSessionsStarted   = "shopping_sessions_started_total"
	MetricNameSessionsCompleted = "shopping_sessions_completed_total"
	MetricNameSessionsAbandoned = "shopping_sessions_abandoned_total"
	MetricNameItemsChecked      = "session_items_checked_total"
	MetricNameLowStockAlerts    = "ingredient_low_stock_alerts_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextSessionsStarted   = "Total number of shopping sessions started"
	HelpTextSessionsCompleted = "Total number of shopping sessions completed"
	HelpTextSessionsAbandoned = "Total number of shopping sessions abandoned"
	HelpTextItemsChecked      = "Total number of ingredients checked during sessions"
	HelpTextLowStockAlerts    = "Total number of low stock alerts emitted"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod         = "method"
	LabelPath           = "path"
	LabelStatus         = "status"
	LabelType           = "type"
	LabelNeedsAttention = "needs_attention"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadUnexpected = "Event payload has unexpected shape, skipping business metrics"
	LogMsgMetricsRecorded        = "Metrics recorded for event"
)
