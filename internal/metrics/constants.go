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
	MetricNamePacksBought         = "packs_bought_total"
	MetricNamePacksOpened         = "packs_opened_total"
	MetricNameCardsRevealed       = "cards_revealed_total"
	MetricNameCardsSold           = "cards_sold_total"
	MetricNameAchievementsClaimed = "achievements_claimed_total"
	MetricNameMoneyEarned         = "money_earned_total"
	MetricNameMoneySpent          = "money_spent_total"
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
	HelpTextPacksBought         = "Total number of booster packs bought"
	HelpTextPacksOpened         = "Total number of booster packs opened"
	HelpTextCardsRevealed       = "Total number of cards revealed by opening packs"
	HelpTextCardsSold           = "Total number of cards sold"
	HelpTextAchievementsClaimed = "Total number of achievement rewards claimed"
	HelpTextMoneyEarned         = "Total money paid out to players"
	HelpTextMoneySpent          = "Total money spent on booster packs"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod      = "method"
	LabelPath        = "path"
	LabelStatus      = "status"
	LabelType        = "type"
	LabelPack        = "pack"
	LabelTier        = "tier"
	LabelAchievement = "achievement"
	LabelSource      = "source"
)

// Money sources
const (
	SourceCardSale    = "card_sale"
	SourceAchievement = "achievement"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
