package eventlog

// JSON payload field keys
const (
	PayloadKeyPlayerID = "player_id"
)

// History paging
const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 500
)

// Error messages
const (
	ErrMsgDecodePayloadFailed = "failed to decode event payload: %w"
	ErrMsgLogEventFailed      = "failed to log event: %w"
	ErrMsgHistoryFailed       = "failed to load event history: %w"
)

// Log messages - service events
const (
	LogMsgFailedToLogEvent = "Failed to log event to database"
	LogMsgEventLogged      = "Event logged to database"
)

// Log messages - cleanup job
const (
	CleanupJobName            = "eventlog-cleanup"
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldPlayerID      = "player_id"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
