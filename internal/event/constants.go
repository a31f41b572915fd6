package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	LogMsgPublishFailed = "Event handlers failed"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %w"
)

// Metadata keys
const (
	MetadataKeyRequestID = "request_id"
)
