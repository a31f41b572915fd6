package postgres

// PostgreSQL error codes
const (
	pgCodeUniqueViolation = "23505"
)

// Error context messages
const (
	ErrMsgFailedToBeginTx       = "failed to begin transaction"
	ErrMsgFailedToInsertPlayer  = "failed to insert player"
	ErrMsgFailedToGetPlayer     = "failed to get player"
	ErrMsgFailedToSavePlayer    = "failed to save player"
	ErrMsgFailedToEncodePlayer  = "failed to encode player state"
	ErrMsgFailedToDecodePlayer  = "failed to decode player state"
	ErrMsgFailedToUpsertCards   = "failed to upsert cards"
	ErrMsgFailedToQueryCards    = "failed to query cards"
	ErrMsgFailedToLogEvent      = "failed to log event"
	ErrMsgFailedToQueryEvents   = "failed to query events"
	ErrMsgFailedToCleanupEvents = "failed to cleanup events"
	ErrMsgInvalidPlayerID       = "invalid player id"
)
