package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidPackID         = "Invalid pack id"
	ErrMsgInvalidLimit          = "Invalid limit parameter"
)

// Success messages for API responses
const (
	MsgCardsImported = "Cards imported successfully"
)

// Health status values
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
)

// URL parameters
const (
	ParamPlayerID      = "playerID"
	ParamPackID        = "packID"
	ParamCardID        = "cardID"
	ParamAchievementID = "achievementID"
	QueryParamSet      = "set"
	QueryParamLimit    = "limit"
)
