package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
	ErrMsgInternalError   = "Internal Server Error"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgServerStopping   = "Server stopping"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
	LogMsgRepeatedAuthFail = "Repeated authentication failures from client"
	LogMsgRateLimited      = "Client exceeded request rate"
	LogMsgHandlerPanic     = "Handler panicked"
)

// HTTP header names
const (
	HeaderAPIKey         = "X-API-Key"
	HeaderAuthorization  = "Authorization"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueDeny                 = "DENY"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// Client tracking defaults
const (
	DefaultTrackerWindow       = 5 * time.Minute
	DefaultMaxRequestsPerIP    = 1000
	DefaultFailedAuthAlertAt   = 5
	DefaultMaxRequestBodyBytes = 1 << 20
	ReadHeaderTimeout          = 5 * time.Second
)

// Log field keys
const (
	LogFieldMethod        = "method"
	LogFieldPath          = "path"
	LogFieldStatus        = "status"
	LogFieldRemoteAddr    = "remote_addr"
	LogFieldIP            = "ip"
	LogFieldCount         = "count"
	LogFieldHasKey        = "has_key"
	LogFieldDurationMS    = "duration_ms"
	LogFieldContentLength = "content_length"
	LogFieldUserAgent     = "user_agent"
	LogFieldHeaders       = "headers"
	LogFieldAddr          = "addr"
	LogFieldPanic         = "panic"
)

// PublicPaths bypass API key authentication.
var PublicPaths = []string{
	"/swagger/",
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// quietPaths are probed constantly and are not request-logged.
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// RedactedValue replaces secret header values in logs.
const RedactedValue = "[REDACTED]"
