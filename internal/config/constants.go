package config

import "time"

// Environment variable names
const (
	EnvSchemaVersion      = "ENV_SCHEMA_VERSION"
	EnvPort               = "PORT"
	EnvAPIKey             = "API_KEY"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvRateLimit          = "RATE_LIMIT_REQUESTS"
	EnvRateLimitWindow    = "RATE_LIMIT_WINDOW"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvDBUser             = "DB_USER"
	EnvDBPassword         = "DB_PASSWORD"
	EnvDBHost             = "DB_HOST"
	EnvDBPort             = "DB_PORT"
	EnvDBName             = "DB_NAME"
	EnvDBMaxConns         = "DB_MAX_CONNS"
	EnvDBMaxConnIdle      = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxConnLife      = "DB_MAX_CONN_LIFETIME"
	EnvCardSetID          = "CARD_SET_ID"
	EnvCardAPIURL         = "CARD_API_URL"
	EnvCardAPIKey         = "CARD_API_KEY"
	EnvCardAPITimeout     = "CARD_API_TIMEOUT"
	EnvCardSeedFile       = "CARD_SEED_FILE"
	EnvCardCacheTTL       = "CARD_CACHE_TTL"
	EnvCardCacheSize      = "CARD_CACHE_SIZE"
	EnvPackPrice          = "PACK_PRICE"
	EnvStartingMoney      = "STARTING_MONEY"
	EnvEventRetentionDays = "EVENT_RETENTION_DAYS"
	EnvEventCleanupEvery  = "EVENT_CLEANUP_INTERVAL"
	EnvWorkerCount        = "WORKER_COUNT"
)

// Defaults
const (
	DefaultPort               = 8080
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "text"
	DefaultEnvironment        = "dev"
	DefaultDBUser             = "postgres"
	DefaultDBPassword         = "postgres"
	DefaultDBHost             = "localhost"
	DefaultDBPort             = "5432"
	DefaultDBName             = "packopensim"
	DefaultDBMaxConns         = 10
	DefaultDBMaxConnIdle      = 5 * time.Minute
	DefaultDBMaxConnLife      = time.Hour
	DefaultCardSeedFile       = "configs/cards/base1.json"
	DefaultCardAPITimeout     = 15 * time.Second
	DefaultCardCacheTTL       = 30 * time.Minute
	DefaultCardCacheSize      = 16
	DefaultEventRetentionDays = 30
	DefaultEventCleanupEvery  = 24 * time.Hour
	DefaultRateLimit          = 1000
	DefaultRateLimitWindow    = 5 * time.Minute
	DefaultWorkerCount        = 2
)

// ExpectedEnvSchemaVersion is the .env layout the application understands
const ExpectedEnvSchemaVersion = "1.0"

// Example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgInvalidPort       = "invalid PORT value"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set"
	ErrMsgNegativeValueFmt  = "%s must not be negative"
	ErrMsgSchemaNotSetFmt   = "ENV_SCHEMA_VERSION is not set, add it to your .env file (expected: %s)"
	ErrMsgSchemaMismatchFmt = "ENV_SCHEMA_VERSION mismatch: expected %s, got %s"
	ErrMsgMissingEnvFmt     = "missing required environment variables: %s"
)
