package catalog

import "time"

// Upstream card API defaults
const (
	DefaultAPIURL        = "https://api.pokemontcg.io/v2"
	DefaultFetchTimeout  = 15 * time.Second
	DefaultPageSize      = 250
	maxUpstreamPages     = 20
	upstreamHoloMarker   = "holo"
	upstreamQueryPattern = "set.id:%s"
)

// Cache defaults
const (
	DefaultCacheSize = 16
	DefaultCacheTTL  = 30 * time.Minute
)

// Error context messages
const (
	ErrMsgEmptySet         = "card set has no cards"
	ErrMsgFetchFailed      = "failed to fetch cards from upstream"
	ErrMsgUpstreamStatus   = "upstream returned status"
	ErrMsgDecodeFailed     = "failed to decode card data"
	ErrMsgReadSeedFailed   = "failed to read card seed file"
	ErrMsgStoreCardsFailed = "failed to store cards"
	ErrMsgLoadCardsFailed  = "failed to load cards"
	ErrMsgSetIDRequired    = "set id is required"
	ErrMsgSeedSetMismatch  = "seed file contains no cards for set"
)

// Log messages
const (
	LogMsgPoolCacheHit    = "Card pool cache hit"
	LogMsgPoolLoaded      = "Card pool loaded"
	LogMsgPoolIncomplete  = "Card pool is missing draw buckets"
	LogMsgImportCalled    = "Import called"
	LogMsgImportCompleted = "Card import completed"
	LogMsgSeedSkipped     = "Card set already present, seed skipped"
	LogMsgSeedCompleted   = "Card seed completed"
	LogMsgCatalogShutdown = "Catalog service shutting down"
)

// Log field keys
const (
	LogFieldSetID   = "set_id"
	LogFieldCount   = "count"
	LogFieldBuckets = "buckets"
	LogFieldMissing = "missing"
	LogFieldPath    = "path"
	LogFieldURL     = "url"
)
