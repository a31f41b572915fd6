package pack

// ============================================================================
// Draw Buckets
// ============================================================================

// Bucket names used in diagnostics and PoolExhausted errors.
const (
	BucketEnergy   = "energy"
	BucketCommon   = "common"
	BucketUncommon = "uncommon"
	BucketRare     = "rare"
	BucketHolo     = "holo"
)

// ============================================================================
// Error Messages
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextEmptyBuckets  = "empty buckets"
	ErrContextInvalidPackID = "invalid pack id"
	ErrContextPackNameEmpty = "pack name is required"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPoolBuilt      = "Card pool built"
	LogMsgPoolIncomplete = "Card pool is missing draw buckets"
	LogMsgUncountedCard  = "Card has no rarity tier and is not counted"
)

// Log field keys for structured logging
const (
	LogFieldBucket = "bucket"
	LogFieldCard   = "card"
	LogFieldPack   = "pack"
)
