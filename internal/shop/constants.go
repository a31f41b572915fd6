package shop

// ==================== Pack Catalog ====================

// Pack naming follows the cosmetic pack artwork.
const (
	PackNamePrefix    = "Booster-Pack-"
	PackDisplaySuffix = " Pack"
	PackImagePattern  = "/images/packs/%s.png"
)

// ==================== Error Messages ====================

const (
	ErrMsgPackTypeRequired   = "pack type is required"
	ErrMsgCardIDRequired     = "card id is required"
	ErrMsgInsufficientFmt    = "need %d, have %d"
	ErrMsgNegativeCardPrice  = "card has no valid sale price"
	ErrMsgLoadPoolFailed     = "failed to load card pool: %w"
	ErrMsgEmptyBucketsFmt    = "empty buckets: %s"
	ErrMsgLookupCardFailed   = "failed to look up card: %w"
	ErrMsgGeneratePackFailed = "failed to generate pack: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgBuyPackCalled  = "BuyPack called"
	LogMsgPackPurchased  = "Pack purchased"
	LogMsgSellCardCalled = "SellCard called"
	LogMsgCardSold       = "Card sold"
	LogMsgShuttingDown   = "Shop service shutting down, waiting for background tasks..."
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldPackType = "pack_type"
	LogFieldPackID   = "pack_id"
	LogFieldCardID   = "card_id"
	LogFieldPrice    = "price"
	LogFieldMoney    = "money"
)
