package player

// ==================== Error Messages ====================

const (
	ErrMsgUsernameRequired = "username is required"
	ErrMsgUsernameTooLong  = "username exceeds %d characters"
	ErrMsgPlayerIDRequired = "player id is required"
)

// Database operation error messages
const (
	ErrMsgGetPlayerFailed         = "failed to get player: %w"
	ErrMsgCreatePlayerFailed      = "failed to create player: %w"
	ErrMsgBeginTransactionFailed  = "failed to begin transaction: %w"
	ErrMsgSavePlayerFailed        = "failed to save player: %w"
	ErrMsgCommitTransactionFailed = "failed to commit transaction: %w"
	ErrMsgLoadCatalogFailed       = "failed to load card catalog: %w"
)

// ==================== Log Messages ====================

const (
	LogMsgRegisterCalled      = "Register called"
	LogMsgPlayerRegistered    = "Player registered"
	LogMsgGetPlayerCalled     = "GetPlayer called"
	LogMsgListPacksCalled     = "ListPacks called"
	LogMsgGetCollectionCalled = "GetCollection called"
	LogMsgOpenPackCalled      = "OpenPack called"
	LogMsgPackOpened          = "Pack opened"
	LogMsgUpdateFailed        = "Player update failed"
	LogMsgShuttingDown        = "Player service shutting down, waiting for background tasks..."
)

// Log field keys
const (
	LogFieldPlayerID = "player_id"
	LogFieldUsername = "username"
	LogFieldPackID   = "pack_id"
	LogFieldCounts   = "counts"
	LogFieldError    = "error"
)
