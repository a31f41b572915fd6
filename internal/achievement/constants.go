package achievement

// ==================== Error Messages ====================

const (
	ErrMsgAchievementIDRequired = "achievement id is required"
	ErrMsgGetPlayerFailed       = "failed to get player: %w"
	ErrMsgProgressFmt           = "%s: %d of %d"
)

// ==================== Log Messages ====================

const (
	LogMsgListCalled         = "List achievements called"
	LogMsgClaimCalled        = "Claim achievement called"
	LogMsgAchievementClaimed = "Achievement claimed"
	LogMsgShuttingDown       = "Achievement service shutting down, waiting for background tasks..."
)

// Log field keys
const (
	LogFieldPlayerID      = "player_id"
	LogFieldAchievementID = "achievement_id"
	LogFieldReward        = "reward"
	LogFieldMoney         = "money"
)
