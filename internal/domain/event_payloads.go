package domain

// PackBoughtPayload is published after a pack purchase commits.
type PackBoughtPayload struct {
	PlayerID  string `json:"player_id"`
	PackID    int64  `json:"pack_id"`
	PackName  string `json:"pack_name"`
	Price     int    `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// PackOpenedPayload is published after an opening transaction commits.
type PackOpenedPayload struct {
	PlayerID  string       `json:"player_id"`
	PackID    int64        `json:"pack_id"`
	PackName  string       `json:"pack_name"`
	Counts    RarityTotals `json:"counts"`
	Timestamp int64        `json:"timestamp"`
}

// CardSoldPayload is published after a card sale commits.
type CardSoldPayload struct {
	PlayerID  string `json:"player_id"`
	CardID    string `json:"card_id"`
	Price     int    `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// AchievementClaimedPayload is published after an achievement reward is paid.
type AchievementClaimedPayload struct {
	PlayerID      string `json:"player_id"`
	AchievementID string `json:"achievement_id"`
	Reward        int    `json:"reward"`
	Timestamp     int64  `json:"timestamp"`
}
