package domain

// AchievementMetric selects the player counter an achievement is measured against.
type AchievementMetric string

const (
	MetricOpenedPacks AchievementMetric = "opened_packs"
	MetricHoloRares   AchievementMetric = "holo_rares"
)

// Achievement is a one-time money reward unlocked by reaching a threshold.
type Achievement struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Reward    int               `json:"reward"`
	Metric    AchievementMetric `json:"metric"`
	Threshold int               `json:"threshold"`
}

// Reached reports whether p satisfies the achievement condition.
func (a Achievement) Reached(p Player) bool {
	return a.Progress(p) >= a.Threshold
}

// Progress returns the player's current value for the achievement metric.
func (a Achievement) Progress(p Player) int {
	switch a.Metric {
	case MetricOpenedPacks:
		return p.OpenedPacks
	case MetricHoloRares:
		return p.ObtainedRaritiesTotal.HoloRare
	default:
		return 0
	}
}
