package achievement

import (
	"fmt"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

type tier struct {
	id        string
	numeral   string
	threshold int
	reward    int
}

var packOpenerTiers = []tier{
	{domain.AchievementPackOpener1, "I", 5, 500},
	{domain.AchievementPackOpener2, "II", 10, 1000},
	{domain.AchievementPackOpener3, "III", 25, 2500},
	{domain.AchievementPackOpener4, "IV", 50, 5000},
	{domain.AchievementPackOpener5, "V", 100, 10000},
}

var holoCollectorTiers = []tier{
	{domain.AchievementHoloCollector1, "I", 1, 500},
	{domain.AchievementHoloCollector2, "II", 5, 1000},
	{domain.AchievementHoloCollector3, "III", 10, 1500},
	{domain.AchievementHoloCollector4, "IV", 20, 2000},
}

// DefaultCatalog returns the built-in achievements in display order.
func DefaultCatalog() []domain.Achievement {
	out := make([]domain.Achievement, 0, len(packOpenerTiers)+len(holoCollectorTiers))
	for _, t := range packOpenerTiers {
		out = append(out, domain.Achievement{
			ID:        t.id,
			Title:     "Pack Opener " + t.numeral,
			Subtitle:  countPhrase("Open", t.threshold, "booster pack"),
			Reward:    t.reward,
			Metric:    domain.MetricOpenedPacks,
			Threshold: t.threshold,
		})
	}
	for _, t := range holoCollectorTiers {
		out = append(out, domain.Achievement{
			ID:        t.id,
			Title:     "Holo Rare Collector " + t.numeral,
			Subtitle:  countPhrase("Pull", t.threshold, "holo rare"),
			Reward:    t.reward,
			Metric:    domain.MetricHoloRares,
			Threshold: t.threshold,
		})
	}
	return out
}

func countPhrase(verb string, n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%s a %s", verb, noun)
	}
	return fmt.Sprintf("%s %d %ss", verb, n, noun)
}

// find returns the achievement with id, if any.
func find(catalog []domain.Achievement, id string) (domain.Achievement, bool) {
	for _, a := range catalog {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Achievement{}, false
}
