package domain

// Economy defaults
const (
	// DefaultPackPrice is the shop price of one booster pack.
	DefaultPackPrice = 500

	// StartingMoney is the balance given to newly registered players.
	StartingMoney = 2000
)

// DefaultCardSetID is the expansion used when none is configured.
const DefaultCardSetID = "base1"

// Default sale values per tier, used when the card source carries no price.
const (
	DefaultPriceEnergy   = 5
	DefaultPriceCommon   = 10
	DefaultPriceUncommon = 25
	DefaultPriceRare     = 100
	DefaultPriceHoloRare = 300
)

// DefaultPriceForTier returns the fallback sale value for a tier.
func DefaultPriceForTier(tier RarityTier) int {
	switch tier {
	case TierEnergy:
		return DefaultPriceEnergy
	case TierCommon:
		return DefaultPriceCommon
	case TierUncommon:
		return DefaultPriceUncommon
	case TierRare:
		return DefaultPriceRare
	case TierHoloRare:
		return DefaultPriceHoloRare
	default:
		return 0
	}
}

// Pack type keys offered by the shop.
const (
	PackTypeCharizard = "charizard"
	PackTypeBlastoise = "blastoise"
	PackTypeBulbasaur = "bulbasaur"
)

// Achievement ids
const (
	AchievementPackOpener1    = "pack-opener-1"
	AchievementPackOpener2    = "pack-opener-2"
	AchievementPackOpener3    = "pack-opener-3"
	AchievementPackOpener4    = "pack-opener-4"
	AchievementPackOpener5    = "pack-opener-5"
	AchievementHoloCollector1 = "holo-collector-1"
	AchievementHoloCollector2 = "holo-collector-2"
	AchievementHoloCollector3 = "holo-collector-3"
	AchievementHoloCollector4 = "holo-collector-4"
)

// Event types published on the bus
const (
	EventTypePackBought         = "pack.bought"
	EventTypePackOpened         = "pack.opened"
	EventTypeCardSold           = "card.sold"
	EventTypeAchievementClaimed = "achievement.claimed"
)

// MaxUsernameLength bounds registered usernames.
const MaxUsernameLength = 50
