package domain

import (
	"strings"

	"golang.org/x/text/cases"
)

// Rarity is the rarity tag carried by the upstream card data.
type Rarity string

const (
	RarityNone     Rarity = ""
	RarityCommon   Rarity = "Common"
	RarityUncommon Rarity = "Uncommon"
	RarityRare     Rarity = "Rare"
)

// Category is the draw bucket family a card belongs to. It is resolved once at
// ingestion so the generator never has to inspect card names.
type Category string

const (
	CategoryEnergy   Category = "energy"
	CategoryCommon   Category = "common"
	CategoryUncommon Category = "uncommon"
	CategoryRare     Category = "rare"
	CategoryUnknown  Category = "unknown"
)

// RarityTier is one of the five lifetime statistic buckets.
type RarityTier string

const (
	TierNone     RarityTier = ""
	TierEnergy   RarityTier = "energy"
	TierCommon   RarityTier = "common"
	TierUncommon RarityTier = "uncommon"
	TierRare     RarityTier = "rare"
	TierHoloRare RarityTier = "holoRare"
)

// AllTiers lists the counted tiers in reporting order.
func AllTiers() []RarityTier {
	return []RarityTier{TierEnergy, TierCommon, TierUncommon, TierRare, TierHoloRare}
}

// SupertypeEnergy is the upstream supertype for basic and special energy cards.
const SupertypeEnergy = "Energy"

const energySuffix = "energy"

// Card is an immutable catalog entry.
type Card struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	SetID     string   `json:"set_id,omitempty"`
	Supertype string   `json:"supertype,omitempty"`
	Rarity    Rarity   `json:"rarity,omitempty"`
	Category  Category `json:"category"`
	Holo      bool     `json:"holo"`
	Types     []string `json:"types,omitempty"`
	Price     int      `json:"price"`
	ImageURL  string   `json:"image_url,omitempty"`
}

// HasEnergyName reports whether the card name ends with "Energy".
// Comparison uses Unicode case folding, so "Double Colorless ENERGY" matches.
func HasEnergyName(name string) bool {
	folded := cases.Fold().String(strings.TrimSpace(name))
	return strings.HasSuffix(folded, energySuffix)
}

// ResolveCategory derives the category for raw card data. A structured
// supertype wins over the legacy name suffix rule.
func ResolveCategory(name, supertype string, rarity Rarity) Category {
	if strings.EqualFold(supertype, SupertypeEnergy) || HasEnergyName(name) {
		return CategoryEnergy
	}
	switch rarity {
	case RarityCommon:
		return CategoryCommon
	case RarityUncommon:
		return CategoryUncommon
	case RarityRare:
		return CategoryRare
	default:
		return CategoryUnknown
	}
}

// Normalize fills Category when the card was built without one.
func (c Card) Normalize() Card {
	if c.Category == "" {
		c.Category = ResolveCategory(c.Name, c.Supertype, c.Rarity)
	}
	return c
}

// IsEnergy reports whether the card is classified as an energy card.
func (c Card) IsEnergy() bool {
	return c.Normalize().Category == CategoryEnergy
}

// Tier classifies the card for lifetime statistics, in priority order:
// energy, common, uncommon, holo rare, rare. Untagged cards return TierNone.
func (c Card) Tier() RarityTier {
	switch c.Normalize().Category {
	case CategoryEnergy:
		return TierEnergy
	case CategoryCommon:
		return TierCommon
	case CategoryUncommon:
		return TierUncommon
	case CategoryRare:
		if c.Holo {
			return TierHoloRare
		}
		return TierRare
	default:
		return TierNone
	}
}
