package domain

import "time"

// RarityTotals holds cumulative per-tier counters. They are never decremented.
type RarityTotals struct {
	Energy   int `json:"energy"`
	Common   int `json:"common"`
	Uncommon int `json:"uncommon"`
	Rare     int `json:"rare"`
	HoloRare int `json:"holoRare"`
}

// Add returns the element-wise sum.
func (t RarityTotals) Add(o RarityTotals) RarityTotals {
	return RarityTotals{
		Energy:   t.Energy + o.Energy,
		Common:   t.Common + o.Common,
		Uncommon: t.Uncommon + o.Uncommon,
		Rare:     t.Rare + o.Rare,
		HoloRare: t.HoloRare + o.HoloRare,
	}
}

// Sum returns the total of all counted tiers.
func (t RarityTotals) Sum() int {
	return t.Energy + t.Common + t.Uncommon + t.Rare + t.HoloRare
}

// Inc increments the counter for tier. TierNone is ignored.
func (t *RarityTotals) Inc(tier RarityTier) {
	switch tier {
	case TierEnergy:
		t.Energy++
	case TierCommon:
		t.Common++
	case TierUncommon:
		t.Uncommon++
	case TierRare:
		t.Rare++
	case TierHoloRare:
		t.HoloRare++
	}
}

// Get returns the counter for tier.
func (t RarityTotals) Get(tier RarityTier) int {
	switch tier {
	case TierEnergy:
		return t.Energy
	case TierCommon:
		return t.Common
	case TierUncommon:
		return t.Uncommon
	case TierRare:
		return t.Rare
	case TierHoloRare:
		return t.HoloRare
	default:
		return 0
	}
}

// Player is the aggregate game state for one account.
type Player struct {
	ID                    string         `json:"id"`
	Username              string         `json:"username"`
	Money                 int            `json:"money"`
	OpenedPacks           int            `json:"opened_packs"`
	PackInventory         []BoosterPack  `json:"pack_inventory"`
	OwnedCards            map[string]int `json:"owned_cards"`
	ObtainedRaritiesTotal RarityTotals   `json:"obtained_rarities_total"`
	Achievements          []string       `json:"achievements"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

// HasAchievement reports whether the achievement id was already claimed.
func (p Player) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a == id {
			return true
		}
	}
	return false
}

// PlayerUpdate is a partial update. Nil fields are left unchanged.
type PlayerUpdate struct {
	Money                 *int           `json:"money,omitempty"`
	OpenedPacks           *int           `json:"opened_packs,omitempty"`
	PackInventory         *[]BoosterPack `json:"pack_inventory,omitempty"`
	OwnedCards            map[string]int `json:"owned_cards,omitempty"`
	ObtainedRaritiesTotal *RarityTotals  `json:"obtained_rarities_total,omitempty"`
	Achievements          *[]string      `json:"achievements,omitempty"`
}

// Apply merges u into a copy of p in one step.
func (p Player) Apply(u PlayerUpdate) Player {
	if u.Money != nil {
		p.Money = *u.Money
	}
	if u.OpenedPacks != nil {
		p.OpenedPacks = *u.OpenedPacks
	}
	if u.PackInventory != nil {
		p.PackInventory = *u.PackInventory
	}
	if u.OwnedCards != nil {
		p.OwnedCards = u.OwnedCards
	}
	if u.ObtainedRaritiesTotal != nil {
		p.ObtainedRaritiesTotal = *u.ObtainedRaritiesTotal
	}
	if u.Achievements != nil {
		p.Achievements = *u.Achievements
	}
	return p
}
