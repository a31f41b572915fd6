package pack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// OpenResult is the outcome of an opening transaction. Updates is applied to
// the player record as a single merge by the caller.
type OpenResult struct {
	Pack    domain.BoosterPack  `json:"pack"`
	Cards   []domain.Card       `json:"cards"`
	Counts  domain.RarityTotals `json:"counts"`
	Updates domain.PlayerUpdate `json:"-"`
}

// FindPack returns the pack with exactly this id. It never falls back to another pack.
func FindPack(inventory []domain.BoosterPack, id int64) (domain.BoosterPack, bool) {
	if i := indexOfPack(inventory, id); i >= 0 {
		return inventory[i], true
	}
	return domain.BoosterPack{}, false
}

func indexOfPack(inventory []domain.BoosterPack, id int64) int {
	for i, p := range inventory {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// FreePackID returns id when no pack in inventory uses it, otherwise one past
// the largest id held. Generators in different processes can hand out the
// same id, so callers resolve collisions against the inventory they append to.
func FreePackID(inventory []domain.BoosterPack, id int64) int64 {
	if indexOfPack(inventory, id) < 0 {
		return id
	}
	highest := id
	for _, p := range inventory {
		if p.ID > highest {
			highest = p.ID
		}
	}
	return highest + 1
}

// ParsePackID parses a pack id received from the transport layer.
func ParsePackID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, ErrContextInvalidPackID, raw)
	}
	return id, nil
}

// CountTiers classifies each card and returns the per-tier counts.
// Cards without a tier are skipped.
func CountTiers(cards []domain.Card) domain.RarityTotals {
	var counts domain.RarityTotals
	for _, c := range cards {
		counts.Inc(c.Tier())
	}
	return counts
}

// OpenPack computes the player state after opening pack. It is a pure function:
// the input player is never mutated and the same inputs always give the same
// result. If the pack id is not in the player's inventory it returns
// ErrPackNotFound and no updates.
func OpenPack(player domain.Player, pack domain.BoosterPack) (*OpenResult, error) {
	idx := indexOfPack(player.PackInventory, pack.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrPackNotFound, pack.ID)
	}
	stored := player.PackInventory[idx]

	// Only the matched entry is consumed.
	inventory := make([]domain.BoosterPack, 0, len(player.PackInventory)-1)
	inventory = append(inventory, player.PackInventory[:idx]...)
	inventory = append(inventory, player.PackInventory[idx+1:]...)

	cards := make([]domain.Card, len(stored.Cards))
	copy(cards, stored.Cards)

	owned := make(map[string]int, len(player.OwnedCards)+len(cards))
	for id, n := range player.OwnedCards {
		owned[id] = n
	}
	for _, c := range cards {
		owned[c.ID]++
	}

	counts := CountTiers(cards)
	totals := player.ObtainedRaritiesTotal.Add(counts)
	opened := player.OpenedPacks + 1

	revealed := stored
	revealed.Cards = cards
	revealed.IsOpened = true

	return &OpenResult{
		Pack:   revealed,
		Cards:  cards,
		Counts: counts,
		Updates: domain.PlayerUpdate{
			PackInventory:         &inventory,
			OwnedCards:            owned,
			ObtainedRaritiesTotal: &totals,
			OpenedPacks:           &opened,
		},
	}, nil
}

// OpenPackByID looks up the pack by id and opens it.
func OpenPackByID(player domain.Player, packID int64) (*OpenResult, error) {
	p, ok := FindPack(player.PackInventory, packID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrPackNotFound, packID)
	}
	return OpenPack(player, p)
}
