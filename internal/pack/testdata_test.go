package pack

import (
	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// Minimal single-card-per-bucket pool used across tests.
var (
	cardE = domain.Card{ID: "base1-98", Name: "Fire Energy", Supertype: domain.SupertypeEnergy, Category: domain.CategoryEnergy}
	cardC = domain.Card{ID: "base1-46", Name: "Charmander", Rarity: domain.RarityCommon, Category: domain.CategoryCommon}
	cardU = domain.Card{ID: "base1-24", Name: "Charmeleon", Rarity: domain.RarityUncommon, Category: domain.CategoryUncommon}
	cardR = domain.Card{ID: "base1-20", Name: "Electabuzz", Rarity: domain.RarityRare, Category: domain.CategoryRare}
	cardH = domain.Card{ID: "base1-4", Name: "Charizard", Rarity: domain.RarityRare, Category: domain.CategoryRare, Holo: true}
)

func minimalPool() *CardPool {
	return NewCardPool(domain.DefaultCardSetID, []domain.Card{cardE, cardC, cardU, cardR, cardH})
}

// scriptedRand replays rolls in order, then repeats the last one.
func scriptedRand(rolls ...float64) func() float64 {
	i := 0
	return func() float64 {
		if i >= len(rolls) {
			return rolls[len(rolls)-1]
		}
		r := rolls[i]
		i++
		return r
	}
}

func newTestPlayer() domain.Player {
	return domain.Player{
		ID:         "player-1",
		Username:   "ash",
		Money:      domain.StartingMoney,
		OwnedCards: map[string]int{},
	}
}
