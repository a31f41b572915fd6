package catalog

import (
	"errors"
	"fmt"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/utils"
)

// seedCard is the file shape of a card. Price is a pointer so an explicit 0
// survives and only an absent price falls back to the tier default.
type seedCard struct {
	domain.Card
	Price *int `json:"price"`
}

// LoadFile reads a JSON array of cards. Cards missing a category or price get
// them resolved the same way upstream imports do.
func LoadFile(path string) ([]domain.Card, error) {
	var raw []seedCard
	if err := utils.LoadJSON(path, &raw); err != nil {
		if errors.Is(err, utils.ErrInvalidJSON) {
			return nil, fmt.Errorf("%s: %w", ErrMsgDecodeFailed, err)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgReadSeedFailed, err)
	}

	cards := make([]domain.Card, len(raw))
	for i, sc := range raw {
		card := sc.Card.Normalize()
		if sc.Price != nil {
			card.Price = *sc.Price
		} else {
			card.Price = domain.DefaultPriceForTier(card.Tier())
		}
		cards[i] = card
	}
	return cards, nil
}

// filterSet keeps the cards belonging to setID. Cards with no set are kept.
func filterSet(cards []domain.Card, setID string) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.SetID == "" {
			c.SetID = setID
		}
		if c.SetID == setID {
			out = append(out, c)
		}
	}
	return out
}
