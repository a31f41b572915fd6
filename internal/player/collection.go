package player

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// OwnedCard is one collection entry
type OwnedCard struct {
	Card  domain.Card `json:"card"`
	Count int         `json:"count"`
}

// Collection summarizes the cards a player owns against the active set
type Collection struct {
	PlayerID    string              `json:"player_id"`
	SetID       string              `json:"set_id"`
	Cards       []OwnedCard         `json:"cards"`
	UniqueCards int                 `json:"unique_cards"`
	TotalCards  int                 `json:"total_cards"`
	SetSize     int                 `json:"set_size"`
	Totals      domain.RarityTotals `json:"obtained_rarities_total"`
}

func (s *service) GetCollection(ctx context.Context, playerID string) (*Collection, error) {
	logger.FromContext(ctx).Debug(LogMsgGetCollectionCalled, LogFieldPlayerID, playerID)

	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	setCards, err := s.cards.ListCards(ctx, s.cfg.SetID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadCatalogFailed, err)
	}
	return buildCollection(*p, s.cfg.SetID, setCards), nil
}

// buildCollection lists owned cards (count > 0) in set order. Owned ids that
// are not part of the set are appended by id with only the id filled in.
func buildCollection(p domain.Player, setID string, setCards []domain.Card) *Collection {
	c := &Collection{
		PlayerID: p.ID,
		SetID:    setID,
		Cards:    []OwnedCard{},
		SetSize:  len(setCards),
		Totals:   p.ObtainedRaritiesTotal,
	}

	seen := make(map[string]bool, len(setCards))
	for _, card := range setCards {
		seen[card.ID] = true
		if n := p.OwnedCards[card.ID]; n > 0 {
			c.Cards = append(c.Cards, OwnedCard{Card: card, Count: n})
		}
	}

	var extra []string
	for id, n := range p.OwnedCards {
		if n > 0 && !seen[id] {
			extra = append(extra, id)
		}
	}
	sort.Strings(extra)
	for _, id := range extra {
		c.Cards = append(c.Cards, OwnedCard{Card: domain.Card{ID: id}, Count: p.OwnedCards[id]})
	}

	for _, oc := range c.Cards {
		c.UniqueCards++
		c.TotalCards += oc.Count
	}
	return c
}
