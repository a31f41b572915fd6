package pack

import (
	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// CardPool is an immutable snapshot of a card set, partitioned into the five
// draw buckets once at construction. It is safe for concurrent reads.
type CardPool struct {
	setID    string
	cards    []domain.Card
	energy   []domain.Card
	common   []domain.Card
	uncommon []domain.Card
	rare     []domain.Card
	holo     []domain.Card
}

// NewCardPool copies cards and builds the draw buckets:
//   - energy: category Energy
//   - common / uncommon: matching category, energy excluded
//   - rare: category Rare and not holo
//   - holo: holo flag set, regardless of rarity, energy excluded
func NewCardPool(setID string, cards []domain.Card) *CardPool {
	p := &CardPool{
		setID: setID,
		cards: make([]domain.Card, 0, len(cards)),
	}

	for _, c := range cards {
		c = c.Normalize()
		p.cards = append(p.cards, c)

		switch c.Category {
		case domain.CategoryEnergy:
			p.energy = append(p.energy, c)
			continue
		case domain.CategoryCommon:
			p.common = append(p.common, c)
		case domain.CategoryUncommon:
			p.uncommon = append(p.uncommon, c)
		case domain.CategoryRare:
			if !c.Holo {
				p.rare = append(p.rare, c)
			}
		}

		if c.Holo {
			p.holo = append(p.holo, c)
		}
	}

	return p
}

// SetID returns the expansion this pool was built from.
func (p *CardPool) SetID() string {
	return p.setID
}

// Len returns the number of cards in the pool.
func (p *CardPool) Len() int {
	return len(p.cards)
}

// Cards returns a copy of every card in the pool.
func (p *CardPool) Cards() []domain.Card {
	out := make([]domain.Card, len(p.cards))
	copy(out, p.cards)
	return out
}

// BucketSizes reports how many cards each draw bucket holds.
func (p *CardPool) BucketSizes() map[string]int {
	return map[string]int{
		BucketEnergy:   len(p.energy),
		BucketCommon:   len(p.common),
		BucketUncommon: len(p.uncommon),
		BucketRare:     len(p.rare),
		BucketHolo:     len(p.holo),
	}
}

// MissingBuckets lists the draw buckets that have no cards, in draw order.
func (p *CardPool) MissingBuckets() []string {
	var missing []string
	for _, b := range []struct {
		name  string
		cards []domain.Card
	}{
		{BucketEnergy, p.energy},
		{BucketCommon, p.common},
		{BucketUncommon, p.uncommon},
		{BucketRare, p.rare},
		{BucketHolo, p.holo},
	} {
		if len(b.cards) == 0 {
			missing = append(missing, b.name)
		}
	}
	return missing
}

// Complete reports whether every draw bucket holds at least one card.
func (p *CardPool) Complete() bool {
	return len(p.MissingBuckets()) == 0
}
