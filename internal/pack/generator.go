package pack

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/utils"
)

// Generator fills booster packs from a card pool. It is safe for concurrent use
// as long as rnd is.
type Generator struct {
	rnd    func() float64 // uniform in [0,1)
	now    func() time.Time
	nextID atomic.Int64
}

// NewGenerator creates a generator backed by the shared math/rand source.
func NewGenerator() *Generator {
	return NewGeneratorWithRand(utils.RandomFloat)
}

// NewGeneratorWithRand creates a generator with an explicit random source.
// Tests pass a seeded or scripted source here.
func NewGeneratorWithRand(rnd func() float64) *Generator {
	g := &Generator{
		rnd: rnd,
		now: time.Now,
	}
	// Ids are monotonic per generator and seeded from the clock. They are not
	// unique across processes; see FreePackID.
	g.nextID.Store(g.now().UnixMilli())
	return g
}

// GeneratePack draws 2 energy, 5 common, 3 uncommon and 1 rare-slot card.
// The rare slot is holo with probability domain.HoloChance. Every draw is
// uniform and with replacement. An empty bucket fails with ErrPoolExhausted;
// cards are never substituted from another bucket.
func (g *Generator) GeneratePack(pool *CardPool, packName string) (domain.BoosterPack, error) {
	if pool == nil {
		return domain.BoosterPack{}, fmt.Errorf("%w: no card pool loaded", domain.ErrPoolExhausted)
	}
	if strings.TrimSpace(packName) == "" {
		return domain.BoosterPack{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrContextPackNameEmpty)
	}
	if missing := pool.MissingBuckets(); len(missing) > 0 {
		return domain.BoosterPack{}, fmt.Errorf("%w: %s: %s", domain.ErrPoolExhausted, ErrContextEmptyBuckets, strings.Join(missing, ", "))
	}

	cards := make([]domain.Card, 0, domain.PackSize)
	cards = g.drawN(cards, pool.energy, domain.PackEnergySlots)
	cards = g.drawN(cards, pool.common, domain.PackCommonSlots)
	cards = g.drawN(cards, pool.uncommon, domain.PackUncommonSlots)
	cards = append(cards, g.drawRareSlot(pool))

	return domain.BoosterPack{
		ID:        g.nextID.Add(1),
		Name:      packName,
		Cards:     cards,
		IsOpened:  false,
		CreatedAt: g.now().UTC(),
	}, nil
}

// drawRareSlot rolls once to pick the holo or non-holo bucket, then draws once.
func (g *Generator) drawRareSlot(pool *CardPool) domain.Card {
	if g.rnd() < domain.HoloChance {
		return g.draw(pool.holo)
	}
	return g.draw(pool.rare)
}

func (g *Generator) drawN(dst, bucket []domain.Card, n int) []domain.Card {
	for i := 0; i < n; i++ {
		dst = append(dst, g.draw(bucket))
	}
	return dst
}

// draw returns a uniformly chosen card. bucket must be non-empty.
func (g *Generator) draw(bucket []domain.Card) domain.Card {
	return bucket[pickIndex(len(bucket), g.rnd())]
}

// pickIndex maps a roll in [0,1) onto [0,n).
func pickIndex(n int, roll float64) int {
	idx := int(roll * float64(n))
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
