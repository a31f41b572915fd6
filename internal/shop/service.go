package shop

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/player"
)

// BuyResult contains the result of a pack purchase
type BuyResult struct {
	Pack  domain.BoosterPack `json:"pack"`
	Price int                `json:"price"`
	Money int                `json:"money"`
}

// SellResult contains the result of a card sale
type SellResult struct {
	CardID    string `json:"card_id"`
	Price     int    `json:"price"`
	Money     int    `json:"money"`
	Remaining int    `json:"remaining"`
}

// Service defines the shop operations
type Service interface {
	PackTypes() []domain.PackType
	BuyPack(ctx context.Context, playerID, packType string) (*BuyResult, error)
	SellCard(ctx context.Context, playerID, cardID string) (*SellResult, error)
	Shutdown(ctx context.Context) error
}

// Catalog is the subset of the card catalog the shop needs
type Catalog interface {
	Pool(ctx context.Context, setID string) (*pack.CardPool, error)
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
}

// Config holds shop settings
type Config struct {
	PackPrice int
	SetID     string
}

type service struct {
	writer    *player.Writer
	catalog   Catalog
	generator *pack.Generator
	publisher *event.AsyncPublisher
	packTypes []domain.PackType
	cfg       Config
}

// NewService creates a new shop service
func NewService(writer *player.Writer, catalog Catalog, generator *pack.Generator, publisher *event.AsyncPublisher, cfg Config) Service {
	if cfg.PackPrice <= 0 {
		cfg.PackPrice = domain.DefaultPackPrice
	}
	if cfg.SetID == "" {
		cfg.SetID = domain.DefaultCardSetID
	}
	if generator == nil {
		generator = pack.NewGenerator()
	}
	return &service{
		writer:    writer,
		catalog:   catalog,
		generator: generator,
		publisher: publisher,
		packTypes: DefaultPackTypes(cfg.PackPrice),
		cfg:       cfg,
	}
}

func (s *service) PackTypes() []domain.PackType {
	out := make([]domain.PackType, len(s.packTypes))
	copy(out, s.packTypes)
	return out
}

// BuyPack charges the pack price and adds a freshly generated pack to the
// player's inventory. The pool is checked before any money moves, so an
// exhausted pool never charges the player.
func (s *service) BuyPack(ctx context.Context, playerID, packType string) (*BuyResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgBuyPackCalled, LogFieldPlayerID, playerID, LogFieldPackType, packType)

	if strings.TrimSpace(packType) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPackTypeRequired)
	}
	pt, ok := findPackType(s.packTypes, packType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownPackType, packType)
	}

	pool, err := s.catalog.Pool(ctx, s.cfg.SetID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPoolFailed, err)
	}
	if missing := pool.MissingBuckets(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: "+ErrMsgEmptyBucketsFmt, domain.ErrPoolExhausted, strings.Join(missing, ", "))
	}

	var bought domain.BoosterPack
	updated, err := s.writer.Update(ctx, playerID, func(current domain.Player) (domain.PlayerUpdate, error) {
		if current.Money < pt.Price {
			return domain.PlayerUpdate{}, fmt.Errorf("%w: "+ErrMsgInsufficientFmt, domain.ErrInsufficientFunds, pt.Price, current.Money)
		}

		p, err := s.generator.GeneratePack(pool, pt.Name)
		if err != nil {
			return domain.PlayerUpdate{}, fmt.Errorf(ErrMsgGeneratePackFailed, err)
		}
		p.ID = pack.FreePackID(current.PackInventory, p.ID)
		p.Image = pt.Image
		bought = p

		inventory := make([]domain.BoosterPack, 0, len(current.PackInventory)+1)
		inventory = append(inventory, current.PackInventory...)
		inventory = append(inventory, p)
		money := current.Money - pt.Price

		return domain.PlayerUpdate{Money: &money, PackInventory: &inventory}, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgPackPurchased, LogFieldPlayerID, playerID, LogFieldPackID, bought.ID, LogFieldMoney, updated.Money)
	s.publisher.PublishAsync(ctx, event.NewPackBoughtEvent(playerID, bought, pt.Price))

	// Contents stay hidden until the pack is opened
	sealed := bought
	sealed.Cards = nil
	return &BuyResult{Pack: sealed, Price: pt.Price, Money: updated.Money}, nil
}

// SellCard sells one copy of an owned card for its catalog price.
func (s *service) SellCard(ctx context.Context, playerID, cardID string) (*SellResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSellCardCalled, LogFieldPlayerID, playerID, LogFieldCardID, cardID)

	if strings.TrimSpace(cardID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCardIDRequired)
	}

	card, err := s.catalog.GetCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLookupCardFailed, err)
	}
	if card.Price < 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativeCardPrice)
	}

	var remaining int
	updated, err := s.writer.Update(ctx, playerID, func(current domain.Player) (domain.PlayerUpdate, error) {
		count := current.OwnedCards[cardID]
		if count <= 0 {
			return domain.PlayerUpdate{}, fmt.Errorf("%w: %s", domain.ErrCardNotOwned, cardID)
		}

		owned := make(map[string]int, len(current.OwnedCards))
		for id, n := range current.OwnedCards {
			owned[id] = n
		}
		owned[cardID] = count - 1
		remaining = count - 1
		money := current.Money + card.Price

		return domain.PlayerUpdate{Money: &money, OwnedCards: owned}, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgCardSold, LogFieldPlayerID, playerID, LogFieldCardID, cardID, LogFieldPrice, card.Price)
	s.publisher.PublishAsync(ctx, event.NewCardSoldEvent(playerID, cardID, card.Price))

	return &SellResult{CardID: cardID, Price: card.Price, Money: updated.Money, Remaining: remaining}, nil
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	return s.publisher.Wait(ctx)
}
