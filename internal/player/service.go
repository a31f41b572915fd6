package player

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// Service defines player registration, reads and pack opening
type Service interface {
	Register(ctx context.Context, username string) (*domain.Player, error)
	GetPlayer(ctx context.Context, playerID string) (*domain.Player, error)
	ListPacks(ctx context.Context, playerID string) ([]domain.BoosterPack, error)
	GetCollection(ctx context.Context, playerID string) (*Collection, error)
	OpenPack(ctx context.Context, playerID string, packID int64) (*pack.OpenResult, error)
	Shutdown(ctx context.Context) error
}

// CardSource resolves card details for collection views
type CardSource interface {
	ListCards(ctx context.Context, setID string) ([]domain.Card, error)
}

// Config holds player service settings
type Config struct {
	StartingMoney int
	SetID         string
}

type service struct {
	repo      repository.Player
	writer    *Writer
	cards     CardSource
	publisher *event.AsyncPublisher
	cfg       Config
}

// NewService creates a new player service
func NewService(repo repository.Player, writer *Writer, cards CardSource, publisher *event.AsyncPublisher, cfg Config) Service {
	if cfg.StartingMoney < 0 {
		cfg.StartingMoney = 0
	}
	if cfg.SetID == "" {
		cfg.SetID = domain.DefaultCardSetID
	}
	return &service{
		repo:      repo,
		writer:    writer,
		cards:     cards,
		publisher: publisher,
		cfg:       cfg,
	}
}

func (s *service) Register(ctx context.Context, username string) (*domain.Player, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	log.Info(LogMsgRegisterCalled, LogFieldUsername, username)

	if username == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUsernameRequired)
	}
	if utf8.RuneCountInString(username) > domain.MaxUsernameLength {
		return nil, fmt.Errorf("%w: "+ErrMsgUsernameTooLong, domain.ErrInvalidInput, domain.MaxUsernameLength)
	}

	p := &domain.Player{
		Username:      username,
		Money:         s.cfg.StartingMoney,
		PackInventory: []domain.BoosterPack{},
		OwnedCards:    map[string]int{},
		Achievements:  []string{},
	}
	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		return nil, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}

	log.Info(LogMsgPlayerRegistered, LogFieldPlayerID, p.ID, LogFieldUsername, p.Username)
	return p, nil
}

func (s *service) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	logger.FromContext(ctx).Debug(LogMsgGetPlayerCalled, LogFieldPlayerID, playerID)
	if strings.TrimSpace(playerID) == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgPlayerIDRequired)
	}
	p, err := s.repo.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return p, nil
}

func (s *service) ListPacks(ctx context.Context, playerID string) ([]domain.BoosterPack, error) {
	logger.FromContext(ctx).Debug(LogMsgListPacksCalled, LogFieldPlayerID, playerID)
	p, err := s.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return sealedView(p.PackInventory), nil
}

// OpenPack runs the opening transaction against the locked player snapshot.
// An unknown pack id leaves the player untouched and returns domain.ErrPackNotFound.
func (s *service) OpenPack(ctx context.Context, playerID string, packID int64) (*pack.OpenResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgOpenPackCalled, LogFieldPlayerID, playerID, LogFieldPackID, packID)

	var result *pack.OpenResult
	_, err := s.writer.Update(ctx, playerID, func(current domain.Player) (domain.PlayerUpdate, error) {
		res, err := pack.OpenPackByID(current, packID)
		if err != nil {
			return domain.PlayerUpdate{}, err
		}
		result = res
		return res.Updates, nil
	})
	if err != nil {
		return nil, err
	}

	log.Info(LogMsgPackOpened, LogFieldPlayerID, playerID, LogFieldPackID, packID, LogFieldCounts, result.Counts)
	s.publisher.PublishAsync(ctx, event.NewPackOpenedEvent(playerID, result.Pack, result.Counts))
	return result, nil
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)
	return s.publisher.Wait(ctx)
}

// sealedView hides the contents of unopened packs from clients.
func sealedView(packs []domain.BoosterPack) []domain.BoosterPack {
	out := make([]domain.BoosterPack, len(packs))
	for i, p := range packs {
		p.Cards = nil
		out[i] = p
	}
	return out
}
