package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/repository"
)

// Service is the card pool source for pack generation.
type Service interface {
	// Pool returns the immutable draw pool for a set. An empty set or one
	// missing a draw bucket is reported with domain.ErrPoolExhausted.
	Pool(ctx context.Context, setID string) (*pack.CardPool, error)
	ListCards(ctx context.Context, setID string) ([]domain.Card, error)
	GetCard(ctx context.Context, cardID string) (*domain.Card, error)
	// Import fetches a set from the upstream API, stores it and drops the cached pool.
	Import(ctx context.Context, setID string) (int, error)
	// Seed stores cards from a local file when the set has no cards yet.
	Seed(ctx context.Context, setID, path string) (int, error)
	Invalidate(setID string)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo    repository.Card
	fetcher Fetcher
	pools   *expirable.LRU[string, *pack.CardPool]
	loadMu  sync.Mutex
}

// Config holds cache tuning for the catalog service
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

// NewService creates a catalog service. fetcher may be nil when upstream import is disabled.
func NewService(repo repository.Card, fetcher Fetcher, cfg Config) Service {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	return &service{
		repo:    repo,
		fetcher: fetcher,
		pools:   expirable.NewLRU[string, *pack.CardPool](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}

func (s *service) Pool(ctx context.Context, setID string) (*pack.CardPool, error) {
	log := logger.FromContext(ctx)
	setID = normalizeSetID(setID)

	if pool, ok := s.pools.Get(setID); ok {
		log.Debug(LogMsgPoolCacheHit, LogFieldSetID, setID)
		return pool, nil
	}

	// One loader per process; concurrent misses wait for the first load.
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if pool, ok := s.pools.Get(setID); ok {
		return pool, nil
	}

	cards, err := s.repo.GetCardsBySet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgLoadCardsFailed, err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("%w: %s %q", domain.ErrPoolExhausted, ErrMsgEmptySet, setID)
	}

	pool := pack.NewCardPool(setID, cards)
	if missing := pool.MissingBuckets(); len(missing) > 0 {
		log.Warn(LogMsgPoolIncomplete, LogFieldSetID, setID, LogFieldMissing, missing)
	}
	s.pools.Add(setID, pool)

	log.Info(LogMsgPoolLoaded, LogFieldSetID, setID, LogFieldCount, pool.Len(), LogFieldBuckets, pool.BucketSizes())
	return pool, nil
}

func (s *service) ListCards(ctx context.Context, setID string) ([]domain.Card, error) {
	pool, err := s.Pool(ctx, setID)
	if err != nil {
		return nil, err
	}
	return pool.Cards(), nil
}

func (s *service) GetCard(ctx context.Context, cardID string) (*domain.Card, error) {
	return s.repo.GetCardByID(ctx, cardID)
}

func (s *service) Import(ctx context.Context, setID string) (int, error) {
	log := logger.FromContext(ctx)
	setID = normalizeSetID(setID)
	log.Info(LogMsgImportCalled, LogFieldSetID, setID)

	if s.fetcher == nil {
		return 0, fmt.Errorf("%s: no upstream configured", ErrMsgFetchFailed)
	}

	cards, err := s.fetcher.FetchSet(ctx, setID)
	if err != nil {
		return 0, err
	}
	if len(cards) == 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrPoolExhausted, ErrMsgEmptySet, setID)
	}

	n, err := s.store(ctx, setID, cards)
	if err != nil {
		return 0, err
	}
	log.Info(LogMsgImportCompleted, LogFieldSetID, setID, LogFieldCount, n)
	return n, nil
}

func (s *service) Seed(ctx context.Context, setID, path string) (int, error) {
	log := logger.FromContext(ctx)
	setID = normalizeSetID(setID)

	existing, err := s.repo.GetCardsBySet(ctx, setID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgLoadCardsFailed, err)
	}
	if len(existing) > 0 {
		log.Info(LogMsgSeedSkipped, LogFieldSetID, setID, LogFieldCount, len(existing))
		return 0, nil
	}

	cards, err := LoadFile(path)
	if err != nil {
		return 0, err
	}
	cards = filterSet(cards, setID)
	if len(cards) == 0 {
		return 0, fmt.Errorf("%s %q: %s", ErrMsgSeedSetMismatch, setID, path)
	}

	n, err := s.store(ctx, setID, cards)
	if err != nil {
		return 0, err
	}
	log.Info(LogMsgSeedCompleted, LogFieldSetID, setID, LogFieldCount, n, LogFieldPath, path)
	return n, nil
}

func (s *service) store(ctx context.Context, setID string, cards []domain.Card) (int, error) {
	n, err := s.repo.UpsertCards(ctx, cards)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgStoreCardsFailed, err)
	}
	s.Invalidate(setID)
	return n, nil
}

func (s *service) Invalidate(setID string) {
	s.pools.Remove(normalizeSetID(setID))
}

func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgCatalogShutdown)
	s.pools.Purge()
	return nil
}

func normalizeSetID(setID string) string {
	setID = strings.TrimSpace(setID)
	if setID == "" {
		return domain.DefaultCardSetID
	}
	return setID
}
