package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/PackOpenSim_Go/internal/achievement"
	"github.com/osse101/PackOpenSim_Go/internal/catalog"
	"github.com/osse101/PackOpenSim_Go/internal/concurrency"
	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/event"
	"github.com/osse101/PackOpenSim_Go/internal/eventlog"
	"github.com/osse101/PackOpenSim_Go/internal/pack"
	"github.com/osse101/PackOpenSim_Go/internal/player"
	"github.com/osse101/PackOpenSim_Go/internal/shop"
)

// Services holds the application services.
type Services struct {
	Catalog     catalog.Service
	Player      player.Service
	Shop        shop.Service
	Achievement achievement.Service
	EventLog    eventlog.Service
}

// InitializeServices builds every service. Player, shop and achievement share
// one Writer so all balance and inventory changes go through the same
// per-player lock.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher *event.AsyncPublisher) *Services {
	var fetcher catalog.Fetcher
	if cfg.CardAPIURL != "" {
		fetcher = catalog.NewHTTPFetcher(cfg.CardAPIURL, cfg.CardAPIKey, cfg.CardAPITimeout)
	} else {
		slog.Info(LogMsgCatalogUpstreamDisabled)
	}

	catalogSvc := catalog.NewService(repos.Card, fetcher, catalog.Config{
		CacheSize: cfg.CardCacheSize,
		CacheTTL:  cfg.CardCacheTTL,
	})

	writer := player.NewWriter(repos.Player, concurrency.NewLockManager())

	return &Services{
		Catalog: catalogSvc,
		Player: player.NewService(repos.Player, writer, catalogSvc, publisher, player.Config{
			StartingMoney: cfg.StartingMoney,
			SetID:         cfg.CardSetID,
		}),
		Shop: shop.NewService(writer, catalogSvc, pack.NewGenerator(), publisher, shop.Config{
			PackPrice: cfg.PackPrice,
			SetID:     cfg.CardSetID,
		}),
		Achievement: achievement.NewService(repos.Player, writer, publisher),
		EventLog:    eventlog.NewService(repos.EventLog),
	}
}

// SeedCatalog loads the configured set from the seed file when the database
// has no cards for it yet. A failure is logged, not returned: the set can
// still be imported at runtime.
func SeedCatalog(ctx context.Context, cfg *config.Config, catalogSvc catalog.Service) {
	if cfg.CardSeedFile == "" {
		return
	}
	n, err := catalogSvc.Seed(ctx, cfg.CardSetID, cfg.CardSeedFile)
	if err != nil {
		slog.Warn(LogMsgCatalogSeedFailed, "set_id", cfg.CardSetID, "path", cfg.CardSeedFile, "error", err)
		return
	}
	if n > 0 {
		slog.Info(LogMsgCatalogSeeded, "set_id", cfg.CardSetID, "count", n)
	}
}
