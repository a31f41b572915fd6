package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/PackOpenSim_Go/internal/bootstrap"
	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/database"
	"github.com/osse101/PackOpenSim_Go/internal/handler"
	"github.com/osse101/PackOpenSim_Go/internal/server"
)

// @title PackOpenSim API
// @version 1.0
// @description Booster pack opening simulator backend.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		slog.Error("Failed to apply migrations", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	bus, publisher := bootstrap.InitializeEventSystem()
	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, publisher)

	if err := bootstrap.RegisterEventHandlers(bus, services.EventLog); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	bootstrap.SeedCatalog(ctx, cfg, services.Catalog)

	workers, sched := bootstrap.StartBackgroundJobs(cfg, services.EventLog)

	srv := server.NewServer(
		server.Options{
			Port:           cfg.Port,
			APIKey:         cfg.APIKey,
			TrustedProxies: cfg.TrustedProxies,
			Tracker:        server.NewClientTracker(cfg.RateLimitWindow, cfg.RateLimit, server.DefaultFailedAuthAlertAt),
		},
		dbPool,
		server.Handlers{
			Players:      handler.NewPlayerHandlers(services.Player, services.EventLog),
			Shop:         handler.NewShopHandlers(services.Shop),
			Achievements: handler.NewAchievementHandlers(services.Achievement),
			Catalog:      handler.NewCatalogHandlers(services.Catalog, cfg.CardSetID),
		},
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), bootstrap.DefaultShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   workers,
		Services:  services,
		Publisher: publisher,
	})
}
