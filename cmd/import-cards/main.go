// Command import-cards loads one card set into the database, either from the
// upstream card API or from a local JSON seed file.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/osse101/PackOpenSim_Go/internal/bootstrap"
	"github.com/osse101/PackOpenSim_Go/internal/catalog"
	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/database"
	"github.com/osse101/PackOpenSim_Go/internal/database/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setID := flag.String("set", cfg.CardSetID, "card set id to import")
	file := flag.String("file", "", "seed file to load instead of calling the upstream API")
	timeout := flag.Duration("timeout", 2*time.Minute, "overall import timeout")
	flag.Parse()

	bootstrap.SetupLogger(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	dbPool, err := database.NewPool(connString, cfg.DBMaxConns, cfg.DBMaxConnIdle, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	var fetcher catalog.Fetcher
	if cfg.CardAPIURL != "" {
		fetcher = catalog.NewHTTPFetcher(cfg.CardAPIURL, cfg.CardAPIKey, cfg.CardAPITimeout)
	}
	svc := catalog.NewService(postgres.NewCardRepository(dbPool), fetcher, catalog.Config{})

	var n int
	if *file != "" {
		n, err = svc.Seed(ctx, *setID, *file)
	} else {
		n, err = svc.Import(ctx, *setID)
	}
	if err != nil {
		log.Fatalf("Import of set %s failed: %v", *setID, err)
	}

	log.Printf("Imported %d cards for set %s", n, *setID)
}
