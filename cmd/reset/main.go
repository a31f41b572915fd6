// Command reset drops and recreates the configured database, then applies
// migrations. Intended for local development only.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/database"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func main() {
	logger.InitLogger(logger.DevelopmentConfig())

	cfg, err := config.Load()
	if err != nil {
		fatal("Failed to load configuration", err)
	}
	if cfg.Environment != logger.EnvironmentDev && cfg.Environment != logger.EnvironmentTest {
		fatal("Refusing to reset database", fmt.Errorf("environment %q is not dev or test", cfg.Environment))
	}

	ctx := context.Background()

	// Connect to the maintenance database to manage the target one.
	serverConnString := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConnString)
	if err != nil {
		fatal("Failed to connect to PostgreSQL server", err)
	}
	defer conn.Close(ctx)

	dbName := pgx.Identifier{cfg.DBName}.Sanitize()

	slog.Info("Terminating existing connections", "database", cfg.DBName)
	if _, err := conn.Exec(ctx, `
		SELECT pg_terminate_backend(pid)
		FROM pg_stat_activity
		WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
		slog.Warn("Failed to terminate connections", "error", err)
	}

	slog.Info("Dropping database", "database", cfg.DBName)
	if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+dbName); err != nil {
		fatal("Failed to drop database", err)
	}

	slog.Info("Creating database", "database", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+dbName); err != nil {
		fatal("Failed to create database", err)
	}

	connString := cfg.GetDBConnString()
	if err := database.Migrate(ctx, connString); err != nil {
		fatal("Failed to apply migrations", err)
	}

	version, err := database.MigrationStatus(ctx, connString)
	if err != nil {
		fatal("Failed to read schema version", err)
	}
	slog.Info("Database reset complete", "database", cfg.DBName, "schema_version", version)
}
