package bootstrap

import (
	"log/slog"

	"github.com/osse101/PackOpenSim_Go/internal/config"
	"github.com/osse101/PackOpenSim_Go/internal/handler"
	"github.com/osse101/PackOpenSim_Go/internal/logger"
)

// SetupLogger installs the process logger from configuration. Source locations
// are only added in the dev environment.
func SetupLogger(cfg *config.Config) *slog.Logger {
	addSource := cfg.Environment == logger.EnvironmentDev
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		logger.DefaultServiceName,
		handler.Version,
		cfg.Environment,
		addSource,
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingApp, "environment", cfg.Environment, "version", handler.Version)
	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"card_set", cfg.CardSetID,
		"pack_price", cfg.PackPrice)

	return l
}
