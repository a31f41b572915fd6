package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/PackOpenSim_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port             int
	APIKey           string
	TrustedProxies   []string
	RateLimit        int
	RateLimitWindow  time.Duration
	LogLevel         string
	LogFormat        string
	Environment      string
	DBUser           string
	DBPassword       string
	DBHost           string
	DBPort           string
	DBName           string
	DBMaxConns       int
	DBMaxConnIdle    time.Duration
	DBMaxConnLife    time.Duration
	CardSetID        string
	CardAPIURL       string
	CardAPIKey       string
	CardAPITimeout   time.Duration
	CardSeedFile     string
	CardCacheTTL     time.Duration
	CardCacheSize    int
	PackPrice        int
	StartingMoney    int
	EventRetention   int
	EventCleanupRate time.Duration
	WorkerCount      int
}

// Load reads configuration from the environment, after loading .env if present.
func Load() (*Config, error) {
	// Real environment variables win; a missing .env is fine.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv(EnvPort, strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}

	cfg := &Config{
		Port:             port,
		APIKey:           getEnv(EnvAPIKey, ""),
		TrustedProxies:   getEnvAsList(EnvTrustedProxies),
		RateLimit:        getEnvAsInt(EnvRateLimit, DefaultRateLimit),
		RateLimitWindow:  getEnvAsDuration(EnvRateLimitWindow, DefaultRateLimitWindow),
		LogLevel:         strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:        strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment:      getEnv(EnvEnvironment, DefaultEnvironment),
		DBUser:           getEnv(EnvDBUser, DefaultDBUser),
		DBPassword:       getEnv(EnvDBPassword, DefaultDBPassword),
		DBHost:           getEnv(EnvDBHost, DefaultDBHost),
		DBPort:           getEnv(EnvDBPort, DefaultDBPort),
		DBName:           getEnv(EnvDBName, DefaultDBName),
		DBMaxConns:       getEnvAsInt(EnvDBMaxConns, DefaultDBMaxConns),
		DBMaxConnIdle:    getEnvAsDuration(EnvDBMaxConnIdle, DefaultDBMaxConnIdle),
		DBMaxConnLife:    getEnvAsDuration(EnvDBMaxConnLife, DefaultDBMaxConnLife),
		CardSetID:        getEnv(EnvCardSetID, domain.DefaultCardSetID),
		CardAPIURL:       getEnv(EnvCardAPIURL, ""),
		CardAPIKey:       getEnv(EnvCardAPIKey, ""),
		CardAPITimeout:   getEnvAsDuration(EnvCardAPITimeout, DefaultCardAPITimeout),
		CardSeedFile:     getEnv(EnvCardSeedFile, DefaultCardSeedFile),
		CardCacheTTL:     getEnvAsDuration(EnvCardCacheTTL, DefaultCardCacheTTL),
		CardCacheSize:    getEnvAsInt(EnvCardCacheSize, DefaultCardCacheSize),
		PackPrice:        getEnvAsInt(EnvPackPrice, domain.DefaultPackPrice),
		StartingMoney:    getEnvAsInt(EnvStartingMoney, domain.StartingMoney),
		EventRetention:   getEnvAsInt(EnvEventRetentionDays, DefaultEventRetentionDays),
		EventCleanupRate: getEnvAsDuration(EnvEventCleanupEvery, DefaultEventCleanupEvery),
		WorkerCount:      getEnvAsInt(EnvWorkerCount, DefaultWorkerCount),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.APIKey == "" {
		return errors.New(ErrMsgAPIKeyRequired)
	}
	for name, v := range map[string]int{
		EnvPackPrice:          c.PackPrice,
		EnvStartingMoney:      c.StartingMoney,
		EnvEventRetentionDays: c.EventRetention,
	} {
		if v < 0 {
			return fmt.Errorf(ErrMsgNegativeValueFmt, name)
		}
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt falls back to defaultValue when the variable is unset or not an integer.
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration falls back to defaultValue when the variable is unset or unparseable.
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blank entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
