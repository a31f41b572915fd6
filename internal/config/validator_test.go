package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
	for _, key := range RequiredEnvVars[1:] {
		t.Setenv(key, "value")
	}
}

func TestValidateEnv(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		clearEnvVars(t)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
	})

	t.Run("version mismatch", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, "0.9")

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
	})

	t.Run("missing required", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)

		err := ValidateEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing required environment variables")
		assert.Contains(t, err.Error(), EnvAPIKey)
	})

	t.Run("complete", func(t *testing.T) {
		clearEnvVars(t)
		setRequiredEnv(t)

		assert.NoError(t, ValidateEnv())
	})
}

func TestValidateEnvWithWarnings(t *testing.T) {
	clearEnvVars(t)
	setRequiredEnv(t)
	t.Setenv(EnvDBPassword, ExampleDBPassword)
	t.Setenv(EnvAPIKey, ExampleAPIKey)

	warnings, err := ValidateEnvWithWarnings()

	require.NoError(t, err)
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
	assert.Contains(t, warnings[2], "CARD_API_URL")
}
