package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the variables that must be set in deployed environments
var RequiredEnvVars = []string{
	EnvSchemaVersion,
	EnvDBUser,
	EnvDBPassword,
	EnvDBHost,
	EnvDBPort,
	EnvDBName,
	EnvAPIKey,
}

// ValidateEnv checks the schema version and that every required variable is set.
func ValidateEnv() error {
	schemaVersion := os.Getenv(EnvSchemaVersion)
	if schemaVersion == "" {
		return fmt.Errorf(ErrMsgSchemaNotSetFmt, ExpectedEnvSchemaVersion)
	}
	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf(ErrMsgSchemaMismatchFmt, ExpectedEnvSchemaVersion, schemaVersion)
	}

	var missing []string
	for _, envVar := range RequiredEnvVars {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf(ErrMsgMissingEnvFmt, strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and also reports example values
// copied verbatim from .env.example.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv(EnvDBPassword) == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD is still the example value, set a real password")
	}
	if os.Getenv(EnvAPIKey) == ExampleAPIKey {
		warnings = append(warnings, "API_KEY is still the example value, generate one with: openssl rand -hex 32")
	}
	if os.Getenv(EnvCardAPIURL) == "" {
		warnings = append(warnings, "CARD_API_URL is not set, the card pool is seeded from CARD_SEED_FILE only")
	}

	return warnings, nil
}
