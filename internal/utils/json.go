package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidJSON is wrapped by LoadJSON when the file exists but does not decode.
var ErrInvalidJSON = errors.New("invalid JSON")

// LoadJSON reads a JSON file and unmarshals it into target.
func LoadJSON(path string, target interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w in %s: %w", ErrInvalidJSON, path, err)
	}
	return nil
}
