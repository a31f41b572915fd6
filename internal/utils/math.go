package utils

import "math/rand/v2"

// RandomFloat returns a random float64 in [0.0, 1.0). Safe for concurrent use.
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}
