package testutil

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// NewTestRNG returns a seeded generator so cavern generation tests are
// reproducible.
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a discard logger for engine and search tests.
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}
