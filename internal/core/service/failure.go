package service

import (
	"math/rand"

	"github.com/ticketapp/ticket-system/internal/core/ports"
)

// randomFailures fails with a fixed probability per call, modelling a flaky
// backend.
type randomFailures struct {
	probability float64
}

func (r randomFailures) ShouldFail() bool {
	return r.probability > 0 && rand.Float64() < r.probability
}

// RandomFailures returns a strategy that fails each call with the given
// probability, clamped to [0, 1].
func RandomFailures(probability float64) ports.FailureStrategy {
	if probability < 0 {
		probability = 0
	}
	if probability > 1 {
		probability = 1
	}
	return randomFailures{probability: probability}
}

// NoFailures returns the default strategy: never fail.
func NoFailures() ports.FailureStrategy { return FixedFailures(false) }

// fixedFailures always returns the same decision, so tests can force both
// outcomes deterministically.
type fixedFailures bool

func (f fixedFailures) ShouldFail() bool { return bool(f) }

// FixedFailures returns a strategy whose decision never varies.
func FixedFailures(fail bool) ports.FailureStrategy { return fixedFailures(fail) }
