package kick

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-kick/dsp/telemetry"
)

const (
	defaultSeed        = 1
	defaultRampSeconds = 0.02
	maxRampSeconds     = 1.0
)

type config struct {
	seed        int64
	scopeSize   int
	rampSeconds float64
}

func defaultConfig() config {
	return config{
		seed:        defaultSeed,
		scopeSize:   telemetry.DefaultScopeSize,
		rampSeconds: defaultRampSeconds,
	}
}

// Option configures an Engine.
type Option func(*config) error

// WithSeed seeds the attack noise source. Equal seeds render identical
// output for identical input.
func WithSeed(seed int64) Option {
	return func(c *config) error {
		c.seed = seed
		return nil
	}
}

// WithScopeSize sets the scope ring capacity, a power of two.
func WithScopeSize(n int) Option {
	return func(c *config) error {
		if n < 2 || n&(n-1) != 0 {
			return fmt.Errorf("kick: scope size must be a power of two >= 2: %d", n)
		}

		c.scopeSize = n

		return nil
	}
}

// WithRampTime sets the parameter smoothing ramp in seconds.
func WithRampTime(seconds float64) Option {
	return func(c *config) error {
		if seconds < 0 || seconds > maxRampSeconds || math.IsNaN(seconds) {
			return fmt.Errorf("kick: ramp time must be in [0, %g]: %f", maxRampSeconds, seconds)
		}

		c.rampSeconds = seconds

		return nil
	}
}
