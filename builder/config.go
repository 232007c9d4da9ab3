package builder

import "math/rand"

// BuilderOption customizes a stochastic constructor by mutating a
// builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig holds the configurable parameters shared by RandomSparse
// and RandomRegular: an optional RNG source. A nil rng means "deterministic
// default", resolved individually by each stochastic constructor.
type builderConfig struct {
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithRand sets an explicit RNG source. A nil r is a no-op.
func WithRand(r *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if r != nil {
			cfg.rng = r
		}
	}
}

// WithSeed creates a new seeded *rand.Rand and installs it, for
// reproducible stochastic construction.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
