package core

import "math/rand"

// defaultContextMinSize and defaultMaxSize are the constants from spec.md
// §3: context_min_size starts at 5 (raised to embryo size if larger, never
// decreased afterward); max_size caps the network at 128 artifacts.
const (
	defaultContextMinSize = 5
	defaultMaxSize         = 128
)

// NetworkOption customizes a Network at construction time. Options are
// functional and resolved once, in NewNetwork, before the embryo clique is
// built — mirroring the lvlath builder package's BuilderOption convention.
type NetworkOption func(*networkConfig)

type networkConfig struct {
	contextMinSize int
	maxSize        int
	rng            *rand.Rand
}

func newNetworkConfig(opts ...NetworkOption) *networkConfig {
	cfg := &networkConfig{
		contextMinSize: defaultContextMinSize,
		maxSize:        defaultMaxSize,
		rng:            rand.New(rand.NewSource(1)),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithContextMinSize overrides the initial context_min_size floor (before
// it is raised to the embryo size, per spec.md §4.1). Values below the
// default are honored; the embryo-size raise still applies afterward.
func WithContextMinSize(n int) NetworkOption {
	return func(cfg *networkConfig) {
		cfg.contextMinSize = n
	}
}

// WithMaxSize overrides the network's maximum artifact count.
func WithMaxSize(n int) NetworkOption {
	return func(cfg *networkConfig) {
		cfg.maxSize = n
	}
}

// WithRand injects an explicit RNG source, used for every stochastic
// decision in Orient and Grow (the context-size exponent, the Bernoulli
// edge trials, and the CRP fallback draw). Prefer WithSeed in tests.
// Panics on nil to surface programmer error early.
func WithRand(r *rand.Rand) NetworkOption {
	if r == nil {
		panic("core: WithRand called with nil *rand.Rand")
	}
	return func(cfg *networkConfig) {
		cfg.rng = r
	}
}

// WithSeed seeds a fresh *rand.Rand deterministically — the standard way
// to make Orient/Grow outcomes reproducible in tests.
func WithSeed(seed int64) NetworkOption {
	return func(cfg *networkConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
