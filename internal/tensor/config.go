package tensor

import "github.com/born-ml/tensors/internal/parallel"

// DefaultStaticAllocationLimit is the element count up to which buffers use inline storage
// by default.
const DefaultStaticAllocationLimit = inlineCapacity

// Config controls freeze, broadcast and allocation policy.
//
// A Config is built once and then shared read-only by every tensor created with it.
// Its fields are unexported so that it cannot change under the tensors referencing it.
type Config struct {
	freezeable            bool
	broadcastable         bool
	staticAllocationLimit int
	seed                  int64
	seeded                bool
	parallel              parallel.Config
}

// ConfigOption customizes a Config under construction.
type ConfigOption func(*Config)

// WithFreezeable sets whether tensors may be frozen.
func WithFreezeable(freezeable bool) ConfigOption {
	return func(c *Config) { c.freezeable = freezeable }
}

// WithBroadcastable sets whether tensors take part in broadcasting.
func WithBroadcastable(broadcastable bool) ConfigOption {
	return func(c *Config) { c.broadcastable = broadcastable }
}

// WithStaticAllocationLimit sets the element count up to which buffers may use inline
// storage. It is an allocation hint and has no observable effect on results.
func WithStaticAllocationLimit(limit int) ConfigOption {
	return func(c *Config) { c.staticAllocationLimit = max(limit, 0) }
}

// WithSeed makes the random initializers deterministic.
func WithSeed(seed int64) ConfigOption {
	return func(c *Config) {
		c.seed = seed
		c.seeded = true
	}
}

// WithWorkers bounds the goroutines used by element-wise loops over large buffers.
// One or less keeps every loop on the calling goroutine. Results do not depend on it.
func WithWorkers(workers int) ConfigOption {
	return func(c *Config) { c.parallel.Workers = workers }
}

// NewConfig returns a Config starting from the defaults (freezeable, broadcastable) with
// the options applied in order.
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		freezeable:            true,
		broadcastable:         true,
		staticAllocationLimit: DefaultStaticAllocationLimit,
		parallel:              parallel.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultConfig = NewConfig()

// DefaultConfig returns the shared default configuration.
func DefaultConfig() *Config {
	return defaultConfig
}

// Freezeable reports whether tensors may be frozen.
func (c *Config) Freezeable() bool { return c.freezeable }

// Broadcastable reports whether tensors take part in broadcasting.
func (c *Config) Broadcastable() bool { return c.broadcastable }

// StaticAllocationLimit returns the inline storage threshold.
func (c *Config) StaticAllocationLimit() int { return c.staticAllocationLimit }

// Seed returns the random seed and whether one was set.
func (c *Config) Seed() (int64, bool) { return c.seed, c.seeded }

// Workers returns the goroutine bound for element-wise loops.
func (c *Config) Workers() int { return c.parallel.Workers }

func orDefault(c *Config) *Config {
	if c == nil {
		return defaultConfig
	}
	return c
}
