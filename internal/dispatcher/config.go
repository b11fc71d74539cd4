package dispatcher

// Config holds dispatcher configuration options. The host→worker
// command queue has no size limit of its own (Query/Feed/Done/Update
// never block the caller), so there is no command buffer setting here.
type Config struct {
	// ChunkSize is the number of candidate lines scored per
	// process() step before the worker drains and re-checks its
	// command queue. Smaller values supersede faster; larger values
	// reduce per-chunk overhead.
	ChunkSize int

	// ResultBufferSize is the buffer depth of the worker→host result
	// channel.
	ResultBufferSize int

	// EnableMetrics enables session timing and supersession counters.
	EnableMetrics bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ChunkSize:        10000,
		ResultBufferSize: 64,
		EnableMetrics:    false,
	}
}

// WithChunkSize returns a copy of the config with the process() chunk
// size set.
func (c Config) WithChunkSize(n int) Config {
	c.ChunkSize = n
	return c
}

// WithResultBufferSize returns a copy of the config with the result
// channel buffer depth set.
func (c Config) WithResultBufferSize(n int) Config {
	c.ResultBufferSize = n
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}
