package cachedfn

import "go.uber.org/zap"

var nopLogger = zap.NewNop()

// Option configures an adapter at construction time.
type Option func(*config)

type config struct {
	logger *zap.Logger
}

// WithLogger makes the adapter emit debug events (hits, misses, resets) to logger.
// A nil logger disables logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = nopLogger
	}
	return cfg
}
