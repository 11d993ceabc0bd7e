package client

import (
	"maps"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-virtual-cards/internal/config"
	"github.com/MKhiriev/go-virtual-cards/internal/logger"
)

type options struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
}

// Option customises a Client.
type Option func(*options)

// WithConfig replaces the built-in defaults. The config is validated only
// by NewFromConfig and NewFromEnv; New uses its crypto, pagination and
// log settings as they are.
func WithConfig(cfg *Config) Option {
	return func(o *options) {
		if cfg == nil {
			return
		}
		c := *cfg
		c.Crypto.Algorithms = maps.Clone(cfg.Crypto.Algorithms)
		o.cfg = &c
	}
}

// WithLogger routes SDK logs to l. Without it the SDK logs JSON to stderr
// at the configured level.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.logger = &logger.Logger{Logger: l}
	}
}

// WithoutLogging discards every SDK log entry.
func WithoutLogging() Option {
	return func(o *options) {
		o.logger = logger.Nop()
	}
}

// WithPageLimit sets the page size used when a list call passes none.
func WithPageLimit(limit int) Option {
	return func(o *options) {
		o.cfg.Pagination.DefaultLimit = limit
	}
}

// WithKeyBlockSize sets the wrapped-key block size of algorithm. Envelopes
// of an algorithm with no known block size fail to unseal.
func WithKeyBlockSize(algorithm string, size int) Option {
	return func(o *options) {
		if o.cfg.Crypto.Algorithms == nil {
			o.cfg.Crypto.Algorithms = map[string]int{}
		}
		o.cfg.Crypto.Algorithms[algorithm] = size
	}
}

func collect(base *config.ClientConfig, opts []Option) *options {
	o := &options{cfg: base}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewLogger("sdk", o.cfg.Log.Level)
	}
	return o
}
