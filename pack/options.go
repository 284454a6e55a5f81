package pack

import (
	"github.com/meshpack/meshpack/endian"
	"github.com/meshpack/meshpack/internal/options"
)

// packConfig holds settings applied through Option values.
type packConfig struct {
	engine endian.EndianEngine
}

// Option represents a functional option for configuring pack operations.
type Option = options.Option[*packConfig]

// WithLittleEndian sets little-endian byte order for the packed output.
// This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(c *packConfig) {
		c.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian sets big-endian byte order for the packed output.
func WithBigEndian() Option {
	return options.NoError(func(c *packConfig) {
		c.engine = endian.GetBigEndianEngine()
	})
}

func newPackConfig(opts ...Option) (*packConfig, error) {
	cfg := &packConfig{engine: endian.GetLittleEndianEngine()}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
