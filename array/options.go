package array

import "github.com/compac/compac/internal/options"

// config collects the optional construction parameters shared by every
// array variant's (extents..., rate, ...) constructor.
type config struct {
	cacheBytes int
	minExp     int16
}

func defaultConfig(nx uint32, scalarSize int) config {
	return config{
		cacheBytes: 8 * int(nx) * scalarSize,
		minExp:     0,
	}
}

// Option configures an array at construction time.
type Option = options.Option[*config]

// WithCacheBytes overrides the default cache budget (8*nx*sizeof(scalar))
// used to size the block cache's line count.
func WithCacheBytes(n int) Option {
	return options.NoError[*config](func(c *config) {
		c.cacheBytes = n
	})
}

// WithScaleExponent overrides the fixed-point scale exponent the codec
// quantizes values around. Choosing an exponent close to log2 of the data's
// magnitude minimizes quantization error for a given rate; the default of
// 0 suits values of order unity.
func WithScaleExponent(exp int16) Option {
	return options.NoError[*config](func(c *config) {
		c.minExp = exp
	})
}
