package sfnt

import "golang.org/x/image/font"

// Option configures a Backend.
type Option func(*config)

// config holds configuration for Backend.
type config struct {
	defaultSize float64
	hinting     font.Hinting
	fallback    bool
}

// defaultConfig returns the default backend configuration.
func defaultConfig() config {
	return config{
		defaultSize: DefaultPixelSize,
		hinting:     font.HintingFull,
		fallback:    true,
	}
}

// DefaultPixelSize is the size used when a descriptor leaves PixelSize at 0.
const DefaultPixelSize = 12

// WithDefaultSize sets the size used for descriptors without a pixel size.
// Values <= 0 are ignored.
func WithDefaultSize(px float64) Option {
	return func(c *config) {
		if px > 0 {
			c.defaultSize = px
		}
	}
}

// WithHinting sets the hinting mode used for metrics and rendering.
func WithHinting(h font.Hinting) Option {
	return func(c *config) {
		c.hinting = h
	}
}

// WithoutFallback makes ResolveFamily fail for unknown family names instead
// of substituting the default family.
func WithoutFallback() Option {
	return func(c *config) {
		c.fallback = false
	}
}
