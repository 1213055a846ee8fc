package xfont

import "github.com/gogpu/xfont/atom"

// DefaultPixelScale converts XLFD pixel sizes to the size handed to the
// backend. It was calibrated against a rasterizer whose native unit differs
// from X pixels; other backends may need WithPixelScale.
const DefaultPixelScale = 2.5

// BuildOption configures Build.
//
// Example:
//
//	atoms := atom.NewTable()
//	f, err := xfont.Build(b, spec,
//	    xfont.WithAtoms(atoms),
//	    xfont.WithDeclaredName(name),
//	)
type BuildOption func(*buildOptions)

// buildOptions holds optional configuration for Build.
type buildOptions struct {
	atoms        atom.Manager
	declaredName string
	pixelScale   float64
	fullRange    bool
	detectRTL    bool
}

// defaultBuildOptions returns the default build options.
func defaultBuildOptions() buildOptions {
	return buildOptions{
		atoms:      nil, // a fresh table is created if a property needs one
		pixelScale: DefaultPixelScale,
	}
}

// WithAtoms sets the atom manager used to intern font property names and
// values. It should be the table of the session that owns the font.
func WithAtoms(m atom.Manager) BuildOption {
	return func(o *buildOptions) {
		o.atoms = m
	}
}

// WithDeclaredName sets the name the client opened the font with. A non-empty
// name adds a FONT property whose value is the interned name.
func WithDeclaredName(name string) BuildOption {
	return func(o *buildOptions) {
		o.declaredName = name
	}
}

// WithPixelScale sets the factor applied to the XLFD pixel size before it is
// handed to the backend. Values <= 0 are ignored.
func WithPixelScale(scale float64) BuildOption {
	return func(o *buildOptions) {
		if scale > 0 {
			o.pixelScale = scale
		}
	}
}

// WithFullRange makes the character table cover the whole advertised range
// [minCharOrByte2, maxCharOrByte2] instead of stopping at 255. This only
// changes ISO10646 fonts, and costs one backend query per code point.
func WithFullRange(full bool) BuildOption {
	return func(o *buildOptions) {
		o.fullRange = full
	}
}

// WithRTLDetection makes Build report a right-to-left draw direction for
// fonts whose charset maps mostly to right-to-left characters. Without it
// every font draws left to right, as X servers report.
func WithRTLDetection(detect bool) BuildOption {
	return func(o *buildOptions) {
		o.detectRTL = detect
	}
}
