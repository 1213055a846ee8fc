package backend

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrUnknownFamily is returned by ResolveFamily when the name matches no
	// family and the backend has no fallback.
	ErrUnknownFamily = errors.New("backend: unknown font family")

	// ErrDrawableUnavailable is returned when a drawing surface cannot be
	// acquired. The failure is per call; the caller may retry.
	ErrDrawableUnavailable = errors.New("backend: drawable unavailable")
)

// Generic family names every backend must resolve.
const (
	FamilyDefault   = "default"
	FamilyMonospace = "monospace"
	FamilySerif     = "serif"
	FamilySansSerif = "sans-serif"
)

// Family is a resolved font family handle.
type Family interface {
	// Name returns the family name as the backend knows it.
	Name() string
}

// Descriptor selects a concrete face of a family.
type Descriptor struct {
	Family Family
	Bold   bool
	Italic bool

	// PixelSize is the size handed to the rasterizer, in backend units.
	// Zero selects the backend's default size.
	PixelSize float64
}

// FontMetrics holds font-wide vertical metrics in whole pixels.
// Ascent and Top are negative (above the baseline).
type FontMetrics struct {
	// Ascent and Descent are the recommended line extents.
	Ascent, Descent int
	// Top and Bottom bound every glyph in the font.
	Top, Bottom int
}

// Face measures text for one Descriptor. A Face must be safe for concurrent
// use, since a loaded font is shared by every request that references it.
type Face interface {
	// Descriptor returns the descriptor the face was created from, with
	// PixelSize resolved to the effective size.
	Descriptor() Descriptor

	// Metrics returns the font-wide vertical metrics.
	Metrics() FontMetrics

	// Widths returns the advance width of each rune in text, in order.
	Widths(text string) []float64

	// Measure returns the advance width of the whole string.
	Measure(text string) float64

	// TextBounds returns the ink bounds of text drawn with its origin at
	// (0, 0). Text with no ink yields the zero rectangle.
	TextBounds(text string) image.Rectangle
}

// Backend resolves families, creates faces and paints into drawing surfaces.
type Backend interface {
	// Name returns the backend identifier (e.g., "sfnt").
	Name() string

	// ResolveFamily returns the family for name. The generic names
	// FamilyDefault, FamilyMonospace, FamilySerif and FamilySansSerif always
	// resolve.
	ResolveFamily(name string) (Family, error)

	// NewFace creates a face for d.
	NewFace(d Descriptor) (Face, error)

	// FillRect fills r with c.
	FillRect(dst draw.Image, r image.Rectangle, c color.Color)

	// DrawText paints text in c with its baseline origin at (x, y).
	DrawText(dst draw.Image, f Face, text string, x, y int, c color.Color)
}

// Fill fills r, clipped to dst, with c. Backends use it to implement FillRect.
func Fill(dst draw.Image, r image.Rectangle, c color.Color) {
	r = r.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Src)
}
