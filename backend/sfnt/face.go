package sfnt

import (
	"image"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/xfont/backend"
)

// face implements backend.Face over an opentype face. The opentype face keeps
// scratch buffers, so every call takes mu.
type face struct {
	desc    backend.Descriptor
	font    *opentype.Font
	hinting font.Hinting

	mu   sync.Mutex
	face font.Face
}

// Descriptor implements backend.Face.
func (f *face) Descriptor() backend.Descriptor {
	return f.desc
}

// Metrics implements backend.Face. Ascent and Top are floored, Descent and
// Bottom are ceiled.
func (f *face) Metrics() backend.FontMetrics {
	f.mu.Lock()
	m := f.face.Metrics()
	f.mu.Unlock()

	fm := backend.FontMetrics{
		Ascent:  -m.Ascent.Ceil(),
		Descent: m.Descent.Ceil(),
	}

	var buf xsfnt.Buffer
	bounds, err := f.font.Bounds(&buf, ppem(f.desc.PixelSize), f.hinting)
	if err != nil {
		fm.Top, fm.Bottom = fm.Ascent, fm.Descent
		return fm
	}
	fm.Top = bounds.Min.Y.Floor()
	fm.Bottom = bounds.Max.Y.Ceil()
	return fm
}

// Widths implements backend.Face. Kerning is not applied.
func (f *face) Widths(text string) []float64 {
	f.mu.Lock()
	defer f.mu.Unlock()

	widths := make([]float64, 0, len(text))
	for _, r := range text {
		adv, _ := f.face.GlyphAdvance(r)
		widths = append(widths, fixedToFloat64(adv))
	}
	return widths
}

// Measure implements backend.Face.
func (f *face) Measure(text string) float64 {
	if text == "" {
		return 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return fixedToFloat64(font.MeasureString(f.face, text))
}

// TextBounds implements backend.Face.
func (f *face) TextBounds(text string) image.Rectangle {
	if text == "" {
		return image.Rectangle{}
	}
	f.mu.Lock()
	b, _ := font.BoundString(f.face, text)
	f.mu.Unlock()

	if b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y {
		return image.Rectangle{}
	}
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// ppem converts a pixel size at 72 DPI to a 26.6 pixels-per-em value.
func ppem(size float64) fixed.Int26_6 {
	return fixed.Int26_6(size * 64)
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}
