package xfont

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/xfont/backend"
)

// TextRenderer measures and draws text with fonts built by the same backend.
type TextRenderer struct {
	backend backend.Backend
}

// NewTextRenderer creates a renderer drawing through b.
func NewTextRenderer(b backend.Backend) *TextRenderer {
	return &TextRenderer{backend: b}
}

// Measure returns the advance width of text.
func (r *TextRenderer) Measure(f *Font, text string) float64 {
	return f.face.Measure(text)
}

// Bounds returns the box text occupies when drawn with its baseline origin
// at (x, y). The vertical extent is the font's maximum ascent and descent,
// not the ink of text, so consecutive rows never overlap.
func (r *TextRenderer) Bounds(f *Font, text string, x, y int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: x, Y: y - int(f.maxBounds.Ascent)},
		Max: image.Point{X: x + int(math.Ceil(r.Measure(f, text))), Y: y + int(f.maxBounds.Descent)},
	}
}

// Draw fills clear with the background of gc and paints text over it in the
// foreground, with the baseline origin at (x, y). The drawable is locked for
// the duration of the call and unlocked even if the backend panics.
//
// A drawable that cannot be locked yields an error matching
// backend.ErrDrawableUnavailable; the font stays valid and the call may be
// retried.
func (r *TextRenderer) Draw(d backend.Drawable, gc *backend.GC, f *Font, text string, x, y int, clear image.Rectangle) error {
	return r.paint(d, gc, f, text, x, y, &clear)
}

// ImageText implements ImageText8: the text's Bounds box is cleared to the
// background before the text is painted.
func (r *TextRenderer) ImageText(d backend.Drawable, gc *backend.GC, f *Font, codes []byte, x, y int) error {
	text := f.DecodeString8(codes)
	return r.Draw(d, gc, f, text, x, y, r.Bounds(f, text, x, y))
}

// PolyText implements PolyText8 for a single text item: only the glyphs are
// painted.
func (r *TextRenderer) PolyText(d backend.Drawable, gc *backend.GC, f *Font, codes []byte, x, y int) error {
	return r.paint(d, gc, f, f.DecodeString8(codes), x, y, nil)
}

func (r *TextRenderer) paint(d backend.Drawable, gc *backend.GC, f *Font, text string, x, y int, clear *image.Rectangle) error {
	if gc == nil {
		gc = backend.NewGC()
	}

	dst, err := d.LockCanvas(gc)
	if err != nil {
		if !errors.Is(err, backend.ErrDrawableUnavailable) {
			err = fmt.Errorf("%w: %w", backend.ErrDrawableUnavailable, err)
		}
		Logger().Warn("xfont: draw failed", "font", f.String(), "err", err)
		return err
	}
	defer d.UnlockCanvas()

	if clear != nil {
		r.backend.FillRect(dst, *clear, backend.PixelColor(gc.Background))
	}
	r.backend.DrawText(dst, f.face, text, x, y, backend.PixelColor(gc.Foreground))

	Logger().Debug("xfont: drew text", "x", x, "y", y, "text", text, "fg", fmt.Sprintf("%06x", gc.Foreground))
	return nil
}
