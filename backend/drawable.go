package backend

import (
	"image/color"
	"image/draw"
)

// GC is the subset of an X graphics context the text path reads.
// Colors are pixel values of a 24-bit TrueColor visual (0xRRGGBB).
type GC struct {
	Foreground uint32
	Background uint32
}

// NewGC returns a GC with the X11 defaults: foreground 0, background 1.
func NewGC() *GC {
	return &GC{Foreground: 0, Background: 1}
}

// PixelColor converts a TrueColor pixel value to an opaque color.
func PixelColor(p uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(p >> 16),
		G: uint8(p >> 8),
		B: uint8(p),
		A: 0xff,
	}
}

// Drawable is a surface text can be drawn onto. Access is exclusive: a
// successful LockCanvas must be paired with exactly one UnlockCanvas.
type Drawable interface {
	// LockCanvas acquires the surface for drawing with gc. It returns an
	// error wrapping ErrDrawableUnavailable when the surface cannot be
	// acquired.
	LockCanvas(gc *GC) (draw.Image, error)

	// UnlockCanvas releases the surface acquired by LockCanvas.
	UnlockCanvas()
}
