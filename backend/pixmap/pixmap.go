// Package pixmap provides an in-memory RGBA drawable.
package pixmap

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"sync"

	"github.com/gogpu/xfont/backend"
)

// Pixmap is a rectangular RGBA pixel buffer usable as a backend.Drawable.
// It is a read-only image.Image; writes go through the draw.Image returned
// by LockCanvas.
//
// Drawing access is exclusive: LockCanvas fails with
// backend.ErrDrawableUnavailable while another lock is held or after the
// pixmap has been freed. Reads through the image.Image methods are not
// synchronised with drawing.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, premultiplied

	lock  sync.Mutex
	mu    sync.Mutex // guards freed and locks
	freed bool
	locks int
}

// New creates a new pixmap with the given dimensions.
func New(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Locks returns how many times the canvas has been acquired.
func (p *Pixmap) Locks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.locks
}

// LockCanvas implements backend.Drawable. The returned image shares the
// pixmap's pixels and is only valid until UnlockCanvas.
func (p *Pixmap) LockCanvas(*backend.GC) (draw.Image, error) {
	p.mu.Lock()
	freed := p.freed
	p.mu.Unlock()
	if freed {
		return nil, fmt.Errorf("pixmap: freed: %w", backend.ErrDrawableUnavailable)
	}
	if !p.lock.TryLock() {
		return nil, fmt.Errorf("pixmap: already locked: %w", backend.ErrDrawableUnavailable)
	}

	p.mu.Lock()
	p.locks++
	p.mu.Unlock()

	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}, nil
}

// UnlockCanvas implements backend.Drawable.
func (p *Pixmap) UnlockCanvas() {
	p.lock.Unlock()
}

// Free marks the pixmap as destroyed. Later LockCanvas calls fail.
func (p *Pixmap) Free() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.freed = true
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c color.Color) {
	r, g, b, a := c.RGBA()
	px := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	for i := 0; i < len(p.data); i += 4 {
		copy(p.data[i:i+4], px[:])
	}
}

// RGBAAt returns the premultiplied color of a single pixel.
func (p *Pixmap) RGBAAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}

// ToImage copies the pixmap into a new image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}
