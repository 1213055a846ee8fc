// Package backendtest provides a deterministic, recording backend and
// drawable for tests.
package backendtest

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"slices"
	"sync"
	"unicode"

	"github.com/gogpu/xfont/backend"
)

// Operation names recorded in a Log.
const (
	OpResolve  = "resolve"
	OpNewFace  = "newface"
	OpLock     = "lock"
	OpUnlock   = "unlock"
	OpFillRect = "fillrect"
	OpDrawText = "drawtext"
)

// Call is one recorded operation.
type Call struct {
	Op    string
	Text  string
	Rect  image.Rectangle
	Color color.Color
	X, Y  int
}

// Log records calls from a Backend and its drawables in order.
type Log struct {
	mu    sync.Mutex
	calls []Call
}

func (l *Log) record(c Call) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, c)
}

// Calls returns a copy of the recorded calls.
func (l *Log) Calls() []Call {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.calls)
}

// Ops returns the recorded operation names, optionally restricted to ops.
func (l *Log) Ops(only ...string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for _, c := range l.calls {
		if len(only) == 0 || slices.Contains(only, c.Op) {
			out = append(out, c.Op)
		}
	}
	return out
}

// Reset clears the log.
func (l *Log) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = nil
}

// Family is a fake family handle.
type Family string

// Name implements backend.Family.
func (f Family) Name() string { return string(f) }

// Backend is a fake backend.Backend with fixed, rune-derived metrics:
//
//   - advance: Width(r), by default 8 for ASCII digits and letters, 4 for
//     space, 6 for everything else; doubled when PixelSize > 0 and bold adds 1
//   - ink: [1, width-1] horizontally, [-7, 0] for upper case and digits,
//     [-5, 2] otherwise; spaces have no ink
//   - font metrics: Ascent -8, Descent 2, Top -10, Bottom 3
type Backend struct {
	Log *Log

	// Known lists the family names that resolve besides the generic ones.
	Known []string
	// Strict makes unknown families fail instead of resolving to default.
	Strict bool
	// Width overrides the advance of a rune.
	Width func(r rune) float64
	// Metrics overrides the font metrics.
	Metrics *backend.FontMetrics
	// FaceErr makes NewFace fail.
	FaceErr error
	// PanicOnDraw makes DrawText panic after recording the call.
	PanicOnDraw bool
	// ShortWidths makes Widths drop its last entry.
	ShortWidths bool
}

// New returns a fake backend with a fresh log.
func New() *Backend {
	return &Backend{Log: &Log{}}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return "fake" }

// ResolveFamily implements backend.Backend.
func (b *Backend) ResolveFamily(name string) (backend.Family, error) {
	b.Log.record(Call{Op: OpResolve, Text: name})
	switch name {
	case backend.FamilyDefault, backend.FamilyMonospace, backend.FamilySerif, backend.FamilySansSerif:
		return Family(name), nil
	}
	if slices.Contains(b.Known, name) {
		return Family(name), nil
	}
	if b.Strict {
		return nil, fmt.Errorf("%w: %q", backend.ErrUnknownFamily, name)
	}
	return Family(backend.FamilyDefault), nil
}

// NewFace implements backend.Backend.
func (b *Backend) NewFace(d backend.Descriptor) (backend.Face, error) {
	b.Log.record(Call{Op: OpNewFace, Text: d.Family.Name()})
	if b.FaceErr != nil {
		return nil, b.FaceErr
	}
	return &Face{desc: d, b: b}, nil
}

// FillRect implements backend.Backend.
func (b *Backend) FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	b.Log.record(Call{Op: OpFillRect, Rect: r, Color: c})
	backend.Fill(dst, r, c)
}

// DrawText implements backend.Backend. It paints one opaque pixel per
// non-space rune at the pen position on the baseline.
func (b *Backend) DrawText(dst draw.Image, f backend.Face, text string, x, y int, c color.Color) {
	b.Log.record(Call{Op: OpDrawText, Text: text, X: x, Y: y, Color: c})
	if b.PanicOnDraw {
		panic("backendtest: draw failed")
	}
	pen := float64(x)
	widths := f.Widths(text)
	for i, r := range []rune(text) {
		if !unicode.IsSpace(r) {
			dst.Set(int(pen), y-1, c)
		}
		pen += widths[i]
	}
}

// Face is the fake backend.Face.
type Face struct {
	desc backend.Descriptor
	b    *Backend
}

// Descriptor implements backend.Face.
func (f *Face) Descriptor() backend.Descriptor { return f.desc }

// Metrics implements backend.Face.
func (f *Face) Metrics() backend.FontMetrics {
	if f.b.Metrics != nil {
		return *f.b.Metrics
	}
	return backend.FontMetrics{Ascent: -8, Descent: 2, Top: -10, Bottom: 3}
}

// Advance returns the advance of r.
func (f *Face) Advance(r rune) float64 {
	var w float64
	switch {
	case f.b.Width != nil:
		w = f.b.Width(r)
	case r == ' ':
		w = 4
	case r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r)):
		w = 8
	default:
		w = 6
	}
	if f.desc.PixelSize > 0 {
		w *= 2
	}
	if f.desc.Bold {
		w++
	}
	return w
}

// Widths implements backend.Face.
func (f *Face) Widths(text string) []float64 {
	var out []float64
	for _, r := range text {
		out = append(out, f.Advance(r))
	}
	if f.b.ShortWidths && len(out) > 0 {
		out = out[:len(out)-1]
	}
	return out
}

// Measure implements backend.Face.
func (f *Face) Measure(text string) float64 {
	var total float64
	for _, r := range text {
		total += f.Advance(r)
	}
	return total
}

// TextBounds implements backend.Face.
func (f *Face) TextBounds(text string) image.Rectangle {
	var out image.Rectangle
	pen := 0
	for _, r := range text {
		w := int(f.Advance(r))
		if !unicode.IsSpace(r) {
			ink := image.Rect(pen+1, -5, pen+w-1, 2)
			if unicode.IsUpper(r) || unicode.IsDigit(r) {
				ink = image.Rect(pen+1, -7, pen+w-1, 0)
			}
			out = out.Union(ink)
		}
		pen += w
	}
	return out
}

// Drawable is a fake backend.Drawable over an RGBA image.
type Drawable struct {
	Log *Log
	Img *image.RGBA
	// Err makes LockCanvas fail with this error.
	Err error

	mu     sync.Mutex
	locked bool
}

// NewDrawable returns a drawable of the given size recording into log.
func NewDrawable(log *Log, w, h int) *Drawable {
	return &Drawable{Log: log, Img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// LockCanvas implements backend.Drawable.
func (d *Drawable) LockCanvas(*backend.GC) (draw.Image, error) {
	if d.Err != nil {
		return nil, d.Err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.locked {
		return nil, fmt.Errorf("backendtest: already locked: %w", backend.ErrDrawableUnavailable)
	}
	d.locked = true
	d.Log.record(Call{Op: OpLock})
	return d.Img, nil
}

// UnlockCanvas implements backend.Drawable.
func (d *Drawable) UnlockCanvas() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.locked = false
	d.Log.record(Call{Op: OpUnlock})
}

// Locked reports whether the drawable is currently locked.
func (d *Drawable) Locked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.locked
}
