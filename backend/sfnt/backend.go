package sfnt

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/xfont/backend"
)

func init() {
	backend.Register(backend.NameSFNT, func() (backend.Backend, error) {
		return New()
	})
}

// Built-in family names.
const (
	FamilyGo          = "Go"
	FamilyGoMono      = "Go Mono"
	FamilyGoMedium    = "Go Medium"
	FamilyGoSmallcaps = "Go Smallcaps"
)

// Family is a set of up to four styled fonts sharing one family name.
type Family struct {
	name  string
	fonts [4]*opentype.Font // indexed by styleIndex
}

// Name implements backend.Family.
func (f *Family) Name() string {
	return f.name
}

// font returns the face closest to the requested style: the exact style if
// present, then the same slant, then any face.
func (f *Family) font(bold, italic bool) *opentype.Font {
	order := []int{
		styleIndex(bold, italic),
		styleIndex(false, italic),
		styleIndex(bold, false),
		styleIndex(false, false),
	}
	for _, i := range order {
		if f.fonts[i] != nil {
			return f.fonts[i]
		}
	}
	for _, ft := range f.fonts {
		if ft != nil {
			return ft
		}
	}
	return nil
}

func styleIndex(bold, italic bool) int {
	i := 0
	if bold {
		i |= 1
	}
	if italic {
		i |= 2
	}
	return i
}

// Backend is the golang.org/x/image backend. It is safe for concurrent use.
type Backend struct {
	mu       sync.RWMutex
	families map[string]*Family // keyed by lower-case name
	generic  map[string]string  // generic name -> family key
	config   config
}

// New creates a backend with the Go fonts registered.
func New(opts ...Option) (*Backend, error) {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	b := &Backend{
		families: make(map[string]*Family),
		config:   config,
	}

	builtin := []struct {
		family       string
		bold, italic bool
		data         []byte
	}{
		{FamilyGo, false, false, goregular.TTF},
		{FamilyGo, true, false, gobold.TTF},
		{FamilyGo, false, true, goitalic.TTF},
		{FamilyGo, true, true, gobolditalic.TTF},
		{FamilyGoMono, false, false, gomono.TTF},
		{FamilyGoMono, true, false, gomonobold.TTF},
		{FamilyGoMono, false, true, gomonoitalic.TTF},
		{FamilyGoMono, true, true, gomonobolditalic.TTF},
		{FamilyGoMedium, false, false, gomedium.TTF},
		{FamilyGoMedium, false, true, gomediumitalic.TTF},
		{FamilyGoSmallcaps, false, false, gosmallcaps.TTF},
		{FamilyGoSmallcaps, false, true, gosmallcapsitalic.TTF},
	}
	for _, f := range builtin {
		parsed, err := opentype.Parse(f.data)
		if err != nil {
			return nil, fmt.Errorf("sfnt: parse built-in %s: %w", f.family, err)
		}
		b.add(f.family, f.bold, f.italic, parsed)
	}

	// The Go fonts have no serif design; serif maps to the regular family
	// until SetGeneric points it elsewhere.
	b.generic = map[string]string{
		backend.FamilyDefault:   key(FamilyGo),
		backend.FamilySansSerif: key(FamilyGo),
		backend.FamilySerif:     key(FamilyGo),
		backend.FamilyMonospace: key(FamilyGoMono),
	}
	return b, nil
}

// Name implements backend.Backend.
func (b *Backend) Name() string {
	return backend.NameSFNT
}

// Register adds a TrueType or OpenType font to the backend and returns its
// family name. The family and style are read from the font itself.
func (b *Backend) Register(data []byte) (string, error) {
	face, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("sfnt: describe font: %w", err)
	}
	desc := face.Describe()
	if desc.Family == "" {
		return "", fmt.Errorf("sfnt: font has no family name")
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return "", fmt.Errorf("sfnt: parse font: %w", err)
	}

	bold := desc.Aspect.Weight >= gotext.WeightBold
	italic := desc.Aspect.Style == gotext.StyleItalic
	b.add(desc.Family, bold, italic, parsed)
	return desc.Family, nil
}

// SetGeneric maps a generic family name (backend.FamilySerif, ...) to a
// registered family.
func (b *Backend) SetGeneric(generic, family string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.families[key(family)]; !ok {
		return fmt.Errorf("%w: %q", backend.ErrUnknownFamily, family)
	}
	b.generic[generic] = key(family)
	return nil
}

// Families returns the registered family names.
func (b *Backend) Families() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	names := make([]string, 0, len(b.families))
	for _, f := range b.families {
		names = append(names, f.name)
	}
	return names
}

// ResolveFamily implements backend.Backend. Unknown names resolve to the
// default family unless the backend was created WithoutFallback.
func (b *Backend) ResolveFamily(name string) (backend.Family, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	k := key(name)
	if g, ok := b.generic[name]; ok {
		k = g
	}
	if f, ok := b.families[k]; ok {
		return f, nil
	}
	if b.config.fallback {
		if f, ok := b.families[b.generic[backend.FamilyDefault]]; ok {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", backend.ErrUnknownFamily, name)
}

// NewFace implements backend.Backend.
func (b *Backend) NewFace(d backend.Descriptor) (backend.Face, error) {
	if d.Family == nil {
		return nil, fmt.Errorf("%w: no family", backend.ErrUnknownFamily)
	}
	fam, ok := d.Family.(*Family)
	if !ok {
		f, err := b.ResolveFamily(d.Family.Name())
		if err != nil {
			return nil, err
		}
		fam = f.(*Family)
	}

	ft := fam.font(d.Bold, d.Italic)
	if ft == nil {
		return nil, fmt.Errorf("%w: %q has no fonts", backend.ErrUnknownFamily, fam.name)
	}

	if d.PixelSize <= 0 {
		d.PixelSize = b.config.defaultSize
	}
	d.Family = fam

	otFace, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    d.PixelSize,
		DPI:     72,
		Hinting: b.config.hinting,
	})
	if err != nil {
		return nil, fmt.Errorf("sfnt: new face: %w", err)
	}

	return &face{
		desc:    d,
		font:    ft,
		face:    otFace,
		hinting: b.config.hinting,
	}, nil
}

// FillRect implements backend.Backend.
func (b *Backend) FillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	backend.Fill(dst, r, c)
}

// DrawText implements backend.Backend. Faces from other backends are ignored.
func (b *Backend) DrawText(dst draw.Image, f backend.Face, text string, x, y int, c color.Color) {
	sf, ok := f.(*face)
	if !ok || text == "" {
		return
	}

	sf.mu.Lock()
	defer sf.mu.Unlock()

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: sf.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func (b *Backend) add(family string, bold, italic bool, ft *opentype.Font) {
	b.mu.Lock()
	defer b.mu.Unlock()

	k := key(family)
	fam, ok := b.families[k]
	if !ok {
		fam = &Family{name: family}
		b.families[k] = fam
	}
	fam.fonts[styleIndex(bold, italic)] = ft
}

func key(name string) string {
	return strings.ToLower(name)
}
