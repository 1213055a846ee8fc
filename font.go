package xfont

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gogpu/xfont/atom"
	"github.com/gogpu/xfont/backend"
	"github.com/gogpu/xfont/xlfd"
)

// Draw directions reported in QueryFont replies.
const (
	LeftToRight uint8 = 0
	RightToLeft uint8 = 1
)

// Character range constants.
const (
	// MinChar is the first code in every character table.
	MinChar = 32
	// MaxSingleByteChar is the last code of the default table.
	MaxSingleByteChar = 255
	// MaxUCS2Char is maxCharOrByte2 for ISO10646 fonts.
	MaxUCS2Char = 65534
)

// MaxPixelSize is the largest backend size Build hands on. Rasterizers scale
// in 26.6 fixed point; this bound keeps the scale and glyph extents up to
// twice the em inside 32 bits.
const MaxPixelSize = math.MaxInt32 >> 7

// Font is a loaded font: its resolved face, the per-character metrics of its
// table, and the aggregate values a QueryFont reply carries. A Font is
// immutable after Build.
type Font struct {
	spec    xlfd.FontSpec
	name    string
	face    backend.Face
	charset charset

	minCharOrByte2 uint16
	maxCharOrByte2 uint16
	defaultChar    uint16
	isRTL          bool
	allCharsExist  bool

	fontAscent  int16
	fontDescent int16
	minBounds   CharInfo
	maxBounds   CharInfo
	chars       []CharInfo

	props PropertyTable
}

// Build resolves spec against b and measures the font's character table.
//
// Resolution picks the backend's default family for the "cursor" alias and
// its monospace family for "fixed". Other names select bold when the weight is
// "bold", italic when the slant is "i", monospace unless the spacing is "p",
// and otherwise a family by name. A malformed or non-positive pixel size
// keeps the backend's default size.
//
// Build fails with an error matching ErrFontResolution when the backend cannot
// produce a face.
func Build(b backend.Backend, spec xlfd.FontSpec, opts ...BuildOption) (*Font, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Font{
		spec:           spec,
		name:           o.declaredName,
		minCharOrByte2: MinChar,
		maxCharOrByte2: MaxSingleByteChar,
		defaultChar:    MinChar,
	}

	desc, err := f.resolve(b, o)
	if err != nil {
		return nil, err
	}
	face, err := b.NewFace(desc)
	if err != nil {
		return nil, &ResolutionError{Name: spec.Name(), Family: familyName(desc.Family), Err: err}
	}
	f.face = face

	last := MaxSingleByteChar
	if o.fullRange {
		last = int(f.maxCharOrByte2)
	}
	if err := f.measure(last, o.detectRTL); err != nil {
		return nil, err
	}

	if o.declaredName != "" {
		atoms := o.atoms
		if atoms == nil {
			atoms = atom.NewTable()
		}
		f.props.add(atoms.InternAtom("FONT"), atoms.InternAtom(o.declaredName))
	}

	Logger().Debug("xfont: font built",
		"spec", spec.String(),
		"family", familyName(face.Descriptor().Family),
		"size", face.Descriptor().PixelSize,
		"chars", len(f.chars),
		"maxChar", f.maxCharOrByte2)
	return f, nil
}

// resolve turns the spec into a backend descriptor and fixes the advertised
// character range.
func (f *Font) resolve(b backend.Backend, o buildOptions) (backend.Descriptor, error) {
	spec := f.spec
	var desc backend.Descriptor

	family := ""
	switch spec.Alias() {
	case xlfd.AliasDefault:
		family = backend.FamilyDefault
	case xlfd.AliasFixed:
		family = backend.FamilyMonospace
	default:
		desc.Bold = spec.Is(xlfd.Weight, xlfd.WeightBold)
		desc.Italic = spec.Is(xlfd.Slant, xlfd.SlantItalic)

		px, err := scaledPixelSize(spec, o.pixelScale)
		if err != nil {
			Logger().Debug("xfont: pixel size fallback", "spec", spec.Name(), "err", err)
		}
		desc.PixelSize = px

		family = familyFor(spec)

		if spec.Is(xlfd.CharsetRegistry, xlfd.RegistryISO10646) {
			f.maxCharOrByte2 = MaxUCS2Char
		}
		f.charset = charsetFor(spec.Field(xlfd.CharsetRegistry), spec.Field(xlfd.CharsetEncoding))
	}

	fam, err := b.ResolveFamily(family)
	if err != nil {
		return desc, &ResolutionError{Name: spec.Name(), Family: family, Err: err}
	}
	if spec.Alias() == xlfd.AliasNone && !isGeneric(family) && !strings.EqualFold(fam.Name(), family) {
		Logger().Debug("xfont: family fallback", "spec", spec.Name(), "requested", family, "family", fam.Name())
	}
	desc.Family = fam
	return desc, nil
}

func isGeneric(family string) bool {
	switch family {
	case backend.FamilyDefault, backend.FamilyMonospace, backend.FamilySerif, backend.FamilySansSerif:
		return true
	}
	return false
}

// scaledPixelSize returns the backend size for the spec's pixel size, or 0
// for the backend default. Non-positive sizes select the default without an
// error; malformed and out-of-range sizes report one wrapping
// xlfd.ErrNumericField.
func scaledPixelSize(spec xlfd.FontSpec, scale float64) (float64, error) {
	px, err := spec.PixelSize()
	if err != nil {
		return 0, err
	}
	if px <= 0 {
		return 0, nil
	}
	scaled := px * scale
	if scaled > MaxPixelSize {
		return 0, fmt.Errorf("%w: pixel size %v scales to %v, above %d", xlfd.ErrNumericField, px, scaled, MaxPixelSize)
	}
	return scaled, nil
}

// familyFor maps the spacing and family fields to a family name.
func familyFor(spec xlfd.FontSpec) string {
	switch {
	case !spec.Is(xlfd.Spacing, xlfd.SpacingProportional):
		return backend.FamilyMonospace
	case spec.Is(xlfd.Family, xlfd.FamilyDefault):
		return backend.FamilyDefault
	case spec.Is(xlfd.Family, xlfd.FamilySerif):
		return backend.FamilySerif
	case spec.Is(xlfd.Family, xlfd.FamilySansSerif):
		return backend.FamilySansSerif
	default:
		return spec.Field(xlfd.Family)
	}
}

// measure fills the vertical metrics and the character table for codes
// minCharOrByte2..last. The draw direction is only derived from the table
// when detectRTL is set.
func (f *Font) measure(last int, detectRTL bool) error {
	first := int(f.minCharOrByte2)
	table := make([]rune, last-first+1)
	for i := range table {
		table[i] = f.charset.rune(first + i)
	}
	f.isRTL = detectRTL && f.charset.rtl(table)

	m := f.face.Metrics()
	f.fontAscent = toInt16(-m.Ascent)
	f.fontDescent = toInt16(m.Descent)
	f.maxBounds.Ascent = toInt16(-m.Top)
	f.maxBounds.Descent = toInt16(m.Bottom)

	widths := f.face.Widths(string(table))
	if len(widths) != len(table) {
		return &ResolutionError{
			Name:   f.spec.Name(),
			Family: familyName(f.face.Descriptor().Family),
			Err:    fmt.Errorf("backend returned %d widths for %d characters", len(widths), len(table)),
		}
	}

	minWidth, maxWidth := math.MaxInt, 0
	f.chars = make([]CharInfo, len(table))
	for i, w := range widths {
		if w < float64(minWidth) {
			minWidth = truncWidth(w)
		}
		if w > float64(maxWidth) {
			maxWidth = truncWidth(w)
		}

		ink := f.face.TextBounds(string(table[i]))
		f.chars[i] = CharInfo{
			LeftSideBearing:  toInt16(ink.Min.X),
			RightSideBearing: toInt16(ink.Max.X),
			CharacterWidth:   toInt16(truncWidth(w)),
			Ascent:           toInt16(-ink.Min.Y),
			Descent:          toInt16(ink.Max.Y),
		}
	}
	f.minBounds.CharacterWidth = toInt16(minWidth)
	f.maxBounds.CharacterWidth = toInt16(maxWidth)
	f.maxBounds.RightSideBearing = f.maxBounds.CharacterWidth
	return nil
}

func familyName(fam backend.Family) string {
	if fam == nil {
		return ""
	}
	return fam.Name()
}

// Spec returns the spec the font was built from.
func (f *Font) Spec() xlfd.FontSpec { return f.spec }

// Name returns the declared name, or "" if none was given.
func (f *Font) Name() string { return f.name }

// Face returns the backend face the font measures and draws with.
func (f *Font) Face() backend.Face { return f.face }

// MinCharOrByte2 returns the first code of the character range.
func (f *Font) MinCharOrByte2() uint16 { return f.minCharOrByte2 }

// MaxCharOrByte2 returns the last code of the advertised character range.
func (f *Font) MaxCharOrByte2() uint16 { return f.maxCharOrByte2 }

// DefaultChar returns the code substituted for missing characters.
func (f *Font) DefaultChar() uint16 { return f.defaultChar }

// MinByte1 is always 0: fonts are single-byte indexed.
func (f *Font) MinByte1() uint8 { return 0 }

// MaxByte1 is always 0: fonts are single-byte indexed.
func (f *Font) MaxByte1() uint8 { return 0 }

// IsRTL reports whether the font draws right to left.
func (f *Font) IsRTL() bool { return f.isRTL }

// DrawDirection returns RightToLeft for RTL fonts, LeftToRight otherwise.
func (f *Font) DrawDirection() uint8 {
	if f.isRTL {
		return RightToLeft
	}
	return LeftToRight
}

// AllCharsExist reports the all-chars-exist flag. It is never set.
func (f *Font) AllCharsExist() bool { return f.allCharsExist }

// FontAscent returns the font-wide ascent.
func (f *Font) FontAscent() int16 { return f.fontAscent }

// FontDescent returns the font-wide descent.
func (f *Font) FontDescent() int16 { return f.fontDescent }

// MinBounds returns the minimum bounds of the character table.
func (f *Font) MinBounds() CharInfo { return f.minBounds }

// MaxBounds returns the maximum bounds of the character table.
func (f *Font) MaxBounds() CharInfo { return f.maxBounds }

// NumChars returns the number of entries in the character table.
func (f *Font) NumChars() int { return len(f.chars) }

// Chars returns a copy of the character table. Entry i describes code
// MinCharOrByte2()+i.
func (f *Font) Chars() []CharInfo { return slices.Clone(f.chars) }

// CharInfo returns the metrics of code. It reports false for codes outside
// the character table.
func (f *Font) CharInfo(code uint16) (CharInfo, bool) {
	i := int(code) - int(f.minCharOrByte2)
	if i < 0 || i >= len(f.chars) {
		return CharInfo{}, false
	}
	return f.chars[i], true
}

// Properties returns the font's property table.
func (f *Font) Properties() PropertyTable { return f.props }

// DecodeString8 converts 8-bit font codes, as carried by ImageText8 and
// PolyText8, to text in the font's charset.
func (f *Font) DecodeString8(codes []byte) string {
	return f.charset.decode(codes)
}

// DecodeString16 converts 16-bit font codes (CHAR2B, byte1 in the high
// byte) to text. Codes above 255 are UCS-2 code points.
func (f *Font) DecodeString16(codes []uint16) string {
	runes := make([]rune, len(codes))
	for i, c := range codes {
		runes[i] = f.charset.rune(int(c))
	}
	return string(runes)
}

// String returns the font's spec in canonical form.
func (f *Font) String() string {
	return f.spec.String()
}
