package xfont

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/xfont/atom"
	"github.com/gogpu/xfont/backend"
	"github.com/gogpu/xfont/backend/sfnt"
	"github.com/gogpu/xfont/internal/backendtest"
	"github.com/gogpu/xfont/xlfd"
)

func TestBuildCursor(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	if f.IsRTL() {
		t.Error("IsRTL() = true, want false")
	}
	if f.DrawDirection() != LeftToRight {
		t.Errorf("DrawDirection() = %d, want %d", f.DrawDirection(), LeftToRight)
	}
	if f.MinCharOrByte2() != 32 || f.MaxCharOrByte2() != 255 {
		t.Errorf("range = [%d, %d], want [32, 255]", f.MinCharOrByte2(), f.MaxCharOrByte2())
	}
	if f.DefaultChar() != 32 {
		t.Errorf("DefaultChar() = %d, want 32", f.DefaultChar())
	}
	if f.MinByte1() != 0 || f.MaxByte1() != 0 {
		t.Errorf("byte1 range = [%d, %d], want [0, 0]", f.MinByte1(), f.MaxByte1())
	}
	if f.AllCharsExist() {
		t.Error("AllCharsExist() = true, want false")
	}
	if f.NumChars() != 224 {
		t.Errorf("NumChars() = %d, want 224", f.NumChars())
	}

	d := f.Face().Descriptor()
	if d.Family.Name() != backend.FamilyDefault {
		t.Errorf("family = %q, want %q", d.Family.Name(), backend.FamilyDefault)
	}
	if d.Bold || d.Italic || d.PixelSize != 0 {
		t.Errorf("descriptor = %+v, want plain default-size face", d)
	}
}

func TestBuildFixedAlias(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "FIXED")

	if got := f.Face().Descriptor().Family.Name(); got != backend.FamilyMonospace {
		t.Errorf("family = %q, want %q", got, backend.FamilyMonospace)
	}
	if f.MaxCharOrByte2() != 255 {
		t.Errorf("MaxCharOrByte2() = %d, want 255", f.MaxCharOrByte2())
	}
}

func TestBuildVerticalMetrics(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	if f.FontAscent() != 8 || f.FontDescent() != 2 {
		t.Errorf("font ascent/descent = %d/%d, want 8/2", f.FontAscent(), f.FontDescent())
	}
	mb := f.MaxBounds()
	if mb.Ascent != 10 || mb.Descent != 3 {
		t.Errorf("maxBounds ascent/descent = %d/%d, want 10/3", mb.Ascent, mb.Descent)
	}
}

func TestBuildBounds(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	minB, maxB := f.MinBounds(), f.MaxBounds()
	if minB.CharacterWidth != 4 {
		t.Errorf("minBounds.CharacterWidth = %d, want 4", minB.CharacterWidth)
	}
	if maxB.CharacterWidth != 8 {
		t.Errorf("maxBounds.CharacterWidth = %d, want 8", maxB.CharacterWidth)
	}
	if maxB.RightSideBearing != maxB.CharacterWidth {
		t.Errorf("maxBounds.RightSideBearing = %d, want %d", maxB.RightSideBearing, maxB.CharacterWidth)
	}
	for i, ci := range f.Chars() {
		if ci.CharacterWidth < minB.CharacterWidth || ci.CharacterWidth > maxB.CharacterWidth {
			t.Errorf("char %d width %d outside [%d, %d]", i+MinChar, ci.CharacterWidth, minB.CharacterWidth, maxB.CharacterWidth)
		}
	}
}

func TestBuildCharInfo(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	tests := []struct {
		code uint16
		want CharInfo
	}{
		{' ', CharInfo{CharacterWidth: 4}},
		{'A', CharInfo{LeftSideBearing: 1, RightSideBearing: 7, CharacterWidth: 8, Ascent: 7, Descent: 0}},
		{'g', CharInfo{LeftSideBearing: 1, RightSideBearing: 7, CharacterWidth: 8, Ascent: 5, Descent: 2}},
		{'!', CharInfo{LeftSideBearing: 1, RightSideBearing: 5, CharacterWidth: 6, Ascent: 5, Descent: 2}},
	}
	for _, tt := range tests {
		got, ok := f.CharInfo(tt.code)
		if !ok {
			t.Errorf("CharInfo(%q) missing", rune(tt.code))
			continue
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("CharInfo(%q) mismatch (-want +got):\n%s", rune(tt.code), diff)
		}
	}

	if _, ok := f.CharInfo(31); ok {
		t.Error("CharInfo(31) should be outside the table")
	}
	if _, ok := f.CharInfo(256); ok {
		t.Error("CharInfo(256) should be outside the table")
	}
}

func TestBuildChar32IsFirstEntry(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "cursor")

	chars := f.Chars()
	space, _ := f.CharInfo(32)
	if chars[0] != space {
		t.Errorf("chars[0] = %+v, want metrics of code 32 %+v", chars[0], space)
	}

	// Chars returns a copy.
	chars[0].CharacterWidth = 99
	if again, _ := f.CharInfo(32); again.CharacterWidth == 99 {
		t.Error("Chars() exposed the internal table")
	}
}

func TestBuildUnicode(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, nameUnicode)

	if f.MaxCharOrByte2() != MaxUCS2Char {
		t.Errorf("MaxCharOrByte2() = %d, want %d", f.MaxCharOrByte2(), MaxUCS2Char)
	}
	if f.NumChars() != 224 {
		t.Errorf("NumChars() = %d, want 224 without full range", f.NumChars())
	}
	d := f.Face().Descriptor()
	if d.Family.Name() != backend.FamilyMonospace {
		t.Errorf("family = %q, want %q for char-cell spacing", d.Family.Name(), backend.FamilyMonospace)
	}
	if d.PixelSize != 13*DefaultPixelScale {
		t.Errorf("PixelSize = %v, want %v", d.PixelSize, 13*DefaultPixelScale)
	}
}

func TestBuildRegistryCaseInsensitive(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "-misc-fixed-medium-r-normal--13-120-75-75-c-70-Iso10646-1")
	if f.MaxCharOrByte2() != MaxUCS2Char {
		t.Errorf("MaxCharOrByte2() = %d, want %d", f.MaxCharOrByte2(), MaxUCS2Char)
	}
}

func TestBuildFullRange(t *testing.T) {
	if testing.Short() {
		t.Skip("measures every UCS-2 code point")
	}
	b := newFakeBackend()
	f := mustBuild(t, b, nameUnicode, WithFullRange(true))

	want := MaxUCS2Char - MinChar + 1
	if f.NumChars() != want {
		t.Errorf("NumChars() = %d, want %d", f.NumChars(), want)
	}
	if _, ok := f.CharInfo(0x4e2d); !ok {
		t.Error("CharInfo(U+4E2D) missing from full-range table")
	}

	// Latin-1 fonts have nothing beyond 255 to add.
	latin := mustBuild(t, b, nameLatin1, WithFullRange(true))
	if latin.NumChars() != 224 {
		t.Errorf("latin NumChars() = %d, want 224", latin.NumChars())
	}
}

func TestBuildPixelScale(t *testing.T) {
	tests := []struct {
		name string
		opts []BuildOption
		want float64
	}{
		{"default", nil, 32.5},
		{"unit", []BuildOption{WithPixelScale(1)}, 13},
		{"ignored", []BuildOption{WithPixelScale(-3)}, 32.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newFakeBackend()
			f := mustBuild(t, b, nameUnicode, tt.opts...)
			if got := f.Face().Descriptor().PixelSize; got != tt.want {
				t.Errorf("PixelSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildPixelSizeFallback(t *testing.T) {
	for _, name := range []string{
		nameBogusSize,
		"-misc-fixed-medium-r-normal--*-120-75-75-c-70-iso8859-1",
		"-misc-fixed-medium-r-normal--0-120-75-75-c-70-iso8859-1",
		"-misc-fixed-medium-r-normal",
		"-misc-fixed-medium-r-normal--inf-120-75-75-c-70-iso8859-1",
		"-misc-fixed-medium-r-normal--NaN-120-75-75-c-70-iso8859-1",
		"-misc-fixed-medium-r-normal--1e9-120-75-75-c-70-iso8859-1",
	} {
		b := newFakeBackend()
		f, err := Build(b, mustParse(t, name))
		if err != nil {
			t.Errorf("Build(%q) = %v, want default-size font", name, err)
			continue
		}
		if got := f.Face().Descriptor().PixelSize; got != 0 {
			t.Errorf("Build(%q) PixelSize = %v, want 0 (default)", name, got)
		}
	}
}

func TestScaledPixelSize(t *testing.T) {
	tests := []struct {
		size    string
		scale   float64
		want    float64
		wantErr bool
	}{
		{"13", DefaultPixelScale, 32.5, false},
		{"0", DefaultPixelScale, 0, false},
		{"-4", DefaultPixelScale, 0, false},
		{"*", DefaultPixelScale, 0, true},
		{"inf", DefaultPixelScale, 0, true},
		{"Infinity", 1, 0, true},
		{"1e9", DefaultPixelScale, 0, true},
		{"16777215", 1, MaxPixelSize, false},
		{"16777215", 2, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.size, func(t *testing.T) {
			spec := mustParse(t, "-misc-fixed-medium-r-normal--"+tt.size+"-120-75-75-c-70-iso8859-1")
			got, err := scaledPixelSize(spec, tt.scale)
			if tt.wantErr != (err != nil) {
				t.Fatalf("scaledPixelSize error = %v, want error %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, xlfd.ErrNumericField) {
				t.Errorf("error = %v, want ErrNumericField", err)
			}
			if got != tt.want {
				t.Errorf("scaledPixelSize = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildHugePixelSizeWithGoFonts(t *testing.T) {
	b, err := sfnt.New()
	if err != nil {
		t.Fatalf("sfnt.New: %v", err)
	}
	for _, size := range []string{"inf", "1e9"} {
		f, err := Build(b, mustParse(t, "-misc-go-medium-r-normal--"+size+"-120-75-75-p-70-iso8859-1"))
		if err != nil {
			t.Fatalf("Build(%s): %v", size, err)
		}
		if got := f.Face().Descriptor().PixelSize; got != sfnt.DefaultPixelSize {
			t.Errorf("%s: PixelSize = %v, want the default %v", size, got, sfnt.DefaultPixelSize)
		}
		if f.FontAscent() <= 0 || f.FontDescent() < 0 || f.MaxBounds().Descent < 0 {
			t.Errorf("%s: implausible metrics: ascent %d descent %d maxBounds %+v",
				size, f.FontAscent(), f.FontDescent(), f.MaxBounds())
		}
	}
}

func TestBuildStyle(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, nameBoldItal)

	d := f.Face().Descriptor()
	if !d.Bold || !d.Italic {
		t.Errorf("descriptor = %+v, want bold italic", d)
	}

	resolved := b.Log.Calls()[0]
	if resolved.Op != backendtest.OpResolve || resolved.Text != "helvetica" {
		t.Errorf("first call = %+v, want resolve of helvetica", resolved)
	}
}

func TestBuildStyleCaseInsensitive(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "-adobe-helvetica-BOLD-I-normal--12-120-75-75-P-70-iso8859-1")

	d := f.Face().Descriptor()
	if !d.Bold || !d.Italic {
		t.Errorf("descriptor = %+v, want bold italic", d)
	}
	if got := b.Log.Calls()[0].Text; got != "helvetica" {
		t.Errorf("resolved family %q, want helvetica for proportional spacing", got)
	}
}

func TestFamilySelection(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"-misc-default-medium-r-normal--12-120-75-75-p-70-iso8859-1", backend.FamilyDefault},
		{"-misc-serif-medium-r-normal--12-120-75-75-p-70-iso8859-1", backend.FamilySerif},
		{"-misc-SANS-SERIF-medium-r-normal--12-120-75-75-p-70-iso8859-1", backend.FamilySansSerif},
		{"-misc-serif-medium-r-normal--12-120-75-75-m-70-iso8859-1", backend.FamilyMonospace},
		{"-misc-helvetica-medium-r-normal--12-120-75-75-c-70-iso8859-1", backend.FamilyMonospace},
		{"-misc-helvetica-medium-r-normal--12-120-75-75-p-70-iso8859-1", "helvetica"},
		{"-misc-helvetica-medium-r-normal", backend.FamilyMonospace},
	}
	for _, tt := range tests {
		b := newFakeBackend()
		mustBuild(t, b, tt.name)
		if got := b.Log.Calls()[0].Text; got != tt.want {
			t.Errorf("%s: resolved family %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestBuildWidthWrap(t *testing.T) {
	b := newFakeBackend()
	b.Width = func(r rune) float64 {
		if r == 'W' {
			return 40000.9
		}
		return 5
	}
	f := mustBuild(t, b, "cursor")

	w, _ := f.CharInfo('W')
	if want := int16(-25536); w.CharacterWidth != want {
		t.Errorf("width of W = %d, want %d", w.CharacterWidth, want)
	}
	if want := int16(-25536); f.MaxBounds().CharacterWidth != want {
		t.Errorf("maxBounds.CharacterWidth = %d, want %d", f.MaxBounds().CharacterWidth, want)
	}
	if f.MinBounds().CharacterWidth != 5 {
		t.Errorf("minBounds.CharacterWidth = %d, want 5", f.MinBounds().CharacterWidth)
	}
}

func TestTruncWidth(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{7.9, 7},
		{-2.5, -2},
		{math.NaN(), 0},
		{math.Inf(1), math.MaxInt32},
		{math.Inf(-1), math.MinInt32},
		{1e12, math.MaxInt32},
	}
	for _, tt := range tests {
		if got := truncWidth(tt.in); got != tt.want {
			t.Errorf("truncWidth(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := toInt16(65536 + 3); got != 3 {
		t.Errorf("toInt16(65539) = %d, want 3", got)
	}
}

func TestFontProperty(t *testing.T) {
	atoms := atom.NewTable()
	b := newFakeBackend()
	f := mustBuild(t, b, "fixed", WithAtoms(atoms), WithDeclaredName("fixed"))

	props := f.Properties()
	if props.Len() != 1 {
		t.Fatalf("Properties().Len() = %d, want 1", props.Len())
	}
	v, ok := props.Get(atom.Font)
	if !ok {
		t.Fatal("FONT property missing")
	}
	want, ok := atoms.Lookup("fixed")
	if !ok || v != want {
		t.Errorf("FONT = %d, want interned %q (%d)", v, "fixed", want)
	}
	if f.Name() != "fixed" {
		t.Errorf("Name() = %q, want fixed", f.Name())
	}
	if got := props.All()[0].Name; got != 18 {
		t.Errorf("FONT atom = %d, want 18", got)
	}
}

func TestFontPropertyWithoutName(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, "fixed")
	if f.Properties().Len() != 0 {
		t.Errorf("Properties().Len() = %d, want 0 without a declared name", f.Properties().Len())
	}
}

func TestPropertyFirstValueWins(t *testing.T) {
	var p PropertyTable
	if !p.add(atom.Font, 100) {
		t.Fatal("first add rejected")
	}
	if p.add(atom.Font, 200) {
		t.Error("second add for the same name accepted")
	}
	if v, _ := p.Get(atom.Font); v != 100 {
		t.Errorf("Get(FONT) = %d, want 100", v)
	}
	if _, ok := p.Get(atom.Weight); ok {
		t.Error("Get(WEIGHT) found a value that was never added")
	}
}

func TestBuildResolutionError(t *testing.T) {
	b := newFakeBackend()
	b.Strict = true

	_, err := Build(b, mustParse(t, nameLatin1))
	if !errors.Is(err, ErrFontResolution) {
		t.Fatalf("Build error = %v, want ErrFontResolution", err)
	}
	if !errors.Is(err, backend.ErrUnknownFamily) {
		t.Errorf("Build error = %v, want to wrap ErrUnknownFamily", err)
	}
	var re *ResolutionError
	if !errors.As(err, &re) {
		t.Fatalf("Build error %T is not a *ResolutionError", err)
	}
	if re.Family != "helvetica" || re.Name != nameLatin1 {
		t.Errorf("ResolutionError = %+v", re)
	}
}

func TestBuildFaceError(t *testing.T) {
	b := newFakeBackend()
	faceErr := errors.New("no such face")
	b.FaceErr = faceErr

	f, err := Build(b, mustParse(t, "cursor"))
	if f != nil {
		t.Error("Build returned a partial font")
	}
	if !errors.Is(err, ErrFontResolution) || !errors.Is(err, faceErr) {
		t.Errorf("Build error = %v, want ErrFontResolution wrapping the face error", err)
	}
}

func TestBuildShortWidths(t *testing.T) {
	b := newFakeBackend()
	b.ShortWidths = true

	if _, err := Build(b, mustParse(t, "cursor")); !errors.Is(err, ErrFontResolution) {
		t.Errorf("Build error = %v, want ErrFontResolution", err)
	}
}

func TestBuildRTL(t *testing.T) {
	tests := []struct {
		name string
		rtl  bool
	}{
		{nameHebrew, true},
		{"-misc-fixed-medium-r-normal--13-120-75-75-p-70-iso8859-6", true},
		{"-misc-fixed-medium-r-normal--13-120-75-75-p-70-iso8859-2", false},
		{"-misc-fixed-medium-r-normal--13-120-75-75-p-70-koi8-r", false},
		{nameLatin1, false},
		{nameUnicode, false},
	}
	for _, tt := range tests {
		b := newFakeBackend()
		f := mustBuild(t, b, tt.name, WithRTLDetection(true))
		if f.IsRTL() != tt.rtl {
			t.Errorf("%s: IsRTL() = %v, want %v", tt.name, f.IsRTL(), tt.rtl)
		}
		wantDir := LeftToRight
		if tt.rtl {
			wantDir = RightToLeft
		}
		if f.DrawDirection() != wantDir {
			t.Errorf("%s: DrawDirection() = %d, want %d", tt.name, f.DrawDirection(), wantDir)
		}
	}
}

func TestBuildLeftToRightByDefault(t *testing.T) {
	for _, name := range []string{
		nameHebrew,
		"-misc-fixed-medium-r-normal--13-120-75-75-p-70-iso8859-6",
	} {
		f := mustBuild(t, newFakeBackend(), name)
		if f.IsRTL() {
			t.Errorf("%s: IsRTL() = true without WithRTLDetection", name)
		}
		if f.DrawDirection() != LeftToRight {
			t.Errorf("%s: DrawDirection() = %d, want %d", name, f.DrawDirection(), LeftToRight)
		}
	}
}

func TestDecodeString(t *testing.T) {
	b := newFakeBackend()

	hebrew := mustBuild(t, b, nameHebrew)
	if got := hebrew.DecodeString8([]byte{'a', 0xe0}); got != "aא" {
		t.Errorf("DecodeString8 = %q, want %q", got, "aא")
	}
	if got := hebrew.DecodeString16([]uint16{0xe0, 0x4e2d}); got != "א中" {
		t.Errorf("DecodeString16 = %q, want %q", got, "א中")
	}

	latin := mustBuild(t, b, nameLatin1)
	if got := latin.DecodeString8([]byte{'H', 0xe9}); got != "Hé" {
		t.Errorf("DecodeString8 = %q, want %q", got, "Hé")
	}
}

func TestBuildDeterministic(t *testing.T) {
	b := newFakeBackend()
	f1 := mustBuild(t, b, nameLatin1)
	f2 := mustBuild(t, b, nameLatin1)
	if diff := cmp.Diff(f1.Chars(), f2.Chars()); diff != "" {
		t.Errorf("char tables differ (-first +second):\n%s", diff)
	}
	if f1.MinBounds() != f2.MinBounds() || f1.MaxBounds() != f2.MaxBounds() {
		t.Error("bounds differ between builds")
	}
}

func TestFontString(t *testing.T) {
	b := newFakeBackend()
	f := mustBuild(t, b, nameLatin1)
	if f.String() != f.Spec().String() {
		t.Errorf("String() = %q, want %q", f.String(), f.Spec().String())
	}
}
