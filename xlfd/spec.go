package xlfd

import (
	"strings"

	"golang.org/x/text/cases"
)

// Field identifies one positional XLFD field.
type Field int

// XLFD fields in wire order.
const (
	Foundry Field = iota
	Family
	Weight
	Slant
	SetWidth
	AddStyle
	PixelSize
	PointSize
	ResolutionX
	ResolutionY
	Spacing
	AverageWidth
	CharsetRegistry
	CharsetEncoding

	// NumFields is the number of fields in a complete XLFD name.
	NumFields = int(CharsetEncoding) + 1
)

var fieldNames = [NumFields]string{
	"foundry", "family", "weight", "slant", "setwidth", "addstyle",
	"pixelsize", "pointsize", "resx", "resy", "spacing", "avgwidth",
	"registry", "encoding",
}

// String returns the lower-case XLFD name of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= NumFields {
		return "unknown"
	}
	return fieldNames[f]
}

// Well-known field values.
const (
	WeightBold          = "bold"
	SlantItalic         = "i"
	SpacingProportional = "p"
	SpacingMonospace    = "m"
	SpacingCharCell     = "c"

	FamilyDefault   = "default"
	FamilySerif     = "serif"
	FamilySansSerif = "sans-serif"

	RegistryISO10646 = "ISO10646"
)

// Alias identifies the built-in font names.
type Alias int

const (
	// AliasNone marks a regular XLFD name.
	AliasNone Alias = iota
	// AliasDefault is the "cursor" alias: the default proportional font.
	AliasDefault
	// AliasFixed is the "fixed" alias: the default monospace font.
	AliasFixed
)

// Alias names as they appear in an OpenFont request.
const (
	DefaultName = "cursor"
	FixedName   = "fixed"
)

// String returns the alias name, or "" for AliasNone.
func (a Alias) String() string {
	switch a {
	case AliasDefault:
		return DefaultName
	case AliasFixed:
		return FixedName
	default:
		return ""
	}
}

// FontSpec is a parsed XLFD name. It is immutable and comparable: two specs
// parsed from the same name are equal with ==.
type FontSpec struct {
	name   string
	alias  Alias
	fields [NumFields]string
}

// Name returns the name the spec was parsed from.
func (s FontSpec) Name() string { return s.name }

// Alias reports whether the spec is one of the built-in aliases.
func (s FontSpec) Alias() Alias { return s.alias }

// Field returns the raw value of field f. Missing fields are "".
func (s FontSpec) Field(f Field) string {
	if f < 0 || int(f) >= NumFields {
		return ""
	}
	return s.fields[f]
}

// Is reports whether field f equals v, ignoring case.
func (s FontSpec) Is(f Field, v string) bool {
	return fold(s.Field(f)) == fold(v)
}

// Wildcard reports whether field f is empty or "*".
func (s FontSpec) Wildcard(f Field) bool {
	v := s.Field(f)
	return v == "" || v == "*"
}

// PixelSize parses the pixel-size field. See ParsePixelSize.
func (s FontSpec) PixelSize() (float64, error) {
	return ParsePixelSize(s.Field(PixelSize))
}

// String returns the canonical form of the spec: the alias name for aliases,
// otherwise the fourteen fields joined with a leading hyphen.
func (s FontSpec) String() string {
	if s.alias != AliasNone {
		return s.alias.String()
	}
	var b strings.Builder
	for _, v := range s.fields {
		b.WriteByte('-')
		b.WriteString(v)
	}
	return b.String()
}

// fold returns the case-folded form of v.
func fold(v string) string {
	return cases.Fold().String(v)
}
