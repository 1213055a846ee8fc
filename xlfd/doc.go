// Package xlfd parses X Logical Font Description names.
//
// An XLFD name is a hyphen-delimited list of fourteen positional fields:
//
//	-foundry-family-weight-slant-setwidth-addstyle-pixelsize-pointsize-resx-resy-spacing-avgwidth-registry-encoding
//
// The leading hyphen produces an empty field that is ignored. Trailing fields
// may be omitted and read as empty. Two built-in aliases are accepted in place
// of a full name: "cursor" (the default proportional font) and "fixed" (the
// default monospace font).
//
// Field values keep the case they were given in. Comparisons made through
// FontSpec.Is are case-insensitive, since XLFD names are.
package xlfd
