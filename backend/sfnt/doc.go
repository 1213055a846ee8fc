// Package sfnt implements backend.Backend with golang.org/x/image.
//
// Glyph metrics and rasterisation come from golang.org/x/image/font/opentype.
// The Go font family (golang.org/x/image/font/gofont) is built in and serves
// every generic family name; additional TrueType or OpenType files can be
// registered at runtime and are indexed by the family name and aspect that
// github.com/go-text/typesetting reads from their name and OS/2 tables.
//
// Importing the package registers it under backend.NameSFNT:
//
//	import _ "github.com/gogpu/xfont/backend/sfnt"
package sfnt
