// Package backend defines the text-measurement and glyph-rendering contract
// the font subsystem runs against.
//
// The font subsystem never touches font files or pixels itself. It resolves a
// family through a Backend, asks the resulting Face for widths, ink bounds and
// font-wide metrics, and hands the Backend a locked drawing surface to fill and
// paint into. Any host can implement the contract: the sfnt subpackage renders
// with golang.org/x/image, and tests use a recording fake.
//
// # Backend Registration
//
// Backends are registered via init() functions and selected at runtime:
//
//	import _ "github.com/gogpu/xfont/backend/sfnt"
//
//	b, err := backend.Default()
//
// # Coordinates
//
// All metrics use the raster convention: y grows downwards, so ascents and
// the top of an ink box are negative and descents are positive.
package backend
