// Package xfont implements the font subsystem of an X11 server.
//
// # Overview
//
// xfont turns an X Logical Font Description into the font record the X11
// protocol exposes through QueryFont, and draws text with it for ImageText
// and PolyText requests. Glyph measurement and rasterisation are delegated
// to a backend.Backend supplied by the host.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/xfont"
//		"github.com/gogpu/xfont/backend/sfnt"
//		"github.com/gogpu/xfont/xlfd"
//	)
//
//	b, _ := sfnt.New()
//	spec, _ := xlfd.Parse("-misc-fixed-medium-r-normal--13-120-75-75-c-70-iso8859-1")
//	f, err := xfont.Build(b, spec, xfont.WithDeclaredName(spec.Name()))
//
//	r := xfont.NewTextRenderer(b)
//	err = r.ImageText(drawable, gc, f, []byte("Hello"), 10, 20)
//
// # Metrics
//
// Every CharInfo field is a 16-bit protocol value. Backend measurements are
// truncated to integers and then narrowed to 16 bits with wraparound, exactly
// as the wire format would carry them.
//
// The character table covers codes minCharOrByte2 (32) through 255. Fonts
// with an ISO10646 registry advertise maxCharOrByte2 = 65534 but still only
// measure codes up to 255 unless built WithFullRange(true).
//
// # Concurrency
//
// A Font is immutable after Build and may be shared by any number of
// goroutines. Drawing is serialised per drawable by the drawable's own lock.
package xfont
