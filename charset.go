package xfont

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/bidi"
)

// charset maps font codes to runes. A nil charmap is the identity mapping
// used for ISO8859-1, ISO10646 and unknown registries.
type charset struct {
	cm *charmap.Charmap
}

// charmaps lists single-byte registries by "registry-encoding".
var charmaps = map[string]*charmap.Charmap{
	"iso8859-2":        charmap.ISO8859_2,
	"iso8859-3":        charmap.ISO8859_3,
	"iso8859-4":        charmap.ISO8859_4,
	"iso8859-5":        charmap.ISO8859_5,
	"iso8859-6":        charmap.ISO8859_6,
	"iso8859-7":        charmap.ISO8859_7,
	"iso8859-8":        charmap.ISO8859_8,
	"iso8859-9":        charmap.ISO8859_9,
	"iso8859-10":       charmap.ISO8859_10,
	"iso8859-13":       charmap.ISO8859_13,
	"iso8859-14":       charmap.ISO8859_14,
	"iso8859-15":       charmap.ISO8859_15,
	"iso8859-16":       charmap.ISO8859_16,
	"koi8-r":           charmap.KOI8R,
	"koi8-u":           charmap.KOI8U,
	"microsoft-cp1250": charmap.Windows1250,
	"microsoft-cp1251": charmap.Windows1251,
	"microsoft-cp1252": charmap.Windows1252,
}

// charsetFor returns the charset for an XLFD registry and encoding.
func charsetFor(registry, encoding string) charset {
	return charset{cm: charmaps[strings.ToLower(registry+"-"+encoding)]}
}

// rune returns the rune for a font code.
func (c charset) rune(code int) rune {
	if c.cm == nil || code > 0xff {
		return rune(code)
	}
	return c.cm.DecodeByte(byte(code))
}

// decode converts 8-bit font codes to a string.
func (c charset) decode(codes []byte) string {
	runes := make([]rune, len(codes))
	for i, b := range codes {
		runes[i] = c.rune(int(b))
	}
	return string(runes)
}

// rtl reports whether the strong characters of a code table are mostly
// right-to-left. Only mapped charsets are considered: identity tables are
// Latin in their upper half. Build consults it only under WithRTLDetection.
func (c charset) rtl(table []rune) bool {
	if c.cm == nil {
		return false
	}
	var ltr, rtl int
	for _, r := range table {
		if r < 0x80 {
			continue
		}
		p, _ := bidi.LookupRune(r)
		switch p.Class() {
		case bidi.L:
			ltr++
		case bidi.R, bidi.AL:
			rtl++
		}
	}
	return rtl > ltr
}
