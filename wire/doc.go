// Package wire encodes and decodes the font-related parts of the X11 core
// protocol: CHARINFO, FONTPROP and the QueryFont, QueryTextExtents and
// ListFonts replies.
//
// Encoders append to a caller-supplied buffer and never fail on well-formed
// values. Decoders check lengths and return errors wrapping ErrShortBuffer or
// ErrMalformed. Both work in either byte order; the order is the one the
// client announced in its connection setup.
//
//	buf := reply.Append(nil, binary.LittleEndian)
//	back, err := wire.DecodeQueryFontReply(buf, binary.LittleEndian)
package wire
