package wire

// CharInfo is the CHARINFO structure.
type CharInfo struct {
	LeftSideBearing  int16
	RightSideBearing int16
	CharacterWidth   int16
	Ascent           int16
	Descent          int16
	Attributes       uint16
}

// AppendCharInfo appends the 12-byte encoding of c.
func AppendCharInfo(b []byte, order ByteOrder, c CharInfo) []byte {
	b = order.AppendUint16(b, uint16(c.LeftSideBearing))
	b = order.AppendUint16(b, uint16(c.RightSideBearing))
	b = order.AppendUint16(b, uint16(c.CharacterWidth))
	b = order.AppendUint16(b, uint16(c.Ascent))
	b = order.AppendUint16(b, uint16(c.Descent))
	return order.AppendUint16(b, c.Attributes)
}

// DecodeCharInfo decodes a CHARINFO from the start of b.
func DecodeCharInfo(b []byte, order ByteOrder) (CharInfo, error) {
	if len(b) < CharInfoSize {
		return CharInfo{}, shortBuffer("CHARINFO", CharInfoSize, len(b))
	}
	return CharInfo{
		LeftSideBearing:  int16(order.Uint16(b[0:])),
		RightSideBearing: int16(order.Uint16(b[2:])),
		CharacterWidth:   int16(order.Uint16(b[4:])),
		Ascent:           int16(order.Uint16(b[6:])),
		Descent:          int16(order.Uint16(b[8:])),
		Attributes:       order.Uint16(b[10:]),
	}, nil
}

// FontProp is the FONTPROP structure: a name atom and a 32-bit value.
type FontProp struct {
	Name  uint32
	Value uint32
}

// AppendFontProp appends the 8-byte encoding of p.
func AppendFontProp(b []byte, order ByteOrder, p FontProp) []byte {
	b = order.AppendUint32(b, p.Name)
	return order.AppendUint32(b, p.Value)
}

// DecodeFontProp decodes a FONTPROP from the start of b.
func DecodeFontProp(b []byte, order ByteOrder) (FontProp, error) {
	if len(b) < FontPropSize {
		return FontProp{}, shortBuffer("FONTPROP", FontPropSize, len(b))
	}
	return FontProp{Name: order.Uint32(b[0:]), Value: order.Uint32(b[4:])}, nil
}
