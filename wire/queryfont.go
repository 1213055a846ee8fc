package wire

import "fmt"

// QueryFontReply is the reply to a QueryFont request.
type QueryFontReply struct {
	Sequence uint16

	MinBounds      CharInfo
	MaxBounds      CharInfo
	MinCharOrByte2 uint16
	MaxCharOrByte2 uint16
	DefaultChar    uint16
	DrawDirection  uint8
	MinByte1       uint8
	MaxByte1       uint8
	AllCharsExist  bool
	FontAscent     int16
	FontDescent    int16

	Properties []FontProp
	CharInfos  []CharInfo
}

// Length returns the reply length field: 7 + 2n + 3m for n properties and
// m character infos.
func (r *QueryFontReply) Length() uint32 {
	return 7 + 2*uint32(len(r.Properties)) + 3*uint32(len(r.CharInfos))
}

// Size returns the encoded size in bytes.
func (r *QueryFontReply) Size() int {
	return QueryFontFixedSize + FontPropSize*len(r.Properties) + CharInfoSize*len(r.CharInfos)
}

// Append appends the encoded reply to b.
func (r *QueryFontReply) Append(b []byte, order ByteOrder) []byte {
	b = appendHeader(b, order, 0, r.Sequence, r.Length())
	b = AppendCharInfo(b, order, r.MinBounds)
	b = append(b, 0, 0, 0, 0)
	b = AppendCharInfo(b, order, r.MaxBounds)
	b = append(b, 0, 0, 0, 0)
	b = order.AppendUint16(b, r.MinCharOrByte2)
	b = order.AppendUint16(b, r.MaxCharOrByte2)
	b = order.AppendUint16(b, r.DefaultChar)
	b = order.AppendUint16(b, uint16(len(r.Properties)))
	b = append(b, r.DrawDirection, r.MinByte1, r.MaxByte1, boolByte(r.AllCharsExist))
	b = order.AppendUint16(b, uint16(r.FontAscent))
	b = order.AppendUint16(b, uint16(r.FontDescent))
	b = order.AppendUint32(b, uint32(len(r.CharInfos)))
	for _, p := range r.Properties {
		b = AppendFontProp(b, order, p)
	}
	for _, c := range r.CharInfos {
		b = AppendCharInfo(b, order, c)
	}
	return b
}

// DecodeQueryFontReply decodes a QueryFont reply. The length field must
// agree with the property and character counts.
func DecodeQueryFontReply(b []byte, order ByteOrder) (*QueryFontReply, error) {
	h, err := decodeHeader(b, order, "QueryFont reply")
	if err != nil {
		return nil, err
	}
	if len(b) < QueryFontFixedSize {
		return nil, shortBuffer("QueryFont reply", QueryFontFixedSize, len(b))
	}

	r := &QueryFontReply{Sequence: h.seq}
	if r.MinBounds, err = DecodeCharInfo(b[8:], order); err != nil {
		return nil, err
	}
	if r.MaxBounds, err = DecodeCharInfo(b[24:], order); err != nil {
		return nil, err
	}
	r.MinCharOrByte2 = order.Uint16(b[40:])
	r.MaxCharOrByte2 = order.Uint16(b[42:])
	r.DefaultChar = order.Uint16(b[44:])
	nProps := int(order.Uint16(b[46:]))
	r.DrawDirection = b[48]
	r.MinByte1 = b[49]
	r.MaxByte1 = b[50]
	r.AllCharsExist = b[51] != 0
	r.FontAscent = int16(order.Uint16(b[52:]))
	r.FontDescent = int16(order.Uint16(b[54:]))
	nChars := order.Uint32(b[56:])

	if want := 7 + 2*uint64(nProps) + 3*uint64(nChars); uint64(h.length) != want {
		return nil, fmt.Errorf("%w: QueryFont reply length %d, want %d for %d properties and %d chars",
			ErrMalformed, h.length, want, nProps, nChars)
	}
	need := QueryFontFixedSize + FontPropSize*nProps + CharInfoSize*int(nChars)
	if len(b) < need {
		return nil, shortBuffer("QueryFont reply", need, len(b))
	}

	off := QueryFontFixedSize
	if nProps > 0 {
		r.Properties = make([]FontProp, nProps)
		for i := range r.Properties {
			r.Properties[i], _ = DecodeFontProp(b[off:], order)
			off += FontPropSize
		}
	}
	if nChars > 0 {
		r.CharInfos = make([]CharInfo, nChars)
		for i := range r.CharInfos {
			r.CharInfos[i], _ = DecodeCharInfo(b[off:], order)
			off += CharInfoSize
		}
	}
	return r, nil
}

func boolByte(v bool) byte {
	if v {
		return 1
	}
	return 0
}
