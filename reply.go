package xfont

import "github.com/gogpu/xfont/wire"

// wire converts c to its wire form.
func (c CharInfo) wire() wire.CharInfo {
	return wire.CharInfo(c)
}

// QueryFontReply returns the QueryFont reply for the font.
func (f *Font) QueryFontReply(seq uint16) *wire.QueryFontReply {
	r := &wire.QueryFontReply{
		Sequence:       seq,
		MinBounds:      f.minBounds.wire(),
		MaxBounds:      f.maxBounds.wire(),
		MinCharOrByte2: f.minCharOrByte2,
		MaxCharOrByte2: f.maxCharOrByte2,
		DefaultChar:    f.defaultChar,
		DrawDirection:  f.DrawDirection(),
		MinByte1:       f.MinByte1(),
		MaxByte1:       f.MaxByte1(),
		AllCharsExist:  f.allCharsExist,
		FontAscent:     f.fontAscent,
		FontDescent:    f.fontDescent,
	}
	for _, p := range f.props.props {
		r.Properties = append(r.Properties, wire.FontProp{Name: uint32(p.Name), Value: uint32(p.Value)})
	}
	r.CharInfos = make([]wire.CharInfo, len(f.chars))
	for i, c := range f.chars {
		r.CharInfos[i] = c.wire()
	}
	return r
}

// Reply returns the QueryTextExtents reply carrying e.
func (e Extents) Reply(seq uint16) *wire.QueryTextExtentsReply {
	return &wire.QueryTextExtentsReply{
		Sequence:       seq,
		DrawDirection:  e.DrawDirection,
		FontAscent:     e.FontAscent,
		FontDescent:    e.FontDescent,
		OverallAscent:  e.OverallAscent,
		OverallDescent: e.OverallDescent,
		OverallWidth:   e.OverallWidth,
		OverallLeft:    e.OverallLeft,
		OverallRight:   e.OverallRight,
	}
}

// CharInfoFromWire converts a decoded CHARINFO.
func CharInfoFromWire(c wire.CharInfo) CharInfo {
	return CharInfo(c)
}
