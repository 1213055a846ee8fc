package xfont

// Extents is the result of a QueryTextExtents request.
type Extents struct {
	DrawDirection  uint8
	FontAscent     int16
	FontDescent    int16
	OverallAscent  int16
	OverallDescent int16
	OverallWidth   int32
	OverallLeft    int32
	OverallRight   int32
}

// TextExtents computes the extents of a string of 16-bit codes from the
// font's character table. Codes without metrics are replaced by the default
// character; if that is missing too they contribute nothing.
func (f *Font) TextExtents(codes []uint16) Extents {
	e := Extents{
		DrawDirection: f.DrawDirection(),
		FontAscent:    f.fontAscent,
		FontDescent:   f.fontDescent,
	}

	first := true
	var x int32
	for _, code := range codes {
		ci, ok := f.CharInfo(code)
		if !ok || !ci.Exists() {
			ci, ok = f.CharInfo(f.defaultChar)
			if !ok || !ci.Exists() {
				continue
			}
		}

		left := x + int32(ci.LeftSideBearing)
		right := x + int32(ci.RightSideBearing)
		if first {
			e.OverallAscent = ci.Ascent
			e.OverallDescent = ci.Descent
			e.OverallLeft = left
			e.OverallRight = right
			first = false
		} else {
			e.OverallAscent = max(e.OverallAscent, ci.Ascent)
			e.OverallDescent = max(e.OverallDescent, ci.Descent)
			e.OverallLeft = min(e.OverallLeft, left)
			e.OverallRight = max(e.OverallRight, right)
		}
		x += int32(ci.CharacterWidth)
	}
	e.OverallWidth = x
	return e
}

// TextExtents8 is TextExtents for 8-bit codes.
func (f *Font) TextExtents8(codes []byte) Extents {
	wide := make([]uint16, len(codes))
	for i, c := range codes {
		wide[i] = uint16(c)
	}
	return f.TextExtents(wide)
}
