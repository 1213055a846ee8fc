package xfont

import "math"

// CharInfo holds the metrics of one glyph in X11 CHARINFO layout.
// Bearings and ascent/descent come from the glyph's ink bounds relative to
// its origin; ascent is positive above the baseline.
type CharInfo struct {
	LeftSideBearing  int16
	RightSideBearing int16
	CharacterWidth   int16
	Ascent           int16
	Descent          int16
	Attributes       uint16
}

// Exists reports whether the glyph exists. The protocol marks a missing
// glyph by zeroing every field.
func (c CharInfo) Exists() bool {
	return c != CharInfo{}
}

// toInt16 narrows v to 16 bits the way the wire format does, wrapping on
// overflow.
func toInt16(v int) int16 {
	return int16(v)
}

// truncWidth converts an advance to an integer by truncation toward zero,
// saturating at the int32 range. NaN maps to 0.
func truncWidth(w float64) int {
	switch {
	case math.IsNaN(w):
		return 0
	case w >= math.MaxInt32:
		return math.MaxInt32
	case w <= math.MinInt32:
		return math.MinInt32
	}
	return int(w)
}
