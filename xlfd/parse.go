package xlfd

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse parses an XLFD name or one of the built-in aliases.
//
// The pixel-size field is not validated here: a non-numeric pixel size is a
// recoverable condition reported by FontSpec.PixelSize, not a parse failure.
func Parse(name string) (FontSpec, error) {
	switch fold(name) {
	case DefaultName:
		return FontSpec{name: name, alias: AliasDefault, fields: aliasFields(DefaultName)}, nil
	case FixedName:
		return FontSpec{name: name, alias: AliasFixed, fields: aliasFields(FixedName)}, nil
	}

	if !strings.HasPrefix(name, "-") {
		return FontSpec{}, &SyntaxError{Name: name, Reason: "missing leading hyphen"}
	}

	parts := strings.Split(name[1:], "-")
	if extra := len(parts) - NumFields; extra > 0 {
		joined, ok := joinFamily(parts, extra)
		if !ok {
			return FontSpec{}, &SyntaxError{Name: name, Fields: len(parts), Reason: "too many fields"}
		}
		parts = joined
	}

	spec := FontSpec{name: name}
	copy(spec.fields[:], parts)
	return spec, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level font names.
func MustParse(name string) FontSpec {
	s, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return s
}

// joinFamily folds extra hyphen-separated parts into the family field, so
// that names such as "-misc-sans-serif-..." keep "sans-serif" as one family.
// It reports false when the numeric fields of the result do not hold numbers,
// since the extra hyphens then cannot be placed unambiguously.
func joinFamily(parts []string, extra int) ([]string, bool) {
	last := int(Family) + extra
	out := make([]string, 0, NumFields)
	out = append(out, parts[:Family]...)
	out = append(out, strings.Join(parts[Family:last+1], "-"))
	out = append(out, parts[last+1:]...)

	for _, f := range []Field{PixelSize, PointSize, ResolutionX, ResolutionY, AverageWidth} {
		if !numericOrWildcard(out[f]) {
			return nil, false
		}
	}
	return out, true
}

func numericOrWildcard(v string) bool {
	if v == "" || v == "*" {
		return true
	}
	_, err := strconv.ParseFloat(v, 64)
	return err == nil
}

// ParsePixelSize parses a pixel-size field value.
//
// It returns an error wrapping ErrNumericField when v is empty, a wildcard,
// not a number or not finite. Whether to fall back to a default, and which
// one, is left to the caller.
func ParsePixelSize(v string) (float64, error) {
	n, err := strconv.ParseFloat(v, 32)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, fmt.Errorf("%w: pixel size %q", ErrNumericField, v)
	}
	return n, nil
}

// aliasFields places the alias name in the first field, where regular names
// keep their foundry.
func aliasFields(alias string) [NumFields]string {
	var f [NumFields]string
	f[Foundry] = alias
	return f
}
