package xlfd

import (
	"errors"
	"fmt"
)

// Sentinel errors for the xlfd package.
var (
	// ErrInvalidFontSpec is returned when a name is neither an alias nor a
	// structurally valid XLFD name.
	ErrInvalidFontSpec = errors.New("xlfd: invalid font spec")

	// ErrNumericField is returned when a numeric field such as the pixel size
	// does not hold a number. Callers normally recover from it by keeping a
	// default value.
	ErrNumericField = errors.New("xlfd: malformed numeric field")
)

// SyntaxError describes why a name could not be parsed.
// It wraps ErrInvalidFontSpec.
type SyntaxError struct {
	Name   string
	Fields int
	Reason string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("xlfd: invalid font spec %q (%d fields): %s", e.Name, e.Fields, e.Reason)
}

// Unwrap returns ErrInvalidFontSpec.
func (e *SyntaxError) Unwrap() error {
	return ErrInvalidFontSpec
}
