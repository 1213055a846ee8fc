package xfont

import (
	"errors"
	"fmt"
)

// Sentinel errors for the xfont package.
var (
	// ErrFontResolution is returned when no face can be produced for a font
	// spec. No partial Font is ever returned with it.
	ErrFontResolution = errors.New("xfont: font resolution failed")

	// ErrFontIDInUse is returned by Cache.OpenFont for an id that is already
	// bound to a font.
	ErrFontIDInUse = errors.New("xfont: font id in use")
)

// ResolutionError reports the family that could not be resolved.
// It matches both ErrFontResolution and the backend's own error.
type ResolutionError struct {
	Name   string
	Family string
	Err    error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("xfont: cannot resolve font %q (family %q): %v", e.Name, e.Family, e.Err)
}

// Unwrap returns ErrFontResolution and the underlying backend error.
func (e *ResolutionError) Unwrap() []error {
	return []error{ErrFontResolution, e.Err}
}
