package lspace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned by constructors given a value outside
	// its documented range. No value is produced when it is returned.
	ErrInvalidParameter = errors.New("lspace: invalid parameter")

	// ErrNotLaidOut is returned when drawing is requested for geometry that
	// no layout pass has produced.
	ErrNotLaidOut = errors.New("lspace: geometry not laid out")

	// ErrDestroyed is returned by every Area operation after Destroy.
	ErrDestroyed = errors.New("lspace: area destroyed")
)

// invalidParam wraps ErrInvalidParameter with a description of the bad value.
func invalidParam(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}
