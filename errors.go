package fixed

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrOutOfRange is reported by the bounds-checked At accessors when the
// index does not address a live element. Test for it with errors.Is.
var ErrOutOfRange = errors.New("fixed: index out of range")

// outOfRange wraps ErrOutOfRange with the offending index and the size it
// was checked against.
func outOfRange(i, size int) error {
	return errors.Wrapf(ErrOutOfRange, "index %d, size %d", i, size)
}

// inRange reports whether i addresses one of size live elements.
func inRange(i, size int) bool {
	return i >= 0 && i < size
}

// violation panics with a precondition failure. Precondition failures are
// caller bugs and are never reported through an error.
func violation(format string, args ...any) {
	panic("fixed: " + fmt.Sprintf(format, args...))
}
