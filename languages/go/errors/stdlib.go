package errors

import (
	"github.com/gostdlib/base/errors"
)

// These wrap the stdlib's errors functions (via gostdlib) so that packages in tagwire only
// need to import this package.

// New returns an error that formats as the given text.
func New(text string) error {
	return errors.New(text)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target, and if so, sets
// target to that error value and returns true.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join returns an error that wraps the given errors. Any nil error values are discarded.
func Join(err ...error) error {
	return errors.Join(err...)
}
