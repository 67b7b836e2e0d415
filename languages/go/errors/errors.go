// Package errors provides the errors package for tagwire. It includes all of the stdlib's
// functions and types.
//
// Two kinds of failures exist in tagwire. Data conditions, such as malformed wire input or
// a message missing required fields, are returned as an Error created with E(). Contract
// violations, such as handing the reflection layer a field that does not belong to the
// message, are programming errors: they panic with a *UsageError and are never returned.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

func (c Category) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by bad user input.
	CatUser Category = Category(1) // User
	// CatInternal represents an internal error.
	CatInternal Category = Category(2) // Internal
)

//go:generate stringer -type=Type -linecomment

// Type represents the type of the error.
type Type uint16

func (t Type) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeBug represents a bug in the calling code. This is only bugs that are known bugs and
	// not because of bad user input.
	TypeBug Type = Type(1) // Bug
	// TypeParameter represents an error with a parameter that didn't pass validation.
	TypeParameter Type = Type(2) // Parameter
	// TypeWire represents input that is not valid wire format.
	TypeWire Type = Type(3) // Wire
	// TypeUninitialized represents a message that is missing required fields.
	TypeUninitialized Type = Type(4) // Uninitialized
	// TypeRecursion represents input nested deeper than the recursion limit.
	TypeRecursion Type = Type(5) // Recursion
	// TypeRender represents a failure rendering generated source.
	TypeRender Type = Type(6) // Render
	// TypeIO represents an error reading or writing a stream.
	TypeIO Type = Type(7) // IO
)

// LogAttrer is an interface that can be implemented by an error to return a list of attributes
// used in logging.
type LogAttrer = errors.LogAttrer

// Error is the error type for this package. Error implements github.com/gostdlib/base/errors.E .
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This can happen if you create a call wrapper around E(), because you would then need to look up one more stack frame
// for every wrapper. This defaults to 1 which sets to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return errors.WithCallNum(i)
}

// WithStackTrace will add a stack trace to the error. This is useful for debugging in certain rare
// cases.
func WithStackTrace() EOption {
	return errors.WithStackTrace()
}

// E creates a new Error with the given parameters.
func E(ctx context.Context, c errors.Category, t errors.Type, msg error, options ...errors.EOption) Error {
	// This makes sure we do the correct call number since we are a wrapper. Now, if they set the
	// call number, this will not override it.
	opts := make([]errors.EOption, 0, len(options)+1)
	opts = append(opts, WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}
