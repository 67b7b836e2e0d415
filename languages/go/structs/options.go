package structs

import (
	"github.com/gostdlib/base/values/sizes"
)

const (
	// DefaultRecursionLimit is how deeply messages may nest when parsing.
	DefaultRecursionLimit = 100
	// DefaultMaxMessageSize is the largest length prefix ReadDelimited accepts.
	DefaultMaxMessageSize = int(64 * sizes.MiB)
)

type config struct {
	allowPartial   bool
	discardUnknown bool
	recursionLimit int
	maxMessageSize int
}

func defaultConfig() config {
	return config{
		recursionLimit: DefaultRecursionLimit,
		maxMessageSize: DefaultMaxMessageSize,
	}
}

func newConfig(options []Option) config {
	c := defaultConfig()
	for _, o := range options {
		o(&c)
	}
	return c
}

// Option is an optional argument to the encode and decode functions. Options that do not
// apply to an operation are ignored.
type Option func(*config)

// MarshalOption is an Option accepted when serializing.
type MarshalOption = Option

// UnmarshalOption is an Option accepted when parsing.
type UnmarshalOption = Option

// WithAllowPartial skips the check that required fields are set, both when serializing
// and after parsing.
func WithAllowPartial() Option {
	return func(c *config) {
		c.allowPartial = true
	}
}

// WithDiscardUnknown drops fields the parser does not recognize instead of keeping them.
func WithDiscardUnknown() Option {
	return func(c *config) {
		c.discardUnknown = true
	}
}

// WithRecursionLimit sets how deeply messages may nest when parsing. Values < 1 are ignored.
// Defaults to DefaultRecursionLimit.
func WithRecursionLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.recursionLimit = n
		}
	}
}

// WithMaxMessageSize sets the largest message ReadDelimited will read. Values < 1 are
// ignored. Defaults to DefaultMaxMessageSize.
func WithMaxMessageSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxMessageSize = n
		}
	}
}
