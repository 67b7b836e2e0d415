package errors

import (
	"fmt"
	"strings"
)

// Problems reported by a UsageError.
const (
	ProblemWrongMessage  = "Field does not match message type."
	ProblemNotSingular   = "Field is repeated; the method requires a singular field."
	ProblemNotRepeated   = "Field is singular; the method requires a repeated field."
	ProblemWrongType     = "Field is not the right type for this message:"
	ProblemIndex         = "Index out of range."
	ProblemFrozen        = "Message is a frozen default instance."
	ProblemMessageTypes  = "Messages are not of the same type."
	ProblemNilDescriptor = "Field descriptor is nil."
)

// UsageError describes a contract violation by the caller of the reflection or runtime
// layer. It is delivered with panic(), never returned.
type UsageError struct {
	// Method is the method that was called, such as "reflect.Message.GetInt32".
	Method string
	// MessageType is the full name of the message type the method was called on.
	MessageType string
	// Field is the full name of the field that was passed.
	Field string
	// Problem is one of the Problem* constants.
	Problem string
	// Expected and Actual are set when Problem is ProblemWrongType.
	Expected string
	Actual   string
}

// Error implements error.
func (u *UsageError) Error() string {
	b := strings.Builder{}
	b.WriteString("reflection usage error:\n")
	fmt.Fprintf(&b, "  Method      : %s\n", u.Method)
	fmt.Fprintf(&b, "  Message type: %s\n", u.MessageType)
	fmt.Fprintf(&b, "  Field       : %s\n", u.Field)
	fmt.Fprintf(&b, "  Problem     : %s", u.Problem)
	if u.Expected != "" || u.Actual != "" {
		fmt.Fprintf(&b, "\n    Expected  : %s\n", u.Expected)
		fmt.Fprintf(&b, "    Field type: %s", u.Actual)
	}
	return b.String()
}

// Usage panics with a *UsageError.
func Usage(u *UsageError) {
	panic(u)
}

// RecoverUsage runs f and returns the *UsageError it panicked with, or nil if f returned
// normally. Panics that are not a *UsageError are re-raised.
func RecoverUsage(f func()) (u *UsageError) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if ue, ok := r.(*UsageError); ok {
			u = ue
			return
		}
		panic(r)
	}()
	f()
	return nil
}
