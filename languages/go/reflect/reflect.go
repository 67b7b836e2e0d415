// Package reflect performs typed field operations on messages using only a field handle,
// for code that has no compile time knowledge of the message type. Every operation checks
// that the field belongs to the message, that the requested type matches the field's kind
// exactly and that the field's cardinality fits the operation. A failed check is a bug in
// the caller and panics with a *errors.UsageError.
package reflect

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/reflect/runtime"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

// Reflector is implemented by generated message types.
type Reflector interface {
	// TagwireReflect returns the Message for reflection.
	TagwireReflect() Message
}

// Message is a reflection handle on a message instance. It is a small value and is
// meant to be passed by value.
type Message struct {
	s *structs.Struct
}

// ValueOf returns the reflection handle for s.
func ValueOf(s *structs.Struct) Message {
	if s == nil {
		panic("reflect.ValueOf: nil *structs.Struct")
	}
	return Message{s: s}
}

// New returns a new message of the type registered with runtime.RegisterMessage under
// fullName.
func New(fullName string) (Message, bool) {
	m := runtime.FindMessage(fullName)
	if m == nil {
		return Message{}, false
	}
	return ValueOf(structs.New(m)), true
}

// Struct returns the underlying storage.
func (m Message) Struct() *structs.Struct {
	return m.s
}

// Descriptor returns the message type.
func (m Message) Descriptor() *mapping.Map {
	return m.s.Map()
}

// IsValid reports if m holds a message.
func (m Message) IsValid() bool {
	return m.s != nil
}

type cardinality uint8

const (
	anyCardinality cardinality = iota
	singular
	repeated
)

// check validates fd for method, in order: ownership, logical type, cardinality. lt of
// LTUnknown skips the type check.
func (m Message) check(method string, fd *mapping.FieldDescr, lt field.LogicalType, c cardinality) {
	if fd == nil {
		m.fail(method, nil, errors.ProblemNilDescriptor)
	}
	if m.s.Registry().Lookup(fd) == nil {
		m.fail(method, fd, errors.ProblemWrongMessage)
	}
	if lt != field.LTUnknown && fd.Kind.Logical() != lt {
		u := m.usage(method, fd, errors.ProblemWrongType)
		u.Expected = lt.String()
		u.Actual = fd.Kind.Logical().String()
		errors.Usage(u)
	}
	switch c {
	case singular:
		if fd.IsRepeated() {
			m.fail(method, fd, errors.ProblemNotSingular)
		}
	case repeated:
		if !fd.IsRepeated() {
			m.fail(method, fd, errors.ProblemNotRepeated)
		}
	}
}

// checkMutable is called after check by methods that modify m.
func (m Message) checkMutable(method string, fd *mapping.FieldDescr) {
	if m.s.IsFrozen() {
		m.fail(method, fd, errors.ProblemFrozen)
	}
}

func (m Message) checkIndex(method string, fd *mapping.FieldDescr, i int) {
	if i < 0 || i >= structs.Len(m.s, fd) {
		m.fail(method, fd, errors.ProblemIndex)
	}
}

func (m Message) usage(method string, fd *mapping.FieldDescr, problem string) *errors.UsageError {
	u := &errors.UsageError{
		Method:      "reflect.Message." + method,
		MessageType: m.s.Map().FullName(),
		Problem:     problem,
	}
	if fd != nil {
		u.Field = fd.FullName()
		if u.Field == "" {
			u.Field = fd.Name
		}
	}
	return u
}

func (m Message) fail(method string, fd *mapping.FieldDescr, problem string) {
	errors.Usage(m.usage(method, fd, problem))
}

// HasField reports if a singular field is set.
func (m Message) HasField(fd *mapping.FieldDescr) bool {
	m.check("HasField", fd, field.LTUnknown, singular)
	return structs.Has(m.s, fd)
}

// FieldSize returns the number of elements in a repeated field.
func (m Message) FieldSize(fd *mapping.FieldDescr) int {
	m.check("FieldSize", fd, field.LTUnknown, repeated)
	return structs.Len(m.s, fd)
}

// ClearField resets a field to its default. A singular message field that was set keeps
// its allocation, reset to the defaults.
func (m Message) ClearField(fd *mapping.FieldDescr) {
	m.check("ClearField", fd, field.LTUnknown, anyCardinality)
	m.checkMutable("ClearField", fd)
	structs.ClearField(m.s, fd)
}

// ListFields returns the set singular fields and non-empty repeated fields, declared fields
// in field number order followed by extensions in field number order.
func (m Message) ListFields() []*mapping.FieldDescr {
	return m.s.SetFields()
}

// FindKnownExtensionByNumber returns the extension of m's type with field number n, or nil
// if none is registered. Extensions of other types are never found.
func (m Message) FindKnownExtensionByNumber(n protowire.Number) *mapping.FieldDescr {
	return m.s.Map().FindExtensionByNumber(n)
}

// FindKnownExtensionByName returns the extension of m's type with the fully-qualified
// name, or nil if none is registered.
func (m Message) FindKnownExtensionByName(fullName string) *mapping.FieldDescr {
	return m.s.Map().FindExtensionByName(fullName)
}
