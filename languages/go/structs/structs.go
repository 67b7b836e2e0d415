// Package structs holds message instances and the per-field strategies that store, merge,
// clear, size, serialize and parse them. Generated code and the reflect package both sit on
// top of this package. THIS PACKAGE IS PUBLIC ONLY OUT OF NECESSITY AND ANY USE OUTSIDE OF
// GENERATED CODE IS NOT PROTECTED between any versions.
package structs

import (
	"bytes"
	"maps"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// Struct is an instance of a message type. A Struct is not safe for concurrent mutation;
// concurrent reads are safe.
type Struct struct {
	mapping *mapping.Map
	reg     *Registry

	// fields is indexed by mapping.FieldDescr.Index().
	fields []slot
	// exts is created the first time an extension is written.
	exts    map[protowire.Number]*extSlot
	unknown []byte

	frozen bool
}

// New creates a new Struct of type m with every field at its default.
func New(m *mapping.Map) *Struct {
	if m == nil {
		panic("structs: New called with a nil *mapping.Map")
	}
	return newStruct(RegistryFor(m))
}

func newStruct(reg *Registry) *Struct {
	s := &Struct{
		mapping: reg.m,
		reg:     reg,
		fields:  make([]slot, len(reg.strategies)),
	}
	for i, st := range reg.strategies {
		st.init(&s.fields[i])
	}
	return s
}

// NewFrom creates a new Struct that represents the same message type.
func (s *Struct) NewFrom() *Struct {
	return newStruct(s.reg)
}

// Map returns the type of the Struct.
func (s *Struct) Map() *mapping.Map {
	return s.mapping
}

// Registry returns the field strategies of the Struct's type.
func (s *Struct) Registry() *Registry {
	return s.reg
}

// IsFrozen reports if s is a default instance, which cannot be modified.
func (s *Struct) IsFrozen() bool {
	return s.frozen
}

func (s *Struct) checkMutable() {
	if s.frozen {
		errors.Usage(&errors.UsageError{
			Method:      "structs.Struct",
			MessageType: s.mapping.FullName(),
			Problem:     errors.ProblemFrozen,
		})
	}
}

// Clear resets every field to its default and drops unknown fields. Singular message
// children that were allocated are cleared and kept.
func (s *Struct) Clear() {
	s.checkMutable()
	s.clear()
}

func (s *Struct) clear() {
	for i, st := range s.reg.strategies {
		st.reset(&s.fields[i])
	}
	clearExtra(s)
}

// ClearExtra resets the extensions of s and drops its unknown fields. Generated Clear()
// methods call it after clearing each declared field.
func ClearExtra(s *Struct) {
	s.checkMutable()
	clearExtra(s)
}

func clearExtra(s *Struct) {
	for _, e := range s.exts {
		e.st.reset(&e.slot)
	}
	s.unknown = s.unknown[:0]
}

// MergeFrom merges src into s. Set singular fields in src overwrite those in s, singular
// messages merge recursively, repeated fields are appended and unknown fields are appended.
// src must be the same type as s.
func (s *Struct) MergeFrom(src *Struct) {
	s.checkMutable()
	if src.mapping != s.mapping {
		errors.Usage(&errors.UsageError{
			Method:      "structs.Struct.MergeFrom",
			MessageType: s.mapping.FullName(),
			Field:       src.mapping.FullName(),
			Problem:     errors.ProblemMessageTypes,
		})
	}
	if src == s {
		src = s.Clone()
	}
	s.mergeFrom(src)
}

func (s *Struct) mergeFrom(src *Struct) {
	for _, st := range s.reg.strategies {
		st.merge(s, src)
	}
	mergeExtra(s, src)
}

// MergeExtra merges the extensions and unknown fields of src into dst. Generated
// MergeFrom() methods call it after merging each declared field.
func MergeExtra(dst, src *Struct) {
	dst.checkMutable()
	mergeExtra(dst, src)
}

func mergeExtra(dst, src *Struct) {
	for _, num := range src.extNumbers() {
		src.exts[num].st.merge(dst, src)
	}
	dst.unknown = append(dst.unknown, src.unknown...)
}

// Clone returns a deep copy of s. The clone of a default instance is not frozen.
func (s *Struct) Clone() *Struct {
	c := s.NewFrom()
	c.mergeFrom(s)
	return c
}

// extNumbers returns the numbers of the extensions with storage in s, in order.
func (s *Struct) extNumbers() []protowire.Number {
	if len(s.exts) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(s.exts))
}

// Equal reports if s and o are the same type and hold the same field values, extensions
// and unknown bytes.
func (s *Struct) Equal(o *Struct) bool {
	if s == o {
		return true
	}
	if s == nil || o == nil || s.mapping != o.mapping {
		return false
	}
	for _, st := range s.reg.strategies {
		if !st.equal(s, o) {
			return false
		}
	}
	// A missing slot compares as an empty field, so checking from both sides covers
	// extensions only one of them has touched.
	for _, e := range s.exts {
		if !e.st.equal(s, o) {
			return false
		}
	}
	for _, e := range o.exts {
		if !e.st.equal(s, o) {
			return false
		}
	}
	return bytes.Equal(s.unknown, o.unknown)
}

// IsInitialized reports if every required field of s and of all of its set children is set.
func (s *Struct) IsInitialized() bool {
	return len(s.missing("", nil)) == 0
}

// MissingRequired returns the dotted paths of required fields that are not set, such as
// "a" or "child.b" or "repeated_child[2].c". Extensions are written as "(full.name)".
func (s *Struct) MissingRequired() []string {
	return s.missing("", nil)
}

func (s *Struct) missing(prefix string, out []string) []string {
	for _, st := range s.reg.ordered {
		if st.fd.IsRequired() && !st.has(s) {
			out = append(out, prefix+st.fd.Name)
		}
		out = st.missing(s, prefix, out)
	}
	for _, num := range s.extNumbers() {
		out = s.exts[num].st.missing(s, prefix, out)
	}
	return out
}

// SetFields returns the fields that would be serialized: declared fields in number order,
// then extensions in number order.
func (s *Struct) SetFields() []*mapping.FieldDescr {
	var out []*mapping.FieldDescr
	for _, st := range s.reg.ordered {
		if st.present(s) {
			out = append(out, st.fd)
		}
	}
	for _, num := range s.extNumbers() {
		if st := s.exts[num].st; st.present(s) {
			out = append(out, st.fd)
		}
	}
	return out
}

// Unknown returns the bytes of fields that were parsed but not recognized. The returned
// slice must not be modified.
func (s *Struct) Unknown() []byte {
	return s.unknown
}

// DiscardUnknown drops unknown fields from s and from every child message.
func (s *Struct) DiscardUnknown() {
	s.checkMutable()
	s.unknown = nil
	visit := func(sl *slot) {
		if sl.msg != nil {
			sl.msg.DiscardUnknown()
		}
		for _, m := range sl.msgs {
			m.DiscardUnknown()
		}
	}
	for i := range s.fields {
		visit(&s.fields[i])
	}
	for _, e := range s.exts {
		visit(&e.slot)
	}
}
