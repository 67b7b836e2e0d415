package structs

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/codec"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// The functions in this file are the typed accessor runtime. Generated accessors are one
// line calls into them and the reflect package calls them after validating its arguments.
// They do no validation of their own beyond the Registry's ownership check: calling Get
// with a T that does not match the field's Kind returns garbage.

// Get returns the value of a singular scalar or enum field. Enums are read as int32.
func Get[T codec.Scalar](s *Struct, fd *mapping.FieldDescr) T {
	return codec.FromRaw[T](s.reg.Get(fd).getRaw(s))
}

// Set sets a singular scalar or enum field.
func Set[T codec.Scalar](s *Struct, fd *mapping.FieldDescr, v T) {
	s.reg.Get(fd).setRaw(s, codec.ToRaw(v))
}

// Add appends to a repeated scalar or enum field.
func Add[T codec.Scalar](s *Struct, fd *mapping.FieldDescr, v T) {
	s.reg.Get(fd).addRaw(s, codec.ToRaw(v))
}

// GetRepeated returns element i of a repeated scalar or enum field.
func GetRepeated[T codec.Scalar](s *Struct, fd *mapping.FieldDescr, i int) T {
	return codec.FromRaw[T](s.reg.Get(fd).rawAt(s, i))
}

// SetRepeated replaces element i of a repeated scalar or enum field.
func SetRepeated[T codec.Scalar](s *Struct, fd *mapping.FieldDescr, i int, v T) {
	s.reg.Get(fd).setRawAt(s, i, codec.ToRaw(v))
}

// List returns a copy of a repeated scalar or enum field.
func List[T codec.Scalar](s *Struct, fd *mapping.FieldDescr) []T {
	raws := s.reg.Get(fd).rawList(s)
	if len(raws) == 0 {
		return nil
	}
	out := make([]T, len(raws))
	for i, r := range raws {
		out[i] = codec.FromRaw[T](r)
	}
	return out
}

// Has reports if a singular field is set.
func Has(s *Struct, fd *mapping.FieldDescr) bool {
	return s.reg.Get(fd).has(s)
}

// Len returns the number of elements in a repeated field.
func Len(s *Struct, fd *mapping.FieldDescr) int {
	return s.reg.Get(fd).len(s)
}

// ClearField resets a field to its default.
func ClearField(s *Struct, fd *mapping.FieldDescr) {
	s.reg.Get(fd).clear(s)
}

// GetString returns a singular string field.
func GetString(s *Struct, fd *mapping.FieldDescr) string {
	return s.reg.Get(fd).getString(s)
}

// SetString sets a singular string field.
func SetString(s *Struct, fd *mapping.FieldDescr, v string) {
	s.reg.Get(fd).setString(s, v)
}

// AddString appends to a repeated string field.
func AddString(s *Struct, fd *mapping.FieldDescr, v string) {
	s.reg.Get(fd).addString(s, v)
}

// GetRepeatedString returns element i of a repeated string field.
func GetRepeatedString(s *Struct, fd *mapping.FieldDescr, i int) string {
	return s.reg.Get(fd).stringAt(s, i)
}

// SetRepeatedString replaces element i of a repeated string field.
func SetRepeatedString(s *Struct, fd *mapping.FieldDescr, i int, v string) {
	s.reg.Get(fd).setStringAt(s, i, v)
}

// StringList returns a copy of a repeated string field.
func StringList(s *Struct, fd *mapping.FieldDescr) []string {
	return s.reg.Get(fd).stringList(s)
}

// StringRef returns a pointer to the storage of a singular string field. When the field
// has no storage, which only happens for an extension that was never touched, the default
// is copied into scratch and scratch is returned. The pointer is valid until s is next
// modified.
func StringRef(s *Struct, fd *mapping.FieldDescr, scratch *string) *string {
	return s.reg.Get(fd).stringRef(s, scratch)
}

// RepeatedStringRef returns a pointer to element i of a repeated string field.
func RepeatedStringRef(s *Struct, fd *mapping.FieldDescr, i int) *string {
	return s.reg.Get(fd).stringRefAt(s, i)
}

// GetBytes returns a singular bytes field. The returned slice is the stored one and must not
// be modified.
func GetBytes(s *Struct, fd *mapping.FieldDescr) []byte {
	return s.reg.Get(fd).getBytes(s)
}

// SetBytes sets a singular bytes field to a copy of v.
func SetBytes(s *Struct, fd *mapping.FieldDescr, v []byte) {
	s.reg.Get(fd).setBytes(s, v)
}

// AddBytes appends a copy of v to a repeated bytes field.
func AddBytes(s *Struct, fd *mapping.FieldDescr, v []byte) {
	s.reg.Get(fd).addBytes(s, v)
}

// GetRepeatedBytes returns element i of a repeated bytes field.
func GetRepeatedBytes(s *Struct, fd *mapping.FieldDescr, i int) []byte {
	return s.reg.Get(fd).bytesAt(s, i)
}

// SetRepeatedBytes replaces element i of a repeated bytes field with a copy of v.
func SetRepeatedBytes(s *Struct, fd *mapping.FieldDescr, i int, v []byte) {
	s.reg.Get(fd).setBytesAt(s, i, v)
}

// BytesList returns a deep copy of a repeated bytes field.
func BytesList(s *Struct, fd *mapping.FieldDescr) [][]byte {
	return s.reg.Get(fd).bytesList(s)
}

// GetStruct returns a singular message field. A field that never held a value returns the
// frozen default instance of the nested type.
func GetStruct(s *Struct, fd *mapping.FieldDescr) *Struct {
	return s.reg.Get(fd).getStruct(s)
}

// MutableStruct returns a singular message field for modification, allocating it if needed,
// and marks the field set.
func MutableStruct(s *Struct, fd *mapping.FieldDescr) *Struct {
	return s.reg.Get(fd).mutableStruct(s)
}

// SetStruct makes v the value of a singular message field; s takes ownership of v. A nil v
// clears the field.
func SetStruct(s *Struct, fd *mapping.FieldDescr, v *Struct) {
	s.reg.Get(fd).setStruct(s, v)
}

// ReleaseStruct removes a singular message field from s and returns it, or nil if the field
// is not set.
func ReleaseStruct(s *Struct, fd *mapping.FieldDescr) *Struct {
	return s.reg.Get(fd).releaseStruct(s)
}

// AddStruct appends a new element to a repeated message field and returns it.
func AddStruct(s *Struct, fd *mapping.FieldDescr) *Struct {
	return s.reg.Get(fd).addStruct(s)
}

// GetRepeatedStruct returns element i of a repeated message field. The element may be
// modified.
func GetRepeatedStruct(s *Struct, fd *mapping.FieldDescr, i int) *Struct {
	return s.reg.Get(fd).structAt(s, i)
}

// StructList returns the elements of a repeated message field in a new slice.
func StructList(s *Struct, fd *mapping.FieldDescr) []*Struct {
	return s.reg.Get(fd).structList(s)
}

// MergeField merges the field fd of src into dst.
func MergeField(dst, src *Struct, fd *mapping.FieldDescr) {
	dst.reg.Get(fd).merge(dst, src)
}

// FieldSize returns the encoded size of fd in s, tags included.
func FieldSize(s *Struct, fd *mapping.FieldDescr) int {
	return s.reg.Get(fd).size(s)
}

// AppendField appends the encoding of fd in s to b.
func AppendField(b []byte, s *Struct, fd *mapping.FieldDescr) []byte {
	return s.reg.Get(fd).append(b, s)
}

// ConsumeField parses one occurrence of fd from b, which starts after the tag. It returns
// NotHandled if typ is not acceptable for fd.
func ConsumeField(d *Decoder, s *Struct, fd *mapping.FieldDescr, typ protowire.Type, b []byte) (int, error) {
	return s.reg.Get(fd).consume(d, s, typ, b)
}
