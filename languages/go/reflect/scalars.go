package reflect

import (
	"github.com/bearlytools/tagwire/languages/go/codec"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

func getScalar[T codec.Scalar](m Message, method string, fd *mapping.FieldDescr, lt field.LogicalType) T {
	m.check(method, fd, lt, singular)
	return structs.Get[T](m.s, fd)
}

func setScalar[T codec.Scalar](m Message, method string, fd *mapping.FieldDescr, lt field.LogicalType, v T) {
	m.check(method, fd, lt, singular)
	m.checkMutable(method, fd)
	structs.Set(m.s, fd, v)
}

func addScalar[T codec.Scalar](m Message, method string, fd *mapping.FieldDescr, lt field.LogicalType, v T) {
	m.check(method, fd, lt, repeated)
	m.checkMutable(method, fd)
	structs.Add(m.s, fd, v)
}

func getRepeatedScalar[T codec.Scalar](m Message, method string, fd *mapping.FieldDescr, lt field.LogicalType, i int) T {
	m.check(method, fd, lt, repeated)
	m.checkIndex(method, fd, i)
	return structs.GetRepeated[T](m.s, fd, i)
}

func setRepeatedScalar[T codec.Scalar](m Message, method string, fd *mapping.FieldDescr, lt field.LogicalType, i int, v T) {
	m.check(method, fd, lt, repeated)
	m.checkMutable(method, fd)
	m.checkIndex(method, fd, i)
	structs.SetRepeated(m.s, fd, i, v)
}

// GetInt32 returns the value of a singular int32, sint32 or sfixed32 field.
func (m Message) GetInt32(fd *mapping.FieldDescr) int32 {
	return getScalar[int32](m, "GetInt32", fd, field.LTInt32)
}

// SetInt32 sets a singular int32, sint32 or sfixed32 field.
func (m Message) SetInt32(fd *mapping.FieldDescr, v int32) {
	setScalar(m, "SetInt32", fd, field.LTInt32, v)
}

// AddInt32 appends to a repeated int32, sint32 or sfixed32 field.
func (m Message) AddInt32(fd *mapping.FieldDescr, v int32) {
	addScalar(m, "AddInt32", fd, field.LTInt32, v)
}

// GetRepeatedInt32 returns element i of a repeated int32, sint32 or sfixed32 field.
func (m Message) GetRepeatedInt32(fd *mapping.FieldDescr, i int) int32 {
	return getRepeatedScalar[int32](m, "GetRepeatedInt32", fd, field.LTInt32, i)
}

// SetRepeatedInt32 replaces element i of a repeated int32, sint32 or sfixed32 field.
func (m Message) SetRepeatedInt32(fd *mapping.FieldDescr, i int, v int32) {
	setRepeatedScalar(m, "SetRepeatedInt32", fd, field.LTInt32, i, v)
}

// GetInt64 returns the value of a singular int64, sint64 or sfixed64 field.
func (m Message) GetInt64(fd *mapping.FieldDescr) int64 {
	return getScalar[int64](m, "GetInt64", fd, field.LTInt64)
}

// SetInt64 sets a singular int64, sint64 or sfixed64 field.
func (m Message) SetInt64(fd *mapping.FieldDescr, v int64) {
	setScalar(m, "SetInt64", fd, field.LTInt64, v)
}

// AddInt64 appends to a repeated int64, sint64 or sfixed64 field.
func (m Message) AddInt64(fd *mapping.FieldDescr, v int64) {
	addScalar(m, "AddInt64", fd, field.LTInt64, v)
}

// GetRepeatedInt64 returns element i of a repeated int64, sint64 or sfixed64 field.
func (m Message) GetRepeatedInt64(fd *mapping.FieldDescr, i int) int64 {
	return getRepeatedScalar[int64](m, "GetRepeatedInt64", fd, field.LTInt64, i)
}

// SetRepeatedInt64 replaces element i of a repeated int64, sint64 or sfixed64 field.
func (m Message) SetRepeatedInt64(fd *mapping.FieldDescr, i int, v int64) {
	setRepeatedScalar(m, "SetRepeatedInt64", fd, field.LTInt64, i, v)
}

// GetUint32 returns the value of a singular uint32 or fixed32 field.
func (m Message) GetUint32(fd *mapping.FieldDescr) uint32 {
	return getScalar[uint32](m, "GetUint32", fd, field.LTUint32)
}

// SetUint32 sets a singular uint32 or fixed32 field.
func (m Message) SetUint32(fd *mapping.FieldDescr, v uint32) {
	setScalar(m, "SetUint32", fd, field.LTUint32, v)
}

// AddUint32 appends to a repeated uint32 or fixed32 field.
func (m Message) AddUint32(fd *mapping.FieldDescr, v uint32) {
	addScalar(m, "AddUint32", fd, field.LTUint32, v)
}

// GetRepeatedUint32 returns element i of a repeated uint32 or fixed32 field.
func (m Message) GetRepeatedUint32(fd *mapping.FieldDescr, i int) uint32 {
	return getRepeatedScalar[uint32](m, "GetRepeatedUint32", fd, field.LTUint32, i)
}

// SetRepeatedUint32 replaces element i of a repeated uint32 or fixed32 field.
func (m Message) SetRepeatedUint32(fd *mapping.FieldDescr, i int, v uint32) {
	setRepeatedScalar(m, "SetRepeatedUint32", fd, field.LTUint32, i, v)
}

// GetUint64 returns the value of a singular uint64 or fixed64 field.
func (m Message) GetUint64(fd *mapping.FieldDescr) uint64 {
	return getScalar[uint64](m, "GetUint64", fd, field.LTUint64)
}

// SetUint64 sets a singular uint64 or fixed64 field.
func (m Message) SetUint64(fd *mapping.FieldDescr, v uint64) {
	setScalar(m, "SetUint64", fd, field.LTUint64, v)
}

// AddUint64 appends to a repeated uint64 or fixed64 field.
func (m Message) AddUint64(fd *mapping.FieldDescr, v uint64) {
	addScalar(m, "AddUint64", fd, field.LTUint64, v)
}

// GetRepeatedUint64 returns element i of a repeated uint64 or fixed64 field.
func (m Message) GetRepeatedUint64(fd *mapping.FieldDescr, i int) uint64 {
	return getRepeatedScalar[uint64](m, "GetRepeatedUint64", fd, field.LTUint64, i)
}

// SetRepeatedUint64 replaces element i of a repeated uint64 or fixed64 field.
func (m Message) SetRepeatedUint64(fd *mapping.FieldDescr, i int, v uint64) {
	setRepeatedScalar(m, "SetRepeatedUint64", fd, field.LTUint64, i, v)
}

// GetFloat returns the value of a singular float field.
func (m Message) GetFloat(fd *mapping.FieldDescr) float32 {
	return getScalar[float32](m, "GetFloat", fd, field.LTFloat)
}

// SetFloat sets a singular float field.
func (m Message) SetFloat(fd *mapping.FieldDescr, v float32) {
	setScalar(m, "SetFloat", fd, field.LTFloat, v)
}

// AddFloat appends to a repeated float field.
func (m Message) AddFloat(fd *mapping.FieldDescr, v float32) {
	addScalar(m, "AddFloat", fd, field.LTFloat, v)
}

// GetRepeatedFloat returns element i of a repeated float field.
func (m Message) GetRepeatedFloat(fd *mapping.FieldDescr, i int) float32 {
	return getRepeatedScalar[float32](m, "GetRepeatedFloat", fd, field.LTFloat, i)
}

// SetRepeatedFloat replaces element i of a repeated float field.
func (m Message) SetRepeatedFloat(fd *mapping.FieldDescr, i int, v float32) {
	setRepeatedScalar(m, "SetRepeatedFloat", fd, field.LTFloat, i, v)
}

// GetDouble returns the value of a singular double field.
func (m Message) GetDouble(fd *mapping.FieldDescr) float64 {
	return getScalar[float64](m, "GetDouble", fd, field.LTDouble)
}

// SetDouble sets a singular double field.
func (m Message) SetDouble(fd *mapping.FieldDescr, v float64) {
	setScalar(m, "SetDouble", fd, field.LTDouble, v)
}

// AddDouble appends to a repeated double field.
func (m Message) AddDouble(fd *mapping.FieldDescr, v float64) {
	addScalar(m, "AddDouble", fd, field.LTDouble, v)
}

// GetRepeatedDouble returns element i of a repeated double field.
func (m Message) GetRepeatedDouble(fd *mapping.FieldDescr, i int) float64 {
	return getRepeatedScalar[float64](m, "GetRepeatedDouble", fd, field.LTDouble, i)
}

// SetRepeatedDouble replaces element i of a repeated double field.
func (m Message) SetRepeatedDouble(fd *mapping.FieldDescr, i int, v float64) {
	setRepeatedScalar(m, "SetRepeatedDouble", fd, field.LTDouble, i, v)
}

// GetBool returns the value of a singular bool field.
func (m Message) GetBool(fd *mapping.FieldDescr) bool {
	return getScalar[bool](m, "GetBool", fd, field.LTBool)
}

// SetBool sets a singular bool field.
func (m Message) SetBool(fd *mapping.FieldDescr, v bool) {
	setScalar(m, "SetBool", fd, field.LTBool, v)
}

// AddBool appends to a repeated bool field.
func (m Message) AddBool(fd *mapping.FieldDescr, v bool) {
	addScalar(m, "AddBool", fd, field.LTBool, v)
}

// GetRepeatedBool returns element i of a repeated bool field.
func (m Message) GetRepeatedBool(fd *mapping.FieldDescr, i int) bool {
	return getRepeatedScalar[bool](m, "GetRepeatedBool", fd, field.LTBool, i)
}

// SetRepeatedBool replaces element i of a repeated bool field.
func (m Message) SetRepeatedBool(fd *mapping.FieldDescr, i int, v bool) {
	setRepeatedScalar(m, "SetRepeatedBool", fd, field.LTBool, i, v)
}

// GetEnum returns the number of a singular enum field. Numbers the schema does not name
// are returned as they were parsed.
func (m Message) GetEnum(fd *mapping.FieldDescr) int32 {
	return getScalar[int32](m, "GetEnum", fd, field.LTEnum)
}

// SetEnum sets a singular enum field to the number v. v does not need to be a named value.
func (m Message) SetEnum(fd *mapping.FieldDescr, v int32) {
	setScalar(m, "SetEnum", fd, field.LTEnum, v)
}

// AddEnum appends the number v to a repeated enum field.
func (m Message) AddEnum(fd *mapping.FieldDescr, v int32) {
	addScalar(m, "AddEnum", fd, field.LTEnum, v)
}

// GetRepeatedEnum returns the number of element i of a repeated enum field.
func (m Message) GetRepeatedEnum(fd *mapping.FieldDescr, i int) int32 {
	return getRepeatedScalar[int32](m, "GetRepeatedEnum", fd, field.LTEnum, i)
}

// SetRepeatedEnum replaces element i of a repeated enum field.
func (m Message) SetRepeatedEnum(fd *mapping.FieldDescr, i int, v int32) {
	setRepeatedScalar(m, "SetRepeatedEnum", fd, field.LTEnum, i, v)
}

// GetEnumValue returns the named value of a singular enum field. ok is false when the
// stored number has no name or the field has no EnumDescr.
func (m Message) GetEnumValue(fd *mapping.FieldDescr) (v mapping.EnumValue, ok bool) {
	n := getScalar[int32](m, "GetEnumValue", fd, field.LTEnum)
	if fd.Enum == nil {
		return mapping.EnumValue{}, false
	}
	return fd.Enum.ByNumber(n)
}
