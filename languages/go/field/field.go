// Package field details the field kinds used by the tagwire format.
package field

import (
	"google.golang.org/protobuf/encoding/protowire"
)

//go:generate stringer -type=Kind,LogicalType,Cardinality -linecomment

// Kind represents the declared schema kind of a field.
type Kind uint8

const (
	KUnknown  Kind = 0  // Unknown
	KInt32    Kind = 1  // int32
	KInt64    Kind = 2  // int64
	KUint32   Kind = 3  // uint32
	KUint64   Kind = 4  // uint64
	KSint32   Kind = 5  // sint32
	KSint64   Kind = 6  // sint64
	KFixed32  Kind = 7  // fixed32
	KFixed64  Kind = 8  // fixed64
	KSfixed32 Kind = 9  // sfixed32
	KSfixed64 Kind = 10 // sfixed64
	KBool     Kind = 11 // bool
	KFloat    Kind = 12 // float
	KDouble   Kind = 13 // double
	KString   Kind = 14 // string
	KBytes    Kind = 15 // bytes
	KEnum     Kind = 16 // enum
	KMessage  Kind = 17 // message
	KGroup    Kind = 18 // group
	// Reserve 19 to 40
)

// LogicalType is the type a caller uses to access a field's value. Several
// Kinds share a LogicalType, for example KSint32 and KSfixed32 are both
// accessed as LTInt32.
type LogicalType uint8

const (
	LTUnknown LogicalType = 0  // unknown
	LTInt32   LogicalType = 1  // int32
	LTInt64   LogicalType = 2  // int64
	LTUint32  LogicalType = 3  // uint32
	LTUint64  LogicalType = 4  // uint64
	LTFloat   LogicalType = 5  // float
	LTDouble  LogicalType = 6  // double
	LTBool    LogicalType = 7  // bool
	LTEnum    LogicalType = 8  // enum
	LTString  LogicalType = 9  // string
	LTMessage LogicalType = 10 // message
)

// Cardinality is the multiplicity of a field.
type Cardinality uint8

const (
	CUnknown  Cardinality = 0 // unknown
	COptional Cardinality = 1 // optional
	CRequired Cardinality = 2 // required
	CRepeated Cardinality = 3 // repeated
)

// Kinds is every valid Kind.
var Kinds = []Kind{
	KInt32, KInt64, KUint32, KUint64,
	KSint32, KSint64,
	KFixed32, KFixed64, KSfixed32, KSfixed64,
	KBool, KFloat, KDouble,
	KString, KBytes,
	KEnum, KMessage, KGroup,
}

// IsValid reports if k is a known Kind.
func (k Kind) IsValid() bool {
	return k >= KInt32 && k <= KGroup
}

// Logical returns the LogicalType used to access values of Kind k.
func (k Kind) Logical() LogicalType {
	switch k {
	case KInt32, KSint32, KSfixed32:
		return LTInt32
	case KInt64, KSint64, KSfixed64:
		return LTInt64
	case KUint32, KFixed32:
		return LTUint32
	case KUint64, KFixed64:
		return LTUint64
	case KFloat:
		return LTFloat
	case KDouble:
		return LTDouble
	case KBool:
		return LTBool
	case KEnum:
		return LTEnum
	case KString, KBytes:
		return LTString
	case KMessage, KGroup:
		return LTMessage
	}
	return LTUnknown
}

// WireType returns the wire type a single (unpacked) value of Kind k is encoded with.
func (k Kind) WireType() protowire.Type {
	switch k {
	case KInt32, KInt64, KUint32, KUint64, KSint32, KSint64, KBool, KEnum:
		return protowire.VarintType
	case KFixed32, KSfixed32, KFloat:
		return protowire.Fixed32Type
	case KFixed64, KSfixed64, KDouble:
		return protowire.Fixed64Type
	case KString, KBytes, KMessage:
		return protowire.BytesType
	case KGroup:
		return protowire.StartGroupType
	}
	panic("bug: unsupported field kind " + k.String())
}

// IsScalar reports if k is a numeric, bool or enum Kind.
func (k Kind) IsScalar() bool {
	return k.IsValid() && k != KString && k != KBytes && k != KMessage && k != KGroup
}

// Packable reports if repeated values of Kind k may use packed encoding.
func (k Kind) Packable() bool {
	return k.IsScalar()
}

// IsComposite reports if k holds a nested message.
func (k Kind) IsComposite() bool {
	return k == KMessage || k == KGroup
}

// KindToString returns the kind as a string WITHOUT a type prefix, which for Kind is
// simply String().
func KindToString(k Kind) string {
	return k.String()
}
