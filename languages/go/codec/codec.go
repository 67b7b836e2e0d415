// Package codec converts scalar field values between their storage representation and
// the wire format. The byte level varint/fixed/length-delimited routines come from
// protowire; this package only knows how each field.Kind maps onto them.
//
// Scalars are stored as a "raw" uint64: signed integers sign extended to 64 bits,
// bools as 0 or 1, floats as their IEEE 754 bits.
package codec

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// Scalar are the Go types scalar fields can be accessed as.
type Scalar interface {
	bool | int32 | int64 | uint32 | uint64 | float32 | float64
}

func signExtend[N constraints.Signed](v N) uint64 {
	return uint64(int64(v))
}

// ToRaw converts v to its raw storage representation.
func ToRaw[T Scalar](v T) uint64 {
	switch x := any(v).(type) {
	case bool:
		if x {
			return 1
		}
		return 0
	case int32:
		return signExtend(x)
	case int64:
		return signExtend(x)
	case uint32:
		return uint64(x)
	case uint64:
		return x
	case float32:
		return uint64(math.Float32bits(x))
	case float64:
		return math.Float64bits(x)
	}
	panic(fmt.Sprintf("bug: unsupported scalar type %T", v))
}

// FromRaw converts a raw storage value to T.
func FromRaw[T Scalar](raw uint64) T {
	var zero T
	switch any(zero).(type) {
	case bool:
		return any(raw != 0).(T)
	case int32:
		return any(int32(raw)).(T)
	case int64:
		return any(int64(raw)).(T)
	case uint32:
		return any(uint32(raw)).(T)
	case uint64:
		return any(raw).(T)
	case float32:
		return any(math.Float32frombits(uint32(raw))).(T)
	case float64:
		return any(math.Float64frombits(raw)).(T)
	}
	panic(fmt.Sprintf("bug: unsupported scalar type %T", zero))
}

// DefaultRaw returns the raw storage value of a scalar field's schema default.
func DefaultRaw(fd *mapping.FieldDescr) uint64 {
	switch v := fd.Default.(type) {
	case nil:
		return 0
	case bool:
		return ToRaw(v)
	case int32:
		return ToRaw(v)
	case int64:
		return ToRaw(v)
	case uint32:
		return ToRaw(v)
	case uint64:
		return ToRaw(v)
	case float32:
		return ToRaw(v)
	case float64:
		return ToRaw(v)
	}
	panic(fmt.Sprintf("bug: field %s has a non-scalar default %T", fd.FullName(), fd.Default))
}

// AppendRaw appends the encoding of raw, with no tag, for Kind k.
func AppendRaw(b []byte, k field.Kind, raw uint64) []byte {
	switch k {
	case field.KInt32, field.KInt64, field.KUint32, field.KUint64, field.KEnum:
		return protowire.AppendVarint(b, raw)
	case field.KBool:
		return protowire.AppendVarint(b, protowire.EncodeBool(raw != 0))
	case field.KSint32:
		return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(int32(raw))))
	case field.KSint64:
		return protowire.AppendVarint(b, protowire.EncodeZigZag(int64(raw)))
	case field.KFixed32, field.KSfixed32, field.KFloat:
		return protowire.AppendFixed32(b, uint32(raw))
	case field.KFixed64, field.KSfixed64, field.KDouble:
		return protowire.AppendFixed64(b, raw)
	}
	panic("bug: AppendRaw called with non-scalar kind " + k.String())
}

// SizeRaw returns the encoded size of raw, with no tag, for Kind k.
func SizeRaw(k field.Kind, raw uint64) int {
	switch k {
	case field.KInt32, field.KInt64, field.KUint32, field.KUint64, field.KEnum:
		return protowire.SizeVarint(raw)
	case field.KBool:
		return 1
	case field.KSint32:
		return protowire.SizeVarint(protowire.EncodeZigZag(int64(int32(raw))))
	case field.KSint64:
		return protowire.SizeVarint(protowire.EncodeZigZag(int64(raw)))
	case field.KFixed32, field.KSfixed32, field.KFloat:
		return protowire.SizeFixed32()
	case field.KFixed64, field.KSfixed64, field.KDouble:
		return protowire.SizeFixed64()
	}
	panic("bug: SizeRaw called with non-scalar kind " + k.String())
}

// ConsumeRaw decodes a single value of Kind k from b, which must hold a value of k's wire
// type. It returns the raw value and the number of bytes consumed, or a negative length
// on error that can be passed to protowire.ParseError.
func ConsumeRaw(b []byte, k field.Kind) (uint64, int) {
	switch k.WireType() {
	case protowire.VarintType:
		v, n := protowire.ConsumeVarint(b)
		if n < 0 {
			return 0, n
		}
		return normalizeVarint(k, v), n
	case protowire.Fixed32Type:
		v, n := protowire.ConsumeFixed32(b)
		if n < 0 {
			return 0, n
		}
		if k == field.KSfixed32 {
			return signExtend(int32(v)), n
		}
		return uint64(v), n
	case protowire.Fixed64Type:
		return protowire.ConsumeFixed64(b)
	}
	panic("bug: ConsumeRaw called with non-scalar kind " + k.String())
}

// normalizeVarint converts a decoded varint to the raw value for k. 32 bit kinds are
// truncated the way the wire format requires.
func normalizeVarint(k field.Kind, v uint64) uint64 {
	switch k {
	case field.KInt32, field.KEnum:
		return signExtend(int32(v))
	case field.KUint32:
		return uint64(uint32(v))
	case field.KBool:
		return ToRaw(protowire.DecodeBool(v))
	case field.KSint32:
		return signExtend(int32(protowire.DecodeZigZag(v & math.MaxUint32)))
	case field.KSint64:
		return uint64(protowire.DecodeZigZag(v))
	}
	return v
}

// AppendPacked appends vals as a single length-delimited run without a tag.
func AppendPacked(b []byte, k field.Kind, vals []uint64) []byte {
	b = protowire.AppendVarint(b, uint64(PackedSize(k, vals)))
	for _, v := range vals {
		b = AppendRaw(b, k, v)
	}
	return b
}

// PackedSize returns the size of the packed payload of vals, excluding the length prefix.
func PackedSize(k field.Kind, vals []uint64) int {
	switch k.WireType() {
	case protowire.Fixed32Type:
		return len(vals) * protowire.SizeFixed32()
	case protowire.Fixed64Type:
		return len(vals) * protowire.SizeFixed64()
	}
	n := 0
	for _, v := range vals {
		n += SizeRaw(k, v)
	}
	return n
}

// ConsumePacked decodes a length-delimited packed run from b and appends the values to
// dst. It returns dst and the bytes consumed, or a negative length on error.
func ConsumePacked(b []byte, k field.Kind, dst []uint64) ([]uint64, int) {
	run, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return dst, n
	}
	for len(run) > 0 {
		v, m := ConsumeRaw(run, k)
		if m < 0 {
			return dst, m
		}
		dst = append(dst, v)
		run = run[m:]
	}
	return dst, n
}
