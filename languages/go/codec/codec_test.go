package codec

import (
	"math"
	"testing"

	"github.com/kylelemons/godebug/pretty"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/field"
)

func TestRawConversions(t *testing.T) {
	if got := FromRaw[int32](ToRaw(int32(-5))); got != -5 {
		t.Errorf("TestRawConversions: int32 got %d, want -5", got)
	}
	if ToRaw(int32(-1)) != math.MaxUint64 {
		t.Errorf("TestRawConversions: int32 raw values must be sign extended")
	}
	if got := FromRaw[uint32](ToRaw(uint32(math.MaxUint32))); got != math.MaxUint32 {
		t.Errorf("TestRawConversions: uint32 got %d", got)
	}
	if got := FromRaw[float32](ToRaw(float32(1.5))); got != 1.5 {
		t.Errorf("TestRawConversions: float32 got %v", got)
	}
	if got := FromRaw[float64](ToRaw(-2.25)); got != -2.25 {
		t.Errorf("TestRawConversions: float64 got %v", got)
	}
	if !FromRaw[bool](ToRaw(true)) || FromRaw[bool](ToRaw(false)) {
		t.Errorf("TestRawConversions: bool did not round trip")
	}
}

func TestAppendConsume(t *testing.T) {
	tests := []struct {
		name string
		kind field.Kind
		raw  uint64
		want []byte
	}{
		{name: "int32 positive", kind: field.KInt32, raw: ToRaw(int32(150)), want: []byte{0x96, 0x01}},
		{
			name: "int32 negative is ten bytes",
			kind: field.KInt32,
			raw:  ToRaw(int32(-1)),
			want: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01},
		},
		{name: "sint32 negative", kind: field.KSint32, raw: ToRaw(int32(-1)), want: []byte{0x01}},
		{name: "sint64", kind: field.KSint64, raw: ToRaw(int64(-2)), want: []byte{0x03}},
		{name: "bool", kind: field.KBool, raw: ToRaw(true), want: []byte{0x01}},
		{name: "fixed32", kind: field.KFixed32, raw: ToRaw(uint32(1)), want: []byte{1, 0, 0, 0}},
		{name: "sfixed32 negative", kind: field.KSfixed32, raw: ToRaw(int32(-1)), want: []byte{0xff, 0xff, 0xff, 0xff}},
		{name: "double", kind: field.KDouble, raw: ToRaw(1.0), want: []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}},
		{name: "enum unknown value", kind: field.KEnum, raw: ToRaw(int32(999)), want: []byte{0xe7, 0x07}},
	}

	for _, test := range tests {
		got := AppendRaw(nil, test.kind, test.raw)
		if diff := pretty.Compare(test.want, got); diff != "" {
			t.Errorf("TestAppendConsume(%s): AppendRaw: -want/+got:\n%s", test.name, diff)
			continue
		}
		if n := SizeRaw(test.kind, test.raw); n != len(got) {
			t.Errorf("TestAppendConsume(%s): SizeRaw() = %d, want %d", test.name, n, len(got))
		}
		raw, n := ConsumeRaw(got, test.kind)
		if n != len(got) {
			t.Errorf("TestAppendConsume(%s): ConsumeRaw consumed %d bytes, want %d", test.name, n, len(got))
		}
		if raw != test.raw {
			t.Errorf("TestAppendConsume(%s): ConsumeRaw() = %#x, want %#x", test.name, raw, test.raw)
		}
	}
}

func TestConsumeRawTruncates32Bit(t *testing.T) {
	// A uint32 written by a peer as a 64 bit varint keeps only the low 32 bits.
	b := protowire.AppendVarint(nil, 1<<32+7)
	raw, _ := ConsumeRaw(b, field.KUint32)
	if raw != 7 {
		t.Errorf("TestConsumeRawTruncates32Bit: got %d, want 7", raw)
	}

	if _, n := ConsumeRaw([]byte{0x80}, field.KInt64); n >= 0 {
		t.Errorf("TestConsumeRawTruncates32Bit: truncated varint should return a negative length")
	}
}

func TestPacked(t *testing.T) {
	vals := []uint64{ToRaw(int32(1)), ToRaw(int32(-2)), ToRaw(int32(300))}
	b := AppendPacked(nil, field.KSint32, vals)

	got, n := ConsumePacked(b, field.KSint32, nil)
	if n != len(b) {
		t.Fatalf("TestPacked: consumed %d bytes, want %d", n, len(b))
	}
	if diff := pretty.Compare(vals, got); diff != "" {
		t.Errorf("TestPacked: -want/+got:\n%s", diff)
	}
	if PackedSize(field.KDouble, vals) != 24 {
		t.Errorf("TestPacked: PackedSize(double) = %d, want 24", PackedSize(field.KDouble, vals))
	}
}
