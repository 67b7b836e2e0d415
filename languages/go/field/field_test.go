package field

import (
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func TestKind(t *testing.T) {
	tests := []struct {
		kind      Kind
		logical   LogicalType
		wire      protowire.Type
		packable  bool
		composite bool
	}{
		{KInt32, LTInt32, protowire.VarintType, true, false},
		{KSint32, LTInt32, protowire.VarintType, true, false},
		{KSfixed32, LTInt32, protowire.Fixed32Type, true, false},
		{KInt64, LTInt64, protowire.VarintType, true, false},
		{KSint64, LTInt64, protowire.VarintType, true, false},
		{KSfixed64, LTInt64, protowire.Fixed64Type, true, false},
		{KUint32, LTUint32, protowire.VarintType, true, false},
		{KFixed32, LTUint32, protowire.Fixed32Type, true, false},
		{KUint64, LTUint64, protowire.VarintType, true, false},
		{KFixed64, LTUint64, protowire.Fixed64Type, true, false},
		{KFloat, LTFloat, protowire.Fixed32Type, true, false},
		{KDouble, LTDouble, protowire.Fixed64Type, true, false},
		{KBool, LTBool, protowire.VarintType, true, false},
		{KEnum, LTEnum, protowire.VarintType, true, false},
		{KString, LTString, protowire.BytesType, false, false},
		{KBytes, LTString, protowire.BytesType, false, false},
		{KMessage, LTMessage, protowire.BytesType, false, true},
		{KGroup, LTMessage, protowire.StartGroupType, false, true},
	}

	if len(tests) != len(Kinds) {
		t.Fatalf("TestKind: table covers %d kinds, Kinds has %d", len(tests), len(Kinds))
	}

	for _, test := range tests {
		if !test.kind.IsValid() {
			t.Errorf("TestKind(%s): IsValid() == false", test.kind)
		}
		if got := test.kind.Logical(); got != test.logical {
			t.Errorf("TestKind(%s): Logical(): got %s, want %s", test.kind, got, test.logical)
		}
		if got := test.kind.WireType(); got != test.wire {
			t.Errorf("TestKind(%s): WireType(): got %v, want %v", test.kind, got, test.wire)
		}
		if got := test.kind.Packable(); got != test.packable {
			t.Errorf("TestKind(%s): Packable(): got %v, want %v", test.kind, got, test.packable)
		}
		if got := test.kind.IsComposite(); got != test.composite {
			t.Errorf("TestKind(%s): IsComposite(): got %v, want %v", test.kind, got, test.composite)
		}
	}
}

func TestKindUnknown(t *testing.T) {
	if KUnknown.IsValid() || Kind(19).IsValid() {
		t.Errorf("TestKindUnknown: IsValid() == true for an unknown kind")
	}
	if KUnknown.Logical() != LTUnknown {
		t.Errorf("TestKindUnknown: Logical(): got %s, want %s", KUnknown.Logical(), LTUnknown)
	}
	if KUnknown.IsScalar() {
		t.Errorf("TestKindUnknown: IsScalar() == true")
	}

	defer func() {
		if recover() == nil {
			t.Errorf("TestKindUnknown: WireType() did not panic")
		}
	}()
	KUnknown.WireType()
}

func TestStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{KSfixed64.String(), "sfixed64"},
		{LTInt32.String(), "int32"},
		{LTMessage.String(), "message"},
		{CRepeated.String(), "repeated"},
		{KindToString(KBytes), "bytes"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("TestStrings: got %q, want %q", test.got, test.want)
		}
	}
}
