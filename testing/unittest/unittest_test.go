package unittest

import (
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/reflect"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

func newPopulated() *TestAllTypes {
	msg := NewTestAllTypes()
	msg.SetOptionalInt32(-1)
	msg.SetOptionalSint64(-2)
	msg.SetOptionalFixed32(3)
	msg.SetOptionalDouble(4.5)
	msg.SetOptionalBool(true)
	msg.SetOptionalString("five")
	msg.SetOptionalBytes([]byte{0, 6})
	msg.MutableOptionalgroup().SetA(7)
	msg.MutableOptionalNestedMessage().SetBb(8)
	msg.SetOptionalNestedEnum(TestAllTypes_NestedEnum_NEG)
	msg.SetOptionalForeignEnum(ForeignEnum_FOREIGN_BAR)

	msg.AddRepeatedInt64(9)
	msg.AddRepeatedInt64(-10)
	msg.AddRepeatedFloat(11.5)
	msg.AddRepeatedString("twelve")
	msg.AddRepeatedString("")
	msg.AddRepeatedgroup().SetA(13)
	msg.AddRepeatedForeignMessage().SetC(14)
	msg.AddRepeatedForeignMessage()
	msg.AddRepeatedNestedEnum(TestAllTypes_NestedEnum_BAZ)

	msg.SetDefaultString("")
	msg.SetDefaultUint64(15)
	return msg
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	msg := newPopulated()

	b, err := msg.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestRoundTrip: Marshal(): %s", err)
	}
	if len(b) != msg.Size() {
		t.Errorf("TestRoundTrip: Size() == %d, but Marshal() produced %d bytes", msg.Size(), len(b))
	}

	got := NewTestAllTypes()
	if err := got.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestRoundTrip: Unmarshal(): %s", err)
	}
	if !got.Equal(msg) {
		t.Errorf("TestRoundTrip: decoded message is not Equal() to the original")
	}

	// Spot check through the accessors.
	checks := []struct {
		name      string
		got, want any
	}{
		{"OptionalInt32", got.OptionalInt32(), int32(-1)},
		{"OptionalSint64", got.OptionalSint64(), int64(-2)},
		{"OptionalBytes", got.OptionalBytes(), []byte{0, 6}},
		{"Optionalgroup.A", got.Optionalgroup().A(), int32(7)},
		{"OptionalNestedEnum", got.OptionalNestedEnum(), TestAllTypes_NestedEnum_NEG},
		{"RepeatedInt64", got.RepeatedInt64(), []int64{9, -10}},
		{"RepeatedString", got.RepeatedString(), []string{"twelve", ""}},
		{"RepeatedForeignMessageLen", got.RepeatedForeignMessageLen(), 2},
		{"HasDefaultString", got.HasDefaultString(), true},
		{"DefaultString", got.DefaultString(), ""},
		{"HasDefaultInt32", got.HasDefaultInt32(), false},
		{"DefaultInt32", got.DefaultInt32(), int32(41)},
	}
	for _, c := range checks {
		if diff := pretty.Compare(c.want, c.got); diff != "" {
			t.Errorf("TestRoundTrip(%s): -want/+got:\n%s", c.name, diff)
		}
	}
}

func TestClone(t *testing.T) {
	msg := newPopulated()
	c := msg.Clone()
	if !c.Equal(msg) {
		t.Fatalf("TestClone: clone is not Equal() to the original")
	}

	c.MutableOptionalgroup().SetA(100)
	c.SetRepeatedInt64At(0, 100)
	if msg.Optionalgroup().A() != 7 || msg.RepeatedInt64At(0) != 9 {
		t.Errorf("TestClone: modifying the clone changed the original")
	}
	if c.Equal(msg) {
		t.Errorf("TestClone: modified clone is still Equal() to the original")
	}
}

func TestMergeFrom(t *testing.T) {
	dst := NewTestAllTypes()
	dst.SetOptionalInt32(1)
	dst.SetOptionalInt64(2)
	dst.MutableOptionalNestedMessage().SetBb(3)
	dst.AddRepeatedInt32(4)

	src := NewTestAllTypes()
	src.SetOptionalInt64(20)
	src.AddRepeatedInt32(40)
	src.MutableOptionalForeignMessage().SetC(50)

	dst.MergeFrom(src)

	checks := []struct {
		name      string
		got, want any
	}{
		{"OptionalInt32", dst.OptionalInt32(), int32(1)},
		{"OptionalInt64", dst.OptionalInt64(), int64(20)},
		{"OptionalNestedMessage.Bb", dst.OptionalNestedMessage().Bb(), int32(3)},
		{"OptionalForeignMessage.C", dst.OptionalForeignMessage().C(), int32(50)},
		{"RepeatedInt32", dst.RepeatedInt32(), []int32{4, 40}},
	}
	for _, c := range checks {
		if diff := pretty.Compare(c.want, c.got); diff != "" {
			t.Errorf("TestMergeFrom(%s): -want/+got:\n%s", c.name, diff)
		}
	}

	// The source is not shared with the destination.
	src.MutableOptionalForeignMessage().SetC(500)
	if dst.OptionalForeignMessage().C() != 50 {
		t.Errorf("TestMergeFrom: destination shares a child with the source")
	}

	// Merging into itself doubles repeated fields.
	dst.MergeFrom(dst)
	if diff := pretty.Compare([]int32{4, 40, 4, 40}, dst.RepeatedInt32()); diff != "" {
		t.Errorf("TestMergeFrom(self): -want/+got:\n%s", diff)
	}
}

func TestSetRelease(t *testing.T) {
	msg := NewTestAllTypes()
	n := NewTestAllTypes_NestedMessage()
	n.SetBb(1)

	msg.SetOptionalNestedMessage(n)
	if !msg.HasOptionalNestedMessage() || msg.OptionalNestedMessage().XXXStruct() != n.XXXStruct() {
		t.Fatalf("TestSetRelease: SetOptionalNestedMessage() did not take ownership of the value")
	}

	got := msg.ReleaseOptionalNestedMessage()
	if got == nil || got.XXXStruct() != n.XXXStruct() {
		t.Fatalf("TestSetRelease: ReleaseOptionalNestedMessage() did not return the set value")
	}
	if msg.HasOptionalNestedMessage() {
		t.Errorf("TestSetRelease: field is still set after release")
	}
	if msg.ReleaseOptionalNestedMessage() != nil {
		t.Errorf("TestSetRelease: releasing an unset field should return nil")
	}

	msg.SetOptionalNestedMessage(n)
	msg.SetOptionalNestedMessage(nil)
	if msg.HasOptionalNestedMessage() {
		t.Errorf("TestSetRelease: SetOptionalNestedMessage(nil) did not clear the field")
	}
}

func TestSetDefaultInstanceRejected(t *testing.T) {
	ctx := context.Background()

	msg := NewTestAllTypes()
	def := NewTestAllTypes().OptionalNestedMessage()

	u := errors.RecoverUsage(func() { msg.SetOptionalNestedMessage(def) })
	if u == nil || u.Problem != errors.ProblemFrozen {
		t.Fatalf("TestSetDefaultInstanceRejected: SetOptionalNestedMessage(default): got %v, want a frozen usage error", u)
	}
	if msg.HasOptionalNestedMessage() {
		t.Errorf("TestSetDefaultInstanceRejected: field is set after a rejected Set")
	}

	fd := msg.XXXStruct().Map().ByName("optional_nested_message")
	ru := errors.RecoverUsage(func() {
		reflect.ValueOf(msg.XXXStruct()).SetAllocatedMessage(fd, reflect.ValueOf(def.XXXStruct()))
	})
	if ru == nil || ru.Problem != u.Problem {
		t.Errorf("TestSetDefaultInstanceRejected: SetAllocatedMessage(default): got %v, want problem %q", ru, u.Problem)
	}

	// The field still behaves as never set.
	msg.MutableOptionalNestedMessage().SetBb(1)
	b, err := msg.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestSetDefaultInstanceRejected: Marshal(): %s", err)
	}
	got := NewTestAllTypes()
	if err := got.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestSetDefaultInstanceRejected: Unmarshal(): %s", err)
	}
	if got.OptionalNestedMessage().Bb() != 1 {
		t.Errorf("TestSetDefaultInstanceRejected: OptionalNestedMessage().Bb(): got %d, want 1", got.OptionalNestedMessage().Bb())
	}
	if !DefaultTestAllTypes_NestedMessage().XXXStruct().IsFrozen() || DefaultTestAllTypes_NestedMessage().HasBb() {
		t.Errorf("TestSetDefaultInstanceRejected: the shared default instance was modified")
	}
}

func TestPackedUnpackedCompatible(t *testing.T) {
	ctx := context.Background()

	packed := NewTestPackedTypes()
	packed.AddPackedInt32(-1)
	packed.AddPackedInt32(2)
	packed.AddPackedSint64(-3)
	packed.AddPackedFixed32(4)
	packed.AddPackedDouble(5.5)
	packed.AddPackedBool(true)
	packed.AddPackedBool(false)
	packed.AddPackedEnum(ForeignEnum_FOREIGN_BAZ)

	unpacked := NewTestUnpackedTypes()
	unpacked.AddUnpackedInt32(-1)
	unpacked.AddUnpackedInt32(2)
	unpacked.AddUnpackedSint64(-3)
	unpacked.AddUnpackedFixed32(4)
	unpacked.AddUnpackedDouble(5.5)
	unpacked.AddUnpackedBool(true)
	unpacked.AddUnpackedBool(false)
	unpacked.AddUnpackedEnum(ForeignEnum_FOREIGN_BAZ)

	pb, err := packed.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestPackedUnpackedCompatible: packed Marshal(): %s", err)
	}
	ub, err := unpacked.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestPackedUnpackedCompatible: unpacked Marshal(): %s", err)
	}
	// Each form parses the other's encoding.
	gotUnpacked := NewTestUnpackedTypes()
	if err := gotUnpacked.Unmarshal(ctx, pb); err != nil {
		t.Fatalf("TestPackedUnpackedCompatible: Unmarshal(packed) into unpacked: %s", err)
	}
	if !gotUnpacked.Equal(unpacked) {
		t.Errorf("TestPackedUnpackedCompatible: packed encoding parsed into unpacked type differs")
	}

	gotPacked := NewTestPackedTypes()
	if err := gotPacked.Unmarshal(ctx, ub); err != nil {
		t.Fatalf("TestPackedUnpackedCompatible: Unmarshal(unpacked) into packed: %s", err)
	}
	if !gotPacked.Equal(packed) {
		t.Errorf("TestPackedUnpackedCompatible: unpacked encoding parsed into packed type differs")
	}
	if diff := pretty.Compare([]bool{true, false}, gotPacked.PackedBool()); diff != "" {
		t.Errorf("TestPackedUnpackedCompatible(PackedBool): -want/+got:\n%s", diff)
	}
}

func TestRequiredFields(t *testing.T) {
	ctx := context.Background()

	msg := NewTestRequiredForeign()
	msg.SetDummy(1)
	if !msg.IsInitialized() {
		t.Errorf("TestRequiredFields: unset optional_message should not make the message uninitialized")
	}

	msg.MutableOptionalMessage().SetA(1)
	if msg.IsInitialized() {
		t.Errorf("TestRequiredFields: IsInitialized() == true with b and c unset")
	}
	want := []string{"optional_message.b", "optional_message.c"}
	if diff := pretty.Compare(want, msg.XXXStruct().MissingRequired()); diff != "" {
		t.Errorf("TestRequiredFields(MissingRequired): -want/+got:\n%s", diff)
	}

	if _, err := msg.Marshal(ctx); err == nil {
		t.Errorf("TestRequiredFields: Marshal() of an uninitialized message: got err == nil")
	}
	b, err := msg.Marshal(ctx, structs.WithAllowPartial())
	if err != nil {
		t.Fatalf("TestRequiredFields: Marshal(WithAllowPartial()): %s", err)
	}

	if err := NewTestRequiredForeign().Unmarshal(ctx, b); err == nil {
		t.Errorf("TestRequiredFields: Unmarshal() of a partial message: got err == nil")
	}
	got := NewTestRequiredForeign()
	if err := got.Unmarshal(ctx, b, structs.WithAllowPartial()); err != nil {
		t.Fatalf("TestRequiredFields: Unmarshal(WithAllowPartial()): %s", err)
	}
	if !got.Equal(msg) {
		t.Errorf("TestRequiredFields: partial round trip differs")
	}

	msg.MutableOptionalMessage().SetB(2)
	msg.MutableOptionalMessage().SetC(3)
	msg.AddRepeatedMessage()
	want = []string{"repeated_message[0].a", "repeated_message[0].b", "repeated_message[0].c"}
	if diff := pretty.Compare(want, msg.XXXStruct().MissingRequired()); diff != "" {
		t.Errorf("TestRequiredFields(MissingRequired, repeated): -want/+got:\n%s", diff)
	}
	msg.ClearRepeatedMessage()
	if !msg.IsInitialized() {
		t.Errorf("TestRequiredFields: IsInitialized() == false with every required field set")
	}
}

func TestRecursion(t *testing.T) {
	ctx := context.Background()

	msg := NewTestRecursiveMessage()
	m := msg
	for i := int32(0); i < 5; i++ {
		m.SetI(i)
		m = m.MutableA()
	}

	b, err := msg.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestRecursion: Marshal(): %s", err)
	}

	got := NewTestRecursiveMessage()
	if err := got.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestRecursion: Unmarshal(): %s", err)
	}
	if v := got.A().A().A().I(); v != 3 {
		t.Errorf("TestRecursion: a.a.a.i: got %d, want 3", v)
	}

	if err := NewTestRecursiveMessage().Unmarshal(ctx, b, structs.WithRecursionLimit(2)); err == nil {
		t.Errorf("TestRecursion: Unmarshal() deeper than the recursion limit: got err == nil")
	}
}

func TestUnknownFields(t *testing.T) {
	ctx := context.Background()

	msg := NewTestAllTypes()
	msg.SetOptionalInt32(1)
	msg.SetOptionalString("unknown to ForeignMessage")
	b, err := msg.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestUnknownFields: Marshal(): %s", err)
	}

	// ForeignMessage.c shares field number 1 with optional_int32. Field 14 is unknown to it.
	f := NewForeignMessage()
	if err := f.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(): %s", err)
	}
	if f.C() != 1 {
		t.Errorf("TestUnknownFields: c: got %d, want 1", f.C())
	}
	if len(f.XXXStruct().Unknown()) == 0 {
		t.Fatalf("TestUnknownFields: unknown field was not kept")
	}

	// Unknown fields are written back out unchanged.
	fb, err := f.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestUnknownFields: Marshal(ForeignMessage): %s", err)
	}
	back := NewTestAllTypes()
	if err := back.Unmarshal(ctx, fb); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(TestAllTypes): %s", err)
	}
	if !back.Equal(msg) {
		t.Errorf("TestUnknownFields: unknown fields did not survive a round trip")
	}

	f = NewForeignMessage()
	if err := f.Unmarshal(ctx, b, structs.WithDiscardUnknown()); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(WithDiscardUnknown()): %s", err)
	}
	if len(f.XXXStruct().Unknown()) != 0 {
		t.Errorf("TestUnknownFields: WithDiscardUnknown() kept unknown fields")
	}

	// Clear drops unknown fields too.
	f = NewForeignMessage()
	if err := f.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(): %s", err)
	}
	f.Clear()
	if len(f.XXXStruct().Unknown()) != 0 || f.Size() != 0 {
		t.Errorf("TestUnknownFields: Clear() kept data")
	}
}

func TestEnumString(t *testing.T) {
	tests := []struct {
		got  string
		want string
	}{
		{TestAllTypes_NestedEnum_BAR.String(), "BAR"},
		{TestAllTypes_NestedEnum_NEG.String(), "NEG"},
		{TestAllTypes_NestedEnum(42).String(), "42"},
		{ForeignEnum_FOREIGN_FOO.String(), "FOREIGN_FOO"},
	}
	for _, test := range tests {
		if test.got != test.want {
			t.Errorf("TestEnumString: got %q, want %q", test.got, test.want)
		}
	}
}

func TestDefaultInstance(t *testing.T) {
	d := DefaultTestAllTypes()
	if d.XXXStruct() != DefaultTestAllTypes().XXXStruct() {
		t.Errorf("TestDefaultInstance: DefaultTestAllTypes() is not a singleton")
	}
	if !d.XXXStruct().IsFrozen() {
		t.Errorf("TestDefaultInstance: default instance is not frozen")
	}
	if d.DefaultString() != "hello" || string(d.DefaultBytes()) != "world" || d.DefaultFloat() != 51.5 {
		t.Errorf("TestDefaultInstance: default instance does not carry the field defaults")
	}
	if d.DefaultNestedEnum() != TestAllTypes_NestedEnum_BAR || d.DefaultForeignEnum() != ForeignEnum_FOREIGN_BAR {
		t.Errorf("TestDefaultInstance: enum defaults: got %v, %v", d.DefaultNestedEnum(), d.DefaultForeignEnum())
	}
}
