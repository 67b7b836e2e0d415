package testing

/*
This is in another package because generated files import reflect, so testing against
them inside reflect would be an import cycle.
*/

import (
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/reflect"
	"github.com/bearlytools/tagwire/languages/go/structs"
	"github.com/bearlytools/tagwire/testing/unittest"
)

// setAllFields sets every field of msg through the generated accessors, to the same values
// reflectionTester.setAll uses.
func setAllFields(msg *unittest.TestAllTypes) {
	msg.SetOptionalInt32(101)
	msg.SetOptionalInt64(102)
	msg.SetOptionalUint32(103)
	msg.SetOptionalUint64(104)
	msg.SetOptionalSint32(105)
	msg.SetOptionalSint64(106)
	msg.SetOptionalFixed32(107)
	msg.SetOptionalFixed64(108)
	msg.SetOptionalSfixed32(109)
	msg.SetOptionalSfixed64(110)
	msg.SetOptionalFloat(111)
	msg.SetOptionalDouble(112)
	msg.SetOptionalBool(true)
	msg.SetOptionalString("114")
	msg.SetOptionalBytes([]byte("115"))
	msg.MutableOptionalgroup().SetA(117)
	msg.MutableOptionalNestedMessage().SetBb(118)
	msg.MutableOptionalForeignMessage().SetC(119)
	msg.SetOptionalNestedEnum(unittest.TestAllTypes_NestedEnum_BAZ)
	msg.SetOptionalForeignEnum(unittest.ForeignEnum_FOREIGN_BAZ)

	msg.AddRepeatedInt32(201)
	msg.AddRepeatedInt64(202)
	msg.AddRepeatedUint32(203)
	msg.AddRepeatedUint64(204)
	msg.AddRepeatedSint32(205)
	msg.AddRepeatedSint64(206)
	msg.AddRepeatedFixed32(207)
	msg.AddRepeatedFixed64(208)
	msg.AddRepeatedSfixed32(209)
	msg.AddRepeatedSfixed64(210)
	msg.AddRepeatedFloat(211)
	msg.AddRepeatedDouble(212)
	msg.AddRepeatedBool(false)
	msg.AddRepeatedString("214")
	msg.AddRepeatedBytes([]byte("215"))
	msg.AddRepeatedgroup().SetA(217)
	msg.AddRepeatedNestedMessage().SetBb(218)
	msg.AddRepeatedForeignMessage().SetC(219)
	msg.AddRepeatedNestedEnum(unittest.TestAllTypes_NestedEnum_BAR)
	msg.AddRepeatedForeignEnum(unittest.ForeignEnum_FOREIGN_BAR)

	msg.AddRepeatedInt32(301)
	msg.AddRepeatedInt64(302)
	msg.AddRepeatedUint32(303)
	msg.AddRepeatedUint64(304)
	msg.AddRepeatedSint32(305)
	msg.AddRepeatedSint64(306)
	msg.AddRepeatedFixed32(307)
	msg.AddRepeatedFixed64(308)
	msg.AddRepeatedSfixed32(309)
	msg.AddRepeatedSfixed64(310)
	msg.AddRepeatedFloat(311)
	msg.AddRepeatedDouble(312)
	msg.AddRepeatedBool(true)
	msg.AddRepeatedString("314")
	msg.AddRepeatedBytes([]byte("315"))
	msg.AddRepeatedgroup().SetA(317)
	msg.AddRepeatedNestedMessage().SetBb(318)
	msg.AddRepeatedForeignMessage().SetC(319)
	msg.AddRepeatedNestedEnum(unittest.TestAllTypes_NestedEnum_BAZ)
	msg.AddRepeatedForeignEnum(unittest.ForeignEnum_FOREIGN_BAZ)

	msg.SetDefaultInt32(401)
	msg.SetDefaultInt64(402)
	msg.SetDefaultUint32(403)
	msg.SetDefaultUint64(404)
	msg.SetDefaultSint32(405)
	msg.SetDefaultSint64(406)
	msg.SetDefaultFixed32(407)
	msg.SetDefaultFixed64(408)
	msg.SetDefaultSfixed32(409)
	msg.SetDefaultSfixed64(410)
	msg.SetDefaultFloat(411)
	msg.SetDefaultDouble(412)
	msg.SetDefaultBool(false)
	msg.SetDefaultString("414")
	msg.SetDefaultBytes([]byte("415"))
	msg.SetDefaultNestedEnum(unittest.TestAllTypes_NestedEnum_FOO)
	msg.SetDefaultForeignEnum(unittest.ForeignEnum_FOREIGN_FOO)
}

// expectAllFieldsSet checks the values of setAllFields through the generated accessors.
func expectAllFieldsSet(t *testing.T, msg *unittest.TestAllTypes) {
	t.Helper()

	checks := []check{
		{"HasOptionalInt32", msg.HasOptionalInt32(), true},
		{"HasOptionalBytes", msg.HasOptionalBytes(), true},
		{"HasOptionalgroup", msg.HasOptionalgroup(), true},
		{"HasOptionalNestedMessage", msg.HasOptionalNestedMessage(), true},
		{"HasOptionalForeignMessage", msg.HasOptionalForeignMessage(), true},
		{"HasOptionalForeignEnum", msg.HasOptionalForeignEnum(), true},
		{"HasDefaultInt32", msg.HasDefaultInt32(), true},
		{"HasDefaultForeignEnum", msg.HasDefaultForeignEnum(), true},

		{"OptionalInt32", msg.OptionalInt32(), int32(101)},
		{"OptionalInt64", msg.OptionalInt64(), int64(102)},
		{"OptionalUint32", msg.OptionalUint32(), uint32(103)},
		{"OptionalUint64", msg.OptionalUint64(), uint64(104)},
		{"OptionalSint32", msg.OptionalSint32(), int32(105)},
		{"OptionalSint64", msg.OptionalSint64(), int64(106)},
		{"OptionalFixed32", msg.OptionalFixed32(), uint32(107)},
		{"OptionalFixed64", msg.OptionalFixed64(), uint64(108)},
		{"OptionalSfixed32", msg.OptionalSfixed32(), int32(109)},
		{"OptionalSfixed64", msg.OptionalSfixed64(), int64(110)},
		{"OptionalFloat", msg.OptionalFloat(), float32(111)},
		{"OptionalDouble", msg.OptionalDouble(), float64(112)},
		{"OptionalBool", msg.OptionalBool(), true},
		{"OptionalString", msg.OptionalString(), "114"},
		{"OptionalBytes", string(msg.OptionalBytes()), "115"},
		{"Optionalgroup.A", msg.Optionalgroup().A(), int32(117)},
		{"OptionalNestedMessage.Bb", msg.OptionalNestedMessage().Bb(), int32(118)},
		{"OptionalForeignMessage.C", msg.OptionalForeignMessage().C(), int32(119)},
		{"OptionalNestedEnum", msg.OptionalNestedEnum(), unittest.TestAllTypes_NestedEnum_BAZ},
		{"OptionalForeignEnum", msg.OptionalForeignEnum(), unittest.ForeignEnum_FOREIGN_BAZ},

		{"RepeatedInt32", msg.RepeatedInt32(), []int32{201, 301}},
		{"RepeatedInt64", msg.RepeatedInt64(), []int64{202, 302}},
		{"RepeatedUint32", msg.RepeatedUint32(), []uint32{203, 303}},
		{"RepeatedUint64", msg.RepeatedUint64(), []uint64{204, 304}},
		{"RepeatedSint32", msg.RepeatedSint32(), []int32{205, 305}},
		{"RepeatedSint64", msg.RepeatedSint64(), []int64{206, 306}},
		{"RepeatedFixed32", msg.RepeatedFixed32(), []uint32{207, 307}},
		{"RepeatedFixed64", msg.RepeatedFixed64(), []uint64{208, 308}},
		{"RepeatedSfixed32", msg.RepeatedSfixed32(), []int32{209, 309}},
		{"RepeatedSfixed64", msg.RepeatedSfixed64(), []int64{210, 310}},
		{"RepeatedFloat", msg.RepeatedFloat(), []float32{211, 311}},
		{"RepeatedDouble", msg.RepeatedDouble(), []float64{212, 312}},
		{"RepeatedBool", msg.RepeatedBool(), []bool{false, true}},
		{"RepeatedString", msg.RepeatedString(), []string{"214", "314"}},
		{"RepeatedBytesAt(0)", string(msg.RepeatedBytesAt(0)), "215"},
		{"RepeatedBytesAt(1)", string(msg.RepeatedBytesAt(1)), "315"},
		{"RepeatedgroupLen", msg.RepeatedgroupLen(), 2},
		{"RepeatedgroupAt(0).A", msg.RepeatedgroupAt(0).A(), int32(217)},
		{"RepeatedgroupAt(1).A", msg.RepeatedgroupAt(1).A(), int32(317)},
		{"RepeatedNestedMessageAt(0).Bb", msg.RepeatedNestedMessageAt(0).Bb(), int32(218)},
		{"RepeatedNestedMessageAt(1).Bb", msg.RepeatedNestedMessageAt(1).Bb(), int32(318)},
		{"RepeatedForeignMessageAt(0).C", msg.RepeatedForeignMessageAt(0).C(), int32(219)},
		{"RepeatedForeignMessageAt(1).C", msg.RepeatedForeignMessageAt(1).C(), int32(319)},
		{
			"RepeatedNestedEnum",
			msg.RepeatedNestedEnum(),
			[]unittest.TestAllTypes_NestedEnum{unittest.TestAllTypes_NestedEnum_BAR, unittest.TestAllTypes_NestedEnum_BAZ},
		},
		{
			"RepeatedForeignEnum",
			msg.RepeatedForeignEnum(),
			[]unittest.ForeignEnum{unittest.ForeignEnum_FOREIGN_BAR, unittest.ForeignEnum_FOREIGN_BAZ},
		},

		{"DefaultInt32", msg.DefaultInt32(), int32(401)},
		{"DefaultInt64", msg.DefaultInt64(), int64(402)},
		{"DefaultUint32", msg.DefaultUint32(), uint32(403)},
		{"DefaultUint64", msg.DefaultUint64(), uint64(404)},
		{"DefaultSint32", msg.DefaultSint32(), int32(405)},
		{"DefaultSint64", msg.DefaultSint64(), int64(406)},
		{"DefaultFixed32", msg.DefaultFixed32(), uint32(407)},
		{"DefaultFixed64", msg.DefaultFixed64(), uint64(408)},
		{"DefaultSfixed32", msg.DefaultSfixed32(), int32(409)},
		{"DefaultSfixed64", msg.DefaultSfixed64(), int64(410)},
		{"DefaultFloat", msg.DefaultFloat(), float32(411)},
		{"DefaultDouble", msg.DefaultDouble(), float64(412)},
		{"DefaultBool", msg.DefaultBool(), false},
		{"DefaultString", msg.DefaultString(), "414"},
		{"DefaultBytes", string(msg.DefaultBytes()), "415"},
		{"DefaultNestedEnum", msg.DefaultNestedEnum(), unittest.TestAllTypes_NestedEnum_FOO},
		{"DefaultForeignEnum", msg.DefaultForeignEnum(), unittest.ForeignEnum_FOREIGN_FOO},
	}
	runChecks(t, "expectAllFieldsSet", checks)
}

// expectRepeatedFieldsModified checks element 1 of every repeated field after
// reflectionTester.modifyRepeated, and that element 0 is untouched.
func expectRepeatedFieldsModified(t *testing.T, msg *unittest.TestAllTypes) {
	t.Helper()

	checks := []check{
		{"RepeatedInt32", msg.RepeatedInt32(), []int32{201, 501}},
		{"RepeatedInt64", msg.RepeatedInt64(), []int64{202, 502}},
		{"RepeatedUint32", msg.RepeatedUint32(), []uint32{203, 503}},
		{"RepeatedUint64", msg.RepeatedUint64(), []uint64{204, 504}},
		{"RepeatedSint32", msg.RepeatedSint32(), []int32{205, 505}},
		{"RepeatedSint64", msg.RepeatedSint64(), []int64{206, 506}},
		{"RepeatedFixed32", msg.RepeatedFixed32(), []uint32{207, 507}},
		{"RepeatedFixed64", msg.RepeatedFixed64(), []uint64{208, 508}},
		{"RepeatedSfixed32", msg.RepeatedSfixed32(), []int32{209, 509}},
		{"RepeatedSfixed64", msg.RepeatedSfixed64(), []int64{210, 510}},
		{"RepeatedFloat", msg.RepeatedFloat(), []float32{211, 511}},
		{"RepeatedDouble", msg.RepeatedDouble(), []float64{212, 512}},
		{"RepeatedBool", msg.RepeatedBool(), []bool{false, true}},
		{"RepeatedString", msg.RepeatedString(), []string{"214", "514"}},
		{"RepeatedBytesAt(1)", string(msg.RepeatedBytesAt(1)), "515"},
		{"RepeatedgroupAt(1).A", msg.RepeatedgroupAt(1).A(), int32(517)},
		{"RepeatedNestedMessageAt(1).Bb", msg.RepeatedNestedMessageAt(1).Bb(), int32(518)},
		{"RepeatedForeignMessageAt(1).C", msg.RepeatedForeignMessageAt(1).C(), int32(519)},
		{"RepeatedNestedEnumAt(1)", msg.RepeatedNestedEnumAt(1), unittest.TestAllTypes_NestedEnum_FOO},
		{"RepeatedForeignEnumAt(1)", msg.RepeatedForeignEnumAt(1), unittest.ForeignEnum_FOREIGN_FOO},
	}
	runChecks(t, "expectRepeatedFieldsModified", checks)
}

// expectAllExtensionsSet checks the extension values of reflectionTester.setAll directly
// against storage, without the reflection layer's checks.
func expectAllExtensionsSet(t *testing.T, msg *unittest.TestAllExtensions) {
	t.Helper()
	s := msg.XXXStruct()

	checks := []check{
		{"has optional_int32_extension", structs.Has(s, unittest.ExtOptionalInt32Extension), true},
		{"optional_int32_extension", structs.Get[int32](s, unittest.ExtOptionalInt32Extension), int32(101)},
		{"optional_sint64_extension", structs.Get[int64](s, unittest.ExtOptionalSint64Extension), int64(106)},
		{"optional_double_extension", structs.Get[float64](s, unittest.ExtOptionalDoubleExtension), float64(112)},
		{"optional_string_extension", structs.GetString(s, unittest.ExtOptionalStringExtension), "114"},
		{"optional_bytes_extension", string(structs.GetBytes(s, unittest.ExtOptionalBytesExtension)), "115"},
		{
			"optionalgroup_extension.a",
			unittest.XXXNewOptionalGroup_extensionFrom(structs.GetStruct(s, unittest.ExtOptionalgroupExtension)).A(),
			int32(117),
		},
		{"optional_nested_enum_extension", structs.Get[int32](s, unittest.ExtOptionalNestedEnumExtension), int32(3)},
		{"repeated_int32_extension", structs.List[int32](s, unittest.ExtRepeatedInt32Extension), []int32{201, 301}},
		{"repeated_string_extension", structs.StringList(s, unittest.ExtRepeatedStringExtension), []string{"214", "314"}},
		{"repeated_foreign_message_extension", structs.Len(s, unittest.ExtRepeatedForeignMessageExtension), 2},
		{
			"repeated_foreign_message_extension[1].c",
			unittest.XXXNewForeignMessageFrom(structs.GetRepeatedStruct(s, unittest.ExtRepeatedForeignMessageExtension, 1)).C(),
			int32(319),
		},
		{"default_int32_extension", structs.Get[int32](s, unittest.ExtDefaultInt32Extension), int32(401)},
		{"default_bool_extension", structs.Get[bool](s, unittest.ExtDefaultBoolExtension), false},
	}
	runChecks(t, "expectAllExtensionsSet", checks)
}

func TestDefaults(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	rt := newFieldTester(unittest.XXXMappingTestAllTypes)

	rt.expectClear(t, m)

	// Unset message fields read as the type's default instance.
	for name, want := range map[string]*mapping.Map{
		"optionalgroup":            unittest.XXXMappingTestAllTypes_OptionalGroup,
		"optional_nested_message":  unittest.XXXMappingTestAllTypes_NestedMessage,
		"optional_foreign_message": unittest.XXXMappingForeignMessage,
	} {
		got := m.GetMessage(rt.fd(name)).Struct()
		if got != structs.Default(want) {
			t.Errorf("TestDefaults(%s): GetMessage() did not return the default instance", name)
		}
		if !got.IsFrozen() {
			t.Errorf("TestDefaults(%s): default instance is not frozen", name)
		}
	}
	if msg.Optionalgroup().XXXStruct() != unittest.DefaultTestAllTypes_OptionalGroup().XXXStruct() {
		t.Errorf("TestDefaults: Optionalgroup() did not return the default instance")
	}
}

func TestAccessors(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	rt := newFieldTester(unittest.XXXMappingTestAllTypes)

	rt.setAll(m)

	// Check with both the generated accessors and reflection.
	expectAllFieldsSet(t, msg)
	rt.expectAllSet(t, m)

	rt.modifyRepeated(m)
	expectRepeatedFieldsModified(t, msg)
}

func TestGeneratedSettersMatchReflection(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	setAllFields(msg)

	newFieldTester(unittest.XXXMappingTestAllTypes).expectAllSet(t, msg.TagwireReflect())
}

func TestGetStringReference(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	rt := newFieldTester(unittest.XXXMappingTestAllTypes)
	opt := rt.fd("optional_string")
	rep := rt.fd("repeated_string")

	msg.SetOptionalString("foo")
	msg.AddRepeatedString("foo")

	// The stored string is returned, not scratch.
	var scratch string
	ref := m.GetStringReference(opt, &scratch)
	if ref == &scratch {
		t.Fatalf("TestGetStringReference: GetStringReference() returned scratch")
	}
	if *ref != "foo" {
		t.Errorf("TestGetStringReference: got %q, want %q", *ref, "foo")
	}
	if other := structs.StringRef(msg.XXXStruct(), opt, &scratch); ref != other {
		t.Errorf("TestGetStringReference: GetStringReference() did not point at the stored value")
	}

	ref = m.GetRepeatedStringReference(rep, 0, &scratch)
	if ref == &scratch {
		t.Fatalf("TestGetStringReference: GetRepeatedStringReference() returned scratch")
	}
	if *ref != "foo" {
		t.Errorf("TestGetStringReference(repeated): got %q, want %q", *ref, "foo")
	}
	if other := structs.RepeatedStringRef(msg.XXXStruct(), rep, 0); ref != other {
		t.Errorf("TestGetStringReference: GetRepeatedStringReference() did not point at the stored value")
	}

	// Bytes fields are copied into scratch.
	msg.SetOptionalBytes([]byte("bar"))
	ref = m.GetStringReference(rt.fd("optional_bytes"), &scratch)
	if ref != &scratch || scratch != "bar" {
		t.Errorf("TestGetStringReference(bytes): got %q, want scratch holding %q", *ref, "bar")
	}
}

func TestStringsAndBytesConvert(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	rt := newFieldTester(unittest.XXXMappingTestAllTypes)

	m.SetString(rt.fd("optional_bytes"), "abc")
	if got := string(msg.OptionalBytes()); got != "abc" {
		t.Errorf("TestStringsAndBytesConvert(SetString on bytes): got %q, want %q", got, "abc")
	}
	if got := m.GetString(rt.fd("optional_bytes")); got != "abc" {
		t.Errorf("TestStringsAndBytesConvert(GetString on bytes): got %q, want %q", got, "abc")
	}

	m.SetBytes(rt.fd("optional_string"), []byte("def"))
	if got := msg.OptionalString(); got != "def" {
		t.Errorf("TestStringsAndBytesConvert(SetBytes on string): got %q, want %q", got, "def")
	}
	if got := string(m.GetBytes(rt.fd("optional_string"))); got != "def" {
		t.Errorf("TestStringsAndBytesConvert(GetBytes on string): got %q, want %q", got, "def")
	}

	m.AddString(rt.fd("repeated_bytes"), "x")
	m.AddBytes(rt.fd("repeated_string"), []byte("y"))
	if diff := pretty.Compare([][]byte{[]byte("x")}, msg.RepeatedBytes()); diff != "" {
		t.Errorf("TestStringsAndBytesConvert(AddString on bytes): -want/+got:\n%s", diff)
	}
	if diff := pretty.Compare([]string{"y"}, msg.RepeatedString()); diff != "" {
		t.Errorf("TestStringsAndBytesConvert(AddBytes on string): -want/+got:\n%s", diff)
	}
}

func TestDefaultsAfterClear(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	rt := newFieldTester(unittest.XXXMappingTestAllTypes)

	setAllFields(msg)
	msg.Clear()

	rt.expectClear(t, m)

	// Message fields that were set keep their allocation, so they are no longer the
	// default instance.
	for name, def := range map[string]*mapping.Map{
		"optionalgroup":            unittest.XXXMappingTestAllTypes_OptionalGroup,
		"optional_nested_message":  unittest.XXXMappingTestAllTypes_NestedMessage,
		"optional_foreign_message": unittest.XXXMappingForeignMessage,
	} {
		if m.GetMessage(rt.fd(name)).Struct() == structs.Default(def) {
			t.Errorf("TestDefaultsAfterClear(%s): GetMessage() returned the default instance", name)
		}
	}
}

func TestExtensions(t *testing.T) {
	msg := unittest.NewTestAllExtensions()
	m := msg.TagwireReflect()
	rt := newExtensionTester(unittest.XXXMappingTestAllExtensions)

	rt.expectClear(t, m)

	rt.setAll(m)
	expectAllExtensionsSet(t, msg)
	rt.expectAllSet(t, m)

	rt.modifyRepeated(m)
	if got := m.GetRepeatedInt32(unittest.ExtRepeatedInt32Extension, 1); got != 501 {
		t.Errorf("TestExtensions: repeated_int32_extension[1]: got %d, want 501", got)
	}
	if got := m.GetRepeatedInt32(unittest.ExtRepeatedInt32Extension, 0); got != 201 {
		t.Errorf("TestExtensions: repeated_int32_extension[0]: got %d, want 201", got)
	}

	// Extensions survive a round trip through the wire.
	b, err := msg.Marshal(context.Background())
	if err != nil {
		t.Fatalf("TestExtensions: Marshal(): %s", err)
	}
	got := unittest.NewTestAllExtensions()
	if err := got.Unmarshal(context.Background(), b); err != nil {
		t.Fatalf("TestExtensions: Unmarshal(): %s", err)
	}
	if !got.Equal(msg) {
		t.Errorf("TestExtensions: round trip produced a different message")
	}
	if len(got.XXXStruct().Unknown()) != 0 {
		t.Errorf("TestExtensions: known extensions were kept as unknown fields")
	}
}

func TestFindKnownExtensionByNumber(t *testing.T) {
	m := unittest.NewTestAllExtensions().TagwireReflect()

	tests := []struct {
		desc string
		num  protowire.Number
		want *mapping.FieldDescr
	}{
		{desc: "optional_int32_extension", num: 1, want: unittest.ExtOptionalInt32Extension},
		{desc: "repeated_string_extension", num: 44, want: unittest.ExtRepeatedStringExtension},
		{desc: "not an extension", num: 62341},
	}

	for _, test := range tests {
		got := m.FindKnownExtensionByNumber(test.num)
		if got != test.want {
			t.Errorf("TestFindKnownExtensionByNumber(%s): got %v, want %v", test.desc, got, test.want)
		}
	}

	// Extensions of one message are not found on another.
	other := unittest.NewTestAllTypes().TagwireReflect()
	if got := other.FindKnownExtensionByNumber(1); got != nil {
		t.Errorf("TestFindKnownExtensionByNumber: found %s on TestAllTypes", got.FullName())
	}
}

func TestFindKnownExtensionByName(t *testing.T) {
	m := unittest.NewTestAllExtensions().TagwireReflect()

	tests := []struct {
		name string
		want *mapping.FieldDescr
	}{
		{name: "protobuf_unittest.optional_int32_extension", want: unittest.ExtOptionalInt32Extension},
		{name: "protobuf_unittest.repeated_string_extension", want: unittest.ExtRepeatedStringExtension},
		{name: "protobuf_unittest.no_such_ext"},
	}

	for _, test := range tests {
		if got := m.FindKnownExtensionByName(test.name); got != test.want {
			t.Errorf("TestFindKnownExtensionByName(%s): got %v, want %v", test.name, got, test.want)
		}
	}

	other := unittest.NewTestAllTypes().TagwireReflect()
	if got := other.FindKnownExtensionByName("protobuf_unittest.optional_int32_extension"); got != nil {
		t.Errorf("TestFindKnownExtensionByName: found %s on TestAllTypes", got.FullName())
	}
}

func TestNew(t *testing.T) {
	m, ok := reflect.New("protobuf_unittest.TestAllTypes")
	if !ok {
		t.Fatalf("TestNew: protobuf_unittest.TestAllTypes is not registered")
	}
	if m.Descriptor() != unittest.XXXMappingTestAllTypes {
		t.Errorf("TestNew: got descriptor %s", m.Descriptor().FullName())
	}
	if _, ok := reflect.New("protobuf_unittest.NoSuchMessage"); ok {
		t.Errorf("TestNew(protobuf_unittest.NoSuchMessage): got ok == true")
	}
}

func TestUsageErrors(t *testing.T) {
	msg := unittest.NewTestAllTypes()
	m := msg.TagwireReflect()
	all := unittest.XXXMappingTestAllTypes
	foreign := unittest.XXXMappingForeignMessage.ByName("c")

	tests := []struct {
		desc string
		f    func()
		want string
	}{
		{
			desc: "wrong type",
			f:    func() { m.GetInt32(all.ByName("optional_int64")) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.GetInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.optional_int64\n" +
				"  Problem     : Field is not the right type for this message:\n" +
				"    Expected  : int32\n" +
				"    Field type: int64",
		},
		{
			desc: "repeated field",
			f:    func() { m.GetInt32(all.ByName("repeated_int32")) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.GetInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.repeated_int32\n" +
				"  Problem     : " + errors.ProblemNotSingular,
		},
		{
			desc: "field of another message",
			f:    func() { m.GetInt32(foreign) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.GetInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.ForeignMessage.c\n" +
				"  Problem     : Field does not match message type.",
		},
		{
			desc: "HasField with field of another message",
			f:    func() { m.HasField(foreign) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.HasField\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.ForeignMessage.c\n" +
				"  Problem     : Field does not match message type.",
		},
		{
			desc: "FieldSize on singular field",
			f:    func() { m.FieldSize(all.ByName("optional_int32")) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.FieldSize\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.optional_int32\n" +
				"  Problem     : " + errors.ProblemNotRepeated,
		},
		{
			desc: "index out of range",
			f:    func() { m.GetRepeatedInt32(all.ByName("repeated_int32"), 0) },
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.GetRepeatedInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.repeated_int32\n" +
				"  Problem     : " + errors.ProblemIndex,
		},
		{
			desc: "modify default instance",
			f: func() {
				unittest.DefaultTestAllTypes().TagwireReflect().SetInt32(all.ByName("optional_int32"), 1)
			},
			want: "reflection usage error:\n" +
				"  Method      : reflect.Message.SetInt32\n" +
				"  Message type: protobuf_unittest.TestAllTypes\n" +
				"  Field       : protobuf_unittest.TestAllTypes.optional_int32\n" +
				"  Problem     : " + errors.ProblemFrozen,
		},
	}

	for _, test := range tests {
		u := errors.RecoverUsage(test.f)
		if u == nil {
			t.Errorf("TestUsageErrors(%s): got no usage error", test.desc)
			continue
		}
		if diff := pretty.Compare(test.want, u.Error()); diff != "" {
			t.Errorf("TestUsageErrors(%s): -want/+got:\n%s", test.desc, diff)
		}
	}

	// None of the failed calls changed the message.
	if msg.Size() != 0 {
		t.Errorf("TestUsageErrors: message was modified, Size() == %d", msg.Size())
	}
}
