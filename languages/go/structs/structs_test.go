package structs

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

var (
	testColor = &mapping.EnumDescr{
		Name:   "test.Color",
		Values: []mapping.EnumValue{{Name: "RED", Number: 1}, {Name: "GREEN", Number: 2}},
	}

	testChild = &mapping.Map{
		Name:    "Child",
		Package: "test",
		Fields: []*mapping.FieldDescr{
			{Name: "id", Number: 1, Kind: field.KInt32, Cardinality: field.COptional},
			{Name: "req", Number: 2, Kind: field.KString, Cardinality: field.CRequired},
		},
	}

	testGroup = &mapping.Map{
		Name:    "Grp",
		Package: "test",
		Fields: []*mapping.FieldDescr{
			{Name: "a", Number: 17, Kind: field.KInt32, Cardinality: field.COptional},
		},
	}

	testMsg = &mapping.Map{
		Name:    "Msg",
		Package: "test",
		Fields: []*mapping.FieldDescr{
			{Name: "i32", Number: 1, Kind: field.KInt32, Cardinality: field.COptional, Default: int32(41)},
			{Name: "s64", Number: 2, Kind: field.KSint64, Cardinality: field.COptional},
			{Name: "f32", Number: 3, Kind: field.KFloat, Cardinality: field.COptional},
			{Name: "dbl", Number: 4, Kind: field.KDouble, Cardinality: field.COptional},
			{Name: "b", Number: 5, Kind: field.KBool, Cardinality: field.COptional},
			{Name: "str", Number: 6, Kind: field.KString, Cardinality: field.COptional, Default: "hello"},
			{Name: "byts", Number: 7, Kind: field.KBytes, Cardinality: field.COptional, Default: []byte("world")},
			{Name: "color", Number: 8, Kind: field.KEnum, Cardinality: field.COptional, Enum: testColor, Default: int32(2)},
			{Name: "child", Number: 9, Kind: field.KMessage, Cardinality: field.COptional, Message: testChild},
			{Name: "grp", Number: 10, Kind: field.KGroup, Cardinality: field.COptional, Message: testGroup},
			{Name: "r_i32", Number: 11, Kind: field.KInt32, Cardinality: field.CRepeated},
			{Name: "p_i32", Number: 12, Kind: field.KInt32, Cardinality: field.CRepeated, Packed: true},
			{Name: "r_str", Number: 13, Kind: field.KString, Cardinality: field.CRepeated},
			{Name: "r_bytes", Number: 14, Kind: field.KBytes, Cardinality: field.CRepeated},
			{Name: "r_color", Number: 15, Kind: field.KEnum, Cardinality: field.CRepeated, Enum: testColor},
			{Name: "r_child", Number: 16, Kind: field.KMessage, Cardinality: field.CRepeated, Message: testChild},
			{Name: "fx64", Number: 18, Kind: field.KFixed64, Cardinality: field.COptional},
		},
	}

	testExtInt64 = &mapping.FieldDescr{
		Name: "ext_i64", Number: 100, Kind: field.KInt64, Cardinality: field.COptional,
		IsExtension: true, Package: "test",
	}
	testExtStrs = &mapping.FieldDescr{
		Name: "ext_strs", Number: 101, Kind: field.KString, Cardinality: field.CRepeated,
		IsExtension: true, Package: "test",
	}

	testRec = &mapping.Map{
		Name:    "Rec",
		Package: "test",
		Fields: []*mapping.FieldDescr{
			{Name: "next", Number: 1, Kind: field.KMessage, Cardinality: field.COptional},
		},
	}
)

func init() {
	testRec.Fields[0].Message = testRec
	testMsg.RegisterExtension(testExtInt64)
	testMsg.RegisterExtension(testExtStrs)
}

func fd(m *mapping.Map, name string) *mapping.FieldDescr {
	f := m.ByName(name)
	if f == nil {
		panic("no field " + name)
	}
	return f
}

// populate sets every field of testMsg.
func populate(s *Struct) {
	Set(s, fd(testMsg, "i32"), int32(-7))
	Set(s, fd(testMsg, "s64"), int64(-300))
	Set(s, fd(testMsg, "f32"), float32(1.5))
	Set(s, fd(testMsg, "dbl"), 2.25)
	Set(s, fd(testMsg, "b"), true)
	SetString(s, fd(testMsg, "str"), "str")
	SetBytes(s, fd(testMsg, "byts"), []byte{0, 1, 2})
	Set(s, fd(testMsg, "color"), int32(1))

	child := MutableStruct(s, fd(testMsg, "child"))
	Set(child, fd(testChild, "id"), int32(9))
	SetString(child, fd(testChild, "req"), "r")

	Set(MutableStruct(s, fd(testMsg, "grp")), fd(testGroup, "a"), int32(17))

	Add(s, fd(testMsg, "r_i32"), int32(1))
	Add(s, fd(testMsg, "r_i32"), int32(-1))
	Add(s, fd(testMsg, "p_i32"), int32(3))
	Add(s, fd(testMsg, "p_i32"), int32(300))
	AddString(s, fd(testMsg, "r_str"), "a")
	AddString(s, fd(testMsg, "r_str"), "")
	AddBytes(s, fd(testMsg, "r_bytes"), []byte("xyz"))
	Add(s, fd(testMsg, "r_color"), int32(2))
	Add(s, fd(testMsg, "r_color"), int32(99)) // Not a declared value.
	for i := 0; i < 2; i++ {
		c := AddStruct(s, fd(testMsg, "r_child"))
		Set(c, fd(testChild, "id"), int32(i))
		SetString(c, fd(testChild, "req"), "x")
	}
	Set(s, fd(testMsg, "fx64"), uint64(1<<40))

	Set(s, testExtInt64, int64(1234))
	AddString(s, testExtStrs, "e1")
	AddString(s, testExtStrs, "e2")
}

func TestDefaults(t *testing.T) {
	s := New(testMsg)

	if got := Get[int32](s, fd(testMsg, "i32")); got != 41 {
		t.Errorf("TestDefaults: i32 = %d, want 41", got)
	}
	if got := GetString(s, fd(testMsg, "str")); got != "hello" {
		t.Errorf("TestDefaults: str = %q, want %q", got, "hello")
	}
	if got := GetBytes(s, fd(testMsg, "byts")); string(got) != "world" {
		t.Errorf("TestDefaults: byts = %q, want %q", got, "world")
	}
	if got := Get[int32](s, fd(testMsg, "color")); got != 2 {
		t.Errorf("TestDefaults: color = %d, want 2", got)
	}
	if got := Get[int64](s, testExtInt64); got != 0 {
		t.Errorf("TestDefaults: extension = %d, want 0", got)
	}
	for _, f := range testMsg.Fields {
		if !f.IsRepeated() && Has(s, f) {
			t.Errorf("TestDefaults: Has(%s) = true on a new Struct", f.Name)
		}
	}
	if got := s.Size(); got != 0 {
		t.Errorf("TestDefaults: Size() = %d, want 0", got)
	}
}

func TestSetClear(t *testing.T) {
	s := New(testMsg)
	i32 := fd(testMsg, "i32")

	Set(s, i32, int32(0))
	if !Has(s, i32) {
		t.Errorf("TestSetClear: Has() = false after setting the zero value")
	}
	ClearField(s, i32)
	if Has(s, i32) || Get[int32](s, i32) != 41 {
		t.Errorf("TestSetClear: after ClearField() got Has %v, value %d; want false, 41", Has(s, i32), Get[int32](s, i32))
	}

	rep := fd(testMsg, "r_i32")
	Add(s, rep, int32(1))
	Add(s, rep, int32(2))
	SetRepeated(s, rep, 1, int32(5))
	if diff := pretty.Compare([]int32{1, 5}, List[int32](s, rep)); diff != "" {
		t.Errorf("TestSetClear: -want/+got:\n%s", diff)
	}
	ClearField(s, rep)
	if Len(s, rep) != 0 {
		t.Errorf("TestSetClear: Len() = %d after ClearField()", Len(s, rep))
	}

	populate(s)
	s.Clear()
	if !s.Equal(New(testMsg)) {
		t.Errorf("TestSetClear: Clear() did not return the Struct to its defaults")
	}
}

func TestDefaultInstance(t *testing.T) {
	d := Default(testChild)
	if d != Default(testChild) {
		t.Fatalf("TestDefaultInstance: Default() returned different instances")
	}
	if !d.IsFrozen() {
		t.Errorf("TestDefaultInstance: default instance is not frozen")
	}

	s := New(testMsg)
	child := fd(testMsg, "child")
	if GetStruct(s, child) != d {
		t.Errorf("TestDefaultInstance: unset message field did not return the default instance")
	}

	Set(MutableStruct(s, child), fd(testChild, "id"), int32(3))
	ClearField(s, child)
	got := GetStruct(s, child)
	if got == d {
		t.Errorf("TestDefaultInstance: message field after set and clear returned the default instance")
	}
	if !got.Equal(d) {
		t.Errorf("TestDefaultInstance: cleared message field does not equal the default")
	}
	if Has(s, child) {
		t.Errorf("TestDefaultInstance: Has() = true after ClearField()")
	}

	u := errors.RecoverUsage(func() { Set(d, fd(testChild, "id"), int32(1)) })
	if u == nil || u.Problem != errors.ProblemFrozen {
		t.Errorf("TestDefaultInstance: modifying the default instance: got %v, want a frozen usage error", u)
	}
	if u := errors.RecoverUsage(func() { d.Clear() }); u == nil {
		t.Errorf("TestDefaultInstance: Clear() of the default instance did not panic")
	}
}

func TestDefaultConcurrent(t *testing.T) {
	m := &mapping.Map{
		Name:    "Concurrent",
		Package: "test",
		Fields: []*mapping.FieldDescr{
			{Name: "a", Number: 1, Kind: field.KInt32, Cardinality: field.COptional},
		},
	}

	const n = 32
	got := make([]*Struct, n)
	wg := sync.WaitGroup{}
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = Default(m)
		}()
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		if got[i] != got[0] {
			t.Fatalf("TestDefaultConcurrent: goroutine %d saw a different default instance", i)
		}
	}
}

func TestWireFormat(t *testing.T) {
	s := New(testMsg)
	Set(s, fd(testMsg, "i32"), int32(150))
	SetString(s, fd(testMsg, "str"), "hi")
	Set(MutableStruct(s, fd(testMsg, "grp")), fd(testGroup, "a"), int32(1))
	Add(s, fd(testMsg, "p_i32"), int32(1))
	Add(s, fd(testMsg, "p_i32"), int32(2))

	want := []byte{
		0x08, 0x96, 0x01, // i32
		0x32, 0x02, 'h', 'i', // str
		0x53, 0x88, 0x01, 0x01, 0x54, // grp
		0x62, 0x02, 0x01, 0x02, // p_i32
	}
	got, err := s.Marshal(context.Background())
	if err != nil {
		t.Fatalf("TestWireFormat: Marshal(): %s", err)
	}
	if diff := pretty.Compare(want, got); diff != "" {
		t.Errorf("TestWireFormat: -want/+got:\n%s", diff)
	}
	if s.Size() != len(want) {
		t.Errorf("TestWireFormat: Size() = %d, want %d", s.Size(), len(want))
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()

	s := New(testMsg)
	populate(s)

	b, err := s.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestRoundTrip: Marshal(): %s", err)
	}
	if len(b) != s.Size() {
		t.Errorf("TestRoundTrip: Size() = %d, but Marshal() wrote %d bytes", s.Size(), len(b))
	}

	got := New(testMsg)
	if err := got.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestRoundTrip: Unmarshal(): %s", err)
	}
	if !got.Equal(s) {
		t.Errorf("TestRoundTrip: parsed Struct does not equal the original")
	}
	if len(got.Unknown()) != 0 {
		t.Errorf("TestRoundTrip: parse produced unknown fields: %v", got.Unknown())
	}
	if diff := pretty.Compare([]int32{2, 99}, List[int32](got, fd(testMsg, "r_color"))); diff != "" {
		t.Errorf("TestRoundTrip: unknown enum values not kept: -want/+got:\n%s", diff)
	}
	if diff := pretty.Compare([]string{"e1", "e2"}, StringList(got, testExtStrs)); diff != "" {
		t.Errorf("TestRoundTrip: extension: -want/+got:\n%s", diff)
	}

	again, err := got.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestRoundTrip: second Marshal(): %s", err)
	}
	if !bytes.Equal(b, again) {
		t.Errorf("TestRoundTrip: re-serializing a parsed Struct changed the bytes")
	}
}

func TestPackedAndUnpackedAccepted(t *testing.T) {
	ctx := context.Background()

	// Unpacked encoding of the packed field 12 and packed encoding of the unpacked field 11.
	var b []byte
	b = protowire.AppendTag(b, 12, protowire.VarintType)
	b = protowire.AppendVarint(b, 7)
	b = protowire.AppendTag(b, 11, protowire.BytesType)
	b = protowire.AppendBytes(b, []byte{0x01, 0x02})

	s := New(testMsg)
	if err := s.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestPackedAndUnpackedAccepted: Unmarshal(): %s", err)
	}
	if diff := pretty.Compare([]int32{7}, List[int32](s, fd(testMsg, "p_i32"))); diff != "" {
		t.Errorf("TestPackedAndUnpackedAccepted(p_i32): -want/+got:\n%s", diff)
	}
	if diff := pretty.Compare([]int32{1, 2}, List[int32](s, fd(testMsg, "r_i32"))); diff != "" {
		t.Errorf("TestPackedAndUnpackedAccepted(r_i32): -want/+got:\n%s", diff)
	}
}

func TestUnknownFields(t *testing.T) {
	ctx := context.Background()

	var unknown []byte
	unknown = protowire.AppendTag(unknown, 99, protowire.BytesType)
	unknown = protowire.AppendString(unknown, "keep me")
	// A known number with the wrong wire type is kept as unknown too.
	unknown = protowire.AppendTag(unknown, 6, protowire.VarintType)
	unknown = protowire.AppendVarint(unknown, 1)

	var b []byte
	b = protowire.AppendTag(b, 1, protowire.VarintType)
	b = protowire.AppendVarint(b, 5)
	b = append(b, unknown...)

	s := New(testMsg)
	if err := s.Unmarshal(ctx, b); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(): %s", err)
	}
	if diff := pretty.Compare(unknown, s.Unknown()); diff != "" {
		t.Errorf("TestUnknownFields: unknown bytes: -want/+got:\n%s", diff)
	}
	if Has(s, fd(testMsg, "str")) {
		t.Errorf("TestUnknownFields: field with the wrong wire type was stored")
	}
	out, err := s.Marshal(ctx)
	if err != nil {
		t.Fatalf("TestUnknownFields: Marshal(): %s", err)
	}
	if !bytes.Equal(b, out) {
		t.Errorf("TestUnknownFields: unknown fields not re-emitted after known fields")
	}

	d := New(testMsg)
	if err := d.Unmarshal(ctx, b, WithDiscardUnknown()); err != nil {
		t.Fatalf("TestUnknownFields: Unmarshal(WithDiscardUnknown): %s", err)
	}
	if len(d.Unknown()) != 0 {
		t.Errorf("TestUnknownFields: WithDiscardUnknown() kept %d bytes", len(d.Unknown()))
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		b    []byte
	}{
		{name: "truncated varint", b: []byte{0x08, 0x80}},
		{name: "length past the end", b: []byte{0x32, 0x05, 'a'}},
		{name: "bad tag", b: []byte{0x00}},
		{name: "unmatched end group", b: []byte{0x54}},
		{name: "unterminated group", b: []byte{0x53, 0x88, 0x01, 0x01}},
	}

	for _, test := range tests {
		s := New(testMsg)
		if err := s.Unmarshal(context.Background(), test.b); err == nil {
			t.Errorf("TestParseErrors(%s): got err == nil, want err != nil", test.name)
		}
	}
}

func TestRecursionLimit(t *testing.T) {
	nest := func(depth int) []byte {
		var b []byte
		for i := 0; i < depth; i++ {
			n := protowire.AppendTag(nil, 1, protowire.BytesType)
			n = protowire.AppendBytes(n, b)
			b = n
		}
		return b
	}

	ctx := context.Background()
	if err := New(testRec).Unmarshal(ctx, nest(3), WithRecursionLimit(3)); err != nil {
		t.Errorf("TestRecursionLimit: depth at the limit: %s", err)
	}
	err := New(testRec).Unmarshal(ctx, nest(5), WithRecursionLimit(3))
	if err == nil || !strings.Contains(err.Error(), "recursion limit") {
		t.Errorf("TestRecursionLimit: depth over the limit: got %v, want a recursion error", err)
	}
}

func TestAppendNested(t *testing.T) {
	nest := func(depth int) []byte {
		var b []byte
		for i := 0; i < depth; i++ {
			n := protowire.AppendTag(nil, 1, protowire.BytesType)
			n = protowire.AppendBytes(n, b)
			b = n
		}
		return b
	}
	next := fd(testRec, "next")

	// Depths past 64 put the outer lengths above 127, which need a two byte varint.
	for _, depth := range []int{1, 2, 63, 64, 65, 200} {
		s := New(testRec)
		for c, i := s, 0; i < depth; i++ {
			c = MutableStruct(c, next)
		}

		got := s.Append(nil)
		if !bytes.Equal(got, nest(depth)) {
			t.Errorf("TestAppendNested(depth %d): Append() does not match the reference encoding", depth)
		}
		if len(got) != s.Size() {
			t.Errorf("TestAppendNested(depth %d): Size() == %d, but Append() wrote %d bytes", depth, s.Size(), len(got))
		}
	}
}

func TestRequired(t *testing.T) {
	ctx := context.Background()

	s := New(testMsg)
	Set(MutableStruct(s, fd(testMsg, "child")), fd(testChild, "id"), int32(1))
	AddStruct(s, fd(testMsg, "r_child"))
	SetString(AddStruct(s, fd(testMsg, "r_child")), fd(testChild, "req"), "ok")

	if s.IsInitialized() {
		t.Errorf("TestRequired: IsInitialized() = true, want false")
	}
	if diff := pretty.Compare([]string{"child.req", "r_child[0].req"}, s.MissingRequired()); diff != "" {
		t.Errorf("TestRequired: MissingRequired(): -want/+got:\n%s", diff)
	}

	if _, err := s.Marshal(ctx); err == nil {
		t.Errorf("TestRequired: Marshal() of an uninitialized Struct succeeded")
	}
	b, err := s.Marshal(ctx, WithAllowPartial())
	if err != nil {
		t.Fatalf("TestRequired: Marshal(WithAllowPartial): %s", err)
	}
	if err := New(testMsg).Unmarshal(ctx, b); err == nil {
		t.Errorf("TestRequired: Unmarshal() of an uninitialized message succeeded")
	}
	if err := New(testMsg).Unmarshal(ctx, b, WithAllowPartial()); err != nil {
		t.Errorf("TestRequired: Unmarshal(WithAllowPartial): %s", err)
	}
}

func TestMergeFrom(t *testing.T) {
	dst := New(testMsg)
	Set(dst, fd(testMsg, "i32"), int32(1))
	SetString(dst, fd(testMsg, "str"), "keep")
	Add(dst, fd(testMsg, "r_i32"), int32(1))
	Set(MutableStruct(dst, fd(testMsg, "child")), fd(testChild, "id"), int32(4))

	src := New(testMsg)
	Set(src, fd(testMsg, "i32"), int32(2))
	Add(src, fd(testMsg, "r_i32"), int32(2))
	SetString(MutableStruct(src, fd(testMsg, "child")), fd(testChild, "req"), "merged")
	Set(src, testExtInt64, int64(8))

	dst.MergeFrom(src)

	if got := Get[int32](dst, fd(testMsg, "i32")); got != 2 {
		t.Errorf("TestMergeFrom: i32 = %d, want 2", got)
	}
	if got := GetString(dst, fd(testMsg, "str")); got != "keep" {
		t.Errorf("TestMergeFrom: str = %q, want %q", got, "keep")
	}
	if diff := pretty.Compare([]int32{1, 2}, List[int32](dst, fd(testMsg, "r_i32"))); diff != "" {
		t.Errorf("TestMergeFrom: r_i32: -want/+got:\n%s", diff)
	}
	child := GetStruct(dst, fd(testMsg, "child"))
	if Get[int32](child, fd(testChild, "id")) != 4 || GetString(child, fd(testChild, "req")) != "merged" {
		t.Errorf("TestMergeFrom: child message was not merged recursively")
	}
	if got := Get[int64](dst, testExtInt64); got != 8 {
		t.Errorf("TestMergeFrom: extension = %d, want 8", got)
	}

	dst.MergeFrom(dst)
	if diff := pretty.Compare([]int32{1, 2, 1, 2}, List[int32](dst, fd(testMsg, "r_i32"))); diff != "" {
		t.Errorf("TestMergeFrom(self): -want/+got:\n%s", diff)
	}

	u := errors.RecoverUsage(func() { dst.MergeFrom(New(testChild)) })
	if u == nil || u.Problem != errors.ProblemMessageTypes {
		t.Errorf("TestMergeFrom: merging another type: got %v, want a usage error", u)
	}
}

func TestReleaseAndSetStruct(t *testing.T) {
	s := New(testMsg)
	child := fd(testMsg, "child")

	if ReleaseStruct(s, child) != nil {
		t.Errorf("TestReleaseAndSetStruct: ReleaseStruct() of an unset field returned non-nil")
	}

	c := New(testChild)
	SetStruct(s, child, c)
	if !Has(s, child) || GetStruct(s, child) != c {
		t.Errorf("TestReleaseAndSetStruct: SetStruct() did not store the given Struct")
	}
	if got := ReleaseStruct(s, child); got != c {
		t.Errorf("TestReleaseAndSetStruct: ReleaseStruct() did not return the stored Struct")
	}
	if Has(s, child) || GetStruct(s, child) != Default(testChild) {
		t.Errorf("TestReleaseAndSetStruct: field still set after ReleaseStruct()")
	}
}

func TestSetStructRejects(t *testing.T) {
	child := fd(testMsg, "child")

	tests := []struct {
		name    string
		v       *Struct
		problem string
	}{
		{"default instance", Default(testChild), errors.ProblemFrozen},
		{"wrong message type", New(testGroup), errors.ProblemMessageTypes},
	}

	for _, test := range tests {
		s := New(testMsg)
		u := errors.RecoverUsage(func() { SetStruct(s, child, test.v) })
		if u == nil {
			t.Errorf("TestSetStructRejects(%s): got no usage error", test.name)
			continue
		}
		if u.Problem != test.problem {
			t.Errorf("TestSetStructRejects(%s): got problem %q, want %q", test.name, u.Problem, test.problem)
		}
		if Has(s, child) || GetStruct(s, child) != Default(testChild) {
			t.Errorf("TestSetStructRejects(%s): field changed after a rejected SetStruct()", test.name)
		}
	}
}

func TestStringRef(t *testing.T) {
	s := New(testMsg)
	str := fd(testMsg, "str")

	var scratch string
	p := StringRef(s, str, &scratch)
	if p == &scratch {
		t.Errorf("TestStringRef: declared field used the scratch string")
	}
	if *p != "hello" {
		t.Errorf("TestStringRef: got %q, want %q", *p, "hello")
	}
	SetString(s, str, "changed")
	if *p != "changed" {
		t.Errorf("TestStringRef: reference does not point into storage")
	}

	m := &mapping.Map{Name: "RefExt", Package: "test"}
	ext := &mapping.FieldDescr{
		Name: "ref_ext", Number: 5, Kind: field.KString, Cardinality: field.COptional,
		Default: "dflt", IsExtension: true, Package: "test",
	}
	m.RegisterExtension(ext)
	e := New(m)
	if p := StringRef(e, ext, &scratch); p != &scratch || scratch != "dflt" {
		t.Errorf("TestStringRef: unset extension should use scratch holding the default")
	}
	SetString(e, ext, "set")
	if p := StringRef(e, ext, &scratch); p == &scratch || *p != "set" {
		t.Errorf("TestStringRef: set extension should reference storage")
	}
}

func TestRegistryOwnership(t *testing.T) {
	reg := RegistryFor(testMsg)
	if reg != RegistryFor(testMsg) {
		t.Errorf("TestRegistryOwnership: RegistryFor() built twice")
	}
	for _, f := range testMsg.Fields {
		if st := reg.Lookup(f); st == nil || st.Descriptor() != f {
			t.Errorf("TestRegistryOwnership: Lookup(%s) did not return its Strategy", f.Name)
		}
	}
	if reg.Lookup(testExtInt64) == nil {
		t.Errorf("TestRegistryOwnership: Lookup() of a registered extension returned nil")
	}

	foreign := fd(testChild, "id") // Index 0, like testMsg's i32.
	if reg.Lookup(foreign) != nil {
		t.Errorf("TestRegistryOwnership: Lookup() accepted a field of another type")
	}
	u := errors.RecoverUsage(func() { Get[int32](New(testMsg), foreign) })
	if u == nil || u.Problem != errors.ProblemWrongMessage {
		t.Errorf("TestRegistryOwnership: foreign field: got %v, want a usage error", u)
	}

	prev := protowire.Number(0)
	for _, st := range reg.Strategies() {
		if st.Descriptor().Number <= prev {
			t.Errorf("TestRegistryOwnership: Strategies() not in field number order")
		}
		prev = st.Descriptor().Number
	}
}

func TestVariantFor(t *testing.T) {
	tests := []struct {
		name string
		want Variant
	}{
		{"i32", VScalar}, {"str", VString}, {"byts", VString}, {"color", VEnum},
		{"child", VMessage}, {"grp", VMessage}, {"r_i32", VScalarList}, {"r_str", VStringList},
		{"r_color", VEnumList}, {"r_child", VMessageList},
	}
	for _, test := range tests {
		if got := VariantFor(fd(testMsg, test.name)); got != test.want {
			t.Errorf("TestVariantFor(%s): got %v, want %v", test.name, got, test.want)
		}
	}
}

type onlyReader struct {
	r io.Reader
}

func (o onlyReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}

func TestDelimited(t *testing.T) {
	ctx := context.Background()

	a := New(testMsg)
	populate(a)
	b := New(testMsg)
	Set(b, fd(testMsg, "i32"), int32(3))

	buf := &bytes.Buffer{}
	for _, s := range []*Struct{a, b} {
		if _, err := s.WriteDelimited(ctx, buf); err != nil {
			t.Fatalf("TestDelimited: WriteDelimited(): %s", err)
		}
	}

	r := onlyReader{buf}
	for i, want := range []*Struct{a, b} {
		got := New(testMsg)
		if err := got.ReadDelimited(ctx, r); err != nil {
			t.Fatalf("TestDelimited: ReadDelimited() message %d: %s", i, err)
		}
		if !got.Equal(want) {
			t.Errorf("TestDelimited: message %d did not round trip", i)
		}
	}
	if err := New(testMsg).ReadDelimited(ctx, r); err != io.EOF {
		t.Errorf("TestDelimited: reading past the last message: got %v, want io.EOF", err)
	}

	buf.Reset()
	if _, err := a.WriteDelimited(ctx, buf); err != nil {
		t.Fatalf("TestDelimited: WriteDelimited(): %s", err)
	}
	if err := New(testMsg).ReadDelimited(ctx, buf, WithMaxMessageSize(4)); err == nil {
		t.Errorf("TestDelimited: message over WithMaxMessageSize() was read")
	}
}
