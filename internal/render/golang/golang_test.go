package golang

import (
	"go/parser"
	"go/token"
	"math"
	"strings"
	"testing"

	"github.com/gostdlib/base/context"
	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/tagwire/internal/render"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
	"github.com/bearlytools/tagwire/testing/unittest/schema"
)

func TestRenderUnittest(t *testing.T) {
	ctx := context.Background()

	rendered, err := render.Render(ctx, []*render.File{schema.File()}, render.Go)
	if err != nil {
		t.Fatalf("TestRenderUnittest: got err == %s, want err == nil", err)
	}
	if len(rendered) != 1 {
		t.Fatalf("TestRenderUnittest: got %d files, want 1", len(rendered))
	}
	src := string(rendered[0].Native)

	if _, err := parser.ParseFile(token.NewFileSet(), "unittest.tw.go", src, parser.AllErrors); err != nil {
		t.Fatalf("TestRenderUnittest: output does not parse: %s", err)
	}

	want := []string{
		"package unittest",
		`"strconv"`,
		"func (x *TestAllTypes) OptionalInt32() int32 {",
		"return structs.Get[int32](x.s, fdTestAllTypes_OptionalInt32)",
		"func (x *TestAllTypes) OptionalNestedEnum() TestAllTypes_NestedEnum {",
		"func (x *TestAllTypes) RepeatedForeignEnum() []ForeignEnum {",
		"func (x *TestAllTypes) MutableOptionalgroup() *TestAllTypes_OptionalGroup {",
		"func (x *TestAllTypes) AddRepeatedNestedMessage() *TestAllTypes_NestedMessage {",
		"func (x *TestAllTypes) SetOptionalBytes(v []byte) {",
		"return structs.ConsumeField(d, x.s, fdTestAllTypes_OptionalInt32, typ, b)",
		"b = structs.AppendField(b, x.s, fdTestAllTypes_RepeatedString)",
		"n += structs.FieldSize(x.s, fdTestAllTypes_DefaultBytes)",
		"structs.MergeField(x.s, src.s, fdTestAllTypes_OptionalForeignMessage)",
		"Default: float32(51.5)",
		`Default: []byte("world")`,
		"Packed: true",
		"fdTestRecursiveMessage_A.Message = XXXMappingTestRecursiveMessage",
		"XXXMappingTestAllExtensions.RegisterExtension(ExtOptionalInt32Extension)",
		"runtime.RegisterEnum(XXXEnumForeignEnum)",
		"runtime.RegisterMessage(XXXMappingTestAllTypes)",
		"TestAllTypes_NestedEnum_NEG",
	}
	for _, w := range want {
		if !strings.Contains(src, w) {
			t.Errorf("TestRenderUnittest: output is missing %q", w)
		}
	}

	// Nothing in the schema has a NaN or Inf default.
	if strings.Contains(src, `"math"`) {
		t.Errorf("TestRenderUnittest: unused import \"math\" was not removed")
	}
	// A message without fields gets no switch and no accessor interface.
	if strings.Contains(src, "TestAllExtensionsAccessors") {
		t.Errorf("TestRenderUnittest: TestAllExtensions should not have an accessor interface")
	}
}

func TestRenderInvalidFile(t *testing.T) {
	other := &mapping.Map{Name: "Other", Package: "p"}

	tests := []struct {
		desc string
		file *render.File
	}{
		{
			desc: "no Go package",
			file: &render.File{Package: "p"},
		},
		{
			desc: "message from another file",
			file: &render.File{
				GoPackage: "p",
				Package:   "p",
				Messages: []*mapping.Map{
					{
						Name:    "M",
						Package: "p",
						Fields: []*mapping.FieldDescr{
							{Name: "o", Number: 1, Kind: field.KMessage, Cardinality: field.COptional, Message: other},
						},
					},
				},
			},
		},
		{
			desc: "message in another package",
			file: &render.File{
				GoPackage: "p",
				Package:   "p",
				Messages:  []*mapping.Map{{Name: "M", Package: "q"}},
			},
		},
		{
			desc: "extension without IsExtension",
			file: &render.File{
				GoPackage:  "p",
				Package:    "p",
				Messages:   []*mapping.Map{other},
				Extensions: []render.Extension{{Extendee: other, Field: &mapping.FieldDescr{Name: "x", Number: 10, Kind: field.KInt32, Cardinality: field.COptional}}},
			},
		},
		{
			desc: "extension without extendee",
			file: &render.File{
				GoPackage:  "p",
				Package:    "p",
				Extensions: []render.Extension{{Field: &mapping.FieldDescr{Name: "x", Number: 10, Kind: field.KInt32, Cardinality: field.COptional, IsExtension: true, Package: "p"}}},
			},
		},
	}

	for _, test := range tests {
		_, err := render.Render(context.Background(), []*render.File{test.file}, render.Go)
		if err == nil {
			t.Errorf("TestRenderInvalidFile(%s): got err == nil, want err != nil", test.desc)
		}
	}
}

func TestUnits(t *testing.T) {
	prefixes := []string{"scalar", "scalarlist", "string", "stringlist", "enum", "enumlist", "message", "messagelist"}
	for _, p := range prefixes {
		for _, unit := range []string{"decl", "inline"} {
			if templates.Lookup(p+"."+unit) == nil {
				t.Errorf("TestUnits: variant %q does not define %q", p, unit)
			}
		}
	}
	for _, unit := range Units {
		found := templates.Lookup("common."+unit) != nil
		for _, p := range prefixes {
			if templates.Lookup(p+"."+unit) != nil {
				found = true
			}
		}
		if !found {
			t.Errorf("TestUnits: unit %q has no template", unit)
		}
	}
}

func TestFieldGenerator(t *testing.T) {
	child := &mapping.Map{Name: "Outer.Child", Package: "p"}
	color := &mapping.EnumDescr{Name: "p.Color", Values: []mapping.EnumValue{{Name: "RED", Number: 1}}}
	n := names{pkg: "p"}

	tests := []struct {
		fd      *mapping.FieldDescr
		variant structs.Variant
		goType  string
		want    map[string]string
	}{
		{
			fd:      &mapping.FieldDescr{Name: "big_num", Number: 1, Kind: field.KSfixed64, Cardinality: field.COptional, Default: int64(-3)},
			variant: structs.VScalar,
			goType:  "int64",
			want: map[string]string{
				"member":     `var fdOuter_BigNum = &mapping.FieldDescr{Name: "big_num", Number: 1, Kind: field.KSfixed64, Cardinality: field.COptional, Default: int64(-3)}` + "\n",
				"clear":      "\tstructs.ClearField(x.s, fdOuter_BigNum)\n",
				"destructor": "",
				"outofline":  "",
			},
		},
		{
			fd:      &mapping.FieldDescr{Name: "blobs", Number: 2, Kind: field.KBytes, Cardinality: field.CRepeated},
			variant: structs.VStringList,
			goType:  "[]byte",
			want: map[string]string{
				"decl": "\tBlobs() [][]byte\n\tBlobsAt(i int) []byte\n\tSetBlobsAt(i int, v []byte)\n\tAddBlobs(v []byte)\n\tBlobsLen() int\n\tClearBlobs()\n",
			},
		},
		{
			fd:      &mapping.FieldDescr{Name: "color", Number: 3, Kind: field.KEnum, Cardinality: field.COptional, Enum: color},
			variant: structs.VEnum,
			goType:  "Color",
			want: map[string]string{
				"parse": "\tcase 3:\n\t\treturn structs.ConsumeField(d, x.s, fdOuter_Color, typ, b)\n",
			},
		},
		{
			fd:      &mapping.FieldDescr{Name: "kids", Number: 4, Kind: field.KMessage, Cardinality: field.CRepeated, Message: child},
			variant: structs.VMessageList,
			goType:  "Outer_Child",
			want: map[string]string{
				"serialize": "\tb = structs.AppendField(b, x.s, fdOuter_Kids)\n",
				"size":      "\tn += structs.FieldSize(x.s, fdOuter_Kids)\n",
				"merge":     "\tstructs.MergeField(x.s, src.s, fdOuter_Kids)\n",
			},
		},
	}

	for _, test := range tests {
		fg, err := newFieldGenerator(n, "Outer", test.fd)
		if err != nil {
			t.Errorf("TestFieldGenerator(%s): got err == %s, want err == nil", test.fd.Name, err)
			continue
		}
		if fg.Variant() != test.variant {
			t.Errorf("TestFieldGenerator(%s): got variant %v, want %v", test.fd.Name, fg.Variant(), test.variant)
		}
		if fg.GoType != test.goType {
			t.Errorf("TestFieldGenerator(%s): got GoType %q, want %q", test.fd.Name, fg.GoType, test.goType)
		}
		for _, unit := range Units {
			got, err := fg.fragment(unit)
			if err != nil {
				t.Errorf("TestFieldGenerator(%s): unit %s: got err == %s, want err == nil", test.fd.Name, unit, err)
				continue
			}
			want, ok := test.want[unit]
			if !ok {
				continue
			}
			if diff := pretty.Compare(want, got); diff != "" {
				t.Errorf("TestFieldGenerator(%s): unit %s: -want/+got:\n%s", test.fd.Name, unit, diff)
			}
		}
	}
}

func TestCamel(t *testing.T) {
	tests := map[string]string{
		"optional_int32":           "OptionalInt32",
		"optionalgroup":            "Optionalgroup",
		"a":                        "A",
		"double__underscore":       "DoubleUnderscore",
		"default_string_extension": "DefaultStringExtension",
	}
	for in, want := range tests {
		if got := camel(in); got != want {
			t.Errorf("TestCamel(%s): got %q, want %q", in, got, want)
		}
	}
}

func TestDefaultLiteral(t *testing.T) {
	tests := []struct {
		v       any
		want    string
		wantErr bool
	}{
		{v: int32(-1), want: "int32(-1)"},
		{v: uint64(18446744073709551615), want: "uint64(18446744073709551615)"},
		{v: float32(0.25), want: "float32(0.25)"},
		{v: float64(1e300), want: "float64(1e+300)"},
		{v: math.Inf(-1), want: "float64(math.Inf(-1))"},
		{v: float32(math.NaN()), want: "float32(math.NaN())"},
		{v: true, want: "true"},
		{v: "a\"b", want: `"a\"b"`},
		{v: []byte{0, 'x'}, want: `[]byte("\x00x")`},
		{v: 3, wantErr: true},
	}

	for _, test := range tests {
		got, err := defaultLiteral(test.v)
		switch {
		case err == nil && test.wantErr:
			t.Errorf("TestDefaultLiteral(%v): got err == nil, want err != nil", test.v)
			continue
		case err != nil && !test.wantErr:
			t.Errorf("TestDefaultLiteral(%v): got err == %s, want err == nil", test.v, err)
			continue
		case err != nil:
			continue
		}
		if got != test.want {
			t.Errorf("TestDefaultLiteral(%v): got %s, want %s", test.v, got, test.want)
		}
	}
}
