// Package schema declares the protobuf_unittest types that package unittest is generated
// from. File() builds new descriptors on every call, so callers may initialize them freely.
package schema

import (
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/internal/render"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

const pkg = "protobuf_unittest"

// scalar describes one of the kinds that TestAllTypes carries as an optional, repeated and
// default field. The field numbers are base+i for the i'th entry.
type scalar struct {
	name string
	kind field.Kind
	def  any
}

var scalars = []scalar{
	{"int32", field.KInt32, int32(41)},
	{"int64", field.KInt64, int64(42)},
	{"uint32", field.KUint32, uint32(43)},
	{"uint64", field.KUint64, uint64(44)},
	{"sint32", field.KSint32, int32(-45)},
	{"sint64", field.KSint64, int64(46)},
	{"fixed32", field.KFixed32, uint32(47)},
	{"fixed64", field.KFixed64, uint64(48)},
	{"sfixed32", field.KSfixed32, int32(49)},
	{"sfixed64", field.KSfixed64, int64(-50)},
	{"float", field.KFloat, float32(51.5)},
	{"double", field.KDouble, float64(52e3)},
	{"bool", field.KBool, true},
	{"string", field.KString, "hello"},
	{"bytes", field.KBytes, []byte("world")},
}

const (
	optionalBase = 1
	repeatedBase = 31
	defaultBase  = 61
	packedBase   = 90
)

// types are the descriptors File() returns, kept by name for wiring the fields.
type types struct {
	foreignEnum *mapping.EnumDescr
	nestedEnum  *mapping.EnumDescr

	foreignMessage *mapping.Map
	nestedMessage  *mapping.Map
}

// File returns the protobuf_unittest types.
func File() *render.File {
	t := types{
		foreignEnum: &mapping.EnumDescr{
			Name: pkg + ".ForeignEnum",
			Values: []mapping.EnumValue{
				{Name: "FOREIGN_FOO", Number: 4},
				{Name: "FOREIGN_BAR", Number: 5},
				{Name: "FOREIGN_BAZ", Number: 6},
			},
		},
		nestedEnum: &mapping.EnumDescr{
			Name: pkg + ".TestAllTypes.NestedEnum",
			Values: []mapping.EnumValue{
				{Name: "FOO", Number: 1},
				{Name: "BAR", Number: 2},
				{Name: "BAZ", Number: 3},
				{Name: "NEG", Number: -1},
			},
		},
		foreignMessage: message("ForeignMessage", optional("c", 1, field.KInt32)),
		nestedMessage:  message("TestAllTypes.NestedMessage", optional("bb", 1, field.KInt32)),
	}

	optionalGroup := message("TestAllTypes.OptionalGroup", optional("a", 17, field.KInt32))
	repeatedGroup := message("TestAllTypes.RepeatedGroup", optional("a", 47, field.KInt32))
	allTypes := message("TestAllTypes", t.all("", optionalGroup, repeatedGroup, false)...)

	allExtensions := message("TestAllExtensions")
	optionalGroupExt := message("OptionalGroup_extension", optional("a", 17, field.KInt32))
	repeatedGroupExt := message("RepeatedGroup_extension", optional("a", 47, field.KInt32))

	req := message(
		"TestRequired",
		required("a", 1, field.KInt32),
		optional("dummy2", 2, field.KInt32),
		required("b", 3, field.KInt32),
		required("c", 33, field.KInt32),
	)
	requiredForeign := message(
		"TestRequiredForeign",
		withMessage(optional("optional_message", 1, field.KMessage), req),
		withMessage(repeated("repeated_message", 2, field.KMessage), req),
		optional("dummy", 3, field.KInt32),
	)

	recursive := message("TestRecursiveMessage")
	recursive.Fields = []*mapping.FieldDescr{
		withMessage(optional("a", 1, field.KMessage), recursive),
		optional("i", 2, field.KInt32),
	}

	f := &render.File{
		GoPackage: "unittest",
		Package:   pkg,
		Enums:     []*mapping.EnumDescr{t.foreignEnum, t.nestedEnum},
		Messages: []*mapping.Map{
			t.foreignMessage,
			t.nestedMessage,
			optionalGroup,
			repeatedGroup,
			allTypes,
			allExtensions,
			optionalGroupExt,
			repeatedGroupExt,
			packedTypes("TestPackedTypes", "packed", t.foreignEnum, true),
			packedTypes("TestUnpackedTypes", "unpacked", t.foreignEnum, false),
			req,
			requiredForeign,
			recursive,
		},
	}
	for _, fd := range t.all("_extension", optionalGroupExt, repeatedGroupExt, true) {
		fd.IsExtension = true
		fd.Package = pkg
		f.Extensions = append(f.Extensions, render.Extension{Extendee: allExtensions, Field: fd})
	}
	return f
}

// all returns the optional, repeated and default fields of TestAllTypes. The extension
// set uses the same numbers with suffix appended to each name.
func (t types) all(suffix string, optGroup, repGroup *mapping.Map, ext bool) []*mapping.FieldDescr {
	var out []*mapping.FieldDescr

	for i, s := range scalars {
		out = append(out, optional("optional_"+s.name+suffix, protowire.Number(optionalBase+i), s.kind))
	}
	out = append(
		out,
		withMessage(optional(group("optionalgroup", ext), 16, field.KGroup), optGroup),
		withMessage(optional("optional_nested_message"+suffix, 18, field.KMessage), t.nestedMessage),
		withMessage(optional("optional_foreign_message"+suffix, 19, field.KMessage), t.foreignMessage),
		withEnum(optional("optional_nested_enum"+suffix, 21, field.KEnum), t.nestedEnum),
		withEnum(optional("optional_foreign_enum"+suffix, 22, field.KEnum), t.foreignEnum),
	)

	for i, s := range scalars {
		out = append(out, repeated("repeated_"+s.name+suffix, protowire.Number(repeatedBase+i), s.kind))
	}
	out = append(
		out,
		withMessage(repeated(group("repeatedgroup", ext), 46, field.KGroup), repGroup),
		withMessage(repeated("repeated_nested_message"+suffix, 48, field.KMessage), t.nestedMessage),
		withMessage(repeated("repeated_foreign_message"+suffix, 49, field.KMessage), t.foreignMessage),
		withEnum(repeated("repeated_nested_enum"+suffix, 51, field.KEnum), t.nestedEnum),
		withEnum(repeated("repeated_foreign_enum"+suffix, 52, field.KEnum), t.foreignEnum),
	)

	for i, s := range scalars {
		fd := optional("default_"+s.name+suffix, protowire.Number(defaultBase+i), s.kind)
		fd.Default = s.def
		out = append(out, fd)
	}
	nested := withEnum(optional("default_nested_enum"+suffix, 81, field.KEnum), t.nestedEnum)
	nested.Default = int32(2)
	foreign := withEnum(optional("default_foreign_enum"+suffix, 82, field.KEnum), t.foreignEnum)
	foreign.Default = int32(5)
	return append(out, nested, foreign)
}

func group(name string, ext bool) string {
	if ext {
		return name + "_extension"
	}
	return name
}

// packedTypes returns a message with one repeated field per packable kind.
func packedTypes(name, prefix string, enum *mapping.EnumDescr, packed bool) *mapping.Map {
	m := message(name)
	i := 0
	for _, s := range scalars {
		if !s.kind.Packable() {
			continue
		}
		fd := repeated(prefix+"_"+s.name, protowire.Number(packedBase+i), s.kind)
		fd.Packed = packed
		m.Fields = append(m.Fields, fd)
		i++
	}
	fd := withEnum(repeated(prefix+"_enum", protowire.Number(packedBase+i), field.KEnum), enum)
	fd.Packed = packed
	m.Fields = append(m.Fields, fd)
	return m
}

func message(name string, fields ...*mapping.FieldDescr) *mapping.Map {
	return &mapping.Map{Name: name, Package: pkg, Fields: fields}
}

func optional(name string, num protowire.Number, k field.Kind) *mapping.FieldDescr {
	return &mapping.FieldDescr{Name: name, Number: num, Kind: k, Cardinality: field.COptional}
}

func required(name string, num protowire.Number, k field.Kind) *mapping.FieldDescr {
	return &mapping.FieldDescr{Name: name, Number: num, Kind: k, Cardinality: field.CRequired}
}

func repeated(name string, num protowire.Number, k field.Kind) *mapping.FieldDescr {
	return &mapping.FieldDescr{Name: name, Number: num, Kind: k, Cardinality: field.CRepeated}
}

func withMessage(fd *mapping.FieldDescr, m *mapping.Map) *mapping.FieldDescr {
	fd.Message = m
	return fd
}

func withEnum(fd *mapping.FieldDescr, e *mapping.EnumDescr) *mapping.FieldDescr {
	fd.Enum = e
	return fd
}
