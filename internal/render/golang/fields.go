package golang

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

// Units are the code fragments a FieldGenerator emits. A variant's templates are named
// "<prefix>.<unit>"; a unit a variant does not define falls back to "common.<unit>".
var Units = []string{
	"member",
	"decl",
	"inline",
	"outofline",
	"clear",
	"merge",
	"init",
	"destructor",
	"parse",
	"serialize",
	"size",
}

// FieldGenerator emits the Go code for one field of a message.
type FieldGenerator struct {
	// Msg is the Go name of the containing message.
	Msg string
	// Name is the Go name of the field used in accessor names.
	Name string
	// Handle is the package variable holding the field's *mapping.FieldDescr.
	Handle string
	// GoType is the type accessors take and return. For messages it is the struct name
	// without the pointer.
	GoType string
	// Fn is the storage function suffix for string variants, "String" or "Bytes".
	Fn string
	// Number is the field number.
	Number int32
	// Init is the FieldDescr literal.
	Init string

	variant structs.Variant
	prefix  string
}

func newFieldGenerator(n names, msg string, fd *mapping.FieldDescr) (*FieldGenerator, error) {
	lit, err := initializer(n, fd)
	if err != nil {
		return nil, err
	}
	fg := &FieldGenerator{
		Msg:     msg,
		Name:    camel(fd.Name),
		Handle:  n.handle(msg, fd),
		Number:  int32(fd.Number),
		Init:    lit,
		variant: structs.VariantFor(fd),
	}
	fg.prefix = prefixFor(fg.variant)

	switch fg.variant {
	case structs.VScalar, structs.VScalarList:
		fg.GoType = scalarType(fd.Kind.Logical())
	case structs.VString, structs.VStringList:
		if fd.Kind == field.KBytes {
			fg.GoType, fg.Fn = "[]byte", "Bytes"
		} else {
			fg.GoType, fg.Fn = "string", "String"
		}
	case structs.VEnum, structs.VEnumList:
		fg.GoType = "int32"
		if fd.Enum != nil {
			fg.GoType = n.enum(fd.Enum)
		}
	case structs.VMessage, structs.VMessageList:
		fg.GoType = n.message(fd.Message)
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", fg.variant))
	}
	return fg, nil
}

func prefixFor(v structs.Variant) string {
	switch v {
	case structs.VScalar:
		return "scalar"
	case structs.VScalarList:
		return "scalarlist"
	case structs.VString:
		return "string"
	case structs.VStringList:
		return "stringlist"
	case structs.VEnum:
		return "enum"
	case structs.VEnumList:
		return "enumlist"
	case structs.VMessage:
		return "message"
	case structs.VMessageList:
		return "messagelist"
	}
	panic(fmt.Sprintf("bug: unhandled variant %v", v))
}

func scalarType(lt field.LogicalType) string {
	switch lt {
	case field.LTInt32:
		return "int32"
	case field.LTInt64:
		return "int64"
	case field.LTUint32:
		return "uint32"
	case field.LTUint64:
		return "uint64"
	case field.LTFloat:
		return "float32"
	case field.LTDouble:
		return "float64"
	case field.LTBool:
		return "bool"
	}
	panic(fmt.Sprintf("bug: %v is not a scalar logical type", lt))
}

// Variant is the storage variant the generator was chosen for.
func (fg *FieldGenerator) Variant() structs.Variant {
	return fg.variant
}

func (fg *FieldGenerator) fragment(unit string) (string, error) {
	name := fg.prefix + "." + unit
	if templates.Lookup(name) == nil {
		name = "common." + unit
	}
	b := strings.Builder{}
	if err := templates.ExecuteTemplate(&b, name, fg); err != nil {
		return "", err
	}
	return b.String(), nil
}

// Member is the package variable holding the field's descriptor.
func (fg *FieldGenerator) Member() (string, error) {
	return fg.fragment("member")
}

// Declarations are the accessor method signatures for the message's accessor interface.
func (fg *FieldGenerator) Declarations() (string, error) {
	return fg.fragment("decl")
}

// Inline are the accessors whose body is a single statement.
func (fg *FieldGenerator) Inline() (string, error) {
	return fg.fragment("inline")
}

// OutOfLine are the accessors that need more than one statement.
func (fg *FieldGenerator) OutOfLine() (string, error) {
	return fg.fragment("outofline")
}

// Clear is the statement in the message's Clear() that resets the field.
func (fg *FieldGenerator) Clear() (string, error) {
	return fg.fragment("clear")
}

// Merge is the statement in the message's MergeFrom() that merges the field.
func (fg *FieldGenerator) Merge() (string, error) {
	return fg.fragment("merge")
}

// Initializer is the FieldDescr literal, which carries the field's default.
func (fg *FieldGenerator) Initializer() (string, error) {
	return fg.fragment("init")
}

// Destructor is empty for every variant; storage is garbage collected.
func (fg *FieldGenerator) Destructor() (string, error) {
	return fg.fragment("destructor")
}

// Parse is the case arm of the message's decode switch.
func (fg *FieldGenerator) Parse() (string, error) {
	return fg.fragment("parse")
}

// Serialize is the statement that appends the field's encoding.
func (fg *FieldGenerator) Serialize() (string, error) {
	return fg.fragment("serialize")
}

// ByteSize is the statement that adds the field's encoded size.
func (fg *FieldGenerator) ByteSize() (string, error) {
	return fg.fragment("size")
}

// initializer renders fd as a *mapping.FieldDescr literal. Message is left out and set at
// init time.
func initializer(n names, fd *mapping.FieldDescr) (string, error) {
	kind, ok := kindIdents[fd.Kind]
	if !ok {
		return "", fmt.Errorf("unsupported kind %v", fd.Kind)
	}
	card, ok := cardIdents[fd.Cardinality]
	if !ok {
		return "", fmt.Errorf("unsupported cardinality %v", fd.Cardinality)
	}

	parts := []string{
		"Name: " + strconv.Quote(fd.Name),
		"Number: " + strconv.Itoa(int(fd.Number)),
		"Kind: field." + kind,
		"Cardinality: field." + card,
	}
	if fd.Packed {
		parts = append(parts, "Packed: true")
	}
	if fd.Default != nil {
		d, err := defaultLiteral(fd.Default)
		if err != nil {
			return "", err
		}
		parts = append(parts, "Default: "+d)
	}
	if fd.Enum != nil {
		parts = append(parts, "Enum: "+n.enumVar(fd.Enum))
	}
	if fd.IsExtension {
		parts = append(parts, "IsExtension: true", "Package: "+strconv.Quote(fd.Package))
	}
	return "&mapping.FieldDescr{" + strings.Join(parts, ", ") + "}", nil
}

func defaultLiteral(v any) (string, error) {
	switch v := v.(type) {
	case int32:
		return fmt.Sprintf("int32(%d)", v), nil
	case int64:
		return fmt.Sprintf("int64(%d)", v), nil
	case uint32:
		return fmt.Sprintf("uint32(%d)", v), nil
	case uint64:
		return fmt.Sprintf("uint64(%d)", v), nil
	case float32:
		return "float32(" + floatLiteral(float64(v), 32) + ")", nil
	case float64:
		return "float64(" + floatLiteral(v, 64) + ")", nil
	case bool:
		return strconv.FormatBool(v), nil
	case string:
		return strconv.Quote(v), nil
	case []byte:
		return "[]byte(" + strconv.Quote(string(v)) + ")", nil
	}
	return "", fmt.Errorf("default of type %T cannot be rendered", v)
}

func floatLiteral(v float64, bits int) string {
	switch {
	case math.IsNaN(v):
		return "math.NaN()"
	case math.IsInf(v, 1):
		return "math.Inf(1)"
	case math.IsInf(v, -1):
		return "math.Inf(-1)"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

var kindIdents = map[field.Kind]string{
	field.KInt32:    "KInt32",
	field.KInt64:    "KInt64",
	field.KUint32:   "KUint32",
	field.KUint64:   "KUint64",
	field.KSint32:   "KSint32",
	field.KSint64:   "KSint64",
	field.KFixed32:  "KFixed32",
	field.KFixed64:  "KFixed64",
	field.KSfixed32: "KSfixed32",
	field.KSfixed64: "KSfixed64",
	field.KBool:     "KBool",
	field.KFloat:    "KFloat",
	field.KDouble:   "KDouble",
	field.KString:   "KString",
	field.KBytes:    "KBytes",
	field.KEnum:     "KEnum",
	field.KMessage:  "KMessage",
	field.KGroup:    "KGroup",
}

var cardIdents = map[field.Cardinality]string{
	field.COptional: "COptional",
	field.CRequired: "CRequired",
	field.CRepeated: "CRepeated",
}
