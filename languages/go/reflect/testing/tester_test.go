package testing

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/reflect"
)

// scalarNames are the kinds TestAllTypes carries as optional_X, repeated_X and default_X,
// in field number order. The i'th entry is given the value base+i by the setters below.
var scalarNames = []string{
	"int32", "int64", "uint32", "uint64", "sint32", "sint64",
	"fixed32", "fixed64", "sfixed32", "sfixed64",
	"float", "double", "bool", "string", "bytes",
}

// Values written by setAll and modifyRepeated. Scalars use base+i.
const (
	optionalBase  = 101
	repeatedBase0 = 201
	repeatedBase1 = 301
	defaultBase   = 401
	modifiedBase  = 501
)

// valueFor converts v to the Go type of fd's logical type. Bytes are represented as a
// string so the result is comparable.
func valueFor(fd *mapping.FieldDescr, v int) any {
	switch fd.Kind.Logical() {
	case field.LTInt32:
		return int32(v)
	case field.LTInt64:
		return int64(v)
	case field.LTUint32:
		return uint32(v)
	case field.LTUint64:
		return uint64(v)
	case field.LTFloat:
		return float32(v)
	case field.LTDouble:
		return float64(v)
	case field.LTBool:
		return v/100%2 == 1
	case field.LTString:
		return strconv.Itoa(v)
	}
	panic(fmt.Sprintf("%s is not a scalar field", fd.Name))
}

// reflectionTester sets and checks every field of TestAllTypes, or every extension of
// TestAllExtensions, using only the reflect package.
type reflectionTester struct {
	name string
	// fd returns the field for a TestAllTypes field name such as "optional_int32".
	fd func(name string) *mapping.FieldDescr
}

func newFieldTester(m *mapping.Map) reflectionTester {
	return reflectionTester{
		name: m.FullName(),
		fd: func(name string) *mapping.FieldDescr {
			fd := m.ByName(name)
			if fd == nil {
				panic(fmt.Sprintf("%s has no field %q", m.FullName(), name))
			}
			return fd
		},
	}
}

func newExtensionTester(m *mapping.Map) reflectionTester {
	return reflectionTester{
		name: m.FullName(),
		fd: func(name string) *mapping.FieldDescr {
			fd := m.FindExtensionByName("protobuf_unittest." + name + "_extension")
			if fd == nil {
				panic(fmt.Sprintf("%s has no extension %q", m.FullName(), name))
			}
			return fd
		},
	}
}

// sub returns field name of the nested message m.
func sub(m reflect.Message, name string) *mapping.FieldDescr {
	return m.Descriptor().ByName(name)
}

func setScalar(m reflect.Message, fd *mapping.FieldDescr, v int) {
	switch x := valueFor(fd, v).(type) {
	case int32:
		m.SetInt32(fd, x)
	case int64:
		m.SetInt64(fd, x)
	case uint32:
		m.SetUint32(fd, x)
	case uint64:
		m.SetUint64(fd, x)
	case float32:
		m.SetFloat(fd, x)
	case float64:
		m.SetDouble(fd, x)
	case bool:
		m.SetBool(fd, x)
	case string:
		m.SetString(fd, x)
	}
}

func addScalar(m reflect.Message, fd *mapping.FieldDescr, v int) {
	switch x := valueFor(fd, v).(type) {
	case int32:
		m.AddInt32(fd, x)
	case int64:
		m.AddInt64(fd, x)
	case uint32:
		m.AddUint32(fd, x)
	case uint64:
		m.AddUint64(fd, x)
	case float32:
		m.AddFloat(fd, x)
	case float64:
		m.AddDouble(fd, x)
	case bool:
		m.AddBool(fd, x)
	case string:
		m.AddString(fd, x)
	}
}

func setRepeatedScalar(m reflect.Message, fd *mapping.FieldDescr, i, v int) {
	switch x := valueFor(fd, v).(type) {
	case int32:
		m.SetRepeatedInt32(fd, i, x)
	case int64:
		m.SetRepeatedInt64(fd, i, x)
	case uint32:
		m.SetRepeatedUint32(fd, i, x)
	case uint64:
		m.SetRepeatedUint64(fd, i, x)
	case float32:
		m.SetRepeatedFloat(fd, i, x)
	case float64:
		m.SetRepeatedDouble(fd, i, x)
	case bool:
		m.SetRepeatedBool(fd, i, x)
	case string:
		m.SetRepeatedString(fd, i, x)
	}
}

func getScalar(m reflect.Message, fd *mapping.FieldDescr) any {
	switch fd.Kind.Logical() {
	case field.LTInt32:
		return m.GetInt32(fd)
	case field.LTInt64:
		return m.GetInt64(fd)
	case field.LTUint32:
		return m.GetUint32(fd)
	case field.LTUint64:
		return m.GetUint64(fd)
	case field.LTFloat:
		return m.GetFloat(fd)
	case field.LTDouble:
		return m.GetDouble(fd)
	case field.LTBool:
		return m.GetBool(fd)
	case field.LTString:
		return m.GetString(fd)
	}
	panic(fmt.Sprintf("%s is not a scalar field", fd.Name))
}

func getRepeatedScalar(m reflect.Message, fd *mapping.FieldDescr, i int) any {
	switch fd.Kind.Logical() {
	case field.LTInt32:
		return m.GetRepeatedInt32(fd, i)
	case field.LTInt64:
		return m.GetRepeatedInt64(fd, i)
	case field.LTUint32:
		return m.GetRepeatedUint32(fd, i)
	case field.LTUint64:
		return m.GetRepeatedUint64(fd, i)
	case field.LTFloat:
		return m.GetRepeatedFloat(fd, i)
	case field.LTDouble:
		return m.GetRepeatedDouble(fd, i)
	case field.LTBool:
		return m.GetRepeatedBool(fd, i)
	case field.LTString:
		return m.GetRepeatedString(fd, i)
	}
	panic(fmt.Sprintf("%s is not a scalar field", fd.Name))
}

// setAll sets every field to a value that differs from its default.
func (rt reflectionTester) setAll(m reflect.Message) {
	for i, s := range scalarNames {
		setScalar(m, rt.fd("optional_"+s), optionalBase+i)
	}
	g := m.MutableMessage(rt.fd("optionalgroup"))
	g.SetInt32(sub(g, "a"), 117)
	n := m.MutableMessage(rt.fd("optional_nested_message"))
	n.SetInt32(sub(n, "bb"), 118)
	f := m.MutableMessage(rt.fd("optional_foreign_message"))
	f.SetInt32(sub(f, "c"), 119)
	m.SetEnum(rt.fd("optional_nested_enum"), 3)
	m.SetEnum(rt.fd("optional_foreign_enum"), 6)

	for _, base := range []int{repeatedBase0, repeatedBase1} {
		for i, s := range scalarNames {
			addScalar(m, rt.fd("repeated_"+s), base+i)
		}
		g := m.AddMessage(rt.fd("repeatedgroup"))
		g.SetInt32(sub(g, "a"), int32(base+16))
		n := m.AddMessage(rt.fd("repeated_nested_message"))
		n.SetInt32(sub(n, "bb"), int32(base+17))
		f := m.AddMessage(rt.fd("repeated_foreign_message"))
		f.SetInt32(sub(f, "c"), int32(base+18))
	}
	m.AddEnum(rt.fd("repeated_nested_enum"), 2)
	m.AddEnum(rt.fd("repeated_nested_enum"), 3)
	m.AddEnum(rt.fd("repeated_foreign_enum"), 5)
	m.AddEnum(rt.fd("repeated_foreign_enum"), 6)

	for i, s := range scalarNames {
		setScalar(m, rt.fd("default_"+s), defaultBase+i)
	}
	m.SetEnum(rt.fd("default_nested_enum"), 1)
	m.SetEnum(rt.fd("default_foreign_enum"), 4)
}

// modifyRepeated changes element 1 of every repeated field.
func (rt reflectionTester) modifyRepeated(m reflect.Message) {
	for i, s := range scalarNames {
		setRepeatedScalar(m, rt.fd("repeated_"+s), 1, modifiedBase+i)
	}
	g := m.MutableRepeatedMessage(rt.fd("repeatedgroup"), 1)
	g.SetInt32(sub(g, "a"), 517)
	n := m.MutableRepeatedMessage(rt.fd("repeated_nested_message"), 1)
	n.SetInt32(sub(n, "bb"), 518)
	f := m.MutableRepeatedMessage(rt.fd("repeated_foreign_message"), 1)
	f.SetInt32(sub(f, "c"), 519)
	m.SetRepeatedEnum(rt.fd("repeated_nested_enum"), 1, 1)
	m.SetRepeatedEnum(rt.fd("repeated_foreign_enum"), 1, 4)
}

type check struct {
	name      string
	got, want any
}

func runChecks(t *testing.T, desc string, checks []check) {
	t.Helper()
	for _, c := range checks {
		if diff := pretty.Compare(c.want, c.got); diff != "" {
			t.Errorf("%s: %s: -want/+got:\n%s", desc, c.name, diff)
		}
	}
}

func (rt reflectionTester) nested(m reflect.Message, name, field string) any {
	n := m.GetMessage(rt.fd(name))
	return n.GetInt32(sub(n, field))
}

func (rt reflectionTester) repeatedNested(m reflect.Message, name string, i int, field string) any {
	n := m.GetRepeatedMessage(rt.fd(name), i)
	return n.GetInt32(sub(n, field))
}

// expectAllSet checks the values written by setAll.
func (rt reflectionTester) expectAllSet(t *testing.T, m reflect.Message) {
	t.Helper()
	var checks []check

	for i, s := range scalarNames {
		fd := rt.fd("optional_" + s)
		checks = append(
			checks,
			check{"has " + fd.Name, m.HasField(fd), true},
			check{fd.Name, getScalar(m, fd), valueFor(fd, optionalBase+i)},
		)
	}
	for _, name := range []string{"optionalgroup", "optional_nested_message", "optional_foreign_message", "optional_nested_enum", "optional_foreign_enum"} {
		checks = append(checks, check{"has " + name, m.HasField(rt.fd(name)), true})
	}
	checks = append(
		checks,
		check{"optionalgroup.a", rt.nested(m, "optionalgroup", "a"), int32(117)},
		check{"optional_nested_message.bb", rt.nested(m, "optional_nested_message", "bb"), int32(118)},
		check{"optional_foreign_message.c", rt.nested(m, "optional_foreign_message", "c"), int32(119)},
		check{"optional_nested_enum", m.GetEnum(rt.fd("optional_nested_enum")), int32(3)},
		check{"optional_foreign_enum", m.GetEnum(rt.fd("optional_foreign_enum")), int32(6)},
	)

	for i, s := range scalarNames {
		fd := rt.fd("repeated_" + s)
		checks = append(
			checks,
			check{"size " + fd.Name, m.FieldSize(fd), 2},
			check{fd.Name + "[0]", getRepeatedScalar(m, fd, 0), valueFor(fd, repeatedBase0+i)},
			check{fd.Name + "[1]", getRepeatedScalar(m, fd, 1), valueFor(fd, repeatedBase1+i)},
		)
	}
	for _, name := range []string{"repeatedgroup", "repeated_nested_message", "repeated_foreign_message", "repeated_nested_enum", "repeated_foreign_enum"} {
		checks = append(checks, check{"size " + name, m.FieldSize(rt.fd(name)), 2})
	}
	checks = append(
		checks,
		check{"repeatedgroup[0].a", rt.repeatedNested(m, "repeatedgroup", 0, "a"), int32(217)},
		check{"repeatedgroup[1].a", rt.repeatedNested(m, "repeatedgroup", 1, "a"), int32(317)},
		check{"repeated_nested_message[0].bb", rt.repeatedNested(m, "repeated_nested_message", 0, "bb"), int32(218)},
		check{"repeated_nested_message[1].bb", rt.repeatedNested(m, "repeated_nested_message", 1, "bb"), int32(318)},
		check{"repeated_foreign_message[0].c", rt.repeatedNested(m, "repeated_foreign_message", 0, "c"), int32(219)},
		check{"repeated_foreign_message[1].c", rt.repeatedNested(m, "repeated_foreign_message", 1, "c"), int32(319)},
		check{"repeated_nested_enum[0]", m.GetRepeatedEnum(rt.fd("repeated_nested_enum"), 0), int32(2)},
		check{"repeated_nested_enum[1]", m.GetRepeatedEnum(rt.fd("repeated_nested_enum"), 1), int32(3)},
		check{"repeated_foreign_enum[0]", m.GetRepeatedEnum(rt.fd("repeated_foreign_enum"), 0), int32(5)},
		check{"repeated_foreign_enum[1]", m.GetRepeatedEnum(rt.fd("repeated_foreign_enum"), 1), int32(6)},
	)

	for i, s := range scalarNames {
		fd := rt.fd("default_" + s)
		checks = append(
			checks,
			check{"has " + fd.Name, m.HasField(fd), true},
			check{fd.Name, getScalar(m, fd), valueFor(fd, defaultBase+i)},
		)
	}
	checks = append(
		checks,
		check{"default_nested_enum", m.GetEnum(rt.fd("default_nested_enum")), int32(1)},
		check{"default_foreign_enum", m.GetEnum(rt.fd("default_foreign_enum")), int32(4)},
	)

	runChecks(t, rt.name+" expectAllSet", checks)
}

// defaults are the schema defaults of the default_X fields, in scalarNames order.
var defaults = []any{
	int32(41), int64(42), uint32(43), uint64(44), int32(-45), int64(46),
	uint32(47), uint64(48), int32(49), int64(-50),
	float32(51.5), float64(52e3), true, "hello", "world",
}

// zeros are the zero values of the optional_X fields, in scalarNames order.
var zeros = []any{
	int32(0), int64(0), uint32(0), uint64(0), int32(0), int64(0),
	uint32(0), uint64(0), int32(0), int64(0),
	float32(0), float64(0), false, "", "",
}

// expectClear checks that every field is unset and reads as its default.
func (rt reflectionTester) expectClear(t *testing.T, m reflect.Message) {
	t.Helper()
	var checks []check

	for i, s := range scalarNames {
		opt := rt.fd("optional_" + s)
		def := rt.fd("default_" + s)
		rep := rt.fd("repeated_" + s)
		checks = append(
			checks,
			check{"has " + opt.Name, m.HasField(opt), false},
			check{opt.Name, getScalar(m, opt), zeros[i]},
			check{"has " + def.Name, m.HasField(def), false},
			check{def.Name, getScalar(m, def), defaults[i]},
			check{"size " + rep.Name, m.FieldSize(rep), 0},
		)
	}
	for _, name := range []string{"optionalgroup", "optional_nested_message", "optional_foreign_message", "optional_nested_enum", "optional_foreign_enum", "default_nested_enum", "default_foreign_enum"} {
		checks = append(checks, check{"has " + name, m.HasField(rt.fd(name)), false})
	}
	for _, name := range []string{"repeatedgroup", "repeated_nested_message", "repeated_foreign_message", "repeated_nested_enum", "repeated_foreign_enum"} {
		checks = append(checks, check{"size " + name, m.FieldSize(rt.fd(name)), 0})
	}

	g := m.GetMessage(rt.fd("optionalgroup"))
	n := m.GetMessage(rt.fd("optional_nested_message"))
	f := m.GetMessage(rt.fd("optional_foreign_message"))
	checks = append(
		checks,
		check{"has optionalgroup.a", g.HasField(sub(g, "a")), false},
		check{"optionalgroup.a", g.GetInt32(sub(g, "a")), int32(0)},
		check{"has optional_nested_message.bb", n.HasField(sub(n, "bb")), false},
		check{"optional_nested_message.bb", n.GetInt32(sub(n, "bb")), int32(0)},
		check{"has optional_foreign_message.c", f.HasField(sub(f, "c")), false},
		check{"optional_foreign_message.c", f.GetInt32(sub(f, "c")), int32(0)},
		check{"optional_nested_enum", m.GetEnum(rt.fd("optional_nested_enum")), int32(0)},
		check{"optional_foreign_enum", m.GetEnum(rt.fd("optional_foreign_enum")), int32(0)},
		check{"default_nested_enum", m.GetEnum(rt.fd("default_nested_enum")), int32(2)},
		check{"default_foreign_enum", m.GetEnum(rt.fd("default_foreign_enum")), int32(5)},
	)

	runChecks(t, rt.name+" expectClear", checks)
}
