// Package mapping holds the schema metadata that maps message field numbers to descriptions
// of the fields so that they can be stored, encoded and decoded properly. Generated packages
// declare their Map and FieldDescr values as package variables and call Init() during
// package initialization. After Init() a Map must be treated as immutable, with the exception
// of extension registration, which is safe for concurrent use.
package mapping

import (
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/field"
)

// EnumValue is a single named value of an enumeration.
type EnumValue struct {
	Name   string
	Number int32
}

// EnumDescr describes an enumeration type.
type EnumDescr struct {
	// Name is the fully-qualified name of the enum.
	Name string
	// Values are the named values in declaration order.
	Values []EnumValue
}

// ByNumber returns the first value declared with number n.
func (e *EnumDescr) ByNumber(n int32) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Number == n {
			return v, true
		}
	}
	return EnumValue{}, false
}

// ByName returns the value named s.
func (e *EnumDescr) ByName(s string) (EnumValue, bool) {
	for _, v := range e.Values {
		if v.Name == s {
			return v, true
		}
	}
	return EnumValue{}, false
}

// FieldDescr describes a field. FieldDescr values are declared by generated code or built
// by hand in tests.
type FieldDescr struct {
	// Name is the name of the field as declared in the schema.
	Name string
	// Number is the field number, used as the source of the wire tag.
	Number protowire.Number
	// Kind is the declared kind of the field.
	Kind field.Kind
	// Cardinality is singular (optional/required) or repeated.
	Cardinality field.Cardinality
	// Packed requests packed encoding. Only valid on repeated fields with a packable Kind.
	Packed bool
	// Default is the schema default for singular fields. It must hold the Go type of
	// the Kind's LogicalType (int32 for KEnum, string for KString, []byte for KBytes).
	// A nil Default is the zero value of the Kind.
	Default any
	// Enum describes the enumeration when Kind == KEnum. It is optional; values not
	// in Enum are still stored and round tripped.
	Enum *EnumDescr
	// Message is the nested type when Kind is KMessage or KGroup.
	Message *Map

	// IsExtension indicates the field is declared outside of its containing type.
	IsExtension bool
	// Package is the package the extension is declared in. It is used to build the
	// extension's full name and is ignored for declared fields.
	Package string

	fullName string
	// owner is the declaring Map for a declared field or the extended Map for an extension.
	owner *Map
	index int
}

// FullName returns the fully-qualified name of the field.
func (f *FieldDescr) FullName() string {
	return f.fullName
}

// ContainingType is the Map the field is declared in, or for extensions the Map being
// extended. It is nil until the field has been initialized through a Map.
func (f *FieldDescr) ContainingType() *Map {
	return f.owner
}

// Index is the position of the field in its containing Map's Fields, or the registration
// position for an extension.
func (f *FieldDescr) Index() int {
	return f.index
}

// IsRepeated reports if the field is repeated.
func (f *FieldDescr) IsRepeated() bool {
	return f.Cardinality == field.CRepeated
}

// IsRequired reports if the field is required.
func (f *FieldDescr) IsRequired() bool {
	return f.Cardinality == field.CRequired
}

// IsPacked reports if the field is written with packed encoding.
func (f *FieldDescr) IsPacked() bool {
	return f.Packed && f.IsRepeated() && f.Kind.Packable()
}

// Validate checks the field for consistency. It does not look at other fields.
func (f *FieldDescr) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("field number %d: has no name", f.Number)
	}
	if !f.Number.IsValid() {
		return fmt.Errorf(".%s: field number %d is not valid", f.Name, f.Number)
	}
	if !f.Kind.IsValid() {
		return fmt.Errorf(".%s: unsupported kind %v", f.Name, f.Kind)
	}
	switch f.Cardinality {
	case field.COptional, field.CRequired, field.CRepeated:
	default:
		return fmt.Errorf(".%s: unsupported cardinality %v", f.Name, f.Cardinality)
	}
	if f.Kind.IsComposite() && f.Message == nil {
		return fmt.Errorf(".%s: kind was %v, but had Message == nil", f.Name, f.Kind)
	}
	if !f.Kind.IsComposite() && f.Message != nil {
		return fmt.Errorf(".%s: kind was %v, but had Message set", f.Name, f.Kind)
	}
	if f.Packed && (!f.IsRepeated() || !f.Kind.Packable()) {
		return fmt.Errorf(".%s: packed is only valid for repeated scalar fields", f.Name)
	}
	if f.Default != nil {
		if f.IsRepeated() || f.Kind.IsComposite() {
			return fmt.Errorf(".%s: a default is only valid for singular scalar, string or bytes fields", f.Name)
		}
		if err := checkDefault(f.Kind, f.Default); err != nil {
			return fmt.Errorf(".%s: %w", f.Name, err)
		}
	}
	if f.IsExtension && f.Cardinality == field.CRequired {
		return fmt.Errorf(".%s: extensions cannot be required", f.Name)
	}
	return nil
}

func checkDefault(k field.Kind, v any) error {
	var ok bool
	switch k.Logical() {
	case field.LTInt32, field.LTEnum:
		_, ok = v.(int32)
	case field.LTInt64:
		_, ok = v.(int64)
	case field.LTUint32:
		_, ok = v.(uint32)
	case field.LTUint64:
		_, ok = v.(uint64)
	case field.LTFloat:
		_, ok = v.(float32)
	case field.LTDouble:
		_, ok = v.(float64)
	case field.LTBool:
		_, ok = v.(bool)
	case field.LTString:
		if k == field.KBytes {
			_, ok = v.([]byte)
		} else {
			_, ok = v.(string)
		}
	}
	if !ok {
		return fmt.Errorf("default value of type %T is not valid for kind %v", v, k)
	}
	return nil
}

// Map describes a message type: its fields in declaration order plus lookup indexes.
type Map struct {
	// Name of the message type.
	Name string
	// Package is the package the message type is in.
	Package string
	// Fields are the field descriptions for all declared fields, in declaration order.
	Fields []*FieldDescr

	once     sync.Once
	fullName string
	byName   map[string]*FieldDescr
	byNum    map[protowire.Number]*FieldDescr
	ordered  []*FieldDescr

	exts atomic.Pointer[extensions]
}

// extensions is an immutable snapshot of the extensions registered against a Map.
type extensions struct {
	byNum   map[protowire.Number]*FieldDescr
	byName  map[string]*FieldDescr
	ordered []*FieldDescr
}

var emptyExtensions = &extensions{
	byNum:  map[protowire.Number]*FieldDescr{},
	byName: map[string]*FieldDescr{},
}

// Init validates the Map and builds its indexes. It is safe to call multiple times and
// from multiple goroutines. A Map that fails validation panics: schemas are validated
// before they reach this layer, so a bad Map is a programming error.
func (m *Map) Init() {
	m.once.Do(func() {
		if err := m.init(); err != nil {
			panic(fmt.Sprintf("mapping: invalid message type %s: %s", m.Name, err))
		}
	})
}

func (m *Map) init() error {
	if m.Name == "" {
		return fmt.Errorf("message type has no name")
	}
	m.fullName = qualify(m.Package, m.Name)
	m.byName = make(map[string]*FieldDescr, len(m.Fields))
	m.byNum = make(map[protowire.Number]*FieldDescr, len(m.Fields))

	for i, f := range m.Fields {
		if f == nil {
			return fmt.Errorf("field at index %d is nil", i)
		}
		if f.IsExtension {
			return fmt.Errorf(".%s: extensions must be registered with RegisterExtension", f.Name)
		}
		if err := f.Validate(); err != nil {
			return err
		}
		if f.owner != nil && f.owner != m {
			return fmt.Errorf(".%s: field already belongs to %s", f.Name, f.owner.fullName)
		}
		if _, ok := m.byName[f.Name]; ok {
			return fmt.Errorf(".%s: duplicate field name", f.Name)
		}
		if dup, ok := m.byNum[f.Number]; ok {
			return fmt.Errorf(".%s: field number %d already used by %s", f.Name, f.Number, dup.Name)
		}
		f.owner = m
		f.index = i
		f.fullName = m.fullName + "." + f.Name
		m.byName[f.Name] = f
		m.byNum[f.Number] = f
	}
	m.ordered = slices.Clone(m.Fields)
	slices.SortFunc(m.ordered, func(a, b *FieldDescr) int { return int(a.Number) - int(b.Number) })

	if m.exts.Load() == nil {
		m.exts.Store(emptyExtensions)
	}
	return nil
}

// Validate checks the Map's fields without building any indexes.
func (m *Map) Validate() error {
	for _, f := range m.Fields {
		if err := f.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FullName returns the fully-qualified name of the message type.
func (m *Map) FullName() string {
	m.Init()
	return m.fullName
}

// ByName retrieves a declared field by name. It returns nil if not found.
func (m *Map) ByName(name string) *FieldDescr {
	m.Init()
	return m.byName[name]
}

// ByNumber retrieves a declared field by number. It returns nil if not found.
func (m *Map) ByNumber(n protowire.Number) *FieldDescr {
	m.Init()
	return m.byNum[n]
}

// FieldsByNumber returns the declared fields ordered by field number. The returned
// slice must not be modified.
func (m *Map) FieldsByNumber() []*FieldDescr {
	m.Init()
	return m.ordered
}

// Declares reports if f was declared in m. Extensions are never declared.
func (m *Map) Declares(f *FieldDescr) bool {
	m.Init()
	return !f.IsExtension && f.owner == m && f.index < len(m.Fields) && m.Fields[f.index] == f
}

func qualify(pkg, name string) string {
	if pkg == "" {
		return name
	}
	return pkg + "." + name
}
