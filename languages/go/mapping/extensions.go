package mapping

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/internal/logging"
)

// extMu serializes extension registration across all Maps. A FieldDescr records the Map it
// extends, so registering one against two Maps at once must not interleave.
var extMu sync.Mutex

// RegisterExtension registers f as an extension of m. Registering the same FieldDescr
// twice is a no-op. Registering an invalid extension, an extension already registered
// against another type, or one whose number or name collides with an existing field
// or extension of m panics.
func (m *Map) RegisterExtension(f *FieldDescr) {
	m.Init()
	if f == nil {
		panic("mapping: RegisterExtension called with a nil FieldDescr")
	}
	if !f.IsExtension {
		panic(fmt.Sprintf("mapping: %s.%s: RegisterExtension requires IsExtension == true", m.fullName, f.Name))
	}
	if err := f.Validate(); err != nil {
		panic(fmt.Sprintf("mapping: extension of %s: %s", m.fullName, err))
	}
	if d, ok := m.byNum[f.Number]; ok {
		panic(fmt.Sprintf("mapping: extension %s uses field number %d, which %s declares", f.Name, f.Number, d.fullName))
	}

	extMu.Lock()
	defer extMu.Unlock()

	if f.owner != nil && f.owner != m {
		panic(fmt.Sprintf("mapping: extension %s is already registered against %s", f.fullName, f.owner.fullName))
	}

	old := m.exts.Load()
	if old.byNum[f.Number] == f {
		return // Already registered
	}
	fullName := qualify(f.Package, f.Name)
	if e, ok := old.byNum[f.Number]; ok {
		panic(fmt.Sprintf("mapping: extension %s uses field number %d, which extension %s already uses", fullName, f.Number, e.fullName))
	}
	if _, ok := old.byName[fullName]; ok {
		panic(fmt.Sprintf("mapping: duplicate extension name %s for %s", fullName, m.fullName))
	}

	// f is written before the snapshot holding it is published, so readers that find f
	// through the snapshot see these values.
	f.owner = m
	f.fullName = fullName
	f.index = len(old.ordered)

	n := &extensions{
		byNum:   maps.Clone(old.byNum),
		byName:  maps.Clone(old.byName),
		ordered: append(slices.Clone(old.ordered), f),
	}
	n.byNum[f.Number] = f
	n.byName[fullName] = f
	slices.SortFunc(n.ordered, func(a, b *FieldDescr) int { return int(a.Number) - int(b.Number) })
	m.exts.Store(n)

	logging.L().Debug(
		"registered extension",
		zap.String("extension", fullName),
		zap.String("extendee", m.fullName),
		zap.Int32("number", int32(f.Number)),
	)
}

// FindExtensionByNumber returns the extension of m with field number n. It returns nil
// if no such extension is registered against m.
func (m *Map) FindExtensionByNumber(n protowire.Number) *FieldDescr {
	m.Init()
	return m.exts.Load().byNum[n]
}

// FindExtensionByName returns the extension of m with the fully-qualified name. It returns
// nil if no such extension is registered against m.
func (m *Map) FindExtensionByName(fullName string) *FieldDescr {
	m.Init()
	return m.exts.Load().byName[fullName]
}

// Extensions returns the extensions registered against m, ordered by field number. The
// returned slice must not be modified.
func (m *Map) Extensions() []*FieldDescr {
	m.Init()
	return m.exts.Load().ordered
}

// Extends reports if f is an extension registered against m.
func (m *Map) Extends(f *FieldDescr) bool {
	m.Init()
	return f.IsExtension && m.exts.Load().byNum[f.Number] == f
}
