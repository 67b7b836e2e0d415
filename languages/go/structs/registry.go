package structs

import (
	"maps"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// Registry holds the Strategy for every field of one message type. Declared fields are
// found by index in O(1); extension strategies are built the first time they are used.
// A Registry is safe for concurrent use.
type Registry struct {
	m          *mapping.Map
	strategies []*Strategy
	ordered    []*Strategy

	exts atomic.Pointer[map[*mapping.FieldDescr]*Strategy]
}

func newRegistry(m *mapping.Map) *Registry {
	m.Init()

	r := &Registry{
		m:          m,
		strategies: make([]*Strategy, len(m.Fields)),
		ordered:    make([]*Strategy, 0, len(m.Fields)),
	}
	for i, fd := range m.Fields {
		r.strategies[i] = newStrategy(fd)
	}
	for _, fd := range m.FieldsByNumber() {
		r.ordered = append(r.ordered, r.strategies[fd.Index()])
	}
	r.exts.Store(&map[*mapping.FieldDescr]*Strategy{})
	return r
}

// Map returns the message type the Registry is for.
func (r *Registry) Map() *mapping.Map {
	return r.m
}

// Strategies returns the strategies of the declared fields in field number order. The
// returned slice must not be modified.
func (r *Registry) Strategies() []*Strategy {
	return r.ordered
}

// Lookup returns the Strategy for fd, or nil if fd is neither declared in nor a registered
// extension of the Registry's type.
func (r *Registry) Lookup(fd *mapping.FieldDescr) *Strategy {
	if fd == nil {
		return nil
	}
	if !fd.IsExtension {
		// The owner check is a pointer compare, so a field with the same index from
		// another type is rejected here.
		if fd.ContainingType() != r.m || fd.Index() >= len(r.strategies) {
			return nil
		}
		st := r.strategies[fd.Index()]
		if st.fd != fd {
			return nil
		}
		return st
	}

	if !r.m.Extends(fd) {
		return nil
	}
	for {
		old := r.exts.Load()
		if st, ok := (*old)[fd]; ok {
			return st
		}
		n := maps.Clone(*old)
		st := newStrategy(fd)
		n[fd] = st
		if r.exts.CompareAndSwap(old, &n) {
			return st
		}
	}
}

// Get is Lookup, except that a field foreign to the type is a contract violation and panics
// with a *errors.UsageError.
func (r *Registry) Get(fd *mapping.FieldDescr) *Strategy {
	st := r.Lookup(fd)
	if st != nil {
		return st
	}
	u := &errors.UsageError{
		Method:      "structs.Registry.Get",
		MessageType: r.m.FullName(),
		Problem:     errors.ProblemWrongMessage,
	}
	if fd == nil {
		u.Problem = errors.ProblemNilDescriptor
	} else {
		u.Field = fd.FullName()
		if u.Field == "" {
			u.Field = fd.Name
		}
	}
	errors.Usage(u)
	return nil
}

// typeInfo is the process-wide metadata for one message type. It is built exactly once.
type typeInfo struct {
	once sync.Once
	reg  *Registry
	def  *Struct
}

var types atomic.Pointer[map[*mapping.Map]*typeInfo]

func init() {
	types.Store(&map[*mapping.Map]*typeInfo{})
}

func infoFor(m *mapping.Map) *typeInfo {
	var ti *typeInfo
	for {
		old := types.Load()
		if ti = (*old)[m]; ti != nil {
			break
		}
		n := maps.Clone(*old)
		n[m] = &typeInfo{}
		if types.CompareAndSwap(old, &n) {
			ti = n[m]
			break
		}
	}

	ti.once.Do(func() {
		ti.reg = newRegistry(m)
		ti.def = newStruct(ti.reg)
		ti.def.frozen = true
		logging.L().Debug(
			"built message type",
			zap.String("type", m.FullName()),
			zap.Int("fields", len(m.Fields)),
		)
	})
	return ti
}

// RegistryFor returns the Registry for m, building it on first use.
func RegistryFor(m *mapping.Map) *Registry {
	return infoFor(m).reg
}

// Default returns the frozen default instance of m. Every call for the same type returns
// the same instance. Any attempt to modify it panics.
func Default(m *mapping.Map) *Struct {
	return infoFor(m).def
}
