// Package runtime holds the process-wide registry of message and enum types. Generated
// packages register their types from init().
package runtime

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

var (
	mu       sync.RWMutex
	messages = map[string]*mapping.Map{}
	enums    = map[string]*mapping.EnumDescr{}
)

// RegisterMessage registers m under its full name. Registering the same Map twice is a
// no-op; registering a different Map under a name already in use panics.
func RegisterMessage(m *mapping.Map) {
	name := m.FullName()

	mu.Lock()
	defer mu.Unlock()

	if old, ok := messages[name]; ok {
		if old == m {
			return
		}
		panic(fmt.Sprintf("cannot register message type %q twice", name))
	}
	messages[name] = m
	logging.L().Debug("registered message type", zap.String("type", name))
}

// FindMessage returns the message type registered as fullName, or nil.
func FindMessage(fullName string) *mapping.Map {
	mu.RLock()
	defer mu.RUnlock()
	return messages[fullName]
}

// RegisterEnum registers e under its name. The same rules as RegisterMessage apply.
func RegisterEnum(e *mapping.EnumDescr) {
	mu.Lock()
	defer mu.Unlock()

	if old, ok := enums[e.Name]; ok {
		if old == e {
			return
		}
		panic(fmt.Sprintf("cannot register enum %q twice", e.Name))
	}
	enums[e.Name] = e
}

// FindEnum returns the enum registered as fullName, or nil.
func FindEnum(fullName string) *mapping.EnumDescr {
	mu.RLock()
	defer mu.RUnlock()
	return enums[fullName]
}
