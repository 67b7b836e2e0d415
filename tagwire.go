// Package tagwire is the root of the tagwire message runtime. Most users work with
// generated message packages; this package holds the few process-wide settings and
// names the field kinds for callers that build schemas by hand.
package tagwire

import (
	"go.uber.org/zap"

	"github.com/bearlytools/tagwire/internal/logging"
	"github.com/bearlytools/tagwire/languages/go/field"
)

// Kind is the declared schema kind of a field.
type Kind = field.Kind

const (
	KUnknown  = field.KUnknown
	KInt32    = field.KInt32
	KInt64    = field.KInt64
	KUint32   = field.KUint32
	KUint64   = field.KUint64
	KSint32   = field.KSint32
	KSint64   = field.KSint64
	KFixed32  = field.KFixed32
	KFixed64  = field.KFixed64
	KSfixed32 = field.KSfixed32
	KSfixed64 = field.KSfixed64
	KBool     = field.KBool
	KFloat    = field.KFloat
	KDouble   = field.KDouble
	KString   = field.KString
	KBytes    = field.KBytes
	KEnum     = field.KEnum
	KMessage  = field.KMessage
	KGroup    = field.KGroup
)

// Cardinality is the multiplicity of a field.
type Cardinality = field.Cardinality

const (
	COptional = field.COptional
	CRequired = field.CRequired
	CRepeated = field.CRepeated
)

// SetLogger sets the logger used by tagwire packages. Registries log when a message type
// is first used and the code generator logs each file it renders. Nothing logs on the
// encode or decode paths. The default discards everything; passing nil restores it.
func SetLogger(l *zap.Logger) {
	logging.Set(l)
}
