package golang

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bearlytools/tagwire/languages/go/mapping"
)

// names derives Go identifiers from schema names. Nested types join their path with "_",
// so "Outer.Inner" becomes Outer_Inner.
type names struct {
	pkg string
}

func (n names) message(m *mapping.Map) string {
	return strings.ReplaceAll(m.Name, ".", "_")
}

func (n names) mapping(m *mapping.Map) string {
	return "XXXMapping" + n.message(m)
}

func (n names) enum(e *mapping.EnumDescr) string {
	name := strings.TrimPrefix(e.Name, n.pkg+".")
	return strings.ReplaceAll(name, ".", "_")
}

func (n names) enumVar(e *mapping.EnumDescr) string {
	return "XXXEnum" + n.enum(e)
}

func (n names) handle(msgGoName string, fd *mapping.FieldDescr) string {
	return "fd" + msgGoName + "_" + camel(fd.Name)
}

func (n names) extension(fd *mapping.FieldDescr) string {
	return "Ext" + camel(fd.Name)
}

// camel converts a snake_case schema name into an exported Go name.
func camel(s string) string {
	b := strings.Builder{}
	for _, part := range strings.Split(s, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
