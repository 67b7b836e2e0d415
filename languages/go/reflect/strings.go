package reflect

import (
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

// String and bytes fields share a logical type, so every method here accepts both kinds.
// Crossing kinds converts the value.

// GetString returns a singular string or bytes field.
func (m Message) GetString(fd *mapping.FieldDescr) string {
	m.check("GetString", fd, field.LTString, singular)
	if fd.Kind == field.KBytes {
		return string(structs.GetBytes(m.s, fd))
	}
	return structs.GetString(m.s, fd)
}

// SetString sets a singular string or bytes field.
func (m Message) SetString(fd *mapping.FieldDescr, v string) {
	m.check("SetString", fd, field.LTString, singular)
	m.checkMutable("SetString", fd)
	if fd.Kind == field.KBytes {
		structs.SetBytes(m.s, fd, []byte(v))
		return
	}
	structs.SetString(m.s, fd, v)
}

// AddString appends to a repeated string or bytes field.
func (m Message) AddString(fd *mapping.FieldDescr, v string) {
	m.check("AddString", fd, field.LTString, repeated)
	m.checkMutable("AddString", fd)
	if fd.Kind == field.KBytes {
		structs.AddBytes(m.s, fd, []byte(v))
		return
	}
	structs.AddString(m.s, fd, v)
}

// GetRepeatedString returns element i of a repeated string or bytes field.
func (m Message) GetRepeatedString(fd *mapping.FieldDescr, i int) string {
	m.check("GetRepeatedString", fd, field.LTString, repeated)
	m.checkIndex("GetRepeatedString", fd, i)
	if fd.Kind == field.KBytes {
		return string(structs.GetRepeatedBytes(m.s, fd, i))
	}
	return structs.GetRepeatedString(m.s, fd, i)
}

// SetRepeatedString replaces element i of a repeated string or bytes field.
func (m Message) SetRepeatedString(fd *mapping.FieldDescr, i int, v string) {
	m.check("SetRepeatedString", fd, field.LTString, repeated)
	m.checkMutable("SetRepeatedString", fd)
	m.checkIndex("SetRepeatedString", fd, i)
	if fd.Kind == field.KBytes {
		structs.SetRepeatedBytes(m.s, fd, i, []byte(v))
		return
	}
	structs.SetRepeatedString(m.s, fd, i, v)
}

// GetStringReference returns a pointer to the stored value of a singular string field
// without copying it. scratch is used, and returned, only when no stored string exists:
// for an extension that was never set and for bytes fields, which are copied into it.
// The returned pointer is only valid until the message is modified.
func (m Message) GetStringReference(fd *mapping.FieldDescr, scratch *string) *string {
	m.check("GetStringReference", fd, field.LTString, singular)
	if fd.Kind == field.KBytes {
		*scratch = string(structs.GetBytes(m.s, fd))
		return scratch
	}
	return structs.StringRef(m.s, fd, scratch)
}

// GetRepeatedStringReference is GetStringReference for element i of a repeated field.
func (m Message) GetRepeatedStringReference(fd *mapping.FieldDescr, i int, scratch *string) *string {
	m.check("GetRepeatedStringReference", fd, field.LTString, repeated)
	m.checkIndex("GetRepeatedStringReference", fd, i)
	if fd.Kind == field.KBytes {
		*scratch = string(structs.GetRepeatedBytes(m.s, fd, i))
		return scratch
	}
	return structs.RepeatedStringRef(m.s, fd, i)
}

// GetBytes returns a singular string or bytes field. For a bytes field the returned slice
// is the stored one and must not be modified.
func (m Message) GetBytes(fd *mapping.FieldDescr) []byte {
	m.check("GetBytes", fd, field.LTString, singular)
	if fd.Kind == field.KString {
		return []byte(structs.GetString(m.s, fd))
	}
	return structs.GetBytes(m.s, fd)
}

// SetBytes sets a singular string or bytes field to a copy of v.
func (m Message) SetBytes(fd *mapping.FieldDescr, v []byte) {
	m.check("SetBytes", fd, field.LTString, singular)
	m.checkMutable("SetBytes", fd)
	if fd.Kind == field.KString {
		structs.SetString(m.s, fd, string(v))
		return
	}
	structs.SetBytes(m.s, fd, v)
}

// AddBytes appends a copy of v to a repeated string or bytes field.
func (m Message) AddBytes(fd *mapping.FieldDescr, v []byte) {
	m.check("AddBytes", fd, field.LTString, repeated)
	m.checkMutable("AddBytes", fd)
	if fd.Kind == field.KString {
		structs.AddString(m.s, fd, string(v))
		return
	}
	structs.AddBytes(m.s, fd, v)
}

// GetRepeatedBytes returns element i of a repeated string or bytes field.
func (m Message) GetRepeatedBytes(fd *mapping.FieldDescr, i int) []byte {
	m.check("GetRepeatedBytes", fd, field.LTString, repeated)
	m.checkIndex("GetRepeatedBytes", fd, i)
	if fd.Kind == field.KString {
		return []byte(structs.GetRepeatedString(m.s, fd, i))
	}
	return structs.GetRepeatedBytes(m.s, fd, i)
}

// SetRepeatedBytes replaces element i of a repeated string or bytes field with a copy of v.
func (m Message) SetRepeatedBytes(fd *mapping.FieldDescr, i int, v []byte) {
	m.check("SetRepeatedBytes", fd, field.LTString, repeated)
	m.checkMutable("SetRepeatedBytes", fd)
	m.checkIndex("SetRepeatedBytes", fd, i)
	if fd.Kind == field.KString {
		structs.SetRepeatedString(m.s, fd, i, string(v))
		return
	}
	structs.SetRepeatedBytes(m.s, fd, i, v)
}
