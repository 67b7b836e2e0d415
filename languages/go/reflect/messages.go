package reflect

import (
	"github.com/bearlytools/tagwire/languages/go/errors"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
	"github.com/bearlytools/tagwire/languages/go/structs"
)

// GetMessage returns a singular message or group field. If the field never held a value
// this is the frozen default instance of the nested type. A field that was set and then
// cleared returns its retained, reset child instead.
func (m Message) GetMessage(fd *mapping.FieldDescr) Message {
	m.check("GetMessage", fd, field.LTMessage, singular)
	return ValueOf(structs.GetStruct(m.s, fd))
}

// MutableMessage returns a singular message or group field for modification, allocating
// it if needed, and marks it set.
func (m Message) MutableMessage(fd *mapping.FieldDescr) Message {
	m.check("MutableMessage", fd, field.LTMessage, singular)
	m.checkMutable("MutableMessage", fd)
	return ValueOf(structs.MutableStruct(m.s, fd))
}

// SetAllocatedMessage makes v the value of a singular message field; m takes ownership of
// v. Passing the zero Message clears the field.
func (m Message) SetAllocatedMessage(fd *mapping.FieldDescr, v Message) {
	m.check("SetAllocatedMessage", fd, field.LTMessage, singular)
	m.checkMutable("SetAllocatedMessage", fd)
	if !v.IsValid() {
		structs.SetStruct(m.s, fd, nil)
		return
	}
	if v.Descriptor() != fd.Message {
		u := m.usage("SetAllocatedMessage", fd, errors.ProblemMessageTypes)
		u.Expected = fd.Message.FullName()
		u.Actual = v.Descriptor().FullName()
		errors.Usage(u)
	}
	if v.s.IsFrozen() {
		m.fail("SetAllocatedMessage", fd, errors.ProblemFrozen)
	}
	structs.SetStruct(m.s, fd, v.s)
}

// ReleaseMessage removes a singular message field from m and returns it. If the field is
// not set it returns the zero Message.
func (m Message) ReleaseMessage(fd *mapping.FieldDescr) Message {
	m.check("ReleaseMessage", fd, field.LTMessage, singular)
	m.checkMutable("ReleaseMessage", fd)
	s := structs.ReleaseStruct(m.s, fd)
	if s == nil {
		return Message{}
	}
	return ValueOf(s)
}

// AddMessage appends a new element to a repeated message or group field and returns it.
func (m Message) AddMessage(fd *mapping.FieldDescr) Message {
	m.check("AddMessage", fd, field.LTMessage, repeated)
	m.checkMutable("AddMessage", fd)
	return ValueOf(structs.AddStruct(m.s, fd))
}

// GetRepeatedMessage returns element i of a repeated message or group field.
func (m Message) GetRepeatedMessage(fd *mapping.FieldDescr, i int) Message {
	m.check("GetRepeatedMessage", fd, field.LTMessage, repeated)
	m.checkIndex("GetRepeatedMessage", fd, i)
	return ValueOf(structs.GetRepeatedStruct(m.s, fd, i))
}

// MutableRepeatedMessage returns element i of a repeated message or group field for
// modification.
func (m Message) MutableRepeatedMessage(fd *mapping.FieldDescr, i int) Message {
	m.check("MutableRepeatedMessage", fd, field.LTMessage, repeated)
	m.checkMutable("MutableRepeatedMessage", fd)
	m.checkIndex("MutableRepeatedMessage", fd, i)
	return ValueOf(structs.GetRepeatedStruct(m.s, fd, i))
}
