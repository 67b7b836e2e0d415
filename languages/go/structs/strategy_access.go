package structs

import (
	"bytes"
	"slices"

	"github.com/bearlytools/tagwire/languages/go/errors"
)

// These are the typed reads and writes for a Strategy. They trust that the caller picked the
// method matching the field's Variant; the reflection layer and generated code ensure that.

func (st *Strategy) getRaw(s *Struct) uint64 {
	sl := st.slot(s)
	if sl == nil {
		return st.defRaw
	}
	return sl.raw
}

func (st *Strategy) setRaw(s *Struct, v uint64) {
	sl := st.mutableSlot(s)
	sl.raw = v
	sl.has = true
}

func (st *Strategy) addRaw(s *Struct, v uint64) {
	sl := st.mutableSlot(s)
	sl.raws = append(sl.raws, v)
}

func (st *Strategy) rawAt(s *Struct, i int) uint64 {
	return st.slot(s).raws[i]
}

func (st *Strategy) setRawAt(s *Struct, i int, v uint64) {
	st.mutableSlot(s).raws[i] = v
}

func (st *Strategy) getString(s *Struct) string {
	sl := st.slot(s)
	if sl == nil {
		return st.defStr
	}
	return sl.str
}

func (st *Strategy) setString(s *Struct, v string) {
	sl := st.mutableSlot(s)
	sl.str = v
	sl.has = true
}

func (st *Strategy) addString(s *Struct, v string) {
	sl := st.mutableSlot(s)
	sl.strs = append(sl.strs, v)
}

func (st *Strategy) stringAt(s *Struct, i int) string {
	return st.slot(s).strs[i]
}

func (st *Strategy) setStringAt(s *Struct, i int, v string) {
	st.mutableSlot(s).strs[i] = v
}

// stringRef returns a pointer to the stored string. Only an extension that has never been
// touched has no storage; its default is copied into scratch.
func (st *Strategy) stringRef(s *Struct, scratch *string) *string {
	sl := st.slot(s)
	if sl == nil {
		*scratch = st.defStr
		return scratch
	}
	return &sl.str
}

func (st *Strategy) stringRefAt(s *Struct, i int) *string {
	return &st.slot(s).strs[i]
}

func (st *Strategy) getBytes(s *Struct) []byte {
	sl := st.slot(s)
	if sl == nil {
		return bytes.Clone(st.defBytes)
	}
	return sl.byts
}

func (st *Strategy) setBytes(s *Struct, v []byte) {
	sl := st.mutableSlot(s)
	sl.byts = bytes.Clone(v)
	sl.has = true
}

func (st *Strategy) addBytes(s *Struct, v []byte) {
	sl := st.mutableSlot(s)
	sl.bytss = append(sl.bytss, bytes.Clone(v))
}

func (st *Strategy) bytesAt(s *Struct, i int) []byte {
	return st.slot(s).bytss[i]
}

func (st *Strategy) setBytesAt(s *Struct, i int, v []byte) {
	st.mutableSlot(s).bytss[i] = bytes.Clone(v)
}

// getStruct returns the child message. A slot that never held a child reads as the
// nested type's default instance; a child that was set and then cleared is returned as is.
func (st *Strategy) getStruct(s *Struct) *Struct {
	sl := st.slot(s)
	if sl == nil || sl.msg == nil {
		return Default(st.fd.Message)
	}
	return sl.msg
}

func (st *Strategy) mutableStruct(s *Struct) *Struct {
	sl := st.mutableSlot(s)
	if sl.msg == nil {
		sl.msg = New(st.fd.Message)
	}
	sl.has = true
	return sl.msg
}

// setStruct stores v as the child. v must be a mutable instance of the field's nested type;
// a default instance stored here would be handed out by later Mutable calls.
func (st *Strategy) setStruct(s *Struct, v *Struct) {
	if v == nil {
		st.clear(s)
		return
	}
	s.checkMutable()
	if v.mapping != st.fd.Message {
		errors.Usage(&errors.UsageError{
			Method:      "structs.SetStruct",
			MessageType: s.mapping.FullName(),
			Field:       st.fd.FullName(),
			Problem:     errors.ProblemMessageTypes,
			Expected:    st.fd.Message.FullName(),
			Actual:      v.mapping.FullName(),
		})
	}
	if v.frozen {
		errors.Usage(&errors.UsageError{
			Method:      "structs.SetStruct",
			MessageType: s.mapping.FullName(),
			Field:       st.fd.FullName(),
			Problem:     errors.ProblemFrozen,
		})
	}
	sl := st.mutableSlot(s)
	sl.msg = v
	sl.has = true
}

func (st *Strategy) releaseStruct(s *Struct) *Struct {
	s.checkMutable()
	sl := st.slot(s)
	if sl == nil || !sl.has {
		return nil
	}
	m := sl.msg
	sl.msg = nil
	sl.has = false
	return m
}

func (st *Strategy) addStruct(s *Struct) *Struct {
	sl := st.mutableSlot(s)
	c := New(st.fd.Message)
	sl.msgs = append(sl.msgs, c)
	return c
}

func (st *Strategy) structAt(s *Struct, i int) *Struct {
	return st.slot(s).msgs[i]
}

// lists return copies so callers cannot alias storage.

func (st *Strategy) rawList(s *Struct) []uint64 {
	if sl := st.slot(s); sl != nil {
		return slices.Clone(sl.raws)
	}
	return nil
}

func (st *Strategy) stringList(s *Struct) []string {
	if sl := st.slot(s); sl != nil {
		return slices.Clone(sl.strs)
	}
	return nil
}

func (st *Strategy) bytesList(s *Struct) [][]byte {
	sl := st.slot(s)
	if sl == nil || len(sl.bytss) == 0 {
		return nil
	}
	out := make([][]byte, len(sl.bytss))
	for i, v := range sl.bytss {
		out[i] = bytes.Clone(v)
	}
	return out
}

func (st *Strategy) structList(s *Struct) []*Struct {
	if sl := st.slot(s); sl != nil {
		return slices.Clone(sl.msgs)
	}
	return nil
}
