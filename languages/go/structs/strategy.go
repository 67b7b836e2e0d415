package structs

import (
	"bytes"
	"fmt"
	"slices"

	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/codec"
	"github.com/bearlytools/tagwire/languages/go/field"
	"github.com/bearlytools/tagwire/languages/go/mapping"
)

//go:generate stringer -type=Variant -linecomment

// Variant is the storage and encoding shape of a field. Every field maps onto exactly one
// Variant and every Strategy method switches over all of them.
type Variant uint8

const (
	// VUnknown is the zero value and is never assigned to a Strategy.
	VUnknown Variant = 0 // Unknown
	// VScalar is a singular numeric or bool field.
	VScalar Variant = 1 // Scalar
	// VScalarList is a repeated numeric or bool field.
	VScalarList Variant = 2 // ScalarList
	// VString is a singular string or bytes field.
	VString Variant = 3 // String
	// VStringList is a repeated string or bytes field.
	VStringList Variant = 4 // StringList
	// VEnum is a singular enum field.
	VEnum Variant = 5 // Enum
	// VEnumList is a repeated enum field.
	VEnumList Variant = 6 // EnumList
	// VMessage is a singular message or group field.
	VMessage Variant = 7 // Message
	// VMessageList is a repeated message or group field.
	VMessageList Variant = 8 // MessageList
)

// VariantFor returns the Variant for fd. It panics if fd's Kind has no storage strategy.
func VariantFor(fd *mapping.FieldDescr) Variant {
	rep := fd.IsRepeated()
	switch fd.Kind {
	case field.KInt32, field.KInt64, field.KUint32, field.KUint64, field.KSint32, field.KSint64,
		field.KFixed32, field.KFixed64, field.KSfixed32, field.KSfixed64, field.KBool,
		field.KFloat, field.KDouble:
		if rep {
			return VScalarList
		}
		return VScalar
	case field.KString, field.KBytes:
		if rep {
			return VStringList
		}
		return VString
	case field.KEnum:
		if rep {
			return VEnumList
		}
		return VEnum
	case field.KMessage, field.KGroup:
		if rep {
			return VMessageList
		}
		return VMessage
	}
	panic(fmt.Sprintf("structs: no field strategy for %s: unsupported kind %v", fd.FullName(), fd.Kind))
}

// slot is the storage for one field of one instance. Only the members used by the field's
// Variant are ever touched.
type slot struct {
	has bool

	raw  uint64
	str  string
	byts []byte
	msg  *Struct

	raws  []uint64
	strs  []string
	bytss [][]byte
	msgs  []*Struct
}

// extSlot is the storage for an extension, which also records the Strategy that owns it.
type extSlot struct {
	st *Strategy
	slot
}

// Strategy holds everything needed to store, merge, clear, size, serialize and parse one
// field. It is built once per field per message type and is immutable afterwards.
type Strategy struct {
	variant Variant
	fd      *mapping.FieldDescr
	kind    field.Kind
	// index is the slot position of a declared field, -1 for an extension.
	index   int
	isBytes bool
	isGroup bool
	tagSize int

	defRaw   uint64
	defStr   string
	defBytes []byte
}

func newStrategy(fd *mapping.FieldDescr) *Strategy {
	st := &Strategy{
		variant: VariantFor(fd),
		fd:      fd,
		kind:    fd.Kind,
		index:   fd.Index(),
		isBytes: fd.Kind == field.KBytes,
		isGroup: fd.Kind == field.KGroup,
		tagSize: protowire.SizeTag(fd.Number),
	}
	if fd.IsExtension {
		st.index = -1
	}

	switch st.variant {
	case VScalar, VEnum:
		st.defRaw = codec.DefaultRaw(fd)
	case VString:
		switch v := fd.Default.(type) {
		case string:
			st.defStr = v
		case []byte:
			st.defBytes = v
		}
	case VScalarList, VStringList, VEnumList, VMessage, VMessageList:
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
	return st
}

// Variant returns the storage shape of the field.
func (st *Strategy) Variant() Variant {
	return st.variant
}

// Descriptor returns the field the Strategy is for.
func (st *Strategy) Descriptor() *mapping.FieldDescr {
	return st.fd
}

// slot returns the storage for the field in s. For an extension that was never touched it
// returns nil.
func (st *Strategy) slot(s *Struct) *slot {
	if st.index >= 0 {
		return &s.fields[st.index]
	}
	if e := s.exts[st.fd.Number]; e != nil {
		return &e.slot
	}
	return nil
}

// mutableSlot returns the storage for the field in s, creating it for an extension.
func (st *Strategy) mutableSlot(s *Struct) *slot {
	s.checkMutable()
	if st.index >= 0 {
		return &s.fields[st.index]
	}
	e := s.exts[st.fd.Number]
	if e == nil {
		if s.exts == nil {
			s.exts = map[protowire.Number]*extSlot{}
		}
		e = &extSlot{st: st}
		st.init(&e.slot)
		s.exts[st.fd.Number] = e
	}
	return &e.slot
}

// init puts the default value into a new slot.
func (st *Strategy) init(sl *slot) {
	switch st.variant {
	case VScalar, VEnum:
		sl.raw = st.defRaw
	case VString:
		if st.isBytes {
			sl.byts = bytes.Clone(st.defBytes)
		} else {
			sl.str = st.defStr
		}
	case VScalarList, VStringList, VEnumList, VMessage, VMessageList:
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
}

// reset returns the slot to its default state. A singular message child that was allocated
// is cleared in place and kept. Repeated storage keeps its capacity.
func (st *Strategy) reset(sl *slot) {
	switch st.variant {
	case VScalar, VEnum:
		sl.has = false
		sl.raw = st.defRaw
	case VString:
		sl.has = false
		if st.isBytes {
			sl.byts = bytes.Clone(st.defBytes)
		} else {
			sl.str = st.defStr
		}
	case VMessage:
		sl.has = false
		if sl.msg != nil {
			sl.msg.clear()
		}
	case VScalarList, VEnumList:
		sl.raws = sl.raws[:0]
	case VStringList:
		if st.isBytes {
			clear(sl.bytss)
			sl.bytss = sl.bytss[:0]
		} else {
			clear(sl.strs)
			sl.strs = sl.strs[:0]
		}
	case VMessageList:
		clear(sl.msgs)
		sl.msgs = sl.msgs[:0]
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
}

// clear resets the field in s to its default.
func (st *Strategy) clear(s *Struct) {
	s.checkMutable()
	if sl := st.slot(s); sl != nil {
		st.reset(sl)
	}
}

// has reports presence of a singular field.
func (st *Strategy) has(s *Struct) bool {
	sl := st.slot(s)
	return sl != nil && sl.has
}

// len returns the number of elements of a repeated field.
func (st *Strategy) len(s *Struct) int {
	sl := st.slot(s)
	if sl == nil {
		return 0
	}
	switch st.variant {
	case VScalarList, VEnumList:
		return len(sl.raws)
	case VStringList:
		if st.isBytes {
			return len(sl.bytss)
		}
		return len(sl.strs)
	case VMessageList:
		return len(sl.msgs)
	case VScalar, VString, VEnum, VMessage:
		return 0
	}
	panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
}

// present reports if the field would be serialized.
func (st *Strategy) present(s *Struct) bool {
	if st.fd.IsRepeated() {
		return st.len(s) > 0
	}
	return st.has(s)
}

// merge copies the field from src into dst. Singular values that are set overwrite,
// singular messages merge recursively and repeated fields append.
func (st *Strategy) merge(dst, src *Struct) {
	ss := st.slot(src)
	if ss == nil {
		return
	}

	switch st.variant {
	case VScalar, VEnum:
		if ss.has {
			d := st.mutableSlot(dst)
			d.raw = ss.raw
			d.has = true
		}
	case VString:
		if ss.has {
			d := st.mutableSlot(dst)
			if st.isBytes {
				d.byts = bytes.Clone(ss.byts)
			} else {
				d.str = ss.str
			}
			d.has = true
		}
	case VMessage:
		if ss.has {
			st.mutableStruct(dst).mergeFrom(ss.msg)
		}
	case VScalarList, VEnumList:
		if len(ss.raws) > 0 {
			d := st.mutableSlot(dst)
			d.raws = append(d.raws, ss.raws...)
		}
	case VStringList:
		if st.isBytes {
			if len(ss.bytss) > 0 {
				d := st.mutableSlot(dst)
				for _, v := range ss.bytss {
					d.bytss = append(d.bytss, bytes.Clone(v))
				}
			}
		} else if len(ss.strs) > 0 {
			d := st.mutableSlot(dst)
			d.strs = append(d.strs, ss.strs...)
		}
	case VMessageList:
		if len(ss.msgs) > 0 {
			d := st.mutableSlot(dst)
			for _, m := range ss.msgs {
				c := New(st.fd.Message)
				c.mergeFrom(m)
				d.msgs = append(d.msgs, c)
			}
		}
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
}

// size returns the number of bytes append would write, tags included.
func (st *Strategy) size(s *Struct) int {
	sl := st.slot(s)
	if sl == nil {
		return 0
	}

	switch st.variant {
	case VScalar, VEnum:
		if !sl.has {
			return 0
		}
		return st.tagSize + codec.SizeRaw(st.kind, sl.raw)
	case VString:
		if !sl.has {
			return 0
		}
		if st.isBytes {
			return st.tagSize + protowire.SizeBytes(len(sl.byts))
		}
		return st.tagSize + protowire.SizeBytes(len(sl.str))
	case VMessage:
		if !sl.has {
			return 0
		}
		return st.messageSize(sl.msg)
	case VScalarList, VEnumList:
		if len(sl.raws) == 0 {
			return 0
		}
		if st.fd.IsPacked() {
			return st.tagSize + protowire.SizeBytes(codec.PackedSize(st.kind, sl.raws))
		}
		n := len(sl.raws) * st.tagSize
		for _, v := range sl.raws {
			n += codec.SizeRaw(st.kind, v)
		}
		return n
	case VStringList:
		n := 0
		if st.isBytes {
			for _, v := range sl.bytss {
				n += st.tagSize + protowire.SizeBytes(len(v))
			}
			return n
		}
		for _, v := range sl.strs {
			n += st.tagSize + protowire.SizeBytes(len(v))
		}
		return n
	case VMessageList:
		n := 0
		for _, m := range sl.msgs {
			n += st.messageSize(m)
		}
		return n
	}
	panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
}

func (st *Strategy) messageSize(m *Struct) int {
	if st.isGroup {
		return 2*st.tagSize + m.Size()
	}
	return st.tagSize + protowire.SizeBytes(m.Size())
}

// append serializes the field in s onto b.
func (st *Strategy) append(b []byte, s *Struct) []byte {
	sl := st.slot(s)
	if sl == nil {
		return b
	}
	num := st.fd.Number

	switch st.variant {
	case VScalar, VEnum:
		if sl.has {
			b = protowire.AppendTag(b, num, st.kind.WireType())
			b = codec.AppendRaw(b, st.kind, sl.raw)
		}
	case VString:
		if sl.has {
			b = protowire.AppendTag(b, num, protowire.BytesType)
			if st.isBytes {
				b = protowire.AppendBytes(b, sl.byts)
			} else {
				b = protowire.AppendString(b, sl.str)
			}
		}
	case VMessage:
		if sl.has {
			b = st.appendMessage(b, sl.msg)
		}
	case VScalarList, VEnumList:
		if len(sl.raws) == 0 {
			break
		}
		if st.fd.IsPacked() {
			b = protowire.AppendTag(b, num, protowire.BytesType)
			b = codec.AppendPacked(b, st.kind, sl.raws)
			break
		}
		for _, v := range sl.raws {
			b = protowire.AppendTag(b, num, st.kind.WireType())
			b = codec.AppendRaw(b, st.kind, v)
		}
	case VStringList:
		if st.isBytes {
			for _, v := range sl.bytss {
				b = protowire.AppendTag(b, num, protowire.BytesType)
				b = protowire.AppendBytes(b, v)
			}
			break
		}
		for _, v := range sl.strs {
			b = protowire.AppendTag(b, num, protowire.BytesType)
			b = protowire.AppendString(b, v)
		}
	case VMessageList:
		for _, m := range sl.msgs {
			b = st.appendMessage(b, m)
		}
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
	return b
}

func (st *Strategy) appendMessage(b []byte, m *Struct) []byte {
	num := st.fd.Number
	if st.isGroup {
		b = protowire.AppendTag(b, num, protowire.StartGroupType)
		b = m.appendTo(b)
		return protowire.AppendTag(b, num, protowire.EndGroupType)
	}
	// The child is written first and its length filled in after. One byte is reserved for
	// the length; a longer length shifts the body.
	b = protowire.AppendTag(b, num, protowire.BytesType)
	start := len(b)
	b = append(b, 0)
	b = m.appendTo(b)
	n := len(b) - start - 1
	if ls := protowire.SizeVarint(uint64(n)); ls > 1 {
		b = append(b, make([]byte, ls-1)...)
		copy(b[start+ls:], b[start+1:start+1+n])
	}
	protowire.AppendVarint(b[:start], uint64(n))
	return b
}

// consume parses one occurrence of the field from b, which starts just after the tag.
// It returns NotHandled if typ is not a wire type the field accepts, in which case nothing
// is stored and the caller keeps the bytes as an unknown field.
func (st *Strategy) consume(d *Decoder, s *Struct, typ protowire.Type, b []byte) (int, error) {
	switch st.variant {
	case VScalar, VEnum:
		if typ != st.kind.WireType() {
			return NotHandled, nil
		}
		v, n := codec.ConsumeRaw(b, st.kind)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		sl := st.mutableSlot(s)
		sl.raw = v
		sl.has = true
		return n, nil
	case VScalarList, VEnumList:
		// Packed and unpacked encodings are both accepted regardless of the schema.
		if typ == protowire.BytesType {
			sl := st.mutableSlot(s)
			raws, n := codec.ConsumePacked(b, st.kind, sl.raws)
			if n < 0 {
				return 0, protowire.ParseError(n)
			}
			sl.raws = raws
			return n, nil
		}
		if typ != st.kind.WireType() {
			return NotHandled, nil
		}
		v, n := codec.ConsumeRaw(b, st.kind)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		sl := st.mutableSlot(s)
		sl.raws = append(sl.raws, v)
		return n, nil
	case VString, VStringList:
		if typ != protowire.BytesType {
			return NotHandled, nil
		}
		v, n := protowire.ConsumeBytes(b)
		if n < 0 {
			return 0, protowire.ParseError(n)
		}
		sl := st.mutableSlot(s)
		switch {
		case st.variant == VString && st.isBytes:
			sl.byts = bytes.Clone(v)
			sl.has = true
		case st.variant == VString:
			sl.str = string(v)
			sl.has = true
		case st.isBytes:
			sl.bytss = append(sl.bytss, bytes.Clone(v))
		default:
			sl.strs = append(sl.strs, string(v))
		}
		return n, nil
	case VMessage, VMessageList:
		var (
			v []byte
			n int
		)
		if st.isGroup {
			if typ != protowire.StartGroupType {
				return NotHandled, nil
			}
			v, n = protowire.ConsumeGroup(st.fd.Number, b)
		} else {
			if typ != protowire.BytesType {
				return NotHandled, nil
			}
			v, n = protowire.ConsumeBytes(b)
		}
		if n < 0 {
			return 0, protowire.ParseError(n)
		}

		var child *Struct
		if st.variant == VMessage {
			child = st.mutableStruct(s)
		} else {
			child = st.addStruct(s)
		}
		if err := d.nested(child, v); err != nil {
			return 0, err
		}
		return n, nil
	}
	panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
}

// equal compares the field in a and b.
func (st *Strategy) equal(a, b *Struct) bool {
	sa, sb := st.slot(a), st.slot(b)
	if sa == nil {
		sa = &slot{}
	}
	if sb == nil {
		sb = &slot{}
	}

	switch st.variant {
	case VScalar, VEnum:
		if sa.has != sb.has {
			return false
		}
		return !sa.has || sa.raw == sb.raw
	case VString:
		if sa.has != sb.has {
			return false
		}
		if !sa.has {
			return true
		}
		if st.isBytes {
			return bytes.Equal(sa.byts, sb.byts)
		}
		return sa.str == sb.str
	case VMessage:
		if sa.has != sb.has {
			return false
		}
		return !sa.has || sa.msg.Equal(sb.msg)
	case VScalarList, VEnumList:
		return slices.Equal(sa.raws, sb.raws)
	case VStringList:
		if st.isBytes {
			return slices.EqualFunc(sa.bytss, sb.bytss, bytes.Equal)
		}
		return slices.Equal(sa.strs, sb.strs)
	case VMessageList:
		return slices.EqualFunc(sa.msgs, sb.msgs, func(x, y *Struct) bool { return x.Equal(y) })
	}
	panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
}

// missing appends the paths of required fields that are not set in the field's children.
// Required fields of s itself are checked by the Struct.
func (st *Strategy) missing(s *Struct, prefix string, out []string) []string {
	sl := st.slot(s)
	if sl == nil {
		return out
	}
	name := st.fd.Name
	if st.fd.IsExtension {
		name = "(" + st.fd.FullName() + ")"
	}

	switch st.variant {
	case VMessage:
		if sl.has {
			out = sl.msg.missing(prefix+name+".", out)
		}
	case VMessageList:
		for i, m := range sl.msgs {
			out = m.missing(fmt.Sprintf("%s%s[%d].", prefix, name, i), out)
		}
	case VScalar, VScalarList, VString, VStringList, VEnum, VEnumList:
	default:
		panic(fmt.Sprintf("bug: unhandled variant %v", st.variant))
	}
	return out
}
