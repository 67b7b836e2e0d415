package structs

import (
	"fmt"
	"io"
	"strings"

	"github.com/gostdlib/base/context"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
)

// Size returns the number of bytes Append writes for s.
func (s *Struct) Size() int {
	n := 0
	for _, st := range s.reg.ordered {
		n += st.size(s)
	}
	return n + ExtraSize(s)
}

// Append serializes s onto b without checking required fields: declared fields in number
// order, then extensions in number order, then unknown fields.
func (s *Struct) Append(b []byte) []byte {
	return s.appendTo(b)
}

func (s *Struct) appendTo(b []byte) []byte {
	for _, st := range s.reg.ordered {
		b = st.append(b, s)
	}
	return AppendExtra(b, s)
}

// ExtraSize returns the size of the extensions and unknown fields of s. Generated Size()
// methods add it to the sum of their FieldSize() calls.
func ExtraSize(s *Struct) int {
	n := 0
	for _, num := range s.extNumbers() {
		n += s.exts[num].st.size(s)
	}
	return n + len(s.unknown)
}

// AppendExtra appends the extensions and then the unknown fields of s.
func AppendExtra(b []byte, s *Struct) []byte {
	for _, num := range s.extNumbers() {
		b = s.exts[num].st.append(b, s)
	}
	return append(b, s.unknown...)
}

// Marshal serializes s. Unless WithAllowPartial is passed, a message missing required
// fields is an error.
func (s *Struct) Marshal(ctx context.Context, options ...MarshalOption) ([]byte, error) {
	return Encode(ctx, s, nil, options...)
}

// AppendFields appends the declared fields of a message. Generated code provides one made
// of AppendField calls.
type AppendFields func(b []byte) []byte

// Encode serializes s using appendFields for the declared fields. A nil appendFields walks
// the Registry.
func Encode(ctx context.Context, s *Struct, appendFields AppendFields, options ...MarshalOption) ([]byte, error) {
	cfg := newConfig(options)
	if !cfg.allowPartial {
		if err := checkRequired(ctx, s); err != nil {
			return nil, err
		}
	}

	b := make([]byte, 0, s.Size())
	if appendFields == nil {
		return s.appendTo(b), nil
	}
	b = appendFields(b)
	return AppendExtra(b, s), nil
}

func checkRequired(ctx context.Context, s *Struct) error {
	missing := s.MissingRequired()
	if len(missing) == 0 {
		return nil
	}
	return errors.E(
		ctx,
		errors.CatUser,
		errors.TypeUninitialized,
		fmt.Errorf("message of type %s is missing required fields: %s", s.mapping.FullName(), strings.Join(missing, ", ")),
	)
}

// WriteDelimited writes the size of s as a varint followed by s to w. It returns the number
// of bytes written.
func (s *Struct) WriteDelimited(ctx context.Context, w io.Writer, options ...MarshalOption) (int, error) {
	cfg := newConfig(options)
	if !cfg.allowPartial {
		if err := checkRequired(ctx, s); err != nil {
			return 0, err
		}
	}

	buf := getBuffer(ctx)
	defer putBuffer(ctx, buf)

	b := protowire.AppendVarint(*buf, uint64(s.Size()))
	b = s.appendTo(b)
	*buf = b

	n, err := w.Write(b)
	if err != nil {
		return n, errors.E(ctx, errors.CatInternal, errors.TypeIO, fmt.Errorf("writing delimited %s: %w", s.mapping.FullName(), err))
	}
	return n, nil
}
