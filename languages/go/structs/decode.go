package structs

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/gostdlib/base/context"
	"google.golang.org/protobuf/encoding/protowire"

	"github.com/bearlytools/tagwire/languages/go/errors"
)

// NotHandled is returned by a FieldHandler or ConsumeField when the field was not consumed.
// The bytes are then handed to the extension lookup and finally kept as an unknown field.
const NotHandled = -1

var errRecursion = errors.New("exceeded the recursion limit")

// FieldHandler consumes the value of field num, with wire type typ, from b. b starts just
// after the tag. It returns the bytes consumed or NotHandled.
type FieldHandler func(d *Decoder, num protowire.Number, typ protowire.Type, b []byte) (int, error)

// Decoder carries the state of one parse through nested messages.
type Decoder struct {
	ctx   context.Context
	cfg   config
	depth int
}

func newDecoder(ctx context.Context, options []UnmarshalOption) *Decoder {
	return &Decoder{ctx: ctx, cfg: newConfig(options)}
}

// Context returns the Context the parse was started with.
func (d *Decoder) Context() context.Context {
	return d.ctx
}

// Depth is how many messages deep the Decoder currently is.
func (d *Decoder) Depth() int {
	return d.depth
}

// nested parses b into child one level deeper.
func (d *Decoder) nested(child *Struct, b []byte) error {
	d.depth++
	defer func() { d.depth-- }()
	return child.decode(d, b, nil)
}

// Unmarshal parses b and merges the result into s. Fields already set in s are kept unless
// b overwrites them. Unless WithAllowPartial is passed, the result missing required fields
// is an error.
func (s *Struct) Unmarshal(ctx context.Context, b []byte, options ...UnmarshalOption) error {
	return Decode(ctx, s, b, nil, options...)
}

// Decode parses b into s. Every field is first offered to handle, which generated code
// builds from ConsumeField calls. A nil handle uses the Registry for all fields.
func Decode(ctx context.Context, s *Struct, b []byte, handle FieldHandler, options ...UnmarshalOption) error {
	s.checkMutable()

	d := newDecoder(ctx, options)
	if err := s.decode(d, b, handle); err != nil {
		t := errors.TypeWire
		if errors.Is(err, errRecursion) {
			t = errors.TypeRecursion
		}
		return errors.E(ctx, errors.CatUser, t, fmt.Errorf("parsing %s: %w", s.mapping.FullName(), err))
	}
	if !d.cfg.allowPartial {
		return checkRequired(ctx, s)
	}
	return nil
}

func (s *Struct) decode(d *Decoder, b []byte, handle FieldHandler) error {
	if d.depth > d.cfg.recursionLimit {
		return errRecursion
	}

	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		if typ == protowire.EndGroupType {
			return fmt.Errorf("unexpected end group tag for field %d", num)
		}
		tag, rest := b[:n], b[n:]

		m := NotHandled
		var err error
		if handle != nil {
			m, err = handle(d, num, typ, rest)
		}
		if m == NotHandled && err == nil {
			m, err = s.consumeKnown(d, num, typ, rest)
		}
		if err != nil {
			if errors.Is(err, errRecursion) {
				return err
			}
			return fmt.Errorf("field %d: %w", num, err)
		}

		if m == NotHandled {
			m = protowire.ConsumeFieldValue(num, typ, rest)
			if m < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
			}
			if !d.cfg.discardUnknown {
				s.unknown = append(s.unknown, tag...)
				s.unknown = append(s.unknown, rest[:m]...)
			}
		}
		b = rest[m:]
	}
	return nil
}

// consumeKnown routes a field to the Strategy of a declared field or registered extension.
func (s *Struct) consumeKnown(d *Decoder, num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	if fd := s.mapping.ByNumber(num); fd != nil {
		return s.reg.strategies[fd.Index()].consume(d, s, typ, b)
	}
	if fd := s.mapping.FindExtensionByNumber(num); fd != nil {
		return s.reg.Get(fd).consume(d, s, typ, b)
	}
	return NotHandled, nil
}

// ReadDelimited reads a varint size followed by a message of that size from r and merges it
// into s. If r is not an io.ByteReader it is read one byte at a time for the size so that
// nothing past the message is consumed.
func (s *Struct) ReadDelimited(ctx context.Context, r io.Reader, options ...UnmarshalOption) error {
	cfg := newConfig(options)

	br, ok := r.(io.ByteReader)
	if !ok {
		br = byteReader{r}
	}
	size, err := binary.ReadUvarint(br)
	if err != nil {
		if err == io.EOF {
			return err
		}
		return errors.E(ctx, errors.CatUser, errors.TypeIO, fmt.Errorf("reading size of delimited %s: %w", s.mapping.FullName(), err))
	}
	if size > uint64(cfg.maxMessageSize) {
		return errors.E(
			ctx,
			errors.CatUser,
			errors.TypeWire,
			fmt.Errorf("delimited %s is %d bytes, which is over the limit of %d", s.mapping.FullName(), size, cfg.maxMessageSize),
		)
	}

	b := make([]byte, size)
	if _, err := io.ReadFull(r, b); err != nil {
		return errors.E(ctx, errors.CatUser, errors.TypeIO, fmt.Errorf("reading delimited %s: %w", s.mapping.FullName(), err))
	}
	return s.Unmarshal(ctx, b, options...)
}

// byteReader reads single bytes from an io.Reader.
type byteReader struct {
	r io.Reader
}

func (b byteReader) ReadByte() (byte, error) {
	var buf [1]byte
	_, err := io.ReadFull(b.r, buf[:])
	return buf[0], err
}

var _ io.ByteReader = byteReader{}
