package codec

import (
	"github.com/pkg/errors"
	"io"
	"nop/wireio"
)

// SizeType is the type of every length and count field on the wire.
type SizeType = uint64

// Writer is the byte sink values are encoded into.
type Writer interface {
	Write(p []byte) (int, error)
}

// Reader is the byte source values are decoded from. Ensure reports, without
// consuming anything, whether count further elements of width bytes each are
// available.
type Reader interface {
	Read(p []byte) (int, error)
	Ensure(count, width uint64) error
}

// Codec is the strategy for one type family. Its methods are extension
// points; callers go through Write and Read.
type Codec[T any] interface {
	// Prefix returns the tag Write emits for value.
	Prefix(value T) EncodingByte
	// Size returns the exact number of bytes, tag included, that Write
	// produces for value.
	Size(value T) uint64
	// Match reports whether prefix is a valid encoding of T.
	Match(prefix EncodingByte) bool
	WritePayload(prefix EncodingByte, value T, w Writer) error
	ReadPayload(prefix EncodingByte, value *T, r Reader) error
}

// Scalar is a codec for a fixed-width integer type whose values have a
// directly copyable little-endian layout. Containers of a Scalar use the
// raw-block encoding.
type Scalar[T any] interface {
	Codec[T]
	Width() int
	PutRaw(b []byte, value T)
	Raw(b []byte) T
}

// Write encodes value, tag first, into w.
func Write[T any](c Codec[T], value T, w Writer) error {
	prefix := c.Prefix(value)
	if err := writeAll(w, []byte{byte(prefix)}); err != nil {
		return err
	}
	return c.WritePayload(prefix, value, w)
}

// Read decodes one value from r into value. The tag is checked with
// c.Match before any payload is read.
func Read[T any](c Codec[T], value *T, r Reader) error {
	prefix, err := readPrefix(r)
	if err != nil {
		return err
	}
	if !c.Match(prefix) {
		return unexpected(prefix)
	}
	return c.ReadPayload(prefix, value, r)
}

// Marshal encodes value into a new slice sized by c.Size.
func Marshal[T any](c Codec[T], value T) ([]byte, error) {
	w := wireio.NewFixedWriter(make([]byte, c.Size(value)))
	if err := Write(c, value, w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal decodes exactly one value from data.
func Unmarshal[T any](c Codec[T], data []byte, value *T) error {
	r := wireio.NewBufferReader(data)
	if err := Read(c, value, r); err != nil {
		return err
	}
	if r.Remaining() != 0 {
		return errors.Wrapf(ErrTrailingData, "%d bytes", r.Remaining())
	}
	return nil
}

// BaseEncodingSize is the size of the tag itself.
func BaseEncodingSize(EncodingByte) uint64 {
	return 1
}

func readPrefix(r Reader) (EncodingByte, error) {
	var b [1]byte
	if err := readFull(r, b[:]); err != nil {
		return 0, err
	}
	return EncodingByte(b[0]), nil
}

func readFull(r Reader, p []byte) error {
	_, err := io.ReadFull(r, p)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrEndOfInput
	}
	return err
}

func writeAll(w Writer, p []byte) error {
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}
