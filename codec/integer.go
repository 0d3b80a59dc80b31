package codec

import (
	"encoding/binary"
	"golang.org/x/exp/constraints"
	"math"
	"unsafe"
)

var (
	Uint8  = Unsigned[uint8]()
	Uint16 = Unsigned[uint16]()
	Uint32 = Unsigned[uint32]()
	Uint64 = Unsigned[uint64]()
	Int8   = Signed[int8]()
	Int16  = Signed[int16]()
	Int32  = Signed[int32]()
	Int64  = Signed[int64]()

	sizeCodec = Uint64
)

// UnsignedCodec encodes unsigned integers of any width, including named
// types such as `type Port uint16`.
type UnsignedCodec[T constraints.Unsigned] struct {
	width int
}

func Unsigned[T constraints.Unsigned]() *UnsignedCodec[T] {
	var zero T
	return &UnsignedCodec[T]{
		width: int(unsafe.Sizeof(zero)),
	}
}

var _ Scalar[uint32] = (*UnsignedCodec[uint32])(nil)

func (c *UnsignedCodec[T]) Prefix(value T) EncodingByte {
	u := uint64(value)
	switch {
	case u <= uint64(PositiveFixIntMax):
		return EncodingByte(u)
	case u <= math.MaxUint8:
		return U8
	case u <= math.MaxUint16:
		return U16
	case u <= math.MaxUint32:
		return U32
	default:
		return U64
	}
}

func (c *UnsignedCodec[T]) Size(value T) uint64 {
	prefix := c.Prefix(value)
	return BaseEncodingSize(prefix) + uint64(prefix.PayloadWidth())
}

func (c *UnsignedCodec[T]) Match(prefix EncodingByte) bool {
	switch prefix {
	case U8:
		return c.width >= 1
	case U16:
		return c.width >= 2
	case U32:
		return c.width >= 4
	case U64:
		return c.width >= 8
	default:
		return prefix.IsPositiveFixInt()
	}
}

func (c *UnsignedCodec[T]) WritePayload(prefix EncodingByte, value T, w Writer) error {
	return writeFixed(w, prefix.PayloadWidth(), uint64(value))
}

func (c *UnsignedCodec[T]) ReadPayload(prefix EncodingByte, value *T, r Reader) error {
	n := prefix.PayloadWidth()
	if n == 0 {
		*value = T(prefix)
		return nil
	}
	u, err := readFixed(r, n)
	if err != nil {
		return err
	}
	*value = T(u)
	return nil
}

func (c *UnsignedCodec[T]) Width() int {
	return c.width
}

func (c *UnsignedCodec[T]) PutRaw(b []byte, value T) {
	putLittleEndian(b, c.width, uint64(value))
}

func (c *UnsignedCodec[T]) Raw(b []byte) T {
	return T(littleEndian(b, c.width))
}

// SignedCodec encodes signed integers of any width.
type SignedCodec[T constraints.Signed] struct {
	width int
}

func Signed[T constraints.Signed]() *SignedCodec[T] {
	var zero T
	return &SignedCodec[T]{
		width: int(unsafe.Sizeof(zero)),
	}
}

var _ Scalar[int32] = (*SignedCodec[int32])(nil)

func (c *SignedCodec[T]) Prefix(value T) EncodingByte {
	i := int64(value)
	switch {
	case i >= -64 && i <= int64(PositiveFixIntMax):
		return EncodingByte(uint8(int8(i)))
	case i >= math.MinInt8 && i <= math.MaxInt8:
		return I8
	case i >= math.MinInt16 && i <= math.MaxInt16:
		return I16
	case i >= math.MinInt32 && i <= math.MaxInt32:
		return I32
	default:
		return I64
	}
}

func (c *SignedCodec[T]) Size(value T) uint64 {
	prefix := c.Prefix(value)
	return BaseEncodingSize(prefix) + uint64(prefix.PayloadWidth())
}

func (c *SignedCodec[T]) Match(prefix EncodingByte) bool {
	switch prefix {
	case I8:
		return c.width >= 1
	case I16:
		return c.width >= 2
	case I32:
		return c.width >= 4
	case I64:
		return c.width >= 8
	default:
		return prefix.IsFixInt()
	}
}

func (c *SignedCodec[T]) WritePayload(prefix EncodingByte, value T, w Writer) error {
	return writeFixed(w, prefix.PayloadWidth(), uint64(value))
}

func (c *SignedCodec[T]) ReadPayload(prefix EncodingByte, value *T, r Reader) error {
	n := prefix.PayloadWidth()
	if n == 0 {
		*value = T(int8(prefix))
		return nil
	}
	u, err := readFixed(r, n)
	if err != nil {
		return err
	}
	*value = T(signExtend(u, n))
	return nil
}

func (c *SignedCodec[T]) Width() int {
	return c.width
}

func (c *SignedCodec[T]) PutRaw(b []byte, value T) {
	putLittleEndian(b, c.width, uint64(value))
}

func (c *SignedCodec[T]) Raw(b []byte) T {
	return T(signExtend(littleEndian(b, c.width), c.width))
}

func signExtend(u uint64, n int) int64 {
	switch n {
	case 1:
		return int64(int8(u))
	case 2:
		return int64(int16(u))
	case 4:
		return int64(int32(u))
	default:
		return int64(u)
	}
}

func putLittleEndian(b []byte, n int, u uint64) {
	switch n {
	case 1:
		b[0] = byte(u)
	case 2:
		binary.LittleEndian.PutUint16(b, uint16(u))
	case 4:
		binary.LittleEndian.PutUint32(b, uint32(u))
	case 8:
		binary.LittleEndian.PutUint64(b, u)
	}
}

func littleEndian(b []byte, n int) uint64 {
	switch n {
	case 1:
		return uint64(b[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(b))
	case 4:
		return uint64(binary.LittleEndian.Uint32(b))
	case 8:
		return binary.LittleEndian.Uint64(b)
	default:
		return 0
	}
}

func writeFixed(w Writer, n int, u uint64) error {
	if n == 0 {
		return nil
	}
	var buf [8]byte
	putLittleEndian(buf[:], n, u)
	return writeAll(w, buf[:n])
}

func readFixed(r Reader, n int) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:n]); err != nil {
		return 0, err
	}
	return littleEndian(buf[:], n), nil
}
