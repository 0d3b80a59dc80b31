package codec

import (
	"github.com/pkg/errors"
	"math"
)

var (
	Bool    = boolCodec{}
	Float32 = float32Codec{}
	Float64 = float64Codec{}
	Text    = stringCodec{}

	// Bytes encodes []byte as a raw block of uint8.
	Bytes = List[uint8](Uint8)
)

type boolCodec struct{}

func (boolCodec) Prefix(value bool) EncodingByte {
	if value {
		return True
	}
	return False
}

func (boolCodec) Size(bool) uint64 {
	return 1
}

func (boolCodec) Match(prefix EncodingByte) bool {
	return prefix == False || prefix == True
}

func (boolCodec) WritePayload(EncodingByte, bool, Writer) error {
	return nil
}

func (boolCodec) ReadPayload(prefix EncodingByte, value *bool, _ Reader) error {
	*value = prefix == True
	return nil
}

type float32Codec struct{}

func (float32Codec) Prefix(float32) EncodingByte {
	return F32
}

func (float32Codec) Size(float32) uint64 {
	return BaseEncodingSize(F32) + 4
}

func (float32Codec) Match(prefix EncodingByte) bool {
	return prefix == F32
}

func (float32Codec) WritePayload(_ EncodingByte, value float32, w Writer) error {
	return writeFixed(w, 4, uint64(math.Float32bits(value)))
}

func (float32Codec) ReadPayload(_ EncodingByte, value *float32, r Reader) error {
	u, err := readFixed(r, 4)
	if err != nil {
		return err
	}
	*value = math.Float32frombits(uint32(u))
	return nil
}

type float64Codec struct{}

func (float64Codec) Prefix(float64) EncodingByte {
	return F64
}

func (float64Codec) Size(float64) uint64 {
	return BaseEncodingSize(F64) + 8
}

// Match also accepts F32: every float32 widens to float64 exactly.
func (float64Codec) Match(prefix EncodingByte) bool {
	return prefix == F32 || prefix == F64
}

func (float64Codec) WritePayload(_ EncodingByte, value float64, w Writer) error {
	return writeFixed(w, 8, math.Float64bits(value))
}

func (float64Codec) ReadPayload(prefix EncodingByte, value *float64, r Reader) error {
	if prefix == F32 {
		var f float32
		if err := Float32.ReadPayload(prefix, &f, r); err != nil {
			return err
		}
		*value = float64(f)
		return nil
	}
	u, err := readFixed(r, 8)
	if err != nil {
		return err
	}
	*value = math.Float64frombits(u)
	return nil
}

type stringCodec struct{}

func (stringCodec) Prefix(string) EncodingByte {
	return String
}

func (stringCodec) Size(value string) uint64 {
	l := SizeType(len(value))
	return BaseEncodingSize(String) + sizeCodec.Size(l) + l
}

func (stringCodec) Match(prefix EncodingByte) bool {
	return prefix == String
}

func (stringCodec) WritePayload(_ EncodingByte, value string, w Writer) error {
	if err := Write[SizeType](sizeCodec, SizeType(len(value)), w); err != nil {
		return err
	}
	return writeAll(w, []byte(value))
}

func (stringCodec) ReadPayload(_ EncodingByte, value *string, r Reader) error {
	var l SizeType
	if err := Read[SizeType](sizeCodec, &l, r); err != nil {
		return err
	}
	if l > math.MaxInt {
		return errors.Wrapf(ErrInvalidStringLength, "%d bytes", l)
	}
	if err := r.Ensure(l, 1); err != nil {
		return err
	}
	b, err := readBlock(r, l)
	if err != nil {
		return err
	}
	*value = string(b)
	return nil
}
