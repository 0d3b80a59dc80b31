package codec

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math"
	"nop/wireio"
	"strings"
	"testing"
)

func TestList_RawBlockEncoding(t *testing.T) {
	c := List[uint8](Uint8)
	require.True(t, c.Raw())

	out, b := roundTrip[[]uint8](t, c, []uint8{1, 2, 3})
	require.Equal(t, []byte{0xbc, 0x03, 0x01, 0x02, 0x03}, b)
	require.Equal(t, []uint8{1, 2, 3}, out)
}

func TestList_StructuredEncoding(t *testing.T) {
	c := List[string](Text)
	require.False(t, c.Raw())

	out, b := roundTrip[[]string](t, c, []string{"a", "bb"})
	require.Equal(t, []byte{0xba, 0x02, 0xbd, 0x01, 'a', 0xbd, 0x02, 'b', 'b'}, b)
	require.Equal(t, []string{"a", "bb"}, out)
}

func TestList_RawBlockWidths(t *testing.T) {
	u16, b := roundTrip[[]uint16](t, List[uint16](Uint16), []uint16{1, 0x1234, math.MaxUint16})
	require.Equal(t, compose(Binary, byte(6), integer(uint16(1)), integer(uint16(0x1234)), integer(uint16(math.MaxUint16))), b)
	require.Equal(t, []uint16{1, 0x1234, math.MaxUint16}, u16)

	i32, b := roundTrip[[]int32](t, List[int32](Int32), []int32{-1, math.MinInt32})
	require.Equal(t, compose(Binary, byte(8), integer(int32(-1)), integer(int32(math.MinInt32))), b)
	require.Equal(t, []int32{-1, math.MinInt32}, i32)

	u64, _ := roundTrip[[]uint64](t, List[uint64](Uint64), []uint64{0, math.MaxUint64})
	require.Equal(t, []uint64{0, math.MaxUint64}, u64)

	i8, b := roundTrip[[]int8](t, List[int8](Int8), []int8{-128, 0, 127})
	require.Equal(t, compose(Binary, byte(3), byte(0x80), byte(0x00), byte(0x7f)), b)
	require.Equal(t, []int8{-128, 0, 127}, i8)
}

func TestList_Empty(t *testing.T) {
	out, b := roundTrip[[]uint32](t, List[uint32](Uint32), nil)
	require.Equal(t, compose(Binary, byte(0)), b)
	require.Equal(t, []uint32{}, out)

	strs, b := roundTrip[[]string](t, List[string](Text), []string{})
	require.Equal(t, compose(Array, byte(0)), b)
	require.Equal(t, []string{}, strs)
}

func TestList_PrefixIsCategoryOnly(t *testing.T) {
	raw := List[uint16](Uint16)
	require.Equal(t, Binary, raw.Prefix(nil))
	require.Equal(t, Binary, raw.Prefix([]uint16{1, 2, 300}))

	structured := List[bool](Bool)
	require.Equal(t, Array, structured.Prefix(nil))
	require.Equal(t, Array, structured.Prefix([]bool{true, false}))
}

func TestList_Nested(t *testing.T) {
	c := List[[]uint16](List[uint16](Uint16))
	require.False(t, c.Raw())

	in := [][]uint16{{1, 2}, {}, {300}}
	out, b := roundTrip[[][]uint16](t, c, in)
	require.Equal(t, compose(
		Array, byte(3),
		Binary, byte(4), integer(uint16(1)), integer(uint16(2)),
		Binary, byte(0),
		Binary, byte(2), integer(uint16(300)),
	), b)
	require.Equal(t, in, out)

	words := [][]string{{"x"}, {"y", "zz"}}
	gotWords, _ := roundTrip[[][]string](t, List[[]string](List[string](Text)), words)
	require.Equal(t, words, gotWords)
}

func TestList_StructuredScalars(t *testing.T) {
	bools, b := roundTrip[[]bool](t, List[bool](Bool), []bool{true, false, true})
	require.Equal(t, compose(Array, byte(3), True, False, True), b)
	require.Equal(t, []bool{true, false, true}, bools)

	floats, _ := roundTrip[[]float64](t, List[float64](Float64), []float64{0.5, -1e300, math.Inf(1)})
	require.Equal(t, []float64{0.5, -1e300, math.Inf(1)}, floats)
}

func TestList_LargeRawBlockCrossesChunks(t *testing.T) {
	in := make([]uint32, 3*chunkSize/4+7)
	for i := range in {
		in[i] = uint32(i) * 2654435761
	}
	out, b := roundTrip[[]uint32](t, List[uint32](Uint32), in)
	require.Equal(t, Binary, EncodingByte(b[0]))
	require.Equal(t, in, out)

	// Same bytes through an unbuffered stream.
	var got []uint32
	r := wireio.NewStreamReader(bytes.NewReader(b))
	require.NoError(t, Read[[]uint32](List[uint32](Uint32), &got, r))
	require.Equal(t, in, got)
}

func TestList_InvalidContainerLength(t *testing.T) {
	data := compose(Binary, byte(5), byte(1), byte(2), byte(3), byte(4), byte(5))
	r := wireio.NewBufferReader(data)

	target := []uint16{7, 8}
	err := Read[[]uint16](List[uint16](Uint16), &target, r)
	require.True(t, errors.Is(err, ErrInvalidContainerLength))
	require.EqualValues(t, 2, r.Offset(), "nothing past the length field is consumed")
	require.Equal(t, []uint16{7, 8}, target)
}

func TestList_StructuredCountBeyondInput(t *testing.T) {
	data := compose(Array, U32, integer(uint32(1000000)), F64, byte(1), byte(2), byte(3))
	require.Len(t, data, 10)

	var out []float64
	err := Unmarshal[[]float64](List[float64](Float64), data, &out)
	require.True(t, errors.Is(err, ErrEndOfInput))
	require.Contains(t, err.Error(), "element 0 of 1000000")

	data = compose(Array, U32, integer(uint32(1000000)), String, U32, byte(1), byte(0))
	var strs []string
	err = Unmarshal[[]string](List[string](Text), data, &strs)
	require.True(t, errors.Is(err, ErrEndOfInput))
	require.Contains(t, err.Error(), "element 0 of 1000000")
}

func TestList_HugeRawLength(t *testing.T) {
	data := compose(Binary, U64, integer(uint64(1<<40)), byte(1), byte(2))

	var out []uint8
	err := Unmarshal[[]uint8](Bytes, data, &out)
	require.True(t, errors.Is(err, ErrInsufficientData))

	// A source without a known length passes Ensure; chunked reads stop at
	// the real end of input.
	r := wireio.NewStreamReader(opaque{bytes.NewReader(data)})
	err = Read[[]uint8](Bytes, &out, r)
	require.True(t, errors.Is(err, ErrEndOfInput))

	limited := wireio.NewLimitedStreamReader(bytes.NewReader(data), int64(len(data)))
	err = Read[[]uint8](Bytes, &out, limited)
	require.True(t, errors.Is(err, ErrInsufficientData))
}

func TestList_HugeStringLength(t *testing.T) {
	data := compose(Array, byte(1), String, U64, integer(uint64(1<<40)), "abc")
	var out []string
	err := Unmarshal[[]string](List[string](Text), data, &out)
	require.True(t, errors.Is(err, ErrInsufficientData))
}

func TestList_WrongType(t *testing.T) {
	var u16 []uint16
	err := Unmarshal[[]uint16](List[uint16](Uint16), compose(Array, byte(0)), &u16)
	require.True(t, errors.Is(err, ErrUnexpectedEncodingType))

	var strs []string
	err = Unmarshal[[]string](List[string](Text), compose(Binary, byte(0)), &strs)
	require.True(t, errors.Is(err, ErrUnexpectedEncodingType))

	err = Unmarshal[[]string](List[string](Text), compose(Array, byte(1), U8, byte(0x80)), &strs)
	require.True(t, errors.Is(err, ErrUnexpectedEncodingType))
}

func TestList_ReusedTarget(t *testing.T) {
	target := []uint16{9, 9, 9, 9}
	require.NoError(t, Unmarshal[[]uint16](List[uint16](Uint16), compose(Binary, byte(4), integer(uint16(1)), integer(uint16(2))), &target))
	require.Equal(t, []uint16{1, 2}, target)

	words := []string{"old", "stale"}
	require.NoError(t, Unmarshal[[]string](List[string](Text), compose(Array, byte(1), String, byte(3), "new"), &words))
	require.Equal(t, []string{"new"}, words)
}

func TestList_WriteErrors(t *testing.T) {
	in := []uint16{1, 2, 3}
	c := List[uint16](Uint16)
	w := wireio.NewFixedWriter(make([]byte, c.Size(in)-1))
	err := Write[[]uint16](c, in, w)
	require.True(t, errors.Is(err, ErrWriteLimitReached))

	s := List[string](Text)
	words := []string{strings.Repeat("x", 10)}
	w = wireio.NewFixedWriter(make([]byte, 4))
	err = Write[[]string](s, words, w)
	require.True(t, errors.Is(err, ErrWriteLimitReached))
}

func TestList_SizeUsesCompactLengths(t *testing.T) {
	c := List[uint8](Uint8)
	require.EqualValues(t, 1+1+127, c.Size(make([]uint8, 127)))
	require.EqualValues(t, 1+2+128, c.Size(make([]uint8, 128)))
	require.EqualValues(t, 1+3+256, c.Size(make([]uint8, 256)))
	require.EqualValues(t, 1+5+65536, c.Size(make([]uint8, 65536)))

	w := List[uint64](Uint64)
	require.EqualValues(t, 1+3+8*32, w.Size(make([]uint64, 32)))
}

// opaque hides the Len method of the wrapped reader.
type opaque struct {
	r *bytes.Reader
}

func (o opaque) Read(p []byte) (int, error) {
	return o.r.Read(p)
}
