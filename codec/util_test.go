package codec

import (
	"fmt"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
	"nop/wireio"
	"testing"
	"unsafe"
)

// compose concatenates tags, single bytes, byte slices and strings into the
// expected wire form of a value.
func compose(items ...interface{}) []byte {
	var out []byte
	for _, item := range items {
		switch it := item.(type) {
		case EncodingByte:
			out = append(out, byte(it))
		case uint8:
			out = append(out, it)
		case []byte:
			out = append(out, it...)
		case string:
			out = append(out, it...)
		default:
			panic(fmt.Sprintf("cannot compose %T", item))
		}
	}
	return out
}

// integer returns the little-endian bytes of v at its native width.
func integer[T constraints.Integer](v T) []byte {
	n := int(unsafe.Sizeof(v))
	out := make([]byte, n)
	u := uint64(v)
	for i := 0; i < n; i++ {
		out[i] = byte(u >> (8 * i))
	}
	return out
}

// roundTrip encodes value through both Marshal and Write, checks both
// against Size, and decodes the Marshal output. Hash sets iterate in no fixed
// order, so the two encodings are compared by length only.
func roundTrip[T any](t *testing.T, c Codec[T], value T) (T, []byte) {
	t.Helper()
	b, err := Marshal(c, value)
	require.NoError(t, err)
	require.EqualValues(t, c.Size(value), len(b))

	w := wireio.NewBufferWriter()
	defer w.Release()
	require.NoError(t, Write(c, value, w))
	require.Len(t, w.Bytes(), len(b))

	var out T
	require.NoError(t, Unmarshal(c, b, &out))
	return out, b
}
