package wireio

import (
	"bytes"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"testing"
)

// opaqueReader hides the Len method of the wrapped reader.
type opaqueReader struct {
	r io.Reader
}

func (o *opaqueReader) Read(p []byte) (int, error) {
	return o.r.Read(p)
}

func TestStreamReader_Read(t *testing.T) {
	sr := NewStreamReader(bytes.NewReader([]byte{0xca, 0xfe, 0xba}))
	b := make([]byte, 2)
	_, err := sr.Read(b)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, b)
	assert.EqualValues(t, 2, sr.Count())

	n, err := sr.Read(b)
	require.True(t, errors.Is(err, ErrEndOfInput))
	assert.Equal(t, 1, n)
	assert.EqualValues(t, 3, sr.Count())
}

func TestStreamReader_Limited(t *testing.T) {
	sr := NewLimitedStreamReader(bytes.NewReader(make([]byte, 16)), 4)
	require.NoError(t, sr.Ensure(2, 2))
	require.True(t, errors.Is(sr.Ensure(3, 2), ErrInsufficientData))

	b := make([]byte, 3)
	_, err := sr.Read(b)
	require.NoError(t, err)
	_, err = sr.Read(b)
	require.True(t, errors.Is(err, ErrEndOfInput))
	assert.EqualValues(t, 3, sr.Count(), "read beyond the limit must not consume")
	require.NoError(t, sr.Ensure(1, 1))
	require.True(t, errors.Is(sr.Ensure(1, 2), ErrInsufficientData))
}

func TestStreamReader_EnsureUnlimited(t *testing.T) {
	sr := NewStreamReader(bytes.NewReader(make([]byte, 4)))
	require.NoError(t, sr.Ensure(4, 1))
	require.True(t, errors.Is(sr.Ensure(5, 1), ErrInsufficientData))

	opaque := NewStreamReader(&opaqueReader{r: bytes.NewReader(nil)})
	require.NoError(t, opaque.Ensure(1<<40, 8))
}
