package cmd

import (
	"context"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"nop/codec"
	"nop/crypto"
	"nop/testutil/testfs"
	"nop/typespec"
	"testing"
)

// Closed LevelDB handles from other tests in the package keep their pool
// drain goroutine alive for up to a second.
var leveldbDrain = goleak.IgnoreTopFunction("github.com/syndtr/goleveldb/leveldb.(*DB).mpoolDrain")

func TestVerifyFiles(t *testing.T) {
	defer goleak.VerifyNone(t, leveldbDrain)

	dir, done := testfs.NewTempDir(t)
	defer done()

	good := []byte{0xbc, 0x04, 0x01, 0x00, 0x02, 0x00}
	paths := []string{
		testfs.WriteFile(t, dir, "good", good),
		testfs.WriteFile(t, dir, "odd", []byte{0xbc, 0x05, 0x01, 0x02, 0x03, 0x04, 0x05}),
		testfs.WriteFile(t, dir, "short", []byte{0xbc, 0x08, 0x01, 0x00}),
		testfs.WriteFile(t, dir, "trailing", append(append([]byte{}, good...), 0x00)),
		testfs.WriteFile(t, dir, "structured", []byte{0xba, 0x00}),
		testfs.WriteFile(t, dir, "big", make([]byte, 128)),
		dir + "/absent",
	}

	results, err := verifyFiles(context.Background(), typespec.MustParse("list<u16>"), paths, 3, 64)
	require.NoError(t, err)
	require.Len(t, results, len(paths))
	for i, res := range results {
		require.Equal(t, paths[i], res.Path)
	}

	require.NoError(t, results[0].Err)
	require.EqualValues(t, len(good), results[0].Bytes)
	require.Equal(t, crypto.Blake2B256(good), results[0].Digest)

	require.True(t, errors.Is(results[1].Err, codec.ErrInvalidContainerLength))
	require.True(t, errors.Is(results[2].Err, codec.ErrInsufficientData))
	require.True(t, errors.Is(results[3].Err, codec.ErrTrailingData))
	require.True(t, errors.Is(results[4].Err, codec.ErrUnexpectedEncodingType))
	require.True(t, errors.Is(results[5].Err, ErrFileTooLarge))
	require.Error(t, results[6].Err)
}

func TestVerifyFiles_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t, leveldbDrain)

	dir, done := testfs.NewTempDir(t)
	defer done()
	p := testfs.WriteFile(t, dir, "good", []byte{0xbc, 0x00})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := verifyFiles(ctx, typespec.MustParse("list<u8>"), []string{p, p}, 1, 0)
	require.True(t, errors.Is(err, context.Canceled))
}
