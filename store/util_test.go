package store

import (
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb"
	"nop/testutil/testfs"
	"path/filepath"
	"testing"
)

func setupLevelDB(t *testing.T) (*leveldb.DB, func()) {
	dir, cleanup := testfs.NewTempDir(t)
	db, err := Open(filepath.Join(dir, "db"))
	require.NoError(t, err)

	return db, func() {
		require.NoError(t, db.Close())
		cleanup()
	}
}
