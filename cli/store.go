package cli

import (
	"github.com/spf13/cobra"
	"github.com/syndtr/goleveldb/leveldb"
	"nop/config"
	"nop/store"
)

// OpenStore opens the value store configured for the home directory, which
// must already be initialized.
func OpenStore(cmd *cobra.Command) (*leveldb.DB, error) {
	homeDir := GetHomeDir(cmd)
	if err := config.EnsureHomeDir(homeDir); err != nil {
		return nil, err
	}
	cfg, err := config.ReadConfigFile(homeDir)
	if err != nil {
		return nil, err
	}
	return store.Open(config.ExpandDBPath(homeDir, cfg.Store.Path))
}
