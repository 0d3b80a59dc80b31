package config

import (
	"github.com/mitchellh/go-homedir"
	"os"
	"path"
)

const (
	DefaultHome = "~/.nopctl"
	ConfigFile  = "config.toml"
	DBPath      = "db"
)

func ExpandHomePath(path string) string {
	res, err := homedir.Expand(path)
	if err != nil {
		panic(err)
	}
	return res
}

// ExpandDBPath resolves the configured store path. Absolute and ~ paths are
// used as is; anything else is relative to homePath.
func ExpandDBPath(homePath string, dbPath string) string {
	p := ExpandHomePath(dbPath)
	if path.IsAbs(p) {
		return p
	}
	return path.Join(homePath, p)
}

func InitDBDir(homePath string, dbPath string) error {
	p := ExpandDBPath(homePath, dbPath)
	return os.MkdirAll(p, 0700)
}
