package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nop/config"
	"os"
)

func GetHomeDir(cmd *cobra.Command) string {
	homeDirUnexp, err := cmd.Flags().GetString(FlagHome)
	if err != nil {
		panic(err)
	}
	homeDir := config.ExpandHomePath(homeDirUnexp)
	return homeDir
}

func InitHomeDir(cmd *cobra.Command) (string, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return "", err
	}
	if exists {
		return "", errors.New("home directory is already initialized")
	}
	if err := config.InitHomeDir(homeDir); err != nil {
		return "", err
	}
	return homeDir, nil
}

// LoadConfig reads the config file from the home directory. Commands that
// do not need a home directory fall back to the defaults when it or its
// config file is absent.
func LoadConfig(cmd *cobra.Command) (*config.Config, error) {
	homeDir := GetHomeDir(cmd)
	exists, err := config.HomeDirExists(homeDir)
	if err != nil {
		return nil, err
	}
	if !exists {
		cfg := config.DefaultConfig
		return &cfg, nil
	}
	cfg, err := config.ReadConfigFile(homeDir)
	if os.IsNotExist(errors.Cause(err)) {
		cfg := config.DefaultConfig
		return &cfg, nil
	}
	return cfg, err
}
