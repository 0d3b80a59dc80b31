package cmd

import (
	"fmt"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/cmd/nopctl/cmd/store"
	"nop/config"
	"nop/log"
	"os"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:          "nopctl",
	Short:        "Encode, decode and inspect nop payloads.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := cli.LoadConfig(cmd)
		if err != nil {
			return errors.Wrap(err, "error loading config")
		}
		if err := configureLogging(loaded); err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func configureLogging(c *config.Config) error {
	level, err := log.NewLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := log.NewFormat(c.LogFormat)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormat(format)
	return nil
}

// outputFormat returns the --output flag when set and the configured
// format otherwise.
func outputFormat(cmd *cobra.Command) string {
	if f, _ := cmd.Flags().GetString(cli.FlagOutput); f != "" {
		return f
	}
	return cfg.Output.Format
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, config.DefaultHome, "Home directory for nopctl's configuration and store.")
	rootCmd.PersistentFlags().String(cli.FlagFormat, "text", "Output format for listings: text or json.")
	rootCmd.PersistentFlags().String(cli.FlagOutput, "", "Encoding output: auto, hex or raw. Defaults to the configured format.")
	store.AddCmd(rootCmd)
}
