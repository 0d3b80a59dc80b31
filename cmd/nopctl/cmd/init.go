package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/cli"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes nopctl's home directory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Successfully initialized nopctl in %s.\n", dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
