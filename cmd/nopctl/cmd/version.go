package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Prints the version.",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), version.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
