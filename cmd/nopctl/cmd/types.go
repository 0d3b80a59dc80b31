package cmd

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/typespec"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the type descriptors encode and decode accept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range typespec.Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
}
