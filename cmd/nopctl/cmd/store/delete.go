package store

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/store"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Deletes the entry stored under key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := store.DeleteEntry(db, args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
		return nil
	},
}

func init() {
	cmd.AddCommand(deleteCmd)
}
