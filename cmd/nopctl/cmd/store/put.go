package store

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/store"
	"nop/typespec"
)

var putCmd = &cobra.Command{
	Use:   "put <key> <type> <values...>",
	Short: "Encodes values and stores them under key.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typespec.Parse(args[1])
		if err != nil {
			return err
		}
		payload, err := typ.Encode(args[2:])
		if err != nil {
			return err
		}

		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		e, err := store.PutEntry(db, args[0], typ.String(), payload)
		if err != nil {
			return err
		}
		if isJSON(cmd) {
			return writeJSON(cmd.OutOrStdout(), newEntryJSON(e, nil))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Stored %s (%s, %d bytes). Digest: %s\n", e.Key, e.Type, len(e.Payload), e.Digest)
		return nil
	},
}

func init() {
	cmd.AddCommand(putCmd)
}
