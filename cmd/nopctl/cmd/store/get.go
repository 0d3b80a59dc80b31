package store

import (
	"fmt"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/config"
	"nop/store"
	"nop/typespec"
)

const (
	EncodedFlag = "encoded"
)

var (
	encoded bool
)

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Prints the values stored under key.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		e, err := store.GetEntry(db, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if encoded {
			format, _ := cmd.Flags().GetString(cli.FlagOutput)
			if format == "" {
				format = config.OutputFormatAuto
			}
			format, err = cli.ResolveOutputFormat(format, out)
			if err != nil {
				return err
			}
			return cli.WriteEncoded(out, format, e.Payload)
		}

		typ, err := typespec.Parse(e.Type)
		if err != nil {
			return err
		}
		values, err := typ.Decode(e.Payload)
		if err != nil {
			return err
		}
		if isJSON(cmd) {
			return writeJSON(out, newEntryJSON(e, values))
		}
		for _, v := range values {
			fmt.Fprintln(out, v)
		}
		return nil
	},
}

func init() {
	getCmd.Flags().BoolVar(&encoded, EncodedFlag, false, "Print the stored encoding instead of the decoded values")
	cmd.AddCommand(getCmd)
}
