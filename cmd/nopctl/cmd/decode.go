package cmd

import (
	"encoding/json"
	"github.com/spf13/cobra"
	"io"
	"nop/cli"
	"nop/typespec"
	"os"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <type> <hex|->",
	Short: "Decodes one value of the given type.",
	Long: `Decodes one value of the given type and prints its elements one per line.
Pass - to read the encoding from stdin.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typespec.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := cli.ReadInput(args[1], os.Stdin)
		if err != nil {
			return err
		}
		values, err := typ.Decode(b)
		if err != nil {
			return err
		}
		return printValues(cmd, values)
	},
}

func printValues(cmd *cobra.Command, values []string) error {
	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString(cli.FlagFormat)
	if format == "json" {
		return json.NewEncoder(out).Encode(values)
	}
	for _, v := range values {
		if _, err := io.WriteString(out, v+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
