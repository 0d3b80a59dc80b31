package cmd

import (
	"encoding/hex"
	"github.com/spf13/cobra"
	"io"
	"nop/cli"
	"nop/config"
	"nop/log"
	"nop/typespec"
	"nop/wireio"
)

var encodeLogger = log.WithModule("encode")

var encodeCmd = &cobra.Command{
	Use:   "encode <type> <values...>",
	Short: "Encodes values of the given type.",
	Long: `Encodes values of the given type. Scalar types take exactly one value;
list and set types take any number. Run "nopctl types" for the accepted types.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typespec.Parse(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		format, err := cli.ResolveOutputFormat(outputFormat(cmd), out)
		if err != nil {
			return err
		}
		n, err := encodeTo(out, format, typ, args[1:])
		if err != nil {
			return err
		}
		encodeLogger.Debug("encoded value", "type", typ.String(), "bytes", n)
		return nil
	},
}

// encodeTo streams the encoding of args straight into out, through a hex
// encoder when format is hex. It returns the encoded length, not the
// number of characters printed.
func encodeTo(out io.Writer, format string, typ *typespec.Type, args []string) (uint64, error) {
	dst := out
	if format == config.OutputFormatHex {
		dst = hex.NewEncoder(out)
	}
	w := wireio.NewStreamWriter(dst)
	if err := typ.EncodeTo(w, args); err != nil {
		return w.Count(), err
	}
	if format == config.OutputFormatHex {
		if _, err := io.WriteString(out, "\n"); err != nil {
			return w.Count(), err
		}
	}
	return w.Count(), nil
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
