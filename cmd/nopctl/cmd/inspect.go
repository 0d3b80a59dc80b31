package cmd

import (
	"encoding/json"
	"fmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/crypto"
	"nop/inspect"
	"os"
	"strconv"
	"strings"
)

type nodeJSON struct {
	Offset int    `json:"offset"`
	Depth  int    `json:"depth"`
	Tag    string `json:"tag"`
	Length uint64 `json:"length"`
	Value  string `json:"value,omitempty"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <hex|->",
	Short: "Lists the structure of any encoded stream.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := cli.ReadInput(args[0], os.Stdin)
		if err != nil {
			return err
		}
		nodes, err := inspect.Parse(b)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		format, _ := cmd.Flags().GetString(cli.FlagFormat)
		if format == "json" {
			encoder := json.NewEncoder(out)
			for _, n := range nodes {
				if err := encoder.Encode(&nodeJSON{
					Offset: n.Offset,
					Depth:  n.Depth,
					Tag:    n.Prefix.String(),
					Length: n.Length,
					Value:  n.Value,
				}); err != nil {
					return err
				}
			}
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{
			"Offset",
			"Tag",
			"Length",
			"Value",
		})
		table.SetAutoWrapText(false)
		for _, n := range nodes {
			table.Append([]string{
				strconv.Itoa(n.Offset),
				strings.Repeat("  ", n.Depth) + n.Prefix.String(),
				lengthToStr(n),
				n.Value,
			})
		}
		table.Render()
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "Size: %d bytes\n", len(b))
		fmt.Fprintf(out, "Digest: %s\n", crypto.Blake2B256(b))
		return nil
	},
}

func lengthToStr(n inspect.Node) string {
	if n.Length == 0 && n.Value != "" {
		return "-"
	}
	return strconv.FormatUint(n.Length, 10)
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
