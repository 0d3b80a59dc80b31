package store

import (
	"fmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"nop/cli"
	"nop/store"
	"strconv"
	"time"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists stored entries.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := cli.OpenStore(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		stream, err := store.StreamEntries(db)
		if err != nil {
			return err
		}
		defer stream.Close()

		var entries []*store.Entry
		for {
			e, err := stream.Next()
			if err != nil {
				return err
			}
			if e == nil {
				break
			}
			entries = append(entries, e)
		}

		out := cmd.OutOrStdout()
		if isJSON(cmd) {
			for _, e := range entries {
				if err := writeJSON(out, newEntryJSON(e, nil)); err != nil {
					return err
				}
			}
			return nil
		}

		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{
			"Key",
			"Type",
			"Bytes",
			"Digest",
			"Stored At",
			"Valid",
		})
		for _, e := range entries {
			table.Append([]string{
				e.Key,
				e.Type,
				strconv.Itoa(len(e.Payload)),
				e.Digest.String()[:16],
				e.StoredAt.UTC().Format(time.RFC3339),
				boolToStr(e.Verify() == nil),
			})
		}
		table.Render()
		fmt.Fprintln(out, "")
		fmt.Fprintf(out, "Total: %d\n", len(entries))
		return nil
	},
}

func boolToStr(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func init() {
	cmd.AddCommand(listCmd)
}
