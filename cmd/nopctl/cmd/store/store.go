package store

import (
	"encoding/json"
	"github.com/spf13/cobra"
	"io"
	"nop/cli"
	"nop/store"
	"time"
)

var cmd = &cobra.Command{
	Use:   "store",
	Short: "Commands for the local value store.",
}

func AddCmd(parent *cobra.Command) {
	parent.AddCommand(cmd)
}

type entryJSON struct {
	Key      string    `json:"key"`
	Type     string    `json:"type"`
	Bytes    int       `json:"bytes"`
	Digest   string    `json:"digest"`
	StoredAt time.Time `json:"stored_at"`
	Values   []string  `json:"values,omitempty"`
}

func newEntryJSON(e *store.Entry, values []string) *entryJSON {
	return &entryJSON{
		Key:      e.Key,
		Type:     e.Type,
		Bytes:    len(e.Payload),
		Digest:   e.Digest.String(),
		StoredAt: e.StoredAt.UTC(),
		Values:   values,
	}
}

func isJSON(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString(cli.FlagFormat)
	return format == "json"
}

func writeJSON(w io.Writer, v interface{}) error {
	return json.NewEncoder(w).Encode(v)
}
