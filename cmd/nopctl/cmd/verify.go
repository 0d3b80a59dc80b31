package cmd

import (
	"bufio"
	"context"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"io"
	"nop/codec"
	"nop/crypto"
	"nop/log"
	"nop/typespec"
	"nop/wireio"
	"os"
	"strconv"
)

var ErrFileTooLarge = errors.New("file too large")

var verifyLogger = log.WithModule("verify")

type verifyResult struct {
	Path   string
	Bytes  uint64
	Digest crypto.Hash
	Err    error
}

var verifyCmd = &cobra.Command{
	Use:   "verify <type> <file...>",
	Short: "Checks that each file holds exactly one value of the given type.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, err := typespec.Parse(args[0])
		if err != nil {
			return err
		}
		results, err := verifyFiles(context.Background(), typ, args[1:], cfg.Verify.Workers, cfg.Verify.MaxFileBytes)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		table := tablewriter.NewWriter(out)
		table.SetHeader([]string{
			"File",
			"Bytes",
			"Digest",
			"Status",
		})
		table.SetAutoWrapText(false)
		var failed int
		for _, res := range results {
			status := "ok"
			if res.Err != nil {
				status = res.Err.Error()
				failed++
			}
			table.Append([]string{
				res.Path,
				strconv.FormatUint(res.Bytes, 10),
				res.Digest.String()[:16],
				status,
			})
		}
		table.Render()

		if failed > 0 {
			return errors.Errorf("%d of %d files failed verification", failed, len(results))
		}
		return nil
	},
}

// verifyFiles decodes every path concurrently, each through its own stream
// reader. Per-file failures land in the results; only cancellation aborts.
func verifyFiles(ctx context.Context, typ *typespec.Type, paths []string, workers int, maxBytes int64) ([]verifyResult, error) {
	results := make([]verifyResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i, p := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = verifyFile(typ, p, maxBytes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func verifyFile(typ *typespec.Type, path string, maxBytes int64) verifyResult {
	res := verifyResult{
		Path: path,
	}
	f, err := os.Open(path)
	if err != nil {
		res.Err = errors.Wrap(err, "error opening file")
		return res
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		res.Err = errors.Wrap(err, "error reading file info")
		return res
	}
	size := info.Size()
	if maxBytes > 0 && size > maxBytes {
		res.Err = errors.Wrapf(ErrFileTooLarge, "%d bytes, limit %d", size, maxBytes)
		return res
	}

	digest := crypto.NewWriter()
	r := wireio.NewLimitedStreamReader(io.TeeReader(bufio.NewReader(f), digest), size)
	_, err = typ.DecodeFrom(r)
	res.Bytes = r.Count()
	if err == nil && r.Count() != uint64(size) {
		err = errors.Wrapf(codec.ErrTrailingData, "%d bytes", uint64(size)-r.Count())
	}
	res.Digest = digest.Sum()
	res.Err = err
	verifyLogger.Debug("verified file", "path", path, "bytes", res.Bytes, "err", err)
	return res
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

