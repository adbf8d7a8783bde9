package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var batchWorkers int

var batchCmd = &cobra.Command{
	Use:   "batch [file | -]",
	Short: "Encode or decode many values, one per line",
	Long: `Read one value per line and convert each: a JSON object is encoded to hex,
anything else is decoded from hex to compact JSON. Results are written in
input order, one per line. Blank lines and lines starting with # are skipped.

Lines are processed concurrently by batch.workers workers (--workers).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "number of concurrent workers (default from config)")
	rootCmd.AddCommand(batchCmd)
}

type batchLine struct {
	number int
	text   string
}

func runBatch(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	lines, err := readBatchLines(in)
	if err != nil {
		return err
	}

	workers := appConfig.Batch.Workers
	if batchWorkers > 0 {
		workers = batchWorkers
	}
	log.Debugf("Converting %d lines with %d workers", len(lines), workers)

	results := make([]string, len(lines))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := convertLine(line.text)
			if err != nil {
				return fmt.Errorf("line %d: %w", line.number, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())
	for _, r := range results {
		if _, err := fmt.Fprintln(w, r); err != nil {
			return err
		}
	}
	return w.Flush()
}

func readBatchLines(r io.Reader) ([]batchLine, error) {
	var lines []batchLine
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for n := 1; scanner.Scan(); n++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, batchLine{number: n, text: text})
	}
	return lines, scanner.Err()
}

func convertLine(text string) (string, error) {
	if looksLikeJSON([]byte(text)) {
		obj, err := parseJSONObject([]byte(text))
		if err != nil {
			return "", err
		}
		return appCodec.Encode(obj)
	}
	obj, err := appCodec.Decode(text)
	if err != nil {
		return "", err
	}
	out, err := marshalJSON(obj, 0)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
