package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/spellforge/psibin"
)

// NewEncodeCommand returns a cli.Command for "psibin encode".
func NewEncodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "encode",
		Usage:     "Encode SNBT spells into URL-safe transport strings.",
		UsageText: `psibin encode [files...]`,
		Description: `The encode command reads one SNBT spell per file and prints one
transport string per line, in argument order. A file that fails to
encode is reported on standard error and skipped; the remaining files
are still emitted. With no arguments, a single spell is read from
standard input.`,
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		files := cmd.Args().Slice()
		if len(files) == 0 {
			in, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			out, err := psibin.TextToTransport(string(in))
			if err != nil {
				return err
			}
			fmt.Println(out)
			return nil
		}

		// Each spell is an independent pure transformation; encode them
		// in parallel and keep output in argument order.
		results := make([]string, len(files))
		ok := make([]bool, len(files))

		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, path := range files {
			i, path := i, path
			g.Go(func() error {
				data, err := os.ReadFile(path)
				if err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					return nil
				}
				out, err := psibin.TextToTransport(string(data))
				if err != nil {
					_, _ = fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					return nil
				}
				results[i], ok[i] = out, true
				return nil
			})
		}
		_ = g.Wait()

		for i := range results {
			if ok[i] {
				fmt.Println(results[i])
			}
		}
		return nil
	}

	return &cmd
}
