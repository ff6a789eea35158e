package commands

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/spellforge/psibin"
)

// NewDecodeCommand returns a cli.Command for "psibin decode".
func NewDecodeCommand() *cli.Command {
	cmd := cli.Command{
		Name:      "decode",
		Usage:     "Decode a transport string back to SNBT.",
		UsageText: `psibin decode [options] [string]`,
		Description: `The decode command converts a URL-safe transport string back to the
authoring SNBT form. The string is taken from the first argument, or
from standard input when absent.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "bytes",
				Aliases: []string{"b"},
				Usage:   "print the raw binary layout as hex instead of SNBT.",
			},
		},
	}

	cmd.Action = func(ctx context.Context, cmd *cli.Command) error {
		in := cmd.Args().First()
		if in == "" {
			data, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			in = strings.TrimSpace(string(data))
		}

		raw, err := psibin.Decompress(in)
		if err != nil {
			return err
		}

		if cmd.Bool("bytes") {
			fmt.Println(hex.EncodeToString(raw))
			return nil
		}

		sp, err := psibin.Decode(raw)
		if err != nil {
			return err
		}
		out, err := psibin.SpellToText(sp)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	return &cmd
}
