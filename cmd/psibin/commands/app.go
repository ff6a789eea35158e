package commands

import (
	"github.com/urfave/cli/v3"
)

// New creates the psibin CLI app.
func New() *cli.Command {
	return &cli.Command{
		Name:  "psibin",
		Usage: "Convert Psi spells between SNBT text and URL-safe transport strings",
		Commands: []*cli.Command{
			NewEncodeCommand(),
			NewDecodeCommand(),
			NewVersionCommand(),
		},
	}
}
