package commands

import (
	"context"
	"fmt"
	"runtime/debug"

	"github.com/urfave/cli/v3"
)

// NewVersionCommand returns a cli.Command for "psibin version".
func NewVersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show the psibin version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				fmt.Println(`version not available in GOPATH mode; use "go get" with Go modules enabled`)
				return nil
			}
			fmt.Printf("psibin %v\n", info.Main.Version)
			return nil
		},
	}
}
