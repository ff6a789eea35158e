package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spellforge/psibin/cmd/psibin/commands"
)

func main() {
	app := commands.New()

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}
