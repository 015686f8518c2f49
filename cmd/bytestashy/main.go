package main

import (
	"context"
	"fmt"
	"os"

	"github.com/bytestashy/bytestashy/internal/cli"
)

var version = "dev"

func main() {
	app, err := cli.NewApp(version)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
