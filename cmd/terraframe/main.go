package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/theandrelima/terraframe/internal/cli"
)

// main is the entrypoint for the terraframe application.
func main() {
	if err := run(); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run() error {
	root := cli.NewRootCommand(os.Stderr, afero.NewOsFs())
	return root.ExecuteContext(context.Background())
}
