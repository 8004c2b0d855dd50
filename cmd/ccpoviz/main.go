package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tschijnmo/ccpoviz/internal/cli"
)

// main is the entrypoint for the ccpoviz executable.
func main() {
	if err := cli.Execute(os.Args[1:], os.Stdout); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
