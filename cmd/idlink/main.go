// Command idlink type-checks code against the typed identifier packages,
// runs identifier scenarios, and generates identifier declarations.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/idlink/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
