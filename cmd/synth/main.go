// Package main provides the CLI entrypoint for synth.
//
// synth generates fully populated random values of Go types:
//   - lists the demo models it knows about
//   - prints seeded, reproducible values as text, JSON or YAML
//   - keeps generated values as fixtures in SQLite
package main

import (
	"fmt"
	"os"

	"value-synth/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
