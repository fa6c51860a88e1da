// Command sustaintrack estimates and tracks product carbon footprints.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rshade/sustaintrack/internal/cli"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set via ldflags.

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	// A missing .env file is normal.
	_ = godotenv.Load()

	if err := cli.Execute(version, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
