// Command unitgen compiles unit tables and generates typed Go quantities.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/uom/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unitgen:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
