// Command gradeboard is the CLI entry point.
package main

import (
	"os"

	"github.com/edustats/gradeboard/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
