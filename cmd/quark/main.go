// Command quark inspects theme and literal colors.
package main

import (
	"os"

	"github.com/opencode-ai/quark/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
