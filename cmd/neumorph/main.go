// Command neumorph previews neumorphic elements and generates their CSS.
package main

import (
	"fmt"
	"os"

	"github.com/opencode-ai/neumorph/internal/cli"
)

// Set via -ldflags at build time.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
