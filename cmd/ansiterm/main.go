// Command ansiterm captures ANSI terminal output and renders it as
// HTML, either from a single recorded/rendered file or as a live
// dashboard over a websocket.
package main

import (
	"fmt"
	"os"

	"github.com/phroun/ansiterm/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ansiterm: %v\n", err)
		os.Exit(1)
	}
}
