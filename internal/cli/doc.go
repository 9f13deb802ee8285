// Package cli implements the ansiterm command-line subcommands. Each
// file wraps one ansiterm.Model and a byte source, one subcommand per
// file.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/phroun/ansiterm/render"
)

// writeDocument writes doc's HTML to path, or to stdout if path is
// empty.
func writeDocument(doc render.Document, path string) error {
	var sb strings.Builder
	render.WriteHTML(&sb, doc)

	if path == "" {
		_, err := fmt.Fprint(os.Stdout, sb.String())
		return err
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}
