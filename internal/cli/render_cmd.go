package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phroun/ansiterm"
	"github.com/phroun/ansiterm/render"
)

var renderRaw bool

// NewRenderCommand reads a file in one shot, runs it through a single
// Update, and writes the rendered HTML. It has no incrementality; it
// exists to exercise render standalone and as a quick smoke test for
// the wire protocol.
func NewRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a captured ANSI byte stream as HTML",
		Args:  cobra.ExactArgs(1),
		RunE:  runRender,
	}
	cmd.Flags().BoolVar(&renderRaw, "raw", false, "use the Raw line discipline instead of Cooked")
	return cmd
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	discipline := ansiterm.Cooked
	if renderRaw {
		discipline = ansiterm.Raw
	}
	m := ansiterm.Update(string(data), ansiterm.Init(discipline))
	return writeDocument(render.HTML(m), "")
}
