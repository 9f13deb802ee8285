package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCommand assembles the ansiterm CLI: record/tail/render/serve.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "ansiterm",
		Short: "Capture and render ANSI terminal output",
		Long: `ansiterm interprets a byte stream of printable text and ANSI escape
sequences and renders the resulting terminal buffer as HTML.

Examples:
  ansiterm record -- bash -c "ls --color=always"
  ansiterm tail build.log
  ansiterm render build.log > build.html
  ansiterm serve build.log --addr :8080`,
	}
	root.AddCommand(NewRecordCommand())
	root.AddCommand(NewTailCommand())
	root.AddCommand(NewRenderCommand())
	root.AddCommand(NewServeCommand())
	return root
}
