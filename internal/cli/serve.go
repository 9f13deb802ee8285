package cli

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/phroun/ansiterm/internal/liveview"
)

var serveAddr string

// NewServeCommand tails a file the same way tail does, but pushes every
// rendered update to connected browsers over a websocket instead of
// printing HTML. It reads only from a file; it does not spawn or record
// a command.
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve <file>",
		Short: "Serve a live-updating rendered view of a growing log file",
		Args:  cobra.ExactArgs(1),
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&serveAddr, "addr", ":8080", "address to listen on")
	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	srv, err := liveview.New(args[0])
	if err != nil {
		return fmt.Errorf("starting live view: %w", err)
	}
	log.Printf("serving %s on http://%s", args[0], serveAddr)
	return srv.ListenAndServe(serveAddr)
}
