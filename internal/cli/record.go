package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"github.com/creack/pty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phroun/ansiterm"
	"github.com/phroun/ansiterm/render"
)

var recordOut string

// NewRecordCommand spawns a shell (or the given command) in a PTY,
// feeds its output through the ansiterm model incrementally, and on
// exit writes the rendered HTML to stdout or --out.
func NewRecordCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record [-- command...]",
		Short: "Record a shell session's ANSI output and render it as HTML",
		RunE:  runRecord,
	}
	cmd.Flags().StringVar(&recordOut, "out", "", "write rendered HTML here instead of stdout")
	return cmd
}

func runRecord(cmd *cobra.Command, args []string) error {
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "/bin/bash"
	}
	cmdline := args
	if len(cmdline) == 0 {
		cmdline = []string{shell}
	}

	child := exec.Command(cmdline[0], cmdline[1:]...)
	ptmx, err := pty.Start(child)
	if err != nil {
		return fmt.Errorf("starting pty: %w", err)
	}
	defer ptmx.Close()

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Printf("record: could not enter raw mode, continuing without it: %v", err)
	} else {
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	go func() { _, _ = io.Copy(ptmx, os.Stdin) }()

	m := ansiterm.Init(ansiterm.Cooked)
	buf := make([]byte, 4096)
	for {
		n, readErr := ptmx.Read(buf)
		if n > 0 {
			m = ansiterm.Update(string(buf[:n]), m)
			os.Stdout.Write(buf[:n])
		}
		if readErr != nil {
			break
		}
	}

	doc := render.HTML(m)
	return writeDocument(doc, recordOut)
}
