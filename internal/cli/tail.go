package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/phroun/ansiterm"
	"github.com/phroun/ansiterm/render"
)

var tailOnce bool

// NewTailCommand opens a file, feeds its existing contents through
// Update, then watches it for appends and feeds each append
// incrementally -- the CI-log-viewer use case.
func NewTailCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tail <file>",
		Short: "Tail a growing log file and render it as HTML on every update",
		Args:  cobra.ExactArgs(1),
		RunE:  runTail,
	}
	cmd.Flags().BoolVar(&tailOnce, "once", false, "read the file once and exit instead of watching for appends")
	return cmd
}

func runTail(cmd *cobra.Command, args []string) error {
	path := args[0]
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	m := ansiterm.Init(ansiterm.Cooked)
	offset, err := drain(f, &m)
	if err != nil {
		return err
	}
	writeDocument(render.HTML(m), "")

	if tailOnce {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			n, err := drainAt(f, offset, &m)
			if err != nil {
				return err
			}
			offset += n
			if n > 0 {
				writeDocument(render.HTML(m), "")
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watching %s: %w", path, err)
		}
	}
}

// drain reads the whole of f from the start, feeding it through m, and
// returns the number of bytes read.
func drain(f *os.File, m *ansiterm.Model) (int64, error) {
	return drainAt(f, 0, m)
}

// drainAt reads f from offset to EOF, feeding what it reads through m,
// and returns the number of bytes read.
func drainAt(f *os.File, offset int64, m *ansiterm.Model) (int64, error) {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return 0, fmt.Errorf("seeking: %w", err)
	}
	buf := make([]byte, 32*1024)
	var total int64
	for {
		n, err := f.Read(buf)
		if n > 0 {
			*m = ansiterm.Update(string(buf[:n]), *m)
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, fmt.Errorf("reading: %w", err)
		}
	}
}
