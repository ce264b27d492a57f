package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// DefaultCommand is the editor launched when nothing else is configured
const DefaultCommand = "vim"

// Launcher opens files in an external editor
type Launcher struct {
	// Command is the editor executable, optionally followed by arguments (e.g. "code --wait")
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New creates a Launcher attached to the operator's terminal
func New(command string) *Launcher {
	return &Launcher{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Open runs the editor on path and waits for it to exit
func (l *Launcher) Open(ctx context.Context, path string) error {
	args := strings.Fields(l.Command)
	if len(args) == 0 {
		return errors.New("no editor configured")
	}

	cmd := exec.CommandContext(ctx, args[0], append(args[1:], path)...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("error running editor %q: %w", args[0], err)
	}
	return nil
}
