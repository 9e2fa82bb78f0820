package config

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

type TerminalIO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

var DefaultTermIO = TerminalIO{
	Stdin:  os.Stdin,
	Stdout: os.Stdout,
	Stderr: os.Stderr,
}

func (t *TerminalIO) Printf(msg string, args ...interface{}) {
	fmt.Fprintf(t.Stdout, msg, args...)
}

// StdoutIsTerminal reports whether Stdout is an interactive terminal.
// Buffers and pipes are not.
func (t *TerminalIO) StdoutIsTerminal() bool {
	return isTerminal(t.Stdout)
}

// StdinIsPipe reports whether Stdin is being piped or redirected into.
func (t *TerminalIO) StdinIsPipe() bool {
	if t.Stdin == nil {
		return false
	}
	return !isTerminal(t.Stdin)
}

type fdFile interface {
	Fd() uintptr
}

func isTerminal(v interface{}) bool {
	f, ok := v.(fdFile)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
