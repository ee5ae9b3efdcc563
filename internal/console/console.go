// Package console is the line-oriented output sink for league reports.
package console

import (
	"fmt"
	"io"
	"os"
	"sync"
)

const (
	ansiRed    = "\x1b[31m"
	ansiYellow = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

// Console writes report lines to out and diagnostics to errOut.
// Info is always plain text; Warn and Error are colored when enabled.
type Console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	color  bool
}

// New constructs a Console. Nil writers fall back to stdout/stderr.
func New(out, errOut io.Writer, color bool) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Console{out: out, errOut: errOut, color: color}
}

func (c *Console) Info(message string) {
	c.write(c.out, "", message)
}

func (c *Console) Warn(message string) {
	c.write(c.errOut, ansiYellow, message)
}

func (c *Console) Error(message string) {
	c.write(c.errOut, ansiRed, message)
}

func (c *Console) write(w io.Writer, color, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.color && color != "" {
		message = color + message + ansiReset
	}
	// A sink has nowhere to report its own write failures.
	_, _ = fmt.Fprintln(w, message)
}
