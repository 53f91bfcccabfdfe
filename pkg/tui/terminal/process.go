// ABOUTME: ProcessTerminal implements Terminal over real file descriptors using golang.org/x/term.
// ABOUTME: Saves the cooked state on EnterRawMode and puts it back on ExitRawMode.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal: raw mode is applied to the input file,
// output goes to the output file.
type ProcessTerminal struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
}

// NewProcessTerminal returns a ProcessTerminal reading from in and writing to out.
// Tests pass both ends of a pseudo-terminal here.
func NewProcessTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// NewStdioTerminal returns a ProcessTerminal bound to os.Stdin and os.Stdout.
func NewStdioTerminal() *ProcessTerminal {
	return NewProcessTerminal(os.Stdin, os.Stdout)
}

// EnterRawMode switches the input to raw mode, saving the previous state.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	fd := int(t.in.Fd())
	if !term.IsTerminal(fd) {
		return fmt.Errorf("entering raw mode on %s: %w", t.in.Name(), ErrNotTerminal)
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the terminal to the state saved by EnterRawMode.
// It is a no-op when raw mode was never entered.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether EnterRawMode succeeded without a matching ExitRawMode.
func (t *ProcessTerminal) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.oldState != nil
}

// Write sends bytes to the output file.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to %s: %w", t.out.Name(), err)
	}
	return n, nil
}
