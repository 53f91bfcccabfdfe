// ABOUTME: RawModeGuard scopes raw mode: Acquire switches the terminal, Release restores it.
// ABOUTME: Only one guard may be active per process; a second Acquire fails without touching the terminal.

package terminal

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// ErrGuardActive is returned by Acquire while another guard still holds raw mode.
var ErrGuardActive = errors.New("raw mode guard already active")

// active is set while a guard holds raw mode. Raw mode is process-wide
// terminal state, so the flag is too.
var active atomic.Bool

// RawModeGuard owns the fact that raw mode is on for a Terminal.
// Intended use:
//
//	guard, err := terminal.Acquire(t)
//	if err != nil { ... }
//	defer guard.Release()
type RawModeGuard struct {
	term     Terminal
	once     sync.Once
	released atomic.Bool
	err      error
}

// Acquire puts t into raw mode and returns the guard that will restore it.
func Acquire(t Terminal) (*RawModeGuard, error) {
	if !active.CompareAndSwap(false, true) {
		return nil, ErrGuardActive
	}
	if err := t.EnterRawMode(); err != nil {
		active.Store(false)
		return nil, fmt.Errorf("acquiring raw mode: %w", err)
	}
	return &RawModeGuard{term: t}, nil
}

// Release restores the mode the terminal had before Acquire.
// Only the first call touches the terminal; later calls return the first result.
func (g *RawModeGuard) Release() error {
	g.once.Do(func() {
		if err := g.term.ExitRawMode(); err != nil {
			g.err = fmt.Errorf("releasing raw mode: %w", err)
		}
		g.released.Store(true)
		active.Store(false)
	})
	return g.err
}
