// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Captures output, counts raw-mode transitions and can inject mode-switch failures.

package terminal

import (
	"bytes"
	"fmt"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// It records written output and tracks raw-mode transitions.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	writes     int
	rawMode    bool
	enterCount int
	exitCount  int
	enterErr   error
	exitErr    error
	writeErr   error
}

// NewVirtualTerminal returns a VirtualTerminal in cooked mode.
func NewVirtualTerminal() *VirtualTerminal {
	return &VirtualTerminal{}
}

// EnterRawMode records a raw-mode entry, or fails with the injected error.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterCount++
	if v.enterErr != nil {
		return fmt.Errorf("entering raw mode: %w", v.enterErr)
	}
	v.rawMode = true
	return nil
}

// ExitRawMode records a raw-mode exit, or fails with the injected error.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitCount++
	if v.exitErr != nil {
		return fmt.Errorf("exiting raw mode: %w", v.exitErr)
	}
	v.rawMode = false
	return nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writes++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Writes returns how many Write calls succeeded.
func (v *VirtualTerminal) Writes() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// Reset clears the output buffer and the write counter.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// FailEnter makes subsequent EnterRawMode calls return err (nil clears it).
func (v *VirtualTerminal) FailEnter(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.enterErr = err
}

// FailExit makes subsequent ExitRawMode calls return err (nil clears it).
func (v *VirtualTerminal) FailExit(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.exitErr = err
}

// FailWrite makes subsequent Write calls return err (nil clears it).
func (v *VirtualTerminal) FailWrite(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}
