// ABOUTME: Tests for RawModeGuard acquire/release semantics against VirtualTerminal.
// ABOUTME: Not parallel: the guard flag is process-wide.

package terminal

import (
	"errors"
	"testing"
)

func TestAcquire_EntersRawMode(t *testing.T) {
	vt := NewVirtualTerminal()

	g, err := Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	defer g.Release()

	if !vt.IsRawMode() {
		t.Error("expected raw mode on after Acquire")
	}
	if g.released.Load() {
		t.Error("released = true before Release")
	}
}

func TestRelease_RestoresPriorMode(t *testing.T) {
	vt := NewVirtualTerminal()
	before := vt.IsRawMode()

	g, err := Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	if err := g.Release(); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}

	if after := vt.IsRawMode(); after != before {
		t.Errorf("raw mode after release = %v, want %v", after, before)
	}
	if !g.released.Load() {
		t.Error("released = false after Release")
	}
}

func TestRelease_Idempotent(t *testing.T) {
	vt := NewVirtualTerminal()

	g, err := Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	for i := range 3 {
		if err := g.Release(); err != nil {
			t.Fatalf("Release() #%d unexpected error: %v", i, err)
		}
	}

	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}

func TestAcquire_SecondGuardRejected(t *testing.T) {
	first := NewVirtualTerminal()
	second := NewVirtualTerminal()

	g, err := Acquire(first)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}

	if _, err := Acquire(second); !errors.Is(err, ErrGuardActive) {
		t.Fatalf("second Acquire() error = %v, want %v", err, ErrGuardActive)
	}
	if second.EnterCount() != 0 {
		t.Errorf("rejected Acquire touched the terminal: EnterCount() = %d", second.EnterCount())
	}

	if err := g.Release(); err != nil {
		t.Fatalf("Release() unexpected error: %v", err)
	}

	// The slot is free again once the first guard is released.
	g2, err := Acquire(second)
	if err != nil {
		t.Fatalf("Acquire() after release unexpected error: %v", err)
	}
	_ = g2.Release()
}

func TestAcquire_EnterFailure(t *testing.T) {
	errDenied := errors.New("permission denied")
	vt := NewVirtualTerminal()
	vt.FailEnter(errDenied)

	g, err := Acquire(vt)
	if !errors.Is(err, errDenied) {
		t.Fatalf("Acquire() error = %v, want wrapping %v", err, errDenied)
	}
	if g != nil {
		t.Error("Acquire() returned a guard alongside an error")
	}

	// A failed acquire must not leave the slot taken.
	vt.FailEnter(nil)
	g, err = Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() after failure unexpected error: %v", err)
	}
	_ = g.Release()
}

func TestRelease_ExitFailure(t *testing.T) {
	errIO := errors.New("input/output error")
	vt := NewVirtualTerminal()

	g, err := Acquire(vt)
	if err != nil {
		t.Fatalf("Acquire() unexpected error: %v", err)
	}
	vt.FailExit(errIO)

	if err := g.Release(); !errors.Is(err, errIO) {
		t.Fatalf("Release() error = %v, want wrapping %v", err, errIO)
	}
	// Later calls report the same failure without retrying.
	if err := g.Release(); !errors.Is(err, errIO) {
		t.Errorf("second Release() error = %v, want wrapping %v", err, errIO)
	}
	if vt.ExitCount() != 1 {
		t.Errorf("ExitCount() = %d, want 1", vt.ExitCount())
	}
}
