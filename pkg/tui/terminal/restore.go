// ABOUTME: RestoreOnPanic recovers from panics, releases raw mode, and prints the stack trace.
// ABOUTME: Intended for use as a deferred call in the goroutine that holds the guard.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// exit is swapped out by tests.
var exit = os.Exit

// panicOutput receives the panic report; tests replace it.
var panicOutput io.Writer = os.Stderr

// RestoreOnPanic should be deferred right after Acquire succeeds, so it runs
// before the deferred Release. On panic it releases the guard (restoring the
// cooked terminal first, otherwise the trace is printed in raw mode), prints
// the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(g *RawModeGuard) {
	r := recover()
	if r == nil {
		return
	}

	// Best-effort: the process is going down either way.
	_ = g.Release()

	fmt.Fprintf(panicOutput, "\npanic: %v\n\n%s\n", r, debug.Stack())
	exit(1)
}
