// ABOUTME: CLI entry point for keyecho: prints each raw keystroke byte as "<glyph> - <value>"
// ABOUTME: Holds the terminal in raw mode for the session and restores it on every exit path

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pilog "github.com/mauromedda/keyecho/internal/log"
	"github.com/mauromedda/keyecho/internal/mode/echo"
	"github.com/mauromedda/keyecho/pkg/tui/input"
	"github.com/mauromedda/keyecho/pkg/tui/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// run acquires raw mode, starts the stdin bridge and runs the echo loop.
// Raw mode is released on return, on panic and on SIGINT/SIGTERM/SIGHUP.
func run() (err error) {
	if lvl, ok := pilog.LevelFromEnv(); ok {
		pilog.SetLevel(lvl)
	}

	tty := terminal.NewStdioTerminal()
	guard, err := terminal.Acquire(tty)
	if err != nil {
		return err
	}
	pilog.SetRawMode(true)
	defer func() {
		pilog.SetRawMode(false)
		if rerr := guard.Release(); rerr != nil {
			err = errors.Join(err, rerr)
		}
	}()
	// Registered after the release so it runs first on panic.
	defer terminal.RestoreOnPanic(guard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	bridge := input.Start(os.Stdin)
	pilog.Debug("reading keys; press Ctrl+C to quit")

	if err := echo.Run(ctx, bridge, tty); err != nil {
		return fmt.Errorf("echo loop: %w", err)
	}
	// Leave the shell prompt on a fresh line.
	_, _ = tty.Write([]byte("\r\n"))
	return nil
}
