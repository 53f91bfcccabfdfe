// ABOUTME: Leveled diagnostic logging on stderr, gated by slog levels
// ABOUTME: Switches to CRLF line endings while the terminal is in raw mode

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// EnvLevel names the environment variable read by LevelFromEnv.
const EnvLevel = "KEYECHO_LOG"

var (
	level atomic.Int64
	raw   atomic.Bool

	mu  sync.Mutex
	out io.Writer = os.Stderr
)

func init() {
	level.Store(int64(LevelInfo))
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return slog.Level(level.Load())
}

// SetOutput redirects log output; nil restores os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	out = w
}

// SetRawMode selects CRLF line endings. Raw mode turns off output
// post-processing, so a bare LF would not return the cursor.
func SetRawMode(on bool) {
	raw.Store(on)
}

// LevelFromEnv parses KEYECHO_LOG (debug, info, warn, error).
// Unset or unrecognized values yield LevelInfo and false.
func LevelFromEnv() (slog.Level, bool) {
	return ParseLevel(os.Getenv(EnvLevel))
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}

func emit(tag, format string, args []any) {
	eol := "\n"
	if raw.Load() {
		eol = "\r\n"
	}

	mu.Lock()
	defer mu.Unlock()
	fmt.Fprintf(out, "["+tag+"] "+format+eol, args...)
}

// Debug logs a debug message if the level allows it.
func Debug(format string, args ...any) {
	if slog.Level(level.Load()) > LevelDebug {
		return
	}
	emit("DEBUG", format, args)
}

// Info logs an info message if the level allows it.
func Info(format string, args ...any) {
	if slog.Level(level.Load()) > LevelInfo {
		return
	}
	emit("INFO", format, args)
}

// Warn logs a warning message if the level allows it.
func Warn(format string, args ...any) {
	if slog.Level(level.Load()) > LevelWarn {
		return
	}
	emit("WARN", format, args)
}

// Error logs an error message (always emitted).
func Error(format string, args ...any) {
	emit("ERROR", format, args)
}
