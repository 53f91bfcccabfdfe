// ABOUTME: Defines the Terminal interface for raw mode switching and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

// ErrNotTerminal is returned when raw mode is requested on something that is
// not an interactive terminal (a pipe, a regular file, /dev/null).
var ErrNotTerminal = errors.New("not a terminal")

// Terminal abstracts the low-level terminal operations keyecho needs:
// toggling raw input mode and writing output.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Write(p []byte) (n int, err error)
}
