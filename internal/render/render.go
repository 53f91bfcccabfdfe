// ABOUTME: Formats one input byte as "<glyph> - <value>" and writes it to a sink in a single Write
// ABOUTME: Control bytes use caret or M- notation; 0xA0-0xFF decode as ISO 8859-1 via x/text charmap

package render

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/text/encoding/charmap"
)

// lineStart begins every record. Raw mode disables output post-processing,
// so the carriage return has to be explicit.
const lineStart = "\r\n"

// Glyph returns the printable representation of b.
func Glyph(b byte) string {
	switch {
	case b < 0x20:
		return "^" + string(rune(b+'@'))
	case b == 0x7f:
		return "^?"
	case b < 0x80:
		return string(rune(b))
	case b < 0xa0:
		// C1 controls: some terminals act on them (0x9b is CSI).
		return "M-" + Glyph(b&0x7f)
	default:
		return string(charmap.ISO8859_1.DecodeByte(b))
	}
}

// Line returns the full record written for b, including the leading CRLF.
func Line(b byte) string {
	return lineStart + Glyph(b) + " - " + strconv.Itoa(int(b))
}

// Render writes the record for b to w with exactly one Write call.
func Render(w io.Writer, b byte) error {
	if _, err := io.WriteString(w, Line(b)); err != nil {
		return fmt.Errorf("rendering byte %d: %w", b, err)
	}
	return nil
}
