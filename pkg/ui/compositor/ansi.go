// Package compositor writes screen flush output as ANSI escape sequences.
package compositor

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/muesli/termenv"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/screen"
)

// ANSI escape sequences.
const (
	ANSIEscape        = termenv.CSI
	ANSIClearScreen   = "\x1b[2J"
	ANSICursorHome    = "\x1b[H"
	ANSICursorHide    = "\x1b[?25l"
	ANSICursorShow    = "\x1b[?25h"
	ANSIReset         = "\x1b[0m"
	ANSIAltScreen     = "\x1b[?1049h"
	ANSIMainScreen    = "\x1b[?1049l"
	ANSIMouseOn       = "\x1b[?1000h\x1b[?1002h\x1b[?1006h"
	ANSIMouseOff      = "\x1b[?1006l\x1b[?1002l\x1b[?1000l"
	ANSIBracketPaste  = "\x1b[?2004h"
	ANSIBracketOff    = "\x1b[?2004l"
)

// CursorTo returns the sequence moving the cursor to 1-based (row, col).
func CursorTo(row, col int) string {
	return ANSIEscape + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// ColorsTo returns the SGR sequence selecting a palette foreground and
// background.
func ColorsTo(fg, bg screen.Color) string {
	f := termenv.ANSIColor(fg.ANSI()).Sequence(false)
	b := termenv.ANSIColor(bg.ANSI()).Sequence(true)
	return ANSIEscape + f + ";" + b + "m"
}

// CursorShape returns the DECSCUSR sequence for style.
func CursorShape(style screen.CursorStyle) string {
	return fmt.Sprintf("%s%d q", ANSIEscape, style.DECSCUSR())
}

// ANSISink implements screen.Sink over an io.Writer. Output is buffered
// until Flush.
type ANSISink struct {
	w *bufio.Writer
}

// NewANSISink wraps w.
func NewANSISink(w io.Writer) *ANSISink {
	return &ANSISink{w: bufio.NewWriterSize(w, 16*1024)}
}

func (s *ANSISink) write(seq string) error {
	if _, err := s.w.WriteString(seq); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "write escape sequence")
	}
	return nil
}

// Goto moves the cursor.
func (s *ANSISink) Goto(row, col int) error {
	return s.write(CursorTo(row, col))
}

// SetColors selects foreground and background.
func (s *ANSISink) SetColors(fg, bg screen.Color) error {
	return s.write(ColorsTo(fg, bg))
}

// WriteChar writes one character at the cursor.
func (s *ANSISink) WriteChar(ch rune) error {
	if _, err := s.w.WriteRune(ch); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "write character")
	}
	return nil
}

// WriteRaw passes data through unchanged, e.g. a sixel payload.
func (s *ANSISink) WriteRaw(data string) error {
	return s.write(data)
}

// ShowCursor makes the cursor visible.
func (s *ANSISink) ShowCursor() error { return s.write(ANSICursorShow) }

// HideCursor hides the cursor.
func (s *ANSISink) HideCursor() error { return s.write(ANSICursorHide) }

// SetCursorStyle selects the cursor shape.
func (s *ANSISink) SetCursorStyle(style screen.CursorStyle) error {
	return s.write(CursorShape(style))
}

// Flush writes buffered output to the terminal.
func (s *ANSISink) Flush() error {
	if err := s.w.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "flush terminal output")
	}
	return nil
}

// EnterAltScreen switches to the alternate screen, clears it and enables
// mouse reporting and bracketed paste.
func (s *ANSISink) EnterAltScreen() error {
	if err := s.write(ANSIAltScreen + ANSIClearScreen + ANSICursorHome + ANSIMouseOn + ANSIBracketPaste); err != nil {
		return err
	}
	return s.Flush()
}

// ExitAltScreen undoes EnterAltScreen and restores default attributes.
func (s *ANSISink) ExitAltScreen() error {
	if err := s.write(ANSIBracketOff + ANSIMouseOff + ANSIReset + ANSICursorShow + ANSIMainScreen); err != nil {
		return err
	}
	return s.Flush()
}
