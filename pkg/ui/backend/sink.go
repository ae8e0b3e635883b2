package backend

import (
	"strings"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/compositor"
	"github.com/odvcencio/textmode/pkg/ui/screen"
)

// Sink adapts a Backend to screen.Sink. It keeps its own write position and
// colors, so a flush becomes SetContent calls followed by Show.
//
// The backend only emits cells that differ from its own model. After a raw
// write the terminal no longer matches that model, so cells written in the
// same frame are also sent raw, and the next frame is a full Sync.
type Sink struct {
	b        Backend
	row, col int
	style    Style
	fg, bg   screen.Color
	shape    int

	raw     bool
	overlay strings.Builder
	resync  bool
}

// NewSink returns a sink drawing into b.
func NewSink(b Backend) *Sink {
	return &Sink{b: b, row: 1, col: 1, style: DefaultStyle()}
}

// PaletteColor converts a palette color to the backend color.
func PaletteColor(c screen.Color) Color {
	return Color(c.ANSI())
}

// Goto moves the write position.
func (s *Sink) Goto(row, col int) error {
	s.row, s.col = row, col
	return nil
}

// SetColors selects the colors for subsequent writes.
func (s *Sink) SetColors(fg, bg screen.Color) error {
	s.style = DefaultStyle().Foreground(PaletteColor(fg)).Background(PaletteColor(bg))
	s.fg, s.bg = fg, bg
	return nil
}

// WriteChar writes ch and advances one column.
func (s *Sink) WriteChar(ch rune) error {
	s.b.SetContent(s.col-1, s.row-1, ch, nil, s.style)
	if s.raw {
		s.overlay.WriteString(compositor.CursorTo(s.row, s.col))
		s.overlay.WriteString(compositor.ColorsTo(s.fg, s.bg))
		s.overlay.WriteRune(ch)
	}
	s.col++
	return nil
}

// WriteRaw forwards data to backends that support raw output.
func (s *Sink) WriteRaw(data string) error {
	w, ok := s.b.(RawWriter)
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "backend cannot write raw terminal data")
	}
	if err := w.WriteRaw(s.col-1, s.row-1, data); err != nil {
		return err
	}
	s.raw, s.resync = true, true
	return nil
}

// Invalidate makes the next Flush repaint every cell.
func (s *Sink) Invalidate() {
	s.resync = true
}

// ShowCursor shows the cursor at the write position.
func (s *Sink) ShowCursor() error {
	if shaper, ok := s.b.(CursorShaper); ok && s.shape > 0 {
		shaper.SetCursorShape(s.shape)
	}
	s.b.SetCursorPos(s.col-1, s.row-1)
	return nil
}

// HideCursor hides the cursor.
func (s *Sink) HideCursor() error {
	s.b.HideCursor()
	return nil
}

// SetCursorStyle records the shape applied by the next ShowCursor.
func (s *Sink) SetCursorStyle(style screen.CursorStyle) error {
	s.shape = style.DECSCUSR()
	return nil
}

// Flush shows the backend buffer. A frame that wrote raw data is shown
// normally and then its cells are replayed raw on top. A pending resync
// repaints everything instead.
func (s *Sink) Flush() error {
	if s.raw {
		s.raw = false
		s.b.Show()
		if s.overlay.Len() == 0 {
			return nil
		}
		data := s.overlay.String()
		s.overlay.Reset()
		return s.b.(RawWriter).WriteRaw(0, 0, data)
	}
	if s.resync {
		s.resync = false
		s.b.Sync()
	}
	s.b.Show()
	return nil
}

var _ screen.Sink = (*Sink)(nil)
