package widgets

import (
	"strconv"

	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// StatusBar is a one-row bar: status text on the left, an optional hint in
// the middle and the cursor position on the right.
type StatusBar struct {
	widget.Base

	status    string
	hint      string
	line, col int
}

// NewStatusBar creates a status bar reading "Ready".
func NewStatusBar() *StatusBar {
	return &StatusBar{status: "Ready"}
}

// SetStatus updates the status text.
func (s *StatusBar) SetStatus(text string) { s.status = text }

// Status returns the status text.
func (s *StatusBar) Status() string { return s.status }

// SetHint sets the centered hint, such as key bindings.
func (s *StatusBar) SetHint(text string) { s.hint = text }

// SetPosition sets the 1-based line and column shown on the right. Zero
// hides the indicator.
func (s *StatusBar) SetPosition(line, col int) { s.line, s.col = line, col }

// Position renders the right-hand indicator.
func (s *StatusBar) Position() string {
	if s.line <= 0 {
		return ""
	}
	return strconv.Itoa(s.line) + ":" + strconv.Itoa(max(s.col, 1))
}

// Draw fills the row and lays out the three parts. The hint is dropped when
// it would touch either side.
func (s *StatusBar) Draw(scr *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Empty() {
		return
	}
	p := th.StatusBar
	scr.Fill(layout.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', p.FG, p.BG)

	left := " " + s.status
	drawLine(scr, bounds.Y, bounds.X, bounds.Width, left, p.FG, p.BG)
	leftEnd := bounds.X + textWidth(left)

	right := ""
	if pos := s.Position(); pos != "" {
		right = pos + " "
	}
	rightStart := bounds.Right()
	if right != "" {
		col := bounds.Right() - textWidth(right)
		if col > leftEnd {
			scr.WriteString(bounds.Y, col, right, p.FG, p.BG)
			rightStart = col
		}
	}

	if s.hint != "" {
		w := textWidth(s.hint)
		col := bounds.X + (bounds.Width-w)/2
		if col > leftEnd && col+w < rightStart {
			scr.WriteString(bounds.Y, col, s.hint, p.FG, p.BG)
		}
	}
}

// SizeHint asks for one row.
func (s *StatusBar) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinWidth: 1, MinHeight: 1}
}

// WantsFullBleed lets the bar span container padding.
func (s *StatusBar) WantsFullBleed() bool { return true }
