// Package widgets provides the stock leaf widgets for widget trees: buttons,
// labels, text fields, toggles, rules, spacers, lists and scrollbars.
package widgets

import (
	"strings"
	"time"

	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// FocusableBase is widget.Base for widgets that take keyboard focus.
type FocusableBase struct {
	widget.Base
}

// Focusable returns true.
func (f *FocusableBase) Focusable() bool { return true }

// Clock reports the current time. Widgets that measure intervals take one
// so tests can control it.
type Clock func() time.Time

// SystemClock reads the wall clock.
func SystemClock() time.Time { return time.Now() }

// Alignment positions text within its bounds.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// textWidth returns the number of cells s takes when written.
func textWidth(s string) int {
	return screen.TextWidth(s)
}

// truncate cuts s to at most width cells.
func truncate(s string, width int) string {
	return screen.Truncate(s, width)
}

// padRight truncates or pads s to exactly width cells.
func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = truncate(s, width)
	return s + strings.Repeat(" ", width-textWidth(s))
}

// alignedCol returns the starting column for text of the given width.
func alignedCol(bounds layout.Rect, width int, align Alignment) int {
	switch align {
	case AlignCenter:
		return bounds.X + max(bounds.Width-width, 0)/2
	case AlignRight:
		return bounds.X + max(bounds.Width-width, 0)
	}
	return bounds.X
}

// drawLine writes s on one row clipped to width cells.
func drawLine(s *screen.Screen, row, col, width int, text string, fg, bg screen.Color) {
	s.WriteString(row, col, truncate(text, width), fg, bg)
}
