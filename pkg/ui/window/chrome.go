package window

import (
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

const (
	// MaximizeButtonWidth is the width of "[↑]" including brackets.
	MaximizeButtonWidth = 3
	// MaximizeButtonOffset is the button's distance from the right edge of
	// the title bar, leaving two border cells after it.
	MaximizeButtonOffset = 5
)

// Maximize button faces.
const (
	MaximizeGlyph = "[↑]"
	RestoreGlyph  = "[↕]"
)

// Style is the set of colors window chrome is drawn with.
type Style struct {
	Body   theme.Pair
	Border theme.Pair
	Title  theme.Pair
	Shadow bool
	// ShowMaximize draws the maximize/restore button.
	ShowMaximize bool
}

// DialogStyle takes dialog colors from th.
func DialogStyle(th *theme.Theme) Style {
	return Style{
		Body:         th.Dialog,
		Border:       th.DialogBorder,
		Title:        th.DialogTitle,
		Shadow:       th.DialogShadow,
		ShowMaximize: true,
	}
}

// EditorStyle takes editor pane colors from th.
func EditorStyle(th *theme.Theme) Style {
	return Style{
		Body:         th.Editor,
		Border:       th.EditorBorder,
		Title:        th.EditorTitle,
		ShowMaximize: true,
	}
}

// maximizeCol is the first column of the maximize button.
func maximizeCol(col, width int) int {
	return col + width - MaximizeButtonOffset
}

// DrawMaximizeButton draws [↑], or [↕] when maximized, on a title bar
// starting at col.
func DrawMaximizeButton(s *screen.Screen, row, col, width int, maximized bool, p theme.Pair) {
	if width < MaximizeButtonOffset+1 {
		return
	}
	glyph := MaximizeGlyph
	if maximized {
		glyph = RestoreGlyph
	}
	s.WriteString(row, maximizeCol(col, width), glyph, p.FG, p.BG)
}

// DrawTitleBar centers " title " on a title bar. With a maximize button
// the title centers in the space left of it.
func DrawTitleBar(s *screen.Screen, row, col, width int, title string, maximized, showMaximize bool, titlePair, buttonPair theme.Pair) {
	avail := width
	if showMaximize {
		avail = max(width-MaximizeButtonOffset-1, 0)
	}
	if title != "" && avail > 2 {
		text := " " + screen.Truncate(title, avail-2) + " "
		x := col + max(avail-screen.TextWidth(text), 0)/2
		s.WriteString(row, x, text, titlePair.FG, titlePair.BG)
	}
	if showMaximize {
		DrawMaximizeButton(s, row, col, width, maximized, buttonPair)
	}
}

// IsMaximizeButtonClick reports whether (row, col) is on the maximize
// button of a window whose title bar is titleRow.
func IsMaximizeButtonClick(row, col, titleRow, windowCol, windowWidth int) bool {
	btn := maximizeCol(windowCol, windowWidth)
	return row == titleRow && col >= btn && col < btn+MaximizeButtonWidth
}

// IsTitleBarClick reports whether (row, col) is on the title bar left of
// the maximize button.
func IsTitleBarClick(row, col, titleRow, windowCol, windowWidth int) bool {
	return row == titleRow && col >= windowCol && col < maximizeCol(windowCol, windowWidth)
}

// DrawFrame draws shadow, background, border and title bar for r.
func DrawFrame(s *screen.Screen, r layout.Rect, title string, maximized bool, st Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	if st.Shadow {
		s.DrawShadow(r)
	}
	s.Fill(r, ' ', st.Body.FG, st.Body.BG)
	s.DrawBox(r, st.Border.FG, st.Border.BG)
	// DrawBox blanks the interior in border colors
	s.Fill(r.Inset(1), ' ', st.Body.FG, st.Body.BG)
	DrawTitleBar(s, r.Y, r.X, r.Width, title, maximized, st.ShowMaximize, st.Title, st.Border)
}
