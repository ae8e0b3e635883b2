package widgets

import (
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// Label displays one line of static text.
type Label struct {
	widget.Base

	text      string
	align     Alignment
	highlight bool
	minWidth  int
}

// NewLabel creates a left-aligned label.
func NewLabel(text string) *Label {
	return &Label{text: text}
}

// WithAlignment sets the alignment.
func (l *Label) WithAlignment(a Alignment) *Label {
	l.align = a
	return l
}

// Centered centers the text.
func (l *Label) Centered() *Label { return l.WithAlignment(AlignCenter) }

// WithMinWidth gives the label a tight width of at least n cells, which
// lines up labels in a column.
func (l *Label) WithMinWidth(n int) *Label {
	l.minWidth = n
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText replaces the text. The next layout pass picks up the new width.
func (l *Label) SetText(text string) { l.text = text }

// SetHighlight switches to the highlight colors.
func (l *Label) SetHighlight(on bool) { l.highlight = on }

// Highlighted reports whether the highlight colors are in use.
func (l *Label) Highlighted() bool { return l.highlight }

// Draw renders the text on the first row of bounds.
func (l *Label) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Empty() {
		return
	}
	p := th.Label
	if l.highlight {
		p = th.LabelHighlight
	}
	text := truncate(l.text, bounds.Width)
	s.WriteString(bounds.Y, alignedCol(bounds, textWidth(text), l.align), text, p.FG, p.BG)
}

// SizeHint asks for the text width.
func (l *Label) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinWidth: max(textWidth(l.text), l.minWidth), MinHeight: 1}
}

// WantsTightWidth is true once a minimum width is set.
func (l *Label) WantsTightWidth() bool { return l.minWidth > 0 }
