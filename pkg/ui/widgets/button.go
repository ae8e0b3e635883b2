package widgets

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// Button is a pushable `< label >` that reports its action on Enter, Space
// or click.
type Button struct {
	FocusableBase

	label    string
	action   string
	brackets bool
	minWidth int
}

// NewButton creates a bracketed button.
func NewButton(label, action string) *Button {
	return &Button{label: label, action: action, brackets: true}
}

// WithBrackets toggles the angle brackets.
func (b *Button) WithBrackets(on bool) *Button {
	b.brackets = on
	return b
}

// WithMinWidth sets the layout width. Buttons of one row often share it.
func (b *Button) WithMinWidth(n int) *Button {
	b.minWidth = n
	return b
}

// Label returns the label text.
func (b *Button) Label() string { return b.label }

// SetLabel replaces the label text.
func (b *Button) SetLabel(label string) { b.label = label }

// Action returns the action name.
func (b *Button) Action() string { return b.action }

// DisplayWidth is the width of the rendered button.
func (b *Button) DisplayWidth() int {
	if b.brackets {
		return textWidth(b.label) + 4
	}
	return textWidth(b.label)
}

func (b *Button) text() string {
	if b.brackets {
		return "< " + b.label + " >"
	}
	return b.label
}

// Draw renders the button on the first row of bounds.
func (b *Button) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Empty() {
		return
	}
	p := th.Button
	if b.HasFocus() {
		p = th.ButtonFocused
	}
	drawLine(s, bounds.Y, bounds.X, bounds.Width, b.text(), p.FG, p.BG)
}

// HandleEvent fires the action on Enter or Space when focused, or on a
// click inside bounds.
func (b *Button) HandleEvent(ev input.Event, bounds layout.Rect, phase widget.Phase) widget.Result {
	if phase != widget.Target {
		return widget.Ignored
	}
	if b.HasFocus() && (ev.Kind == input.Enter || ev == input.Rune(' ')) {
		return widget.Action(b.action)
	}
	if ev.Kind == input.MouseClick && ev.In(bounds) {
		return widget.Action(b.action)
	}
	return widget.Ignored
}

// SizeHint asks for the rendered width, or the configured minimum.
func (b *Button) SizeHint() layout.SizeHint {
	w := b.DisplayWidth()
	if b.minWidth > 0 {
		w = b.minWidth
	}
	return layout.SizeHint{MinWidth: w, MinHeight: 1}
}

// WantsTightWidth keeps buttons from stretching.
func (b *Button) WantsTightWidth() bool { return true }
