package widgets

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// toggle is the shared shape of checkboxes and radio buttons: a marker,
// a label and an action fired on Enter, Space or click.
type toggle struct {
	FocusableBase

	label    string
	action   string
	on       bool
	minWidth int
}

func (t *toggle) activated(ev input.Event, bounds layout.Rect, phase widget.Phase) bool {
	if phase != widget.Target {
		return false
	}
	if t.HasFocus() && (ev.Kind == input.Enter || ev == input.Rune(' ')) {
		return true
	}
	return ev.Kind == input.MouseClick && ev.In(bounds)
}

func (t *toggle) draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme, text string) {
	if bounds.Width < 4 || bounds.Height < 1 {
		return
	}
	p := th.Checkbox
	if t.HasFocus() {
		p = th.CheckboxFocused
	}
	drawLine(s, bounds.Y, bounds.X, bounds.Width, text, p.FG, p.BG)
}

func (t *toggle) SizeHint() layout.SizeHint {
	w := textWidth(t.label) + 4
	return layout.SizeHint{MinWidth: max(w, t.minWidth), MinHeight: 1}
}

func (t *toggle) WantsTightWidth() bool { return true }

// Label returns the label text.
func (t *toggle) Label() string { return t.label }

// Checkbox is a `[X] label` toggle.
type Checkbox struct {
	toggle
}

// NewCheckbox creates an unchecked checkbox.
func NewCheckbox(label, action string) *Checkbox {
	return &Checkbox{toggle{label: label, action: action}}
}

// WithMinWidth pads the layout width, for aligning columns.
func (c *Checkbox) WithMinWidth(n int) *Checkbox {
	c.minWidth = n
	return c
}

// Checked reports the state.
func (c *Checkbox) Checked() bool { return c.on }

// SetChecked sets the state.
func (c *Checkbox) SetChecked(on bool) { c.on = on }

// Toggle flips the state.
func (c *Checkbox) Toggle() { c.on = !c.on }

// Draw renders the box and label with the theme's marker runes.
func (c *Checkbox) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	mark := th.UncheckedRune
	if c.on {
		mark = th.CheckedRune
	}
	c.draw(s, bounds, th, "["+string(mark)+"] "+c.label)
}

// HandleEvent toggles and reports the action.
func (c *Checkbox) HandleEvent(ev input.Event, bounds layout.Rect, phase widget.Phase) widget.Result {
	if !c.activated(ev, bounds, phase) {
		return widget.Ignored
	}
	c.Toggle()
	return widget.Action(c.action)
}

// RadioButton is a `(o) label` choice. It only reports activation; a
// RadioGroup decides which button is selected.
type RadioButton struct {
	toggle
}

// NewRadioButton creates an unselected radio button.
func NewRadioButton(label, action string) *RadioButton {
	return &RadioButton{toggle{label: label, action: action}}
}

// Selected reports the state.
func (r *RadioButton) Selected() bool { return r.on }

// SetSelected sets the state.
func (r *RadioButton) SetSelected(on bool) { r.on = on }

// Action returns the action name.
func (r *RadioButton) Action() string { return r.action }

// Draw renders the marker and label.
func (r *RadioButton) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	mark := " "
	if r.on {
		mark = "o"
	}
	r.draw(s, bounds, th, "("+mark+") "+r.label)
}

// HandleEvent reports the action without changing the selection.
func (r *RadioButton) HandleEvent(ev input.Event, bounds layout.Rect, phase widget.Phase) widget.Result {
	if !r.activated(ev, bounds, phase) {
		return widget.Ignored
	}
	return widget.Action(r.action)
}

// RadioGroup keeps exactly one of its buttons selected.
type RadioGroup struct {
	buttons []*RadioButton
}

// NewRadioGroup groups buttons and selects the first.
func NewRadioGroup(buttons ...*RadioButton) *RadioGroup {
	g := &RadioGroup{buttons: buttons}
	g.Select(0)
	return g
}

// Buttons returns the grouped buttons.
func (g *RadioGroup) Buttons() []*RadioButton { return g.buttons }

// Select selects the button at i. Out of range indexes are ignored.
func (g *RadioGroup) Select(i int) {
	if i < 0 || i >= len(g.buttons) {
		return
	}
	for j, b := range g.buttons {
		b.SetSelected(i == j)
	}
}

// Selected returns the index of the selected button, or -1.
func (g *RadioGroup) Selected() int {
	for i, b := range g.buttons {
		if b.Selected() {
			return i
		}
	}
	return -1
}

// HandleAction selects the button whose action is name. It reports
// whether name belonged to the group.
func (g *RadioGroup) HandleAction(name string) bool {
	for i, b := range g.buttons {
		if b.action == name {
			g.Select(i)
			return true
		}
	}
	return false
}
