package dialog

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

// Confirm asks a yes/no question. No, Cancel and dismissing all count as
// not confirmed.
type Confirm struct {
	shellController
	title     string
	text      string
	confirmed bool
	onResult  func(confirmed bool)
}

// NewConfirm creates an empty confirm dialog. Call SetMessage before
// opening it.
func NewConfirm() *Confirm {
	return &Confirm{shellController: newShellController()}
}

// SetMessage sets the question and the callback run when it is answered.
func (c *Confirm) SetMessage(title, text string, onResult func(confirmed bool)) {
	c.title, c.text, c.onResult = title, text, onResult
	c.shell = nil
}

// Confirmed reports the last answer.
func (c *Confirm) Confirmed() bool { return c.confirmed }

func (c *Confirm) build() {
	content := messageBody(c.text).
		Child(row("buttons").
			Leaf("left_pad", widgets.FixedSpacer(5)).
			Leaf("yes_button", widgets.NewButton("Yes", "yes").WithMinWidth(7)).
			Leaf("gap1", widgets.FixedSpacer(2)).
			Leaf("no_button", widgets.NewButton("No", "no").WithMinWidth(7)).
			Leaf("gap2", widgets.FixedSpacer(2)).
			Leaf("cancel_button", widgets.NewButton("Cancel", "cancel").WithMinWidth(11)).
			Leaf("right_spacer", widgets.NewSpacer()))

	s := NewShell(c.title, content, c.theme).WithSize(50, 10).WithMinSize(30, 6)
	s.SetShowMaximize(false)
	s.SetChromeInteractive(false)
	c.setShell(s)
}

// Open shows the dialog with Yes focused.
func (c *Confirm) Open(*Context) {
	if c.shell == nil {
		c.build()
	}
	c.confirmed = false
	c.show()
}

// HandleEvent closes on any answer and reports it to the callback.
func (c *Confirm) HandleEvent(ev input.Event, _ *Context) Result {
	if !c.open {
		return Closed
	}
	r := c.shell.HandleEvent(ev)
	switch {
	case r.Is("yes"):
		c.answer(true)
	case r.Is("no"), r.Is("cancel"), r.Is(CancelAction):
		c.answer(false)
	default:
		return Open
	}
	return Closed
}

func (c *Confirm) answer(yes bool) {
	c.confirmed = yes
	c.open = false
	if c.onResult != nil {
		c.onResult(yes)
	}
}

var _ Controller = (*Confirm)(nil)
