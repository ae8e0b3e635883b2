package dialog

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

// Message shows text with an OK button.
type Message struct {
	shellController
	title string
	text  string
}

// NewMessage creates an empty message dialog. Call SetMessage before
// opening it.
func NewMessage() *Message {
	return &Message{shellController: newShellController()}
}

// SetMessage sets the title and text. Lines are split on newlines.
func (m *Message) SetMessage(title, text string) {
	m.title, m.text = title, text
	m.shell = nil
}

func (m *Message) build() {
	content := messageBody(m.text).
		Child(row("buttons").
			Spacing(2).
			Leaf("left_spacer", widgets.NewSpacer()).
			Leaf("ok_button", widgets.NewButton("OK", "ok").WithMinWidth(6)).
			Leaf("right_spacer", widgets.NewSpacer()))

	s := NewShell(m.title, content, m.theme).WithSize(50, 10).WithMinSize(30, 6)
	s.SetShowMaximize(false)
	m.setShell(s)
}

func (m *Message) ensure() {
	if m.shell == nil {
		m.build()
	}
}

// Open shows the dialog with OK focused.
func (m *Message) Open(*Context) {
	m.ensure()
	m.show()
}

// HandleEvent closes on OK or cancel.
func (m *Message) HandleEvent(ev input.Event, _ *Context) Result {
	if !m.open {
		return Closed
	}
	m.ensure()
	switch r := m.shell.HandleEvent(ev); {
	case r.Is("ok"), r.Is(CancelAction):
		m.open = false
		return Closed
	}
	return Open
}

var _ Controller = (*Message)(nil)
