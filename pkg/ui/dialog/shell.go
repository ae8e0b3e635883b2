package dialog

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/window"
)

// CancelAction is reported when a dialog is dismissed with Escape or a
// click outside its frame.
const CancelAction = "dialog_cancel"

// Shell is a modal dialog: floating window chrome around a widget tree.
type Shell struct {
	win               *window.Window
	content           *widget.Tree
	screenW, screenH  int
	chromeInteractive bool
	showMaximize      bool
}

// NewShell wraps content in a 60x18 frame titled title.
func NewShell(title string, content widget.Node, th theme.Theme) *Shell {
	return &Shell{
		win:               window.New(title),
		content:           widget.New(content, th),
		screenW:           80,
		screenH:           25,
		chromeInteractive: true,
		showMaximize:      true,
	}
}

// WithSize sets the frame size.
func (d *Shell) WithSize(width, height int) *Shell {
	d.win.WithSize(width, height)
	return d
}

// WithMinSize sets the smallest size a resize may produce.
func (d *Shell) WithMinSize(width, height int) *Shell {
	d.win.WithMinSize(width, height)
	return d
}

// SetScreenSize records the screen size used for centering and maximizing.
func (d *Shell) SetScreenSize(width, height int) {
	d.screenW, d.screenH = width, height
}

// Center moves the frame to the middle of the screen.
func (d *Shell) Center() { d.win.Center(d.screenW, d.screenH) }

// SetChromeInteractive enables dragging, resizing and maximizing.
func (d *Shell) SetChromeInteractive(on bool) { d.chromeInteractive = on }

// SetShowMaximize shows or hides the maximize button.
func (d *Shell) SetShowMaximize(on bool) { d.showMaximize = on }

// Window returns the frame.
func (d *Shell) Window() *window.Window { return d.win }

// Content returns the widget tree inside the frame.
func (d *Shell) Content() *widget.Tree { return d.content }

// FocusFirst focuses the first focusable widget.
func (d *Shell) FocusFirst() { d.content.FocusFirst() }

// Draw paints shadow, background, border, title bar and then the content
// clipped to the content rect.
func (d *Shell) Draw(s *screen.Screen) {
	st := window.DialogStyle(d.content.Theme())
	st.ShowMaximize = d.showMaximize
	d.win.DrawChrome(s, st)
	d.content.Draw(s, d.win.ContentRect())
}

// HandleEvent routes ev: Escape and clicks outside the frame cancel,
// interactive chrome takes drag/resize/maximize, and everything else goes
// to the content tree.
func (d *Shell) HandleEvent(ev input.Event) widget.Result {
	if ev.Kind == input.Escape {
		return widget.Action(CancelAction)
	}
	if ev.Kind == input.MouseClick && !ev.In(d.win.Bounds()) {
		return widget.Action(CancelAction)
	}
	if d.chromeInteractive && d.win.HandleEventWithScreen(ev, d.screenW, d.screenH) {
		return widget.Consumed
	}
	return d.content.HandleEvent(ev, d.win.ContentRect())
}
