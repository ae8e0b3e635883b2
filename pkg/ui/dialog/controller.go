// Package dialog provides modal dialogs: the Shell that frames a widget
// tree, the Controller contract, a Registry that keeps at most one dialog
// open, and the stock Message, Confirm, Find, GoTo and Replace dialogs.
package dialog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

// Themed is implemented by controllers whose colors can be swapped.
type Themed interface {
	SetTheme(th theme.Theme)
}

// shellController carries the state every stock controller shares.
type shellController struct {
	shell            *Shell
	theme            theme.Theme
	open             bool
	screenW, screenH int
}

func newShellController() shellController {
	return shellController{theme: theme.Dialog()}
}

func (c *shellController) IsOpen() bool { return c.open }

func (c *shellController) Close() { c.open = false }

func (c *shellController) SetScreenSize(width, height int) {
	c.screenW, c.screenH = width, height
	if c.shell != nil {
		c.shell.SetScreenSize(width, height)
	}
}

// SetTheme recolors the dialog.
func (c *shellController) SetTheme(th theme.Theme) {
	c.theme = th
	if c.shell != nil {
		c.shell.Content().SetTheme(th)
	}
}

// Shell returns the current shell, nil before the first build.
func (c *shellController) Shell() *Shell { return c.shell }

// setShell installs a freshly built shell, keeping the screen size.
func (c *shellController) setShell(s *Shell) {
	c.shell = s
	if c.screenW > 0 && c.screenH > 0 {
		s.SetScreenSize(c.screenW, c.screenH)
	}
}

// show focuses the first widget and centers the frame.
func (c *shellController) show() {
	c.open = true
	c.shell.FocusFirst()
	c.shell.Center()
}

func (c *shellController) Draw(s *screen.Screen) {
	if !c.open || c.shell == nil {
		return
	}
	c.shell.Draw(s)
}

// messageBody stacks one label per line of text above a flexible gap.
func messageBody(text string) *widget.Container {
	root := widget.VStack("root").Padding(1)
	for i, line := range strings.Split(text, "\n") {
		root.Leaf("line_"+strconv.Itoa(i), widgets.NewLabel(line))
	}
	return root.Leaf("spacer", widgets.NewSpacer())
}

// row is a one-line horizontal stack.
func row(id string) *widget.Container {
	return widget.HStack(id).Height(layout.Fixed(1))
}

// highlightWhenFocused lights the label at labelPath while the widget with
// id fieldID holds focus.
func highlightWhenFocused(t *widget.Tree, fieldID string, labelPath ...string) {
	if l, ok := widget.Find[*widgets.Label](t, labelPath...); ok {
		l.SetHighlight(slices.Contains(t.FocusPath(), fieldID))
	}
}
