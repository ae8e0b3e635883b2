package dialog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

var (
	lineFieldPath = []string{"root", "line_row", "line_field"}
	lineLabelPath = []string{"root", "line_row", "line_label"}
)

// GoTo moves the editor cursor to a 1-based line number.
type GoTo struct {
	shellController
}

// NewGoTo builds the Go To Line dialog.
func NewGoTo() *GoTo {
	g := &GoTo{shellController: newShellController()}
	content := widget.VStack("root").
		Padding(1).
		Child(row("line_row").
			Leaf("line_label", widgets.NewLabel("Line number:").WithMinWidth(14)).
			Leaf("line_field", widgets.NewTextField("line"))).
		Leaf("spacer1", widgets.FixedSpacer(1)).
		Child(row("buttons_row").
			Spacing(2).
			Leaf("btn_spacer_left", widgets.NewSpacer()).
			Leaf("ok_button", widgets.NewButton("OK", "ok").WithMinWidth(8)).
			Leaf("cancel_button", widgets.NewButton("Cancel", "cancel").WithMinWidth(10)).
			Leaf("btn_spacer_right", widgets.NewSpacer()))

	s := NewShell("Go To Line", content, g.theme).WithSize(40, 7).WithMinSize(30, 7)
	s.SetShowMaximize(false)
	s.SetChromeInteractive(false)
	g.setShell(s)
	return g
}

func (g *GoTo) field() *widgets.TextField {
	tf, _ := widget.Find[*widgets.TextField](g.shell.Content(), lineFieldPath...)
	return tf
}

// Open clears the field and focuses it.
func (g *GoTo) Open(*Context) {
	g.field().SetText("")
	g.show()
	highlightWhenFocused(g.shell.Content(), "line_field", lineLabelPath...)
}

// HandleEvent jumps on OK or Enter.
func (g *GoTo) HandleEvent(ev input.Event, ctx *Context) Result {
	if !g.open {
		return Closed
	}
	r := g.shell.HandleEvent(ev)
	highlightWhenFocused(g.shell.Content(), "line_field", lineLabelPath...)

	switch {
	case r.Is("ok"), r.Is("line_submit"):
		g.goToLine(ctx)
	case r.Is("cancel"), r.Is(CancelAction):
	default:
		return Open
	}
	g.open = false
	return Closed
}

func (g *GoTo) goToLine(ctx *Context) {
	n, err := strconv.Atoi(strings.TrimSpace(g.field().Text()))
	if err != nil || n < 1 {
		ctx.SetStatus("Invalid line number")
		return
	}
	if ctx == nil || ctx.Editor == nil {
		return
	}
	target := min(n-1, max(ctx.Editor.LineCount()-1, 0))
	ctx.Editor.SetCursor(target, 0)
	ctx.SetStatus(fmt.Sprintf("Jumped to line %d", n))
}

var _ Controller = (*GoTo)(nil)
