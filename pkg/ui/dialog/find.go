package dialog

import (
	"fmt"
	"unicode/utf8"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

// Widget paths inside the Find dialog.
var (
	findFieldPath = []string{"root", "find_row", "find_field"}
	findLabelPath = []string{"root", "find_row", "find_label"}
	casePath      = []string{"root", "options_row", "case_checkbox"}
	wholePath     = []string{"root", "options_row", "whole_checkbox"}
)

// Find asks for a search string and options, then searches the editor
// and selects the match.
type Find struct {
	shellController
}

// NewFind builds the Find dialog.
func NewFind() *Find {
	f := &Find{shellController: newShellController()}
	f.build()
	return f
}

func (f *Find) build() {
	content := widget.VStack("root").
		Padding(1).
		Child(row("find_row").
			Leaf("find_label", widgets.NewLabel("Find:").WithMinWidth(8)).
			Leaf("find_field", widgets.NewTextField("find"))).
		Leaf("spacer1", widgets.FixedSpacer(1)).
		Child(row("options_row").
			Leaf("case_checkbox", widgets.NewCheckbox("Match Case", "toggle_case").WithMinWidth(20)).
			Leaf("whole_checkbox", widgets.NewCheckbox("Whole Word", "toggle_whole").WithMinWidth(18))).
		Leaf("spacer2", widgets.FixedSpacer(1)).
		Child(row("buttons_row").
			Spacing(2).
			Leaf("btn_spacer_left", widgets.NewSpacer()).
			Leaf("ok_button", widgets.NewButton("Find", "find").WithMinWidth(8)).
			Leaf("cancel_button", widgets.NewButton("Cancel", "cancel").WithMinWidth(10)).
			Leaf("btn_spacer_right", widgets.NewSpacer()))

	s := NewShell("Find", content, f.theme).WithSize(55, 10).WithMinSize(40, 8)
	s.SetShowMaximize(false)
	s.SetChromeInteractive(false)
	f.setShell(s)
}

func (f *Find) field() *widgets.TextField {
	tf, _ := widget.Find[*widgets.TextField](f.shell.Content(), findFieldPath...)
	return tf
}

func (f *Find) checkbox(path []string) *widgets.Checkbox {
	cb, _ := widget.Find[*widgets.Checkbox](f.shell.Content(), path...)
	return cb
}

// Query returns the text in the search field.
func (f *Find) Query() string { return f.field().Text() }

// Open fills the field from the last search when it is empty and syncs the
// option checkboxes.
func (f *Find) Open(ctx *Context) {
	if ctx != nil {
		if tf := f.field(); tf.Text() == "" && ctx.Search.Query != "" {
			tf.SetText(ctx.Search.Query)
			tf.SetCursor(utf8.RuneCountInString(ctx.Search.Query))
		}
		f.checkbox(casePath).SetChecked(ctx.Search.CaseSensitive)
		f.checkbox(wholePath).SetChecked(ctx.Search.WholeWord)
	}
	f.show()
	f.syncDecor()
}

func (f *Find) syncDecor() {
	highlightWhenFocused(f.shell.Content(), "find_field", findLabelPath...)
}

// HandleEvent keeps the search options in ctx current and runs the search
// on Find or Enter.
func (f *Find) HandleEvent(ev input.Event, ctx *Context) Result {
	if !f.open {
		return Closed
	}
	r := f.shell.HandleEvent(ev)
	f.syncDecor()
	if ctx != nil {
		ctx.Search.CaseSensitive = f.checkbox(casePath).Checked()
		ctx.Search.WholeWord = f.checkbox(wholePath).Checked()
	}

	switch {
	case r.Is("find"), r.Is("find_submit"):
		f.findNext(ctx)
	case r.Is("cancel"), r.Is(CancelAction):
	default:
		return Open
	}
	f.open = false
	return Closed
}

func (f *Find) findNext(ctx *Context) {
	query := f.Query()
	if query == "" {
		ctx.SetStatus("No search text")
		return
	}
	if ctx == nil {
		return
	}
	ctx.Search.Query = query
	FindNext(ctx)
}

// FindNext repeats ctx.Search against ctx.Editor and reports the outcome
// on the status sink.
func FindNext(ctx *Context) bool {
	if ctx == nil || ctx.Editor == nil || ctx.Search.Query == "" {
		ctx.SetStatus("No search text")
		return false
	}
	s := ctx.Search
	line, col, ok := ctx.Editor.FindText(s.Query, s.CaseSensitive, s.WholeWord)
	if !ok {
		ctx.SetStatus("Match not found")
		return false
	}
	ctx.Editor.Select(line, col, utf8.RuneCountInString(s.Query))
	ctx.SetStatus(fmt.Sprintf("Found at line %d", line+1))
	return true
}

var _ Controller = (*Find)(nil)
