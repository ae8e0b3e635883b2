package dialog

import (
	"fmt"
	"unicode/utf8"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

var (
	replaceFindPath      = []string{"root", "find_row", "find_field"}
	replaceFindLabelPath = []string{"root", "find_row", "find_label"}
	replaceWithPath      = []string{"root", "with_row", "with_field"}
	replaceWithLabelPath = []string{"root", "with_row", "with_label"}
	replaceCasePath      = []string{"root", "options_row", "case_checkbox"}
	replaceWholePath     = []string{"root", "options_row", "whole_checkbox"}
)

// Replace asks for a search string and its replacement.
//
// Replace selects the next match the first time and stays open; each
// further press swaps the selected match and selects the one after it.
// Replace All changes every match at once and closes.
type Replace struct {
	shellController

	// armed is set while the editor selection is a match this dialog found.
	armed bool
}

// NewReplace builds the Replace dialog.
func NewReplace() *Replace {
	r := &Replace{shellController: newShellController()}
	content := widget.VStack("root").
		Padding(1).
		Child(row("find_row").
			Leaf("find_label", widgets.NewLabel("Find:").WithMinWidth(14)).
			Leaf("find_field", widgets.NewTextField("find"))).
		Child(row("with_row").
			Leaf("with_label", widgets.NewLabel("Replace with:").WithMinWidth(14)).
			Leaf("with_field", widgets.NewTextField("with"))).
		Leaf("spacer1", widgets.FixedSpacer(1)).
		Child(row("options_row").
			Leaf("case_checkbox", widgets.NewCheckbox("Match Case", "toggle_case").WithMinWidth(20)).
			Leaf("whole_checkbox", widgets.NewCheckbox("Whole Word", "toggle_whole").WithMinWidth(18))).
		Leaf("spacer2", widgets.FixedSpacer(1)).
		Child(row("buttons_row").
			Spacing(2).
			Leaf("btn_spacer_left", widgets.NewSpacer()).
			Leaf("replace_button", widgets.NewButton("Replace", "replace").WithMinWidth(11)).
			Leaf("all_button", widgets.NewButton("Replace All", "replace_all").WithMinWidth(15)).
			Leaf("cancel_button", widgets.NewButton("Cancel", "cancel").WithMinWidth(10)).
			Leaf("btn_spacer_right", widgets.NewSpacer()))

	s := NewShell("Replace", content, r.theme).WithSize(60, 11).WithMinSize(48, 11)
	s.SetShowMaximize(false)
	s.SetChromeInteractive(false)
	r.setShell(s)
	return r
}

func (r *Replace) field(path []string) *widgets.TextField {
	tf, _ := widget.Find[*widgets.TextField](r.shell.Content(), path...)
	return tf
}

func (r *Replace) checkbox(path []string) *widgets.Checkbox {
	cb, _ := widget.Find[*widgets.Checkbox](r.shell.Content(), path...)
	return cb
}

// Query returns the search text.
func (r *Replace) Query() string { return r.field(replaceFindPath).Text() }

// Replacement returns the replacement text.
func (r *Replace) Replacement() string { return r.field(replaceWithPath).Text() }

// Open fills an empty search field from the last search and syncs the
// options.
func (r *Replace) Open(ctx *Context) {
	r.armed = false
	if ctx != nil {
		if tf := r.field(replaceFindPath); tf.Text() == "" && ctx.Search.Query != "" {
			tf.SetText(ctx.Search.Query)
			tf.SetCursor(utf8.RuneCountInString(ctx.Search.Query))
		}
		r.checkbox(replaceCasePath).SetChecked(ctx.Search.CaseSensitive)
		r.checkbox(replaceWholePath).SetChecked(ctx.Search.WholeWord)
	}
	r.show()
	r.syncDecor()
}

func (r *Replace) syncDecor() {
	t := r.shell.Content()
	highlightWhenFocused(t, "find_field", replaceFindLabelPath...)
	highlightWhenFocused(t, "with_field", replaceWithLabelPath...)
}

// HandleEvent runs Replace on the button or Enter in either field, and
// Replace All on its button.
func (r *Replace) HandleEvent(ev input.Event, ctx *Context) Result {
	if !r.open {
		return Closed
	}
	res := r.shell.HandleEvent(ev)
	r.syncDecor()
	if ctx != nil {
		ctx.Search.CaseSensitive = r.checkbox(replaceCasePath).Checked()
		ctx.Search.WholeWord = r.checkbox(replaceWholePath).Checked()
	}

	switch {
	case res.Is("find_change"), res.Is("toggle_case"), res.Is("toggle_whole"):
		r.armed = false
		return Open
	case res.Is("replace"), res.Is("find_submit"), res.Is("with_submit"):
		if r.replaceNext(ctx) {
			return Open
		}
	case res.Is("replace_all"):
		r.replaceAll(ctx)
	case res.Is("cancel"), res.Is(CancelAction):
	default:
		return Open
	}
	r.open = false
	return Closed
}

// replaceNext reports whether the dialog should stay open.
func (r *Replace) replaceNext(ctx *Context) bool {
	query := r.Query()
	if query == "" || ctx == nil || ctx.Editor == nil {
		ctx.SetStatus("No search text")
		return false
	}
	ctx.Search.Query = query

	if r.armed {
		line, col := ctx.Editor.Cursor()
		if ctx.Editor.ReplaceSelection(r.Replacement()) {
			// Search again from the end of the new text.
			n := utf8.RuneCountInString(r.Replacement())
			ctx.Editor.SetCursor(line, col+max(n-1, 0))
		}
	}
	r.armed = FindNext(ctx)
	if !r.armed {
		ctx.SetStatus("No more matches")
	}
	return r.armed
}

func (r *Replace) replaceAll(ctx *Context) {
	query := r.Query()
	if query == "" || ctx == nil || ctx.Editor == nil {
		ctx.SetStatus("No search text")
		return
	}
	ctx.Search.Query = query
	s := ctx.Search
	n := ctx.Editor.ReplaceAll(query, r.Replacement(), s.CaseSensitive, s.WholeWord)
	if n == 0 {
		ctx.SetStatus("Match not found")
		return
	}
	ctx.SetStatus(fmt.Sprintf("Replaced %d", n))
}

var _ Controller = (*Replace)(nil)
