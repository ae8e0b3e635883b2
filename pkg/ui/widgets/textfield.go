package widgets

import (
	"strings"
	"unicode"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// TextField is a single-line editor with a selection, horizontal scrolling
// and clipboard support.
//
// Actions are named after the field's prefix: <prefix>_change when the text
// changes, <prefix>_submit on Enter and <prefix>_focus on a click. A failed
// cut, copy or paste reports <prefix>_clipboard_error; ClipboardErr returns
// the cause.
type TextField struct {
	FocusableBase

	prefix    string
	text      []rune
	cursor    int
	scroll    int
	anchor    int // -1 when nothing is selected
	minWidth  int
	clipboard Clipboard
	clipErr   error
}

// NewTextField creates an empty field.
func NewTextField(prefix string) *TextField {
	return &TextField{prefix: prefix, anchor: -1, minWidth: 1, clipboard: &MemoryClipboard{}}
}

// WithText sets the initial text with the cursor at its end.
func (f *TextField) WithText(text string) *TextField {
	f.SetText(text)
	f.cursor = len(f.text)
	return f
}

// WithClipboard sets the clipboard used by cut, copy and paste.
func (f *TextField) WithClipboard(c Clipboard) *TextField {
	f.clipboard = c
	return f
}

// WithMinWidth sets the minimum layout width.
func (f *TextField) WithMinWidth(n int) *TextField {
	f.minWidth = max(n, 1)
	return f
}

// Text returns the contents.
func (f *TextField) Text() string { return string(f.text) }

// SetText replaces the contents, keeping the cursor in range and dropping
// the selection.
func (f *TextField) SetText(text string) {
	f.text = []rune(text)
	f.cursor = min(f.cursor, len(f.text))
	f.anchor = -1
}

// ClipboardErr returns the error from the last clipboard operation, or nil.
func (f *TextField) ClipboardErr() error { return f.clipErr }

// Cursor returns the cursor index in runes.
func (f *TextField) Cursor() int { return f.cursor }

// SetCursor moves the cursor, clamped to the text.
func (f *TextField) SetCursor(pos int) {
	f.cursor = min(max(pos, 0), len(f.text))
}

// Scroll returns the index of the first visible rune.
func (f *TextField) Scroll() int { return f.scroll }

// Selection returns the selected range [start, end).
func (f *TextField) Selection() (start, end int, ok bool) {
	if f.anchor < 0 || f.anchor == f.cursor {
		return 0, 0, false
	}
	return min(f.anchor, f.cursor), max(f.anchor, f.cursor), true
}

// SelectedText returns the selected text, or "".
func (f *TextField) SelectedText() string {
	start, end, ok := f.Selection()
	if !ok {
		return ""
	}
	return string(f.text[start:end])
}

// SelectAll selects the whole text.
func (f *TextField) SelectAll() {
	f.anchor = 0
	f.cursor = len(f.text)
}

// Draw renders the visible slice of text. When focused the cursor cell
// uses the cursor colors.
func (f *TextField) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Empty() {
		return
	}
	f.follow(bounds.Width)

	normal := th.TextField
	if f.HasFocus() {
		normal = th.TextFieldFocused
	}
	start, end, selected := f.Selection()

	for i := 0; i < bounds.Width; i++ {
		idx := f.scroll + i
		ch := ' '
		if idx < len(f.text) {
			ch = f.text[idx]
		}
		p := normal
		switch {
		case f.HasFocus() && idx == f.cursor:
			p = th.TextFieldCursor
		case selected && idx >= start && idx < end:
			p = th.TextFieldSelection
		}
		s.Set(bounds.Y, bounds.X+i, ch, p.FG, p.BG)
	}
}

// HandleEvent edits the text when focused and places the cursor on click.
func (f *TextField) HandleEvent(ev input.Event, bounds layout.Rect, phase widget.Phase) widget.Result {
	if phase != widget.Target {
		return widget.Ignored
	}
	f.follow(bounds.Width)
	defer f.follow(bounds.Width)

	if ev.IsMouse() {
		return f.handleMouse(ev, bounds)
	}
	if !f.HasFocus() {
		return widget.Ignored
	}

	switch ev.Kind {
	case input.Char:
		f.insert(string(ev.Rune))
		return f.changed()
	case input.Paste:
		f.insert(ev.Raw)
		return f.changed()
	case input.Backspace:
		if !f.deleteSelection() && f.cursor > 0 {
			f.remove(f.cursor-1, f.cursor)
		}
		return f.changed()
	case input.Delete:
		if !f.deleteSelection() && f.cursor < len(f.text) {
			f.remove(f.cursor, f.cursor+1)
		}
		return f.changed()
	case input.CtrlBackspace:
		if !f.deleteSelection() {
			end := f.cursor
			f.cursor = f.wordLeft()
			f.remove(f.cursor, end)
		}
		return f.changed()
	case input.CtrlDelete:
		if !f.deleteSelection() {
			f.remove(f.cursor, f.wordRight())
		}
		return f.changed()
	case input.Enter:
		return widget.Action(f.prefix + "_submit")
	case input.CtrlChar:
		return f.handleCtrl(ev.Rune)
	}

	if f.navigate(ev.Kind) {
		return widget.Consumed
	}
	return widget.Ignored
}

// navigate applies cursor movement keys, extending the selection for the
// shifted variants.
func (f *TextField) navigate(kind input.Kind) bool {
	switch kind {
	case input.CursorLeft:
		if start, _, ok := f.Selection(); ok {
			f.moveTo(start, false)
		} else {
			f.moveTo(f.cursor-1, false)
		}
	case input.CursorRight:
		if _, end, ok := f.Selection(); ok {
			f.moveTo(end, false)
		} else {
			f.moveTo(f.cursor+1, false)
		}
	case input.ShiftLeft:
		f.moveTo(f.cursor-1, true)
	case input.ShiftRight:
		f.moveTo(f.cursor+1, true)
	case input.Home, input.CtrlHome:
		f.moveTo(0, false)
	case input.End, input.CtrlEnd:
		f.moveTo(len(f.text), false)
	case input.ShiftHome, input.CtrlShiftHome:
		f.moveTo(0, true)
	case input.ShiftEnd, input.CtrlShiftEnd:
		f.moveTo(len(f.text), true)
	case input.CtrlLeft:
		f.moveTo(f.wordLeft(), false)
	case input.CtrlRight:
		f.moveTo(f.wordRight(), false)
	case input.CtrlShiftLeft:
		f.moveTo(f.wordLeft(), true)
	case input.CtrlShiftRight:
		f.moveTo(f.wordRight(), true)
	default:
		return false
	}
	return true
}

func (f *TextField) handleCtrl(r rune) widget.Result {
	switch r {
	case 'a':
		f.SelectAll()
		return widget.Consumed
	case 'c':
		text := f.SelectedText()
		if text == "" {
			return widget.Consumed
		}
		if err := f.clipboard.WriteAll(text); err != nil {
			return f.clipboardFailed(err)
		}
		f.clipErr = nil
		return widget.Consumed
	case 'x':
		text := f.SelectedText()
		if text == "" {
			return widget.Consumed
		}
		if err := f.clipboard.WriteAll(text); err != nil {
			return f.clipboardFailed(err)
		}
		f.clipErr = nil
		f.deleteSelection()
		return f.changed()
	case 'v':
		text, err := f.clipboard.ReadAll()
		if err != nil {
			return f.clipboardFailed(err)
		}
		f.clipErr = nil
		if text == "" {
			return widget.Consumed
		}
		f.insert(text)
		return f.changed()
	}
	return widget.Ignored
}

// clipboardFailed records err and leaves the text and selection untouched.
func (f *TextField) clipboardFailed(err error) widget.Result {
	f.clipErr = err
	return widget.Action(f.prefix + "_clipboard_error")
}

func (f *TextField) handleMouse(ev input.Event, bounds layout.Rect) widget.Result {
	if !ev.In(bounds) {
		return widget.Ignored
	}
	pos := min(f.scroll+ev.Col-bounds.X, len(f.text))
	switch ev.Kind {
	case input.MouseClick:
		f.moveTo(pos, false)
		return widget.Action(f.prefix + "_focus")
	case input.MouseDrag:
		f.moveTo(pos, true)
		return widget.Consumed
	}
	return widget.Ignored
}

func (f *TextField) changed() widget.Result {
	return widget.Action(f.prefix + "_change")
}

// moveTo places the cursor. With extend the selection anchor is kept (or
// dropped at the old cursor); without it the selection is cleared.
func (f *TextField) moveTo(pos int, extend bool) {
	if extend {
		if f.anchor < 0 {
			f.anchor = f.cursor
		}
	} else {
		f.anchor = -1
	}
	f.SetCursor(pos)
}

// insert replaces the selection with text. Line breaks become spaces.
func (f *TextField) insert(text string) {
	f.deleteSelection()
	text = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ").Replace(text)
	runes := []rune(text)
	out := make([]rune, 0, len(f.text)+len(runes))
	out = append(out, f.text[:f.cursor]...)
	out = append(out, runes...)
	out = append(out, f.text[f.cursor:]...)
	f.text = out
	f.cursor += len(runes)
}

func (f *TextField) remove(start, end int) {
	if start >= end {
		return
	}
	f.text = append(f.text[:start], f.text[end:]...)
	f.cursor = start
}

func (f *TextField) deleteSelection() bool {
	start, end, ok := f.Selection()
	f.anchor = -1
	if !ok {
		return false
	}
	f.remove(start, end)
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordRight returns the index after the current word and the gap that
// follows it.
func (f *TextField) wordRight() int {
	i := f.cursor
	for i < len(f.text) && isWordRune(f.text[i]) {
		i++
	}
	for i < len(f.text) && !isWordRune(f.text[i]) {
		i++
	}
	return i
}

// wordLeft returns the start of the word before the cursor.
func (f *TextField) wordLeft() int {
	i := f.cursor
	for i > 0 && !isWordRune(f.text[i-1]) {
		i--
	}
	for i > 0 && isWordRune(f.text[i-1]) {
		i--
	}
	return i
}

// follow scrolls so the cursor stays visible, keeping one spare cell for
// the cursor past the last rune.
func (f *TextField) follow(width int) {
	if width <= 0 {
		return
	}
	usable := width - 1
	switch {
	case f.cursor < f.scroll:
		f.scroll = f.cursor
	case f.cursor > f.scroll+usable:
		f.scroll = f.cursor - usable
	}
	f.scroll = max(f.scroll, 0)
}

// SizeHint asks for one row.
func (f *TextField) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinWidth: f.minWidth, MinHeight: 1}
}
