package widgets

import (
	"time"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// DefaultDoubleClick is the longest gap between two clicks on the same item
// that still counts as a double click.
const DefaultDoubleClick = 400 * time.Millisecond

const wheelStep = 3

// ListView is a bordered, scrollable list with a vertical scrollbar.
//
// It reports <prefix>_select when the selection moves, <prefix>_activate on
// Enter or a double click, and <prefix>_scroll when only the view moves.
type ListView struct {
	FocusableBase

	prefix   string
	items    []string
	selected int
	offset   int
	border   bool
	minWidth int

	dragging    bool
	clock       Clock
	doubleClick time.Duration
	lastClick   time.Time
	lastIndex   int
}

// NewListView creates an empty bordered list.
func NewListView(prefix string) *ListView {
	return &ListView{
		prefix:      prefix,
		border:      true,
		clock:       SystemClock,
		doubleClick: DefaultDoubleClick,
		lastIndex:   -1,
	}
}

// WithBorder toggles the border.
func (l *ListView) WithBorder(on bool) *ListView {
	l.border = on
	return l
}

// WithMinWidth fixes the layout width.
func (l *ListView) WithMinWidth(n int) *ListView {
	l.minWidth = n
	return l
}

// WithClock replaces the clock used for double-click detection.
func (l *ListView) WithClock(c Clock) *ListView {
	l.clock = c
	return l
}

// WithDoubleClick sets the double-click window.
func (l *ListView) WithDoubleClick(d time.Duration) *ListView {
	if d > 0 {
		l.doubleClick = d
	}
	return l
}

// WithItems sets the items.
func (l *ListView) WithItems(items ...string) *ListView {
	l.SetItems(items)
	return l
}

// SetItems replaces the items, keeping the selection in range.
func (l *ListView) SetItems(items []string) {
	l.items = items
	l.selected = min(l.selected, max(len(items)-1, 0))
	l.offset = min(l.offset, l.selected)
	l.lastIndex = -1
}

// Items returns the items.
func (l *ListView) Items() []string { return l.items }

// Selected returns the selected index.
func (l *ListView) Selected() int { return l.selected }

// SetSelected selects index i, clamped to the items.
func (l *ListView) SetSelected(i int) {
	if len(l.items) == 0 {
		return
	}
	l.selected = min(max(i, 0), len(l.items)-1)
}

// SelectedItem returns the selected item.
func (l *ListView) SelectedItem() (string, bool) {
	if l.selected >= len(l.items) {
		return "", false
	}
	return l.items[l.selected], true
}

// Offset returns the index of the first visible item.
func (l *ListView) Offset() int { return l.offset }

// content returns the area inside the border.
func (l *ListView) content(bounds layout.Rect) layout.Rect {
	if l.border {
		return bounds.Inset(1)
	}
	return bounds
}

func (l *ListView) state(visible int) ScrollbarState {
	return ScrollbarState{Pos: l.offset, Content: len(l.items), Visible: visible}
}

// reveal scrolls the selected item into a view of the given height.
func (l *ListView) reveal(visible int) {
	if visible <= 0 {
		return
	}
	switch {
	case l.selected < l.offset:
		l.offset = l.selected
	case l.selected >= l.offset+visible:
		l.offset = l.selected - visible + 1
	}
}

func (l *ListView) scrollBy(n, visible int) {
	l.offset = min(max(l.offset+n, 0), max(len(l.items)-visible, 0))
}

// Draw renders the border, visible items and, when the items overflow,
// a scrollbar in the last content column.
func (l *ListView) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Width < 3 || bounds.Height < 3 {
		return
	}
	if l.border {
		s.DrawBox(bounds, th.DialogBorder.FG, th.DialogBorder.BG)
	}

	content := l.content(bounds)
	itemWidth := max(content.Width-1, 0)
	sel := th.ListSelected
	if l.HasFocus() {
		sel = th.ListFocusedSelected
	}

	for i := 0; i < content.Height; i++ {
		idx := l.offset + i
		row := content.Y + i
		p, text := th.List, ""
		if idx < len(l.items) {
			text = l.items[idx]
			if idx == l.selected {
				p = sel
			}
		}
		s.WriteString(row, content.X, padRight(text, itemWidth), p.FG, p.BG)
	}

	if len(l.items) > content.Height {
		DrawVertical(s, content.Right()-1, content.Y, content.Bottom()-1,
			l.state(content.Height), ThemeScrollbar(th))
	}
}

// HandleEvent navigates with the keyboard when focused and handles clicks,
// wheel and scrollbar drags.
func (l *ListView) HandleEvent(ev input.Event, bounds layout.Rect, phase widget.Phase) widget.Result {
	if phase != widget.Target {
		return widget.Ignored
	}
	content := l.content(bounds)
	visible := content.Height

	if l.dragging {
		switch ev.Kind {
		case input.MouseDrag:
			l.offset = DragPos(ev.Row, content.Y, content.Bottom()-1, l.state(visible))
			return l.action("scroll")
		case input.MouseRelease:
			l.dragging = false
			return widget.Consumed
		}
	}

	if l.HasFocus() {
		if r, ok := l.handleKey(ev.Kind, visible); ok {
			return r
		}
	}

	if !ev.In(bounds) {
		return widget.Ignored
	}

	switch ev.Kind {
	case input.ScrollUp:
		l.scrollBy(-wheelStep, visible)
		return l.action("scroll")
	case input.ScrollDown:
		l.scrollBy(wheelStep, visible)
		return l.action("scroll")
	case input.MouseClick:
	default:
		return widget.Ignored
	}

	if ev.Col == content.Right()-1 && len(l.items) > visible {
		return l.clickScrollbar(ev.Row, content)
	}
	if content.Contains(ev.Row, ev.Col) {
		return l.clickItem(l.offset + ev.Row - content.Y)
	}
	return widget.Consumed
}

func (l *ListView) handleKey(kind input.Kind, visible int) (widget.Result, bool) {
	page := max(visible-1, 1)
	switch kind {
	case input.CursorUp:
		l.SetSelected(l.selected - 1)
	case input.CursorDown:
		l.SetSelected(l.selected + 1)
	case input.PageUp:
		l.SetSelected(l.selected - page)
	case input.PageDown:
		l.SetSelected(l.selected + page)
	case input.Home:
		l.SetSelected(0)
	case input.End:
		l.SetSelected(len(l.items) - 1)
	case input.Enter:
		return l.action("activate"), true
	default:
		return widget.Ignored, false
	}
	l.reveal(visible)
	return l.action("select"), true
}

func (l *ListView) clickScrollbar(row int, content layout.Rect) widget.Result {
	visible := content.Height
	page := max(visible-1, 1)
	switch HitTest(row, content.Y, content.Bottom()-1, l.state(visible)) {
	case HitBackArrow:
		l.scrollBy(-1, visible)
	case HitForwardArrow:
		l.scrollBy(1, visible)
	case HitPageBack:
		l.scrollBy(-page, visible)
	case HitPageForward:
		l.scrollBy(page, visible)
	case HitThumb:
		l.dragging = true
		return widget.Consumed
	default:
		return widget.Consumed
	}
	return l.action("scroll")
}

// clickItem selects idx. A second click on the same item inside the
// double-click window activates it instead.
func (l *ListView) clickItem(idx int) widget.Result {
	if idx >= len(l.items) {
		return widget.Consumed
	}
	now := l.clock()
	double := idx == l.lastIndex && now.Sub(l.lastClick) < l.doubleClick

	l.selected = idx
	l.lastClick = now
	l.lastIndex = idx
	if double {
		l.lastIndex = -1
		return l.action("activate")
	}
	return l.action("select")
}

func (l *ListView) action(suffix string) widget.Result {
	return widget.Action(l.prefix + "_" + suffix)
}

// SizeHint asks for at least one visible row and flexes vertically.
func (l *ListView) SizeHint() layout.SizeHint {
	w := 10
	if l.minWidth > 0 {
		w = l.minWidth
	}
	return layout.SizeHint{MinWidth: w, MinHeight: 3, Flex: 1}
}

// WantsTightWidth is true once a width is fixed.
func (l *ListView) WantsTightWidth() bool { return l.minWidth > 0 }
