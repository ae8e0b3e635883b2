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

// MenuItem is one dropdown entry. An '&' in Label marks the hotkey letter.
type MenuItem struct {
	Label    string
	Action   string
	Shortcut string
	Disabled bool
	sep      bool
}

// MenuSeparator returns a divider line.
func MenuSeparator() MenuItem { return MenuItem{sep: true} }

// IsSeparator reports whether the item is a divider.
func (m MenuItem) IsSeparator() bool { return m.sep }

func (m MenuItem) selectable() bool { return !m.sep && !m.Disabled }

// Menu is a top-level title with its dropdown. An '&' in Title marks the
// Alt hotkey.
type Menu struct {
	Title string
	Items []MenuItem
}

// hotkeyLabel splits "&Open" into "Open", the hotkey index 0 and 'o'. The
// index is -1 without a marker.
func hotkeyLabel(label string) (text string, idx int, key rune) {
	i := strings.IndexRune(label, '&')
	if i < 0 || i == len(label)-1 {
		return label, -1, 0
	}
	text = label[:i] + label[i+1:]
	idx = len([]rune(label[:i]))
	key = unicode.ToLower([]rune(label[i+1:])[0])
	return text, idx, key
}

// MenuBar is a one-row bar of menus with a dropdown for the open one.
//
// It is not in the Tab order. The owning container forwards events through
// Intercept from its Capture phase so F10 and the Alt hotkeys work from
// anywhere; while a menu is open Intercept consumes everything. Choosing an
// item reports the item's Action.
type MenuBar struct {
	widget.Base

	menus []Menu
	open  bool
	menu  int
	item  int

	// bar is the rect of the last draw; Intercept hit-tests against it.
	bar layout.Rect
}

// NewMenuBar creates a closed bar.
func NewMenuBar(menus ...Menu) *MenuBar {
	return &MenuBar{menus: menus, item: -1}
}

// Menus returns the menus.
func (m *MenuBar) Menus() []Menu { return m.menus }

// IsOpen reports whether a dropdown is showing.
func (m *MenuBar) IsOpen() bool { return m.open }

// Current returns the open menu and highlighted item. item is -1 when the
// menu has nothing selectable.
func (m *MenuBar) Current() (menu, item int) { return m.menu, m.item }

// Open shows menu idx with its first selectable item highlighted.
func (m *MenuBar) Open(idx int) bool {
	if idx < 0 || idx >= len(m.menus) {
		return false
	}
	m.open, m.menu = true, idx
	m.item = m.step(-1, 1)
	return true
}

// Close hides the dropdown.
func (m *MenuBar) Close() {
	m.open = false
}

// step returns the next selectable item after from in direction dir,
// wrapping, or -1.
func (m *MenuBar) step(from, dir int) int {
	items := m.menus[m.menu].Items
	n := len(items)
	if n == 0 {
		return -1
	}
	i := from
	for range n {
		i = ((i+dir)%n + n) % n
		if items[i].selectable() {
			return i
		}
	}
	return -1
}

// menuFor resolves an Alt hotkey. Titles marked with '&' take precedence
// over the standard menu positions.
func (m *MenuBar) menuFor(ev input.Event) (int, bool) {
	if ev.Kind != input.AltChar {
		return 0, false
	}
	r := unicode.ToLower(ev.Rune)
	for i, menu := range m.menus {
		if _, _, key := hotkeyLabel(menu.Title); key != 0 && key == r {
			return i, true
		}
	}
	idx, ok := input.MenuIndex(ev)
	if !ok || idx >= len(m.menus) {
		return 0, false
	}
	return idx, true
}

// Intercept handles menu keys before the rest of the tree sees them.
func (m *MenuBar) Intercept(ev input.Event) widget.Result {
	if !m.open {
		if !input.IsMenuTrigger(ev) {
			return widget.Ignored
		}
		idx := 0
		if ev.Kind == input.AltChar {
			var ok bool
			if idx, ok = m.menuFor(ev); !ok {
				return widget.Ignored
			}
		}
		if !m.Open(idx) {
			return widget.Ignored
		}
		return widget.Consumed
	}

	switch ev.Kind {
	case input.Escape:
		m.Close()
	case input.Function:
		if ev.Num == 10 {
			m.Close()
		}
	case input.CursorLeft:
		m.Open((m.menu - 1 + len(m.menus)) % len(m.menus))
	case input.CursorRight:
		m.Open((m.menu + 1) % len(m.menus))
	case input.CursorUp:
		m.item = m.step(m.item, -1)
	case input.CursorDown:
		m.item = m.step(m.item, 1)
	case input.Home:
		m.item = m.step(-1, 1)
	case input.End:
		m.item = m.step(0, -1)
	case input.Enter:
		return m.choose(m.item)
	case input.AltChar:
		if idx, ok := m.menuFor(ev); ok {
			m.Open(idx)
		}
	case input.Char:
		r := unicode.ToLower(ev.Rune)
		for i, it := range m.menus[m.menu].Items {
			if _, _, key := hotkeyLabel(it.Label); key != 0 && key == r && it.selectable() {
				return m.choose(i)
			}
		}
	case input.MouseClick:
		return m.click(ev.Row, ev.Col)
	case input.MouseMove, input.MouseDrag:
		if i, ok := m.itemAt(ev.Row, ev.Col); ok && m.menus[m.menu].Items[i].selectable() {
			m.item = i
		}
	}
	return widget.Consumed
}

func (m *MenuBar) choose(i int) widget.Result {
	items := m.menus[m.menu].Items
	if i < 0 || i >= len(items) || !items[i].selectable() {
		return widget.Consumed
	}
	m.Close()
	if items[i].Action == "" {
		return widget.Consumed
	}
	return widget.Action(items[i].Action)
}

// click handles a press while open: a title switches menus, an item is
// chosen, anywhere else closes.
func (m *MenuBar) click(row, col int) widget.Result {
	if idx, ok := m.titleAt(row, col); ok {
		if idx == m.menu {
			m.Close()
		} else {
			m.Open(idx)
		}
		return widget.Consumed
	}
	if i, ok := m.itemAt(row, col); ok {
		return m.choose(i)
	}
	if !m.dropdown().Contains(row, col) {
		m.Close()
	}
	return widget.Consumed
}

// HandleEvent opens a menu when its title is clicked.
func (m *MenuBar) HandleEvent(ev input.Event, bounds layout.Rect, _ widget.Phase) widget.Result {
	if ev.Kind != input.MouseClick {
		return widget.Ignored
	}
	m.bar = bounds
	if idx, ok := m.titleAt(ev.Row, ev.Col); ok {
		m.Open(idx)
		return widget.Consumed
	}
	return widget.Ignored
}

// titleCol returns the first column of menu i's " Title " cell.
func (m *MenuBar) titleCol(i int) int {
	col := m.bar.X + 1
	for _, menu := range m.menus[:i] {
		text, _, _ := hotkeyLabel(menu.Title)
		col += textWidth(text) + 2
	}
	return col
}

func (m *MenuBar) titleAt(row, col int) (int, bool) {
	if row != m.bar.Y || !m.bar.Contains(row, col) {
		return 0, false
	}
	for i, menu := range m.menus {
		text, _, _ := hotkeyLabel(menu.Title)
		start := m.titleCol(i)
		if col >= start && col < start+textWidth(text)+2 {
			return i, true
		}
	}
	return 0, false
}

// dropdown returns the box of the open menu, border included.
func (m *MenuBar) dropdown() layout.Rect {
	if !m.open {
		return layout.Rect{}
	}
	items := m.menus[m.menu].Items
	labelW, keyW := 0, 0
	for _, it := range items {
		text, _, _ := hotkeyLabel(it.Label)
		labelW = max(labelW, textWidth(text))
		keyW = max(keyW, textWidth(it.Shortcut))
	}
	inner := labelW + 2
	if keyW > 0 {
		inner += keyW + 2
	}
	r := layout.Rect{X: m.titleCol(m.menu), Y: m.bar.Y + 1, Width: inner + 2, Height: len(items) + 2}
	if over := r.Right() - m.bar.Right(); over > 0 {
		r.X = max(r.X-over, m.bar.X)
	}
	return r
}

func (m *MenuBar) itemAt(row, col int) (int, bool) {
	r := m.dropdown()
	if r.Empty() || col <= r.X || col >= r.Right()-1 {
		return 0, false
	}
	i := row - r.Y - 1
	if i < 0 || i >= len(m.menus[m.menu].Items) {
		return 0, false
	}
	return i, true
}

// Draw paints the bar row.
func (m *MenuBar) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	m.bar = bounds
	if bounds.Empty() {
		return
	}
	s.Fill(layout.Rect{X: bounds.X, Y: bounds.Y, Width: bounds.Width, Height: 1}, ' ', th.Menu.FG, th.Menu.BG)
	for i, menu := range m.menus {
		p := th.Menu
		if m.open && i == m.menu {
			p = th.MenuHighlight
		}
		col := m.titleCol(i)
		text, _, _ := hotkeyLabel(menu.Title)
		s.WriteString(bounds.Y, col, " ", p.FG, p.BG)
		drawHotkeyText(s, bounds.Y, col+1, menu.Title, p, th.MenuHotkey)
		s.WriteString(bounds.Y, col+1+textWidth(text), " ", p.FG, p.BG)
	}
}

// DrawOverlay paints the open dropdown over whatever the tree drew below
// the bar.
func (m *MenuBar) DrawOverlay(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	m.bar = bounds
	r := m.dropdown()
	if r.Empty() {
		return
	}
	if th.DialogShadow {
		s.DrawShadow(r)
	}
	s.DrawBox(r, th.Menu.FG, th.Menu.BG)
	for i, it := range m.menus[m.menu].Items {
		row := r.Y + 1 + i
		if it.sep {
			s.DrawHRule(row, r.X, r.Width, th.Menu.FG, th.Menu.BG)
			continue
		}
		p := th.Menu
		hot := th.MenuHotkey
		switch {
		case it.Disabled:
			p.FG, hot = screen.DarkGray, screen.DarkGray
		case i == m.item:
			p, hot = th.MenuHighlight, th.MenuHighlight.FG
		}
		inner := r.Width - 2
		s.WriteString(row, r.X+1, strings.Repeat(" ", inner), p.FG, p.BG)
		drawHotkeyText(s, row, r.X+2, it.Label, p, hot)
		if it.Shortcut != "" {
			s.WriteString(row, r.Right()-2-textWidth(it.Shortcut), it.Shortcut, p.FG, p.BG)
		}
	}
}

// drawHotkeyText writes label without its '&' marker, the hotkey letter in
// hot.
func drawHotkeyText(s *screen.Screen, row, col int, label string, p theme.Pair, hot screen.Color) {
	text, idx, _ := hotkeyLabel(label)
	for i, r := range []rune(text) {
		fg := p.FG
		if i == idx {
			fg = hot
		}
		s.Set(row, col+i, r, fg, p.BG)
	}
}

// SizeHint asks for one row.
func (m *MenuBar) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinHeight: 1}
}
