package input

import (
	"testing"

	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/terminal"
)

func TestNormalizeKeys(t *testing.T) {
	tests := []struct {
		name string
		in   terminal.Event
		want Event
	}{
		{"plain rune", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'a'}, Rune('a')},
		{"shifted rune", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'A', Shift: true}, Rune('A')},
		{"ctrl letter lowercased", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'Q', Ctrl: true}, Ctrl('q')},
		{"ctrl slash", terminal.KeyEvent{Key: terminal.KeyRune, Rune: '/', Ctrl: true}, Ctrl('/')},
		{"ctrl shift k", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'K', Ctrl: true, Shift: true}, Event{Kind: CtrlShiftChar, Rune: 'k'}},
		{"alt letter", terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x', Alt: true}, Alt('x')},
		{"space", terminal.KeyEvent{Key: terminal.KeyRune, Rune: ' '}, Rune(' ')},
		{"shift space", terminal.KeyEvent{Key: terminal.KeyRune, Rune: ' ', Shift: true}, Key(ShiftSpace)},
		{"ctrl space", terminal.KeyEvent{Key: terminal.KeyRune, Rune: ' ', Ctrl: true}, Key(CtrlSpace)},
		{"enter", terminal.KeyEvent{Key: terminal.KeyEnter}, Key(Enter)},
		{"escape", terminal.KeyEvent{Key: terminal.KeyEscape}, Key(Escape)},
		{"tab", terminal.KeyEvent{Key: terminal.KeyTab}, Key(Tab)},
		{"shift tab", terminal.KeyEvent{Key: terminal.KeyTab, Shift: true}, Key(ShiftTab)},
		{"backtab", terminal.KeyEvent{Key: terminal.KeyBacktab}, Key(ShiftTab)},
		{"up", terminal.KeyEvent{Key: terminal.KeyUp}, Key(CursorUp)},
		{"shift up", terminal.KeyEvent{Key: terminal.KeyUp, Shift: true}, Key(ShiftUp)},
		{"ctrl up", terminal.KeyEvent{Key: terminal.KeyUp, Ctrl: true}, Key(CtrlUp)},
		{"alt up", terminal.KeyEvent{Key: terminal.KeyUp, Alt: true}, Key(AltUp)},
		{"alt down", terminal.KeyEvent{Key: terminal.KeyDown, Alt: true}, Key(AltDown)},
		{"ctrl shift left", terminal.KeyEvent{Key: terminal.KeyLeft, Ctrl: true, Shift: true}, Key(CtrlShiftLeft)},
		{"ctrl shift end", terminal.KeyEvent{Key: terminal.KeyEnd, Ctrl: true, Shift: true}, Key(CtrlShiftEnd)},
		{"shift home", terminal.KeyEvent{Key: terminal.KeyHome, Shift: true}, Key(ShiftHome)},
		{"ctrl page down", terminal.KeyEvent{Key: terminal.KeyPageDown, Ctrl: true}, Key(CtrlPageDown)},
		{"shift page up unmapped", terminal.KeyEvent{Key: terminal.KeyPageUp, Shift: true}, Key(Unknown)},
		{"alt left unmapped", terminal.KeyEvent{Key: terminal.KeyLeft, Alt: true}, Key(Unknown)},
		{"ctrl backspace", terminal.KeyEvent{Key: terminal.KeyBackspace, Ctrl: true}, Key(CtrlBackspace)},
		{"ctrl delete", terminal.KeyEvent{Key: terminal.KeyDelete, Ctrl: true}, Key(CtrlDelete)},
		{"insert", terminal.KeyEvent{Key: terminal.KeyInsert}, Key(Insert)},
		{"f1", terminal.KeyEvent{Key: terminal.FunctionKey(1)}, F(1)},
		{"f24", terminal.KeyEvent{Key: terminal.FunctionKey(24)}, F(24)},
		{"none key", terminal.KeyEvent{Key: terminal.KeyNone}, Key(Unknown)},
		{"paste", terminal.PasteEvent{Text: "hi"}, Event{Kind: Paste, Raw: "hi"}},
		{"unknown bytes", terminal.UnknownEvent{Bytes: []byte{0x1b, '['}}, Event{Kind: UnknownBytes, Raw: "\x1b["}},
		{"resize", terminal.ResizeEvent{Width: 80, Height: 25}, Event{}},
		{"nil", nil, Event{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%#v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeMouse(t *testing.T) {
	tests := []struct {
		name string
		in   terminal.MouseEvent
		want Event
	}{
		{"left press", terminal.MouseEvent{X: 4, Y: 2, Button: terminal.MouseLeft, Action: terminal.MousePress}, Click(3, 5)},
		{"left release", terminal.MouseEvent{X: 0, Y: 0, Button: terminal.MouseLeft, Action: terminal.MouseRelease}, Release(1, 1)},
		{"bare release", terminal.MouseEvent{X: 1, Y: 1, Action: terminal.MouseRelease}, Release(2, 2)},
		{"left drag", terminal.MouseEvent{X: 9, Y: 9, Button: terminal.MouseLeft, Action: terminal.MouseDrag}, Drag(10, 10)},
		{"motion", terminal.MouseEvent{X: 2, Y: 3, Action: terminal.MouseMove}, Event{Kind: MouseMove, Row: 4, Col: 3}},
		{"wheel up", terminal.MouseEvent{X: 0, Y: 5, Button: terminal.MouseWheelUp}, Event{Kind: ScrollUp, Row: 6, Col: 1}},
		{"wheel down", terminal.MouseEvent{X: 0, Y: 5, Button: terminal.MouseWheelDown}, Event{Kind: ScrollDown, Row: 6, Col: 1}},
		{"shift wheel up", terminal.MouseEvent{Button: terminal.MouseWheelUp, Shift: true}, Event{Kind: ScrollLeft, Row: 1, Col: 1}},
		{"shift wheel down", terminal.MouseEvent{Button: terminal.MouseWheelDown, Shift: true}, Event{Kind: ScrollRight, Row: 1, Col: 1}},
		{"wheel right", terminal.MouseEvent{Button: terminal.MouseWheelRight}, Event{Kind: ScrollRight, Row: 1, Col: 1}},
		{"right press", terminal.MouseEvent{Button: terminal.MouseRight, Action: terminal.MousePress}, Key(Unknown)},
		{"middle press", terminal.MouseEvent{Button: terminal.MouseMiddle, Action: terminal.MousePress}, Key(Unknown)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%+v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeTotalOverKeys(t *testing.T) {
	for k := terminal.KeyNone; k <= terminal.FunctionKey(terminal.MaxFunctionKey); k++ {
		for mask := 0; mask < 8; mask++ {
			ev := terminal.KeyEvent{Key: k, Rune: 'z', Shift: mask&1 != 0, Ctrl: mask&2 != 0, Alt: mask&4 != 0}
			got := Normalize(ev)
			if got.Kind <= None || got.Kind >= kindCount {
				t.Fatalf("Normalize(%+v) produced out-of-vocabulary kind %v", ev, got.Kind)
			}
			if again := Normalize(ev); again != got {
				t.Fatalf("Normalize(%+v) not deterministic: %v then %v", ev, got, again)
			}
		}
	}
}

func TestMenuHotkeys(t *testing.T) {
	letters := "fevsrdoh"
	for i, r := range letters {
		idx, ok := MenuIndex(Alt(r))
		if !ok || idx != i {
			t.Errorf("MenuIndex(Alt %q) = %d, %v; want %d", r, idx, ok, i)
		}
		if !IsMenuTrigger(Alt(r)) {
			t.Errorf("Alt %q should trigger the menu", r)
		}
	}

	if !IsMenuTrigger(F(10)) {
		t.Error("F10 should trigger the menu")
	}
	if _, ok := MenuIndex(F(10)); ok {
		t.Error("F10 has no menu index")
	}
	for _, ev := range []Event{Alt('x'), Rune('f'), Ctrl('f'), F(9)} {
		if IsMenuTrigger(ev) {
			t.Errorf("%v should not trigger the menu", ev)
		}
	}
}

func TestPositionAndIn(t *testing.T) {
	ev := Click(3, 7)
	row, col, ok := ev.Position()
	if !ok || row != 3 || col != 7 {
		t.Fatalf("Position() = %d,%d,%v", row, col, ok)
	}
	if !ev.In(layout.Rect{X: 5, Y: 2, Width: 4, Height: 2}) {
		t.Error("click should be inside rect")
	}
	if ev.In(layout.Rect{X: 8, Y: 2, Width: 4, Height: 2}) {
		t.Error("click should be outside rect")
	}
	if _, _, ok := Key(Enter).Position(); ok {
		t.Error("key events have no position")
	}
}

func TestKindString(t *testing.T) {
	if CtrlShiftHome.String() != "CtrlShiftHome" {
		t.Errorf("unexpected name %q", CtrlShiftHome.String())
	}
	for k := None; k < kindCount; k++ {
		if kindNames[k] == "" {
			t.Errorf("kind %d has no name", int(k))
		}
	}
	if got := F(7).String(); got != "F7" {
		t.Errorf("F(7).String() = %q", got)
	}
}
