package input

import (
	"unicode"

	"github.com/odvcencio/textmode/pkg/ui/terminal"
)

// Normalize maps a raw terminal event onto the closed vocabulary. It is total:
// anything without a mapping becomes Unknown (or UnknownBytes when the raw
// bytes are available). Resize events normalize to None because the runtime
// handles them before widgets see input.
func Normalize(ev terminal.Event) Event {
	switch e := ev.(type) {
	case terminal.KeyEvent:
		return normalizeKey(e)
	case terminal.MouseEvent:
		return normalizeMouse(e)
	case terminal.PasteEvent:
		return Event{Kind: Paste, Raw: e.Text}
	case terminal.UnknownEvent:
		return Event{Kind: UnknownBytes, Raw: string(e.Bytes)}
	case terminal.ResizeEvent:
		return Event{}
	case nil:
		return Event{}
	}
	return Event{Kind: Unknown}
}

type modifiers uint8

const (
	modShift modifiers = 1 << iota
	modCtrl
	modAlt
)

func modsOf(e terminal.KeyEvent) modifiers {
	var m modifiers
	if e.Shift {
		m |= modShift
	}
	if e.Ctrl {
		m |= modCtrl
	}
	if e.Alt {
		m |= modAlt
	}
	return m
}

// navigation keys indexed by modifier combination.
type navRow struct {
	plain, shift, ctrl, ctrlShift, alt Kind
}

var navigation = map[terminal.Key]navRow{
	terminal.KeyUp:       {CursorUp, ShiftUp, CtrlUp, Unknown, AltUp},
	terminal.KeyDown:     {CursorDown, ShiftDown, CtrlDown, Unknown, AltDown},
	terminal.KeyLeft:     {CursorLeft, ShiftLeft, CtrlLeft, CtrlShiftLeft, Unknown},
	terminal.KeyRight:    {CursorRight, ShiftRight, CtrlRight, CtrlShiftRight, Unknown},
	terminal.KeyHome:     {Home, ShiftHome, CtrlHome, CtrlShiftHome, Unknown},
	terminal.KeyEnd:      {End, ShiftEnd, CtrlEnd, CtrlShiftEnd, Unknown},
	terminal.KeyPageUp:   {PageUp, Unknown, CtrlPageUp, Unknown, Unknown},
	terminal.KeyPageDown: {PageDown, Unknown, CtrlPageDown, Unknown, Unknown},
}

func normalizeKey(e terminal.KeyEvent) Event {
	mods := modsOf(e)

	if row, ok := navigation[e.Key]; ok {
		switch mods {
		case 0:
			return Key(row.plain)
		case modShift:
			return Key(row.shift)
		case modCtrl:
			return Key(row.ctrl)
		case modCtrl | modShift:
			return Key(row.ctrlShift)
		case modAlt:
			return Key(row.alt)
		}
		return Key(Unknown)
	}

	switch e.Key {
	case terminal.KeyRune:
		return normalizeRune(e.Rune, mods)
	case terminal.KeyEnter:
		return Key(Enter)
	case terminal.KeyEscape:
		return Key(Escape)
	case terminal.KeyTab:
		if mods&modShift != 0 {
			return Key(ShiftTab)
		}
		return Key(Tab)
	case terminal.KeyBacktab:
		return Key(ShiftTab)
	case terminal.KeyInsert:
		return Key(Insert)
	case terminal.KeyBackspace:
		if mods&modCtrl != 0 {
			return Key(CtrlBackspace)
		}
		return Key(Backspace)
	case terminal.KeyDelete:
		if mods&modCtrl != 0 {
			return Key(CtrlDelete)
		}
		return Key(Delete)
	}

	if n := e.Key.FunctionNumber(); n > 0 {
		return F(n)
	}
	return Key(Unknown)
}

func normalizeRune(r rune, mods modifiers) Event {
	if r == ' ' {
		switch mods {
		case 0:
			return Rune(' ')
		case modShift:
			return Key(ShiftSpace)
		case modCtrl, modCtrl | modShift:
			return Key(CtrlSpace)
		}
		return Key(Unknown)
	}

	switch {
	case mods&modCtrl != 0 && mods&modAlt != 0:
		return Key(Unknown)
	case mods&modCtrl != 0 && mods&modShift != 0:
		return Event{Kind: CtrlShiftChar, Rune: unicode.ToLower(r)}
	case mods&modCtrl != 0:
		return Ctrl(unicode.ToLower(r))
	case mods&modAlt != 0:
		return Alt(r)
	}
	// Shift on a printable rune is already reflected in the rune itself.
	return Rune(r)
}

func normalizeMouse(e terminal.MouseEvent) Event {
	row, col := e.Y+1, e.X+1
	at := func(k Kind) Event { return Event{Kind: k, Row: row, Col: col} }

	switch e.Button {
	case terminal.MouseWheelUp:
		if e.Shift {
			return at(ScrollLeft)
		}
		return at(ScrollUp)
	case terminal.MouseWheelDown:
		if e.Shift {
			return at(ScrollRight)
		}
		return at(ScrollDown)
	case terminal.MouseWheelLeft:
		return at(ScrollLeft)
	case terminal.MouseWheelRight:
		return at(ScrollRight)
	case terminal.MouseLeft:
		switch e.Action {
		case terminal.MousePress:
			return at(MouseClick)
		case terminal.MouseRelease:
			return at(MouseRelease)
		case terminal.MouseDrag, terminal.MouseMove:
			return at(MouseDrag)
		}
	case terminal.MouseNone:
		switch e.Action {
		case terminal.MouseRelease:
			return at(MouseRelease)
		case terminal.MouseMove:
			return at(MouseMove)
		}
	}
	return Key(Unknown)
}
