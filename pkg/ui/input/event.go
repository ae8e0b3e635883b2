// Package input normalizes raw terminal events into the closed event
// vocabulary consumed by the widget tree.
//
// Every modifier combination the toolkit cares about has its own Kind, so
// widgets switch on a single value instead of inspecting modifier flags.
// Mouse positions are 1-based (row, col) to match screen coordinates.
package input

import (
	"fmt"

	"github.com/odvcencio/textmode/pkg/ui/layout"
)

// Kind classifies a normalized event.
type Kind int

const (
	None Kind = iota
	Char
	AltChar
	CtrlChar
	CtrlShiftChar

	CursorUp
	CursorDown
	CursorLeft
	CursorRight
	Home
	End
	PageUp
	PageDown

	ShiftUp
	ShiftDown
	ShiftLeft
	ShiftRight
	ShiftHome
	ShiftEnd
	ShiftSpace

	CtrlSpace
	CtrlUp
	CtrlDown
	CtrlLeft
	CtrlRight
	CtrlHome
	CtrlEnd
	CtrlPageUp
	CtrlPageDown
	CtrlBackspace
	CtrlDelete

	CtrlShiftLeft
	CtrlShiftRight
	CtrlShiftHome
	CtrlShiftEnd

	AltUp
	AltDown

	Enter
	Backspace
	Delete
	Tab
	ShiftTab
	Insert
	Escape
	Function

	MouseClick
	MouseRelease
	MouseDrag
	MouseMove
	ScrollUp
	ScrollDown
	ScrollLeft
	ScrollRight

	Paste
	Unknown
	UnknownBytes

	kindCount
)

var kindNames = [...]string{
	None:           "None",
	Char:           "Char",
	AltChar:        "AltChar",
	CtrlChar:       "CtrlChar",
	CtrlShiftChar:  "CtrlShiftChar",
	CursorUp:       "CursorUp",
	CursorDown:     "CursorDown",
	CursorLeft:     "CursorLeft",
	CursorRight:    "CursorRight",
	Home:           "Home",
	End:            "End",
	PageUp:         "PageUp",
	PageDown:       "PageDown",
	ShiftUp:        "ShiftUp",
	ShiftDown:      "ShiftDown",
	ShiftLeft:      "ShiftLeft",
	ShiftRight:     "ShiftRight",
	ShiftHome:      "ShiftHome",
	ShiftEnd:       "ShiftEnd",
	ShiftSpace:     "ShiftSpace",
	CtrlSpace:      "CtrlSpace",
	CtrlUp:         "CtrlUp",
	CtrlDown:       "CtrlDown",
	CtrlLeft:       "CtrlLeft",
	CtrlRight:      "CtrlRight",
	CtrlHome:       "CtrlHome",
	CtrlEnd:        "CtrlEnd",
	CtrlPageUp:     "CtrlPageUp",
	CtrlPageDown:   "CtrlPageDown",
	CtrlBackspace:  "CtrlBackspace",
	CtrlDelete:     "CtrlDelete",
	CtrlShiftLeft:  "CtrlShiftLeft",
	CtrlShiftRight: "CtrlShiftRight",
	CtrlShiftHome:  "CtrlShiftHome",
	CtrlShiftEnd:   "CtrlShiftEnd",
	AltUp:          "AltUp",
	AltDown:        "AltDown",
	Enter:          "Enter",
	Backspace:      "Backspace",
	Delete:         "Delete",
	Tab:            "Tab",
	ShiftTab:       "ShiftTab",
	Insert:         "Insert",
	Escape:         "Escape",
	Function:       "Function",
	MouseClick:     "MouseClick",
	MouseRelease:   "MouseRelease",
	MouseDrag:      "MouseDrag",
	MouseMove:      "MouseMove",
	ScrollUp:       "ScrollUp",
	ScrollDown:     "ScrollDown",
	ScrollLeft:     "ScrollLeft",
	ScrollRight:    "ScrollRight",
	Paste:          "Paste",
	Unknown:        "Unknown",
	UnknownBytes:   "UnknownBytes",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Event is a normalized input event. It is a comparable value.
//
// Rune is set for the *Char kinds, Num for Function (1..24), Row and Col for
// mouse kinds, and Raw for Paste (text) and UnknownBytes (undecoded bytes).
type Event struct {
	Kind Kind
	Rune rune
	Num  int
	Row  int
	Col  int
	Raw  string
}

// Key builds a key event of the given kind.
func Key(k Kind) Event { return Event{Kind: k} }

// Rune builds a plain character event.
func Rune(r rune) Event { return Event{Kind: Char, Rune: r} }

// Alt builds an Alt+character event.
func Alt(r rune) Event { return Event{Kind: AltChar, Rune: r} }

// Ctrl builds a Ctrl+character event.
func Ctrl(r rune) Event { return Event{Kind: CtrlChar, Rune: r} }

// F builds a function key event.
func F(n int) Event { return Event{Kind: Function, Num: n} }

// Click builds a left-button press at (row, col).
func Click(row, col int) Event { return Event{Kind: MouseClick, Row: row, Col: col} }

// Release builds a button release at (row, col).
func Release(row, col int) Event { return Event{Kind: MouseRelease, Row: row, Col: col} }

// Drag builds a left-button drag at (row, col).
func Drag(row, col int) Event { return Event{Kind: MouseDrag, Row: row, Col: col} }

// IsMouse reports whether ev carries a screen position.
func (ev Event) IsMouse() bool {
	switch ev.Kind {
	case MouseClick, MouseRelease, MouseDrag, MouseMove,
		ScrollUp, ScrollDown, ScrollLeft, ScrollRight:
		return true
	}
	return false
}

// Position returns the 1-based (row, col) of a mouse event.
func (ev Event) Position() (row, col int, ok bool) {
	if !ev.IsMouse() {
		return 0, 0, false
	}
	return ev.Row, ev.Col, true
}

// In reports whether ev is a mouse event inside r.
func (ev Event) In(r layout.Rect) bool {
	row, col, ok := ev.Position()
	return ok && r.Contains(row, col)
}

func (ev Event) String() string {
	switch ev.Kind {
	case Char, AltChar, CtrlChar, CtrlShiftChar:
		return fmt.Sprintf("%s(%q)", ev.Kind, ev.Rune)
	case Function:
		return fmt.Sprintf("F%d", ev.Num)
	case Paste, UnknownBytes:
		return fmt.Sprintf("%s(%q)", ev.Kind, ev.Raw)
	}
	if ev.IsMouse() {
		return fmt.Sprintf("%s(%d,%d)", ev.Kind, ev.Row, ev.Col)
	}
	return ev.Kind.String()
}
