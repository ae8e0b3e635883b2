// Package terminal holds raw, decoded terminal input as delivered by a backend.
//
// These values are backend-neutral but not yet normalized: modifiers are
// separate flags and mouse coordinates are 0-based. The input package turns
// them into the closed event vocabulary consumed by widgets.
package terminal

// Event is a decoded terminal input event.
type Event interface {
	eventMarker()
}

// KeyEvent is a key press. Ctrl and Alt combinations arrive as modifiers on
// the base key, never as distinct keys.
type KeyEvent struct {
	Key   Key
	Rune  rune
	Alt   bool
	Ctrl  bool
	Shift bool
}

func (KeyEvent) eventMarker() {}

// ResizeEvent indicates the terminal size changed.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) eventMarker() {}

// MouseEvent is a mouse report. X and Y are 0-based cell coordinates.
type MouseEvent struct {
	X, Y   int
	Button MouseButton
	Action MouseAction
	Alt    bool
	Ctrl   bool
	Shift  bool
}

func (MouseEvent) eventMarker() {}

// PasteEvent carries bracketed paste content.
type PasteEvent struct {
	Text string
}

func (PasteEvent) eventMarker() {}

// UnknownEvent carries an input sequence the decoder could not classify.
type UnknownEvent struct {
	Bytes []byte
}

func (UnknownEvent) eventMarker() {}

// MouseButton identifies which mouse button was involved.
type MouseButton int

const (
	MouseNone MouseButton = iota
	MouseLeft
	MouseMiddle
	MouseRight
	MouseWheelUp
	MouseWheelDown
	MouseWheelLeft
	MouseWheelRight
)

// MouseAction identifies what happened with the mouse.
type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseMove
	MouseDrag
)

// Key identifies the base key of a KeyEvent.
type Key int

const (
	KeyNone Key = iota
	KeyRune     // Regular character
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyInsert
	KeyF1
)

// MaxFunctionKey is the highest function key number that can be reported.
const MaxFunctionKey = 24

// FunctionKey returns the Key for function key n (1..24). Out of range
// values return KeyNone.
func FunctionKey(n int) Key {
	if n < 1 || n > MaxFunctionKey {
		return KeyNone
	}
	return KeyF1 + Key(n-1)
}

// FunctionNumber reports the function key number for k, or 0 when k is not a
// function key.
func (k Key) FunctionNumber() int {
	if k < KeyF1 || k > KeyF1+Key(MaxFunctionKey-1) {
		return 0
	}
	return int(k-KeyF1) + 1
}
