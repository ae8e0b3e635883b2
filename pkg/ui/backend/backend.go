// Package backend defines the terminal backend interface. Real terminals use
// the tcell implementation; tests use the sim package, which wraps tcell's
// simulation screen.
package backend

import "github.com/odvcencio/textmode/pkg/ui/terminal"

// Backend is the terminal abstraction layer. Coordinates are 0-based.
type Backend interface {
	// Init initializes the backend (enters alt screen, raw mode, etc).
	Init() error

	// Fini cleans up the backend (restores terminal state).
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets a cell at position (x, y) with the given rune and style.
	// The comb parameter contains combining characters (can be nil).
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show synchronizes the internal buffer to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// SetCursorPos shows the cursor at the given position.
	SetCursorPos(x, y int)

	// PollEvent blocks until an event is available and returns it.
	// Returns nil if the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the event queue.
	PostEvent(ev terminal.Event) error

	// Beep emits an audible bell.
	Beep()

	// Sync forces a full redraw on next Show().
	Sync()
}

// CursorShaper is implemented by backends that can change the cursor shape.
// Shape values follow DECSCUSR numbering (1 blinking block .. 6 steady bar).
type CursorShaper interface {
	SetCursorShape(shape int)
}

// RawWriter is implemented by backends that can pass bytes straight to the
// terminal, such as sixel image data. (x, y) is the 0-based write position.
type RawWriter interface {
	WriteRaw(x, y int, data string) error
}
