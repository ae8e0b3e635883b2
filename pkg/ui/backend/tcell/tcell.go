// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/backend"
	"github.com/odvcencio/textmode/pkg/ui/compositor"
	"github.com/odvcencio/textmode/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	// Bracketed paste state
	inPaste     bool
	pasteBuffer strings.Builder

	// Button mask of the previous mouse report, used to tell drags from
	// presses and releases from motion.
	lastButtons tcell.ButtonMask
}

// New creates a new tcell backend.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTerminalInit, "create tcell screen")
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalInit, "initialize tcell screen")
	}
	b.screen.EnableMouse(tcell.MouseMotionEvents)
	b.screen.EnablePaste()
	return nil
}

// Fini cleans up the backend.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, convertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// SetCursorPos shows the cursor at (x, y).
func (b *Backend) SetCursorPos(x, y int) {
	b.screen.ShowCursor(x, y)
}

// SetCursorShape applies a DECSCUSR cursor shape.
func (b *Backend) SetCursorShape(shape int) {
	b.screen.SetCursorStyle(tcell.CursorStyle(shape))
}

// WriteRaw writes data directly to the terminal at (x, y), bypassing tcell's
// cell buffer. Used for sixel graphics.
func (b *Backend) WriteRaw(x, y int, data string) error {
	tty, ok := b.screen.Tty()
	if !ok {
		return errors.New(errors.ErrCodeUnsupported, "screen has no tty for raw output")
	}
	if _, err := tty.Write([]byte(compositor.CursorTo(y+1, x+1) + data)); err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "write raw terminal data")
	}
	return nil
}

// PollEvent blocks until an event is available.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}

		// Handle bracketed paste state machine
		switch e := ev.(type) {
		case *tcell.EventPaste:
			if e.Start() {
				b.inPaste = true
				b.pasteBuffer.Reset()
				continue
			}
			if e.End() {
				b.inPaste = false
				text := b.pasteBuffer.String()
				b.pasteBuffer.Reset()
				if text != "" {
					return terminal.PasteEvent{Text: text}
				}
				continue
			}

		case *tcell.EventKey:
			if b.inPaste {
				switch e.Key() {
				case tcell.KeyRune:
					b.pasteBuffer.WriteRune(e.Rune())
				case tcell.KeyEnter:
					b.pasteBuffer.WriteRune('\n')
				case tcell.KeyTab:
					b.pasteBuffer.WriteRune('\t')
				}
				continue
			}

		case *tcell.EventMouse:
			return b.convertMouse(e)
		}

		if converted := convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects an event into the queue.
func (b *Backend) PostEvent(ev terminal.Event) error {
	tev := reverseConvertEvent(ev)
	if tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Beep emits an audible bell.
func (b *Backend) Beep() {
	b.screen.Beep()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// convertStyle converts backend.Style to tcell.Style.
func convertStyle(s backend.Style) tcell.Style {
	return tcell.StyleDefault.
		Foreground(convertColor(s.FG())).
		Background(convertColor(s.BG()))
}

// convertColor converts backend.Color to tcell.Color.
func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

// convertEvent converts a non-mouse tcell event to terminal.Event.
func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	default:
		return nil
	}
}

func convertKeyEvent(e *tcell.EventKey) terminal.KeyEvent {
	mods := e.Modifiers()
	ev := terminal.KeyEvent{
		Key:   convertKey(e.Key()),
		Rune:  e.Rune(),
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}

	// Control characters arrive as their own keys; report them as the
	// letter with Ctrl held.
	k := e.Key()
	switch {
	case k == tcell.KeyNUL:
		ev.Key, ev.Rune, ev.Ctrl = terminal.KeyRune, ' ', true
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && ev.Key == terminal.KeyNone:
		ev.Key, ev.Rune, ev.Ctrl = terminal.KeyRune, rune('a'+int(k-tcell.KeyCtrlA)), true
	case k == tcell.KeyCtrlUnderscore:
		ev.Key, ev.Rune, ev.Ctrl = terminal.KeyRune, '/', true
	}
	return ev
}

// convertKey converts tcell.Key to terminal.Key.
func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyPgUp:
		return terminal.KeyPageUp
	case tcell.KeyPgDn:
		return terminal.KeyPageDown
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyInsert:
		return terminal.KeyInsert
	case tcell.KeyDelete:
		return terminal.KeyDelete
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyBacktab:
		return terminal.KeyBacktab
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyEscape:
		return terminal.KeyEscape
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF24 {
		return terminal.FunctionKey(int(k-tcell.KeyF1) + 1)
	}
	return terminal.KeyNone
}

// convertMouse classifies a mouse report against the previous button state.
func (b *Backend) convertMouse(e *tcell.EventMouse) terminal.MouseEvent {
	x, y := e.Position()
	mods := e.Modifiers()
	buttons := e.Buttons()
	prev := b.lastButtons
	b.lastButtons = buttons &^ (tcell.WheelUp | tcell.WheelDown | tcell.WheelLeft | tcell.WheelRight)

	button, action := classifyMouse(buttons, prev)
	return terminal.MouseEvent{
		X:      x,
		Y:      y,
		Button: button,
		Action: action,
		Alt:    mods&tcell.ModAlt != 0,
		Ctrl:   mods&tcell.ModCtrl != 0,
		Shift:  mods&tcell.ModShift != 0,
	}
}

func classifyMouse(buttons, prev tcell.ButtonMask) (terminal.MouseButton, terminal.MouseAction) {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp, terminal.MousePress
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown, terminal.MousePress
	case buttons&tcell.WheelLeft != 0:
		return terminal.MouseWheelLeft, terminal.MousePress
	case buttons&tcell.WheelRight != 0:
		return terminal.MouseWheelRight, terminal.MousePress
	}

	button := convertMouseButton(buttons)
	if button == terminal.MouseNone {
		if prev != tcell.ButtonNone {
			return convertMouseButton(prev), terminal.MouseRelease
		}
		return terminal.MouseNone, terminal.MouseMove
	}
	if prev&buttons != 0 {
		return button, terminal.MouseDrag
	}
	return button, terminal.MousePress
}

// convertMouseButton converts tcell button mask to terminal.MouseButton.
func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseRight
	case buttons&tcell.Button3 != 0:
		return terminal.MouseMiddle
	default:
		return terminal.MouseNone
	}
}

// reverseConvertEvent converts terminal.Event to tcell.Event for PostEvent.
func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.KeyEvent:
		return tcell.NewEventKey(reverseKey(e.Key), e.Rune, reverseMods(e.Alt, e.Ctrl, e.Shift))
	case terminal.MouseEvent:
		return tcell.NewEventMouse(e.X, e.Y, reverseButtons(e), reverseMods(e.Alt, e.Ctrl, e.Shift))
	default:
		return nil
	}
}

var reverseKeys = map[terminal.Key]tcell.Key{
	terminal.KeyRune:      tcell.KeyRune,
	terminal.KeyEnter:     tcell.KeyEnter,
	terminal.KeyBackspace: tcell.KeyBackspace2,
	terminal.KeyTab:       tcell.KeyTab,
	terminal.KeyBacktab:   tcell.KeyBacktab,
	terminal.KeyEscape:    tcell.KeyEscape,
	terminal.KeyUp:        tcell.KeyUp,
	terminal.KeyDown:      tcell.KeyDown,
	terminal.KeyLeft:      tcell.KeyLeft,
	terminal.KeyRight:     tcell.KeyRight,
	terminal.KeyHome:      tcell.KeyHome,
	terminal.KeyEnd:       tcell.KeyEnd,
	terminal.KeyPageUp:    tcell.KeyPgUp,
	terminal.KeyPageDown:  tcell.KeyPgDn,
	terminal.KeyDelete:    tcell.KeyDelete,
	terminal.KeyInsert:    tcell.KeyInsert,
}

func reverseKey(k terminal.Key) tcell.Key {
	if tk, ok := reverseKeys[k]; ok {
		return tk
	}
	if n := k.FunctionNumber(); n > 0 {
		return tcell.KeyF1 + tcell.Key(n-1)
	}
	return tcell.KeyRune
}

func reverseMods(alt, ctrl, shift bool) tcell.ModMask {
	var m tcell.ModMask
	if alt {
		m |= tcell.ModAlt
	}
	if ctrl {
		m |= tcell.ModCtrl
	}
	if shift {
		m |= tcell.ModShift
	}
	return m
}

func reverseButtons(e terminal.MouseEvent) tcell.ButtonMask {
	if e.Action == terminal.MouseRelease || e.Action == terminal.MouseMove {
		return tcell.ButtonNone
	}
	switch e.Button {
	case terminal.MouseLeft:
		return tcell.Button1
	case terminal.MouseMiddle:
		return tcell.Button3
	case terminal.MouseRight:
		return tcell.Button2
	case terminal.MouseWheelUp:
		return tcell.WheelUp
	case terminal.MouseWheelDown:
		return tcell.WheelDown
	case terminal.MouseWheelLeft:
		return tcell.WheelLeft
	case terminal.MouseWheelRight:
		return tcell.WheelRight
	}
	return tcell.ButtonNone
}

// Ensure Backend implements the backend interfaces.
var (
	_ backend.Backend      = (*Backend)(nil)
	_ backend.CursorShaper = (*Backend)(nil)
	_ backend.RawWriter    = (*Backend)(nil)
)
