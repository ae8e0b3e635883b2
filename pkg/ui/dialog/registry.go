package dialog

import (
	"fmt"
	"sort"

	"github.com/odvcencio/textmode/pkg/errors"
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Result reports whether a dialog is still open after an event.
type Result int

const (
	Open Result = iota
	Closed
)

func (r Result) String() string {
	if r == Closed {
		return "closed"
	}
	return "open"
}

// Controller owns one dialog: its shell, its state and the work it does
// through the Context.
type Controller interface {
	Open(ctx *Context)
	Close()
	IsOpen() bool
	SetScreenSize(width, height int)
	Draw(s *screen.Screen)
	HandleEvent(ev input.Event, ctx *Context) Result
}

// Kind names a registered dialog.
type Kind int

const (
	KindNone Kind = iota
	KindMessage
	KindConfirm
	KindFind
	KindGoTo
	KindReplace
)

var kindNames = map[Kind]string{
	KindNone:    "none",
	KindMessage: "message",
	KindConfirm: "confirm",
	KindFind:    "find",
	KindGoTo:    "goto",
	KindReplace: "replace",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Close reasons passed to Listener.DialogClosed.
const (
	ReasonResult    = "result"
	ReasonReplaced  = "replaced"
	ReasonDismissed = "dismissed"
)

// Listener is told when dialogs open and close.
type Listener interface {
	DialogOpened(kind string)
	DialogClosed(kind, reason string)
}

// Registry maps kinds to controllers and holds the one active dialog.
// KindNone in the active slot means no dialog is open.
type Registry struct {
	controllers      map[Kind]Controller
	active           Kind
	screenW, screenH int
	listener         Listener
}

// NewRegistry creates an empty registry for a screen of the given size.
func NewRegistry(width, height int) *Registry {
	return &Registry{controllers: make(map[Kind]Controller), screenW: width, screenH: height}
}

// NewStandardRegistry registers the stock Message, Confirm, Find, GoTo and
// Replace dialogs.
func NewStandardRegistry(width, height int) *Registry {
	r := NewRegistry(width, height)
	r.Register(KindMessage, NewMessage())
	r.Register(KindConfirm, NewConfirm())
	r.Register(KindFind, NewFind())
	r.Register(KindGoTo, NewGoTo())
	r.Register(KindReplace, NewReplace())
	return r
}

// SetListener attaches a listener.
func (r *Registry) SetListener(l Listener) { r.listener = l }

// Register adds or replaces the controller for kind.
func (r *Registry) Register(kind Kind, c Controller) {
	if kind == KindNone || c == nil {
		return
	}
	c.SetScreenSize(r.screenW, r.screenH)
	r.controllers[kind] = c
}

// Controller returns the controller registered for kind.
func (r *Registry) Controller(kind Kind) (Controller, bool) {
	c, ok := r.controllers[kind]
	return c, ok
}

// Kinds returns the registered kinds in order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.controllers))
	for k := range r.controllers {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Active returns the open dialog's kind.
func (r *Registry) Active() (Kind, bool) {
	return r.active, r.active != KindNone
}

// IsActive reports whether a dialog is open.
func (r *Registry) IsActive() bool { return r.active != KindNone }

// Open opens kind, closing any other open dialog first.
func (r *Registry) Open(kind Kind, ctx *Context) error {
	c, ok := r.controllers[kind]
	if !ok {
		return errors.New(errors.ErrCodeDialogUnknown, "no dialog registered").
			WithContext("kind", kind.String())
	}
	if r.active != KindNone {
		r.closeActive(ReasonReplaced)
	}
	c.SetScreenSize(r.screenW, r.screenH)
	c.Open(ctx)
	r.active = kind
	if r.listener != nil {
		r.listener.DialogOpened(kind.String())
	}
	return nil
}

// Close closes the open dialog, if any.
func (r *Registry) Close() {
	if r.active != KindNone {
		r.closeActive(ReasonDismissed)
	}
}

func (r *Registry) closeActive(reason string) {
	kind := r.active
	r.active = KindNone
	if c, ok := r.controllers[kind]; ok {
		c.Close()
	}
	if r.listener != nil {
		r.listener.DialogClosed(kind.String(), reason)
	}
}

// SetScreenSize updates every controller.
func (r *Registry) SetScreenSize(width, height int) {
	r.screenW, r.screenH = width, height
	for _, c := range r.controllers {
		c.SetScreenSize(width, height)
	}
}

// SetTheme recolors every controller that supports it.
func (r *Registry) SetTheme(th theme.Theme) {
	for _, c := range r.controllers {
		if t, ok := c.(Themed); ok {
			t.SetTheme(th)
		}
	}
}

// Draw paints the open dialog and reports whether there was one.
func (r *Registry) Draw(s *screen.Screen) bool {
	c, ok := r.controllers[r.active]
	if !ok {
		return false
	}
	c.Draw(s)
	return true
}

// HandleEvent sends ev to the open dialog. With no dialog open it returns
// Closed.
func (r *Registry) HandleEvent(ev input.Event, ctx *Context) Result {
	c, ok := r.controllers[r.active]
	if !ok {
		return Closed
	}
	res := c.HandleEvent(ev, ctx)
	if res == Closed && r.active != KindNone {
		r.closeActive(ReasonResult)
	}
	return res
}
