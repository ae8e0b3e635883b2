// Package widget implements the retained widget tree: an owned hierarchy of
// leaves and stack containers with path-addressed focus, per-frame layout
// and three-phase event dispatch.
package widget

import (
	"fmt"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Phase is the dispatch phase an event is delivered in.
type Phase uint8

const (
	// Capture runs root to target on container handlers.
	Capture Phase = iota
	// Target is the only phase leaves receive.
	Target
	// Bubble runs target to root on container handlers.
	Bubble
)

func (p Phase) String() string {
	switch p {
	case Capture:
		return "capture"
	case Target:
		return "target"
	case Bubble:
		return "bubble"
	}
	return fmt.Sprintf("Phase(%d)", uint8(p))
}

type resultKind uint8

const (
	ignored resultKind = iota
	consumed
	action
)

// Result is the outcome of handling an event. The zero value is Ignored.
type Result struct {
	kind resultKind
	name string
}

var (
	// Ignored lets the event continue propagating.
	Ignored = Result{}
	// Consumed stops propagation without a payload.
	Consumed = Result{kind: consumed}
)

// Action stops propagation and names the behavior to trigger.
func Action(name string) Result {
	return Result{kind: action, name: name}
}

// Handled reports whether propagation stops here.
func (r Result) Handled() bool { return r.kind != ignored }

// IsAction reports whether r carries an action name.
func (r Result) IsAction() bool { return r.kind == action }

// Name returns the action name, or "" for Consumed and Ignored.
func (r Result) Name() string { return r.name }

// Is reports whether r is the action called name.
func (r Result) Is(name string) bool { return r.kind == action && r.name == name }

func (r Result) String() string {
	switch r.kind {
	case consumed:
		return "consumed"
	case action:
		return "action(" + r.name + ")"
	}
	return "ignored"
}

// Widget is a leaf of the tree. Draw must stay inside bounds; the tree also
// clips to them.
type Widget interface {
	Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme)
	HandleEvent(ev input.Event, bounds layout.Rect, phase Phase) Result
	SizeHint() layout.SizeHint
	Focusable() bool
	SetFocus(focused bool)
	HasFocus() bool
}

// TightWidth is implemented by widgets that want exactly their minimum
// width instead of stretching.
type TightWidth interface {
	WantsTightWidth() bool
}

// FullBleed is implemented by widgets that ignore their container's padding
// on the cross axis, such as separators joining a border.
//
// The cross axis is the one the container does not stack along, so a
// full-bleed child of a VStack widens horizontally and one in an HStack
// grows vertically into the top and bottom padding. It never widens an
// HStack child horizontally.
type FullBleed interface {
	WantsFullBleed() bool
}

// Overlay is implemented by widgets that paint outside their own bounds,
// such as an open dropdown. The tree calls DrawOverlay unclipped after the
// whole tree is drawn, in document order, with the bounds from that draw.
type Overlay interface {
	DrawOverlay(s *screen.Screen, bounds layout.Rect, th *theme.Theme)
}

// Base provides defaults for the optional parts of Widget: not focusable,
// no size preference, and focus flag storage.
type Base struct {
	focused bool
}

// HandleEvent ignores everything.
func (b *Base) HandleEvent(input.Event, layout.Rect, Phase) Result { return Ignored }

// SizeHint returns no preference.
func (b *Base) SizeHint() layout.SizeHint { return layout.SizeHint{} }

// Focusable returns false.
func (b *Base) Focusable() bool { return false }

// SetFocus records the focus state.
func (b *Base) SetFocus(focused bool) { b.focused = focused }

// HasFocus reports the recorded focus state.
func (b *Base) HasFocus() bool { return b.focused }

// DispatchObserver is notified of every event the tree dispatches.
type DispatchObserver interface {
	ObserveDispatch(kind input.Kind, result Result)
}
