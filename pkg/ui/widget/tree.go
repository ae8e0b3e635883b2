package widget

import (
	"slices"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Tree owns a node hierarchy, its theme and the keyboard focus.
//
// The focus path is either empty or names a focusable leaf whose widget has
// focus set; every other widget in the tree is unfocused. Layout is never
// stored: each draw, dispatch and hit test recomputes it from the widgets'
// current size hints.
type Tree struct {
	root     Node
	theme    theme.Theme
	focus    []string
	observer DispatchObserver
}

// New creates a tree with nothing focused.
func New(root Node, th theme.Theme) *Tree {
	return &Tree{root: root, theme: th}
}

// Root returns the root node.
func (t *Tree) Root() Node { return t.root }

// Theme returns the tree's theme.
func (t *Tree) Theme() *theme.Theme { return &t.theme }

// SetTheme replaces the theme.
func (t *Tree) SetTheme(th theme.Theme) { t.theme = th }

// SetObserver installs a dispatch observer. Nil removes it.
func (t *Tree) SetObserver(o DispatchObserver) { t.observer = o }

// Draw paints the tree into bounds. Each node is clipped to its own rect;
// overlays are painted last without a clip.
func (t *Tree) Draw(s *screen.Screen, bounds layout.Rect) {
	if t.root == nil {
		return
	}
	var overlays []placedOverlay
	drawNode(t.root, s, bounds, &t.theme, &overlays)
	for _, o := range overlays {
		o.w.DrawOverlay(s, o.bounds, &t.theme)
	}
}

// HandleEvent routes ev through the tree.
//
// Tab and ShiftTab always move focus. Mouse events target the deepest node
// under the pointer, and a click focuses that node first if it is a
// focusable leaf. Other events target the focused leaf. The event then runs
// Capture down the container ancestors, Target at the node and Bubble back
// up, stopping at the first handled result.
func (t *Tree) HandleEvent(ev input.Event, bounds layout.Rect) Result {
	r := t.handle(ev, bounds)
	if t.observer != nil {
		t.observer.ObserveDispatch(ev.Kind, r)
	}
	return r
}

func (t *Tree) handle(ev input.Event, bounds layout.Rect) Result {
	switch ev.Kind {
	case input.Tab:
		t.FocusNext()
		return Consumed
	case input.ShiftTab:
		t.FocusPrev()
		return Consumed
	}
	if t.root == nil {
		return Ignored
	}

	var path []string
	if row, col, ok := ev.Position(); ok {
		path = pathAt(t.root, row, col, bounds)
		if ev.Kind == input.MouseClick && t.isFocusableLeaf(path) {
			t.moveFocus(path)
		}
	} else {
		path = slices.Clone(t.focus)
	}
	if len(path) == 0 {
		return Ignored
	}
	return dispatch(t.root, ev, bounds, path)
}

// PathAt returns the path of the deepest node containing (row, col) when
// the tree is laid out in bounds, or nil.
func (t *Tree) PathAt(row, col int, bounds layout.Rect) []string {
	if t.root == nil {
		return nil
	}
	return pathAt(t.root, row, col, bounds)
}

// Widget returns the widget of the leaf at path.
func (t *Tree) Widget(path ...string) (Widget, bool) {
	leaf, ok := lookup(t.root, path).(*Leaf)
	if !ok {
		return nil, false
	}
	return leaf.widget, true
}

// Node returns the node at path.
func (t *Tree) Node(path ...string) (Node, bool) {
	n := lookup(t.root, path)
	return n, n != nil
}

// Find returns the widget at path as a T.
func Find[T Widget](t *Tree, path ...string) (T, bool) {
	var zero T
	w, ok := t.Widget(path...)
	if !ok {
		return zero, false
	}
	typed, ok := w.(T)
	return typed, ok
}

// FocusPath returns a copy of the focus path.
func (t *Tree) FocusPath() []string { return slices.Clone(t.focus) }

// Focused returns the focused widget.
func (t *Tree) Focused() (Widget, bool) {
	if len(t.focus) == 0 {
		return nil, false
	}
	return t.Widget(t.focus...)
}

// IsFocused reports whether path is the focus path.
func (t *Tree) IsFocused(path ...string) bool {
	return len(t.focus) > 0 && slices.Equal(t.focus, path)
}

// FocusablePaths lists every focusable leaf in document order.
func (t *Tree) FocusablePaths() [][]string {
	if t.root == nil {
		return nil
	}
	return focusable(t.root, nil, nil)
}

// FocusNext moves focus to the next focusable leaf, wrapping around. With
// nothing focused it picks the first.
func (t *Tree) FocusNext() bool {
	paths := t.FocusablePaths()
	if len(paths) == 0 {
		return false
	}
	next := 0
	if i := t.indexOf(paths); i >= 0 {
		next = (i + 1) % len(paths)
	}
	return t.moveFocus(paths[next])
}

// FocusPrev moves focus to the previous focusable leaf, wrapping around.
// With nothing focused it picks the last.
func (t *Tree) FocusPrev() bool {
	paths := t.FocusablePaths()
	if len(paths) == 0 {
		return false
	}
	prev := len(paths) - 1
	if i := t.indexOf(paths); i > 0 {
		prev = i - 1
	}
	return t.moveFocus(paths[prev])
}

// FocusFirst focuses the first focusable leaf.
func (t *Tree) FocusFirst() bool {
	paths := t.FocusablePaths()
	if len(paths) == 0 {
		return false
	}
	return t.moveFocus(paths[0])
}

// SetFocus focuses the leaf at path. Paths that do not name a focusable
// leaf are rejected and leave focus unchanged.
func (t *Tree) SetFocus(path ...string) bool {
	if !t.isFocusableLeaf(path) {
		return false
	}
	return t.moveFocus(slices.Clone(path))
}

// ClearFocus unfocuses the focused leaf.
func (t *Tree) ClearFocus() {
	if w, ok := t.Focused(); ok {
		w.SetFocus(false)
	}
	t.focus = nil
}

// SetRoot replaces the whole hierarchy. Focus survives when the same path
// still names a focusable leaf in the new tree.
func (t *Tree) SetRoot(root Node) {
	t.rebuild(func() { t.root = root })
}

// Replace swaps the node at path for n, keeping the rest of the tree. It
// reports false when path does not name a child of some container.
func (t *Tree) Replace(n Node, path ...string) bool {
	if len(path) < 2 {
		return false
	}
	parent, ok := lookup(t.root, path[:len(path)-1]).(*Container)
	if !ok {
		return false
	}
	if existing, _ := parent.child(path[len(path)-1]); existing == nil {
		return false
	}
	t.rebuild(func() { parent.Replace(path[len(path)-1], n) })
	return true
}

func (t *Tree) rebuild(change func()) {
	prev := t.focus
	t.ClearFocus()
	change()
	if t.isFocusableLeaf(prev) {
		t.moveFocus(prev)
	}
}

func (t *Tree) indexOf(paths [][]string) int {
	if len(t.focus) == 0 {
		return -1
	}
	for i, p := range paths {
		if slices.Equal(p, t.focus) {
			return i
		}
	}
	return -1
}

func (t *Tree) isFocusableLeaf(path []string) bool {
	leaf, ok := lookup(t.root, path).(*Leaf)
	return ok && leaf.widget.Focusable()
}

// moveFocus blurs the old leaf before focusing the new one.
func (t *Tree) moveFocus(path []string) bool {
	leaf, ok := lookup(t.root, path).(*Leaf)
	if !ok {
		return false
	}
	if old, ok := t.Focused(); ok {
		old.SetFocus(false)
	}
	leaf.widget.SetFocus(true)
	t.focus = path
	return true
}
