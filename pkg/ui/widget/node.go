package widget

import (
	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Node is a tree node: a *Leaf or a *Container.
type Node interface {
	ID() string
	item() layout.Item
}

// Leaf holds one widget.
type Leaf struct {
	id     string
	widget Widget
}

// NewLeaf wraps w as a node named id.
func NewLeaf(id string, w Widget) *Leaf {
	return &Leaf{id: id, widget: w}
}

// ID returns the node id.
func (l *Leaf) ID() string { return l.id }

// Widget returns the wrapped widget.
func (l *Leaf) Widget() Widget { return l.widget }

// item projects the widget's current size hint into a layout item.
func (l *Leaf) item() layout.Item {
	hint := l.widget.SizeHint()
	it := layout.Leaf(l.id).WithMin(hint.MinWidth, hint.MinHeight)
	if tw, ok := l.widget.(TightWidth); ok && tw.WantsTightWidth() && hint.MinWidth > 0 {
		it = it.WithWidth(layout.Fixed(hint.MinWidth))
	}
	switch {
	case hint.Flex > 0:
		it = it.WithHeight(layout.Flex(hint.Flex))
	case hint.MinHeight > 0:
		it = it.WithHeight(layout.Fixed(hint.MinHeight))
	}
	if fb, ok := l.widget.(FullBleed); ok && fb.WantsFullBleed() {
		it = it.WithFullBleed()
	}
	return it
}

// Direction is the primary axis of a container.
type Direction uint8

const (
	Vertical Direction = iota
	Horizontal
)

// ChromeFunc paints beneath a container's children.
type ChromeFunc func(s *screen.Screen, bounds layout.Rect, th *theme.Theme)

// HandlerFunc intercepts events passing through a container. It receives
// Capture and Bubble for events aimed at descendants, and all three phases
// when the container itself is the hit target.
type HandlerFunc func(ev input.Event, bounds layout.Rect, phase Phase) Result

// Container stacks children along one axis.
type Container struct {
	id       string
	dir      Direction
	spacing  int
	padding  int
	width    layout.Size
	height   layout.Size
	children []Node
	chrome   ChromeFunc
	handler  HandlerFunc
}

// VStack starts a vertical container.
func VStack(id string) *Container {
	return &Container{id: id, dir: Vertical, width: layout.Flex(1), height: layout.Flex(1)}
}

// HStack starts a horizontal container.
func HStack(id string) *Container {
	return &Container{id: id, dir: Horizontal, width: layout.Flex(1), height: layout.Flex(1)}
}

// Spacing sets the gap between children.
func (c *Container) Spacing(n int) *Container {
	c.spacing = max(n, 0)
	return c
}

// Padding sets the inset on every side.
func (c *Container) Padding(n int) *Container {
	c.padding = max(n, 0)
	return c
}

// Width overrides the container's width intent (flexible by default).
func (c *Container) Width(s layout.Size) *Container {
	c.width = s
	return c
}

// Height overrides the container's height intent (flexible by default).
func (c *Container) Height(s layout.Size) *Container {
	c.height = s
	return c
}

// Child appends a node.
func (c *Container) Child(n Node) *Container {
	c.children = append(c.children, n)
	return c
}

// Leaf appends a widget as a leaf named id.
func (c *Container) Leaf(id string, w Widget) *Container {
	return c.Child(NewLeaf(id, w))
}

// Chrome sets the paint callback run before children are drawn.
func (c *Container) Chrome(fn ChromeFunc) *Container {
	c.chrome = fn
	return c
}

// Handler sets the event intercept callback.
func (c *Container) Handler(fn HandlerFunc) *Container {
	c.handler = fn
	return c
}

// ID returns the node id.
func (c *Container) ID() string { return c.id }

// Children returns the child nodes in order.
func (c *Container) Children() []Node { return c.children }

// Direction returns the stacking axis.
func (c *Container) Direction() Direction { return c.dir }

// Replace swaps the child named id for n. It reports false when no child
// has that id.
func (c *Container) Replace(id string, n Node) bool {
	for i, child := range c.children {
		if child.ID() == id {
			c.children[i] = n
			return true
		}
	}
	return false
}

func (c *Container) item() layout.Item {
	children := make([]layout.Item, len(c.children))
	for i, child := range c.children {
		children[i] = child.item()
	}
	var it layout.Item
	if c.dir == Horizontal {
		it = layout.HStack(children...)
	} else {
		it = layout.VStack(children...)
	}
	return it.WithID(c.id).
		WithSpacing(c.spacing).
		WithPadding(c.padding).
		WithWidth(c.width).
		WithHeight(c.height)
}

// childBounds lays out the children inside bounds from their current hints.
func (c *Container) childBounds(bounds layout.Rect) []layout.Rect {
	return layout.ChildBounds(c.item(), bounds)
}

func (c *Container) child(id string) (Node, int) {
	for i, child := range c.children {
		if child.ID() == id {
			return child, i
		}
	}
	return nil, -1
}

// placedOverlay is an Overlay widget with the bounds it was drawn in.
type placedOverlay struct {
	w      Overlay
	bounds layout.Rect
}

func drawNode(n Node, s *screen.Screen, bounds layout.Rect, th *theme.Theme, overlays *[]placedOverlay) {
	s.PushClip(bounds)
	defer s.PopClip()

	switch n := n.(type) {
	case *Leaf:
		n.widget.Draw(s, bounds, th)
		if o, ok := n.widget.(Overlay); ok {
			*overlays = append(*overlays, placedOverlay{w: o, bounds: bounds})
		}
	case *Container:
		if n.chrome != nil {
			n.chrome(s, bounds, th)
		}
		for i, r := range n.childBounds(bounds) {
			drawNode(n.children[i], s, r, th, overlays)
		}
	}
}

// pathAt returns the ids from n down to the deepest node containing
// (row, col). A container is the target when none of its children are.
func pathAt(n Node, row, col int, bounds layout.Rect) []string {
	if !bounds.Contains(row, col) {
		return nil
	}
	c, ok := n.(*Container)
	if !ok {
		return []string{n.ID()}
	}
	for i, r := range c.childBounds(bounds) {
		if sub := pathAt(c.children[i], row, col, r); sub != nil {
			return append([]string{c.id}, sub...)
		}
	}
	return []string{c.id}
}

// dispatch delivers ev along path starting at n.
func dispatch(n Node, ev input.Event, bounds layout.Rect, path []string) Result {
	if len(path) == 0 || path[0] != n.ID() {
		return Ignored
	}
	isTarget := len(path) == 1

	switch n := n.(type) {
	case *Leaf:
		if !isTarget {
			return Ignored
		}
		return n.widget.HandleEvent(ev, bounds, Target)

	case *Container:
		if r := n.intercept(ev, bounds, Capture); r.Handled() {
			return r
		}
		if isTarget {
			if r := n.intercept(ev, bounds, Target); r.Handled() {
				return r
			}
		} else if child, i := n.child(path[1]); child != nil {
			rects := n.childBounds(bounds)
			if r := dispatch(child, ev, rects[i], path[1:]); r.Handled() {
				return r
			}
		}
		return n.intercept(ev, bounds, Bubble)
	}
	return Ignored
}

func (c *Container) intercept(ev input.Event, bounds layout.Rect, phase Phase) Result {
	if c.handler == nil {
		return Ignored
	}
	return c.handler(ev, bounds, phase)
}

// lookup resolves path starting at n.
func lookup(n Node, path []string) Node {
	if len(path) == 0 || n == nil || path[0] != n.ID() {
		return nil
	}
	for _, id := range path[1:] {
		c, ok := n.(*Container)
		if !ok {
			return nil
		}
		if n, _ = c.child(id); n == nil {
			return nil
		}
	}
	return n
}

// focusable appends the paths of every focusable leaf under n in document
// order.
func focusable(n Node, prefix []string, out [][]string) [][]string {
	path := append(append([]string(nil), prefix...), n.ID())
	switch n := n.(type) {
	case *Leaf:
		if n.widget.Focusable() {
			out = append(out, path)
		}
	case *Container:
		for _, child := range n.children {
			out = focusable(child, path, out)
		}
	}
	return out
}
