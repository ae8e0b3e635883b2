package layout

import "fmt"

type sizeKind uint8

const (
	sizeAuto sizeKind = iota
	sizeFixed
	sizeFlex
	sizePercent
)

// Size is a sizing intent along one axis. The zero value is Auto: the item
// takes its minimum along the primary axis and stretches on the cross axis.
type Size struct {
	kind sizeKind
	n    int
}

// Auto sizes to the item's minimum.
func Auto() Size { return Size{} }

// Fixed requests exactly n cells (never less than the item's minimum).
func Fixed(n int) Size { return Size{kind: sizeFixed, n: max(n, 0)} }

// Flex shares leftover space proportionally to weight.
func Flex(weight int) Size { return Size{kind: sizeFlex, n: max(weight, 0)} }

// Percent requests p percent of the container interior.
func Percent(p int) Size { return Size{kind: sizePercent, n: min(max(p, 0), 100)} }

// IsFlex reports whether s is a flexible size.
func (s Size) IsFlex() bool { return s.kind == sizeFlex }

// Value returns the cell count, weight or percentage carried by s.
func (s Size) Value() int { return s.n }

func (s Size) String() string {
	switch s.kind {
	case sizeFixed:
		return fmt.Sprintf("Fixed(%d)", s.n)
	case sizeFlex:
		return fmt.Sprintf("Flex(%d)", s.n)
	case sizePercent:
		return fmt.Sprintf("Percent(%d)", s.n)
	}
	return "Auto"
}

// NodeKind identifies what an Item lays out.
type NodeKind uint8

const (
	LeafNode NodeKind = iota
	VStackNode
	HStackNode
	SpacerNode
)

// Item describes the sizing intent of one node in a layout tree.
type Item struct {
	ID        string
	Kind      NodeKind
	Width     Size
	Height    Size
	MinWidth  int
	MinHeight int
	Spacing   int
	Padding   int
	// FullBleed makes the item ignore its parent's padding on the cross axis.
	FullBleed bool
	Children  []Item
}

// Leaf returns a leaf item: flexible width, one row tall.
func Leaf(id string) Item {
	return Item{ID: id, Kind: LeafNode, Width: Flex(1), Height: Fixed(1)}
}

// VStack returns a vertical container filling its parent.
func VStack(children ...Item) Item {
	return Item{Kind: VStackNode, Width: Flex(1), Height: Flex(1), Children: children}
}

// HStack returns a horizontal container filling its parent.
func HStack(children ...Item) Item {
	return Item{Kind: HStackNode, Width: Flex(1), Height: Flex(1), Children: children}
}

// Spacer returns an empty flexible item.
func Spacer() Item {
	return Item{Kind: SpacerNode, Width: Flex(1), Height: Flex(1)}
}

// WithWidth sets the width intent.
func (it Item) WithWidth(s Size) Item {
	it.Width = s
	return it
}

// WithHeight sets the height intent.
func (it Item) WithHeight(s Size) Item {
	it.Height = s
	return it
}

// WithMin sets the minimum width and height.
func (it Item) WithMin(w, h int) Item {
	it.MinWidth, it.MinHeight = max(w, 0), max(h, 0)
	return it
}

// WithSpacing sets the gap between children of a stack.
func (it Item) WithSpacing(n int) Item {
	it.Spacing = max(n, 0)
	return it
}

// WithPadding sets the inset applied on every side of a stack.
func (it Item) WithPadding(n int) Item {
	it.Padding = max(n, 0)
	return it
}

// WithID names the item.
func (it Item) WithID(id string) Item {
	it.ID = id
	return it
}

// WithFullBleed flags the item as ignoring parent padding.
func (it Item) WithFullBleed() Item {
	it.FullBleed = true
	return it
}

// IsStack reports whether the item lays out children.
func (it Item) IsStack() bool {
	return it.Kind == VStackNode || it.Kind == HStackNode
}
