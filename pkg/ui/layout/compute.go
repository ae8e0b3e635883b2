package layout

import "sort"

// Computed maps leaf ids to their rectangles.
type Computed struct {
	rects map[string]Rect
}

// Get returns the rectangle assigned to id.
func (c Computed) Get(id string) (Rect, bool) {
	r, ok := c.rects[id]
	return r, ok
}

// Len returns the number of laid out leaves.
func (c Computed) Len() int { return len(c.rects) }

// IDs returns the laid out leaf ids in sorted order.
func (c Computed) IDs() []string {
	ids := make([]string, 0, len(c.rects))
	for id := range c.rects {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// HitTest returns the leaf containing (row, col). When rectangles overlap
// the smallest one wins; equal areas fall back to id order.
func (c Computed) HitTest(row, col int) (string, bool) {
	best, bestArea := "", -1
	for id, r := range c.rects {
		if !r.Contains(row, col) {
			continue
		}
		area := r.Area()
		if bestArea < 0 || area < bestArea || (area == bestArea && id < best) {
			best, bestArea = id, area
		}
	}
	return best, bestArea >= 0
}

// Compute lays out item inside bounds and returns every leaf rectangle.
func Compute(item Item, bounds Rect) Computed {
	c := Computed{rects: make(map[string]Rect)}
	computeNode(item, bounds, &c)
	return c
}

func computeNode(item Item, bounds Rect, c *Computed) {
	switch item.Kind {
	case LeafNode:
		if item.ID != "" {
			c.rects[item.ID] = bounds
		}
	case VStackNode, HStackNode:
		for i, r := range ChildBounds(item, bounds) {
			computeNode(item.Children[i], r, c)
		}
	}
}

// ChildBounds lays out one level of a stack. The result is parallel to
// item.Children; leaves and spacers yield nil.
func ChildBounds(item Item, bounds Rect) []Rect {
	if !item.IsStack() || len(item.Children) == 0 {
		return nil
	}
	horizontal := item.Kind == HStackNode
	inner := bounds.Inset(item.Padding)

	primary := inner.Height
	if horizontal {
		primary = inner.Width
	}
	extents := distribute(item.Children, primary, item.Spacing, horizontal)

	rects := make([]Rect, len(item.Children))
	offset := 0
	for i, child := range item.Children {
		crossOrigin, crossExtent := inner.X, inner.Width
		if horizontal {
			crossOrigin, crossExtent = inner.Y, inner.Height
		}
		if child.FullBleed {
			crossOrigin, crossExtent = bounds.X, bounds.Width
			if horizontal {
				crossOrigin, crossExtent = bounds.Y, bounds.Height
			}
		}
		cross := crossSize(child, crossExtent, horizontal)

		if horizontal {
			rects[i] = Rect{X: inner.X + offset, Y: crossOrigin, Width: extents[i], Height: cross}
		} else {
			rects[i] = Rect{X: crossOrigin, Y: inner.Y + offset, Width: cross, Height: extents[i]}
		}
		offset += extents[i] + item.Spacing
	}
	return rects
}

func axis(child Item, horizontal bool) (Size, int) {
	if horizontal {
		return child.Width, child.MinWidth
	}
	return child.Height, child.MinHeight
}

func crossAxis(child Item, horizontal bool) (Size, int) {
	return axis(child, !horizontal)
}

func crossSize(child Item, extent int, horizontal bool) int {
	size, minimum := crossAxis(child, horizontal)
	switch size.kind {
	case sizeFixed:
		return max(size.n, minimum)
	case sizePercent:
		if size.n == 100 {
			return extent
		}
		return max(extent*size.n/100, minimum)
	}
	return max(extent, 0)
}

// distribute assigns primary-axis extents. Fixed, percent and auto children
// take their demand first; flex children split the rest by weight. A flex
// child whose share falls below its minimum is frozen at the minimum and the
// remaining space is split again among the others. Integer remainders go to
// flex children in order, so the extents fill the interior exactly whenever
// the demands fit.
func distribute(children []Item, interior, spacing int, horizontal bool) []int {
	n := len(children)
	extents := make([]int, n)
	available := max(interior-spacing*(n-1), 0)

	flexible := make([]bool, n)
	used := 0
	for i, child := range children {
		size, minimum := axis(child, horizontal)
		switch size.kind {
		case sizeFixed:
			extents[i] = max(size.n, minimum)
		case sizePercent:
			extents[i] = max(interior*size.n/100, minimum)
		case sizeFlex:
			if size.n > 0 {
				flexible[i] = true
				continue
			}
			extents[i] = minimum
		default:
			extents[i] = minimum
		}
		used += extents[i]
	}

	free := max(available-used, 0)
	for {
		weights := 0
		for i, child := range children {
			if flexible[i] {
				size, _ := axis(child, horizontal)
				weights += size.n
			}
		}
		if weights == 0 {
			return extents
		}

		// Shares are judged against this round's free space and weights;
		// every child below its minimum freezes at once.
		var frozen []int
		for i, child := range children {
			if !flexible[i] {
				continue
			}
			size, minimum := axis(child, horizontal)
			if free*size.n/weights < minimum {
				frozen = append(frozen, i)
			}
		}
		if len(frozen) > 0 {
			for _, i := range frozen {
				_, minimum := axis(children[i], horizontal)
				extents[i] = minimum
				flexible[i] = false
				free = max(free-minimum, 0)
			}
			continue
		}

		assigned := 0
		for i, child := range children {
			if flexible[i] {
				size, _ := axis(child, horizontal)
				extents[i] = free * size.n / weights
				assigned += extents[i]
			}
		}
		for i := 0; assigned < free; i = (i + 1) % n {
			if flexible[i] {
				extents[i]++
				assigned++
			}
		}
		return extents
	}
}
