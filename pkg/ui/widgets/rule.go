package widgets

import (
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
	"github.com/odvcencio/textmode/pkg/ui/widget"
)

// RuleStyle selects how an HRule ends.
type RuleStyle int

const (
	// RuleLine is a plain line.
	RuleLine RuleStyle = iota
	// RuleTee ends in ├ and ┤ so the rule joins a surrounding box.
	RuleTee
)

// HRule is a horizontal separator.
type HRule struct {
	widget.Base
	style RuleStyle
}

// NewHRule creates a plain separator.
func NewHRule() *HRule { return &HRule{} }

// NewTeeRule creates a separator that joins the enclosing border.
func NewTeeRule() *HRule { return &HRule{style: RuleTee} }

// Draw renders the rule on the first row of bounds.
func (h *HRule) Draw(s *screen.Screen, bounds layout.Rect, th *theme.Theme) {
	if bounds.Empty() {
		return
	}
	p := th.Separator
	if h.style == RuleTee && bounds.Width >= 2 {
		s.DrawHRule(bounds.Y, bounds.X, bounds.Width, p.FG, p.BG)
		return
	}
	s.DrawHLine(bounds.Y, bounds.X, bounds.Width, p.FG, p.BG)
}

// SizeHint asks for a single cell.
func (h *HRule) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinWidth: 1, MinHeight: 1}
}

// WantsFullBleed is true for tee rules, which must reach the border.
func (h *HRule) WantsFullBleed() bool { return h.style == RuleTee }

// Spacer is empty space.
type Spacer struct {
	widget.Base
	flex int
	size int
}

// NewSpacer creates a spacer that absorbs leftover space.
func NewSpacer() *Spacer { return &Spacer{flex: 1} }

// FixedSpacer creates a spacer of n rows.
func FixedSpacer(n int) *Spacer { return &Spacer{size: n} }

// Draw draws nothing.
func (*Spacer) Draw(*screen.Screen, layout.Rect, *theme.Theme) {}

// SizeHint reports the fixed size or the flex weight.
func (sp *Spacer) SizeHint() layout.SizeHint {
	return layout.SizeHint{MinWidth: sp.size, MinHeight: sp.size, Flex: sp.flex}
}

// WantsTightWidth keeps fixed spacers at their size inside rows.
func (sp *Spacer) WantsTightWidth() bool { return sp.flex == 0 }
