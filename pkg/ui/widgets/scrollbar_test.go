package widgets

import (
	"testing"

	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

func TestScrollbarState_ThumbPos(t *testing.T) {
	tests := []struct {
		name  string
		st    ScrollbarState
		track int
		want  int
	}{
		{"top", ScrollbarState{Pos: 0, Content: 100, Visible: 20}, 18, 0},
		{"bottom lands on last cell", ScrollbarState{Pos: 80, Content: 100, Visible: 20}, 18, 17},
		{"past bottom clamps", ScrollbarState{Pos: 500, Content: 100, Visible: 20}, 18, 17},
		{"middle", ScrollbarState{Pos: 40, Content: 100, Visible: 20}, 18, 8},
		{"fits", ScrollbarState{Pos: 0, Content: 10, Visible: 20}, 18, 0},
		{"single cell track", ScrollbarState{Pos: 50, Content: 100, Visible: 20}, 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.ThumbPos(tt.track); got != tt.want {
				t.Errorf("ThumbPos(%d) = %d, want %d", tt.track, got, tt.want)
			}
		})
	}
}

func TestScrollbarState_MaxScroll(t *testing.T) {
	if got := (ScrollbarState{Content: 100, Visible: 20}).MaxScroll(); got != 80 {
		t.Errorf("MaxScroll = %d", got)
	}
	st := ScrollbarState{Content: 5, Visible: 20}
	if st.MaxScroll() != 0 || st.Scrollable() {
		t.Error("short content should not scroll")
	}
}

func TestDragPos(t *testing.T) {
	tests := []struct {
		name       string
		pos        int
		start, end int
		st         ScrollbarState
		want       int
	}{
		{"track start", 6, 5, 24, ScrollbarState{Content: 100, Visible: 20}, 0},
		{"last track cell reaches max", 23, 5, 24, ScrollbarState{Content: 100, Visible: 20}, 80},
		{"on the arrow clamps", 24, 5, 24, ScrollbarState{Content: 100, Visible: 20}, 80},
		{"above the track clamps", 2, 5, 24, ScrollbarState{Content: 100, Visible: 20}, 0},
		{"help viewer bottom", 24, 7, 25, ScrollbarState{Content: 50, Visible: 19}, 31},
		{"no content", 10, 5, 24, ScrollbarState{Content: 1, Visible: 20}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DragPos(tt.pos, tt.start, tt.end, tt.st); got != tt.want {
				t.Errorf("DragPos = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	st := ScrollbarState{Pos: 40, Content: 100, Visible: 20}
	// rows 5..24, thumb at 6 + ThumbPos(18) = 14
	tests := []struct {
		pos  int
		want ScrollHit
	}{
		{4, HitNone},
		{5, HitBackArrow},
		{24, HitForwardArrow},
		{25, HitNone},
		{14, HitThumb},
		{10, HitPageBack},
		{20, HitPageForward},
	}
	for _, tt := range tests {
		if got := HitTest(tt.pos, 5, 24, st); got != tt.want {
			t.Errorf("HitTest(%d) = %d, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestDrawVertical(t *testing.T) {
	th := theme.ClassicBlue()
	s := screen.New(3, 6)
	DrawVertical(s, 2, 1, 6, ScrollbarState{Pos: 10, Content: 10, Visible: 4}, ThemeScrollbar(&th))

	var got []rune
	for r := 1; r <= 6; r++ {
		c, _ := s.Get(r, 2)
		got = append(got, c.Ch)
	}
	if string(got) != "↑░░░█↓" {
		t.Errorf("column = %q", string(got))
	}
	if c, _ := s.Get(5, 2); c.FG != th.ScrollbarThumb.FG {
		t.Errorf("thumb fg = %v", c.FG)
	}
}

func TestDrawHorizontalTooShort(t *testing.T) {
	th := theme.ClassicBlue()
	s := screen.New(4, 1)
	DrawHorizontal(s, 1, 1, 2, ScrollbarState{Content: 10, Visible: 2}, ThemeScrollbar(&th))
	if got := row(s, 1, 1, 2); got != "  " {
		t.Errorf("row = %q", got)
	}
}
