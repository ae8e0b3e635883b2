package window

import (
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

type clock struct{ t time.Time }

func newClock() *clock                   { return &clock{t: time.Unix(100, 0)} }
func (c *clock) now() time.Time          { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func rect(x, y, w, h int) layout.Rect {
	return layout.Rect{X: x, Y: y, Width: w, Height: h}
}

func text(s *screen.Screen, r, c, n int) string {
	var sb strings.Builder
	for col := c; col < c+n; col++ {
		cell, _ := s.Get(r, col)
		sb.WriteRune(cell.Ch)
	}
	return sb.String()
}

// testWindow is 20x10 at row 5, col 10: title bar cols 10..24, maximize
// button cols 25..27, resize handle row 14 cols 28..29.
func testWindow(c *clock) *Window {
	w := New("Edit").WithSize(20, 10).WithClock(c.now)
	w.MoveTo(5, 10)
	return w
}

func TestWindow_Defaults(t *testing.T) {
	w := New("x")
	if got := w.Bounds(); got != rect(1, 1, 60, 18) {
		t.Errorf("bounds = %+v", got)
	}
	if got := w.ContentRect(); got != rect(2, 2, 58, 16) {
		t.Errorf("content = %+v", got)
	}
	w.WithSize(20, 10).Center(80, 25)
	if got := w.Bounds(); got.X != 31 || got.Y != 8 {
		t.Errorf("centered at %d,%d", got.Y, got.X)
	}
}

func TestWindow_Drag(t *testing.T) {
	w := testWindow(newClock())

	if !w.HandleEventWithScreen(input.Click(5, 12), 80, 25) || !w.IsDragging() {
		t.Fatal("title click should start a drag")
	}
	w.HandleEventWithScreen(input.Drag(8, 20), 80, 25)
	if got := w.Bounds(); got.X != 18 || got.Y != 8 {
		t.Errorf("after drag at %d,%d, want 8,18", got.Y, got.X)
	}
	w.HandleEventWithScreen(input.Drag(0, 0), 80, 25)
	if got := w.Bounds(); got.X != 1 || got.Y != 1 {
		t.Errorf("drag past the origin clamps, got %d,%d", got.Y, got.X)
	}
	if !w.HandleEventWithScreen(input.Release(1, 1), 80, 25) || w.IsDragging() {
		t.Error("release should end the drag")
	}
	if w.HandleEventWithScreen(input.Drag(9, 9), 80, 25) {
		t.Error("drag without a grab should not be consumed")
	}
}

func TestWindow_Resize(t *testing.T) {
	w := testWindow(newClock())

	if !w.HandleEventWithScreen(input.Click(14, 29), 80, 25) || !w.IsResizing() {
		t.Fatal("corner click should start a resize")
	}
	w.HandleEventWithScreen(input.Drag(20, 40), 80, 25)
	if got := w.Bounds(); got.Width != 31 || got.Height != 16 {
		t.Errorf("grown to %dx%d", got.Width, got.Height)
	}
	w.HandleEventWithScreen(input.Drag(6, 12), 80, 25)
	if got := w.Bounds(); got.Width != DefaultMinWidth || got.Height != DefaultMinHeight {
		t.Errorf("shrunk to %dx%d, want the minimum", got.Width, got.Height)
	}
	w.HandleEventWithScreen(input.Release(6, 12), 80, 25)
	if w.IsResizing() {
		t.Error("release should end the resize")
	}
}

func TestWindow_MaximizeButton(t *testing.T) {
	w := testWindow(newClock())
	before := w.Bounds()

	if !w.HandleEventWithScreen(input.Click(5, 25), 80, 25) || !w.IsMaximized() {
		t.Fatal("button should maximize")
	}
	if got := w.Bounds(); got != rect(1, 1, 78, 23) {
		t.Errorf("maximized = %+v", got)
	}
	w.HandleEventWithScreen(input.Click(1, 74), 80, 25)
	if w.IsMaximized() || w.Bounds() != before {
		t.Errorf("restore = %+v, want %+v", w.Bounds(), before)
	}
}

func TestWindow_TitleDoubleClick(t *testing.T) {
	c := newClock()
	w := testWindow(c)

	w.HandleEventWithScreen(input.Click(5, 12), 80, 25)
	w.HandleEventWithScreen(input.Release(5, 12), 80, 25)
	c.advance(500 * time.Millisecond)
	w.HandleEventWithScreen(input.Click(5, 12), 80, 25)
	w.HandleEventWithScreen(input.Release(5, 12), 80, 25)
	if w.IsMaximized() {
		t.Fatal("slow clicks should not maximize")
	}

	c.advance(100 * time.Millisecond)
	w.HandleEventWithScreen(input.Click(5, 12), 80, 25)
	if !w.IsMaximized() || w.IsDragging() {
		t.Errorf("double click: maximized=%v dragging=%v", w.IsMaximized(), w.IsDragging())
	}
}

func TestWindow_IgnoresOtherEvents(t *testing.T) {
	w := testWindow(newClock())
	for _, ev := range []input.Event{
		input.Key(input.Enter),
		input.Click(8, 15), // body
		input.Click(3, 3),  // outside
	} {
		if w.HandleEventWithScreen(ev, 80, 25) {
			t.Errorf("%v consumed", ev)
		}
	}
}

func TestDrawChrome(t *testing.T) {
	th := theme.ClassicBlue()
	s := screen.New(40, 20)
	w := New("Edit").WithSize(20, 6)
	w.MoveTo(2, 2)
	w.DrawChrome(s, DialogStyle(&th))

	if got, want := text(s, 2, 2, 20), "┌───"+" Edit "+strings.Repeat("─", 5)+MaximizeGlyph+"─┐"; got != want {
		t.Errorf("title bar = %q", got)
	}
	if got := text(s, 7, 2, 20); got != "└"+strings.Repeat("─", 18)+"┘" {
		t.Errorf("bottom = %q", got)
	}
	body, _ := s.Get(4, 5)
	if body.FG != th.Dialog.FG || body.BG != th.Dialog.BG {
		t.Errorf("body colors = %v/%v", body.FG, body.BG)
	}
	for _, p := range [][2]int{{3, 22}, {3, 23}, {8, 4}, {8, 23}} {
		if c, _ := s.Get(p[0], p[1]); c.FG != screen.DarkGray || c.BG != screen.Black {
			t.Errorf("shadow at %v = %v/%v", p, c.FG, c.BG)
		}
	}

	w.ToggleMaximize(40, 20)
	w.DrawChrome(s, DialogStyle(&th))
	if got := text(s, 1, 34, 3); got != RestoreGlyph {
		t.Errorf("restore glyph = %q", got)
	}
}

func TestTitleBarHitHelpers(t *testing.T) {
	tests := []struct {
		row, col int
		title    bool
		maximize bool
	}{
		{1, 1, true, false},
		{1, 15, true, false},
		{1, 16, false, true},
		{1, 18, false, true},
		{1, 19, false, false},
		{2, 5, false, false},
	}
	for _, tt := range tests {
		if got := IsTitleBarClick(tt.row, tt.col, 1, 1, 20); got != tt.title {
			t.Errorf("IsTitleBarClick(%d,%d) = %v", tt.row, tt.col, got)
		}
		if got := IsMaximizeButtonClick(tt.row, tt.col, 1, 1, 20); got != tt.maximize {
			t.Errorf("IsMaximizeButtonClick(%d,%d) = %v", tt.row, tt.col, got)
		}
	}
}

func TestDrawTitleBarWithoutButton(t *testing.T) {
	th := theme.ClassicBlue()
	s := screen.New(12, 1)
	DrawTitleBar(s, 1, 1, 12, "Hi", false, false, th.DialogTitle, th.DialogBorder)
	if got := text(s, 1, 1, 12); got != "     Hi     " {
		t.Errorf("row = %q", got)
	}
}

func TestDrawTitleBarCentersByCells(t *testing.T) {
	th := theme.ClassicBlue()
	s := screen.New(12, 1)
	// Two runes take two cells, so " 日本 " is four cells wide.
	DrawTitleBar(s, 1, 1, 12, "日本", false, false, th.DialogTitle, th.DialogBorder)
	if got := text(s, 1, 1, 12); got != "     日本     " {
		t.Errorf("row = %q", got)
	}
	if c, _ := s.Get(1, 6); c.Ch != '日' {
		t.Errorf("title starts at the wrong column: %+v", c)
	}
}
