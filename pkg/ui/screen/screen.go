// Package screen implements the double-buffered cell grid.
//
// Widgets draw into the back buffer. Flush diffs back against front and
// sends only the changed cells to a Sink, skipping cursor moves between
// adjacent writes and color changes when the pair is unchanged. Coordinates
// are 1-based; anything outside the buffer or the active clip is ignored.
package screen

import (
	"time"

	"github.com/odvcencio/textmode/pkg/ui/layout"
)

// Cell is one character position.
type Cell struct {
	Ch rune
	FG Color
	BG Color
}

// DefaultCell is the blank back-buffer cell.
func DefaultCell() Cell { return Cell{Ch: ' ', FG: LightGray, BG: Black} }

// sentinel marks front-buffer cells whose terminal contents are unknown.
// Set never stores NUL, so a sentinel can never equal a drawn cell.
var sentinel = Cell{Ch: 0, FG: Black, BG: Black}

const (
	boxH  = '─'
	boxV  = '│'
	boxTL = '┌'
	boxTR = '┐'
	boxBL = '└'
	boxBR = '┘'
	boxLT = '├'
	boxRT = '┤'

	dboxH  = '═'
	dboxV  = '║'
	dboxTL = '╔'
	dboxTR = '╗'
	dboxBL = '╚'
	dboxBR = '╝'
)

// Screen owns the front and back buffers plus cursor and sixel state.
type Screen struct {
	width, height int
	front         []Cell
	back          []Cell
	clips         []layout.Rect

	cursorRow, cursorCol int
	cursorVisible        bool
	cursorStyle          CursorStyle

	sixel    string
	hasSixel bool

	observer Observer
	last     FlushStats
	now      func() time.Time
}

// New creates a screen of the given size. The back buffer starts blank and
// the front buffer starts as sentinels, so the first Flush paints everything.
func New(width, height int) *Screen {
	s := &Screen{
		cursorRow:   1,
		cursorCol:   1,
		cursorStyle: DefaultCursorStyle,
		now:         time.Now,
	}
	s.allocate(width, height)
	return s
}

func (s *Screen) allocate(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	n := s.width * s.height
	s.front = make([]Cell, n)
	s.back = make([]Cell, n)
	for i := range s.back {
		s.back[i] = DefaultCell()
		s.front[i] = sentinel
	}
	s.clips = s.clips[:0]
}

// Resize reallocates both buffers. All previous content is discarded.
func (s *Screen) Resize(width, height int) {
	s.allocate(width, height)
	s.cursorRow = min(max(s.cursorRow, 1), max(s.height, 1))
	s.cursorCol = min(max(s.cursorCol, 1), max(s.width, 1))
}

// Size returns the width and height in cells.
func (s *Screen) Size() (width, height int) { return s.width, s.height }

// Bounds returns the full screen rectangle.
func (s *Screen) Bounds() layout.Rect {
	return layout.Rect{X: 1, Y: 1, Width: s.width, Height: s.height}
}

// SetObserver installs a flush observer. nil removes it.
func (s *Screen) SetObserver(o Observer) { s.observer = o }

// LastFlush returns statistics for the most recent Flush.
func (s *Screen) LastFlush() FlushStats { return s.last }

func (s *Screen) index(row, col int) (int, bool) {
	if row < 1 || col < 1 || row > s.height || col > s.width {
		return 0, false
	}
	return (row-1)*s.width + (col - 1), true
}

func (s *Screen) inClip(row, col int) bool {
	if len(s.clips) == 0 {
		return true
	}
	return s.clips[len(s.clips)-1].Contains(row, col)
}

// writable returns the back-buffer index for (row, col) when it is inside
// both the buffer and the active clip.
func (s *Screen) writable(row, col int) (int, bool) {
	if !s.inClip(row, col) {
		return 0, false
	}
	return s.index(row, col)
}

// Set writes one cell. NUL is stored as a space.
func (s *Screen) Set(row, col int, ch rune, fg, bg Color) {
	idx, ok := s.writable(row, col)
	if !ok {
		return
	}
	if ch == 0 {
		ch = ' '
	}
	s.back[idx] = Cell{Ch: ch, FG: fg, BG: bg}
}

// Get returns the back-buffer cell at (row, col).
func (s *Screen) Get(row, col int) (Cell, bool) {
	idx, ok := s.index(row, col)
	if !ok {
		return Cell{}, false
	}
	return s.back[idx], true
}

// WriteString writes text one rune per cell starting at (row, col). Runes
// without a cell are skipped (see TextWidth). Text is clipped at the right
// edge and never wraps. It returns the number of cells the text advanced
// over.
func (s *Screen) WriteString(row, col int, text string, fg, bg Color) int {
	n := 0
	for _, r := range text {
		if !occupiesCell(r) {
			continue
		}
		if col+n > s.width {
			break
		}
		s.Set(row, col+n, r, fg, bg)
		n++
	}
	return n
}

// Fill paints every cell of r.
func (s *Screen) Fill(r layout.Rect, ch rune, fg, bg Color) {
	for row := r.Y; row < r.Bottom(); row++ {
		for col := r.X; col < r.Right(); col++ {
			s.Set(row, col, ch, fg, bg)
		}
	}
}

// Clear resets the back buffer to blank cells, ignoring the clip stack.
func (s *Screen) Clear() {
	s.ClearWith(LightGray, Black)
}

// ClearWith resets the back buffer to spaces in the given colors.
func (s *Screen) ClearWith(fg, bg Color) {
	for i := range s.back {
		s.back[i] = Cell{Ch: ' ', FG: fg, BG: bg}
	}
}

type boxGlyphs struct {
	h, v, tl, tr, bl, br rune
}

var (
	singleBox = boxGlyphs{boxH, boxV, boxTL, boxTR, boxBL, boxBR}
	doubleBox = boxGlyphs{dboxH, dboxV, dboxTL, dboxTR, dboxBL, dboxBR}
)

// DrawBox draws a single-line border around r and blanks its interior.
// Rectangles smaller than 2x2 are ignored.
func (s *Screen) DrawBox(r layout.Rect, fg, bg Color) {
	s.drawBox(r, singleBox, fg, bg)
}

// DrawDoubleBox is DrawBox with double-line glyphs.
func (s *Screen) DrawDoubleBox(r layout.Rect, fg, bg Color) {
	s.drawBox(r, doubleBox, fg, bg)
}

func (s *Screen) drawBox(r layout.Rect, g boxGlyphs, fg, bg Color) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	top, bottom := r.Y, r.Bottom()-1
	left, right := r.X, r.Right()-1

	s.Set(top, left, g.tl, fg, bg)
	s.Set(top, right, g.tr, fg, bg)
	s.Set(bottom, left, g.bl, fg, bg)
	s.Set(bottom, right, g.br, fg, bg)
	for col := left + 1; col < right; col++ {
		s.Set(top, col, g.h, fg, bg)
		s.Set(bottom, col, g.h, fg, bg)
	}
	for row := top + 1; row < bottom; row++ {
		s.Set(row, left, g.v, fg, bg)
		s.Set(row, right, g.v, fg, bg)
		for col := left + 1; col < right; col++ {
			s.Set(row, col, ' ', fg, bg)
		}
	}
}

// DrawHRule draws a horizontal divider with T-connectors at both ends, for
// splitting a boxed area.
func (s *Screen) DrawHRule(row, col, width int, fg, bg Color) {
	if width < 2 {
		return
	}
	s.Set(row, col, boxLT, fg, bg)
	for c := col + 1; c < col+width-1; c++ {
		s.Set(row, c, boxH, fg, bg)
	}
	s.Set(row, col+width-1, boxRT, fg, bg)
}

// DrawHLine draws a plain horizontal line.
func (s *Screen) DrawHLine(row, col, width int, fg, bg Color) {
	for c := col; c < col+width; c++ {
		s.Set(row, c, boxH, fg, bg)
	}
}

// DrawVLine draws a plain vertical line.
func (s *Screen) DrawVLine(row, col, height int, fg, bg Color) {
	for r := row; r < row+height; r++ {
		s.Set(r, col, boxV, fg, bg)
	}
}

// DrawShadow darkens a two-column strip right of r (offset one row down)
// and the row below r (offset two columns right). Characters are kept.
func (s *Screen) DrawShadow(r layout.Rect) {
	shade := func(row, col int) {
		if idx, ok := s.writable(row, col); ok {
			s.back[idx].FG = DarkGray
			s.back[idx].BG = Black
		}
	}
	for row := r.Y + 1; row <= r.Y+r.Height; row++ {
		shade(row, r.X+r.Width)
		shade(row, r.X+r.Width+1)
	}
	for col := r.X + 2; col < r.X+r.Width+2; col++ {
		shade(r.Y+r.Height, col)
	}
}

// ApplyMouseCursor renders the pointer at (row, col) by inverting the
// foreground and forcing a brown background. It ignores the clip stack.
func (s *Screen) ApplyMouseCursor(row, col int) {
	idx, ok := s.index(row, col)
	if !ok {
		return
	}
	c := s.back[idx]
	s.back[idx] = Cell{Ch: c.Ch, FG: c.FG.Invert(), BG: Brown}
}

// PushClip restricts writes to r intersected with the current clip.
func (s *Screen) PushClip(r layout.Rect) {
	if n := len(s.clips); n > 0 {
		r = s.clips[n-1].Intersect(r)
	}
	s.clips = append(s.clips, r)
}

// PopClip restores the previous clip. Popping an empty stack is a no-op.
func (s *Screen) PopClip() {
	if n := len(s.clips); n > 0 {
		s.clips = s.clips[:n-1]
	}
}

// Clip returns the active clip rectangle.
func (s *Screen) Clip() layout.Rect {
	if n := len(s.clips); n > 0 {
		return s.clips[n-1]
	}
	return s.Bounds()
}

// SetCursor positions the terminal cursor used after Flush.
func (s *Screen) SetCursor(row, col int) {
	s.cursorRow, s.cursorCol = row, col
}

// Cursor returns the cursor position.
func (s *Screen) Cursor() (row, col int) { return s.cursorRow, s.cursorCol }

// SetCursorVisible shows or hides the cursor after Flush.
func (s *Screen) SetCursorVisible(visible bool) { s.cursorVisible = visible }

// CursorVisible reports whether the cursor is shown after Flush.
func (s *Screen) CursorVisible() bool { return s.cursorVisible }

// SetCursorStyle selects the cursor shape.
func (s *Screen) SetCursorStyle(style CursorStyle) { s.cursorStyle = style }

// CursorStyle returns the cursor shape.
func (s *Screen) CursorStyle() CursorStyle { return s.cursorStyle }

// SetSixel queues a sixel payload for the next Flush.
func (s *Screen) SetSixel(data string) {
	s.sixel = data
	s.hasSixel = true
}

// ClearSixel drops a queued payload and forces a full repaint so the image
// is painted over.
func (s *Screen) ClearSixel() {
	if s.hasSixel {
		s.sixel, s.hasSixel = "", false
	}
	s.Invalidate()
}

// HasSixel reports whether a sixel payload is queued.
func (s *Screen) HasSixel() bool { return s.hasSixel }

// Invalidate marks every front cell unknown so the next Flush repaints the
// whole screen.
func (s *Screen) Invalidate() {
	for i := range s.front {
		s.front[i].Ch = 0
	}
}
