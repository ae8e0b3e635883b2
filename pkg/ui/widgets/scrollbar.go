package widgets

import (
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Scrollbar glyphs.
const (
	ArrowUp    = '↑'
	ArrowDown  = '↓'
	ArrowLeft  = '←'
	ArrowRight = '→'
	TrackRune  = '░'
	ThumbRune  = '█'
)

// ScrollbarState describes what a scrollbar shows.
type ScrollbarState struct {
	Pos     int // first visible unit
	Content int // total units
	Visible int // units in view
}

// MaxScroll is the largest useful Pos.
func (s ScrollbarState) MaxScroll() int {
	return max(s.Content-s.Visible, 0)
}

// Scrollable reports whether the content overflows the view.
func (s ScrollbarState) Scrollable() bool { return s.Content > s.Visible }

// ThumbPos returns the thumb offset within a track of the given length.
// At MaxScroll the thumb sits on the last track cell.
func (s ScrollbarState) ThumbPos(track int) int {
	maxScroll := s.MaxScroll()
	if s.Content <= 1 || track <= 1 || maxScroll == 0 {
		return 0
	}
	return min(s.Pos, maxScroll) * (track - 1) / maxScroll
}

// ScrollbarColors are the colors a scrollbar is drawn with.
type ScrollbarColors struct {
	Track theme.Pair
	Thumb theme.Pair
	Arrow theme.Pair
}

// ThemeScrollbar takes scrollbar colors from th. Arrows use the track pair.
func ThemeScrollbar(th *theme.Theme) ScrollbarColors {
	return ScrollbarColors{Track: th.ScrollbarTrack, Thumb: th.ScrollbarThumb, Arrow: th.ScrollbarTrack}
}

// DrawVertical draws a scrollbar in col from startRow to endRow inclusive,
// with arrows at both ends. Fewer than three rows draws nothing.
func DrawVertical(s *screen.Screen, col, startRow, endRow int, st ScrollbarState, c ScrollbarColors) {
	if endRow-startRow+1 < 3 {
		return
	}
	s.Set(startRow, col, ArrowUp, c.Arrow.FG, c.Arrow.BG)
	s.Set(endRow, col, ArrowDown, c.Arrow.FG, c.Arrow.BG)
	for r := startRow + 1; r < endRow; r++ {
		s.Set(r, col, TrackRune, c.Track.FG, c.Track.BG)
	}
	if st.Scrollable() {
		s.Set(startRow+1+st.ThumbPos(endRow-startRow-1), col, ThumbRune, c.Thumb.FG, c.Thumb.BG)
	}
}

// DrawHorizontal draws a scrollbar in row from startCol to endCol inclusive.
func DrawHorizontal(s *screen.Screen, row, startCol, endCol int, st ScrollbarState, c ScrollbarColors) {
	if endCol-startCol+1 < 3 {
		return
	}
	s.Set(row, startCol, ArrowLeft, c.Arrow.FG, c.Arrow.BG)
	s.Set(row, endCol, ArrowRight, c.Arrow.FG, c.Arrow.BG)
	for col := startCol + 1; col < endCol; col++ {
		s.Set(row, col, TrackRune, c.Track.FG, c.Track.BG)
	}
	if st.Scrollable() {
		s.Set(row, startCol+1+st.ThumbPos(endCol-startCol-1), ThumbRune, c.Thumb.FG, c.Thumb.BG)
	}
}

// ScrollHit is the scrollbar region a click landed on.
type ScrollHit int

const (
	HitNone ScrollHit = iota
	HitBackArrow
	HitForwardArrow
	HitPageBack
	HitPageForward
	HitThumb
)

// HitTest classifies a click at pos on a scrollbar spanning start..end
// inclusive, along either axis.
func HitTest(pos, start, end int, st ScrollbarState) ScrollHit {
	switch {
	case pos < start || pos > end:
		return HitNone
	case pos == start:
		return HitBackArrow
	case pos == end:
		return HitForwardArrow
	}
	track := end - start - 1
	if track < 1 {
		return HitNone
	}
	thumb := start + 1 + st.ThumbPos(track)
	switch {
	case pos == thumb:
		return HitThumb
	case pos < thumb:
		return HitPageBack
	}
	return HitPageForward
}

// DragPos maps a drag to pos on a scrollbar spanning start..end to a
// scroll position. The last track cell maps to MaxScroll.
func DragPos(pos, start, end int, st ScrollbarState) int {
	trackStart, trackEnd := start+1, end-1
	span := trackEnd - trackStart
	if span < 1 || st.Content <= 1 {
		return 0
	}
	offset := max(pos-trackStart, 0)
	return min(offset*st.MaxScroll()/span, st.MaxScroll())
}
