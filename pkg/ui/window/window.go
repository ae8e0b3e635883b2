// Package window implements floating window chrome: a bordered frame with
// a title bar that can be dragged, resized from its bottom-right corner and
// maximized.
package window

import (
	"time"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/layout"
	"github.com/odvcencio/textmode/pkg/ui/screen"
)

const (
	DefaultWidth     = 60
	DefaultHeight    = 18
	DefaultMinWidth  = 20
	DefaultMinHeight = 8

	// DefaultDoubleClick is the title bar double-click window.
	DefaultDoubleClick = 400 * time.Millisecond
)

// Window is the geometry and interaction state of a floating window.
type Window struct {
	title         string
	bounds        layout.Rect
	minW, minH    int
	dragging      bool
	dragDX        int
	dragDY        int
	resizing      bool
	maximized     bool
	saved         layout.Rect
	now           func() time.Time
	doubleClick   time.Duration
	lastClick     time.Time
	lastClickRow  int
	haveLastClick bool
}

// New creates a 60x18 window at the top-left corner.
func New(title string) *Window {
	return &Window{
		title:       title,
		bounds:      layout.Rect{X: 1, Y: 1, Width: DefaultWidth, Height: DefaultHeight},
		minW:        DefaultMinWidth,
		minH:        DefaultMinHeight,
		now:         time.Now,
		doubleClick: DefaultDoubleClick,
	}
}

// WithSize sets the window size.
func (w *Window) WithSize(width, height int) *Window {
	w.bounds.Width, w.bounds.Height = width, height
	return w
}

// WithMinSize sets the smallest size a resize may produce.
func (w *Window) WithMinSize(width, height int) *Window {
	w.minW, w.minH = width, height
	return w
}

// WithClock replaces the clock used for title bar double clicks.
func (w *Window) WithClock(now func() time.Time) *Window {
	w.now = now
	return w
}

// WithDoubleClick sets the title bar double-click window.
func (w *Window) WithDoubleClick(d time.Duration) *Window {
	if d > 0 {
		w.doubleClick = d
	}
	return w
}

// Title returns the title.
func (w *Window) Title() string { return w.title }

// SetTitle replaces the title.
func (w *Window) SetTitle(title string) { w.title = title }

// Center positions the window in the middle of a screen.
func (w *Window) Center(screenW, screenH int) {
	w.bounds.X = 1 + max(screenW-w.bounds.Width, 0)/2
	w.bounds.Y = 1 + max(screenH-w.bounds.Height, 0)/2
}

// MoveTo places the top-left corner at (row, col).
func (w *Window) MoveTo(row, col int) {
	w.bounds.X, w.bounds.Y = max(col, 1), max(row, 1)
}

// Bounds returns the full frame.
func (w *Window) Bounds() layout.Rect { return w.bounds }

// ContentRect returns the area inside the border.
func (w *Window) ContentRect() layout.Rect { return w.bounds.Inset(1) }

// IsMaximized reports whether the window is maximized.
func (w *Window) IsMaximized() bool { return w.maximized }

// IsDragging reports whether a title bar drag is in progress.
func (w *Window) IsDragging() bool { return w.dragging }

// IsResizing reports whether a resize is in progress.
func (w *Window) IsResizing() bool { return w.resizing }

// ToggleMaximize fills the screen less a one-cell margin, or restores the
// bounds saved when it was maximized.
func (w *Window) ToggleMaximize(screenW, screenH int) {
	if w.maximized {
		w.bounds = w.saved
		w.maximized = false
		return
	}
	w.saved = w.bounds
	w.bounds = layout.Rect{X: 1, Y: 1, Width: max(screenW-2, 0), Height: max(screenH-2, 0)}
	w.maximized = true
}

func (w *Window) inResizeHandle(row, col int) bool {
	return row == w.bounds.Bottom()-1 && col >= w.bounds.Right()-2 && col < w.bounds.Right()
}

// HandleEventWithScreen applies drag, resize and maximize interactions and
// reports whether ev was consumed. Screen dimensions bound maximizing.
func (w *Window) HandleEventWithScreen(ev input.Event, screenW, screenH int) bool {
	if w.dragging {
		switch ev.Kind {
		case input.MouseDrag:
			w.MoveTo(ev.Row-w.dragDY, ev.Col-w.dragDX)
			return true
		case input.MouseRelease:
			w.dragging = false
			return true
		}
	}

	if w.resizing {
		switch ev.Kind {
		case input.MouseDrag:
			w.bounds.Width = max(ev.Col-w.bounds.X+1, w.minW)
			w.bounds.Height = max(ev.Row-w.bounds.Y+1, w.minH)
			return true
		case input.MouseRelease:
			w.resizing = false
			return true
		}
	}

	if ev.Kind != input.MouseClick {
		return false
	}
	b := w.bounds
	switch {
	case IsMaximizeButtonClick(ev.Row, ev.Col, b.Y, b.X, b.Width):
		w.ToggleMaximize(screenW, screenH)
		return true

	case IsTitleBarClick(ev.Row, ev.Col, b.Y, b.X, b.Width):
		now := w.now()
		double := w.haveLastClick && w.lastClickRow == ev.Row && now.Sub(w.lastClick) < w.doubleClick
		w.lastClick, w.lastClickRow, w.haveLastClick = now, ev.Row, true
		if double {
			w.haveLastClick = false
			w.ToggleMaximize(screenW, screenH)
			return true
		}
		w.dragging = true
		w.dragDX, w.dragDY = ev.Col-b.X, ev.Row-b.Y
		return true

	case w.inResizeHandle(ev.Row, ev.Col):
		w.resizing = true
		return true
	}
	return false
}

// DrawChrome draws the frame, title bar and maximize button.
func (w *Window) DrawChrome(s *screen.Screen, st Style) {
	DrawFrame(s, w.bounds, w.title, w.maximized, st)
}
