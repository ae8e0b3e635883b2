package screen

import "time"

//go:generate mockgen -package=screen -destination=mock_sink_test.go github.com/odvcencio/textmode/pkg/ui/screen Sink

// Sink receives the terminal instructions produced by Flush. Rows and
// columns are 1-based. Implementations return the first I/O failure; the
// screen hands it straight back to the caller of Flush.
type Sink interface {
	Goto(row, col int) error
	SetColors(fg, bg Color) error
	WriteChar(ch rune) error
	WriteRaw(data string) error
	ShowCursor() error
	HideCursor() error
	SetCursorStyle(style CursorStyle) error
	Flush() error
}

// FlushStats summarizes one Flush.
type FlushStats struct {
	CellsWritten int
	CursorMoves  int
	ColorChanges int
	Sixel        bool
	Duration     time.Duration
}

// Observer is notified after every successful Flush.
type Observer interface {
	ObserveFlush(FlushStats)
}
