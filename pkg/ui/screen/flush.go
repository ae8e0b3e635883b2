package screen

// Flush sends the difference between back and front to sink, then positions
// the cursor and flushes the sink. The first sink error is returned as is and
// stops the flush; cells already sent stay recorded in front.
//
// A queued sixel payload replaces the diff for this call: the payload is
// written at the top-left, non-blank text is painted over it, and front is
// invalidated afterwards.
func (s *Screen) Flush(sink Sink) error {
	start := s.now()
	var stats FlushStats
	var err error

	if s.hasSixel {
		data := s.sixel
		s.sixel, s.hasSixel = "", false
		stats.Sixel = true
		err = s.flushSixel(sink, data, &stats)
		s.Invalidate()
	} else {
		err = s.flushDiff(sink, &stats)
	}
	if err != nil {
		return err
	}

	stats.Duration = s.now().Sub(start)
	s.last = stats
	if s.observer != nil {
		s.observer.ObserveFlush(stats)
	}
	return nil
}

// pen tracks what the sink last saw so redundant instructions are skipped.
type pen struct {
	row, col   int
	placed     bool
	fg, bg     Color
	colorsSent bool
}

func (p *pen) write(sink Sink, row, col int, c Cell, stats *FlushStats) error {
	if !p.placed || row != p.row || col != p.col+1 {
		if err := sink.Goto(row, col); err != nil {
			return err
		}
		stats.CursorMoves++
	}
	if !p.colorsSent || c.FG != p.fg || c.BG != p.bg {
		if err := sink.SetColors(c.FG, c.BG); err != nil {
			return err
		}
		p.fg, p.bg, p.colorsSent = c.FG, c.BG, true
		stats.ColorChanges++
	}
	if err := sink.WriteChar(c.Ch); err != nil {
		return err
	}
	p.row, p.col, p.placed = row, col, true
	stats.CellsWritten++
	return nil
}

func (s *Screen) flushDiff(sink Sink, stats *FlushStats) error {
	var p pen
	for row := 1; row <= s.height; row++ {
		for col := 1; col <= s.width; col++ {
			idx := (row-1)*s.width + (col - 1)
			back := s.back[idx]
			if s.front[idx] == back {
				continue
			}
			if err := p.write(sink, row, col, back, stats); err != nil {
				return err
			}
			s.front[idx] = back
		}
	}
	return s.finish(sink)
}

func (s *Screen) flushSixel(sink Sink, data string, stats *FlushStats) error {
	if err := sink.Goto(1, 1); err != nil {
		return err
	}
	stats.CursorMoves++
	if err := sink.WriteRaw(data); err != nil {
		return err
	}

	// The raw write leaves the terminal cursor somewhere unknown.
	var p pen
	for row := 1; row <= s.height; row++ {
		for col := 1; col <= s.width; col++ {
			c := s.back[(row-1)*s.width+(col-1)]
			if c.Ch == ' ' || c == sentinel {
				continue
			}
			if err := p.write(sink, row, col, c, stats); err != nil {
				return err
			}
		}
	}
	return s.finish(sink)
}

func (s *Screen) finish(sink Sink) error {
	if s.cursorVisible {
		if err := sink.Goto(s.cursorRow, s.cursorCol); err != nil {
			return err
		}
		if err := sink.SetCursorStyle(s.cursorStyle); err != nil {
			return err
		}
		if err := sink.ShowCursor(); err != nil {
			return err
		}
	} else if err := sink.HideCursor(); err != nil {
		return err
	}
	return sink.Flush()
}
