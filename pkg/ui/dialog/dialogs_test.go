package dialog

import (
	"testing"

	"github.com/odvcencio/textmode/pkg/ui/input"
	"github.com/odvcencio/textmode/pkg/ui/screen"
	"github.com/odvcencio/textmode/pkg/ui/widget"
	"github.com/odvcencio/textmode/pkg/ui/widgets"
)

type statusLog struct{ last string }

func (s *statusLog) SetStatus(msg string) { s.last = msg }

func newContext(text string) (*Context, *Buffer, *statusLog) {
	buf := NewBuffer(text)
	status := &statusLog{}
	return &Context{Editor: buf, Status: status}, buf, status
}

func typeText(c Controller, ctx *Context, s string) {
	for _, r := range s {
		c.HandleEvent(input.Rune(r), ctx)
	}
}

func TestMessage(t *testing.T) {
	m := NewMessage()
	m.SetMessage("Note", "first\nsecond")
	m.SetScreenSize(80, 25)
	m.Open(nil)

	scr := screen.New(80, 25)
	m.Draw(scr)
	b := m.Shell().Window().Bounds()
	if got := text(scr, b.Y+3, b.X+2, 6); got != "second" {
		t.Errorf("second line = %q", got)
	}

	if got := m.HandleEvent(input.Rune('x'), nil); got != Open {
		t.Errorf("stray key = %v", got)
	}
	if got := m.HandleEvent(input.Key(input.Enter), nil); got != Closed || m.IsOpen() {
		t.Errorf("enter on OK = %v", got)
	}

	m.Open(nil)
	if got := m.HandleEvent(input.Key(input.Escape), nil); got != Closed {
		t.Errorf("escape = %v", got)
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name string
		evs  []input.Event
		want bool
	}{
		{"yes", []input.Event{input.Key(input.Enter)}, true},
		{"no", []input.Event{input.Key(input.Tab), input.Key(input.Enter)}, false},
		{"cancel", []input.Event{input.Key(input.ShiftTab), input.Key(input.Enter)}, false},
		{"escape", []input.Event{input.Key(input.Escape)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *bool
			c := NewConfirm()
			c.SetMessage("Quit", "Save changes?", func(ok bool) { got = &ok })
			c.Open(nil)

			res := Open
			for _, ev := range tt.evs {
				res = c.HandleEvent(ev, nil)
			}
			if res != Closed {
				t.Fatalf("result = %v", res)
			}
			if got == nil || *got != tt.want || c.Confirmed() != tt.want {
				t.Errorf("answer = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind_SearchesAndRemembers(t *testing.T) {
	ctx, buf, status := newContext("alpha beta\ngamma beta")
	f := NewFind()
	f.Open(ctx)

	typeText(f, ctx, "beta")
	if got := f.HandleEvent(input.Key(input.Enter), ctx); got != Closed {
		t.Fatalf("enter = %v", got)
	}
	if line, col := buf.Cursor(); line != 0 || col != 6 || buf.Selection() != "beta" {
		t.Errorf("cursor %d,%d selection %q", line, col, buf.Selection())
	}
	if status.last != "Found at line 1" || ctx.Search.Query != "beta" {
		t.Errorf("status %q query %q", status.last, ctx.Search.Query)
	}

	f.Open(ctx)
	if f.Query() != "beta" {
		t.Errorf("reopened query = %q", f.Query())
	}
	f.HandleEvent(input.Key(input.Enter), ctx)
	if line, _ := buf.Cursor(); line != 1 || status.last != "Found at line 2" {
		t.Errorf("second search line %d status %q", line, status.last)
	}
}

func TestFind_OptionsAndMisses(t *testing.T) {
	ctx, _, status := newContext("Beta")
	f := NewFind()
	f.Open(ctx)
	typeText(f, ctx, "beta")

	// field -> Match Case
	f.HandleEvent(input.Key(input.Tab), ctx)
	f.HandleEvent(input.Rune(' '), ctx)
	if !ctx.Search.CaseSensitive {
		t.Fatal("checkbox did not reach the search options")
	}
	f.HandleEvent(input.Key(input.ShiftTab), ctx)
	f.HandleEvent(input.Key(input.Enter), ctx)
	if status.last != "Match not found" {
		t.Errorf("status = %q", status.last)
	}

	f.Open(ctx)
	if cb, _ := widget.Find[*widgets.Checkbox](f.Shell().Content(), casePath...); !cb.Checked() {
		t.Error("reopen should restore Match Case")
	}
}

func TestFind_EmptyQueryAndCancel(t *testing.T) {
	ctx, _, status := newContext("text")
	f := NewFind()
	f.Open(ctx)
	if f.HandleEvent(input.Key(input.Enter), ctx) != Closed || status.last != "No search text" {
		t.Errorf("status = %q", status.last)
	}

	f.Open(ctx)
	typeText(f, ctx, "t")
	if f.HandleEvent(input.Key(input.Escape), ctx) != Closed || ctx.Search.Query != "" {
		t.Errorf("cancel changed the last search to %q", ctx.Search.Query)
	}
}

func TestFind_LabelFollowsFocus(t *testing.T) {
	f := NewFind()
	f.Open(nil)
	label, _ := widget.Find[*widgets.Label](f.Shell().Content(), findLabelPath...)
	if !label.Highlighted() {
		t.Error("label should light up with the field focused")
	}
	f.HandleEvent(input.Key(input.Tab), nil)
	if label.Highlighted() {
		t.Error("label should dim when focus leaves the field")
	}
}

func TestReplace_StepsThroughMatches(t *testing.T) {
	ctx, buf, status := newContext("alpha beta\ngamma beta")
	r := NewReplace()
	r.Open(ctx)
	typeText(r, ctx, "beta")
	r.HandleEvent(input.Key(input.Tab), ctx)
	typeText(r, ctx, "delta")

	// The first press only selects the next match.
	if got := r.HandleEvent(input.Key(input.Enter), ctx); got != Open {
		t.Fatalf("first replace = %v", got)
	}
	if buf.Selection() != "beta" || status.last != "Found at line 1" {
		t.Fatalf("selection %q status %q", buf.Selection(), status.last)
	}

	if got := r.HandleEvent(input.Key(input.Enter), ctx); got != Open {
		t.Fatalf("second replace = %v", got)
	}
	if line, _ := buf.Line(0); line != "alpha delta" || status.last != "Found at line 2" {
		t.Errorf("line 0 = %q status %q", line, status.last)
	}

	if got := r.HandleEvent(input.Key(input.Enter), ctx); got != Closed {
		t.Fatalf("last replace = %v", got)
	}
	if buf.Text() != "alpha delta\ngamma delta" || status.last != "No more matches" {
		t.Errorf("text %q status %q", buf.Text(), status.last)
	}
	if ctx.Search.Query != "beta" {
		t.Errorf("last search = %q", ctx.Search.Query)
	}
}

func TestReplace_ChangingQueryDisarms(t *testing.T) {
	ctx, buf, _ := newContext("cat cat")
	r := NewReplace()
	r.Open(ctx)
	typeText(r, ctx, "ca")
	r.HandleEvent(input.Key(input.Enter), ctx)
	typeText(r, ctx, "t")

	// The selection came from the old query, so nothing is replaced yet.
	r.HandleEvent(input.Key(input.Enter), ctx)
	if buf.Text() != "cat cat" {
		t.Errorf("text = %q", buf.Text())
	}
}

func TestReplace_All(t *testing.T) {
	tests := []struct {
		name, text, query, with string
		status, want            string
	}{
		{"replaces every match", "one two one", "one", "1", "Replaced 2", "1 two 1"},
		{"no match", "one two", "six", "6", "Match not found", "one two"},
		{"empty query", "one", "", "x", "No search text", "one"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, buf, status := newContext(tt.text)
			r := NewReplace()
			r.Open(ctx)
			typeText(r, ctx, tt.query)
			r.HandleEvent(input.Key(input.Tab), ctx)
			typeText(r, ctx, tt.with)
			// with field -> Match Case -> Whole Word -> Replace -> Replace All
			for range 4 {
				r.HandleEvent(input.Key(input.Tab), ctx)
			}
			if got := r.HandleEvent(input.Key(input.Enter), ctx); got != Closed {
				t.Fatalf("replace all = %v", got)
			}
			if status.last != tt.status || buf.Text() != tt.want {
				t.Errorf("status %q text %q", status.last, buf.Text())
			}
		})
	}
}

func TestReplace_CancelLeavesBuffer(t *testing.T) {
	ctx, buf, _ := newContext("keep")
	ctx.Search.Query = "keep"
	r := NewReplace()
	r.Open(ctx)
	if r.Query() != "keep" {
		t.Errorf("query not prefilled: %q", r.Query())
	}
	typeText(r, ctx, "er")
	if r.HandleEvent(input.Key(input.Escape), ctx) != Closed || buf.Text() != "keep" {
		t.Errorf("cancel changed the buffer to %q", buf.Text())
	}
	label, _ := widget.Find[*widgets.Label](r.Shell().Content(), replaceFindLabelPath...)
	if !label.Highlighted() {
		t.Error("find label should light up with its field focused")
	}
}

func TestGoTo(t *testing.T) {
	tests := []struct {
		input  string
		line   int
		status string
	}{
		{"3", 2, "Jumped to line 3"},
		{"99", 4, "Jumped to line 99"},
		{"abc", 0, "Invalid line number"},
		{"0", 0, "Invalid line number"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ctx, buf, status := newContext("a\nb\nc\nd\ne")
			g := NewGoTo()
			g.Open(ctx)
			typeText(g, ctx, tt.input)
			if got := g.HandleEvent(input.Key(input.Enter), ctx); got != Closed {
				t.Fatalf("enter = %v", got)
			}
			if line, col := buf.Cursor(); line != tt.line || col != 0 {
				t.Errorf("cursor = %d,%d", line, col)
			}
			if status.last != tt.status {
				t.Errorf("status = %q", status.last)
			}
		})
	}
}

func TestGoTo_OpenClearsField(t *testing.T) {
	ctx, _, _ := newContext("a\nb")
	g := NewGoTo()
	g.Open(ctx)
	typeText(g, ctx, "12")
	g.HandleEvent(input.Key(input.Escape), ctx)
	g.Open(ctx)
	if tf, _ := widget.Find[*widgets.TextField](g.Shell().Content(), lineFieldPath...); tf.Text() != "" {
		t.Errorf("field = %q", tf.Text())
	}
}

func TestBuffer(t *testing.T) {
	b := NewBuffer("foo bar\nfoobar Foo\nbar foo")

	tests := []struct {
		name          string
		query         string
		caseSensitive bool
		wholeWord     bool
		line, col     int
		ok            bool
	}{
		{"next after cursor", "foo", false, false, 1, 0, true},
		{"case sensitive", "Foo", true, false, 1, 7, true},
		{"whole word skips foobar", "foo", false, true, 1, 7, true},
		{"missing", "baz", false, false, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.SetCursor(0, 0)
			line, col, ok := b.FindText(tt.query, tt.caseSensitive, tt.wholeWord)
			if ok != tt.ok || line != tt.line || col != tt.col {
				t.Errorf("FindText = %d,%d,%v", line, col, ok)
			}
		})
	}

	b.SetCursor(2, 4)
	if line, col, ok := b.FindText("foo", true, true); !ok || line != 0 || col != 0 {
		t.Errorf("wrap = %d,%d,%v", line, col, ok)
	}

	b.Select(0, 4, 3)
	if !b.ReplaceSelection("baz") || b.Text() != "foo baz\nfoobar Foo\nbar foo" {
		t.Errorf("replace selection = %q", b.Text())
	}
	if b.ReplaceSelection("x") {
		t.Error("second replace without a selection")
	}
	if n := b.ReplaceAll("foo", "qux", false, true); n != 3 {
		t.Errorf("replaced %d", n)
	}
	if b.Text() != "qux baz\nfoobar qux\nbar qux" {
		t.Errorf("text = %q", b.Text())
	}
}
