package dialog

import (
	"strings"
	"unicode"
)

// Buffer is an in-memory Editor over a slice of lines.
type Buffer struct {
	lines     []string
	line, col int
	selLen    int
}

// NewBuffer splits text into lines.
func NewBuffer(text string) *Buffer {
	return &Buffer{lines: strings.Split(text, "\n")}
}

// Text joins the lines back together.
func (b *Buffer) Text() string { return strings.Join(b.lines, "\n") }

func (b *Buffer) LineCount() int { return len(b.lines) }

func (b *Buffer) Line(i int) (string, bool) {
	if i < 0 || i >= len(b.lines) {
		return "", false
	}
	return b.lines[i], true
}

func (b *Buffer) Cursor() (line, col int) { return b.line, b.col }

// SetCursor moves the cursor, clamped to the buffer, and drops the
// selection.
func (b *Buffer) SetCursor(line, col int) {
	b.line = min(max(line, 0), len(b.lines)-1)
	b.col = min(max(col, 0), len([]rune(b.lines[b.line])))
	b.selLen = 0
}

func (b *Buffer) Select(line, col, length int) {
	b.SetCursor(line, col)
	b.selLen = min(max(length, 0), len([]rune(b.lines[b.line]))-b.col)
}

// Selection returns the selected text.
func (b *Buffer) Selection() string {
	r := []rune(b.lines[b.line])
	return string(r[b.col : b.col+b.selLen])
}

func (b *Buffer) ReplaceSelection(text string) bool {
	if b.selLen == 0 {
		return false
	}
	r := []rune(b.lines[b.line])
	b.lines[b.line] = string(r[:b.col]) + text + string(r[b.col+b.selLen:])
	b.selLen = 0
	return true
}

// FindText searches forward from just past the cursor, wrapping around
// once. Positions are in runes.
func (b *Buffer) FindText(query string, caseSensitive, wholeWord bool) (line, col int, ok bool) {
	if query == "" {
		return 0, 0, false
	}
	n := len(b.lines)
	for i := 0; i <= n; i++ {
		ln := (b.line + i) % n
		from := 0
		if i == 0 {
			from = b.col + 1
		}
		stop := -1
		if i == n {
			stop = b.col + 1
		}
		if c, found := matchIn(b.lines[ln], query, from, stop, caseSensitive, wholeWord); found {
			return ln, c, true
		}
	}
	return 0, 0, false
}

func (b *Buffer) ReplaceAll(query, replacement string, caseSensitive, wholeWord bool) int {
	if query == "" {
		return 0
	}
	count := 0
	qlen := len([]rune(query))
	for i, text := range b.lines {
		from := 0
		for {
			c, ok := matchIn(text, query, from, -1, caseSensitive, wholeWord)
			if !ok {
				break
			}
			r := []rune(text)
			text = string(r[:c]) + replacement + string(r[c+qlen:])
			from = c + len([]rune(replacement))
			count++
		}
		b.lines[i] = text
	}
	b.SetCursor(b.line, b.col)
	return count
}

// matchIn finds query in text at a rune index >= from and, when stop is
// not negative, < stop.
func matchIn(text, query string, from, stop int, caseSensitive, wholeWord bool) (int, bool) {
	hay, needle := []rune(text), []rune(query)
	if !caseSensitive {
		hay, needle = lower(hay), lower(needle)
	}
	last := len(hay) - len(needle)
	if stop >= 0 {
		last = min(last, stop-1)
	}
	for c := max(from, 0); c <= last; c++ {
		if !runesEqual(hay[c:c+len(needle)], needle) {
			continue
		}
		if wholeWord && !(boundary(hay, c-1) && boundary(hay, c+len(needle))) {
			continue
		}
		return c, true
	}
	return 0, false
}

// lower folds each rune in place, keeping rune indexes stable.
func lower(r []rune) []rune {
	for i := range r {
		r[i] = unicode.ToLower(r[i])
	}
	return r
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// boundary reports whether index i is outside text or a non-word rune.
func boundary(text []rune, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	r := text[i]
	return !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_')
}

var _ Editor = (*Buffer)(nil)
