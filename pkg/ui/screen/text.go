package screen

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// A cell holds exactly one rune. Runes the terminal draws with no width,
// such as combining marks and control characters, have no cell and are
// dropped by WriteString. TextWidth and Truncate measure the same way, so
// layout always agrees with what WriteString advances over.

func occupiesCell(r rune) bool {
	return runewidth.RuneWidth(r) > 0
}

// TextWidth returns the number of cells WriteString uses for text.
func TextWidth(text string) int {
	n := 0
	for _, r := range text {
		if occupiesCell(r) {
			n++
		}
	}
	return n
}

// Truncate cuts text to at most width cells, dropping runes that have no
// cell.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	n := 0
	for _, r := range text {
		if !occupiesCell(r) {
			continue
		}
		if n == width {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String()
}
