package dialog

// Editor is the text buffer dialogs act on. Lines and columns are 0-based.
type Editor interface {
	// FindText searches forward from the cursor, wrapping at the end.
	FindText(query string, caseSensitive, wholeWord bool) (line, col int, ok bool)
	// Select moves the cursor to (line, col) and selects length runes.
	Select(line, col, length int)
	// ReplaceSelection replaces the selected text, reporting whether
	// there was a selection.
	ReplaceSelection(text string) bool
	// ReplaceAll replaces every match and returns the count.
	ReplaceAll(query, replacement string, caseSensitive, wholeWord bool) int
	SetCursor(line, col int)
	Cursor() (line, col int)
	Line(i int) (string, bool)
	LineCount() int
}

// StatusSink shows one-line status messages.
type StatusSink interface {
	SetStatus(msg string)
}

// StatusFunc adapts a function to StatusSink.
type StatusFunc func(msg string)

// SetStatus calls f.
func (f StatusFunc) SetStatus(msg string) { f(msg) }

// Search is the last search, shared by Find and anything that repeats it.
type Search struct {
	Query         string
	CaseSensitive bool
	WholeWord     bool
}

// Context gives dialogs access to application state while they handle
// events.
type Context struct {
	Editor Editor
	Status StatusSink
	Search Search
}

// SetStatus reports msg if a status sink is attached.
func (c *Context) SetStatus(msg string) {
	if c != nil && c.Status != nil {
		c.Status.SetStatus(msg)
	}
}
