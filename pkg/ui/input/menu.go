package input

// menuHotkeys maps Alt+letter to the top-level menu index.
var menuHotkeys = map[rune]int{
	'f': 0, // File
	'e': 1, // Edit
	'v': 2, // View
	's': 3, // Search
	'r': 4, // Run
	'd': 5, // Debug
	'o': 6, // Options
	'h': 7, // Help
}

// MenuIndex returns the top-level menu a hotkey opens.
func MenuIndex(ev Event) (int, bool) {
	if ev.Kind != AltChar {
		return 0, false
	}
	idx, ok := menuHotkeys[ev.Rune]
	return idx, ok
}

// IsMenuTrigger reports whether ev opens the menu bar: F10 or one of the
// Alt hotkeys.
func IsMenuTrigger(ev Event) bool {
	if ev.Kind == Function && ev.Num == 10 {
		return true
	}
	_, ok := MenuIndex(ev)
	return ok
}
