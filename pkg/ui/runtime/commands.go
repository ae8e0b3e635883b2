package runtime

import (
	"github.com/odvcencio/textmode/pkg/ui/dialog"
	"github.com/odvcencio/textmode/pkg/ui/theme"
)

// Command asks the loop to change application state. Commands run on the
// loop goroutine, so they are the safe way to reach the UI from elsewhere.
type Command interface {
	isCommand()
}

// Quit stops the loop.
type Quit struct{}

func (Quit) isCommand() {}

// Refresh repaints every cell on the next frame.
type Refresh struct{}

func (Refresh) isCommand() {}

// OpenDialog opens a registered dialog with the app's dialog context.
type OpenDialog struct {
	Kind dialog.Kind
}

func (OpenDialog) isCommand() {}

// CloseDialog dismisses the open dialog, if any.
type CloseDialog struct{}

func (CloseDialog) isCommand() {}

// ApplyTheme swaps the theme of the root tree. Dialogs keep their theme
// unless Dialogs is set.
type ApplyTheme struct {
	Theme   theme.Theme
	Dialogs *theme.Theme
}

func (ApplyTheme) isCommand() {}

// Call runs Fn on the loop goroutine.
type Call struct {
	Fn func(*App)
}

func (Call) isCommand() {}
