package compositor

import (
	"os"

	"golang.org/x/term"

	"github.com/odvcencio/textmode/pkg/errors"
)

// RawTerminal puts a terminal file into raw mode and restores it on Close.
type RawTerminal struct {
	file  *os.File
	state *term.State
}

// OpenRaw switches f to raw mode. f must be a terminal.
func OpenRaw(f *os.File) (*RawTerminal, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New(errors.ErrCodeTerminalInit, "not a terminal").
			WithContext("name", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeTerminalInit, "enter raw mode")
	}
	return &RawTerminal{file: f, state: state}, nil
}

// Size returns the terminal width and height in cells.
func (t *RawTerminal) Size() (width, height int, err error) {
	width, height, err = term.GetSize(int(t.file.Fd()))
	if err != nil {
		return 0, 0, errors.Wrap(err, errors.ErrCodeTerminalIO, "query terminal size")
	}
	return width, height, nil
}

// Close restores the terminal state captured by OpenRaw.
func (t *RawTerminal) Close() error {
	if t.state == nil {
		return nil
	}
	err := term.Restore(int(t.file.Fd()), t.state)
	t.state = nil
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeTerminalIO, "restore terminal")
	}
	return nil
}
