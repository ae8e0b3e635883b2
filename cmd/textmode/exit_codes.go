package main

import "github.com/odvcencio/textmode/pkg/errors"

// Exit codes by error family.
const (
	exitFailure  = 1
	exitConfig   = 2
	exitTerminal = 3
)

func exitCodeForError(err error) int {
	if err == nil {
		return 0
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeConfigLoad, errors.ErrCodeConfigParse, errors.ErrCodeConfigInvalid:
		return exitConfig
	case errors.ErrCodeTerminalInit, errors.ErrCodeTerminalIO, errors.ErrCodeUnsupported:
		return exitTerminal
	}
	return exitFailure
}
