package widgets

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/odvcencio/textmode/pkg/errors"
)

// Clipboard stores text for cut, copy and paste.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// SystemClipboard uses the operating system clipboard.
type SystemClipboard struct{}

// ReadAll reads the system clipboard.
func (SystemClipboard) ReadAll() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New(errors.ErrCodeUnsupported, "no system clipboard")
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrCodeUnsupported, "read clipboard")
	}
	return text, nil
}

// WriteAll replaces the system clipboard contents.
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrCodeUnsupported, "no system clipboard")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrCodeUnsupported, "write clipboard")
	}
	return nil
}

// MemoryClipboard keeps the contents in process.
type MemoryClipboard struct {
	mu   sync.Mutex
	text string
}

// ReadAll returns the stored text.
func (m *MemoryClipboard) ReadAll() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

// WriteAll stores text.
func (m *MemoryClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
