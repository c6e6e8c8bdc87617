// Package clipboard bridges the engine to the host clipboard.
//
// The System implementation talks to the platform clipboard; Mem is an
// in-memory implementation for tests and headless use. Pasted text is
// normalized by the caller with NormalizeLineEndings so CRLF and bare
// CR payloads become plain LF.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates the platform clipboard could not be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard reads and writes the host clipboard.
type Clipboard interface {
	// ReadText returns the clipboard's text content.
	ReadText() (string, error)

	// WriteText replaces the clipboard's content with text.
	WriteText(text string) error
}

// System is the platform clipboard.
type System struct{}

// NewSystem returns the platform clipboard.
func NewSystem() *System {
	return &System{}
}

// ReadText returns the platform clipboard's text content.
func (s *System) ReadText() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return text, nil
}

// WriteText replaces the platform clipboard's content.
func (s *System) WriteText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Mem is an in-memory clipboard for tests. The zero value is usable.
// ReadErr and WriteErr, when set, are returned by the corresponding
// call to exercise failure paths.
type Mem struct {
	Text     string
	ReadErr  error
	WriteErr error
}

// NewMem returns an empty in-memory clipboard.
func NewMem() *Mem {
	return &Mem{}
}

// ReadText returns the stored text, or ReadErr if set.
func (m *Mem) ReadText() (string, error) {
	if m.ReadErr != nil {
		return "", m.ReadErr
	}
	return m.Text, nil
}

// WriteText stores text, or returns WriteErr if set.
func (m *Mem) WriteText(text string) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.Text = text
	return nil
}

// NormalizeLineEndings converts CRLF and bare CR line endings to LF.
func NormalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
