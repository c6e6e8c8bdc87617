package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrUnknownFormat indicates the file extension maps to no supported format.
	ErrUnknownFormat = errors.New("unknown config format")

	// ErrInvalidWrapMode indicates an unrecognized wrap mode name.
	ErrInvalidWrapMode = errors.New("invalid wrap mode")

	// ErrInvalidDirection indicates an unrecognized base direction name.
	ErrInvalidDirection = errors.New("invalid base direction")

	// ErrInvalidFontSize indicates a font size that is zero or negative.
	ErrInvalidFontSize = errors.New("invalid font size")

	// ErrInvalidHistoryLimit indicates a negative undo history limit.
	ErrInvalidHistoryLimit = errors.New("invalid history limit")

	// ErrInvalidGroupWindow indicates a negative undo grouping window.
	ErrInvalidGroupWindow = errors.New("invalid group window")

	// ErrInvalidScrollMargin indicates a negative scroll margin.
	ErrInvalidScrollMargin = errors.New("invalid scroll margin")

	// ErrInvalidWheelLines indicates a negative wheel lines-per-step value.
	ErrInvalidWheelLines = errors.New("invalid wheel lines")
)

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
