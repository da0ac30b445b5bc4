package errors

import (
	"errors"
	"fmt"

	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
)

// LexFailure ties a lexer error to the file and line/column it occurred at
type LexFailure struct {
	File     string
	Position lexer.Position
	Err      *lexer.Error
}

func (e *LexFailure) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Position.Line, e.Position.Column, e.Err.Message)
}

func (e *LexFailure) Unwrap() error {
	return e.Err
}

// NewLexFailure wraps err with the location of its offset in input. Errors
// that are not lexer errors are returned unchanged.
func NewLexFailure(file string, input []byte, err error) error {
	var lerr *lexer.Error
	if !errors.As(err, &lerr) {
		return err
	}
	return &LexFailure{
		File:     file,
		Position: lexer.Locate(input, lerr.Offset),
		Err:      lerr,
	}
}

// InputError represents a file that could not be read or is too large to scan
type InputError struct {
	File    string
	Message string
	Err     error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot read %s: %s: %v", e.File, e.Message, e.Err)
	}
	return fmt.Sprintf("cannot read %s: %s", e.File, e.Message)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError creates a new InputError
func NewInputError(file, message string, err error) *InputError {
	return &InputError{
		File:    file,
		Message: message,
		Err:     err,
	}
}

// ConnectionError represents PostgreSQL connection failure
type ConnectionError struct {
	Message    string
	Suggestion string
}

func (e *ConnectionError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("database connection failed: %s\nSuggestion: %s", e.Message, e.Suggestion)
	}
	return fmt.Sprintf("database connection failed: %s", e.Message)
}
