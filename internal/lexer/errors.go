package lexer

import (
	"errors"
	"fmt"
)

// ErrorKind classifies lexing failures.
type ErrorKind int

const (
	// UnexpectedCharacter means a character can neither start nor continue
	// a token from the current state.
	UnexpectedCharacter ErrorKind = iota
	// UnterminatedToken means the input ended inside a string or literal.
	UnterminatedToken
)

// String returns a string representation of ErrorKind
func (k ErrorKind) String() string {
	switch k {
	case UnexpectedCharacter:
		return "unexpected character"
	case UnterminatedToken:
		return "unterminated token"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is.
var (
	ErrUnexpectedCharacter = errors.New("unexpected character")
	ErrUnterminatedToken   = errors.New("unterminated token")
)

// Error is a lexing failure at a byte offset of the input.
type Error struct {
	Kind    ErrorKind
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is reports whether target is the sentinel matching e.Kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnexpectedCharacter:
		return e.Kind == UnexpectedCharacter
	case ErrUnterminatedToken:
		return e.Kind == UnterminatedToken
	}
	return false
}

func unexpected(offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    UnexpectedCharacter,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}

func unterminated(offset int, format string, args ...any) *Error {
	return &Error{
		Kind:    UnterminatedToken,
		Offset:  offset,
		Message: fmt.Sprintf(format, args...),
	}
}
