package lexer

import (
	"io"
	"iter"
)

// Scanner pulls tokens one at a time from an in-memory buffer.
//
// It owns the position and state that Tokenize keeps on its stack, so a
// caller can stop after any token and continue later.
type Scanner struct {
	input    []byte
	pos      int
	state    State
	finished bool
	err      error
}

// NewScanner creates a scanner over input.
func NewScanner(input []byte) *Scanner {
	return &Scanner{input: input}
}

// Reset rewinds the scanner onto a new input without allocating.
func (s *Scanner) Reset(input []byte) {
	*s = Scanner{input: input}
}

// Pos returns the offset of the next unconsumed byte.
func (s *Scanner) Pos() int { return s.pos }

// State returns the current lexical state.
func (s *Scanner) State() State { return s.state }

// Next returns the next token. After the last token it returns io.EOF; after
// a lexing failure it keeps returning the same *Error.
func (s *Scanner) Next() (Token, error) {
	if s.err != nil {
		return Token{}, s.err
	}

	for s.pos < len(s.input) {
		next, tok, ok, n := Step(s.input, s.pos, s.state)
		s.state = next
		if next.IsFailed() {
			s.err = next.Err()
			return Token{}, s.err
		}
		s.pos += n
		if ok {
			return tok, nil
		}
	}

	if !s.finished {
		s.finished = true
		tok, ok, err := Finish(s.input, s.state)
		if err != nil {
			s.err = err
			return Token{}, err
		}
		s.state = State{}
		if ok {
			return tok, nil
		}
	}

	s.err = io.EOF
	return Token{}, io.EOF
}

// ScanAll returns every remaining token.
func (s *Scanner) ScanAll() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := s.Next()
		if err == io.EOF {
			return tokens, nil
		}
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
	}
}

// All yields the remaining tokens. A lexing failure is yielded once with a
// zero Token and ends the sequence.
func (s *Scanner) All() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := s.Next()
			if err == io.EOF {
				return
			}
			if !yield(tok, err) || err != nil {
				return
			}
		}
	}
}
