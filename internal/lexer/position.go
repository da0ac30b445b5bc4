package lexer

import (
	"fmt"
	"unicode/utf8"
)

// Position is a human readable location in the input.
type Position struct {
	Offset int // byte offset
	Line   int // 1-indexed
	Column int // 1-indexed, counted in characters
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Locate converts a byte offset into a line and column. Offsets past the end
// of input are clamped to len(input).
func Locate(input []byte, offset int) Position {
	if offset > len(input) {
		offset = len(input)
	}
	if offset < 0 {
		offset = 0
	}

	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}

	return Position{
		Offset: offset,
		Line:   line,
		Column: utf8.RuneCount(input[lineStart:offset]) + 1,
	}
}
