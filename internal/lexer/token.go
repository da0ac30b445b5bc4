package lexer

import "fmt"

// Kind is the lexical category of a token.
type Kind uint8

const (
	LeftBrace    Kind = iota // {
	RightBrace               // }
	LeftBracket              // [
	RightBracket             // ]
	Colon                    // :
	Comma                    // ,
	String                   // "..." including both quotes
	Number
	True
	False
	Null
)

var kindNames = [...]string{
	LeftBrace:    "LeftBrace",
	RightBrace:   "RightBrace",
	LeftBracket:  "LeftBracket",
	RightBracket: "RightBracket",
	Colon:        "Colon",
	Comma:        "Comma",
	String:       "String",
	Number:       "Number",
	True:         "True",
	False:        "False",
	Null:         "Null",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// NumKinds is the number of token kinds.
const NumKinds = int(Null) + 1

// literalText maps the keyword kinds to their spelling.
func literalText(k Kind) string {
	switch k {
	case True:
		return "true"
	case False:
		return "false"
	case Null:
		return "null"
	default:
		return ""
	}
}

// Token identifies a lexical unit as the half-open range input[Start:End).
//
// Tokens never copy the input. Callers slice it lazily with Text when they
// need the characters, which keeps the scanner free of allocations.
type Token struct {
	Kind  Kind
	Start int // inclusive byte offset
	End   int // exclusive byte offset
}

// Len returns the width of the token in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Text returns the slice of input covered by the token.
func (t Token) Text(input []byte) []byte {
	return input[t.Start:t.End]
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%d,%d)", t.Kind, t.Start, t.End)
}

// Stats counts tokens per kind.
type Stats [NumKinds]int

// Count tallies tokens by kind.
func Count(tokens []Token) Stats {
	var s Stats
	for _, t := range tokens {
		s[t.Kind]++
	}
	return s
}

// Total returns the number of counted tokens.
func (s Stats) Total() int {
	n := 0
	for _, c := range s {
		n += c
	}
	return n
}
