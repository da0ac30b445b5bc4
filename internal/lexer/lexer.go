// Package lexer splits JSON text into tokens.
//
// The scanner is a finite state machine driven one byte at a time through
// Step. It only finds token boundaries: it does not check that brackets
// balance, that keys are followed by values, that escape sequences are valid
// or that numbers follow the full JSON grammar. Those checks belong to a
// parser sitting on top of the token stream.
//
// Usage – whole buffer:
//
//	tokens, err := lexer.Tokenize(data)
//
// Usage – pull one token at a time:
//
//	s := lexer.NewScanner(data)
//	for tok, err := range s.All() {
//	    ...
//	}
package lexer

// Step performs one transition of the scanner.
//
// pos is the offset of the next unconsumed byte and must satisfy
// 0 <= pos < len(input). Step returns the next state, the token completed
// by this step (ok reports whether there is one) and the number of bytes the
// caller must advance pos by. consumed is 0 when a number ends on the
// current byte, which then has to be examined again from the idle state, and
// when the scan fails.
//
// A failed state is terminal: stepping it returns it unchanged.
func Step(input []byte, pos int, st State) (next State, tok Token, ok bool, consumed int) {
	switch st.Mode {
	case ModeIdle:
		return stepIdle(input, pos)
	case ModeString:
		return stepString(input, pos, st)
	case ModeNumber:
		return stepNumber(input, pos, st)
	case ModeLiteral:
		return stepLiteral(input, pos, st)
	default:
		return st, Token{}, false, 0
	}
}

func single(kind Kind, pos int) (State, Token, bool, int) {
	return State{}, Token{Kind: kind, Start: pos, End: pos + 1}, true, 1
}

func stepIdle(input []byte, pos int) (State, Token, bool, int) {
	switch input[pos] {
	case '{':
		return single(LeftBrace, pos)
	case '}':
		return single(RightBrace, pos)
	case '[':
		return single(LeftBracket, pos)
	case ']':
		return single(RightBracket, pos)
	case ':':
		return single(Colon, pos)
	case ',':
		return single(Comma, pos)
	case '"':
		return inString(pos, false), Token{}, false, 1
	case 't':
		return inLiteral(pos, True, 1), Token{}, false, 1
	case 'f':
		return inLiteral(pos, False, 1), Token{}, false, 1
	case 'n':
		return inLiteral(pos, Null, 1), Token{}, false, 1
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '-':
		return inNumber(pos, false), Token{}, false, 1
	case ' ', '\t', '\n', '\r':
		return State{}, Token{}, false, 1
	default:
		return failed(unexpected(pos, "Ill-formed input at position %d", pos)), Token{}, false, 0
	}
}

// stepString never looks at the byte following a backslash, so escape
// sequences are not validated here.
func stepString(input []byte, pos int, st State) (State, Token, bool, int) {
	if st.Escape {
		return inString(st.Start, false), Token{}, false, 1
	}
	switch input[pos] {
	case '"':
		return State{}, Token{Kind: String, Start: st.Start, End: pos + 1}, true, 1
	case '\\':
		return inString(st.Start, true), Token{}, false, 1
	case '\n':
		return failed(unexpected(pos, "Unescaped newline in string at position %d", pos)), Token{}, false, 0
	default:
		return st, Token{}, false, 1
	}
}

// stepNumber accepts '-' anywhere in the run and does not know about
// exponents or leading zeros; a number is any run of digits, '-' and at
// most one '.'.
func stepNumber(input []byte, pos int, st State) (State, Token, bool, int) {
	switch c := input[pos]; {
	case c >= '0' && c <= '9', c == '-':
		return st, Token{}, false, 1
	case c == '.':
		if st.Decimal {
			return failed(unexpected(pos, "Second decimal point in number at position %d", pos)), Token{}, false, 0
		}
		return inNumber(st.Start, true), Token{}, false, 1
	default:
		return State{}, Token{Kind: Number, Start: st.Start, End: pos}, true, 0
	}
}

func stepLiteral(input []byte, pos int, st State) (State, Token, bool, int) {
	word := literalText(st.Literal)
	if st.Matched >= len(word) || input[pos] != word[st.Matched] {
		return failed(unexpected(pos, "Could not parse literal '%s' at position %d", word, pos)), Token{}, false, 0
	}
	if st.Matched == len(word)-1 {
		return State{}, Token{Kind: st.Literal, Start: st.Start, End: pos + 1}, true, 1
	}
	return inLiteral(st.Start, st.Literal, st.Matched+1), Token{}, false, 1
}

// Finish closes the scan once every byte of input has been consumed.
//
// A pending number runs to the end of the input and is returned as a token.
// A pending string or literal is reported as ErrUnterminatedToken, and a
// failed state returns its error.
func Finish(input []byte, st State) (Token, bool, error) {
	switch st.Mode {
	case ModeNumber:
		return Token{Kind: Number, Start: st.Start, End: len(input)}, true, nil
	case ModeString:
		return Token{}, false, unterminated(len(input),
			"Unterminated string starting at position %d", st.Start)
	case ModeLiteral:
		return Token{}, false, unterminated(len(input),
			"Could not parse literal '%s' at position %d: unexpected end of input", literalText(st.Literal), len(input))
	case ModeFailed:
		return Token{}, false, st.Err()
	default:
		return Token{}, false, nil
	}
}

// Tokenize scans the whole input and returns its tokens in order.
//
// On failure no tokens are returned; the error is an *Error carrying the
// offset of the offending byte.
func Tokenize(input []byte) ([]Token, error) {
	var tokens []Token
	var st State
	for pos := 0; pos < len(input); {
		next, tok, ok, n := Step(input, pos, st)
		if next.IsFailed() {
			return nil, next.Err()
		}
		if ok {
			tokens = append(tokens, tok)
		}
		st = next
		pos += n
	}

	tok, ok, err := Finish(input, st)
	if err != nil {
		return nil, err
	}
	if ok {
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

// TokenizeString is Tokenize for string input.
func TokenizeString(s string) ([]Token, error) {
	return Tokenize([]byte(s))
}
