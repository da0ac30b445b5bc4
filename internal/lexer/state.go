package lexer

// Mode selects which fields of a State are meaningful.
type Mode uint8

const (
	ModeIdle    Mode = iota // between tokens
	ModeString              // inside "..."
	ModeNumber              // inside a run of digits, '-' and at most one '.'
	ModeLiteral             // inside true, false or null
	ModeFailed              // terminal
)

// String returns a string representation of Mode
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeString:
		return "string"
	case ModeNumber:
		return "number"
	case ModeLiteral:
		return "literal"
	case ModeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the scanner context carried between two calls to Step.
//
// It is a plain value: Step returns a new State instead of mutating the one
// it was given, so a scan can be paused after any step and resumed later.
// The zero value is the idle state.
type State struct {
	Mode  Mode
	Start int // offset of the first byte of the pending token

	Escape  bool // ModeString: the previous byte was a backslash
	Decimal bool // ModeNumber: a '.' has been seen

	Literal Kind // ModeLiteral: True, False or Null
	Matched int  // ModeLiteral: bytes of the keyword matched so far

	err *Error // ModeFailed
}

// IsIdle reports whether no token is in progress.
func (s State) IsIdle() bool { return s.Mode == ModeIdle }

// IsFailed reports whether the scan has hit an error.
func (s State) IsFailed() bool { return s.Mode == ModeFailed }

// Err returns the failure carried by a failed state, nil otherwise.
func (s State) Err() error {
	if s.Mode != ModeFailed || s.err == nil {
		return nil
	}
	return s.err
}

func inString(start int, escape bool) State {
	return State{Mode: ModeString, Start: start, Escape: escape}
}

func inNumber(start int, decimal bool) State {
	return State{Mode: ModeNumber, Start: start, Decimal: decimal}
}

func inLiteral(start int, literal Kind, matched int) State {
	return State{Mode: ModeLiteral, Start: start, Literal: literal, Matched: matched}
}

func failed(err *Error) State {
	return State{Mode: ModeFailed, err: err}
}
