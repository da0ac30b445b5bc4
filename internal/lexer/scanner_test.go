package lexer_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScannerMatchesTokenize(t *testing.T) {
	src := []byte(`[{"id": 1, "v": [true, false, null]}, -2.5, "x\"y"]`)

	want, err := lexer.Tokenize(src)
	require.NoError(t, err)

	got, err := lexer.NewScanner(src).ScanAll()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestScannerEOF(t *testing.T) {
	s := lexer.NewScanner([]byte("42"))

	tok, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, lexer.Token{Kind: lexer.Number, Start: 0, End: 2}, tok)

	for i := 0; i < 3; i++ {
		_, err = s.Next()
		assert.Equal(t, io.EOF, err)
	}
	assert.True(t, s.State().IsIdle())
}

func TestScannerErrorIsSticky(t *testing.T) {
	s := lexer.NewScanner([]byte("[1, ?]"))

	var kinds []lexer.Kind
	var lastErr error
	for tok, err := range s.All() {
		if err != nil {
			lastErr = err
			break
		}
		kinds = append(kinds, tok.Kind)
	}
	assert.Equal(t, []lexer.Kind{lexer.LeftBracket, lexer.Number, lexer.Comma}, kinds)
	require.ErrorIs(t, lastErr, lexer.ErrUnexpectedCharacter)
	assert.Equal(t, 4, s.Pos())

	_, err := s.Next()
	assert.Equal(t, lastErr, err)
}

// stepFrom drives Step from (pos, st) to the end of input and closes the scan.
func stepFrom(t *testing.T, input []byte, pos int, st lexer.State) []lexer.Token {
	t.Helper()
	var tokens []lexer.Token
	for pos < len(input) {
		next, tok, ok, n := lexer.Step(input, pos, st)
		require.False(t, next.IsFailed(), "failed at %d: %v", pos, next.Err())
		if ok {
			tokens = append(tokens, tok)
		}
		st = next
		pos += n
	}
	tok, ok, err := lexer.Finish(input, st)
	require.NoError(t, err)
	if ok {
		tokens = append(tokens, tok)
	}
	return tokens
}

func TestScannerResumeInsideString(t *testing.T) {
	src := []byte(`{"a": [1, 2.0, "three"], "b": null}`)
	want, err := lexer.Tokenize(src)
	require.NoError(t, err)

	// Only the bytes up to the middle of "three" have arrived.
	pause := bytes.Index(src, []byte("hree"))
	s := lexer.NewScanner(src[:pause])
	var got []lexer.Token
	for {
		tok, err := s.Next()
		if err != nil {
			require.ErrorIs(t, err, lexer.ErrUnterminatedToken)
			break
		}
		got = append(got, tok)
	}

	savedPos, savedState := s.Pos(), s.State()
	require.Equal(t, pause, savedPos)
	require.Equal(t, lexer.ModeString, savedState.Mode)
	assert.Equal(t, pause-2, savedState.Start)

	// The rest of the buffer arrives; continue from the saved pair.
	got = append(got, stepFrom(t, src, savedPos, savedState)...)
	assert.Equal(t, want, got)
}

func TestStepResumeAtEveryOffset(t *testing.T) {
	src := []byte(`{"a": [1, 2.0, "th\"ree"], "b": null, "c": false}`)
	want, err := lexer.Tokenize(src)
	require.NoError(t, err)

	for pause := 0; pause <= len(src); pause++ {
		var got []lexer.Token
		var st lexer.State
		pos := 0
		for pos < pause {
			next, tok, ok, n := lexer.Step(src, pos, st)
			require.False(t, next.IsFailed())
			if ok {
				got = append(got, tok)
			}
			st = next
			pos += n
		}

		got = append(got, stepFrom(t, src, pos, st)...)
		assert.Equal(t, want, got, "paused at %d in mode %v", pos, st.Mode)
	}
}

func TestScannerUnterminated(t *testing.T) {
	s := lexer.NewScanner([]byte(`{"open`))
	_, err := s.ScanAll()
	require.ErrorIs(t, err, lexer.ErrUnterminatedToken)
}

func TestScannerZeroAlloc(t *testing.T) {
	src := []byte(`{"list": [1, 2.5, -3], "flag": true, "none": null, "s": "a\"b"}`)
	s := lexer.NewScanner(src)

	allocs := testing.AllocsPerRun(10, func() {
		s.Reset(src)
		for {
			_, err := s.Next()
			if err != nil {
				break
			}
		}
	})

	if allocs > 0 {
		t.Errorf("expected 0 allocations, got %f", allocs)
	}
}

func FuzzTokenize(f *testing.F) {
	for _, seed := range []string{
		``,
		`{"a":1}`,
		`[true,false,null]`,
		`"esc\"aped"`,
		`123.45.6`,
		`tru`,
		"\"line\nbreak\"",
		`-1-2.3`,
	} {
		f.Add([]byte(seed))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tokens, err := lexer.Tokenize(data)
		if err != nil {
			var lerr *lexer.Error
			if !assert.ErrorAs(t, err, &lerr) {
				return
			}
			assert.GreaterOrEqual(t, lerr.Offset, 0)
			assert.LessOrEqual(t, lerr.Offset, len(data))
			assert.Nil(t, tokens)
			return
		}

		prevEnd := 0
		for _, tok := range tokens {
			assert.Less(t, tok.Start, tok.End)
			assert.GreaterOrEqual(t, tok.Start, prevEnd)
			assert.LessOrEqual(t, tok.End, len(data))
			prevEnd = tok.End
		}
	})
}
