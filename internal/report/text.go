package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/results"
)

// TextReporter formats tokens and results for terminals
type TextReporter struct{}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// FormatTokens writes one line per token: kind, range and optionally text
func (r *TextReporter) FormatTokens(doc *TokenDocument, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "File:   %s\nTokens: %d\nTime:   %v\n\n",
		doc.File, len(doc.Tokens), doc.ScanDuration); err != nil {
		return err
	}

	for _, tok := range doc.Tokens {
		span := "[" + strconv.Itoa(tok.Start) + "," + strconv.Itoa(tok.End) + ")"
		var err error
		if doc.ShowValues {
			_, err = fmt.Fprintf(writer, "%-*s %-16s %s\n", kindWidth, tok.Kind, span, tok.Text(doc.Input))
		} else {
			_, err = fmt.Fprintf(writer, "%-*s %s\n", kindWidth, tok.Kind, span)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatResults writes a per-file status list followed by totals
func (r *TextReporter) FormatResults(res *results.Results, writer io.Writer) error {
	for _, file := range res.GetFiles() {
		f := res.Files[file]
		var err error
		switch {
		case f.Passed():
			_, err = fmt.Fprintf(writer, "PASS  %s (%d tokens, %d bytes)\n", file, f.TokenCount(), f.Bytes)
		case f.Line > 0:
			_, err = fmt.Fprintf(writer, "FAIL  %s:%d:%d: %s\n", file, f.Line, f.Column, f.Error)
		default:
			_, err = fmt.Fprintf(writer, "%-5s %s: %s\n", statusLabel(f.Status), file, f.Error)
		}
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(writer, "\nFiles:  %d passed, %d failed, %d total (%.2f%%)\nTokens: %d\n",
		res.PassedCount(), len(res.Files)-res.PassedCount(), len(res.Files), res.PassPercent(), res.TotalTokens())
	return err
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}

func statusLabel(status string) string {
	switch status {
	case "cancelled":
		return "SKIP"
	default:
		return "FAIL"
	}
}

// kindWidth keeps the kind column aligned for the longest kind name.
var kindWidth = len(lexer.RightBracket.String())
