package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/jsonlex/internal/results"
)

// JSONReporter formats tokens and results as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

type jsonToken struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Text  string `json:"text,omitempty"`
}

type jsonTokenDocument struct {
	File     string      `json:"file"`
	ScanTime int64       `json:"scan_time_ns"`
	Count    int         `json:"count"`
	Tokens   []jsonToken `json:"tokens"`
}

// FormatTokens writes the token stream as a single JSON object
func (r *JSONReporter) FormatTokens(doc *TokenDocument, writer io.Writer) error {
	out := jsonTokenDocument{
		File:     doc.File,
		ScanTime: doc.ScanDuration.Nanoseconds(),
		Count:    len(doc.Tokens),
		Tokens:   make([]jsonToken, len(doc.Tokens)),
	}
	for i, tok := range doc.Tokens {
		out.Tokens[i] = jsonToken{
			Kind:  tok.Kind.String(),
			Start: tok.Start,
			End:   tok.End,
		}
		if doc.ShowValues {
			out.Tokens[i].Text = string(tok.Text(doc.Input))
		}
	}

	return writeJSON(out, writer)
}

// FormatResults writes the results in the same layout as the results file
func (r *JSONReporter) FormatResults(res *results.Results, writer io.Writer) error {
	return writeJSON(res, writer)
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}

func writeJSON(v any, writer io.Writer) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}

	_, err = writer.Write([]byte("\n"))
	return err
}
