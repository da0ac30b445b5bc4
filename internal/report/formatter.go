package report

import (
	"fmt"
	"io"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/results"
)

// TokenDocument is the token stream of one input together with the input
// it points into
type TokenDocument struct {
	File         string
	Input        []byte
	Tokens       []lexer.Token
	ScanDuration time.Duration
	ShowValues   bool // include the text of every token
}

// Formatter is an interface for report formatters
type Formatter interface {
	// FormatTokens writes the token stream of a single document
	FormatTokens(doc *TokenDocument, writer io.Writer) error

	// FormatResults writes the outcome of a check run
	FormatResults(res *results.Results, writer io.Writer) error

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatText FormatType = "text"
	FormatJSON FormatType = "json"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatText:
		return NewTextReporter(), nil
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, json, html)", format)
	}
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatText, FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatHTML)}
}
