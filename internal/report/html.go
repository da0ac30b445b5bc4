package report

import (
	"fmt"
	"html"
	"io"
	"strings"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/results"
)

// HTMLReporter renders a document with every token highlighted by kind, or
// a check run as a file list
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

// FormatTokens writes the source of the document with each token wrapped
// in a span whose class is the lower-cased kind name
func (r *HTMLReporter) FormatTokens(doc *TokenDocument, writer io.Writer) error {
	if err := r.writeHeader(doc.File, time.Now(), writer); err != nil {
		return err
	}

	stats := lexer.Count(doc.Tokens)
	if _, err := fmt.Fprintf(writer, `        <section class="summary">
            <div class="stat-card"><div class="label">Tokens</div><div class="value">%d</div></div>
            <div class="stat-card"><div class="label">Strings</div><div class="value">%d</div></div>
            <div class="stat-card"><div class="label">Numbers</div><div class="value">%d</div></div>
            <div class="stat-card"><div class="label">Scan time</div><div class="value">%v</div></div>
        </section>
        <pre class="source-code">`,
		stats.Total(), stats[lexer.String], stats[lexer.Number], doc.ScanDuration); err != nil {
		return err
	}

	pos := 0
	for _, tok := range doc.Tokens {
		if _, err := io.WriteString(writer, html.EscapeString(string(doc.Input[pos:tok.Start]))); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(writer, `<span class="%s" title="%s[%d,%d)">%s</span>`,
			strings.ToLower(tok.Kind.String()), tok.Kind, tok.Start, tok.End,
			html.EscapeString(string(tok.Text(doc.Input)))); err != nil {
			return err
		}
		pos = tok.End
	}
	if _, err := io.WriteString(writer, html.EscapeString(string(doc.Input[pos:]))); err != nil {
		return err
	}

	if _, err := io.WriteString(writer, "</pre>\n"); err != nil {
		return err
	}
	return r.writeFooter(writer)
}

// FormatResults writes one row per checked file
func (r *HTMLReporter) FormatResults(res *results.Results, writer io.Writer) error {
	if err := r.writeHeader("Check results", res.Timestamp, writer); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, `        <section class="summary">
            <div class="stat-card"><div class="label">Passed</div><div class="value">%d / %d</div></div>
            <div class="stat-card"><div class="label">Pass rate</div><div class="value">%.2f%%</div></div>
            <div class="stat-card"><div class="label">Tokens</div><div class="value">%d</div></div>
        </section>
        <section class="file-list">
`, res.PassedCount(), len(res.Files), res.PassPercent(), res.TotalTokens()); err != nil {
		return err
	}

	for _, file := range res.GetFiles() {
		f := res.Files[file]
		detail := fmt.Sprintf("%d tokens", f.TokenCount())
		if !f.Passed() {
			detail = f.Error
			if f.Line > 0 {
				detail = fmt.Sprintf("%d:%d: %s", f.Line, f.Column, f.Error)
			}
		}
		if _, err := fmt.Fprintf(writer, `            <div class="file-item"><span class="file-name">%s</span><span class="status %s">%s</span></div>
`, html.EscapeString(file), html.EscapeString(f.Status), html.EscapeString(detail)); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(writer, "        </section>\n"); err != nil {
		return err
	}
	return r.writeFooter(writer)
}

// Name returns the name of this reporter
func (r *HTMLReporter) Name() string {
	return "html"
}

func (r *HTMLReporter) writeHeader(title string, generated time.Time, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>jsonlex: %s</title>
    <style>
        body { font-family: -apple-system, "Segoe UI", Roboto, Arial, sans-serif; background: #f5f5f5; color: #333; margin: 0; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        .summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 20px; margin-bottom: 30px; }
        .stat-card { background: white; padding: 20px; border-radius: 6px; border-left: 4px solid #3498db; }
        .stat-card .label { font-size: 0.85em; color: #7f8c8d; text-transform: uppercase; }
        .stat-card .value { font-size: 1.6em; font-weight: bold; }
        .source-code { background: #282c34; color: #abb2bf; padding: 15px; border-radius: 6px; overflow-x: auto; }
        .file-item { background: white; padding: 12px; border-bottom: 1px solid #ecf0f1; display: flex; justify-content: space-between; }
        .file-name { font-family: monospace; }
        .status.passed { color: #2ecc71; }
        .status.failed, .status.cancelled { color: #e74c3c; }
        .string { color: #98c379; }
        .number { color: #d19a66; }
        .true, .false, .null { color: #c678dd; }
        .leftbrace, .rightbrace, .leftbracket, .rightbracket { color: #e5c07b; }
        .colon, .comma { color: #5c6370; }
    </style>
</head>
<body>
    <div class="container">
        <h1>%s</h1>
        <div class="meta">Generated: %s</div>
`, html.EscapeString(title), html.EscapeString(title), generated.Format(time.RFC1123))
	return err
}

func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `    </div>
</body>
</html>
`)
	return err
}
