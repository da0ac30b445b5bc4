package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	jsonerrors "github.com/cybertec-postgresql/jsonlex/internal/errors"
	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/logger"
	"github.com/cybertec-postgresql/jsonlex/internal/report"
	"github.com/cybertec-postgresql/jsonlex/internal/runner"
)

// Tokenize prints the token stream of a single file and returns the exit
// code. Lexing failures are reported on stderr as file:line:col: message
// and yield exit code 1; I/O failures are returned as errors.
func Tokenize(ctx context.Context, config *Config, path string) (int, error) {
	return tokenizeTo(ctx, config, path, os.Stderr)
}

func tokenizeTo(_ context.Context, config *Config, path string, diag io.Writer) (int, error) {
	logger.Debug("tokenizing %s", path)

	input, err := runner.ReadInput(path, config.MaxFileSize)
	if err != nil {
		return 1, err
	}

	start := time.Now()
	tokens, err := lexer.Tokenize(input)
	elapsed := time.Since(start)
	logger.Debug("scanned %d bytes in %v", len(input), elapsed)

	if err != nil {
		var lerr *lexer.Error
		if !errors.As(err, &lerr) {
			return 1, err
		}
		fmt.Fprintln(diag, jsonerrors.NewLexFailure(path, input, err))
		return 1, nil
	}

	formatter, err := report.GetFormatter(report.FormatType(config.Format))
	if err != nil {
		return 2, err
	}

	writer, closeOutput, err := openOutput(config.OutputPath)
	if err != nil {
		return 1, err
	}

	doc := &report.TokenDocument{
		File:         path,
		Input:        input,
		Tokens:       tokens,
		ScanDuration: elapsed,
		ShowValues:   config.ShowValues,
	}
	if err := formatter.FormatTokens(doc, writer); err != nil {
		_ = closeOutput()
		return 1, fmt.Errorf("failed to format tokens: %w", err)
	}
	if err := closeOutput(); err != nil {
		return 1, fmt.Errorf("failed to close output: %w", err)
	}

	return 0, nil
}
