package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/discovery"
	jsonerrors "github.com/cybertec-postgresql/jsonlex/internal/errors"
	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/logger"
)

// Checker tokenizes files and records the outcome
type Checker struct {
	maxFileSize int64
	verbose     bool
}

// NewChecker creates a new checker. maxFileSize of 0 disables the size limit.
func NewChecker(maxFileSize int64, verbose bool) *Checker {
	return &Checker{
		maxFileSize: maxFileSize,
		verbose:     verbose,
	}
}

// ReadInput loads a whole file into memory, refusing files larger than
// maxFileSize bytes when the limit is positive.
func ReadInput(path string, maxFileSize int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, jsonerrors.NewInputError(path, "open failed", err)
	}
	defer f.Close()

	if maxFileSize <= 0 {
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, jsonerrors.NewInputError(path, "read failed", err)
		}
		return data, nil
	}

	// Read one byte past the limit to detect oversized files without
	// trusting the size reported by stat.
	data, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return nil, jsonerrors.NewInputError(path, "read failed", err)
	}
	if int64(len(data)) > maxFileSize {
		return nil, jsonerrors.NewInputError(path,
			fmt.Sprintf("file exceeds the %d byte limit", maxFileSize), nil)
	}
	return data, nil
}

// Check tokenizes a single file
func (c *Checker) Check(ctx context.Context, file *discovery.DiscoveredFile) *FileRun {
	run := &FileRun{
		File:      file,
		StartTime: time.Now(),
		Status:    FilePending,
	}
	defer func() { run.EndTime = time.Now() }()

	if err := ctx.Err(); err != nil {
		run.Status = FileCancelled
		run.Error = err
		return run
	}

	input, err := ReadInput(file.Path, c.maxFileSize)
	if err != nil {
		run.Status = FileFailed
		run.Error = err
		return run
	}
	run.Bytes = len(input)

	scanStart := time.Now()
	tokens, err := lexer.Tokenize(input)
	run.ScanDuration = time.Since(scanStart)
	if err != nil {
		run.Status = FileFailed
		run.Error = jsonerrors.NewLexFailure(file.RelativePath, input, err)
		if c.verbose {
			logger.Debug("%v", run.Error)
		}
		return run
	}

	run.Tokens = lexer.Count(tokens)
	run.Status = FilePassed
	if c.verbose {
		logger.Debug("%s: %d tokens in %v", file.RelativePath, len(tokens), run.ScanDuration)
	}
	return run
}

// CheckBatch tokenizes files sequentially. Once ctx is cancelled the
// remaining files are reported as FileCancelled without being read.
func (c *Checker) CheckBatch(ctx context.Context, files []discovery.DiscoveredFile) []*FileRun {
	runs := make([]*FileRun, 0, len(files))

	for i := range files {
		if c.verbose {
			logger.Debug("checking %s", files[i].RelativePath)
		}

		runs = append(runs, c.Check(ctx, &files[i]))
	}

	return runs
}
