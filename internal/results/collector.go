package results

import (
	"errors"

	jsonerrors "github.com/cybertec-postgresql/jsonlex/internal/errors"
	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
	"github.com/cybertec-postgresql/jsonlex/internal/runner"
)

// Collector aggregates file runs into Results
type Collector struct {
	results *Results
}

// NewCollector creates a new results collector
func NewCollector() *Collector {
	return &Collector{
		results: NewResults(),
	}
}

// CollectFromRun records a single file run
func (c *Collector) CollectFromRun(run *runner.FileRun) {
	result := FileResult{
		Type:     run.File.Type.String(),
		Status:   run.Status.String(),
		Bytes:    run.Bytes,
		ScanTime: run.ScanDuration,
	}

	if run.Status == runner.FilePassed {
		result.Tokens = make(map[string]int)
		for kind, count := range run.Tokens {
			if count > 0 {
				result.Tokens[lexer.Kind(kind).String()] = count
			}
		}
	}

	if run.Error != nil {
		result.Error = run.Error.Error()
		var failure *jsonerrors.LexFailure
		if errors.As(run.Error, &failure) {
			result.Error = failure.Err.Message
			result.Line = failure.Position.Line
			result.Column = failure.Position.Column
		}
	}

	c.results.Add(run.File.RelativePath, result)
}

// CollectFromRuns records multiple file runs
func (c *Collector) CollectFromRuns(runs []*runner.FileRun) {
	for _, run := range runs {
		c.CollectFromRun(run)
	}
}

// Results returns the aggregated results
func (c *Collector) Results() *Results {
	return c.results
}
