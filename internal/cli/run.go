package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/database"
	"github.com/cybertec-postgresql/jsonlex/internal/discovery"
	"github.com/cybertec-postgresql/jsonlex/internal/logger"
	"github.com/cybertec-postgresql/jsonlex/internal/report"
	"github.com/cybertec-postgresql/jsonlex/internal/results"
	"github.com/cybertec-postgresql/jsonlex/internal/runner"
)

// Check tokenizes every JSON file under config.SearchPath and returns the
// exit code: 0 when all files pass, 1 otherwise
func Check(ctx context.Context, config *Config) (int, error) {
	return checkTo(ctx, config, os.Stdout)
}

func checkTo(ctx context.Context, config *Config, out io.Writer) (int, error) {
	startTime := time.Now()
	defer logger.Timed("check of %s", config.SearchPath)()

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	// Step 1: Discover files
	logger.Debug("discovering JSON files in %s", config.SearchPath)
	files, err := discovery.Discover(config.SearchPath)
	if err != nil {
		return 1, fmt.Errorf("failed to discover files: %w", err)
	}

	if len(files) == 0 {
		fmt.Fprintln(out, "No JSON files found (*.json, *.ndjson, *.jsonl)")
		return 0, nil
	}
	logger.Debug("found %d file(s)", len(files))

	// Step 2: Tokenize (parallel or sequential based on config)
	checker := runner.NewChecker(config.MaxFileSize, config.Verbose)

	var runs []*runner.FileRun
	if config.Parallelism > 1 {
		runs = runner.NewWorkerPool(checker, config.Parallelism, config.Verbose).CheckParallel(ctx, files)
	} else {
		runs = checker.CheckBatch(ctx, files)
	}

	// Step 3: Collect results
	collector := results.NewCollector()
	collector.CollectFromRuns(runs)
	res := collector.Results()

	// Step 4: Save results
	store := results.NewStore(config.ResultsFile)
	if err := store.Save(res); err != nil {
		return 1, fmt.Errorf("failed to save results: %w", err)
	}

	// Step 5: Record the run in PostgreSQL when configured
	if config.ConnectionString != "" {
		runID, err := recordRun(ctx, config, res)
		if err != nil {
			return 1, err
		}
		logger.Info("recorded run %d in PostgreSQL", runID)
	}

	// Step 6: Display results
	formatter, err := report.GetFormatter(report.FormatType(config.Format))
	if err != nil {
		return 2, err
	}
	if err := formatter.FormatResults(res, out); err != nil {
		return 1, fmt.Errorf("failed to format results: %w", err)
	}

	summary := runner.Summarize(runs)
	if summary.CancelledFiles > 0 {
		logger.Warn("%d file(s) not checked: %v", summary.CancelledFiles, ctx.Err())
	}
	if config.Format == string(report.FormatText) {
		fmt.Fprintf(out, "Time:   %v\n", time.Since(startTime).Round(time.Millisecond))
		fmt.Fprintf(out, "\nResults written to %s\n", store.Path())
	}

	return summary.ExitCode(), nil
}

func recordRun(ctx context.Context, config *Config, res *results.Results) (int64, error) {
	pool, err := database.NewPool(ctx, config.ConnectionString)
	if err != nil {
		return 0, err
	}
	defer pool.Close()

	recorder := database.NewRecorder(pool)
	if err := recorder.EnsureSchema(ctx); err != nil {
		return 0, err
	}

	runID, err := recorder.RecordRun(ctx, config.SearchPath, res)
	if err != nil {
		return 0, fmt.Errorf("failed to record run: %w", err)
	}
	return runID, nil
}
