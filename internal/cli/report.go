package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/jsonlex/internal/database"
	"github.com/cybertec-postgresql/jsonlex/internal/report"
	"github.com/cybertec-postgresql/jsonlex/internal/results"
)

// Report renders saved check results. Results come from PostgreSQL when a
// connection string is configured (runID 0 selects the latest run), and
// from the results file otherwise.
func Report(ctx context.Context, config *Config, runID int64) error {
	// Step 1: Load results
	var (
		res *results.Results
		err error
	)
	if config.ConnectionString != "" {
		res, err = loadRun(ctx, config, runID)
	} else {
		store := results.NewStore(config.ResultsFile)
		if !store.Exists() {
			return fmt.Errorf("results file not found: %s (run 'jsonlex check' first)", config.ResultsFile)
		}
		res, err = store.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	// Step 2: Validate format
	if !report.ValidFormat(config.Format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", config.Format, report.SupportedFormats())
	}

	// Step 3: Get formatter
	formatter, err := report.GetFormatter(report.FormatType(config.Format))
	if err != nil {
		return err
	}

	// Step 4: Format and output
	writer, closeOutput, err := openOutput(config.OutputPath)
	if err != nil {
		return err
	}
	if err := formatter.FormatResults(res, writer); err != nil {
		_ = closeOutput()
		return fmt.Errorf("failed to format results: %w", err)
	}
	if err := closeOutput(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	// Print success message to stderr (so it doesn't interfere with stdout output)
	if config.OutputPath != "-" && config.OutputPath != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", config.OutputPath)
	}

	return nil
}

func loadRun(ctx context.Context, config *Config, runID int64) (*results.Results, error) {
	pool, err := database.NewPool(ctx, config.ConnectionString)
	if err != nil {
		return nil, err
	}
	defer pool.Close()

	recorder := database.NewRecorder(pool)
	if runID == 0 {
		runID, err = recorder.LatestRunID(ctx)
		if err != nil {
			return nil, err
		}
	}
	return recorder.LoadRun(ctx, runID)
}
