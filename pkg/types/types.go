package types

import (
	"fmt"
	"time"
)

// Config holds runtime configuration combining flags, environment variables, and defaults
type Config struct {
	// Input
	SearchPath  string // Root path for JSON file discovery
	MaxFileSize int64  // Files larger than this many bytes are rejected (0 = unlimited)

	// Execution
	Parallelism int           // Max concurrent files (1 = sequential)
	Timeout     time.Duration // Deadline for a whole check run (0 = none)

	// Output
	Format      string // Output format (text, json or html)
	OutputPath  string // Output path, "-" for stdout
	ShowValues  bool   // Print the text of every token
	ResultsFile string // Check results output path
	Verbose     bool   // Enable debug logging

	// PostgreSQL connection for recording check runs (optional)
	ConnectionString string
}

const maxParallelism = 100

// ConfigError represents an invalid configuration value
type ConfigError struct {
	Field      string
	Message    string
	Suggestion string
}

func (e *ConfigError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("invalid %s: %s (%s)", e.Field, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Validate checks the configuration for values the commands cannot work with
func (c *Config) Validate() error {
	if c.Parallelism < 1 {
		return &ConfigError{
			Field:      "parallel",
			Message:    fmt.Sprintf("must be at least 1, got %d", c.Parallelism),
			Suggestion: "use --parallel=1 for sequential checking",
		}
	}
	if c.Parallelism > maxParallelism {
		return &ConfigError{
			Field:      "parallel",
			Message:    fmt.Sprintf("must be at most %d, got %d", maxParallelism, c.Parallelism),
			Suggestion: "tokenizing is CPU bound, more workers than cores does not help",
		}
	}
	if c.MaxFileSize < 0 {
		return &ConfigError{
			Field:   "max-size",
			Message: fmt.Sprintf("must not be negative, got %d", c.MaxFileSize),
		}
	}
	if c.Timeout < 0 {
		return &ConfigError{
			Field:   "timeout",
			Message: fmt.Sprintf("must not be negative, got %v", c.Timeout),
		}
	}
	switch c.Format {
	case "text", "json", "html":
	default:
		return &ConfigError{
			Field:      "format",
			Message:    fmt.Sprintf("unsupported format %q", c.Format),
			Suggestion: "supported formats are text, json and html",
		}
	}
	return nil
}
