package cli

import (
	"os"
	"strconv"
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/logger"
	"github.com/cybertec-postgresql/jsonlex/pkg/types"
)

// Config is an alias for the shared Config type
type Config = types.Config

// ConfigError is an alias for the shared ConfigError type
type ConfigError = types.ConfigError

// DefaultConfig provides default configuration values
var DefaultConfig = Config{
	SearchPath:  ".",
	MaxFileSize: 64 << 20,
	Parallelism: 1,
	Format:      "text",
	OutputPath:  "-",
	ResultsFile: ".jsonlex/results.json",
}

// Environment variables read by LoadConfig
const (
	EnvParallel    = "JSONLEX_PARALLEL"
	EnvMaxSize     = "JSONLEX_MAX_SIZE"
	EnvFormat      = "JSONLEX_FORMAT"
	EnvResultsFile = "JSONLEX_RESULTS_FILE"
	EnvConnection  = "JSONLEX_CONNECTION"
	EnvVerbose     = "JSONLEX_VERBOSE"
)

// LoadConfig returns the defaults overridden by JSONLEX_* environment
// variables. Unparsable values are reported and ignored.
func LoadConfig() *Config {
	cfg := DefaultConfig

	if v := os.Getenv(EnvParallel); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parallelism = n
		} else {
			logger.Warn("ignoring %s=%q: %v", EnvParallel, v, err)
		}
	}
	if v := os.Getenv(EnvMaxSize); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxFileSize = n
		} else {
			logger.Warn("ignoring %s=%q: %v", EnvMaxSize, v, err)
		}
	}
	if v := os.Getenv(EnvFormat); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv(EnvResultsFile); v != "" {
		cfg.ResultsFile = v
	}
	if v := os.Getenv(EnvConnection); v != "" {
		cfg.ConnectionString = v
	}
	if v := os.Getenv(EnvVerbose); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		} else {
			logger.Warn("ignoring %s=%q: %v", EnvVerbose, v, err)
		}
	}

	return &cfg
}

// Flags holds command-line flag values; zero values leave the config untouched.
// A nil MaxSize keeps the configured limit; a pointer to 0 disables it.
type Flags struct {
	Format      string
	Output      string
	Parallel    int
	MaxSize     *int64
	Timeout     time.Duration
	ResultsFile string
	Connection  string
	ShowValues  bool
	Verbose     bool
}

// ApplyFlagsToConfig applies command-line flag values to configuration
func ApplyFlagsToConfig(c *Config, f Flags) {
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.Output != "" {
		c.OutputPath = f.Output
	}
	if f.Parallel != 0 {
		c.Parallelism = f.Parallel
	}
	if f.MaxSize != nil {
		c.MaxFileSize = *f.MaxSize
	}
	if f.Timeout != 0 {
		c.Timeout = f.Timeout
	}
	if f.ResultsFile != "" {
		c.ResultsFile = f.ResultsFile
	}
	if f.Connection != "" {
		c.ConnectionString = f.Connection
	}
	if f.ShowValues {
		c.ShowValues = true
	}
	if f.Verbose {
		c.Verbose = true
	}
}
