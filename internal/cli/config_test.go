package cli

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvParallel, EnvMaxSize, EnvFormat, EnvResultsFile, EnvConnection, EnvVerbose} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()

	if cfg.SearchPath != "." {
		t.Errorf("expected default search path '.', got '%s'", cfg.SearchPath)
	}
	if cfg.Parallelism != 1 {
		t.Errorf("expected default parallelism 1, got %d", cfg.Parallelism)
	}
	if cfg.MaxFileSize != 64<<20 {
		t.Errorf("expected default max size 64MiB, got %d", cfg.MaxFileSize)
	}
	if cfg.Format != "text" {
		t.Errorf("expected default format 'text', got '%s'", cfg.Format)
	}
	if cfg.ResultsFile != ".jsonlex/results.json" {
		t.Errorf("expected default results file '.jsonlex/results.json', got '%s'", cfg.ResultsFile)
	}
	if cfg.ConnectionString != "" {
		t.Errorf("expected no default connection, got '%s'", cfg.ConnectionString)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadConfig_DoesNotMutateDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvParallel, "8")

	cfg := LoadConfig()
	cfg.Format = "json"

	if DefaultConfig.Parallelism != 1 || DefaultConfig.Format != "text" {
		t.Errorf("DefaultConfig was modified: %+v", DefaultConfig)
	}
}

func TestLoadConfig_EnvironmentVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvParallel, "4")
	t.Setenv(EnvMaxSize, "1024")
	t.Setenv(EnvFormat, "json")
	t.Setenv(EnvResultsFile, "out/results.json")
	t.Setenv(EnvConnection, "postgres://localhost/jsonlex")
	t.Setenv(EnvVerbose, "true")

	cfg := LoadConfig()

	if cfg.Parallelism != 4 {
		t.Errorf("expected parallelism from env 4, got %d", cfg.Parallelism)
	}
	if cfg.MaxFileSize != 1024 {
		t.Errorf("expected max size from env 1024, got %d", cfg.MaxFileSize)
	}
	if cfg.Format != "json" {
		t.Errorf("expected format from env 'json', got '%s'", cfg.Format)
	}
	if cfg.ResultsFile != "out/results.json" {
		t.Errorf("expected results file from env, got '%s'", cfg.ResultsFile)
	}
	if cfg.ConnectionString != "postgres://localhost/jsonlex" {
		t.Errorf("expected connection from env, got '%s'", cfg.ConnectionString)
	}
	if !cfg.Verbose {
		t.Error("expected verbose from env")
	}
}

func TestLoadConfig_InvalidEnvironmentIgnored(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvParallel, "many")
	t.Setenv(EnvMaxSize, "big")

	cfg := LoadConfig()

	if cfg.Parallelism != 1 {
		t.Errorf("invalid env should keep default parallelism, got %d", cfg.Parallelism)
	}
	if cfg.MaxFileSize != DefaultConfig.MaxFileSize {
		t.Errorf("invalid env should keep default max size, got %d", cfg.MaxFileSize)
	}
}

func TestApplyFlagsToConfig_OverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvParallel, "2")
	t.Setenv(EnvFormat, "json")

	cfg := LoadConfig()
	maxSize := int64(2048)

	ApplyFlagsToConfig(cfg, Flags{
		Format:      "html",
		Output:      "tokens.html",
		Parallel:    6,
		MaxSize:     &maxSize,
		Timeout:     time.Minute,
		ResultsFile: "custom.json",
		Connection:  "host=db",
		ShowValues:  true,
		Verbose:     true,
	})

	if cfg.Format != "html" {
		t.Errorf("expected format from flag 'html', got '%s'", cfg.Format)
	}
	if cfg.OutputPath != "tokens.html" {
		t.Errorf("expected output from flag, got '%s'", cfg.OutputPath)
	}
	if cfg.Parallelism != 6 {
		t.Errorf("expected parallelism from flag 6, got %d", cfg.Parallelism)
	}
	if cfg.MaxFileSize != 2048 {
		t.Errorf("expected max size from flag 2048, got %d", cfg.MaxFileSize)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("expected timeout from flag 1m, got %v", cfg.Timeout)
	}
	if cfg.ResultsFile != "custom.json" {
		t.Errorf("expected results file from flag, got '%s'", cfg.ResultsFile)
	}
	if cfg.ConnectionString != "host=db" {
		t.Errorf("expected connection from flag, got '%s'", cfg.ConnectionString)
	}
	if !cfg.ShowValues || !cfg.Verbose {
		t.Error("expected boolean flags to be applied")
	}
}

func TestApplyFlagsToConfig_EmptyFlagsPreserveConfig(t *testing.T) {
	cfg := &Config{
		SearchPath:  "data",
		MaxFileSize: 100,
		Parallelism: 3,
		Timeout:     45 * time.Second,
		Format:      "json",
		OutputPath:  "out.json",
		ResultsFile: "r.json",
		Verbose:     true,
	}

	ApplyFlagsToConfig(cfg, Flags{})

	if cfg.Parallelism != 3 {
		t.Errorf("zero flag should not change parallelism")
	}
	if cfg.MaxFileSize != 100 {
		t.Errorf("zero flag should not change max size")
	}
	if cfg.Format != "json" || cfg.OutputPath != "out.json" || cfg.ResultsFile != "r.json" {
		t.Errorf("empty flags should not change paths or format: %+v", cfg)
	}
	if cfg.Timeout != 45*time.Second {
		t.Errorf("zero flag should not change timeout")
	}
	if !cfg.Verbose {
		t.Errorf("false flag should not clear verbose from env")
	}
}

func TestApplyFlagsToConfig_ZeroMaxSizeDisablesLimit(t *testing.T) {
	clearEnv(t)

	cfg := LoadConfig()
	unlimited := int64(0)

	ApplyFlagsToConfig(cfg, Flags{MaxSize: &unlimited})

	if cfg.MaxFileSize != 0 {
		t.Errorf("expected --max-size 0 to disable the limit, got %d", cfg.MaxFileSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unlimited max size should be valid: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		cfg := DefaultConfig
		return &cfg
	}

	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero parallelism", func(c *Config) { c.Parallelism = 0 }, "parallel"},
		{"negative parallelism", func(c *Config) { c.Parallelism = -1 }, "parallel"},
		{"too high parallelism", func(c *Config) { c.Parallelism = 101 }, "parallel"},
		{"negative max size", func(c *Config) { c.MaxFileSize = -1 }, "max-size"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "timeout"},
		{"unknown format", func(c *Config) { c.Format = "yaml" }, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.modify(cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}

			configErr, ok := err.(*ConfigError)
			if !ok {
				t.Fatalf("expected ConfigError, got %T", err)
			}
			if configErr.Field != tt.field {
				t.Errorf("expected error field '%s', got '%s'", tt.field, configErr.Field)
			}
		})
	}
}
