package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store handles persistence of check results
type Store struct {
	filePath string
}

// NewStore creates a new results store
func NewStore(filePath string) *Store {
	return &Store{
		filePath: filePath,
	}
}

// Save writes results to disk as JSON
func (s *Store) Save(results *Results) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}

	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write results file: %w", err)
	}

	return nil
}

// Load reads results from disk
func (s *Store) Load() (*Results, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("results file not found: %s", s.filePath)
		}
		return nil, fmt.Errorf("failed to read results file: %w", err)
	}

	var results Results
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("failed to parse results file: %w", err)
	}
	if results.Version != SchemaVersion {
		return nil, fmt.Errorf("unsupported results version %q (want %s)", results.Version, SchemaVersion)
	}

	return &results, nil
}

// Exists checks if the results file exists
func (s *Store) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// Path returns the file path where results are stored
func (s *Store) Path() string {
	return s.filePath
}
