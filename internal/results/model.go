package results

import (
	"sort"
	"time"
)

// SchemaVersion is written into every results file
const SchemaVersion = "1.0"

// Results represents the outcome of one check run across all files
type Results struct {
	Version   string                `json:"version"`   // Schema version
	Timestamp time.Time             `json:"timestamp"` // When the check ran
	Files     map[string]FileResult `json:"files"`     // Key: relative file path
}

// FileResult is the persisted outcome of tokenizing one file
type FileResult struct {
	Type     string         `json:"type"`   // document or stream
	Status   string         `json:"status"` // passed, failed or cancelled
	Bytes    int            `json:"bytes"`
	Tokens   map[string]int `json:"tokens,omitempty"` // Key: token kind name
	ScanTime time.Duration  `json:"scan_time_ns"`
	Error    string         `json:"error,omitempty"`
	Line     int            `json:"line,omitempty"` // Failure location, 1-indexed
	Column   int            `json:"column,omitempty"`
}

// TokenCount returns the total number of tokens in the file
func (f FileResult) TokenCount() int {
	n := 0
	for _, c := range f.Tokens {
		n += c
	}
	return n
}

// Passed reports whether the file tokenized cleanly
func (f FileResult) Passed() bool {
	return f.Status == "passed"
}

// NewResults creates an empty Results instance
func NewResults() *Results {
	return &Results{
		Version:   SchemaVersion,
		Timestamp: time.Now(),
		Files:     make(map[string]FileResult),
	}
}

// Add records the outcome for a file
func (r *Results) Add(file string, result FileResult) {
	if r.Files == nil {
		r.Files = make(map[string]FileResult)
	}
	r.Files[file] = result
}

// GetFiles returns the recorded file paths in sorted order
func (r *Results) GetFiles() []string {
	files := make([]string, 0, len(r.Files))
	for file := range r.Files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// PassedCount returns how many files tokenized cleanly
func (r *Results) PassedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Passed() {
			n++
		}
	}
	return n
}

// PassPercent returns the percentage of files that tokenized cleanly
func (r *Results) PassPercent() float64 {
	if len(r.Files) == 0 {
		return 0.0
	}
	return float64(r.PassedCount()) / float64(len(r.Files)) * 100.0
}

// TotalTokens returns the number of tokens across all files
func (r *Results) TotalTokens() int {
	n := 0
	for _, f := range r.Files {
		n += f.TokenCount()
	}
	return n
}
