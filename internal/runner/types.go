package runner

import (
	"time"

	"github.com/cybertec-postgresql/jsonlex/internal/discovery"
	"github.com/cybertec-postgresql/jsonlex/internal/lexer"
)

// FileRun represents the result of tokenizing a single file
type FileRun struct {
	File         *discovery.DiscoveredFile
	StartTime    time.Time
	EndTime      time.Time
	ScanDuration time.Duration // Time spent in the lexer only
	Status       RunStatus
	Bytes        int
	Tokens       lexer.Stats
	Error        error // Non-nil unless Status is FilePassed
}

// RunStatus represents the outcome of a file check
type RunStatus int

const (
	FilePending RunStatus = iota
	FilePassed
	FileFailed
	FileCancelled
)

// String returns a string representation of RunStatus
func (rs RunStatus) String() string {
	switch rs {
	case FilePending:
		return "pending"
	case FilePassed:
		return "passed"
	case FileFailed:
		return "failed"
	case FileCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Duration returns the wall time spent on the file
func (fr *FileRun) Duration() time.Duration {
	if fr.EndTime.IsZero() {
		return time.Since(fr.StartTime)
	}
	return fr.EndTime.Sub(fr.StartTime)
}

// Summary summarizes all file checks
type Summary struct {
	TotalFiles     int
	PassedFiles    int
	FailedFiles    int
	CancelledFiles int
	TotalTokens    int
	TotalBytes     int
	TotalDuration  time.Duration
}

// AllPassed returns true if every file tokenized cleanly
func (s *Summary) AllPassed() bool {
	return s.FailedFiles == 0 && s.CancelledFiles == 0
}

// ExitCode returns the appropriate exit code based on check results
func (s *Summary) ExitCode() int {
	if s.AllPassed() {
		return 0
	}
	return 1
}

// Summarize creates a summary of check results
func Summarize(runs []*FileRun) *Summary {
	summary := &Summary{
		TotalFiles: len(runs),
	}

	for _, run := range runs {
		summary.TotalDuration += run.Duration()
		summary.TotalBytes += run.Bytes
		summary.TotalTokens += run.Tokens.Total()

		switch run.Status {
		case FilePassed:
			summary.PassedFiles++
		case FileFailed:
			summary.FailedFiles++
		case FileCancelled:
			summary.CancelledFiles++
		}
	}

	return summary
}
