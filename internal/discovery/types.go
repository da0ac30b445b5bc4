package discovery

import "time"

// DiscoveredFile represents a JSON file discovered during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	Type         FileType  // Document or Stream
	Size         int64     // Size in bytes
	ModTime      time.Time // Last modification time
}

// FileType indicates how the content of a file is laid out
type FileType int

const (
	FileTypeUnknown  FileType = iota // Not a JSON file
	FileTypeDocument                 // *.json, a single document
	FileTypeStream                   // *.ndjson / *.jsonl, one document per line
)

// String returns a string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeDocument:
		return "document"
	case FileTypeStream:
		return "stream"
	default:
		return "unknown"
	}
}
