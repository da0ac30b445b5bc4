package discovery

import (
	"path/filepath"
	"strings"
)

// ClassifyFile determines the file type from its extension
func ClassifyFile(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return FileTypeDocument
	case ".ndjson", ".jsonl":
		return FileTypeStream
	default:
		return FileTypeUnknown
	}
}

// IsJSONFile returns true if the file has one of the recognised extensions
func IsJSONFile(filename string) bool {
	return ClassifyFile(filename) != FileTypeUnknown
}
