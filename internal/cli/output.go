package cli

import (
	"fmt"
	"io"
	"os"
)

// openOutput returns stdout for "-" or "", otherwise a newly created file.
// The returned close function must always be called.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "-" || path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
