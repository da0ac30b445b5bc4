package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover recursively finds all JSON files under rootPath. A path naming a
// single file is returned as the only result, whatever its extension.
func Discover(rootPath string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		fileType := ClassifyFile(absRoot)
		if fileType == FileTypeUnknown {
			fileType = FileTypeDocument
		}
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			Type:         fileType,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		}}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if d.IsDir() {
			// Skip hidden directories such as .git and our own results directory
			if path != absRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		fileType := ClassifyFile(d.Name())
		if fileType == FileTypeUnknown {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: relPath,
			Type:         fileType,
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		})

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})

	return files, nil
}

// DiscoverByType finds only files of the given type under rootPath
func DiscoverByType(rootPath string, fileType FileType) ([]DiscoveredFile, error) {
	allFiles, err := Discover(rootPath)
	if err != nil {
		return nil, err
	}

	var matched []DiscoveredFile
	for _, file := range allFiles {
		if file.Type == fileType {
			matched = append(matched, file)
		}
	}

	return matched, nil
}
