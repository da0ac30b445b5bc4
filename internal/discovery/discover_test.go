package discovery

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name string
		want FileType
	}{
		{"a.json", FileTypeDocument},
		{"A.JSON", FileTypeDocument},
		{"events.ndjson", FileTypeStream},
		{"log.jsonl", FileTypeStream},
		{"notes.txt", FileTypeUnknown},
		{"json", FileTypeUnknown},
	}
	for _, tc := range tests {
		if got := ClassifyFile(tc.name); got != tc.want {
			t.Errorf("ClassifyFile(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.json"), `{}`)
	writeFile(t, filepath.Join(root, "nested", "a.jsonl"), "1\n2\n")
	writeFile(t, filepath.Join(root, "readme.md"), "# hi")
	writeFile(t, filepath.Join(root, ".hidden", "c.json"), `[]`)

	files, err := Discover(root)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d: %+v", len(files), files)
	}
	if files[0].RelativePath != "b.json" || files[0].Type != FileTypeDocument {
		t.Errorf("unexpected first file: %+v", files[0])
	}
	if files[1].RelativePath != filepath.Join("nested", "a.jsonl") || files[1].Type != FileTypeStream {
		t.Errorf("unexpected second file: %+v", files[1])
	}
	if files[1].Size != 4 {
		t.Errorf("expected size 4, got %d", files[1].Size)
	}

	streams, err := DiscoverByType(root, FileTypeStream)
	if err != nil {
		t.Fatalf("DiscoverByType failed: %v", err)
	}
	if len(streams) != 1 {
		t.Errorf("expected 1 stream file, got %d", len(streams))
	}
}

func TestDiscoverSingleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payload.txt")
	writeFile(t, path, `{"a": 1}`)

	files, err := Discover(path)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(files) != 1 || files[0].Type != FileTypeDocument {
		t.Fatalf("unexpected result: %+v", files)
	}
}

func TestDiscoverMissing(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing path")
	}
}
