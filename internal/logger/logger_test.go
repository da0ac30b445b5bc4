package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Info("scanned %d files", 3)
	l.Debug("hidden")
	l.Warn("skipping %s", "x.txt")
	l.Error("boom")

	out := buf.String()
	if !strings.Contains(out, "[INFO]  ") || !strings.Contains(out, "scanned 3 files") {
		t.Errorf("missing info line: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug output shown while not verbose: %q", out)
	}
	if !strings.Contains(out, "[WARN]  ") || !strings.Contains(out, "skipping x.txt") {
		t.Errorf("missing warn line: %q", out)
	}
	if !strings.Contains(out, "[ERROR] ") {
		t.Errorf("missing error line: %q", out)
	}
}

func TestLoggerVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)
	l.SetVerbose(true)

	if !l.IsVerbose() {
		t.Fatal("expected verbose logger")
	}

	l.Debug("shown %d", 1)
	l.Timed("tokenize %s", "a.json")()

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] ") || !strings.Contains(out, "shown 1") {
		t.Errorf("missing debug line: %q", out)
	}
	if !strings.Contains(out, "tokenize a.json took ") {
		t.Errorf("missing timing line: %q", out)
	}
}

func TestTimedQuietWhenNotVerbose(t *testing.T) {
	var buf bytes.Buffer
	l := New(false, &buf)

	l.Timed("work")()

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}
