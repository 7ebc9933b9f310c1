package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

var linePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2} `)

func TestConsoleLoggerLineFormat(t *testing.T) {
	var out bytes.Buffer
	logger := NewConsoleLoggerTo(&out)

	logger.Log("Running payroll...")

	line := out.String()
	if !strings.HasSuffix(line, "\n") {
		t.Fatalf("expected newline-terminated line, got %q", line)
	}
	if !linePattern.MatchString(line) {
		t.Fatalf("expected leading timestamp, got %q", line)
	}
	if !strings.Contains(line, "Running payroll...") {
		t.Fatalf("expected message in line, got %q", line)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.log")
	logger := NewFileLogger(path)

	logger.Log("first")
	logger.Log("second")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), string(data))
	}
	for i, line := range lines {
		if !linePattern.MatchString(line) {
			t.Fatalf("line %d missing timestamp: %q", i, line)
		}
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Fatalf("messages out of order or missing: %q", lines)
	}
}

func TestFileLoggerSurvivesUnwritablePath(t *testing.T) {
	logger := NewFileLogger(filepath.Join(t.TempDir(), "missing", "payroll.log"))

	// Must not panic; failure degrades to a stderr notice.
	logger.Log("dropped")
}
