package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_DisabledIsNoop(t *testing.T) {
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	// Must not panic or create files.
	Log("nothing %d", 1)
}

func TestInit_WritesTimestampedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lspace.log")
	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { Close() })

	if !Enabled() {
		t.Fatal("Enabled() = false after Init")
	}

	Log("layout %dx%d", 800, 600)
	Log("draw %s", "done")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] layout 800x600") {
		t.Errorf("line 0 = %q, want timestamped layout message", lines[0])
	}
	if !strings.HasSuffix(lines[1], "] draw done") {
		t.Errorf("line 1 = %q, want timestamped draw message", lines[1])
	}
}

func TestInit_EmptyPath(t *testing.T) {
	if err := Init(""); err == nil {
		t.Error("Init(\"\") error = nil, want error")
	}
}
