package logs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitialize_WritesDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	if err := Initialize(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer Close()

	Logger.Printf("hello from test")

	data, err := os.ReadFile(filepath.Join(dir, "debug.log"))
	if err != nil {
		t.Fatalf("expected debug.log: %v", err)
	}
	if !strings.Contains(string(data), "[noteboard] ") || !strings.Contains(string(data), "hello from test") {
		t.Errorf("unexpected log contents:\n%s", data)
	}
}

func TestInitialize_EmptyDirIsNoop(t *testing.T) {
	if err := Initialize(""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer Close()

	Logger.Println("to buffer")
	if !strings.Contains(buf.String(), "to buffer") {
		t.Errorf("expected buffered output, got %q", buf.String())
	}
}
