package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger(t *testing.T) {
	t.Run("creates log file and parent directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "fretsmart.log")

		logger, err := NewLogger(path, LevelDebug, FormatJSON)
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("log file was not created at %s", path)
		}
	})

	t.Run("writes to stderr when path is empty", func(t *testing.T) {
		logger, err := NewLogger("", LevelInfo, FormatText)
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if logger.file != nil {
			t.Error("expected file to be nil when path is empty")
		}
	})
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelDebug, FormatJSON)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d", len(lines))
	}

	expectedLevels := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	expectedMsgs := []string{"debug message", "info message", "warn message", "error message"}

	for i, line := range lines {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Errorf("line %d is not valid JSON: %v", i, err)
			continue
		}

		if entry["level"] != expectedLevels[i] {
			t.Errorf("line %d: expected level %s, got %v", i, expectedLevels[i], entry["level"])
		}
		if entry["msg"] != expectedMsgs[i] {
			t.Errorf("line %d: expected msg %s, got %v", i, expectedMsgs[i], entry["msg"])
		}
		if entry["key"] != "value" {
			t.Errorf("line %d: expected key=value, got key=%v", i, entry["key"])
		}
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelWarn, FormatText)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("expected DEBUG and INFO to be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "warn message") || !strings.Contains(out, "error message") {
		t.Errorf("expected WARN and ERROR entries, got:\n%s", out)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo, "TEXT")

	logger.Info("hello", "fret", 12)

	out := buf.String()
	if !strings.Contains(out, "msg=hello") || !strings.Contains(out, "fret=12") {
		t.Errorf("unexpected text output: %q", out)
	}
}

func TestWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, LevelDebug, FormatJSON)

	child := base.WithComponent("resolve").With("source", "data.txt")
	child.Info("resolved", "strings", 6)

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["component"] != "resolve" {
		t.Errorf("component = %v, want resolve", entry["component"])
	}
	if entry["source"] != "data.txt" {
		t.Errorf("source = %v, want data.txt", entry["source"])
	}
	if entry["strings"] != float64(6) {
		t.Errorf("strings = %v, want 6", entry["strings"])
	}

	// Parent logger must not inherit child attributes
	buf.Reset()
	base.Info("parent")
	if strings.Contains(buf.String(), "component") {
		t.Errorf("parent logger leaked child attributes: %s", buf.String())
	}
}

func TestWith_NoArgsReturnsSameLogger(t *testing.T) {
	logger := NopLogger()
	if logger.With() != logger {
		t.Error("With() with no args should return the receiver")
	}
}

func TestClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.log")
	logger, err := NewLogger(path, LevelInfo, FormatText)
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	logger.Info("written before close")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	// Second close is a no-op
	if err := logger.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(content), "written before close") {
		t.Errorf("log file missing entry: %q", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelInfo},
		{"", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidLevels(t *testing.T) {
	levels := ValidLevels()
	if len(levels) != 4 {
		t.Fatalf("ValidLevels() length = %d, want 4", len(levels))
	}
}
