// Package testutil provides testing utilities for fretsmart tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Chromatic is the twelve-note scale starting from E used by the fixtures.
const Chromatic = "E;F;F#;G;G#;A;A#;B;C;C#;D;D#"

// StandardData is a small but complete data file: one note scale, two
// instruments with tunings, and a few scales and chords.
var StandardData = strings.Join([]string{
	"N," + Chromatic,
	"I,guitar",
	"I,bass",
	"T,guitar,std,0;5;10;3;7;0",
	"T,guitar,dropd,10;5;10;3;7;0",
	"T,bass,std,0;5;10;3",
	"H,S,major,0;2;4;5;7;9;11",
	"H,S,minor,0;2;3;5;7;8;10",
	"H,S,pentatonic,0;3;5;7;10",
	"H,C,major,0;4;7",
	"H,C,minor,0;3;7",
}, "\n") + "\n"

// WriteDataFile writes content to a data file in a fresh temporary directory
// and returns its path. The directory is removed when the test completes.
func WriteDataFile(t *testing.T, content string) string {
	t.Helper()

	return WriteFile(t, t.TempDir(), "data.txt", content)
}

// WriteFile writes content to name inside dir, creating parent directories,
// and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	fullPath := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", name, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", name, err)
	}
	return fullPath
}

// Lines joins lines into file content with a trailing newline.
func Lines(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
