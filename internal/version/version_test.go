package version

import (
	"runtime/debug"
	"testing"
)

func TestRevision(t *testing.T) {
	tests := []struct {
		name     string
		settings []debug.BuildSetting
		want     string
	}{
		{
			name:     "no vcs info",
			settings: nil,
			want:     "",
		},
		{
			name: "clean tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "0123456789abcdef"},
				{Key: "vcs.modified", Value: "false"},
			},
			want: "0123456",
		},
		{
			name: "modified tree",
			settings: []debug.BuildSetting{
				{Key: "vcs.modified", Value: "true"},
				{Key: "vcs.revision", Value: "fedcba9876543210"},
			},
			want: "fedcba9-dirty",
		},
		{
			name: "short revision",
			settings: []debug.BuildSetting{
				{Key: "vcs.revision", Value: "abc"},
			},
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := revision(tt.settings); got != tt.want {
				t.Errorf("revision() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	origVersion, origHash := Version, Hash
	t.Cleanup(func() { Version, Hash = origVersion, origHash })

	Version, Hash = "v1.2.0", "0123456"
	if got := String(); got != "v1.2.0" {
		t.Errorf("String() = %q, want v1.2.0", got)
	}

	Version = ""
	if got := String(); got != "0123456" {
		t.Errorf("String() = %q, want hash", got)
	}

	Hash = ""
	if got := String(); got != "dev" {
		t.Errorf("String() = %q, want dev", got)
	}
}
