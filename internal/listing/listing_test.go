package listing

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	ferrors "github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/testutil"
)

func TestList_Text(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "instruments",
			opts: Options{Kind: KindInstruments},
			want: "guitar\nbass\n",
		},
		{
			name: "tunings",
			opts: Options{Kind: KindTunings},
			want: "guitar std [0 5 10 3 7 0]\n" +
				"guitar dropd [10 5 10 3 7 0]\n" +
				"bass std [0 5 10 3]\n",
		},
		{
			name: "highlights filtered",
			opts: Options{Kind: KindHighlights, Filter: "min*"},
			want: "S minor [0 2 3 5 7 8 10]\n" +
				"C minor [0 3 7]\n",
		},
		{
			name: "wildcard spans name characters",
			opts: Options{Kind: KindHighlights, Filter: "m*or"},
			want: "S major [0 2 4 5 7 9 11]\n" +
				"S minor [0 2 3 5 7 8 10]\n" +
				"C major [0 4 7]\n" +
				"C minor [0 3 7]\n",
		},
		{
			name: "tunings filtered by name",
			opts: Options{Kind: KindTunings, Filter: "drop?"},
			want: "guitar dropd [10 5 10 3 7 0]\n",
		},
		{
			name: "filter without match",
			opts: Options{Kind: KindInstruments, Filter: "banjo"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := List(&buf, strings.NewReader(testutil.StandardData), tt.opts); err != nil {
				t.Fatalf("List error: %v", err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("List output mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestList_Datafile(t *testing.T) {
	t.Run("all records", func(t *testing.T) {
		var buf bytes.Buffer
		if err := List(&buf, strings.NewReader(testutil.StandardData), Options{Kind: KindDatafile}); err != nil {
			t.Fatalf("List error: %v", err)
		}
		lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
		if len(lines) != 11 {
			t.Fatalf("lines = %d, want 11:\n%s", len(lines), buf.String())
		}
		if want := `["E" "F" "F#" "G" "G#" "A" "A#" "B" "C" "C#" "D" "D#"]`; lines[0] != want {
			t.Errorf("notes line = %q, want %q", lines[0], want)
		}
	})

	t.Run("filter drops unnamed note scale", func(t *testing.T) {
		var buf bytes.Buffer
		if err := List(&buf, strings.NewReader(testutil.StandardData), Options{Kind: KindDatafile, Filter: "*"}); err != nil {
			t.Fatalf("List error: %v", err)
		}
		if strings.Contains(buf.String(), `"E"`) {
			t.Errorf("note scale should be filtered out:\n%s", buf.String())
		}
		if got := strings.Count(buf.String(), "\n"); got != 10 {
			t.Errorf("lines = %d, want 10", got)
		}
	})
}

func TestList_YAML(t *testing.T) {
	var buf bytes.Buffer
	err := List(&buf, strings.NewReader(testutil.StandardData), Options{Kind: KindTunings, Filter: "std", Format: FormatYAML})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	var got []Entry
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not valid YAML: %v\n%s", err, buf.String())
	}
	want := []Entry{
		{Kind: "tuning", Instrument: "guitar", Name: "std", Values: []string{"0", "5", "10", "3", "7", "0"}},
		{Kind: "tuning", Instrument: "bass", Name: "std", Values: []string{"0", "5", "10", "3"}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("YAML entries mismatch (-want +got):\n%s", diff)
	}
}

func TestList_YAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := List(&buf, strings.NewReader(""), Options{Kind: KindHighlights, Format: FormatYAML}); err != nil {
		t.Fatalf("List error: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Errorf("List output = %q, want []", got)
	}
}

func TestList_FailFast(t *testing.T) {
	data := testutil.Lines(
		"I,guitar",
		"not a record",
		"I,bass,extra",
		"I,ukulele",
	)

	t.Run("text keeps earlier output", func(t *testing.T) {
		var buf bytes.Buffer
		err := List(&buf, strings.NewReader(data), Options{Kind: KindInstruments})

		var formatErr *ferrors.FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("List error = %v, want *FormatError", err)
		}
		if formatErr.LineNumber != 3 || formatErr.Line != "I,bass,extra" {
			t.Errorf("FormatError = line %d %q, want line 3", formatErr.LineNumber, formatErr.Line)
		}
		if buf.String() != "guitar\n" {
			t.Errorf("List output = %q, want %q", buf.String(), "guitar\n")
		}
	})

	t.Run("yaml writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		err := List(&buf, strings.NewReader(data), Options{Kind: KindInstruments, Format: FormatYAML})
		if !errors.Is(err, ferrors.ErrFormat) {
			t.Fatalf("List error = %v, want ErrFormat", err)
		}
		if buf.Len() != 0 {
			t.Errorf("List output = %q, want nothing", buf.String())
		}
	})

	t.Run("other kinds ignore the line", func(t *testing.T) {
		var buf bytes.Buffer
		if err := List(&buf, strings.NewReader(data), Options{Kind: KindTunings}); err != nil {
			t.Fatalf("List error: %v", err)
		}
	})

	t.Run("datafile stops at first bad line", func(t *testing.T) {
		var buf bytes.Buffer
		err := List(&buf, strings.NewReader(data), Options{Kind: KindDatafile})
		var formatErr *ferrors.FormatError
		if !errors.As(err, &formatErr) || formatErr.LineNumber != 2 {
			t.Fatalf("List error = %v, want FormatError at line 2", err)
		}
	})
}

func TestList_InvalidOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{"unknown kind", Options{Kind: "chords"}, `unknown list kind "chords"`},
		{"unknown format", Options{Kind: KindInstruments, Format: "xml"}, `unknown output format "xml"`},
		{"bad glob", Options{Kind: KindInstruments, Filter: "[a"}, `invalid filter "[a"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := List(&buf, strings.NewReader(testutil.StandardData), tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("List error = %v, want containing %q", err, tt.wantErr)
			}
			if buf.Len() != 0 {
				t.Errorf("List wrote output on invalid options: %q", buf.String())
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		if got, err := ParseKind(k); err != nil || string(got) != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
	}
	if _, err := ParseKind("Instruments"); err == nil {
		t.Error("ParseKind should be case sensitive")
	}
}
