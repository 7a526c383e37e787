// Package listing prints the records of one kind from a data file.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/record"
)

// Kind names what to list.
type Kind string

const (
	KindInstruments Kind = "instruments"
	KindTunings     Kind = "tunings"
	KindHighlights  Kind = "highlights"
	// KindDatafile lists every record in the file.
	KindDatafile Kind = "datafile"
)

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Kinds returns the valid kind names.
func Kinds() []string {
	return []string{string(KindInstruments), string(KindTunings), string(KindHighlights), string(KindDatafile)}
}

// Formats returns the valid output formats.
func Formats() []string {
	return []string{FormatText, FormatYAML}
}

// ParseKind converts a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	switch k {
	case KindInstruments, KindTunings, KindHighlights, KindDatafile:
		return k, nil
	}
	return "", fmt.Errorf("unknown list kind %q (valid: %s)", s, strings.Join(Kinds(), ", "))
}

// prefix returns the line prefix of the records listed for k, or "" to
// list every line.
func (k Kind) prefix() string {
	switch k {
	case KindInstruments:
		return record.KindInstrument.Tag() + ","
	case KindTunings:
		return record.KindTuning.Tag() + ","
	case KindHighlights:
		return record.KindHighlight.Tag() + ","
	default:
		return ""
	}
}

// Options controls a listing.
type Options struct {
	Kind Kind
	// Filter is a glob matched against record names. Records without a
	// name never match a filter.
	Filter string
	// Format is FormatText (default) or FormatYAML.
	Format string
}

// Entry is one listed record in YAML output.
type Entry struct {
	Kind       string   `yaml:"kind"`
	Instrument string   `yaml:"instrument,omitempty"`
	Type       string   `yaml:"type,omitempty"`
	Name       string   `yaml:"name,omitempty"`
	Values     []string `yaml:"values,flow,omitempty"`
}

// NewEntry converts rec to its YAML form.
func NewEntry(rec record.Record) Entry {
	e := Entry{Kind: rec.Kind().String(), Name: rec.Label()}
	switch r := rec.(type) {
	case record.NoteScale:
		e.Values = r.Notes
	case record.Tuning:
		e.Instrument = r.Instrument
		e.Values = r.Offsets
	case record.Highlight:
		e.Type = r.Type
		e.Values = r.Intervals
	}
	return e
}

// Text returns the one-line text form of rec.
func Text(rec record.Record) string {
	switch r := rec.(type) {
	case record.NoteScale:
		return fmt.Sprintf("%q", r.Notes)
	case record.Instrument:
		return r.Name
	case record.Tuning:
		return fmt.Sprintf("%s %s %v", r.Instrument, r.Name, r.Offsets)
	case record.Highlight:
		return fmt.Sprintf("%s %s %v", r.Type, r.Name, r.Intervals)
	default:
		return ""
	}
}

// List reads r and writes the records selected by opts to w. Only lines of
// the listed kind are parsed; the first of them that fails to parse stops
// the listing with a *errors.FormatError. Text output is written as records
// are read, YAML output only once the whole stream has been read.
func List(w io.Writer, r io.Reader, opts Options) error {
	if _, err := ParseKind(string(opts.Kind)); err != nil {
		return err
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}
	if format != FormatText && format != FormatYAML {
		return fmt.Errorf("unknown output format %q (valid: %s)", opts.Format, strings.Join(Formats(), ", "))
	}

	var filter glob.Glob
	if opts.Filter != "" {
		g, err := glob.Compile(opts.Filter)
		if err != nil {
			return errors.Wrapf(err, "invalid filter %q", opts.Filter)
		}
		filter = g
	}

	prefix := opts.Kind.prefix()
	var entries []Entry

	err := record.Lines(r, func(n int, line string) error {
		if !strings.HasPrefix(line, prefix) {
			return nil
		}
		rec, err := record.Parse(line)
		if err != nil {
			var formatErr *errors.FormatError
			if errors.As(err, &formatErr) {
				return formatErr.WithLine(n)
			}
			return err
		}
		if filter != nil && (rec.Label() == "" || !filter.Match(rec.Label())) {
			return nil
		}

		if format == FormatYAML {
			entries = append(entries, NewEntry(rec))
			return nil
		}
		_, err = fmt.Fprintln(w, Text(rec))
		return err
	})
	if err != nil {
		return err
	}

	if format == FormatYAML {
		if entries == nil {
			entries = []Entry{}
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return errors.Wrap(err, "failed to encode listing")
		}
		return enc.Close()
	}
	return nil
}
