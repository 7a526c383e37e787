// Package selection holds the six criteria that pick what to render: the
// instrument and tuning, the tuning's root note, and the highlighted note
// set with its own root.
package selection

import (
	"fmt"
	"strings"
)

// Option names, as accepted on the command line and in key/value overrides.
const (
	OptInstrument    = "instrument"
	OptTuning        = "tuning"
	OptTuningNote    = "tuning-note"
	OptHighlightType = "highlight-type"
	OptHighlight     = "highlight"
	OptHighlightNote = "highlight-note"
)

// Selection is the set of criteria used to resolve one fretboard.
type Selection struct {
	Instrument    string `mapstructure:"instrument" yaml:"instrument"`
	Tuning        string `mapstructure:"tuning" yaml:"tuning"`
	TuningNote    string `mapstructure:"tuning_note" yaml:"tuning_note"`
	HighlightType string `mapstructure:"highlight_type" yaml:"highlight_type"`
	Highlight     string `mapstructure:"highlight" yaml:"highlight"`
	HighlightNote string `mapstructure:"highlight_note" yaml:"highlight_note"`
}

// Default returns the selection used when nothing is overridden: the
// standard guitar tuning from E with the C major scale highlighted.
func Default() Selection {
	return Selection{
		Instrument:    "guitar",
		Tuning:        "std",
		TuningNote:    "E",
		HighlightType: "S",
		Highlight:     "major",
		HighlightNote: "C",
	}
}

// Options returns the option names in display order.
func Options() []string {
	return []string{OptInstrument, OptTuning, OptTuningNote, OptHighlightType, OptHighlight, OptHighlightNote}
}

// Set overrides one field by option name. A leading "--" is ignored so raw
// command-line tokens can be passed through.
func (s *Selection) Set(option, value string) error {
	switch strings.TrimPrefix(option, "--") {
	case OptInstrument:
		s.Instrument = value
	case OptTuning:
		s.Tuning = value
	case OptTuningNote:
		s.TuningNote = value
	case OptHighlightType:
		s.HighlightType = value
	case OptHighlight:
		s.Highlight = value
	case OptHighlightNote:
		s.HighlightNote = value
	default:
		return fmt.Errorf("unknown selection option %q (valid: %s)", option, strings.Join(Options(), ", "))
	}
	return nil
}

// Get returns a field by option name, or "" for unknown names.
func (s Selection) Get(option string) string {
	switch strings.TrimPrefix(option, "--") {
	case OptInstrument:
		return s.Instrument
	case OptTuning:
		return s.Tuning
	case OptTuningNote:
		return s.TuningNote
	case OptHighlightType:
		return s.HighlightType
	case OptHighlight:
		return s.Highlight
	case OptHighlightNote:
		return s.HighlightNote
	default:
		return ""
	}
}

// Apply returns a copy of s with each key/value pair applied in order.
// Later pairs win over earlier ones.
func (s Selection) Apply(pairs ...[2]string) (Selection, error) {
	for _, kv := range pairs {
		if err := s.Set(kv[0], kv[1]); err != nil {
			return s, err
		}
	}
	return s, nil
}

// String renders the selection as option=value pairs.
func (s Selection) String() string {
	parts := make([]string, 0, 6)
	for _, opt := range Options() {
		parts = append(parts, opt+"="+s.Get(opt))
	}
	return strings.Join(parts, " ")
}
