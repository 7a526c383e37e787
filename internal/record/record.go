// Package record defines the typed records of a fretsmart data file and the
// parser that classifies raw lines into them.
//
// A data file holds one record per line, with comma separated fields and
// semicolon separated sub-lists:
//
//	N,<note1;...;note12>
//	I,<instrument>
//	T,<instrument>,<tuning>,<offset;...>
//	H,<type>,<name>,<interval;...>
package record

import (
	"slices"
	"strconv"
)

// Semitones is the number of positions in a note scale.
const Semitones = 12

// Kind identifies the shape of a record.
type Kind int

const (
	KindNotes Kind = iota
	KindInstrument
	KindTuning
	KindHighlight
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNotes:
		return "notes"
	case KindInstrument:
		return "instrument"
	case KindTuning:
		return "tuning"
	case KindHighlight:
		return "highlight"
	default:
		return "unknown"
	}
}

// Tag returns the leading field that introduces records of this kind.
func (k Kind) Tag() string {
	switch k {
	case KindNotes:
		return "N"
	case KindInstrument:
		return "I"
	case KindTuning:
		return "T"
	case KindHighlight:
		return "H"
	default:
		return ""
	}
}

// Record is one parsed data line.
type Record interface {
	Kind() Kind
	// Label is the record's name, or "" for records without one.
	Label() string
}

// NoteScale maps semitone positions 0-11 to note names.
type NoteScale struct {
	Notes []string
}

func (NoteScale) Kind() Kind    { return KindNotes }
func (NoteScale) Label() string { return "" }

// Index returns the position of the first note equal to name, or -1.
func (s NoteScale) Index(name string) int {
	return slices.Index(s.Notes, name)
}

// Contains reports whether name is one of the scale's notes.
func (s NoteScale) Contains(name string) bool {
	return s.Index(name) >= 0
}

// At returns the note at semitone position i, wrapping modulo 12 in both
// directions.
func (s NoteScale) At(i int) string {
	i %= Semitones
	if i < 0 {
		i += Semitones
	}
	return s.Notes[i]
}

// Instrument records that an instrument is known.
type Instrument struct {
	Name string
}

func (Instrument) Kind() Kind      { return KindInstrument }
func (i Instrument) Label() string { return i.Name }

// Tuning is a named list of per-string semitone offsets for one instrument.
// Offsets are kept as authored; see ParseSemitone.
type Tuning struct {
	Instrument string
	Name       string
	Offsets    []string
}

func (Tuning) Kind() Kind      { return KindTuning }
func (t Tuning) Label() string { return t.Name }

// Highlight is a named list of semitone intervals from a root note, such as
// a scale or a chord.
type Highlight struct {
	Type      string
	Name      string
	Intervals []string
}

func (Highlight) Kind() Kind      { return KindHighlight }
func (h Highlight) Label() string { return h.Name }

// ParseSemitone parses an offset or interval field. It reports false for
// anything that is not a non-negative decimal integer.
func ParseSemitone(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
