package record

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/fretsmart/internal/errors"
)

const (
	fieldSep = ","
	listSep  = ";"
)

// Parse classifies a single data line. Lines that do not match one of the
// four record shapes produce a *errors.FormatError carrying the raw line.
func Parse(line string) (Record, error) {
	fields := strings.Split(line, fieldSep)

	switch len(fields) {
	case 2:
		switch fields[0] {
		case KindNotes.Tag():
			notes := strings.Split(fields[1], listSep)
			if len(notes) != Semitones {
				return nil, errors.NewFormatError(line,
					fmt.Sprintf("note scale has %d notes, want %d", len(notes), Semitones))
			}
			return NoteScale{Notes: notes}, nil
		case KindInstrument.Tag():
			return Instrument{Name: fields[1]}, nil
		}
	case 4:
		switch fields[0] {
		case KindTuning.Tag():
			return Tuning{
				Instrument: fields[1],
				Name:       fields[2],
				Offsets:    strings.Split(fields[3], listSep),
			}, nil
		case KindHighlight.Tag():
			return Highlight{
				Type:      fields[1],
				Name:      fields[2],
				Intervals: strings.Split(fields[3], listSep),
			}, nil
		}
	default:
		return nil, errors.NewFormatError(line, fmt.Sprintf("unexpected field count %d", len(fields)))
	}

	return nil, errors.NewFormatError(line,
		fmt.Sprintf("unknown tag %q for %d fields", fields[0], len(fields)))
}
