// Package fretboard computes the note at every string and fret position of
// a resolved selection and renders it as a text diagram.
package fretboard

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/logging"
	"github.com/Iron-Ham/fretsmart/internal/record"
	"github.com/Iron-Ham/fretsmart/internal/resolve"
	"github.com/Iron-Ham/fretsmart/internal/util"
)

const (
	// DefaultFrets is the highest fret drawn when Options.Frets is unset.
	DefaultFrets = 24
	// MaxFrets is the highest fret count accepted.
	MaxFrets = 36

	minCellWidth = 3
	cellPadding  = 2
)

// Options controls fretboard computation.
type Options struct {
	// Frets is the highest fret drawn, inclusive. Zero means DefaultFrets.
	Frets int
	// StrictNumbers makes malformed offsets and intervals an error instead
	// of being read as 0.
	StrictNumbers bool
	// Logger receives numeric fallback warnings. Nil disables logging.
	Logger *logging.Logger
}

// Cell is one string and fret position.
type Cell struct {
	Fret        int
	Note        string
	Highlighted bool
}

// Row is one string of the instrument.
type Row struct {
	Offset int
	Cells  []Cell
}

// Board is a computed fretboard, ready to render.
type Board struct {
	Frets int
	// Highlighted lists the highlighted note names in interval order,
	// without duplicates.
	Highlighted []string
	Rows        []Row
	// NoteWidth is the visual width of the widest note name in the scale.
	NoteWidth int
}

// IsHighlighted reports whether note is one of the highlighted notes.
func (b *Board) IsHighlighted(note string) bool {
	return slices.Contains(b.Highlighted, note)
}

// CellWidth returns the width every cell is padded to.
func (b *Board) CellWidth() int {
	return max(b.NoteWidth+cellPadding, minCellWidth)
}

// IsInlay reports whether fret carries a position marker on a real neck:
// 0, 3, 5, 7 and their octaves.
func IsInlay(fret int) bool {
	switch fret % record.Semitones {
	case 0, 3, 5, 7:
		return true
	}
	return false
}

// Compute builds the board for res.
func Compute(res *resolve.Resolution, opts Options) (*Board, error) {
	frets := opts.Frets
	if frets == 0 {
		frets = DefaultFrets
	}
	if frets < 1 || frets > MaxFrets {
		return nil, fmt.Errorf("fret count %d out of range 1..%d", frets, MaxFrets)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NopLogger()
	}
	logger = logger.WithComponent("fretboard")

	nums := numbers{strict: opts.StrictNumbers, logger: logger}
	notes := res.Notes
	tuningRoot := res.TuningRoot()
	highlightRoot := res.HighlightRoot()

	b := &Board{Frets: frets}
	for _, n := range notes.Notes {
		b.NoteWidth = max(b.NoteWidth, util.Width(n))
	}

	for i, raw := range res.Highlight.Intervals {
		interval, err := nums.parse(record.KindHighlight, res.Highlight.Name, i, raw)
		if err != nil {
			return nil, err
		}
		note := notes.At(interval + highlightRoot)
		if !b.IsHighlighted(note) {
			b.Highlighted = append(b.Highlighted, note)
		}
	}

	b.Rows = make([]Row, 0, len(res.Tuning.Offsets))
	for i, raw := range res.Tuning.Offsets {
		offset, err := nums.parse(record.KindTuning, res.Tuning.Name, i, raw)
		if err != nil {
			return nil, err
		}
		row := Row{Offset: offset, Cells: make([]Cell, 0, frets+1)}
		for f := 0; f <= frets; f++ {
			note := notes.At(offset + tuningRoot + f)
			row.Cells = append(row.Cells, Cell{
				Fret:        f,
				Note:        note,
				Highlighted: b.IsHighlighted(note),
			})
		}
		b.Rows = append(b.Rows, row)
	}

	logger.Debug("board computed",
		"strings", len(b.Rows),
		"frets", frets,
		"highlighted", len(b.Highlighted))
	return b, nil
}

// numbers parses offset and interval fields.
type numbers struct {
	strict bool
	logger *logging.Logger
}

func (n numbers) parse(kind record.Kind, name string, position int, raw string) (int, error) {
	v, ok := record.ParseSemitone(raw)
	if ok {
		return v, nil
	}
	if n.strict {
		return 0, errors.NewNumberError(kind.String(), name, position, raw)
	}
	n.logger.Warn("invalid number read as 0",
		"record", kind.String(),
		"name", name,
		"position", position,
		"value", raw)
	return 0, nil
}
