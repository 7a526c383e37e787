// Package resolve matches a Selection against a stream of data records and
// produces the four records a fretboard is computed from.
package resolve

import (
	"io"

	"github.com/Iron-Ham/fretsmart/internal/errors"
	"github.com/Iron-Ham/fretsmart/internal/logging"
	"github.com/Iron-Ham/fretsmart/internal/record"
	"github.com/Iron-Ham/fretsmart/internal/selection"
)

// Resolution is a fully resolved selection: one record of each kind, with the
// selection's root notes known to exist in Notes.
type Resolution struct {
	Selection  selection.Selection
	Notes      record.NoteScale
	Instrument record.Instrument
	Tuning     record.Tuning
	Highlight  record.Highlight
}

// TuningRoot returns the note scale position of the tuning's root note.
func (r *Resolution) TuningRoot() int {
	return r.Notes.Index(r.Selection.TuningNote)
}

// HighlightRoot returns the note scale position of the highlight's root note.
func (r *Resolution) HighlightRoot() int {
	return r.Notes.Index(r.Selection.HighlightNote)
}

// Resolver resolves selections against data streams. It holds no state
// between calls.
type Resolver struct {
	logger *logging.Logger
}

// New creates a Resolver. A nil logger disables logging.
func New(logger *logging.Logger) *Resolver {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Resolver{logger: logger.WithComponent("resolve")}
}

// slots holds at most one record per kind during a scan. A filled slot is
// never replaced.
type slots struct {
	notes      *record.NoteScale
	instrument *record.Instrument
	tuning     *record.Tuning
	highlight  *record.Highlight
}

// offer fills the slot for rec if it is empty and rec matches sel. It
// reports whether the record was taken.
func (s *slots) offer(rec record.Record, sel selection.Selection) bool {
	switch r := rec.(type) {
	case record.NoteScale:
		if s.notes == nil {
			s.notes = &r
			return true
		}
	case record.Instrument:
		if s.instrument == nil && r.Name == sel.Instrument {
			s.instrument = &r
			return true
		}
	case record.Tuning:
		if s.tuning == nil && r.Instrument == sel.Instrument && r.Name == sel.Tuning {
			s.tuning = &r
			return true
		}
	case record.Highlight:
		if s.highlight == nil && r.Type == sel.HighlightType && r.Name == sel.Highlight {
			s.highlight = &r
			return true
		}
	}
	return false
}

// Resolve scans src once and returns the records matching sel. source names
// the stream in error messages (typically the data file path).
//
// A line that fails to parse aborts the scan with a *errors.FormatError.
// After a complete scan, a missing note scale yields a corrupt-data
// *errors.NotFoundError, and unmatched criteria yield a *errors.NotFoundError
// listing them. Root notes absent from the note scale yield an
// *errors.InvalidNoteError.
func (r *Resolver) Resolve(src io.Reader, source string, sel selection.Selection) (*Resolution, error) {
	logger := r.logger.With("source", source)
	logger.Debug("resolving selection", "selection", sel.String())

	var s slots
	err := record.Scan(src, func(n int, rec record.Record) error {
		if s.offer(rec, sel) {
			logger.Debug("slot filled", "kind", rec.Kind().String(), "line", n)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.missing(source, sel); err != nil {
		return nil, err
	}

	res := &Resolution{
		Selection:  sel,
		Notes:      *s.notes,
		Instrument: *s.instrument,
		Tuning:     *s.tuning,
		Highlight:  *s.highlight,
	}

	if !res.Notes.Contains(sel.TuningNote) {
		return nil, errors.NewInvalidNoteError(selection.OptTuningNote, sel.TuningNote)
	}
	if !res.Notes.Contains(sel.HighlightNote) {
		return nil, errors.NewInvalidNoteError(selection.OptHighlightNote, sel.HighlightNote)
	}

	logger.Debug("selection resolved",
		"strings", len(res.Tuning.Offsets),
		"intervals", len(res.Highlight.Intervals))
	return res, nil
}

// missing reports the unfilled slots as a NotFoundError, or nil when every
// slot is filled. A missing note scale means the data itself is broken and
// takes precedence over unmatched criteria.
func (s *slots) missing(source string, sel selection.Selection) error {
	if s.notes == nil {
		return errors.NewNotFoundError(source).WithCorrupt("notes")
	}

	if s.instrument != nil && s.tuning != nil && s.highlight != nil {
		return nil
	}

	err := errors.NewNotFoundError(source)
	if s.instrument == nil {
		err.WithField(selection.OptInstrument, sel.Instrument)
	}
	if s.tuning == nil {
		if s.instrument != nil {
			err.WithField(selection.OptInstrument, sel.Instrument)
		}
		err.WithField(selection.OptTuning, sel.Tuning)
	}
	if s.highlight == nil {
		err.WithField(selection.OptHighlightType, sel.HighlightType)
		err.WithField(selection.OptHighlight, sel.Highlight)
	}
	return err
}
