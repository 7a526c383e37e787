package fretboard

import (
	"io"
	"strconv"
	"strings"

	"github.com/Iron-Ham/fretsmart/internal/styles"
	"github.com/Iron-Ham/fretsmart/internal/util"
)

const separator = "|"

// Render writes the diagram for b to w: a header of fret numbers followed
// by one line per string. Highlighted notes go through st; a nil st renders
// without emphasis. The diagram is assembled in full before it is written.
func Render(w io.Writer, b *Board, st *styles.Styles) error {
	if st == nil {
		st = styles.Plain()
	}
	width := b.CellWidth()

	var sb strings.Builder
	for f := 0; f <= b.Frets; f++ {
		writeCell(&sb, strconv.Itoa(f), width, f)
	}
	sb.WriteByte('\n')

	for _, row := range b.Rows {
		for _, c := range row.Cells {
			text := c.Note
			if c.Highlighted {
				text = st.Highlight(c.Note)
			}
			writeCell(&sb, text, width, c.Fret)
		}
		sb.WriteByte('\n')
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func writeCell(sb *strings.Builder, text string, width, fret int) {
	sb.WriteString(util.Center(text, width))
	sb.WriteString(separator)
	if IsInlay(fret) {
		sb.WriteString(separator)
	}
}
