// Package styles renders the emphasis applied to highlighted notes on the
// fretboard diagram.
package styles

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode selects how highlighted notes are emphasized.
type Mode string

const (
	// ModeAuto uses color on terminals and brackets everywhere else.
	ModeAuto Mode = "auto"
	// ModeColor renders highlighted notes bold in the highlight color.
	ModeColor Mode = "color"
	// ModeBrackets wraps highlighted notes in square brackets.
	ModeBrackets Mode = "brackets"
	// ModePlain applies no emphasis.
	ModePlain Mode = "plain"
)

// DefaultHighlightColor is ANSI red.
const DefaultHighlightColor = "1"

// Modes returns the valid mode names.
func Modes() []string {
	return []string{string(ModeAuto), string(ModeColor), string(ModeBrackets), string(ModePlain)}
}

// ParseMode converts a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	switch m {
	case ModeAuto, ModeColor, ModeBrackets, ModePlain:
		return m, nil
	}
	return "", fmt.Errorf("unknown style %q (valid: %s)", s, strings.Join(Modes(), ", "))
}

// Styles holds the resolved emphasis for one output stream.
type Styles struct {
	mode      Mode
	highlight lipgloss.Style
}

// New resolves mode against out and returns the matching Styles. ModeAuto
// becomes ModeColor when out is a terminal and color is not disabled
// through NO_COLOR, and ModeBrackets otherwise. color is any lipgloss
// color; empty means DefaultHighlightColor.
func New(mode Mode, color string, out io.Writer) *Styles {
	if mode == ModeAuto || mode == "" {
		mode = ModeBrackets
		if isTerminal(out) && !termenv.EnvNoColor() {
			mode = ModeColor
		}
	}
	if color == "" {
		color = DefaultHighlightColor
	}

	s := &Styles{mode: mode}
	if mode == ModeColor {
		// The diagram is emitted with plain ANSI codes regardless of what
		// the environment advertises.
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI)
		s.highlight = r.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
	}
	return s
}

// Plain returns Styles that apply no emphasis.
func Plain() *Styles {
	return &Styles{mode: ModePlain}
}

// Mode returns the effective mode, never ModeAuto.
func (s *Styles) Mode() Mode {
	return s.mode
}

// Highlight returns note with emphasis applied.
func (s *Styles) Highlight(note string) string {
	switch s.mode {
	case ModeColor:
		return s.highlight.Render(note)
	case ModeBrackets:
		return "[" + note + "]"
	default:
		return note
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
