// Package util provides shared utility functions used across the codebase.
package util

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Width returns the visual column width of s. ANSI escape codes take no
// columns and wide characters take two.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Center pads s with spaces to width visual columns, placing any odd
// column on the right. Strings already at least width wide are returned
// unchanged.
func Center(s string, width int) string {
	gap := width - ansi.StringWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}
