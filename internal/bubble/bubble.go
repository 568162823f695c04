// Package bubble wraps reply text and frames it in an ASCII speech bubble.
package bubble

import (
	"strings"
)

// DefaultWidth is the wrap width used by Render.
const DefaultWidth = 60

// Wrap breaks text into lines no wider than maxWidth, breaking only between
// words. Original whitespace, including newlines, is discarded. A word longer
// than maxWidth is kept whole on its own line.
func Wrap(text string, maxWidth int) []string {
	var lines []string
	current := ""

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}

		if len(candidate) <= maxWidth {
			current = candidate
			continue
		}

		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// Render wraps text at DefaultWidth and frames it in a speech bubble.
func Render(text string) string {
	return RenderWidth(text, DefaultWidth)
}

// RenderWidth wraps text at width and frames it in a speech bubble sized to
// the longest wrapped line. Non-positive widths fall back to DefaultWidth.
//
//	 ____
//	/ hi \
//	 ----
func RenderWidth(text string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	lines := Wrap(text, width)
	maxWidth := 0
	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	out := make([]string, 0, len(lines)+2)
	out = append(out, " "+strings.Repeat("_", maxWidth+2))
	for _, line := range lines {
		out = append(out, "/ "+line+strings.Repeat(" ", maxWidth-len(line))+" \\")
	}
	out = append(out, " "+strings.Repeat("-", maxWidth+2))

	return strings.Join(out, "\n")
}

// Clean strips surrounding whitespace and quote characters that models tend
// to wrap their replies in.
func Clean(message string) string {
	cleaned := strings.TrimSpace(message)
	cleaned = strings.Trim(cleaned, `"`)
	return strings.TrimSpace(cleaned)
}
