package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const ellipsis = "..."

// VisualWidth returns the display width of plain text.
func VisualWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate trims s and cuts it to at most maxLen cells, optionally ending in "...".
func Truncate(s string, maxLen int, withEllipsis bool) string {
	s = strings.TrimSpace(s)
	switch {
	case maxLen <= 0:
		return ""
	case VisualWidth(s) <= maxLen:
		return s
	case withEllipsis && maxLen > len(ellipsis):
		return runewidth.Truncate(s, maxLen, ellipsis)
	}
	return runewidth.Truncate(s, maxLen, "")
}

// TruncateAndPad truncates s and right-pads it to exactly width cells for table columns.
func TruncateAndPad(s string, width int, withEllipsis bool) string {
	return runewidth.FillRight(Truncate(s, width, withEllipsis), width)
}

// Wrap breaks text into lines of at most width cells on word boundaries.
// Words wider than a line are split across lines.
func Wrap(text string, width int) string {
	words := strings.Fields(text)
	if width <= 0 || len(words) == 0 {
		return text
	}

	var lines []string
	var line strings.Builder
	lineWidth := 0
	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
			lineWidth = 0
		}
	}

	for _, word := range words {
		for VisualWidth(word) > width {
			flush()
			head := runewidth.Truncate(word, width, "")
			if head == "" {
				// A single rune wider than the line; emit it alone.
				r := []rune(word)
				head = string(r[0])
			}
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}

		w := VisualWidth(word)
		if lineWidth > 0 && lineWidth+1+w > width {
			flush()
		}
		if lineWidth > 0 {
			line.WriteByte(' ')
			lineWidth++
		}
		line.WriteString(word)
		lineWidth += w
	}
	flush()

	return strings.Join(lines, "\n")
}

// SplitLines splits text by newlines, returning empty slice if text is empty
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

// RenderedWidth returns the display width of styled text, ignoring escape sequences.
func RenderedWidth(s string) int {
	return ansi.StringWidth(s)
}

// ClampWidth cuts every line of styled text to at most width cells.
func ClampWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > width {
			lines[i] = ansi.Truncate(line, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

// StripStyles removes terminal escape sequences from rendered output.
func StripStyles(s string) string {
	return ansi.Strip(s)
}
