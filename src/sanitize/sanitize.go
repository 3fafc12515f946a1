// Package sanitize normalizes free text (contracts, resumes, job descriptions) read from
// files, terminals or tool calls before it reaches the analyzers.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Runs of horizontal whitespace
var spacePattern = regexp.MustCompile(`[ \t\f\v]+`)

// StripANSI removes ANSI escape sequences (CSI, OSC hyperlinks and the like),
// keeping printable text and control characters.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// Clean strips escape sequences and control characters, normalizes line endings,
// collapses horizontal whitespace within each line and trims the result.
func Clean(s string) string {
	s = StripANSI(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	s = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spacePattern.ReplaceAllString(line, " "))
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// CleanList cleans every entry and drops the ones left empty.
func CleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if c := Clean(item); c != "" {
			out = append(out, c)
		}
	}
	return out
}
