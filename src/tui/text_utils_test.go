package tui

import (
	"strings"
	"testing"
)

func assertLineWidths(t *testing.T, text string, width int) {
	t.Helper()
	for i, line := range strings.Split(text, "\n") {
		if w := VisualWidth(line); w > width {
			t.Errorf("line %d exceeds width %d: width=%d, content=%q", i, width, w, line)
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{"fits", "Senior Developer", 20, "Senior Developer"},
		{"exact width", "Senior Developer", 16, "Senior Developer"},
		{"breaks on words", "Criminal Background Check required", 20, "Criminal Background\nCheck required"},
		{"collapses whitespace", "Drug   Screening", 20, "Drug Screening"},
		{"splits long word", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"long word after short", "to greenhouse-cand-1001", 10, "to\ngreenhouse\n-cand-1001"},
		{"empty", "", 20, ""},
		{"zero width keeps text", "Business Analyst", 0, "Business Analyst"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Wrap(tt.text, tt.width); got != tt.want {
				t.Errorf("Wrap(%q, %d) = %q, expected %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrap_LongIdentifierKeepsContent(t *testing.T) {
	text := "greenhouse-cand-1001,greenhouse-cand-1002,greenhouse-cand-1003,greenhouse-cand-1004"

	result := Wrap(text, 40)
	if strings.Count(result, "\n") < 2 {
		t.Errorf("expected long identifier list to span several lines, got %q", result)
	}
	assertLineWidths(t, result, 40)
	if strings.ReplaceAll(result, "\n", "") != text {
		t.Errorf("content changed while wrapping: %q", result)
	}
}

func TestWrap_MultiByteCharacters(t *testing.T) {
	text := "Recruiter notes 日本語 résumé reviewed 🎉 for the Austin placement"

	assertLineWidths(t, Wrap(text, 25), 25)
	assertLineWidths(t, Wrap("日本語日本語", 3), 3)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		maxLen   int
		ellipsis bool
		want     string
	}{
		{"short kept", "Remote", 10, true, "Remote"},
		{"trims spaces", "  Remote  ", 10, false, "Remote"},
		{"with ellipsis", "Senior Developer in Austin", 10, true, "Senior ..."},
		{"without ellipsis", "Senior Developer in Austin", 10, false, "Senior Dev"},
		{"too narrow for ellipsis", "Senior", 3, true, "Sen"},
		{"zero width", "Senior", 0, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.text, tt.maxLen, tt.ellipsis); got != tt.want {
				t.Errorf("Truncate(%q, %d, %v) = %q, expected %q", tt.text, tt.maxLen, tt.ellipsis, got, tt.want)
			}
		})
	}
}

func TestTruncateAndPad(t *testing.T) {
	for _, text := range []string{"lever", "project_management", "日本語"} {
		if got := VisualWidth(TruncateAndPad(text, 10, false)); got != 10 {
			t.Errorf("TruncateAndPad(%q) width = %d, expected 10", text, got)
		}
	}
}

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"short line kept", "recruiting", 20, "recruiting"},
		{"long line cut", "contract_compliance", 8, "contract"},
		{"each line clamped", "abcdef\nab", 3, "abc\nab"},
		{"zero width", "anything", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampWidth(tt.input, tt.width); got != tt.want {
				t.Errorf("ClampWidth(%q, %d) = %q, expected %q", tt.input, tt.width, got, tt.want)
			}
		})
	}
}

func TestClampWidth_IgnoresEscapes(t *testing.T) {
	styled := "\x1b[1mrecruiting\x1b[0m"

	if got := RenderedWidth(styled); got != 10 {
		t.Errorf("RenderedWidth = %d, expected 10", got)
	}
	if got := StripStyles(ClampWidth(styled, 20)); got != "recruiting" {
		t.Errorf("clamped text = %q, expected it unchanged", got)
	}
	if got := RenderedWidth(ClampWidth(styled, 4)); got != 4 {
		t.Errorf("clamped width = %d, expected 4", got)
	}
}

func TestSplitLines(t *testing.T) {
	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("expected no lines for empty text, got %q", got)
	}
	if got := SplitLines("a\nb"); len(got) != 2 {
		t.Errorf("expected 2 lines, got %q", got)
	}
}
