// Package strip removes decorative framing from NFO text, leaving the prose.
package strip

import (
	"strings"

	"github.com/stlalpha/nfoview/internal/glyph"
)

// Text strips s line by line. The result has every line LF-terminated and
// Text(Text(s)) == Text(s).
func Text(s string) string {
	lines := Lines(SplitLines(s))
	if len(lines) == 0 {
		return ""
	}
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines applies the strip rules to lines that carry no terminators:
// decorative lines go, prose loses framing at both edges, runs of blank
// lines collapse to one and blank lines at either end are removed.
func Lines(lines []string) []string {
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		if glyph.IsDecorativeLine([]rune(line)) {
			continue
		}
		line = strings.TrimFunc(line, isFraming)
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return out
}

// SplitLines splits s on LF. A trailing LF does not open an extra line.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func isFraming(r rune) bool {
	return glyph.IsDecorative(r) || glyph.IsBlank(r) || r == '\r'
}
