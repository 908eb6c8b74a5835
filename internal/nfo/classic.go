package nfo

import (
	"strings"
	"unicode"
)

// DefaultTabWidth is used when the configured width is not positive.
const DefaultTabWidth = 8

// eofRune is the DOS end-of-file marker as decoded from Unicode sources.
const eofRune = '\x1a'

// normalize turns decoded runes into LF-separated text: a literal EOF rune
// ends the text, CRLF and lone CR become LF and tabs expand to the next
// multiple of tabWidth.
func normalize(runes []rune, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	var b strings.Builder
	b.Grow(len(runes))
	col := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch r {
		case eofRune:
			return b.String()
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
			b.WriteByte('\n')
			col = 0
		case '\n':
			b.WriteByte('\n')
			col = 0
		case '\t':
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// finalize trims trailing whitespace from every line, drops trailing blank
// lines and terminates every remaining line with LF.
func finalize(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRightFunc(l, unicode.IsSpace)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
