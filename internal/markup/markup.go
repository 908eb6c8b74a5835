// Package markup renders classic NFO text as an HTML fragment.
package markup

import (
	"html"
	"regexp"
	"strings"

	"github.com/stlalpha/nfoview/internal/ansiart"
	"github.com/stlalpha/nfoview/internal/strip"
)

// Color is a CSS hex color without the leading '#'.
type Color string

// CGA is the IBM Color Graphics Adapter palette in SGR order, dark half
// first.
var CGA = [16]Color{
	"000", "a00", "0a0", "a50", "00a", "a0a", "0aa", "aaa",
	"555", "f55", "5f5", "ff5", "55f", "f5f", "5ff", "fff",
}

// FG returns the CSS color declaration.
func (c Color) FG() string {
	if c == "" {
		return ""
	}
	return "color:#" + string(c) + ";"
}

// BG returns the CSS background-color declaration.
func (c Color) BG() string {
	if c == "" {
		return ""
	}
	return "background-color:#" + string(c) + ";"
}

var linkPattern = regexp.MustCompile(`(?i)\b(?:https?://|www\.)[^\s<>"'` + "`" + `]+`)

// trailingPunct is cut from the end of a link match.
const trailingPunct = `.,;:!?)]}`

// HTML wraps classic text in <pre class="nfo">, one output line per input
// line. Plain text gets its links turned into anchors; text with a styled
// color map gets CGA color spans instead.
func HTML(classic string, colors *ansiart.ColorMap) string {
	var b strings.Builder
	b.WriteString(`<pre class="nfo">` + "\n")
	for row, line := range strip.SplitLines(classic) {
		if colors.Styled() {
			writeColored(&b, line, row, colors)
		} else {
			writeLinked(&b, line)
		}
		b.WriteByte('\n')
	}
	b.WriteString("</pre>\n")
	return b.String()
}

func writeLinked(b *strings.Builder, line string) {
	last := 0
	for _, m := range linkPattern.FindAllStringIndex(line, -1) {
		start, end := m[0], m[1]
		end = start + len(strings.TrimRight(line[start:end], trailingPunct))
		if end <= start {
			continue
		}
		url := line[start:end]
		href := url
		if !strings.Contains(strings.ToLower(url), "://") {
			href = "http://" + url
		}
		b.WriteString(html.EscapeString(line[last:start]))
		b.WriteString(`<a href="` + html.EscapeString(href) + `">`)
		b.WriteString(html.EscapeString(url))
		b.WriteString("</a>")
		last = end
	}
	b.WriteString(html.EscapeString(line[last:]))
}

// writeColored emits runs of identically styled cells as spans. Cells that
// were never written or carry no styling are emitted bare.
func writeColored(b *strings.Builder, line string, row int, colors *ansiart.ColorMap) {
	var run strings.Builder
	style := ""
	flush := func() {
		if run.Len() == 0 {
			return
		}
		text := html.EscapeString(run.String())
		if style == "" {
			b.WriteString(text)
		} else {
			b.WriteString(`<span style="` + style + `">` + text + "</span>")
		}
		run.Reset()
	}

	col := 0
	for _, r := range line {
		s := ""
		if a, ok := colors.At(row, col); ok {
			s = Style(a, colors.IceColors)
		}
		if s != style {
			flush()
			style = s
		}
		run.WriteRune(r)
		col++
	}
	flush()
}

// Style returns the inline CSS for a, or "" for the default attribute.
func Style(a ansiart.Attr, ice bool) string {
	var s string
	if i := a.ColorIndex(); i >= 0 {
		s += CGA[i].FG()
	} else if a.Bold {
		s += CGA[15].FG()
	}
	if i := a.BackgroundIndex(ice); i >= 0 {
		s += CGA[i].BG()
	}
	return s
}
