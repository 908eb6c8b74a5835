// Package glyph classifies codepoints used by NFO and ANSI art.
//
// The same predicate drives block detection in the grid and line removal in
// the stripped view, so a document that reports blocks always loses exactly
// the lines built from those glyphs when it is stripped.
package glyph

// Unicode ranges of the decorative set.
const (
	BoxDrawingFirst = 0x2500 // ─
	BoxDrawingLast  = 0x257F // ╿
	BlockFirst      = 0x2580 // ▀
	BlockLast       = 0x259F // ▟
)

// extraDecorative holds glyphs outside the box and block ranges that CP437
// art uses as rule or fill characters.
var extraDecorative = map[rune]bool{
	0x25A0: true, // ■ (CP437 0xFE)
	0x2261: true, // ≡ (CP437 0xF0)
	0x2320: true, // ⌠ (CP437 0xF4)
	0x2321: true, // ⌡ (CP437 0xF5)
}

// IsDecorative reports whether r belongs to the decorative glyph set.
func IsDecorative(r rune) bool {
	if r >= BoxDrawingFirst && r <= BlockLast {
		return true
	}
	return extraDecorative[r]
}

// IsBlank reports whether r renders as empty space in a grid cell.
func IsBlank(r rune) bool {
	switch r {
	case ' ', '\t', 0x00A0, 0x0000:
		return true
	}
	return false
}

// IsDecorativeLine reports whether the line carries at least one decorative
// glyph and nothing else except blanks.
func IsDecorativeLine(line []rune) bool {
	seen := false
	for _, r := range line {
		if IsBlank(r) {
			continue
		}
		if !IsDecorative(r) {
			return false
		}
		seen = true
	}
	return seen
}

// LongestRun returns the length of the longest run of consecutive decorative
// glyphs in s.
func LongestRun(s []rune) int {
	longest, cur := 0, 0
	for _, r := range s {
		if IsDecorative(r) {
			cur++
			if cur > longest {
				longest = cur
			}
			continue
		}
		cur = 0
	}
	return longest
}
