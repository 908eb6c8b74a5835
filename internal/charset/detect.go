package charset

import (
	"bytes"
	"unicode/utf8"

	"github.com/stlalpha/nfoview/internal/glyph"
	"github.com/stlalpha/nfoview/internal/logging"
)

// Detection thresholds.
const (
	// MinFingerprint is the number of Latin-1 runes that must map to CP437
	// decorative glyphs before a UTF-8 or UTF-16 text counts as wrapped CP437.
	MinFingerprint = 4
	// fingerprintRun is the shortest consecutive run of such runes required,
	// which keeps German prose such as "ÄÖÜ" out.
	fingerprintRun = 4
	// MinMixedSequences is the number of valid multi-byte UTF-8 sequences
	// encoding decorative glyphs that marks a non-UTF-8 buffer as double
	// encoded.
	MinMixedSequences = 4
)

// Detect classifies data into exactly one Charset. It never fails: buffers
// that match nothing more specific are treated as Windows-1252.
func Detect(data []byte) Charset {
	cs := detect(data)
	logging.Debug("charset detection: %d bytes -> %s", len(data), cs)
	return cs
}

func detect(data []byte) Charset {
	switch {
	case HasUTF16Signature(data):
		if hasCP437Fingerprint(DecodeUTF16(data)) {
			return CP437InUTF16
		}
		return UTF16
	case bytes.HasPrefix(data, UTF8Signature):
		body := TrimUTF8Signature(data)
		if utf8.Valid(body) {
			if cs, ok := detectLayers(body); ok {
				return cs
			}
		}
		return UTF8Sig
	case utf8.Valid(data):
		if isASCII(data) {
			if HasGlyphControls(data) {
				return CP437Strict
			}
			return UTF8
		}
		if cs, ok := detectLayers(data); ok {
			return cs
		}
		return UTF8
	}
	return detectSingleByte(data)
}

// detectLayers looks for CP437 content hidden below one or two UTF-8
// layers. data must be valid UTF-8. The deeper layout is tested first since
// the outer layer of a triple-encoded file does not carry a clean
// fingerprint of its own. Nothing below two layers is unwrapped.
func detectLayers(data []byte) (Charset, bool) {
	outer := bytes.Runes(data)
	inner, ok := Latin1Bytes(outer)
	if !ok {
		// Runes beyond Latin-1 mean genuine Unicode text.
		return Unknown, false
	}
	if !isASCII(inner) && utf8.Valid(inner) && hasCP437Fingerprint(bytes.Runes(inner)) {
		return CP437InCP437InUTF8, true
	}
	if hasCP437Fingerprint(outer) {
		return CP437InUTF8, true
	}
	return Unknown, false
}

// hasCP437Fingerprint reports whether runes look like CP437 bytes that were
// read as Latin-1: every rune fits Latin-1 and enough of the high ones land
// on box drawing or shading glyphs when used as CP437 indices.
func hasCP437Fingerprint(runes []rune) bool {
	high, deco, run, longest := 0, 0, 0, 0
	for _, r := range runes {
		if r > 0xFF {
			return false
		}
		if r < 0x80 {
			run = 0
			continue
		}
		high++
		if glyph.IsDecorative(CP437Table[r]) {
			deco++
			run++
			if run > longest {
				longest = run
			}
		} else {
			run = 0
		}
	}
	return deco >= MinFingerprint && deco*2 >= high && longest >= fingerprintRun
}

// countMixedSequences counts valid multi-byte UTF-8 sequences in data that
// encode decorative glyphs.
func countMixedSequences(data []byte) int {
	count := 0
	for i := 0; i < len(data); {
		if data[i] < 0xC2 {
			i++
			continue
		}
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError || size < 2 {
			i++
			continue
		}
		if glyph.IsDecorative(r) {
			count++
		}
		i += size
	}
	return count
}

// detectSingleByte picks between the single-byte code pages for a buffer
// that is not valid UTF-8.
func detectSingleByte(data []byte) Charset {
	if countMixedSequences(data) >= MinMixedSequences {
		return CP437InCP437
	}
	if HasGlyphControls(data) {
		return CP437Strict
	}

	high, box := 0, 0
	undefined := false
	for _, b := range data {
		if b < 0x80 {
			continue
		}
		high++
		if (b >= 0xB0 && b <= 0xDF) || b == 0xFE {
			box++
		}
		if windows1252Undefined[b] {
			undefined = true
		}
	}
	if undefined || box*2 >= high {
		return CP437
	}
	return Windows1252
}
