package terminalio

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/transform"

	"github.com/stlalpha/nfoview/internal/charset"
)

// cp437Encoder transforms UTF-8 into CP437 bytes. 7-bit input, ANSI escape
// sequences included, passes through untouched; runes without a CP437
// glyph become '?'.
type cp437Encoder struct{ transform.NopResetter }

// CP437Encoder returns a transformer from UTF-8 to CP437.
func CP437Encoder() transform.Transformer {
	return cp437Encoder{}
}

func (cp437Encoder) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		b := src[nSrc]
		if b < utf8.RuneSelf {
			dst[nDst] = b
			nDst++
			nSrc++
			continue
		}
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		out, ok := charset.EncodeCP437Rune(r)
		if !ok {
			out = '?'
		}
		dst[nDst] = out
		nDst++
		nSrc += size
	}
	return nDst, nSrc, nil
}

// NewCP437Writer wraps w so that UTF-8 written to it arrives as CP437.
// Close flushes a trailing partial rune.
func NewCP437Writer(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, CP437Encoder())
}
