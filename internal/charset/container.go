package charset

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Signatures that open Unicode containers.
var (
	UTF8Signature    = []byte{0xEF, 0xBB, 0xBF}
	UTF16LESignature = []byte{0xFF, 0xFE}
	UTF16BESignature = []byte{0xFE, 0xFF}
)

// windows1252Undefined lists the bytes Windows-1252 leaves unassigned.
var windows1252Undefined = [256]bool{0x81: true, 0x8D: true, 0x8F: true, 0x90: true, 0x9D: true}

// HasUTF16Signature reports whether data opens with a UTF-16 byte order mark.
func HasUTF16Signature(data []byte) bool {
	return bytes.HasPrefix(data, UTF16LESignature) || bytes.HasPrefix(data, UTF16BESignature)
}

// TrimUTF8Signature drops a leading EF BB BF.
func TrimUTF8Signature(data []byte) []byte {
	return bytes.TrimPrefix(data, UTF8Signature)
}

// UTF16Encoding returns the x/text encoding selected by the byte order mark
// of data. Data without a mark is treated as little endian.
func UTF16Encoding(data []byte) encoding.Encoding {
	if bytes.HasPrefix(data, UTF16BESignature) {
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	}
	if bytes.HasPrefix(data, UTF16LESignature) {
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	}
	return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
}

// DecodeUTF16 decodes a UTF-16 buffer leniently; malformed units become
// U+FFFD. The byte order mark is consumed.
func DecodeUTF16(data []byte) []rune {
	out, err := UTF16Encoding(data).NewDecoder().Bytes(data)
	if err != nil {
		// The x/text UTF-16 decoder replaces bad units instead of failing;
		// an error here means a truncated trailing unit.
		out = append(out, []byte(string(utf8.RuneError))...)
	}
	return bytes.Runes(out)
}

// Latin1Byte reinterprets r as the ISO 8859-1 byte it was decoded from.
func Latin1Byte(r rune) (byte, bool) {
	return charmap.ISO8859_1.EncodeRune(r)
}

// Latin1Bytes reinterprets runes as ISO 8859-1 bytes. ok is false when any
// rune lies outside Latin-1; such runes are written as '?'.
func Latin1Bytes(runes []rune) (out []byte, ok bool) {
	out = make([]byte, len(runes))
	ok = true
	for i, r := range runes {
		b, fits := Latin1Byte(r)
		if !fits {
			b = '?'
			ok = false
		}
		out[i] = b
	}
	return out, ok
}

// DecodeWindows1252Byte maps b through Windows-1252. ok is false for the
// five bytes the code page leaves unassigned.
func DecodeWindows1252Byte(b byte) (rune, bool) {
	if windows1252Undefined[b] {
		return utf8.RuneError, false
	}
	return charmap.Windows1252.DecodeByte(b), true
}
