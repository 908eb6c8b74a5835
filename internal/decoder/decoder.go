// Package decoder turns raw NFO bytes into Unicode codepoints for a detected
// charset, unwrapping CP437 that was saved through Latin-1 one or more times.
package decoder

import (
	"bytes"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/stlalpha/nfoview/internal/charset"
	"github.com/stlalpha/nfoview/internal/logging"
	"github.com/stlalpha/nfoview/internal/strip"
)

// Options controls a decode.
type Options struct {
	// Strict makes undecodable input an error instead of U+FFFD.
	Strict bool
	// StripDecoration runs the decoded text through the strip pass.
	StripDecoration bool
}

// Decoded is the result of a decode. Callers must not modify Runes.
type Decoded struct {
	Runes   []rune
	Charset charset.Charset
}

// String returns the decoded text.
func (d *Decoded) String() string {
	if d == nil {
		return ""
	}
	return string(d.Runes)
}

// Decode converts data to codepoints according to cs. In lenient mode it
// always succeeds and consumes the whole input.
func Decode(data []byte, cs charset.Charset, opts Options) (*Decoded, error) {
	runes, err := decode(data, cs, opts.Strict)
	if err != nil {
		return nil, err
	}
	if opts.StripDecoration {
		runes = []rune(strip.Text(string(runes)))
	}
	return &Decoded{Runes: runes, Charset: cs}, nil
}

// DecodeStripped feeds already decoded classic text back through the UTF-8
// path with the strip pass enabled.
func DecodeStripped(classic string) *Decoded {
	d, err := Decode([]byte(classic), charset.UTF8, Options{StripDecoration: true})
	if err != nil {
		// Lenient decoding does not fail.
		return &Decoded{Charset: charset.UTF8}
	}
	return d
}

func decode(data []byte, cs charset.Charset, strict bool) ([]rune, error) {
	if !cs.Valid() {
		if strict {
			return nil, &DecodeError{Reason: UnsupportedCharset, Charset: cs}
		}
		logging.Debug("decode: charset %d unsupported, using CP 437 table", uint8(cs))
		return charset.DecodeCP437(data), nil
	}

	switch cs {
	case charset.UTF8, charset.UTF8Sig:
		return decodeUTF8(data, cs, strict)
	case charset.UTF16:
		return decodeUTF16(data, cs, strict)
	case charset.CP437, charset.CP437Strict:
		return charset.DecodeCP437(data), nil
	case charset.Windows1252:
		return decodeWindows1252(data, strict)
	case charset.CP437InCP437:
		return decodeMixed(data), nil
	}
	return decodeLayered(data, cs, strict)
}

// decodeLayered handles the charsets whose CP437 bytes sit below one or more
// Latin-1 reinterpretations inside a Unicode container.
func decodeLayered(data []byte, cs charset.Charset, strict bool) ([]rune, error) {
	var (
		runes []rune
		err   error
	)
	if cs == charset.CP437InUTF16 {
		runes, err = decodeUTF16(data, cs, strict)
	} else {
		runes, err = decodeUTF8(data, cs, strict)
	}
	if err != nil {
		return nil, err
	}

	layers := cs.Layers()
	for layer := 1; layer <= layers; layer++ {
		final := layer == layers
		raw, unmapped := latin1Layer(runes, !final)
		if len(unmapped) > 0 && strict {
			return nil, &DecodeError{Reason: InvalidSequence, Charset: cs, Layer: layer, Offset: unmapped[0]}
		}
		if !final {
			if runes, err = decodeUTF8Layer(raw, cs, layer, strict); err != nil {
				return nil, err
			}
			continue
		}
		runes = charset.DecodeCP437(raw)
		for _, i := range unmapped {
			runes[i] = utf8.RuneError
		}
	}
	logging.Debug("decode %s: unwrapped %d layer(s)", cs, layers)
	return runes, nil
}

// latin1Layer reinterprets runes as the Latin-1 bytes they were decoded
// from. unmapped holds the rune indices that fall outside Latin-1. Such runes
// are written as U+FFFD in UTF-8 when another UTF-8 layer follows, otherwise
// as a single '?' the caller replaces after decoding.
func latin1Layer(runes []rune, nextIsUTF8 bool) (raw []byte, unmapped []int) {
	raw = make([]byte, 0, len(runes))
	for i, r := range runes {
		b, ok := charset.Latin1Byte(r)
		if ok {
			raw = append(raw, b)
			continue
		}
		unmapped = append(unmapped, i)
		if nextIsUTF8 {
			raw = utf8.AppendRune(raw, utf8.RuneError)
		} else {
			raw = append(raw, '?')
		}
	}
	return raw, unmapped
}

func decodeUTF8(data []byte, cs charset.Charset, strict bool) ([]rune, error) {
	skip := 0
	if bytes.HasPrefix(data, charset.UTF8Signature) {
		skip = len(charset.UTF8Signature)
	}
	runes, bad := utf8Runes(data[skip:])
	if bad >= 0 && strict {
		return nil, &DecodeError{Reason: InvalidSequence, Charset: cs, Offset: skip + bad}
	}
	return runes, nil
}

func decodeUTF8Layer(data []byte, cs charset.Charset, layer int, strict bool) ([]rune, error) {
	runes, bad := utf8Runes(data)
	if bad >= 0 && strict {
		return nil, &DecodeError{Reason: InvalidSequence, Charset: cs, Layer: layer, Offset: bad}
	}
	return runes, nil
}

// utf8Runes decodes data emitting one U+FFFD per invalid byte. bad is the
// offset of the first invalid byte, or -1.
func utf8Runes(data []byte) (runes []rune, bad int) {
	runes = make([]rune, 0, len(data))
	bad = -1
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			if bad < 0 {
				bad = i
			}
			runes = append(runes, utf8.RuneError)
			i++
			continue
		}
		runes = append(runes, r)
		i += size
	}
	return runes, bad
}

func decodeUTF16(data []byte, cs charset.Charset, strict bool) ([]rune, error) {
	if strict {
		if off := invalidUTF16(data); off >= 0 {
			return nil, &DecodeError{Reason: InvalidSequence, Charset: cs, Offset: off}
		}
	}
	return charset.DecodeUTF16(data), nil
}

// invalidUTF16 returns the byte offset of the first unpaired surrogate or
// odd trailing byte in data, or -1 when the buffer is well formed.
func invalidUTF16(data []byte) int {
	bigEndian := bytes.HasPrefix(data, charset.UTF16BESignature)
	start := 0
	if charset.HasUTF16Signature(data) {
		start = 2
	}
	unit := func(i int) uint16 {
		if bigEndian {
			return uint16(data[i])<<8 | uint16(data[i+1])
		}
		return uint16(data[i+1])<<8 | uint16(data[i])
	}

	i := start
	for ; i+1 < len(data); i += 2 {
		u := rune(unit(i))
		if !utf16.IsSurrogate(u) {
			continue
		}
		if u >= 0xDC00 || i+3 >= len(data) {
			return i
		}
		if utf16.DecodeRune(u, rune(unit(i+2))) == utf8.RuneError {
			return i
		}
		i += 2
	}
	if i < len(data) {
		return i
	}
	return -1
}

func decodeWindows1252(data []byte, strict bool) ([]rune, error) {
	runes := make([]rune, len(data))
	for i, b := range data {
		r, ok := charset.DecodeWindows1252Byte(b)
		if !ok && strict {
			return nil, &DecodeError{Reason: InvalidSequence, Charset: charset.Windows1252, Offset: i}
		}
		runes[i] = r
	}
	return runes, nil
}

// decodeMixed decodes a buffer where UTF-8 art was partly re-saved as raw
// CP437: valid multi-byte sequences are UTF-8, every other byte is CP437.
func decodeMixed(data []byte) []rune {
	runes := make([]rune, 0, len(data))
	for i := 0; i < len(data); {
		if data[i] >= 0xC2 {
			if r, size := utf8.DecodeRune(data[i:]); r != utf8.RuneError && size > 1 {
				runes = append(runes, r)
				i += size
				continue
			}
		}
		runes = append(runes, charset.CP437Table[data[i]])
		i++
	}
	return runes
}
