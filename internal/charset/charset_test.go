package charset

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/charmap"
)

// cp437Art is a small framed box as a DOS editor writes it.
var cp437Art = []byte{
	0xC9, 0xCD, 0xCD, 0xCD, 0xCD, 0xCD, 0xCD, 0xBB, '\r', '\n',
	0xBA, ' ', 'h', 'i', ' ', ' ', ' ', 0xBA, '\r', '\n',
	0xC8, 0xCD, 0xCD, 0xCD, 0xCD, 0xCD, 0xCD, 0xBC, '\r', '\n',
}

// wrapLatin1UTF8 simulates a tool that reads data as Latin-1 and saves UTF-8.
func wrapLatin1UTF8(data []byte) []byte {
	var buf bytes.Buffer
	for _, b := range data {
		buf.WriteRune(rune(b))
	}
	return buf.Bytes()
}

// wrapLatin1UTF16LE simulates the same tool saving UTF-16 with a BOM.
func wrapLatin1UTF16LE(data []byte) []byte {
	out := []byte{0xFF, 0xFE}
	for _, b := range data {
		out = append(out, b, 0x00)
	}
	return out
}

func TestCharsetString(t *testing.T) {
	want := map[Charset]string{
		UTF16:              "UTF-16",
		UTF8Sig:            "UTF-8 (Signature)",
		UTF8:               "UTF-8",
		CP437:              "CP 437",
		CP437InUTF8:        "CP 437 (in UTF-8)",
		CP437InUTF16:       "CP 437 (in UTF-16)",
		CP437Strict:        "CP 437 (strict mode)",
		Windows1252:        "Windows-1252",
		CP437InCP437:       "CP 437 (double encoded)",
		CP437InCP437InUTF8: "CP 437 (double encoded + UTF-8)",
		Unknown:            "(unknown)",
		Charset(200):       "(unknown)",
	}
	for cs, label := range want {
		if got := cs.String(); got != label {
			t.Errorf("Charset(%d).String() = %q, want %q", cs, got, label)
		}
	}
	if len(All()) != 10 {
		t.Errorf("All() has %d entries, want 10", len(All()))
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Charset
		wantErr bool
	}{
		{"cp437", CP437, false},
		{"UTF-8", UTF8, false},
		{"  windows-1252 ", Windows1252, false},
		{"CP 437 (double encoded + UTF-8)", CP437InCP437InUTF8, false},
		{"cp 437 (in utf-16)", CP437InUTF16, false},
		{"ebcdic", Unknown, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCP437TableRoundTrip(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}
	encoded, missing := EncodeCP437(DecodeCP437(all))
	if missing != 0 {
		t.Fatalf("EncodeCP437 reported %d unmapped runes", missing)
	}
	if !bytes.Equal(encoded, all) {
		t.Fatalf("round trip mismatch:\n got %x\nwant %x", encoded, all)
	}
}

func TestCP437TableMatchesXText(t *testing.T) {
	for b := 0x20; b <= 0xFF; b++ {
		if b == 0x7F {
			continue // DEL is shown as ⌂, x/text keeps the control
		}
		want := charmap.CodePage437.DecodeByte(byte(b))
		if got := CP437Table[b]; got != want {
			t.Errorf("CP437Table[0x%02X] = %U, x/text has %U", b, got, want)
		}
	}
}

func TestCP437TableKeepsLineControls(t *testing.T) {
	for _, b := range []byte{'\t', '\n', '\r'} {
		if CP437Table[b] != rune(b) {
			t.Errorf("CP437Table[0x%02X] = %U, want the control itself", b, CP437Table[b])
		}
	}
	if CP437Table[0x1B] != '←' {
		t.Errorf("ESC should decode to ←, got %U", CP437Table[0x1B])
	}
}

func TestDetect(t *testing.T) {
	german := []byte("Straße Grüße ÄÖÜ\n")
	triple := wrapLatin1UTF8(wrapLatin1UTF8(cp437Art))
	mixed := append([]byte("████▀▀▄▄ art "), 0xDB, ' ', 0xB1, '\n')

	tests := []struct {
		name  string
		input []byte
		want  Charset
	}{
		{"empty", nil, UTF8},
		{"ascii", []byte("Hello\nWorld\n"), UTF8},
		{"unicode prose", []byte("héllo wörld ☺\n"), UTF8},
		{"unicode box art", []byte("╔════╗\n║ hi ║\n╚════╝\n"), UTF8},
		{"german latin-1 letters", german, UTF8},
		{"utf-8 signature", append([]byte{0xEF, 0xBB, 0xBF}, "Hello"...), UTF8Sig},
		{"utf-16 little endian", []byte{0xFF, 0xFE, 'H', 0, 'i', 0}, UTF16},
		{"utf-16 big endian", []byte{0xFE, 0xFF, 0, 'H', 0, 'i'}, UTF16},
		{"cp437 art", cp437Art, CP437},
		{"cp437 rule", append(bytes.Repeat([]byte{0xC4}, 80), "\r\nprose\r\n"...), CP437},
		{"cp437 undefined in 1252", []byte("\x81ber alles\r\n"), CP437},
		{"cp437 in utf-8", wrapLatin1UTF8(cp437Art), CP437InUTF8},
		{"cp437 in utf-8 with signature", append([]byte{0xEF, 0xBB, 0xBF}, wrapLatin1UTF8(cp437Art)...), CP437InUTF8},
		{"cp437 in utf-16", wrapLatin1UTF16LE(cp437Art), CP437InUTF16},
		{"cp437 in cp437 in utf-8", triple, CP437InCP437InUTF8},
		{"utf-8 art re-saved as cp437", mixed, CP437InCP437},
		{"ascii with glyph controls", []byte("\x01 smile \x02\n"), CP437Strict},
		{"cp437 with glyph controls", []byte{0x03, ' ', 0xDB, 0xDB, '\n'}, CP437Strict},
		{"windows-1252 prose", []byte("caf\xe9 na\xefve \x93quoted\x94\r\n"), Windows1252},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.input); got != tt.want {
				t.Errorf("Detect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectIsTotal(t *testing.T) {
	// Every byte value alone and in pairs must classify without panicking.
	for a := 0; a < 256; a++ {
		if !Detect([]byte{byte(a)}).Valid() {
			t.Fatalf("Detect([%02X]) returned an invalid charset", a)
		}
		for b := 0; b < 256; b += 17 {
			if !Detect([]byte{byte(a), byte(b)}).Valid() {
				t.Fatalf("Detect([%02X %02X]) returned an invalid charset", a, b)
			}
		}
	}
}

func TestLayers(t *testing.T) {
	tests := map[Charset]int{
		CP437:              0,
		UTF8:               0,
		CP437InCP437:       0,
		CP437InUTF8:        1,
		CP437InUTF16:       1,
		CP437InCP437InUTF8: 2,
	}
	for cs, want := range tests {
		if got := cs.Layers(); got != want {
			t.Errorf("%v.Layers() = %d, want %d", cs, got, want)
		}
	}
}

func TestWindows1252Undefined(t *testing.T) {
	if _, ok := DecodeWindows1252Byte(0x81); ok {
		t.Error("0x81 should be undefined in Windows-1252")
	}
	if r, ok := DecodeWindows1252Byte(0x80); !ok || r != '€' {
		t.Errorf("DecodeWindows1252Byte(0x80) = %q, %v; want €, true", r, ok)
	}
}
