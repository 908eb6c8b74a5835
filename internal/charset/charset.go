package charset

import (
	"fmt"
	"strings"
)

// Charset identifies the character encoding an NFO byte stream was authored
// in, including the cases where CP437 content was wrapped in one or two
// additional Unicode layers by broken tooling.
type Charset uint8

const (
	Unknown            Charset = iota // Zero value, never returned by Detect
	UTF16                             // UTF-16 with byte order mark
	UTF8Sig                           // UTF-8 with EF BB BF signature
	UTF8                              // UTF-8 (including plain ASCII)
	CP437                             // IBM Code Page 437 (DOS)
	CP437InUTF8                       // CP437 bytes read as Latin-1 and saved as UTF-8
	CP437InUTF16                      // CP437 bytes read as Latin-1 and saved as UTF-16
	CP437Strict                       // CP437 with C0 control bytes taken as glyphs
	Windows1252                       // Windows Western European
	CP437InCP437                      // UTF-8 art partially re-saved as raw CP437
	CP437InCP437InUTF8                // CP437InUTF8 wrapped in a second UTF-8 layer
)

// String returns the human-readable label used by the viewer.
func (c Charset) String() string {
	switch c {
	case UTF16:
		return "UTF-16"
	case UTF8Sig:
		return "UTF-8 (Signature)"
	case UTF8:
		return "UTF-8"
	case CP437:
		return "CP 437"
	case CP437InUTF8:
		return "CP 437 (in UTF-8)"
	case CP437InUTF16:
		return "CP 437 (in UTF-16)"
	case CP437Strict:
		return "CP 437 (strict mode)"
	case Windows1252:
		return "Windows-1252"
	case CP437InCP437:
		return "CP 437 (double encoded)"
	case CP437InCP437InUTF8:
		return "CP 437 (double encoded + UTF-8)"
	}
	return "(unknown)"
}

// Valid reports whether c is one of the ten known charsets.
func (c Charset) Valid() bool {
	return c >= UTF16 && c <= CP437InCP437InUTF8
}

// Layers returns the number of Latin-1 reinterpretation passes needed on top
// of the outer container before the CP437 table applies.
func (c Charset) Layers() int {
	switch c {
	case CP437InUTF8, CP437InUTF16:
		return 1
	case CP437InCP437InUTF8:
		return 2
	}
	return 0
}

// IsCP437 reports whether the innermost content of c is CP437.
func (c Charset) IsCP437() bool {
	switch c {
	case CP437, CP437Strict, CP437InUTF8, CP437InUTF16, CP437InCP437, CP437InCP437InUTF8:
		return true
	}
	return false
}

// All lists the known charsets in detection-order of their tags.
func All() []Charset {
	return []Charset{
		UTF16, UTF8Sig, UTF8, CP437, CP437InUTF8, CP437InUTF16,
		CP437Strict, Windows1252, CP437InCP437, CP437InCP437InUTF8,
	}
}

var shortNames = map[string]Charset{
	"utf16":            UTF16,
	"utf-16":           UTF16,
	"utf8sig":          UTF8Sig,
	"utf-8-sig":        UTF8Sig,
	"utf8":             UTF8,
	"utf-8":            UTF8,
	"cp437":            CP437,
	"ibm437":           CP437,
	"cp437-utf8":       CP437InUTF8,
	"cp437-utf16":      CP437InUTF16,
	"cp437-strict":     CP437Strict,
	"cp1252":           Windows1252,
	"windows-1252":     Windows1252,
	"cp437-cp437":      CP437InCP437,
	"cp437-cp437-utf8": CP437InCP437InUTF8,
}

// Parse resolves a charset from a short name (cp437, utf-8, ...) or from the
// label returned by String. Matching is case-insensitive.
func Parse(name string) (Charset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if cs, ok := shortNames[n]; ok {
		return cs, nil
	}
	for _, cs := range All() {
		if strings.ToLower(cs.String()) == n {
			return cs, nil
		}
	}
	return Unknown, fmt.Errorf("unknown charset %q", name)
}
