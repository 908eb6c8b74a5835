package nfo

import "testing"

func TestClassicText(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		tabWidth int
		want     string
	}{
		{"empty", "", 8, ""},
		{"crlf", "a\r\nb\r\n", 8, "a\nb\n"},
		{"lone cr", "a\rb", 8, "a\nb\n"},
		{"missing final newline", "a\nb", 8, "a\nb\n"},
		{"trailing spaces", "a   \nb\t\n", 8, "a\nb\n"},
		{"trailing blank lines", "a\n\n \n\n", 8, "a\n"},
		{"inner blank lines kept", "a\n\n\nb\n", 8, "a\n\n\nb\n"},
		{"only blanks", "\n\n  \n", 8, ""},
		{"tab stops", "a\tb\n\tc\n", 8, "a       b\n        c\n"},
		{"narrow tabs", "ab\tc\n", 4, "ab  c\n"},
		{"default tab width", "\tx\n", 0, "        x\n"},
		{"eof rune ends text", "text\x1amore\n", 8, "text\n"},
		{"leading spaces kept", "   x\n", 8, "   x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := finalize(normalize([]rune(tt.in), tt.tabWidth)); got != tt.want {
				t.Errorf("classic(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
