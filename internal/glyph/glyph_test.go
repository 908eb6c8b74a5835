package glyph

import "testing"

func TestIsDecorative(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"horizontal line", '─', true},
		{"double corner", '╔', true},
		{"full block", '█', true},
		{"light shade", '░', true},
		{"solid square", '■', true},
		{"triple bar", '≡', true},
		{"ascii letter", 'A', false},
		{"ascii dash", '-', false},
		{"space", ' ', false},
		{"latin small e acute", 'é', false},
		{"greek alpha", 'α', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDecorative(tt.r); got != tt.want {
				t.Errorf("IsDecorative(%q) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestIsDecorativeLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"rule", "────────", true},
		{"indented frame", "   ╚═════╝  ", true},
		{"framed prose", "║ Release ║", false},
		{"prose", "Hello World", false},
		{"blank", "    ", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDecorativeLine([]rune(tt.line)); got != tt.want {
				t.Errorf("IsDecorativeLine(%q) = %v, want %v", tt.line, got, tt.want)
			}
		})
	}
}

func TestLongestRun(t *testing.T) {
	if got := LongestRun([]rune("ab████c██")); got != 4 {
		t.Errorf("LongestRun = %d, want 4", got)
	}
	if got := LongestRun([]rune("plain")); got != 0 {
		t.Errorf("LongestRun(plain) = %d, want 0", got)
	}
}
