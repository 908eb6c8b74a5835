package grid

import (
	"strings"
	"testing"
)

func TestBuildDimensions(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		rows, cols int
	}{
		{"empty", "", 0, 0},
		{"hello world", "Hello\nWorld\n", 2, 5},
		{"no trailing newline", "Hello\nWorld", 2, 5},
		{"ragged", "a\nabc\n\nab\n", 4, 3},
		{"single blank line", "\n", 1, 0},
		{"wide glyphs count once", "╔══╗\n", 1, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.text, Options{})
			if g.Rows != tt.rows || g.Cols != tt.cols {
				t.Fatalf("Build(%q) = %dx%d, want %dx%d", tt.text, g.Rows, g.Cols, tt.rows, tt.cols)
			}
			if len(g.Cells) != g.Rows {
				t.Errorf("len(Cells) = %d, want %d", len(g.Cells), g.Rows)
			}
			for i, row := range g.Cells {
				if len(row) != g.Cols {
					t.Errorf("row %d has %d cells, want %d", i, len(row), g.Cols)
				}
			}
		})
	}
}

func TestPadding(t *testing.T) {
	g := Build("a\nabc\n", Options{})
	if got := g.Row(0); got != "a  " {
		t.Errorf("Row(0) = %q, want %q", got, "a  ")
	}
	if got := g.At(0, 2); got != ' ' {
		t.Errorf("At(0, 2) = %q, want space", got)
	}
	if got := g.At(1, 2); got != 'c' {
		t.Errorf("At(1, 2) = %q, want 'c'", got)
	}
}

func TestAtOutOfRange(t *testing.T) {
	g := Build("xy\n", Options{})
	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 2}, {100, 100}} {
		if got := g.At(pos[0], pos[1]); got != ' ' {
			t.Errorf("At(%d, %d) = %q, want space", pos[0], pos[1], got)
		}
	}
	var nilGrid *Grid
	if nilGrid.At(0, 0) != ' ' || nilGrid.Row(0) != "" {
		t.Error("nil grid should answer spaces and empty rows")
	}
}

func TestHasBlocks(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		minRun int
		want   bool
	}{
		{"prose", "Hello\nWorld\nno art here\n", 0, false},
		{"rule of 80", strings.Repeat("─", 80) + "\nprose\n", 0, true},
		{"short run", "═══ title ═══\n", 0, false},
		{"run at threshold", "████\n", 0, true},
		{"vertical frame", "║ a\n║ b\n║ c\n║ d\n", 0, true},
		{"vertical below threshold", "║\n║\n║\n", 0, false},
		{"custom threshold", "══\n", 2, true},
		{"ascii dashes", "------------\n", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.text, Options{MinRun: tt.minRun})
			if g.HasBlocks != tt.want {
				t.Errorf("HasBlocks = %v, want %v (blocks %+v)", g.HasBlocks, tt.want, g.Blocks)
			}
			if g.HasBlocks != (len(g.Blocks) > 0) {
				t.Errorf("HasBlocks disagrees with Blocks")
			}
		})
	}
}

func TestBlockRuns(t *testing.T) {
	g := Build("x████\n ▓\n ▓\n ▓\n", Options{})
	want := []Run{
		{Row: 0, Col: 1, Length: 4},
		{Row: 0, Col: 1, Length: 4, Vertical: true},
	}
	if len(g.Blocks) != len(want) {
		t.Fatalf("Blocks = %+v, want %+v", g.Blocks, want)
	}
	for i := range want {
		if g.Blocks[i] != want[i] {
			t.Errorf("Blocks[%d] = %+v, want %+v", i, g.Blocks[i], want[i])
		}
	}
}

func TestMaxCols(t *testing.T) {
	g := Build("abcdef\nab\n", Options{MaxCols: 4})
	if g.Cols != 4 || g.Clipped != 1 {
		t.Errorf("Cols = %d, Clipped = %d; want 4 and 1", g.Cols, g.Clipped)
	}
	if got := g.Row(0); got != "abcd" {
		t.Errorf("Row(0) = %q, want %q", got, "abcd")
	}
}

func TestString(t *testing.T) {
	g := Build("a\nbcd\n", Options{})
	if got, want := g.String(), "a  \nbcd\n"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
