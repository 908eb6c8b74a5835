// Package grid lays classic NFO text out as a rectangular array of glyph
// cells and finds the block art in it.
package grid

import (
	"strings"

	"github.com/stlalpha/nfoview/internal/glyph"
)

// DefaultMinRun is the shortest run of decorative glyphs counted as a block.
const DefaultMinRun = 4

// Options controls grid construction.
type Options struct {
	MinRun  int // run length for block detection; 0 means DefaultMinRun
	MaxCols int // lines wider than this are clipped; 0 means unlimited
}

// Run is one horizontal or vertical stretch of decorative glyphs.
type Run struct {
	Row      int
	Col      int
	Length   int
	Vertical bool
}

// Grid is the cell layout of a text. Every row holds exactly Cols cells.
type Grid struct {
	Rows      int
	Cols      int
	Cells     [][]rune
	HasBlocks bool
	Blocks    []Run
	Clipped   int // lines cut at MaxCols
}

// Build splits text on LF, pads every row with spaces to the widest line and
// records decorative runs of at least MinRun glyphs.
func Build(text string, opts Options) *Grid {
	minRun := opts.MinRun
	if minRun <= 0 {
		minRun = DefaultMinRun
	}

	g := &Grid{}
	if text == "" {
		return g
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	g.Cells = make([][]rune, len(lines))
	for i, line := range lines {
		row := []rune(line)
		if opts.MaxCols > 0 && len(row) > opts.MaxCols {
			row = row[:opts.MaxCols]
			g.Clipped++
		}
		g.Cells[i] = row
		if len(row) > g.Cols {
			g.Cols = len(row)
		}
	}
	g.Rows = len(lines)

	for i, row := range g.Cells {
		if len(row) == g.Cols {
			continue
		}
		padded := make([]rune, g.Cols)
		copy(padded, row)
		for j := len(row); j < g.Cols; j++ {
			padded[j] = ' '
		}
		g.Cells[i] = padded
	}

	g.findBlocks(minRun)
	return g
}

func (g *Grid) findBlocks(minRun int) {
	for r := 0; r < g.Rows; r++ {
		start := -1
		for c := 0; c <= g.Cols; c++ {
			if c < g.Cols && glyph.IsDecorative(g.Cells[r][c]) {
				if start < 0 {
					start = c
				}
				continue
			}
			if start >= 0 && c-start >= minRun {
				g.Blocks = append(g.Blocks, Run{Row: r, Col: start, Length: c - start})
			}
			start = -1
		}
	}
	for c := 0; c < g.Cols; c++ {
		start := -1
		for r := 0; r <= g.Rows; r++ {
			if r < g.Rows && glyph.IsDecorative(g.Cells[r][c]) {
				if start < 0 {
					start = r
				}
				continue
			}
			if start >= 0 && r-start >= minRun {
				g.Blocks = append(g.Blocks, Run{Row: start, Col: c, Length: r - start, Vertical: true})
			}
			start = -1
		}
	}
	g.HasBlocks = len(g.Blocks) > 0
}

// At returns the glyph at row, col, or a space outside the grid.
func (g *Grid) At(row, col int) rune {
	if g == nil || row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return ' '
	}
	return g.Cells[row][col]
}

// Row returns row i as a string, or "" outside the grid.
func (g *Grid) Row(i int) string {
	if g == nil || i < 0 || i >= g.Rows {
		return ""
	}
	return string(g.Cells[i])
}

// String joins the rows with LF terminators.
func (g *Grid) String() string {
	if g == nil {
		return ""
	}
	var b strings.Builder
	for _, row := range g.Cells {
		b.WriteString(string(row))
		b.WriteByte('\n')
	}
	return b.String()
}
