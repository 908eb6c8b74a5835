package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/stlalpha/nfoview/internal/grid"
	"github.com/stlalpha/nfoview/internal/nfo"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14")).Width(9)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// terminalWidth returns the stdout width, or 0 when stdout is not a terminal.
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}

// renderInfo builds the metadata panel. width caps the panel; 0 leaves it
// unbounded.
func renderInfo(doc *nfo.Document, width int) string {
	g := docGrid(doc)
	blocks := "no"
	if doc.HasBlocks() {
		blocks = fmt.Sprintf("yes (%d runs)", len(g.Blocks))
	}
	ansi := "no"
	if doc.IsANSI() {
		ansi = "yes"
	}

	rows := [][2]string{
		{"File", doc.FileName()},
		{"Charset", doc.CharsetName()},
		{"Size", fmt.Sprintf("%d x %d", g.Cols, g.Rows)},
		{"Blocks", blocks},
		{"ANSI", ansi},
	}
	if rec := doc.Sauce(); rec != nil {
		rows = append(rows,
			[2]string{"Title", rec.Title},
			[2]string{"Author", rec.Author},
			[2]string{"Group", rec.Group},
		)
		if !rec.Date.IsZero() {
			rows = append(rows, [2]string{"Date", rec.Date.Format("2006-01-02")})
		}
		for _, c := range rec.Comments {
			rows = append(rows, [2]string{"Comment", c})
		}
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, labelStyle.Render(r[0])+valueStyle.Render(r[1]))
	}

	panel := panelStyle
	if width > 0 {
		panel = panel.MaxWidth(width)
	}
	return panel.Render(strings.Join(lines, "\n")) + "\n"
}

// renderGrid prints each grid row between bars with its row number, then a
// summary line.
func renderGrid(doc *nfo.Document) string {
	g := docGrid(doc)
	var b strings.Builder
	for i := 0; i < g.Rows; i++ {
		fmt.Fprintf(&b, "%4d │%s│\n", i+1, g.Row(i))
	}
	fmt.Fprintf(&b, "%d rows x %d cols, %d block runs\n", g.Rows, g.Cols, len(g.Blocks))
	return b.String()
}

func docGrid(doc *nfo.Document) *grid.Grid {
	if g := doc.Grid(); g != nil {
		return g
	}
	return &grid.Grid{}
}
