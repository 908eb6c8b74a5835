package ansiart

import "strings"

// screen is a growable rune matrix filled with spaces.
type screen struct {
	rows, cols int
	cells      [][]rune
}

func newScreen(rows, cols int) *screen {
	s := &screen{}
	s.extend(rows, cols)
	return s
}

// extend grows the screen to at least rows x cols. It never shrinks.
func (s *screen) extend(rows, cols int) {
	rows, cols = max(rows, s.rows), max(cols, s.cols)
	if cols > s.cols {
		for i, row := range s.cells {
			s.cells[i] = padRow(row, cols)
		}
	}
	for len(s.cells) < rows {
		s.cells = append(s.cells, padRow(nil, cols))
	}
	s.rows, s.cols = rows, cols
}

func padRow(row []rune, cols int) []rune {
	out := make([]rune, cols)
	n := copy(out, row)
	for i := n; i < cols; i++ {
		out[i] = ' '
	}
	return out
}

// lines reads the screen back with trailing spaces removed from every row
// and trailing blank rows dropped. width is the longest line.
func (s *screen) lines() (out []string, width int) {
	out = make([]string, 0, s.rows)
	for _, row := range s.cells {
		used := len(row)
		for used > 0 && row[used-1] == ' ' {
			used--
		}
		out = append(out, string(row[:used]))
		width = max(width, used)
	}
	for len(out) > 0 && strings.Trim(out[len(out)-1], " ") == "" {
		out = out[:len(out)-1]
	}
	return out, width
}
