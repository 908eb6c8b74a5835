package ansiart

// ColorMap records the SGR attributes in effect when each cell was written.
type ColorMap struct {
	// IceColors makes blinking cells use bright backgrounds.
	IceColors bool

	rows   [][]Attr
	styled bool
}

func newColorMap() *ColorMap {
	return &ColorMap{}
}

func (c *ColorMap) set(row, col int, a Attr) {
	for len(c.rows) <= row {
		c.rows = append(c.rows, nil)
	}
	line := c.rows[row]
	if len(line) <= col {
		grown := make([]Attr, col+1)
		copy(grown, line)
		line = grown
		c.rows[row] = line
	}
	line[col] = a
	if !a.IsDefault() {
		c.styled = true
	}
}

// At returns the attribute of the cell at row, col. ok is false for cells no
// text was written to.
func (c *ColorMap) At(row, col int) (Attr, bool) {
	if c == nil || row < 0 || row >= len(c.rows) || col < 0 || col >= len(c.rows[row]) {
		return DefaultAttr, false
	}
	a := c.rows[row][col]
	if a == (Attr{}) {
		return DefaultAttr, false
	}
	return a, true
}

// Styled reports whether any written cell carries a non-default attribute.
func (c *ColorMap) Styled() bool {
	return c != nil && c.styled
}
