package ansiart

// Attr is the SGR state of one cell.
type Attr struct {
	FG    int // -1 = default, 30-37 = normal, 90-97 = bright
	BG    int // -1 = default, 40-47 = normal, 100-107 = bright
	Bold  bool
	Faint bool
	Blink bool
}

// DefaultAttr is the state after ESC[0m.
var DefaultAttr = Attr{FG: -1, BG: -1}

// IsDefault reports whether a renders without any styling.
func (a Attr) IsDefault() bool {
	return a == DefaultAttr
}

// Apply processes a semicolon separated SGR parameter string such as "1;36".
func (a *Attr) Apply(params string) {
	if params == "" {
		// ESC[m is ESC[0m
		*a = DefaultAttr
		return
	}
	for _, p := range splitParams(params) {
		switch {
		case p == 0:
			*a = DefaultAttr
		case p == 1:
			a.Bold = true
		case p == 2:
			a.Faint = true
		case p == 5:
			a.Blink = true
		case p == 22:
			a.Bold = false
			a.Faint = false
		case p == 25:
			a.Blink = false
		case p >= 30 && p <= 37:
			a.FG = p
		case p == 39:
			a.FG = -1
		case p >= 40 && p <= 47:
			a.BG = p
		case p == 49:
			a.BG = -1
		case p >= 90 && p <= 97:
			a.FG = p
		case p >= 100 && p <= 107:
			a.BG = p
		}
	}
}

// ColorIndex returns the 16-color palette index of the foreground or -1. Bold
// selects the bright half for normal colors.
func (a Attr) ColorIndex() int {
	switch {
	case a.FG >= 30 && a.FG <= 37:
		if a.Bold {
			return a.FG - 30 + 8
		}
		return a.FG - 30
	case a.FG >= 90 && a.FG <= 97:
		return a.FG - 90 + 8
	}
	return -1
}

// BackgroundIndex returns the 16-color palette index of the background or
// -1. With ice colors the blink bit selects the bright half instead.
func (a Attr) BackgroundIndex(ice bool) int {
	switch {
	case a.BG >= 40 && a.BG <= 47:
		if ice && a.Blink {
			return a.BG - 40 + 8
		}
		return a.BG - 40
	case a.BG >= 100 && a.BG <= 107:
		return a.BG - 100 + 8
	}
	return -1
}

// splitParams splits "1;;36" into ints; empty fields count as 0 and values
// above 255 are dropped.
func splitParams(s string) []int {
	var out []int
	val, skip := 0, false
	flush := func() {
		if !skip {
			out = append(out, val)
		}
		val, skip = 0, false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			if !skip {
				val = val*10 + int(c-'0')
				if val > 255 {
					skip = true
				}
			}
		case c == ';':
			flush()
		}
	}
	flush()
	return out
}
