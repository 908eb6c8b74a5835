// Package ansiart plays ANSI escape sequences embedded in NFO text onto a
// virtual screen and reads the screen back as plain lines plus a color map.
package ansiart

import (
	"errors"
	"strings"
	"unicode"

	"github.com/stlalpha/nfoview/internal/logging"
)

// Escape runes. ESC decodes to U+2190 through the CP437 glyph table.
const (
	Esc      = '\x1b'
	EscGlyph = '←'
)

// Default screen limits.
const (
	DefaultWidthLimit  = 1000
	DefaultHeightLimit = 10000
	DefaultHintWidth   = 80
	defaultHintHeight  = 100
	growStep           = 50
)

var (
	ErrSyntax  = errors.New("ansiart: malformed escape sequence")
	ErrEmpty   = errors.New("ansiart: no commands")
	ErrTooWide = errors.New("ansiart: screen exceeds width limit")
	ErrTooTall = errors.New("ansiart: screen exceeds height limit")
)

// Command is one parsed unit: Final is 0 for literal text held in Data,
// otherwise the CSI final letter with its parameter string.
type Command struct {
	Final rune
	Data  string
}

// Art interprets one text. Call Parse, then Process, then read the results.
type Art struct {
	widthLimit  int
	heightLimit int
	hintWidth   int
	hintHeight  int

	commands []Command
	lines    []string
	maxWidth int
	colors   *ColorMap
}

// New returns an interpreter bounded by the given limits. hintWidth is the
// column at which text wraps (0 disables wrapping); hintHeight presizes the
// screen.
func New(widthLimit, heightLimit, hintWidth, hintHeight int) *Art {
	return &Art{
		widthLimit:  widthLimit,
		heightLimit: heightLimit,
		hintWidth:   hintWidth,
		hintHeight:  hintHeight,
	}
}

// HasEscapes reports whether text holds at least one CSI introducer.
func HasEscapes(text string) bool {
	prev := rune(0)
	for _, r := range text {
		if r == '[' && (prev == Esc || prev == EscGlyph) {
			return true
		}
		prev = r
	}
	return false
}

type parseState int

const (
	stateText parseState = iota
	stateBracket
	stateData
)

// Parse splits text into commands.
func (a *Art) Parse(text string) error {
	a.commands = a.commands[:0]

	state := stateText
	var data strings.Builder
	for _, c := range text {
		switch {
		case c == Esc || c == EscGlyph:
			if state != stateText {
				return ErrSyntax
			}
			if data.Len() > 0 {
				a.commands = append(a.commands, Command{Data: data.String()})
				data.Reset()
			}
			state = stateBracket
		case state == stateBracket:
			if c != '[' {
				return ErrSyntax
			}
			state = stateData
		case state == stateData:
			switch {
			case c >= '0' && c <= '9', c == ';', c == '?':
				data.WriteRune(c)
			case unicode.IsLetter(c):
				a.commands = append(a.commands, Command{Final: c, Data: data.String()})
				data.Reset()
				state = stateText
			case unicode.IsSpace(c):
				// Sequences ended by a space instead of a letter are dropped.
				data.Reset()
				state = stateText
			default:
				return ErrSyntax
			}
		default:
			data.WriteRune(c)
		}
	}
	if state != stateText {
		return ErrSyntax
	}
	if data.Len() > 0 {
		a.commands = append(a.commands, Command{Data: data.String()})
	}
	if len(a.commands) == 0 {
		return ErrEmpty
	}
	return nil
}

// Commands returns the parsed command list.
func (a *Art) Commands() []Command {
	return a.commands
}

// Process plays the parsed commands onto the screen.
func (a *Art) Process() error {
	if len(a.commands) == 0 {
		return ErrEmpty
	}

	rows := a.hintHeight
	if rows <= 0 {
		rows = defaultHintHeight
	}
	scr := newScreen(rows, a.hintWidth)
	colors := newColorMap()
	attr := DefaultAttr

	var saved []point
	x, y := 0, 0

	for _, cmd := range a.commands {
		dx, dy := 0, 0
		n, m := 1, 1
		if cmd.Final != 0 && cmd.Final != 'm' {
			n, m = cursorParams(cmd.Data)
		}

		switch cmd.Final {
		case 0:
			for _, c := range cmd.Data {
				if c == '\r' {
					continue
				}
				if c == '\n' || (a.hintWidth != 0 && x == a.hintWidth-1) {
					if y >= scr.rows-1 {
						grown := scr.rows + max(growStep, y-(scr.rows-1))
						if grown > a.heightLimit {
							return ErrTooTall
						}
						scr.extend(grown, scr.cols)
					}
					if c != '\n' {
						// The wrapping character still lands on this line.
						scr.cells[y][x] = c
						colors.set(y, x, attr)
					}
					y++
					x = 0
					continue
				}
				if x >= scr.cols-1 {
					grown := scr.cols + max(growStep, x-(scr.cols-1))
					if grown > a.widthLimit {
						return ErrTooWide
					}
					scr.extend(scr.rows, grown)
				}
				scr.cells[y][x] = c
				colors.set(y, x, attr)
				x++
			}
		case 'A':
			dy = -n
		case 'B':
			dy = n
		case 'C':
			dx = n
		case 'D':
			dx = -n
		case 'E':
			dy = n
			x = 0
		case 'F':
			dy = -n
			x = 0
		case 'G':
			x = n - 1
		case 'H', 'f':
			y = n - 1
			x = m - 1
		case 'J':
			// Erasing is not modelled; a full clear homes the cursor.
			if n == 2 {
				x, y = 0, 0
			}
		case 's':
			saved = append(saved, point{x, y})
		case 'u':
			if len(saved) > 0 {
				p := saved[len(saved)-1]
				saved = saved[:len(saved)-1]
				x, y = p.x, p.y
			}
		case 'm':
			attr.Apply(cmd.Data)
		case 'K', 'h', 'l', 'S', 'T', 'n':
			// unsupported
		default:
			logging.Debug("ansiart: ignoring unknown command %q", cmd.Final)
		}

		y = moveClamped(y, dy)
		x = moveClamped(x, dx)

		if x >= scr.cols || y >= scr.rows {
			if x >= a.widthLimit {
				return ErrTooWide
			}
			if y >= a.heightLimit {
				return ErrTooTall
			}
			scr.extend(max(scr.rows, y+1), max(scr.cols, x+1))
		}
	}

	a.lines, a.maxWidth = scr.lines()
	a.colors = colors
	return nil
}

// ClassicText returns the processed screen as LF-terminated lines.
func (a *Art) ClassicText() string {
	var b strings.Builder
	for _, l := range a.lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// Lines returns the processed screen rows without trailing spaces.
func (a *Art) Lines() []string {
	return a.lines
}

// Width returns the length of the longest processed line.
func (a *Art) Width() int {
	return a.maxWidth
}

// Colors returns the attribute map built by Process, or nil before it.
func (a *Art) Colors() *ColorMap {
	return a.colors
}

// Interpret parses and processes text in one step using the default limits.
func Interpret(text string, hintWidth int) (*Art, error) {
	a := New(DefaultWidthLimit, DefaultHeightLimit, hintWidth, 0)
	if err := a.Parse(text); err != nil {
		return nil, err
	}
	if err := a.Process(); err != nil {
		return nil, err
	}
	return a, nil
}

// cursorParams reads "n;m" with both values at least 1.
func cursorParams(data string) (n, m int) {
	first, rest, found := strings.Cut(data, ";")
	n = max(leadingInt(first), 1)
	m = 1
	if found {
		m = max(leadingInt(rest), 1)
	}
	return n, m
}

// leadingInt parses the decimal prefix of s, stopping at the first
// non-digit. An empty prefix is 0.
func leadingInt(s string) int {
	v := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + int(s[i]-'0')
		if v > 1<<20 {
			break
		}
	}
	return v
}

// moveClamped applies delta to pos, clamping at 0 when moving backward past
// the edge.
func moveClamped(pos, delta int) int {
	switch {
	case delta > 0:
		return pos + delta
	case delta < 0 && -delta <= pos:
		return pos + delta
	case delta < 0:
		return 0
	}
	return pos
}

type point struct{ x, y int }
