// Package nfo loads NFO files into a Document holding every derived view:
// classic text, the glyph grid, stripped text and HTML markup.
package nfo

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/stlalpha/nfoview/internal/ansiart"
	"github.com/stlalpha/nfoview/internal/charset"
	"github.com/stlalpha/nfoview/internal/config"
	"github.com/stlalpha/nfoview/internal/decoder"
	"github.com/stlalpha/nfoview/internal/grid"
	"github.com/stlalpha/nfoview/internal/logging"
	"github.com/stlalpha/nfoview/internal/markup"
	"github.com/stlalpha/nfoview/internal/sauce"
)

// Document is a loaded NFO file. The zero state is unloaded; every accessor
// then returns its zero value. A Document has no internal locking, callers
// that share one across goroutines must serialize access.
type Document struct {
	cfg   config.ViewerConfig
	state *state
}

// state is everything one successful load produces. It is built aside and
// swapped in whole.
type state struct {
	path     string
	decoded  *decoder.Decoded
	classic  string
	stripped string
	grid     *grid.Grid
	sauce    *sauce.Record
	colors   *ansiart.ColorMap
}

// Option configures a Document.
type Option func(*Document)

// WithConfig sets the viewer configuration used by later loads.
func WithConfig(cfg config.ViewerConfig) Option {
	return func(d *Document) {
		d.cfg = cfg
	}
}

// New returns an unloaded Document.
func New(opts ...Option) *Document {
	d := &Document{cfg: config.DefaultViewerConfig()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the configuration the Document loads with.
func (d *Document) Config() config.ViewerConfig {
	return d.cfg
}

// Load reads path and loads its content.
func (d *Document) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &LoadError{Op: OpRead, Path: path, Err: err}
	}
	return d.LoadBytes(data, path)
}

// LoadBytes loads data as the content of path. On error the previous
// content is kept.
func (d *Document) LoadBytes(data []byte, path string) error {
	st, err := d.build(data, path)
	if err != nil {
		return err
	}
	d.state = st
	return nil
}

func (d *Document) build(data []byte, path string) (*state, error) {
	st := &state{path: path}

	content := data
	if d.cfg.StripSauce {
		content, st.sauce = sauce.Split(data)
	}
	content = bytes.TrimRight(content, "\x1a")

	cs, err := d.cfg.Charset()
	if err != nil {
		return nil, &LoadError{Op: OpDecode, Path: path, Err: err}
	}
	if cs == charset.Unknown {
		cs = charset.Detect(content)
	} else {
		logging.Debug("nfo: %s forced to %s", path, cs)
	}

	st.decoded, err = decoder.Decode(content, cs, decoder.Options{Strict: d.cfg.Strict})
	if err != nil {
		return nil, &LoadError{Op: OpDecode, Path: path, Err: err}
	}

	text := normalize(st.decoded.Runes, d.cfg.TabWidth)
	if d.cfg.InterpretAnsi && ansiart.HasEscapes(text) {
		text, st.colors = d.interpretANSI(text, st.sauce)
	}
	st.classic = finalize(text)

	st.grid = grid.Build(st.classic, grid.Options{MinRun: d.cfg.MinBlockRun, MaxCols: d.cfg.MaxColumns})
	if st.grid.Clipped > 0 {
		logging.Debug("nfo: %d lines of %s clipped at %d columns", st.grid.Clipped, path, d.cfg.MaxColumns)
	}
	st.stripped = decoder.DecodeStripped(st.classic).String()

	logging.Debug("nfo: loaded %s as %s, %dx%d, blocks=%v", path, cs, st.grid.Rows, st.grid.Cols, st.grid.HasBlocks)
	return st, nil
}

// interpretANSI plays escape sequences in text. When the art cannot be
// interpreted the text is returned unchanged without colors.
func (d *Document) interpretANSI(text string, rec *sauce.Record) (string, *ansiart.ColorMap) {
	hintWidth := rec.Width()
	if hintWidth <= 0 {
		hintWidth = ansiart.DefaultHintWidth
	}
	art := ansiart.New(ansiart.DefaultWidthLimit, ansiart.DefaultHeightLimit, hintWidth, rec.Height())
	if err := art.Parse(text); err != nil {
		logging.Debug("nfo: ANSI parse failed, keeping text as is: %v", err)
		return text, nil
	}
	if err := art.Process(); err != nil {
		logging.Debug("nfo: ANSI processing failed, keeping text as is: %v", err)
		return text, nil
	}
	colors := art.Colors()
	colors.IceColors = rec.IceColors()
	return art.ClassicText(), colors
}

// IsLoaded reports whether a load has succeeded.
func (d *Document) IsLoaded() bool {
	return d.state != nil
}

// ClassicText returns the text as authored.
func (d *Document) ClassicText() string {
	if d.state == nil {
		return ""
	}
	return d.state.classic
}

// StrippedText returns the text without decorative framing.
func (d *Document) StrippedText() string {
	if d.state == nil {
		return ""
	}
	return d.state.stripped
}

// Grid returns the glyph grid, or nil when unloaded.
func (d *Document) Grid() *grid.Grid {
	if d.state == nil {
		return nil
	}
	return d.state.grid
}

// HasBlocks reports whether the grid holds block art.
func (d *Document) HasBlocks() bool {
	return d.state != nil && d.state.grid.HasBlocks
}

// Charset returns the charset the content was decoded with.
func (d *Document) Charset() charset.Charset {
	if d.state == nil {
		return charset.Unknown
	}
	return d.state.decoded.Charset
}

// CharsetName returns the charset label, or "(none)" when unloaded.
func (d *Document) CharsetName() string {
	if d.state == nil {
		return "(none)"
	}
	return d.state.decoded.Charset.String()
}

// FilePath returns the path given to the last successful load.
func (d *Document) FilePath() string {
	if d.state == nil {
		return ""
	}
	return d.state.path
}

// FileName returns the base name of FilePath.
func (d *Document) FileName() string {
	if d.state == nil || d.state.path == "" {
		return ""
	}
	return filepath.Base(d.state.path)
}

// Sauce returns the SAUCE record of the file, or nil.
func (d *Document) Sauce() *sauce.Record {
	if d.state == nil {
		return nil
	}
	return d.state.sauce
}

// IsANSI reports whether the classic text came from interpreted ANSI art.
func (d *Document) IsANSI() bool {
	return d.state != nil && d.state.colors != nil
}

// HTML renders the classic text as markup. It is computed on every call.
func (d *Document) HTML() string {
	if d.state == nil {
		return ""
	}
	return markup.HTML(d.state.classic, d.state.colors)
}
