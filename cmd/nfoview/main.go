package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/stlalpha/nfoview/internal/config"
	"github.com/stlalpha/nfoview/internal/logging"
	"github.com/stlalpha/nfoview/internal/nfo"
	"github.com/stlalpha/nfoview/internal/terminalio"
	"github.com/stlalpha/nfoview/internal/watch"
)

var version = "dev"

type view string

const (
	viewClassic  view = "classic"
	viewStripped view = "stripped"
	viewHTML     view = "html"
	viewGrid     view = "grid"
	viewInfo     view = "info"
)

func parseView(s string) (view, error) {
	switch v := view(strings.ToLower(strings.TrimSpace(s))); v {
	case viewClassic, viewStripped, viewHTML, viewGrid, viewInfo:
		return v, nil
	}
	return "", fmt.Errorf("unknown view %q (want classic, stripped, html, grid or info)", s)
}

func main() {
	var (
		viewFlag    string
		configPath  string
		charsetFlag string
		strict      bool
		cp437Out    bool
		watchMode   bool
		debug       bool
		showVersion bool
	)
	flag.StringVar(&viewFlag, "view", "classic", "View to print: classic, stripped, html, grid, info")
	flag.StringVar(&configPath, "config", "", "Path to nfoview.json (default: user config directory)")
	flag.StringVar(&charsetFlag, "charset", "", "Force a charset instead of detecting it (e.g. cp437, utf-8, windows-1252)")
	flag.BoolVar(&strict, "strict", false, "Fail on undecodable bytes instead of substituting U+FFFD")
	flag.BoolVar(&cp437Out, "cp437", false, "Write CP437 bytes instead of UTF-8")
	flag.BoolVar(&watchMode, "watch", false, "Reprint the view whenever the file changes")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: nfoview [flags] <file>\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	log.SetOutput(os.Stderr)
	logging.EnableFromEnv()
	if debug {
		logging.DebugEnabled = true
	}

	if showVersion {
		fmt.Printf("nfoview %s\n", version)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	v, err := parseView(viewFlag)
	if err != nil {
		fatal(err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fatal(err)
	}
	if charsetFlag != "" {
		cfg.ForceCharset = charsetFlag
	}
	if strict {
		cfg.Strict = true
	}
	if cp437Out {
		cfg.OutputMode = config.OutputCP437
	}
	cfg.Normalise()
	if err := cfg.Validate(); err != nil {
		fatal(err)
	}
	mode, err := terminalio.ParseOutputMode(cfg.OutputMode)
	if err != nil {
		fatal(err)
	}
	mode = terminalio.Resolve(mode)
	logging.Debug("output mode %s", mode)

	doc := nfo.New(nfo.WithConfig(cfg))
	if err := doc.Load(path); err != nil {
		fatal(err)
	}
	if err := render(os.Stdout, doc, v, mode); err != nil {
		fatal(err)
	}

	if watchMode {
		if err := runWatch(path, doc, v, mode); err != nil {
			fatal(err)
		}
	}
}

// loadConfig reads the -config file, or the default location when it
// exists. Without either the built-in defaults apply.
func loadConfig(path string) (config.ViewerConfig, error) {
	if path == "" {
		def, err := config.DefaultPath()
		if err != nil {
			logging.Debug("no default config: %v", err)
			return config.DefaultViewerConfig(), nil
		}
		if _, err := os.Stat(def); errors.Is(err, os.ErrNotExist) {
			return config.DefaultViewerConfig(), nil
		}
		path = def
	}
	return config.LoadViewerConfig(path)
}

func runWatch(path string, doc *nfo.Document, v view, mode terminalio.OutputMode) error {
	reloads := make(chan error, 1)
	w, err := watch.New(path, doc, watch.WithOnReload(func(err error) {
		select {
		case reloads <- err:
		default:
		}
	}))
	if err != nil {
		return err
	}
	defer w.Stop()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigs)

	for {
		select {
		case err := <-reloads:
			if err != nil {
				fmt.Fprintf(os.Stderr, "nfoview: %v\n", err)
				continue
			}
			var renderErr error
			w.View(func(d *nfo.Document) {
				renderErr = render(os.Stdout, d, v, mode)
			})
			if renderErr != nil {
				return renderErr
			}
		case <-sigs:
			return nil
		}
	}
}

func render(w io.Writer, doc *nfo.Document, v view, mode terminalio.OutputMode) error {
	switch v {
	case viewStripped:
		return terminalio.WriteText(w, doc.StrippedText(), mode)
	case viewHTML:
		_, err := io.WriteString(w, doc.HTML())
		return err
	case viewGrid:
		return terminalio.WriteText(w, renderGrid(doc), mode)
	case viewInfo:
		return terminalio.WriteText(w, renderInfo(doc, terminalWidth()), mode)
	}
	return terminalio.WriteText(w, doc.ClassicText(), mode)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "nfoview: %v\n", err)
	os.Exit(1)
}
