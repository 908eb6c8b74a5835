// Package terminalio writes decoded NFO text to a terminal in the byte
// encoding the terminal expects.
package terminalio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stlalpha/nfoview/internal/config"
)

// OutputMode selects the terminal encoding.
type OutputMode int

const (
	OutputModeAuto  OutputMode = iota // Pick from TERM and the locale
	OutputModeUTF8                    // Write UTF-8 unchanged
	OutputModeCP437                   // Encode glyphs back to CP437 bytes
)

func (m OutputMode) String() string {
	switch m {
	case OutputModeUTF8:
		return config.OutputUTF8
	case OutputModeCP437:
		return config.OutputCP437
	}
	return config.OutputAuto
}

// ParseOutputMode maps a config value onto an OutputMode.
func ParseOutputMode(s string) (OutputMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case config.OutputAuto, "":
		return OutputModeAuto, nil
	case config.OutputUTF8, "utf-8":
		return OutputModeUTF8, nil
	case config.OutputCP437, "cp 437", "ibm437":
		return OutputModeCP437, nil
	}
	return OutputModeAuto, fmt.Errorf("unknown output mode %q", s)
}

// DetectOutputMode picks an encoding from the TERM value and locale. BBS
// style terminals expect CP437; everything else gets UTF-8.
func DetectOutputMode(termEnv, locale string) OutputMode {
	switch strings.ToLower(termEnv) {
	case "syncterm", "ansi", "scoansi", "ansi-bbs", "pcansi", "vt100", "vt102":
		return OutputModeCP437
	}
	if termEnv == "" && locale != "" && !strings.Contains(strings.ToUpper(locale), "UTF") {
		return OutputModeCP437
	}
	return OutputModeUTF8
}

// Resolve replaces OutputModeAuto with the mode detected from the process
// environment.
func Resolve(m OutputMode) OutputMode {
	if m != OutputModeAuto {
		return m
	}
	locale := os.Getenv("LC_ALL")
	if locale == "" {
		locale = os.Getenv("LANG")
	}
	return DetectOutputMode(os.Getenv("TERM"), locale)
}

// WriteText writes UTF-8 text to w in the given mode. Auto is resolved
// from the environment.
func WriteText(w io.Writer, text string, mode OutputMode) error {
	if Resolve(mode) != OutputModeCP437 {
		_, err := io.WriteString(w, text)
		return err
	}
	cw := NewCP437Writer(w)
	if _, err := io.WriteString(cw, text); err != nil {
		cw.Close()
		return err
	}
	return cw.Close()
}
