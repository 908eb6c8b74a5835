package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/stlalpha/nfoview/internal/charset"
)

// ConfigFileName is the file looked up in the user config directory.
const ConfigFileName = "nfoview.json"

// Output modes for terminal printing.
const (
	OutputAuto  = "auto"
	OutputUTF8  = "utf8"
	OutputCP437 = "cp437"
)

// ViewerConfig controls how NFO files are loaded and shown.
type ViewerConfig struct {
	TabWidth      int    `json:"tabWidth"`
	MinBlockRun   int    `json:"minBlockRun"`
	Strict        bool   `json:"strict"`
	ForceCharset  string `json:"forceCharset"` // empty = detect
	MaxColumns    int    `json:"maxColumns"`   // 0 = unlimited
	StripSauce    bool   `json:"stripSauce"`
	InterpretAnsi bool   `json:"interpretAnsi"`
	OutputMode    string `json:"outputMode"` // auto, utf8, cp437
}

// DefaultViewerConfig returns built-in defaults when no config file is present.
func DefaultViewerConfig() ViewerConfig {
	return ViewerConfig{
		TabWidth:      8,
		MinBlockRun:   4,
		StripSauce:    true,
		InterpretAnsi: true,
		OutputMode:    OutputAuto,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/nfoview/nfoview.json or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "nfoview", ConfigFileName), nil
}

// LoadViewerConfig reads the viewer configuration from filePath. A missing
// file yields the defaults; fields absent from the file keep their defaults.
func LoadViewerConfig(filePath string) (ViewerConfig, error) {
	cfg := DefaultViewerConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("WARN: %s not found. Using default settings.", filePath)
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read viewer config %s: %w", filePath, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("ERROR: Failed to parse viewer config JSON from %s: %v. Using default settings.", filePath, err)
		return DefaultViewerConfig(), fmt.Errorf("failed to parse viewer config JSON from %s: %w", filePath, err)
	}

	cfg.Normalise()
	if err := cfg.Validate(); err != nil {
		return DefaultViewerConfig(), fmt.Errorf("invalid viewer config %s: %w", filePath, err)
	}
	log.Printf("INFO: Loaded viewer configuration from %s", filePath)
	return cfg, nil
}

// Normalise trims and lowercases the string fields.
func (cfg *ViewerConfig) Normalise() {
	cfg.ForceCharset = strings.TrimSpace(cfg.ForceCharset)
	cfg.OutputMode = strings.ToLower(strings.TrimSpace(cfg.OutputMode))
	if cfg.OutputMode == "" {
		cfg.OutputMode = OutputAuto
	}
}

// Validate rejects negative sizes, unknown output modes and charset names
// that do not parse.
func (cfg ViewerConfig) Validate() error {
	if cfg.TabWidth < 0 {
		return fmt.Errorf("tabWidth must not be negative, got %d", cfg.TabWidth)
	}
	if cfg.MinBlockRun < 0 {
		return fmt.Errorf("minBlockRun must not be negative, got %d", cfg.MinBlockRun)
	}
	if cfg.MaxColumns < 0 {
		return fmt.Errorf("maxColumns must not be negative, got %d", cfg.MaxColumns)
	}
	switch cfg.OutputMode {
	case OutputAuto, OutputUTF8, OutputCP437, "":
	default:
		return fmt.Errorf("unknown outputMode %q", cfg.OutputMode)
	}
	if _, err := cfg.Charset(); err != nil {
		return err
	}
	return nil
}

// Charset returns the forced charset, or charset.Unknown when detection
// should run.
func (cfg ViewerConfig) Charset() (charset.Charset, error) {
	if cfg.ForceCharset == "" {
		return charset.Unknown, nil
	}
	cs, err := charset.Parse(cfg.ForceCharset)
	if err != nil {
		return charset.Unknown, fmt.Errorf("forceCharset: %w", err)
	}
	return cs, nil
}
