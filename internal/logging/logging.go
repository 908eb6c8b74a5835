// Package logging provides debug logging utilities for nfoview.
package logging

import (
	"log"
	"os"
	"strconv"
)

// DebugEnabled controls whether Debug() produces output.
// Set via -debug flag or DEBUG=1 environment variable.
var DebugEnabled bool

// Debug logs a message only when DebugEnabled is true.
func Debug(format string, args ...any) {
	if DebugEnabled {
		log.Printf("DEBUG: "+format, args...)
	}
}

// EnableFromEnv turns debug output on when DEBUG holds a true value.
func EnableFromEnv() {
	if v, err := strconv.ParseBool(os.Getenv("DEBUG")); err == nil && v {
		DebugEnabled = true
	}
}
