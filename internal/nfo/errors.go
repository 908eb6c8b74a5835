package nfo

import "fmt"

// Load operations reported in LoadError.Op.
const (
	OpRead   = "read"
	OpDecode = "decode"
)

// LoadError describes a failed Load or LoadBytes. The document keeps its
// previous content.
type LoadError struct {
	Op   string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s NFO: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
