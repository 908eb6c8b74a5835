package decoder

import (
	"errors"
	"fmt"

	"github.com/stlalpha/nfoview/internal/charset"
)

// Reason classifies a strict-mode decode failure.
type Reason int

const (
	InvalidSequence    Reason = iota + 1 // Bytes that do not form a unit of the charset
	UnsupportedCharset                   // Charset value outside the known set
)

func (r Reason) String() string {
	switch r {
	case InvalidSequence:
		return "invalid sequence"
	case UnsupportedCharset:
		return "unsupported charset"
	}
	return "unknown reason"
}

var (
	ErrInvalidSequence    = errors.New("invalid byte sequence")
	ErrUnsupportedCharset = errors.New("unsupported charset")
)

// DecodeError is returned by Decode in strict mode.
type DecodeError struct {
	Reason  Reason
	Charset charset.Charset
	Layer   int // 0 for the outer container, 1.. for nested reinterpretations
	Offset  int // byte offset within the layer being decoded
}

func (e *DecodeError) Error() string {
	if e.Reason == UnsupportedCharset {
		return fmt.Sprintf("decode: %s %d", e.Reason, uint8(e.Charset))
	}
	if e.Layer > 0 {
		return fmt.Sprintf("decode %s: %s at offset %d (layer %d)", e.Charset, e.Reason, e.Offset, e.Layer)
	}
	return fmt.Sprintf("decode %s: %s at offset %d", e.Charset, e.Reason, e.Offset)
}

func (e *DecodeError) Unwrap() error {
	switch e.Reason {
	case InvalidSequence:
		return ErrInvalidSequence
	case UnsupportedCharset:
		return ErrUnsupportedCharset
	}
	return nil
}
