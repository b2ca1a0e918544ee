package indic

import "fmt"

// ErrorKind classifies shaping failures.
type ErrorKind int

const (
	// ErrMalformedMatra: a matra classified as split has no entry in the
	// profile's split table.
	ErrMalformedMatra ErrorKind = iota + 1
	// ErrInvariant: an internal consistency check failed, e.g. an expected code
	// point was not found at the expected offset.
	ErrInvariant
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrMalformedMatra:
		return "MALFORMED-MATRA"
	case ErrInvariant:
		return "INVARIANT"
	default:
		return "UNKNOWN"
	}
}

// ShapingError is returned when a syllable cannot be reordered. Callers are
// expected to fall back to the unshaped text.
type ShapingError struct {
	Kind      ErrorKind
	Offset    int  // offset of the offending code point within its syllable
	CodePoint rune // offending code point, if any
	Issue     string
}

// Error implements the error interface.
func (e *ShapingError) Error() string {
	if e.CodePoint != 0 {
		return fmt.Sprintf("[%s] %#U at offset %d: %s", e.Kind, e.CodePoint, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[%s] offset %d: %s", e.Kind, e.Offset, e.Issue)
}

// Is makes errors.Is match shaping errors by kind.
func (e *ShapingError) Is(target error) bool {
	t, ok := target.(*ShapingError)
	return ok && t.Kind == e.Kind && t.Offset == 0 && t.CodePoint == 0 && t.Issue == ""
}

// Sentinels for errors.Is.
var (
	ErrMalformed = &ShapingError{Kind: ErrMalformedMatra}
	ErrBroken    = &ShapingError{Kind: ErrInvariant}
)
