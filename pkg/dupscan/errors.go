package dupscan

import (
	"fmt"

	"github.com/pagesanity/pfnscan/internal/extract"
)

var (
	// ErrEmptyMarker indicates Options with an empty start or end marker.
	ErrEmptyMarker = extract.ErrEmptyMarker
	// ErrMalformed is wrapped by every LineError.
	ErrMalformed = extract.ErrMalformed
)

// LineError reports a malformed line in strict mode.
type LineError struct {
	Line int    // 1-based position in the stream
	Text string // The offending line
	Err  error  // extract.ErrNoStart or extract.ErrNoEnd
}

func (e *LineError) Error() string {
	return fmt.Sprintf("dupscan: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
