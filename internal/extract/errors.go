package extract

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed indicates a line did not carry both markers in order.
	ErrMalformed = errors.New("extract: malformed line")
	// ErrNoStart indicates the start marker was absent.
	ErrNoStart = fmt.Errorf("%w: start marker not found", ErrMalformed)
	// ErrNoEnd indicates no end marker followed the start marker.
	ErrNoEnd = fmt.Errorf("%w: end marker not found after start", ErrMalformed)
	// ErrNoKey indicates the Pattern did not match the text between the markers.
	ErrNoKey = fmt.Errorf("%w: key pattern did not match", ErrMalformed)
	// ErrEmptyMarker indicates a Markers value with an empty start or end.
	ErrEmptyMarker = errors.New("extract: marker must not be empty")
)
