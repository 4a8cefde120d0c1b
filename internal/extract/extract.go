// Package extract pulls a key out of a text line by locating it between two
// literal markers.
package extract

import (
	"regexp"
	"strings"
)

// Markers delimits a key within a line.
type Markers struct {
	Start string // Literal preceding the key
	End   string // Literal following the key

	// Pattern, if set, narrows the text between the markers to its first
	// match (or its first capture group, when it has one).
	Pattern *regexp.Regexp
}

// Default returns the markers of a pagemap dump line.
func Default() Markers {
	return Markers{Start: DefaultStart, End: DefaultEnd}
}

// Validate reports ErrEmptyMarker if either marker is empty.
func (m Markers) Validate() error {
	if m.Start == "" || m.End == "" {
		return ErrEmptyMarker
	}
	return nil
}

// Extract returns the normalized key found between the first Start marker and
// the first End marker after it.
//
// Lines without a Start marker return ErrNoStart. Lines whose End marker is
// missing, or only occurs before Start, return ErrNoEnd. With a Pattern, text
// it does not match returns ErrNoKey.
func (m Markers) Extract(line string) (string, error) {
	i := strings.Index(line, m.Start)
	if i < 0 {
		return "", ErrNoStart
	}
	rest := line[i+len(m.Start):]

	j := strings.Index(rest, m.End)
	if j < 0 {
		return "", ErrNoEnd
	}
	key := Normalize(rest[:j])
	if m.Pattern == nil {
		return key, nil
	}
	match := m.Pattern.FindStringSubmatch(key)
	switch {
	case match == nil:
		return "", ErrNoKey
	case len(match) > 1:
		return match[1], nil
	default:
		return match[0], nil
	}
}

// Normalize trims surrounding whitespace. Keys are otherwise opaque: "007" and
// "7" are distinct.
func Normalize(s string) string {
	return strings.TrimSpace(s)
}
