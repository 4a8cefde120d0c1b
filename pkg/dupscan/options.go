package dupscan

import "github.com/pagesanity/pfnscan/internal/extract"

// Options controls key extraction and malformed-line handling.
type Options struct {
	// Start and End delimit the key on each line. Both are required.
	Start string
	End   string

	// KeyPattern, if non-empty, is a regular expression that narrows the text
	// between the markers to its first match (or first capture group). Text it
	// does not match makes the line malformed.
	KeyPattern string

	// Sentinel is a key that is never tracked or reported.
	// Empty disables the exclusion.
	Sentinel string

	// Strict aborts the scan on the first malformed line with a *LineError.
	// When false, malformed lines are skipped and counted.
	Strict bool

	// OnMalformed, if set, is called for every malformed line before it is
	// skipped (or before the scan aborts in strict mode).
	OnMalformed func(line int, text string, err error)
}

// DefaultOptions returns the pagemap dump markers with sentinel "0".
func DefaultOptions() Options {
	return Options{
		Start:    extract.DefaultStart,
		End:      extract.DefaultEnd,
		Sentinel: extract.DefaultSentinel,
	}
}
