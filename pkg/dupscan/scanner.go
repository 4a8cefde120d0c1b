package dupscan

import (
	"fmt"
	"iter"
	"regexp"

	"github.com/pagesanity/pfnscan/internal/extract"
)

// Event is one reported key.
type Event struct {
	Line   int    `json:"line"`   // 1-based position in the stream
	Key    string `json:"key"`    // Normalized key
	Repeat bool   `json:"repeat"` // Seen earlier in the stream
}

// Result summarizes a scan.
type Result struct {
	Matches []string // Repeated keys in encounter order, once per repeat

	Lines     int // Lines read
	Emitted   int // Lines that produced an Event
	Excluded  int // Lines whose key was the sentinel
	Malformed int // Lines missing a marker
}

// Count returns the number of repeat occurrences.
func (r Result) Count() int {
	return len(r.Matches)
}

// Scanner detects repeated keys over one stream.
type Scanner struct {
	markers     extract.Markers
	sentinel    string
	strict      bool
	onMalformed func(int, string, error)

	seen map[string]struct{}
	res  Result
}

// New returns a Scanner with empty state.
func New(opts Options) (*Scanner, error) {
	markers := extract.Markers{Start: opts.Start, End: opts.End}
	if err := markers.Validate(); err != nil {
		return nil, err
	}
	if opts.KeyPattern != "" {
		re, err := regexp.Compile(opts.KeyPattern)
		if err != nil {
			return nil, fmt.Errorf("dupscan: invalid key pattern: %w", err)
		}
		markers.Pattern = re
	}
	return &Scanner{
		markers:     markers,
		sentinel:    opts.Sentinel,
		strict:      opts.Strict,
		onMalformed: opts.OnMalformed,
		seen:        make(map[string]struct{}),
	}, nil
}

// Observe processes one line.
//
// It returns the Event and true when the line produced one; false for
// sentinel and (non-strict) malformed lines. In strict mode a malformed line
// returns a *LineError and leaves the seen set untouched.
func (s *Scanner) Observe(line string) (Event, bool, error) {
	s.res.Lines++
	n := s.res.Lines

	key, err := s.markers.Extract(line)
	if err != nil {
		s.res.Malformed++
		if s.onMalformed != nil {
			s.onMalformed(n, line, err)
		}
		if s.strict {
			return Event{}, false, &LineError{Line: n, Text: line, Err: err}
		}
		return Event{}, false, nil
	}

	if s.sentinel != "" && key == s.sentinel {
		s.res.Excluded++
		return Event{}, false, nil
	}

	_, repeat := s.seen[key]
	if repeat {
		s.res.Matches = append(s.res.Matches, key)
	} else {
		s.seen[key] = struct{}{}
	}
	s.res.Emitted++

	return Event{Line: n, Key: key, Repeat: repeat}, true, nil
}

// Scan consumes lines in order, passing each Event to emit (which may be nil).
// An error from emit or a strict-mode LineError stops the scan; the Result
// then covers the lines read so far.
//
// State carries over between calls; the returned Result is cumulative.
func (s *Scanner) Scan(lines iter.Seq[string], emit func(Event) error) (Result, error) {
	for line := range lines {
		ev, ok, err := s.Observe(line)
		if err != nil {
			return s.Result(), err
		}
		if !ok || emit == nil {
			continue
		}
		if err := emit(ev); err != nil {
			return s.Result(), err
		}
	}
	return s.Result(), nil
}

// Result returns a snapshot of the counters and matches so far.
func (s *Scanner) Result() Result {
	res := s.res
	res.Matches = append([]string(nil), s.res.Matches...)
	return res
}

// Seen reports whether key has been recorded.
func (s *Scanner) Seen(key string) bool {
	_, ok := s.seen[key]
	return ok
}

// Reset discards all state so the Scanner can process a new stream.
func (s *Scanner) Reset() {
	clear(s.seen)
	s.res = Result{}
}
