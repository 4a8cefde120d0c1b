package dupscan

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
)

const (
	// RepeatAnnotation follows a key on its second and later occurrences.
	RepeatAnnotation = " match!"

	// summaryFormat is the final line of text output.
	summaryFormat = "%d matches\n"
)

// Reporter renders a scan.
type Reporter interface {
	// Event is called once per reported key, in stream order.
	Event(ev Event) error
	// Summary is called once after the stream ends.
	Summary(res Result) error
}

// TextWriter writes one line per key followed by a summary line:
//
//	123
//	456
//	123 match!
//	1 matches
type TextWriter struct {
	w *bufio.Writer

	// Quiet suppresses the per-key lines; only the summary is written.
	Quiet bool
}

// NewTextWriter buffers output to w. Summary flushes it.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: bufio.NewWriter(w)}
}

// Event writes the key, annotated if it is a repeat.
func (t *TextWriter) Event(ev Event) error {
	if t.Quiet {
		return nil
	}
	if _, err := t.w.WriteString(ev.Key); err != nil {
		return err
	}
	if ev.Repeat {
		if _, err := t.w.WriteString(RepeatAnnotation); err != nil {
			return err
		}
	}
	return t.w.WriteByte('\n')
}

// Summary writes the repeat count and flushes.
func (t *TextWriter) Summary(res Result) error {
	if _, err := fmt.Fprintf(t.w, summaryFormat, res.Count()); err != nil {
		return err
	}
	return t.w.Flush()
}

// Flush writes any buffered key lines without a summary.
func (t *TextWriter) Flush() error {
	return t.w.Flush()
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	Keys      []Event  `json:"keys"`
	Matches   []string `json:"matches"`
	Count     int      `json:"count"`
	Lines     int      `json:"lines"`
	Excluded  int      `json:"excluded"`
	Malformed int      `json:"malformed"`
}

// JSONWriter collects events and writes a single indented JSONReport on
// Summary.
type JSONWriter struct {
	w    io.Writer
	keys []Event

	// Quiet leaves the keys array empty.
	Quiet bool
}

// NewJSONWriter returns a JSONWriter writing to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w, keys: []Event{}}
}

// Event records ev.
func (j *JSONWriter) Event(ev Event) error {
	if !j.Quiet {
		j.keys = append(j.keys, ev)
	}
	return nil
}

// Summary encodes the report.
func (j *JSONWriter) Summary(res Result) error {
	matches := res.Matches
	if matches == nil {
		matches = []string{}
	}
	encoder := json.NewEncoder(j.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(JSONReport{
		Keys:      j.keys,
		Matches:   matches,
		Count:     res.Count(),
		Lines:     res.Lines,
		Excluded:  res.Excluded,
		Malformed: res.Malformed,
	})
}
