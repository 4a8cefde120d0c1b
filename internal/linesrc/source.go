// Package linesrc turns a byte stream into a lazy, forward-only sequence of
// text lines.
package linesrc

import (
	"bufio"
	"bytes"
	"io"
	"iter"
	"os"

	"golang.org/x/text/transform"

	"github.com/pagesanity/pfnscan/internal/mmfile"
)

// Options controls how input bytes become lines.
type Options struct {
	// Encoding names the input charset (see Encodings). Empty means UTF-8.
	Encoding string

	// MaxLineSize caps the length of a single line in bytes.
	// Default: DefaultMaxLineSize
	MaxLineSize int
}

// DefaultOptions returns UTF-8 input with the default line cap.
func DefaultOptions() Options {
	return Options{MaxLineSize: DefaultMaxLineSize}
}

// Source yields the lines of one input stream exactly once.
type Source struct {
	scanner  *bufio.Scanner
	consumed bool
	err      error
}

// New wraps r, decoding it per opts.Encoding.
func New(r io.Reader, opts Options) (*Source, error) {
	enc, err := lookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	if enc != nil {
		r = transform.NewReader(r, enc.NewDecoder())
	}

	maxLine := opts.MaxLineSize
	if maxLine <= 0 {
		maxLine = DefaultMaxLineSize
	}
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, min(ScannerInitialBufferSize, maxLine))
	scanner.Buffer(buf, maxLine)

	return &Source{scanner: scanner}, nil
}

// All returns the sequence of lines with "\n" or "\r\n" stripped.
// The sequence is not restartable: once iteration has begun, later calls yield
// nothing. Stopping early leaves the remaining input unread.
func (s *Source) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		if s.consumed {
			return
		}
		s.consumed = true
		for s.scanner.Scan() {
			if !yield(s.scanner.Text()) {
				return
			}
		}
		s.err = s.scanner.Err()
	}
}

// Err returns the first read error encountered by All, if any.
func (s *Source) Err() error {
	return s.err
}

// Open opens the named input. StdinPath reads standard input; any other path is
// memory-mapped. The returned closer releases the mapping.
func Open(path string, opts Options) (*Source, io.Closer, error) {
	if path == StdinPath {
		src, err := New(os.Stdin, opts)
		return src, nopCloser{}, err
	}

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, nil, err
	}
	src, err := New(bytes.NewReader(data), opts)
	if err != nil {
		_ = cleanup()
		return nil, nil, err
	}
	return src, closerFunc(cleanup), nil
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
