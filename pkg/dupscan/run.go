package dupscan

import (
	"io"

	"github.com/pagesanity/pfnscan/internal/linesrc"
)

// Run reads UTF-8 lines from r and writes the text report to w.
// The summary line is written only when the whole input was scanned; on error
// the key lines written so far are flushed.
func Run(r io.Reader, w io.Writer, opts Options) (Result, error) {
	sc, err := New(opts)
	if err != nil {
		return Result{}, err
	}
	src, err := linesrc.New(r, linesrc.DefaultOptions())
	if err != nil {
		return Result{}, err
	}

	tw := NewTextWriter(w)
	res, err := sc.Scan(src.All(), tw.Event)
	if err == nil {
		err = src.Err()
	}
	if err != nil {
		_ = tw.Flush()
		return res, err
	}
	return res, tw.Summary(res)
}
