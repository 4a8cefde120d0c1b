// Package mmfile provides platform-specific helpers for memory-mapping input files.
package mmfile

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegular indicates the path is not a regular file (a pipe, device or
// directory) and cannot be mapped.
var ErrNotRegular = errors.New("mmfile: not a regular file")

func noop() error { return nil }

func readAll(path string) ([]byte, func() error, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, noop, err
	}
	if !info.Mode().IsRegular() {
		return nil, noop, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, noop, err
	}
	return data, noop, nil
}
