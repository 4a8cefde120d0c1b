//go:build windows

package mmfile

// Map reads the entire file; input files are read once, front to back.
func Map(path string) ([]byte, func() error, error) {
	return readAll(path)
}
