//go:build !linux && !darwin && !freebsd && !windows

package mmfile

// Map reads the entire file on platforms without a mapped path.
func Map(path string) ([]byte, func() error, error) {
	return readAll(path)
}
