package linesrc

const (
	// ScannerInitialBufferSize is the initial line buffer (64KB).
	ScannerInitialBufferSize = 64 * 1024

	// DefaultMaxLineSize caps a single line (1MB). pagemap dump lines are well
	// under 200 bytes; anything longer is almost certainly not line-oriented.
	DefaultMaxLineSize = 1024 * 1024

	// StdinPath names standard input on the command line.
	StdinPath = "-"
)
