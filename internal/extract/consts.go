package extract

const (
	// ============================================================================
	// pagemap Dump Markers
	// ============================================================================

	// DefaultStart precedes the page frame number on a pagemap dump line,
	// e.g. "0x7f3a2c000000: pfn 3b4bf1 soft-dirty 1 file/shared 0 ...".
	DefaultStart = ": pfn"

	// DefaultEnd follows the page frame number on a pagemap dump line.
	DefaultEnd = "soft-dirty"

	// DefaultSentinel is the key pagemap prints for a page that is not present.
	// Lines carrying it are never tracked.
	DefaultSentinel = "0"
)
