package linesrc

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding indicates an encoding name not in Encodings.
var ErrUnknownEncoding = errors.New("linesrc: unknown encoding")

// Encodings lists the accepted encoding names, canonical spelling first.
var Encodings = []string{"utf-8", "latin1", "windows-1252", "utf-16", "utf-16le", "utf-16be"}

// lookupEncoding maps a name to a decoder. A nil encoding means the input is
// passed through untouched (UTF-8).
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "latin1", "latin-1", "iso-8859-1":
		return charmap.ISO8859_1, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252, nil
	case "utf-16":
		// BOM decides; little endian without one, as Windows tools write it.
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case "utf-16le":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "utf-16be":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	default:
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownEncoding, name, strings.Join(Encodings, ", "))
	}
}
