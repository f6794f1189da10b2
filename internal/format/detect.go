// internal/format/detect.go
package format

import (
	"path/filepath"
	"strings"
)

// Suffix is the only input extension the tool accepts
const Suffix = ".gz"

// Gzip member magic (ID1, ID2) followed by the only defined method, deflate
var GzipMagic = []byte{0x1f, 0x8b, 0x08}

// Format represents the detected input format
type Format int

const (
	FormatUnknown Format = iota
	FormatGzip
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatGzip:
		return "GZIP"
	default:
		return "UNKNOWN"
	}
}

// DetectFormat detects the input format from magic bytes
// Requires at least 3 bytes
func DetectFormat(magic []byte) Format {
	if IsGzip(magic) {
		return FormatGzip
	}
	return FormatUnknown
}

// IsGzip returns true if the magic bytes start a deflate gzip member
func IsGzip(magic []byte) bool {
	return len(magic) >= len(GzipMagic) &&
		magic[0] == GzipMagic[0] && magic[1] == GzipMagic[1] && magic[2] == GzipMagic[2]
}

// HasSuffix reports whether the extension of name's last element is exactly Suffix.
// A dot-file such as ".gz" has no extension and does not match.
func HasSuffix(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".") && strings.Count(base, ".") == 1 {
		return false
	}
	return filepath.Ext(base) == Suffix
}
