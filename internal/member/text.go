// internal/member/text.go
package member

import (
	"strings"
	"unicode/utf8"
)

// Text renders raw header bytes (name or comment) as text. Invalid UTF-8
// sequences are replaced by U+FFFD instead of failing.
func Text(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	return strings.ToValidUTF8(string(raw), string(utf8.RuneError))
}
