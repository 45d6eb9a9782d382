/*
File   : lox/internal/lexer/source.go
*/
package lexer

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// PrepareSource normalizes raw source bytes before scanning: it strips a
// leading UTF-8 byte-order mark (some editors on Windows still emit one)
// and validates that what remains is well-formed UTF-8. Lox source is
// treated as plain UTF-8 text (§6.2); a file that fails this check is
// reported the same way a scan error would be, before a single token is
// produced.
func PrepareSource(raw []byte) (string, error) {
	stripped, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(stripped) {
		return "", errors.New("source is not valid UTF-8")
	}
	return string(stripped), nil
}
