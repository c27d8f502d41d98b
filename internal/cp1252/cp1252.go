// Package cp1252 decodes and encodes the Windows-1252 text CC2 and CC1
// carry in their text fields. It plays the same role here that
// repparser.go's koreanString plays for SC:BW replay titles: a thin
// transform.Bytes wrapper around an x/text codepage so the parser never
// hand-rolls a byte-to-rune table.
package cp1252

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Decode converts Windows-1252 bytes to a Go (UTF-8) string. Bytes that do
// not map to a Windows-1252 codepoint decode to the Unicode replacement
// character rather than aborting. The bool is false only when the transform
// itself fails, in which case the input bytes are returned unconverted.
func Decode(b []byte) (string, bool) {
	dec := charmap.Windows1252.NewDecoder()
	out, _, err := transform.Bytes(dec, b)
	if err != nil {
		return string(b), false
	}
	return string(out), true
}

// Encode converts a Go string back to Windows-1252 bytes. Runes with no
// Windows-1252 codepoint are replaced with '?', matching the best-effort
// replacement policy spec.md §4.1 calls for.
func Encode(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// DecodeCString decodes a NUL-terminated (or fully-consumed) Windows-1252
// byte run, the shape every DAT/TWS text tag uses.
func DecodeCString(b []byte) string {
	for i, ch := range b {
		if ch == 0 {
			s, _ := Decode(b[:i])
			return s
		}
	}
	s, _ := Decode(b)
	return s
}
