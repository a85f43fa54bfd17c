package uniseg

import (
	"io"
	"unicode/utf16"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodeUTF16 turns a slice of decoded code points into their UTF-16
// representation (surrogate pairs for anything above the BMP).
func EncodeUTF16(rs []rune) []uint16 {
	return utf16.Encode(rs)
}

// DecodeUTF16 turns UTF-16 code units into code points, replacing invalid
// surrogate sequences with utf8.RuneError, matching the stdlib's own policy.
func DecodeUTF16(units []uint16) []rune {
	return utf16.Decode(units)
}

// DecodeUTF16Stream wraps a byte-oriented io.Reader that carries UTF-16 text
// (optionally BOM-prefixed) and exposes it as code points, for wide sources
// handed to the library as a raw byte stream (e.g. a file opened in binary
// mode) rather than as native uint16 code units.
//
// Grounded on golang.org/x/text/encoding/unicode + golang.org/x/text/transform,
// both required directly by the charmbracelet/glow go.mod in the retrieved
// pack.
func DecodeUTF16Stream(r io.Reader, bo unicode.BOMPolicy) io.Reader {
	dec := unicode.UTF16(unicode.BigEndian, bo).NewDecoder()
	return transform.NewReader(r, dec)
}
