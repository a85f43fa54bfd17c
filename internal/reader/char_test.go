package reader

import (
	"testing"

	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/source"
)

func TestByteReaderASCII(t *testing.T) {
	r := source.FromString("abc")
	var v byte
	n, err := byteReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 'a' || n != 1 {
		t.Fatalf("got v=%v n=%d", v, n)
	}
}

func TestByteReaderRejectsMultiByte(t *testing.T) {
	r := source.FromString("é")
	var v byte
	_, err := byteReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for multi-byte code point")
	}
}

func TestRuneReaderMultiByte(t *testing.T) {
	r := source.FromString("é")
	var v rune
	n, err := runeReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 'é' || n != 1 {
		t.Fatalf("got v=%q n=%d", v, n)
	}
}

func TestRuneReaderEndOfRange(t *testing.T) {
	r := source.FromString("")
	var v rune
	_, err := runeReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected EndOfRange error")
	}
}
