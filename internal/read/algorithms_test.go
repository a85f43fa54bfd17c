package read

import (
	"testing"
	"unicode"

	"github.com/daedaluz/scn/internal/source"
)

func TestSkipClassicWhitespace(t *testing.T) {
	r := source.FromString("  \n\t42")
	if err := SkipClassicWhitespace(r, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cp, _, _ := r.PeekRune()
	if cp != '4' {
		t.Fatalf("expected cursor at '4', got %q", cp)
	}
}

func TestSkipClassicWhitespaceIdempotent(t *testing.T) {
	r := source.FromString("   abc")
	SkipClassicWhitespace(r, true)
	pos1 := r.Pos()
	SkipClassicWhitespace(r, true)
	pos2 := r.Pos()
	if pos1 != pos2 {
		t.Fatalf("skip not idempotent: %d != %d", pos1, pos2)
	}
}

func TestSkipClassicWhitespaceExhaustionError(t *testing.T) {
	r := source.FromString("   ")
	if err := SkipClassicWhitespace(r, false); err == nil {
		t.Fatalf("expected EndOfRange error")
	}
}

func TestReadMaximal(t *testing.T) {
	r := source.FromString("abc def")
	got := ReadMaximal(r, func(cp rune) bool { return !unicode.IsSpace(cp) })
	if string(got) != "abc" {
		t.Fatalf("got %q, want %q", string(got), "abc")
	}
	cp, _, _ := r.PeekRune()
	if cp != ' ' {
		t.Fatalf("cursor should be at space, got %q", cp)
	}
}

func TestReadExactly(t *testing.T) {
	r := source.FromString("abc def")
	got, err := ReadExactly(r, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "abc " {
		t.Fatalf("got %q, want %q", string(got), "abc ")
	}
}

func TestReadExactlyShortSource(t *testing.T) {
	r := source.FromString("ab")
	_, err := ReadExactly(r, 5)
	if err == nil {
		t.Fatalf("expected EndOfRange error")
	}
}

func TestReadNWidthUnits(t *testing.T) {
	r := source.FromString("世ab")
	got := ReadNWidthUnits(r, 3, func(cp rune) int {
		if cp == '世' {
			return 2
		}
		return 1
	})
	if string(got) != "世a" {
		t.Fatalf("got %q, want %q", string(got), "世a")
	}
}
