package source

import (
	"bytes"
	"strings"
	"testing"

	"golang.org/x/text/encoding/unicode"
)

func TestContiguousNarrowPeekAdvance(t *testing.T) {
	r := FromString("héllo")
	cp, w, ok := r.PeekRune()
	if !ok || cp != 'h' || w != 1 {
		t.Fatalf("PeekRune() = %q,%d,%v want 'h',1,true", cp, w, ok)
	}
	r.Advance(w)
	cp, w, ok = r.PeekRune()
	if !ok || cp != 'é' || w != 2 {
		t.Fatalf("PeekRune() = %q,%d,%v want 'é',2,true", cp, w, ok)
	}
	tail, ok := r.ContiguousTail()
	if !ok || tail != "éllo" {
		t.Fatalf("ContiguousTail() = %q,%v want %q,true", tail, ok, "éllo")
	}
}

func TestBufferedNarrowMatchesContiguous(t *testing.T) {
	const s = "héllo world"
	cr := FromString(s)
	br := FromReader(strings.NewReader(s))

	var gotC, gotB []rune
	for {
		cp, w, ok := cr.PeekRune()
		if !ok {
			break
		}
		gotC = append(gotC, cp)
		cr.Advance(w)
	}
	for {
		cp, w, ok := br.PeekRune()
		if !ok {
			break
		}
		gotB = append(gotB, cp)
		br.Advance(w)
	}
	if string(gotC) != string(gotB) {
		t.Fatalf("contiguous read %q != buffered read %q", string(gotC), string(gotB))
	}
}

func TestWideContiguous(t *testing.T) {
	r := FromRunes([]rune("a€b"))
	cp, w, ok := r.PeekRune()
	if !ok || cp != 'a' || w != 1 {
		t.Fatalf("PeekRune() = %q,%d,%v", cp, w, ok)
	}
	r.Advance(w)
	cp, _, _ = r.PeekRune()
	if cp != '€' {
		t.Fatalf("expected '€', got %q", cp)
	}
}

func TestFromUTF16ReaderTranscodes(t *testing.T) {
	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.String("hi€")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	r := FromUTF16Reader(bytes.NewReader([]byte(encoded)), unicode.IgnoreBOM)
	var got []rune
	for {
		cp, w, ok := r.PeekRune()
		if !ok {
			break
		}
		got = append(got, cp)
		r.Advance(w)
	}
	if string(got) != "hi€" {
		t.Fatalf("got %q, want %q", string(got), "hi€")
	}
}

func TestSetPosRewindNarrowBuffered(t *testing.T) {
	r := FromReader(strings.NewReader("abcdef"))
	r.Advance(1)
	r.Advance(1)
	pos := r.Pos()
	r.Advance(1)
	r.SetPos(pos)
	cp, _, ok := r.PeekRune()
	if !ok || cp != 'c' {
		t.Fatalf("after SetPos rewind, PeekRune() = %q, want 'c'", cp)
	}
}
