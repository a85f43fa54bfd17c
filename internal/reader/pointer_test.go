package reader

import (
	"testing"

	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/source"
)

func TestPointerReaderBasic(t *testing.T) {
	r := source.FromString("0x1a2b rest")
	var v uintptr
	n, err := pointerReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0x1a2b {
		t.Fatalf("got %x, want 1a2b", v)
	}
	if n != len("0x1a2b") {
		t.Fatalf("consumed %d, want %d", n, len("0x1a2b"))
	}
}

func TestPointerReaderRequiresPrefix(t *testing.T) {
	r := source.FromString("1a2b")
	var v uintptr
	_, err := pointerReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for missing 0x prefix")
	}
}

func TestPointerReaderRequiresDigitsAfterPrefix(t *testing.T) {
	r := source.FromString("0xzz")
	var v uintptr
	_, err := pointerReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for no hex digits after 0x")
	}
}
