package reader

import (
	"testing"

	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/source"
)

func TestIntReaderDecimal(t *testing.T) {
	r := source.FromString("  -42rest")
	var v int64
	spec := format.DefaultSpec()
	spec.Type = format.PresIntDecimal
	n, err := intReader(64, true)(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != -42 {
		t.Fatalf("got %d, want -42", v)
	}
	if n != 3 {
		t.Fatalf("consumed %d, want 3", n)
	}
}

func TestIntReaderHexPrefix(t *testing.T) {
	r := source.FromString("0x2A")
	var v int32
	n, err := intReader(32, true)(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 || n != 4 {
		t.Fatalf("got v=%d n=%d", v, n)
	}
}

func TestIntReaderOverflow(t *testing.T) {
	r := source.FromString("300")
	var v int8
	_, err := intReader(8, true)(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected overflow error for int8")
	}
}

func TestIntReaderUnsignedRejectsSign(t *testing.T) {
	r := source.FromString("-5")
	var v uint32
	_, err := intReader(32, false)(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for '-' on unsigned field")
	}
}

func TestIntReaderNoDigits(t *testing.T) {
	r := source.FromString("abc")
	var v int64
	_, err := intReader(64, true)(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for no digits")
	}
}

func TestIntReaderThousandsSeparator(t *testing.T) {
	r := source.FromString("123,456,789")
	var v int64
	spec := format.DefaultSpec()
	spec.Thsep = true
	n, err := intReader(64, true)(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 123456789 {
		t.Fatalf("got %d, want 123456789", v)
	}
	if n != len("123,456,789") {
		t.Fatalf("consumed %d, want %d", n, len("123,456,789"))
	}
}

func TestIntReaderBinary(t *testing.T) {
	r := source.FromString("1010")
	var v int64
	spec := format.DefaultSpec()
	spec.Type = format.PresIntBinary
	n, err := intReader(64, true)(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 10 || n != 4 {
		t.Fatalf("got v=%d n=%d", v, n)
	}
}

func TestIntReaderArbitraryBase(t *testing.T) {
	r := source.FromString("16")
	var v int64
	spec := format.DefaultSpec()
	spec.Type = format.PresIntArbitraryBase
	spec.ArbitraryBase = 7
	n, err := intReader(64, true)(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 13 || n != 2 { // "16" in base 7 = 1*7+6 = 13
		t.Fatalf("got v=%d n=%d", v, n)
	}
}
