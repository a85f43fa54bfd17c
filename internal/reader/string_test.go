package reader

import (
	"strings"
	"testing"

	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/source"
)

func TestStringReaderDefault(t *testing.T) {
	r := source.FromString("  hello world")
	var v string
	n, err := stringReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" || n != 5 {
		t.Fatalf("got v=%q n=%d", v, n)
	}
}

func TestStringReaderPrecisionTruncates(t *testing.T) {
	r := source.FromString("hello")
	var v string
	spec := format.DefaultSpec()
	spec.Precision = 3
	spec.HasPrecision = true
	_, err := stringReader(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hel" {
		t.Fatalf("got %q, want %q", v, "hel")
	}
}

func TestStringReaderCharset(t *testing.T) {
	r := source.FromString("abc123")
	ch, perr := format.Parse(`{:[:alpha:]}`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	var v string
	_, err := stringReader(r, &v, ch.Fields[0].Spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "abc" {
		t.Fatalf("got %q, want %q", v, "abc")
	}
}

func TestStringReaderFixedChars(t *testing.T) {
	r := source.FromString("abc def")
	var v string
	spec := format.DefaultSpec()
	spec.Type = format.PresCharFixed
	spec.Precision = 4
	spec.HasPrecision = true
	n, err := stringReader(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "abc " || n != 4 {
		t.Fatalf("got v=%q n=%d", v, n)
	}
}

func TestStringReaderCharsetDoesNotSkipLeadingWhitespace(t *testing.T) {
	r := source.FromString(" abc_123")
	ch, perr := format.Parse(`{:[\W]}`)
	if perr != nil {
		t.Fatalf("parse error: %v", perr)
	}
	var v string
	_, err := stringReader(r, &v, ch.Fields[0].Spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != " " {
		t.Fatalf("got %q, want %q", v, " ")
	}
}

func TestStringViewReaderNoCopy(t *testing.T) {
	r := source.FromString("hello world")
	var v string
	n, err := stringViewReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "hello" || n != 5 {
		t.Fatalf("got v=%q n=%d", v, n)
	}
}

func TestStringViewReaderRejectsNonContiguous(t *testing.T) {
	r := source.FromReader(strings.NewReader("hello"))
	var v string
	_, err := stringViewReader(r, &v, format.DefaultSpec(), locale.Classic())
	if err == nil {
		t.Fatalf("expected error for non-contiguous source")
	}
}

func TestReadQuoted(t *testing.T) {
	r := source.FromString(`"like\tthis"rest`)
	var v string
	spec := format.DefaultSpec()
	spec.Type = format.PresQuoted
	n, err := stringReader(r, &v, spec, locale.Classic())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != "like\tthis" {
		t.Fatalf("got %q", v)
	}
	if n != len(`"like\tthis"`) {
		t.Fatalf("consumed %d, want %d", n, len(`"like\tthis"`))
	}
}

func TestReadQuotedUnterminated(t *testing.T) {
	r := source.FromString(`"oops`)
	var v string
	spec := format.DefaultSpec()
	spec.Type = format.PresQuoted
	_, err := stringReader(r, &v, spec, locale.Classic())
	if err == nil {
		t.Fatalf("expected error for unterminated quoted string")
	}
}
