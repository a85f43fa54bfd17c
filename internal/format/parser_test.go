package format

import (
	"testing"

	"github.com/daedaluz/scn/internal/argtype"
)

func TestParseLiteralOnly(t *testing.T) {
	ch, err := Parse("hello world")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ch.Fields) != 0 || len(ch.Literals) != 1 || ch.Literals[0] != "hello world" {
		t.Fatalf("got %+v", ch)
	}
}

func TestParseAutoIndices(t *testing.T) {
	ch, err := Parse("{} and {}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ch.Fields) != 2 || ch.Fields[0].ArgIndex != 0 || ch.Fields[1].ArgIndex != 1 {
		t.Fatalf("got %+v", ch.Fields)
	}
}

func TestParseExplicitIndices(t *testing.T) {
	ch, err := Parse("{1} {0}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Fields[0].ArgIndex != 1 || ch.Fields[1].ArgIndex != 0 {
		t.Fatalf("got %+v", ch.Fields)
	}
}

func TestParseMixedIndicesRejected(t *testing.T) {
	_, err := Parse("{0} {}")
	if err == nil {
		t.Fatalf("expected error mixing explicit/automatic indices")
	}
}

func TestParseEscapedBraces(t *testing.T) {
	ch, err := Parse("{{}} {}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Literals[0] != "{} " {
		t.Fatalf("got literal %q", ch.Literals[0])
	}
}

func TestParseUnmatchedCloseBrace(t *testing.T) {
	_, err := Parse("abc}")
	if err == nil {
		t.Fatalf("expected error for unmatched '}'")
	}
}

func TestParseWidthAlignFill(t *testing.T) {
	ch, err := Parse("{:*>10d}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if s.Fill != '*' || s.Align != AlignRight || s.Width != 10 || s.Type != PresIntDecimal {
		t.Fatalf("got %+v", s)
	}
}

func TestParseArbitraryBase(t *testing.T) {
	ch, err := Parse("{:d7}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if s.Type != PresIntArbitraryBase || s.ArbitraryBase != 7 {
		t.Fatalf("got %+v", s)
	}
}

func TestParseArbitraryBaseOutOfRange(t *testing.T) {
	_, err := Parse("{:d99}")
	if err == nil {
		t.Fatalf("expected error for out-of-range base")
	}
}

func TestParseCharsetShorthand(t *testing.T) {
	ch, err := Parse(`{:[\w]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if s.Type != PresCharacterSet || s.Charset == nil {
		t.Fatalf("got %+v", s)
	}
	if !s.Charset.Contains('a') || s.Charset.Contains(' ') {
		t.Fatalf("charset contents wrong: %+v", s.Charset)
	}
}

func TestParseCharsetNegatedPosixClass(t *testing.T) {
	ch, err := Parse("{:[^:digit:]}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if !s.Charset.Negate {
		t.Fatalf("expected negated set")
	}
	if s.Charset.Contains('5') || !s.Charset.Contains('a') {
		t.Fatalf("negated digit class wrong: %+v", s.Charset)
	}
}

func TestParseCharsetNegatedWordShorthand(t *testing.T) {
	ch, err := Parse(`{:[\W]}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if s.Type != PresCharacterSet || s.Charset == nil {
		t.Fatalf("got %+v", s)
	}
	if s.Charset.Contains('a') || !s.Charset.Contains(' ') {
		t.Fatalf("negated word-shorthand contents wrong: %+v", s.Charset)
	}
}

func TestParseCharsetMissingPosixClasses(t *testing.T) {
	for _, name := range []string{"xdigit", "cntrl", "graph", "print", "blank"} {
		if _, err := Parse("{:[:" + name + ":]}"); err != nil {
			t.Fatalf("unexpected error parsing POSIX class %q: %v", name, err)
		}
	}
}

func TestParseRegexField(t *testing.T) {
	ch, err := Parse(`{:/[a-z]+/i}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := ch.Fields[0].Spec
	if s.Type != PresRegex || s.RegexPattern != "[a-z]+" || s.RegexFlags != "i" {
		t.Fatalf("got %+v", s)
	}
}

func TestParseUnknownPresentationLetter(t *testing.T) {
	_, err := Parse("{:z}")
	if err == nil {
		t.Fatalf("expected error for unknown presentation letter")
	}
}

func TestCheckAgainstRejectsIncompatibleCategory(t *testing.T) {
	ch, err := Parse("{:f}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cerr := ch.CheckAgainst(func(i int) (argtype.Category, bool) {
		return argtype.CategoryString, true
	})
	if cerr == nil {
		t.Fatalf("expected rejection of float presentation on a string argument")
	}
}

func TestCheckAgainstAcceptsCompatibleCategory(t *testing.T) {
	ch, err := Parse("{:x}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cerr := ch.CheckAgainst(func(i int) (argtype.Category, bool) {
		return argtype.CategoryInteger, true
	})
	if cerr != nil {
		t.Fatalf("unexpected rejection: %v", cerr)
	}
}

func TestCheckAgainstOutOfRangeIndex(t *testing.T) {
	ch, err := Parse("{5}")
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	cerr := ch.CheckAgainst(func(i int) (argtype.Category, bool) {
		return argtype.Category(0), false
	})
	if cerr == nil {
		t.Fatalf("expected out-of-range error")
	}
}
