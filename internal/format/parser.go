package format

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/daedaluz/scn/internal/scnerr"
)

// maxCodePoint is the highest valid Unicode scalar value, used as the upper
// bound when complementing a shorthand class's ranges for its negated form
// (\W, \D, \S).
const maxCodePoint = 0x10FFFF

// cursor is a single read position over a format string's runes, in the
// recursive-descent scanner idiom this package is grounded on.
type cursor struct {
	runes []rune
	pos   int
}

func newCursor(s string) *cursor {
	return &cursor{runes: []rune(s)}
}

func (c *cursor) eof() bool { return c.pos >= len(c.runes) }

func (c *cursor) peek() rune {
	if c.eof() {
		return 0
	}
	return c.runes[c.pos]
}

func (c *cursor) next() rune {
	r := c.peek()
	c.pos++
	return r
}

// Parse tokenizes a format string into literal runs and `{…}` fields,
// validates the field grammar (I-F2: mixed explicit/implicit arg-ids is
// illegal, I-F3: unknown specifier letters are illegal), and resolves each
// field's argument index. It does not check a field's spec against its
// argument's type; CheckAgainst does that once argument types are known.
func Parse(formatStr string) (*Checked, *scnerr.Error) {
	c := newCursor(formatStr)
	out := &Checked{}
	var lit strings.Builder

	autoIndex := 0
	explicitSeen := false
	implicitSeen := false

	for !c.eof() {
		r := c.next()
		switch r {
		case '{':
			if c.peek() == '{' {
				c.next()
				lit.WriteRune('{')
				continue
			}
			out.Literals = append(out.Literals, lit.String())
			lit.Reset()
			field, err := parseField(c)
			if err != nil {
				return nil, err
			}
			if field.ArgIndex >= 0 {
				explicitSeen = true
			} else {
				implicitSeen = true
				field.ArgIndex = autoIndex
				autoIndex++
			}
			if explicitSeen && implicitSeen {
				return nil, scnerr.NewError(scnerr.InvalidFormatString,
					"cannot mix explicit and automatic argument indices")
			}
			out.Fields = append(out.Fields, *field)
		case '}':
			if c.peek() == '}' {
				c.next()
				lit.WriteRune('}')
				continue
			}
			return nil, scnerr.NewError(scnerr.InvalidFormatString, "unmatched '}' in format string")
		default:
			lit.WriteRune(r)
		}
	}
	out.Literals = append(out.Literals, lit.String())
	return out, nil
}

// parseField parses the body of a `{…}` field, with the opening `{` already
// consumed. It consumes through the closing `}`.
func parseField(c *cursor) (*Field, *scnerr.Error) {
	f := &Field{ArgIndex: -1, Spec: DefaultSpec()}

	if isDigit(c.peek()) {
		n, err := parseUint(c)
		if err != nil {
			return nil, err
		}
		f.ArgIndex = n
	}

	if c.peek() == ':' {
		c.next()
		if err := parseSpec(c, &f.Spec); err != nil {
			return nil, err
		}
	}

	if c.eof() || c.peek() != '}' {
		return nil, scnerr.NewError(scnerr.InvalidFormatString, "unterminated replacement field")
	}
	c.next()
	return f, nil
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func parseUint(c *cursor) (int, *scnerr.Error) {
	start := c.pos
	for isDigit(c.peek()) {
		c.next()
	}
	s := string(c.runes[start:c.pos])
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, scnerr.NewWrappedError(scnerr.InvalidFormatString, "invalid numeric literal in field", err)
	}
	return n, nil
}

// parseSpec parses the grammar after `:` up to (not including) the closing
// `}`, per spec.md §3:
//
//	[[fill]align][sign]["#"]["0"][width]["," | "_"]["L"]["." precision][type]
//
// plus the extended forms for charset (`[…]`), regex (`/…/flags`), and
// arbitrary-base integers (`dNN`).
func parseSpec(c *cursor, s *Spec) *scnerr.Error {
	// [[fill]align]
	// A leading '[' always opens a character set and is never taken as a
	// fill character, so `[^…]` is a negated set, not fill '[' + align '^'.
	if !c.eof() && c.peek() != '[' {
		save := c.pos
		var fill rune = ' '
		hasFill := false
		if !isAlignChar(c.peek()) {
			fill = c.peek()
			hasFill = true
			c.next()
		}
		if isAlignChar(c.peek()) {
			s.Fill = fill
			switch c.next() {
			case '<':
				s.Align = AlignLeft
			case '>':
				s.Align = AlignRight
			case '^':
				s.Align = AlignCenter
			}
			_ = hasFill
		} else {
			c.pos = save
		}
	}

	// [sign]
	switch c.peek() {
	case '+':
		s.Sign = SignPlus
		c.next()
	case '-':
		s.Sign = SignMinus
		c.next()
	case ' ':
		s.Sign = SignSpace
		c.next()
	}

	// ["#"]
	if c.peek() == '#' {
		s.Alt = true
		c.next()
	}

	// ["0"]
	if c.peek() == '0' {
		s.ZeroPad = true
		c.next()
	}

	// [width]
	if isDigit(c.peek()) {
		n, err := parseUint(c)
		if err != nil {
			return err
		}
		s.Width = n
		s.HasWidth = true
	}

	// ["," | "_"] (thousands separator, localized grouping)
	if c.peek() == ',' || c.peek() == '_' {
		s.Thsep = true
		c.next()
	}

	// ["L"] (locale-aware numeric parsing)
	if c.peek() == 'L' {
		s.Localized = true
		c.next()
	}

	// ["." precision]
	if c.peek() == '.' {
		c.next()
		if !isDigit(c.peek()) {
			return scnerr.NewError(scnerr.InvalidFormatString, "expected digits after '.' in precision")
		}
		n, err := parseUint(c)
		if err != nil {
			return err
		}
		s.Precision = n
		s.HasPrecision = true
	}

	// type / extended forms
	if c.eof() || c.peek() == '}' {
		return nil
	}

	switch c.peek() {
	case '[':
		return parseCharset(c, s)
	case '/':
		return parseRegex(c, s)
	case 'd':
		return parseArbitraryBaseOrDecimal(c, s)
	}

	r := c.next()
	pres, ok := presentationLetters[r]
	if !ok {
		return scnerr.NewError(scnerr.InvalidFormatString, fmt.Sprintf("unknown presentation type %q", r))
	}
	s.Type = pres
	return nil
}

func isAlignChar(r rune) bool { return r == '<' || r == '>' || r == '^' }

var presentationLetters = map[rune]Presentation{
	'b': PresIntBinary,
	'B': PresIntBinary,
	'o': PresIntOctal,
	'O': PresIntOctal,
	'i': PresIntGeneric,
	'x': PresIntHex,
	'X': PresIntHex,
	'u': PresIntUnsigned,
	'f': PresFloatFixed,
	'F': PresFloatFixed,
	'e': PresFloatScientific,
	'E': PresFloatScientific,
	'a': PresFloatHex,
	'A': PresFloatHex,
	'g': PresFloatGeneral,
	'G': PresFloatGeneral,
	'c': PresCharFixed,
	'U': PresCodePoint,
	's': PresString,
	'p': PresPointer,
	'q': PresQuoted,
}

// parseArbitraryBaseOrDecimal handles the `d` (plain decimal) and `dNN`
// (arbitrary base 2..36, per spec.md §3's "arbitrary base" presentation)
// forms, since both start with the letter 'd'.
func parseArbitraryBaseOrDecimal(c *cursor, s *Spec) *scnerr.Error {
	c.next() // consume 'd'
	if isDigit(c.peek()) {
		n, err := parseUint(c)
		if err != nil {
			return err
		}
		if n < 2 || n > 36 {
			return scnerr.NewError(scnerr.InvalidFormatString, "arbitrary base must be in [2,36]")
		}
		s.Type = PresIntArbitraryBase
		s.ArbitraryBase = n
		return nil
	}
	s.Type = PresIntDecimal
	return nil
}

// parseRegex parses `/pattern/flags`, per spec.md's regex-matches reader.
// The pattern may contain an escaped `\/`.
func parseRegex(c *cursor, s *Spec) *scnerr.Error {
	c.next() // consume opening '/'
	var pat strings.Builder
	for {
		if c.eof() {
			return scnerr.NewError(scnerr.InvalidFormatString, "unterminated regex pattern")
		}
		r := c.next()
		if r == '\\' && c.peek() == '/' {
			pat.WriteRune(c.next())
			continue
		}
		if r == '/' {
			break
		}
		pat.WriteRune(r)
	}
	var flags strings.Builder
	for !c.eof() && c.peek() != '}' {
		flags.WriteRune(c.next())
	}
	s.Type = PresRegex
	s.RegexPattern = pat.String()
	s.RegexFlags = flags.String()
	return nil
}

// parseCharset parses `[…]`, a POSIX-class-and-shorthand character set.
func parseCharset(c *cursor, s *Spec) *scnerr.Error {
	c.next() // consume '['
	set := &Charset{}
	if c.peek() == '^' {
		set.Negate = true
		c.next()
	}
	for {
		if c.eof() {
			return scnerr.NewError(scnerr.InvalidFormatString, "unterminated character set")
		}
		if c.peek() == ']' {
			c.next()
			break
		}
		if c.peek() == ':' {
			rg, err := parsePosixClass(c)
			if err != nil {
				return err
			}
			set.Ranges = append(set.Ranges, rg...)
			continue
		}
		if c.peek() == '\\' {
			c.next()
			rg, err := shorthandRanges(c.next())
			if err != nil {
				return err
			}
			set.Ranges = append(set.Ranges, rg...)
			continue
		}
		lo := c.next()
		hi := lo
		if c.peek() == '-' && c.pos+1 < len(c.runes) && c.runes[c.pos+1] != ']' {
			c.next()
			hi = c.next()
		}
		set.Ranges = append(set.Ranges, CharsetRange{Lo: lo, Hi: hi})
	}
	s.Type = PresCharacterSet
	s.Charset = set
	return nil
}

var posixClasses = map[string][]CharsetRange{
	"alpha":  {{Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}},
	"digit":  {{Lo: '0', Hi: '9'}},
	"alnum":  {{Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}, {Lo: '0', Hi: '9'}},
	"space":  {{Lo: 0x09, Hi: 0x0D}, {Lo: 0x20, Hi: 0x20}},
	"upper":  {{Lo: 'A', Hi: 'Z'}},
	"lower":  {{Lo: 'a', Hi: 'z'}},
	"punct":  {{Lo: '!', Hi: '/'}, {Lo: ':', Hi: '@'}, {Lo: '[', Hi: '`'}, {Lo: '{', Hi: '~'}},
	"xdigit": {{Lo: '0', Hi: '9'}, {Lo: 'A', Hi: 'F'}, {Lo: 'a', Hi: 'f'}},
	"cntrl":  {{Lo: 0x00, Hi: 0x1F}, {Lo: 0x7F, Hi: 0x7F}},
	"graph":  {{Lo: 0x21, Hi: 0x7E}},
	"print":  {{Lo: 0x20, Hi: 0x7E}},
	"blank":  {{Lo: 0x09, Hi: 0x09}, {Lo: 0x20, Hi: 0x20}},
}

// parsePosixClass parses `:name:` with the leading `:` already peeked.
func parsePosixClass(c *cursor) ([]CharsetRange, *scnerr.Error) {
	c.next() // consume ':'
	start := c.pos
	for !c.eof() && c.peek() != ':' {
		c.next()
	}
	if c.eof() {
		return nil, scnerr.NewError(scnerr.InvalidFormatString, "unterminated POSIX class")
	}
	name := string(c.runes[start:c.pos])
	c.next() // consume closing ':'
	rg, ok := posixClasses[name]
	if !ok {
		return nil, scnerr.NewError(scnerr.InvalidFormatString, fmt.Sprintf("unknown POSIX class %q", name))
	}
	return rg, nil
}

var wordRanges = []CharsetRange{{Lo: 'A', Hi: 'Z'}, {Lo: 'a', Hi: 'z'}, {Lo: '0', Hi: '9'}, {Lo: '_', Hi: '_'}}
var digitRanges = []CharsetRange{{Lo: '0', Hi: '9'}}
var spaceRanges = []CharsetRange{{Lo: 0x09, Hi: 0x0D}, {Lo: 0x20, Hi: 0x20}}

// shorthandRanges expands \w \d \s \l \u to concrete ranges, and their
// uppercase complements \W \D \S to the ranges matching everything those
// classes don't, so that e.g. `[\W]` is a set whose members are exactly the
// non-word code points.
func shorthandRanges(letter rune) ([]CharsetRange, *scnerr.Error) {
	switch letter {
	case 'w':
		return wordRanges, nil
	case 'd':
		return digitRanges, nil
	case 's':
		return spaceRanges, nil
	case 'l':
		return []CharsetRange{{Lo: 'a', Hi: 'z'}}, nil
	case 'u':
		return []CharsetRange{{Lo: 'A', Hi: 'Z'}}, nil
	case 'W':
		return complementRanges(wordRanges), nil
	case 'D':
		return complementRanges(digitRanges), nil
	case 'S':
		return complementRanges(spaceRanges), nil
	}
	return nil, scnerr.NewError(scnerr.InvalidFormatString, fmt.Sprintf("unknown shorthand class \\%c", letter))
}

// complementRanges returns the ranges covering every code point in
// [0, maxCodePoint] not covered by ranges, which must be sorted or
// unsorted but non-adjacent-merging is not required by callers here.
func complementRanges(ranges []CharsetRange) []CharsetRange {
	sorted := append([]CharsetRange(nil), ranges...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Lo < sorted[j].Lo })
	var out []CharsetRange
	next := rune(0)
	for _, rg := range sorted {
		if rg.Lo > next {
			out = append(out, CharsetRange{Lo: next, Hi: rg.Lo - 1})
		}
		if rg.Hi+1 > next {
			next = rg.Hi + 1
		}
	}
	if next <= maxCodePoint {
		out = append(out, CharsetRange{Lo: next, Hi: maxCodePoint})
	}
	return out
}
