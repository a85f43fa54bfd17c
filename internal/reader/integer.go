// Package reader implements the per-type value readers (spec C8–C14):
// integer, float, bool, char/code point, string/string-view, regex, and
// container readers, plus the supplemented pointer and quoted-string
// readers. Each reader registers itself against an argtype.ArgType via
// args.Register in an init function, mirroring the teacher's pattern of a
// small table of named option-setters rather than a type switch spread
// across call sites.
package reader

import (
	"strconv"
	"strings"

	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/read"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

func init() {
	args.Register(argtype.Int8, intReader(8, true))
	args.Register(argtype.Int16, intReader(16, true))
	args.Register(argtype.Int32, intReader(32, true))
	args.Register(argtype.Int64, intReader(64, true))
	args.Register(argtype.Uint8, intReader(8, false))
	args.Register(argtype.Uint16, intReader(16, false))
	args.Register(argtype.Uint32, intReader(32, false))
	args.Register(argtype.Uint64, intReader(64, false))
}

// baseForSpec resolves the numeric base a spec requests; 0 means "detect
// from a 0x/0b/0o prefix, else decimal", matching spec.md's generic integer
// presentation.
func baseForSpec(spec format.Spec) int {
	switch spec.Type {
	case format.PresIntBinary:
		return 2
	case format.PresIntOctal:
		return 8
	case format.PresIntHex:
		return 16
	case format.PresIntDecimal, format.PresIntUnsigned:
		return 10
	case format.PresIntArbitraryBase:
		return spec.ArbitraryBase
	default:
		return 0
	}
}

// scanDigits consumes an optional sign, an optional base prefix (only when
// base == 0, meaning "detect"), and a maximal run of digits/thousands
// separators valid for the resolved base, returning the cleaned digit
// string (separators stripped), the resolved base, whether the value was
// negative, and the number of code points consumed.
func scanDigits(r *source.Range, base int, spec format.Spec, loc *locale.Locale) (digits string, resolvedBase int, neg bool, consumed int) {
	negSeen := false
	if cp, w, ok := r.PeekRune(); ok && (cp == '+' || cp == '-') {
		negSeen = cp == '-'
		r.Advance(w)
		consumed++
	}

	resolvedBase = base
	if base == 0 {
		resolvedBase = 10
		if cp0, w0, ok0 := r.PeekRune(); ok0 && cp0 == '0' {
			if cp1, w1, ok1 := peekAt(r, w0); ok1 && (cp1 == 'x' || cp1 == 'X') {
				r.Advance(w0)
				r.Advance(w1)
				consumed += 2
				resolvedBase = 16
			} else if ok1 && (cp1 == 'b' || cp1 == 'B') {
				r.Advance(w0)
				r.Advance(w1)
				consumed += 2
				resolvedBase = 2
			} else if ok1 && (cp1 == 'o' || cp1 == 'O') {
				r.Advance(w0)
				r.Advance(w1)
				consumed += 2
				resolvedBase = 8
			}
		}
	}

	var sb strings.Builder
	sinceSep := 0
	for {
		cp, w, ok := r.PeekRune()
		if !ok {
			break
		}
		if cp == loc.ThousandsSep && spec.Thsep {
			if !loc.GroupOK(sinceSep) {
				break
			}
			sinceSep = 0
			r.Advance(w)
			consumed++
			continue
		}
		if !digitValid(cp, resolvedBase) {
			break
		}
		sb.WriteRune(cp)
		sinceSep++
		r.Advance(w)
		consumed++
	}
	return sb.String(), resolvedBase, negSeen, consumed
}

// peekAt looks ahead past the code point at the cursor (width w0 wide)
// without committing the advance; used only for 0x/0b/0o prefix detection.
func peekAt(r *source.Range, w0 int) (rune, int, bool) {
	r.Advance(w0)
	cp, w, ok := r.PeekRune()
	// undo: back up by re-setting the position.
	r.SetPos(r.Pos() - w0)
	return cp, w, ok
}

func digitValid(cp rune, base int) bool {
	var v int
	switch {
	case cp >= '0' && cp <= '9':
		v = int(cp - '0')
	case cp >= 'a' && cp <= 'z':
		v = int(cp-'a') + 10
	case cp >= 'A' && cp <= 'Z':
		v = int(cp-'A') + 10
	default:
		return false
	}
	return v < base
}

func intReader(bits int, signed bool) args.Reader {
	return func(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
		if loc == nil {
			loc = locale.Classic()
		}
		if err := read.SkipClassicWhitespace(r, true); err != nil {
			return 0, err
		}
		start := r.Pos()
		base := baseForSpec(spec)
		digits, resolvedBase, neg, consumed := scanDigits(r, base, spec, loc)
		if digits == "" {
			r.SetPos(start)
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no digits found for integer field")
		}
		if signed {
			s := digits
			if neg {
				s = "-" + digits
			}
			v, err := strconv.ParseInt(s, resolvedBase, bits)
			if err != nil {
				return 0, scnerr.NewWrappedError(scnerr.ValueOutOfRange, "integer out of range", err)
			}
			if !assignSignedInt(target, bits, v) {
				return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported signed integer destination")
			}
			return consumed, nil
		}
		if neg {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsigned field cannot accept a '-' sign")
		}
		v, err := strconv.ParseUint(digits, resolvedBase, bits)
		if err != nil {
			return 0, scnerr.NewWrappedError(scnerr.ValueOutOfRange, "integer out of range", err)
		}
		if !assignUnsignedInt(target, bits, v) {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported unsigned integer destination")
		}
		return consumed, nil
	}
}

func assignSignedInt(target any, bits int, v int64) bool {
	switch bits {
	case 8:
		p, ok := target.(*int8)
		if ok {
			*p = int8(v)
		}
		return ok
	case 16:
		p, ok := target.(*int16)
		if ok {
			*p = int16(v)
		}
		return ok
	case 32:
		p, ok := target.(*int32)
		if ok {
			*p = int32(v)
		}
		return ok
	case 64:
		p, ok := target.(*int64)
		if ok {
			*p = v
		}
		return ok
	}
	return false
}

func assignUnsignedInt(target any, bits int, v uint64) bool {
	switch bits {
	case 8:
		p, ok := target.(*uint8)
		if ok {
			*p = uint8(v)
		}
		return ok
	case 16:
		p, ok := target.(*uint16)
		if ok {
			*p = uint16(v)
		}
		return ok
	case 32:
		p, ok := target.(*uint32)
		if ok {
			*p = uint32(v)
		}
		return ok
	case 64:
		p, ok := target.(*uint64)
		if ok {
			*p = v
		}
		return ok
	}
	return false
}
