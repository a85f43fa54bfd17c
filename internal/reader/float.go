package reader

import (
	"math"
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
	args.Register(argtype.Float32, floatReader(32))
	args.Register(argtype.Float64, floatReader(64))
}

// isHexFloatDigit reports whether cp is a valid hex-float mantissa digit.
func isHexFloatDigit(cp rune) bool {
	return (cp >= '0' && cp <= '9') || (cp >= 'a' && cp <= 'f') || (cp >= 'A' && cp <= 'F')
}

func floatReader(bits int) args.Reader {
	return func(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
		if loc == nil {
			loc = locale.Classic()
		}
		if err := read.SkipClassicWhitespace(r, true); err != nil {
			return 0, err
		}
		start := r.Pos()

		if lit, w, ok := matchFloatKeyword(r); ok {
			if !assignFloat(target, bits, lit) {
				return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported float destination")
			}
			return w, nil
		}

		var sb strings.Builder
		consumed := 0
		if cp, w, ok := r.PeekRune(); ok && (cp == '+' || cp == '-') {
			sb.WriteRune(cp)
			r.Advance(w)
			consumed++
		}

		hex := spec.Type == format.PresFloatHex
		if hex {
			if cp0, w0, ok0 := r.PeekRune(); ok0 && cp0 == '0' {
				if cp1, w1, ok1 := peekAt(r, w0); ok1 && (cp1 == 'x' || cp1 == 'X') {
					sb.WriteRune('0')
					sb.WriteRune('x')
					r.Advance(w0)
					r.Advance(w1)
					consumed += 2
				}
			}
		}

		sawDigit := false
		for {
			cp, w, ok := r.PeekRune()
			if !ok {
				break
			}
			if cp == loc.DecimalPoint {
				sb.WriteRune('.')
				r.Advance(w)
				consumed++
				continue
			}
			isDigit := cp >= '0' && cp <= '9'
			if hex {
				isDigit = isHexFloatDigit(cp)
			}
			if isDigit {
				sawDigit = true
				sb.WriteRune(cp)
				r.Advance(w)
				consumed++
				continue
			}
			expMarker := (cp == 'e' || cp == 'E')
			if hex {
				expMarker = cp == 'p' || cp == 'P'
			}
			if expMarker {
				sb.WriteRune(cp)
				r.Advance(w)
				consumed++
				if cp2, w2, ok2 := r.PeekRune(); ok2 && (cp2 == '+' || cp2 == '-') {
					sb.WriteRune(cp2)
					r.Advance(w2)
					consumed++
				}
				continue
			}
			break
		}
		if !sawDigit {
			r.SetPos(start)
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no digits found for float field")
		}
		v, err := strconv.ParseFloat(sb.String(), bits)
		if err != nil {
			return 0, scnerr.NewWrappedError(scnerr.ValueOutOfRange, "float out of range or malformed", err)
		}
		if !assignFloat(target, bits, v) {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported float destination")
		}
		return consumed, nil
	}
}

// matchFloatKeyword recognizes the case-insensitive inf/infinity/nan
// literals (with an optional leading sign), which strconv.ParseFloat also
// accepts but which this reader intercepts first so it can report the
// exact consumed width without re-deriving it from strconv's error path.
func matchFloatKeyword(r *source.Range) (float64, int, bool) {
	start := r.Pos()
	sign := 1.0
	consumed := 0
	if cp, w, ok := r.PeekRune(); ok && (cp == '+' || cp == '-') {
		if cp == '-' {
			sign = -1.0
		}
		r.Advance(w)
		consumed++
	}
	for _, kw := range []string{"infinity", "inf", "nan"} {
		if matchKeywordCI(r, kw) {
			consumed += len(kw)
			v := 0.0
			switch kw {
			case "infinity", "inf":
				v = sign * math.Inf(1)
			case "nan":
				v = math.NaN()
			}
			return v, consumed, true
		}
	}
	r.SetPos(start)
	return 0, 0, false
}

func matchKeywordCI(r *source.Range, kw string) bool {
	start := r.Pos()
	for _, want := range kw {
		cp, w, ok := r.PeekRune()
		if !ok || lower(cp) != lower(want) {
			r.SetPos(start)
			return false
		}
		r.Advance(w)
	}
	return true
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func assignFloat(target any, bits int, v float64) bool {
	if bits == 32 {
		p, ok := target.(*float32)
		if ok {
			*p = float32(v)
		}
		return ok
	}
	p, ok := target.(*float64)
	if ok {
		*p = v
	}
	return ok
}
