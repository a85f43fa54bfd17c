package reader

import (
	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
	"github.com/daedaluz/scn/internal/uniseg"
)

func init() {
	args.Register(argtype.Byte, byteReader)
	args.Register(argtype.Rune, runeReader)
	args.Register(argtype.CodePoint, runeReader)
}

// byteReader reads exactly one native code unit, no whitespace skip (a
// single char read is never whitespace-insensitive, per spec.md §4).
func byteReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	cp, w, ok := r.PeekRune()
	if !ok {
		return 0, scnerr.NewError(scnerr.EndOfRange, "no code unit available for char field")
	}
	if r.Wide() {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "byte destination requires a narrow source")
	}
	if w != 1 {
		return 0, scnerr.NewError(scnerr.InvalidEncoding, "multi-byte code point where a single byte was requested")
	}
	r.Advance(w)
	p, ok := target.(*byte)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported byte destination")
	}
	*p = byte(cp)
	return 1, nil
}

func runeReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	cp, w, ok := r.PeekRune()
	if !ok {
		return 0, scnerr.NewError(scnerr.EndOfRange, "no code point available for char field")
	}
	if !uniseg.ValidCodePoint(cp) {
		return 0, scnerr.NewError(scnerr.InvalidEncoding, "malformed code point at cursor")
	}
	r.Advance(w)
	switch p := target.(type) {
	case *rune:
		*p = cp
		return 1, nil
	case *int32:
		*p = int32(cp)
		return 1, nil
	default:
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported rune destination")
	}
}
