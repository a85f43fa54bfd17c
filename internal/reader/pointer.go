package reader

import (
	"strconv"

	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/read"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

func init() {
	args.Register(argtype.Pointer, pointerReader)
}

// pointerReader reads a mandatory "0x"-prefixed hex literal into a
// uintptr, the supplemented reader for scenario 9 of spec.md §8 (grounded
// on original_source/src/scn/impl/reader/pointer_reader.h, minus sign
// handling since pointers are unsigned).
func pointerReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	if err := read.SkipClassicWhitespace(r, true); err != nil {
		return 0, err
	}
	start := r.Pos()

	cp0, w0, ok0 := r.PeekRune()
	if !ok0 || cp0 != '0' {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "pointer literal must start with 0x")
	}
	cp1, w1, ok1 := peekAt(r, w0)
	if !ok1 || (cp1 != 'x' && cp1 != 'X') {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "pointer literal must start with 0x")
	}
	r.Advance(w0)
	r.Advance(w1)
	consumed := 2

	digits := read.ReadMaximal(r, func(cp rune) bool { return digitValid(cp, 16) })
	if len(digits) == 0 {
		r.SetPos(start)
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no hex digits after 0x in pointer literal")
	}
	consumed += len(digits)

	v, err := strconv.ParseUint(string(digits), 16, 64)
	if err != nil {
		return 0, scnerr.NewWrappedError(scnerr.ValueOutOfRange, "pointer literal out of range", err)
	}
	p, ok := target.(*uintptr)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported pointer destination, want *uintptr")
	}
	*p = uintptr(v)
	return consumed, nil
}
