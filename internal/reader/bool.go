package reader

import (
	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/read"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

func init() {
	args.Register(argtype.Bool, boolReader)
}

// boolReader resolves Open Question OQ-1: it tries the locale's textual
// true/false literal first; on failure it rewinds to the pre-attempt
// position and retries the numeric 0/1 form from the same start. Only one
// of the two attempts ever partially consumes input against the real
// cursor.
func boolReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	if loc == nil {
		loc = locale.Classic()
	}
	if err := read.SkipClassicWhitespace(r, true); err != nil {
		return 0, err
	}
	start := r.Pos()

	if n, ok := matchWord(r, loc.TrueName); ok {
		if !assignBool(target, true) {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported bool destination")
		}
		return n, nil
	}
	r.SetPos(start)
	if n, ok := matchWord(r, loc.FalseName); ok {
		if !assignBool(target, false) {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported bool destination")
		}
		return n, nil
	}

	r.SetPos(start)
	cp, w, ok := r.PeekRune()
	if ok && (cp == '0' || cp == '1') {
		r.Advance(w)
		if !assignBool(target, cp == '1') {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported bool destination")
		}
		return 1, nil
	}

	r.SetPos(start)
	return 0, scnerr.NewError(scnerr.InvalidScannedValue, "expected true/false or 0/1")
}

// matchWord consumes exactly word (case-sensitive, matching spec.md's
// literal-word comparison) from the cursor, or consumes nothing on
// mismatch.
func matchWord(r *source.Range, word string) (int, bool) {
	if word == "" {
		return 0, false
	}
	start := r.Pos()
	n := 0
	for _, want := range word {
		cp, w, ok := r.PeekRune()
		if !ok || cp != want {
			r.SetPos(start)
			return 0, false
		}
		r.Advance(w)
		n++
	}
	return n, true
}

func assignBool(target any, v bool) bool {
	p, ok := target.(*bool)
	if ok {
		*p = v
	}
	return ok
}
