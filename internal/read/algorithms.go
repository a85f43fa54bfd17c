// Package read implements the small composable reading primitives every
// per-type reader builds on: skip-while, read-while, read-exactly-n,
// read-until. Grounded on the recurring pack idiom of a rune-cursor scanner
// exposing exactly these primitives (see e.g. other_examples'
// ak-wan-grapher/pkg/ast/scanner.go and almenglee-jindo/pkg/jindo/scanner/source.go).
package read

import (
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

// classicWhitespace is the Pattern_White_Space set spec.md §4.3 names.
func classicWhitespace(r rune) bool {
	switch r {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0x85, 0x200E, 0x200F, 0x2028, 0x2029:
		return true
	}
	return false
}

// SkipClassicWhitespace advances past classicWhitespace code points. If
// allowExhaustion is false and the range is exhausted while still in
// whitespace (or starts exhausted), it returns EndOfRange.
func SkipClassicWhitespace(r *source.Range, allowExhaustion bool) *scnerr.Error {
	for {
		cp, w, ok := r.PeekRune()
		if !ok {
			if allowExhaustion {
				return nil
			}
			return scnerr.NewError(scnerr.EndOfRange, "exhausted while skipping whitespace")
		}
		if !classicWhitespace(cp) {
			return nil
		}
		r.Advance(w)
	}
}

// SkipLocalizedWhitespace is SkipClassicWhitespace's locale-aware sibling,
// deferring classification to loc.IsSpace.
func SkipLocalizedWhitespace(r *source.Range, allowExhaustion bool, isSpace func(rune) bool) *scnerr.Error {
	for {
		cp, w, ok := r.PeekRune()
		if !ok {
			if allowExhaustion {
				return nil
			}
			return scnerr.NewError(scnerr.EndOfRange, "exhausted while skipping whitespace")
		}
		if !isSpace(cp) {
			return nil
		}
		r.Advance(w)
	}
}

// ReadMaximal consumes the longest run of code points satisfying accept,
// starting at the cursor, and returns them. An empty result is not an
// error here; callers that require at least one code point (default string
// reading, digit accumulation, ...) check len(result) themselves.
func ReadMaximal(r *source.Range, accept func(rune) bool) []rune {
	var out []rune
	for {
		cp, w, ok := r.PeekRune()
		if !ok || !accept(cp) {
			return out
		}
		out = append(out, cp)
		r.Advance(w)
	}
}

// ReadExactly consumes exactly n code points, or returns EndOfRange (with
// whatever was read discarded logically, per spec.md's "cursor left at the
// position immediately after the whitespace-skip" convention — callers
// restore the cursor themselves on failure if they need to).
func ReadExactly(r *source.Range, n int) ([]rune, *scnerr.Error) {
	out := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		cp, w, ok := r.PeekRune()
		if !ok {
			return out, scnerr.NewError(scnerr.EndOfRange, "fewer code points remain than requested")
		}
		out = append(out, cp)
		r.Advance(w)
	}
	return out, nil
}

// ReadUntil consumes code points up to (not including) the first one for
// which stop returns true, or until the range is exhausted.
func ReadUntil(r *source.Range, stop func(rune) bool) []rune {
	return ReadMaximal(r, func(cp rune) bool { return !stop(cp) })
}

// ReadNWidthUnits consumes code points until their cumulative display width
// (per width) reaches or would exceed n, stopping before any code point
// that would overshoot it.
func ReadNWidthUnits(r *source.Range, n int, width func(rune) int) []rune {
	var out []rune
	total := 0
	for total < n {
		cp, w, ok := r.PeekRune()
		if !ok {
			break
		}
		cw := width(cp)
		if total+cw > n {
			break
		}
		out = append(out, cp)
		total += cw
		r.Advance(w)
	}
	return out
}
