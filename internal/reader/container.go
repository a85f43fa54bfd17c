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

// maxContainerDepth is the depth past which readDelimited fails with
// InvalidFormatString. Every container reader calls readDelimited with
// depth 0 and an ElementReader receives no depth, so a container nested
// inside an element is not counted and this limit is never reached.
const maxContainerDepth = 8

// ElementReader scans one container element and returns it; the target's
// Append/Insert func stores it, and container.go supplies the punctuation
// handling (separator, closing delimiter) around repeated calls to it.
type ElementReader func(r *source.Range, spec format.Spec, loc *locale.Locale) (any, error)

func init() {
	args.Register(argtype.Sequence, sequenceReader)
	args.Register(argtype.Set, setReader)
	args.Register(argtype.Map, mapReader)
}

// SequenceTarget, SetTarget and MapTarget are what a Sequence/Set/Map
// argument's Target must be: an ElementReader per element type, plus an
// Append (Sequence) or Insert (Set/Map) func that folds each scanned element
// into the destination, since Go generics can't be named dynamically
// through the any-typed Arg.Target.
type SequenceTarget struct {
	Element ElementReader
	Append  func(v any)
}

type SetTarget struct {
	Element ElementReader
	Insert  func(v any)
}

type MapTarget struct {
	KeyElement   ElementReader
	ValueElement ElementReader
	Insert       func(k, v any)
}

func sequenceReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	t, ok := target.(*SequenceTarget)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported sequence destination")
	}
	return readDelimited(r, spec, loc, 0, '[', ']', func(depth int) (int, error) {
		v, err := t.Element(r, spec, loc)
		if err != nil {
			return 0, err
		}
		t.Append(v)
		return 1, nil
	})
}

func setReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	t, ok := target.(*SetTarget)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported set destination")
	}
	return readDelimited(r, spec, loc, 0, '{', '}', func(depth int) (int, error) {
		v, err := t.Element(r, spec, loc)
		if err != nil {
			return 0, err
		}
		t.Insert(v)
		return 1, nil
	})
}

func mapReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	t, ok := target.(*MapTarget)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported map destination")
	}
	return readDelimited(r, spec, loc, 0, '{', '}', func(depth int) (int, error) {
		k, err := t.KeyElement(r, spec, loc)
		if err != nil {
			return 0, err
		}
		if err := expectRune(r, ':'); err != nil {
			return 0, err
		}
		v, err := t.ValueElement(r, spec, loc)
		if err != nil {
			return 0, err
		}
		t.Insert(k, v)
		return 1, nil
	})
}

// readDelimited reads `open elem (',' elem)* close`-shaped input — `[...]`
// for sequence, `{...}` for set and map (spec.md §4.10 / SPEC_FULL.md §2
// C14) — iterating rather than recursing over the comma-separated list
// itself, so the element count is unbounded. depth is compared against
// maxContainerDepth; readOne is handed depth+1, which the container
// readers' element callbacks ignore.
func readDelimited(r *source.Range, spec format.Spec, loc *locale.Locale, depth int, open, close_ rune, readOne func(depth int) (int, error)) (int, error) {
	if depth > maxContainerDepth {
		return 0, scnerr.NewError(scnerr.InvalidFormatString, "container nesting too deep")
	}
	if err := read.SkipClassicWhitespace(r, true); err != nil {
		return 0, err
	}
	if err := expectRune(r, open); err != nil {
		return 0, err
	}
	total := 0
	first := true
	for {
		if err := read.SkipClassicWhitespace(r, true); err != nil {
			return total, err
		}
		if cp, w, ok := r.PeekRune(); ok && cp == close_ {
			r.Advance(w)
			return total, nil
		}
		if !first {
			if err := expectRune(r, ','); err != nil {
				return total, err
			}
			if err := read.SkipClassicWhitespace(r, true); err != nil {
				return total, err
			}
		}
		first = false
		n, err := readOne(depth + 1)
		if err != nil {
			return total, err
		}
		total += n
	}
}

func expectRune(r *source.Range, want rune) error {
	cp, w, ok := r.PeekRune()
	if !ok || cp != want {
		return scnerr.NewError(scnerr.InvalidScannedValue, "unexpected character in container field")
	}
	r.Advance(w)
	return nil
}
