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
	args.Register(argtype.String, stringReader)
	args.Register(argtype.StringView, stringViewReader)
}

// stopRune decides, for the plain (no charset, no regex) string
// presentation, which code point ends the run: any classicWhitespace code
// point, matching spec.md's default "read a maximal run of non-whitespace".
func stopRune(cp rune) bool {
	switch cp {
	case 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x20, 0x85, 0x200E, 0x200F, 0x2028, 0x2029:
		return true
	}
	return false
}

func stringReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	if loc == nil {
		loc = locale.Classic()
	}

	// The fixed-width character reader (`:.Nc`) never skips leading
	// whitespace and takes exactly Precision code points regardless of
	// content, per spec.md §4.3's "character reader does not skip
	// whitespace" rule.
	if spec.Type == format.PresCharFixed {
		return readFixedChars(r, target, spec)
	}

	// The character-set reader (`:[…]`) also never skips leading
	// whitespace, per spec.md §4.3 scenario 6: a leading space matched by
	// the set itself (e.g. `\W`) must be scanned, not skipped first.
	if spec.Type == format.PresCharacterSet && spec.Charset != nil {
		runes := read.ReadMaximal(r, spec.Charset.Contains)
		if len(runes) == 0 {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no characters matched string field")
		}
		if spec.HasPrecision && len(runes) > spec.Precision {
			runes = runes[:spec.Precision]
		}
		p, ok := target.(*string)
		if !ok {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported string destination")
		}
		*p = string(runes)
		return len(runes), nil
	}

	if err := read.SkipClassicWhitespace(r, true); err != nil {
		return 0, err
	}

	if spec.Type == format.PresQuoted {
		return readQuoted(r, target)
	}

	runes := read.ReadMaximal(r, func(cp rune) bool { return !stopRune(cp) })
	if len(runes) == 0 {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no characters matched string field")
	}
	s := string(runes)
	if spec.HasPrecision && len(runes) > spec.Precision {
		s = string(runes[:spec.Precision])
	}
	p, ok := target.(*string)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported string destination")
	}
	*p = s
	return len(runes), nil
}

// readFixedChars reads exactly spec.Precision code points, whatever they
// are (including whitespace), for the `:.Nc` presentation.
func readFixedChars(r *source.Range, target any, spec format.Spec) (int, error) {
	n := spec.Precision
	if !spec.HasPrecision || n <= 0 {
		return 0, scnerr.NewError(scnerr.InvalidFormatString, "character field requires an explicit precision")
	}
	runes := make([]rune, 0, n)
	for i := 0; i < n; i++ {
		cp, w, ok := r.PeekRune()
		if !ok {
			return 0, scnerr.NewError(scnerr.InvalidScannedValue, "input exhausted before fixed character count was reached")
		}
		runes = append(runes, cp)
		r.Advance(w)
	}
	p, ok := target.(*string)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported string destination")
	}
	*p = string(runes)
	return n, nil
}

// stringViewReader requires a contiguous range (I-F: string_view never
// copies) and borrows the tail directly instead of building a []rune.
func stringViewReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	if !r.Contiguous() {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "string view requires a contiguous source")
	}
	if loc == nil {
		loc = locale.Classic()
	}
	if err := read.SkipClassicWhitespace(r, true); err != nil {
		return 0, err
	}

	if r.Wide() {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "string view is narrow-only")
	}

	accept := func(cp rune) bool { return !stopRune(cp) }
	if spec.Type == format.PresCharacterSet && spec.Charset != nil {
		accept = spec.Charset.Contains
	}

	start := r.Pos()
	n := 0
	for {
		cp, w, ok := r.PeekRune()
		if !ok || !accept(cp) {
			break
		}
		r.Advance(w)
		n++
	}
	if n == 0 {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no characters matched string view field")
	}
	end := r.Pos()
	p, ok := target.(*string)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported string view destination")
	}
	*p = reborrow(r, start, end)
	return n, nil
}

// reborrow rebuilds the [start,end) window as a zero-copy substring. Range
// doesn't expose its raw contiguous string directly (by design — only
// ContiguousTail, relative to the current cursor), so this walks back to
// start to slice from there.
func reborrow(r *source.Range, start, end int) string {
	cur := r.Pos()
	r.SetPos(start)
	tail, _ := r.ContiguousTail()
	s := tail[:end-start]
	r.SetPos(cur)
	return s
}

// readQuoted implements the supplemented `:q` escaped-string presentation.
func readQuoted(r *source.Range, target any) (int, error) {
	cp, w, ok := r.PeekRune()
	if !ok || cp != '"' {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "expected opening '\"' for quoted string")
	}
	r.Advance(w)
	consumed := 1

	var raw strings.Builder
	raw.WriteByte('"')
	closed := false
	for {
		cp, w, ok := r.PeekRune()
		if !ok {
			break
		}
		raw.WriteRune(cp)
		r.Advance(w)
		consumed++
		if cp == '\\' {
			cp2, w2, ok2 := r.PeekRune()
			if !ok2 {
				break
			}
			raw.WriteRune(cp2)
			r.Advance(w2)
			consumed++
			continue
		}
		if cp == '"' {
			closed = true
			break
		}
	}
	if !closed {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unterminated quoted string")
	}
	unquoted, err := strconv.Unquote(raw.String())
	if err != nil {
		return 0, scnerr.NewWrappedError(scnerr.InvalidScannedValue, "invalid escape sequence in quoted string", err)
	}
	p, ok := target.(*string)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported string destination")
	}
	*p = unquoted
	return consumed, nil
}
