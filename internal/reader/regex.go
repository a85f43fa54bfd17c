package reader

import (
	"regexp"

	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

func init() {
	args.Register(argtype.RegexMatches, regexReader)
}

// regexReader runs spec.RegexPattern against the range's contiguous tail,
// anchored at the cursor. RE2 (stdlib regexp) has no \A anchor, so
// anchoring is enforced by requiring the match's start offset to be 0 in
// FindStringSubmatchIndex's result, which is equivalent for this purpose:
// no prefix of the tail before the match is ever silently skipped.
func regexReader(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error) {
	if !r.Contiguous() || r.Wide() {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "regex field requires a contiguous narrow source")
	}
	tail, ok := r.ContiguousTail()
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "regex field requires a contiguous narrow source")
	}

	pattern := spec.RegexPattern
	for _, flag := range spec.RegexFlags {
		switch flag {
		case 'i':
			pattern = "(?i)" + pattern
		case 's':
			pattern = "(?s)" + pattern
		case 'm':
			pattern = "(?m)" + pattern
		}
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, scnerr.NewWrappedError(scnerr.InvalidFormatString, "invalid regex pattern", err)
	}

	m := re.FindStringSubmatchIndex(tail)
	if m == nil || m[0] != 0 {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "no anchored regex match at cursor")
	}

	matchEnd := m[1]
	groups := make([]string, len(m)/2)
	for i := 0; i < len(m); i += 2 {
		if m[i] < 0 {
			continue
		}
		groups[i/2] = tail[m[i]:m[i+1]]
	}

	p, ok := target.(*[]string)
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidScannedValue, "unsupported regex destination, want *[]string")
	}
	*p = groups

	width := matchEnd
	r.Advance(width)
	return width, nil
}
