package scn

import (
	"io"
	"os"

	"github.com/daedaluz/scn/internal/args"
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/buffer"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/reader"
	"github.com/daedaluz/scn/internal/source"
)

// Source is anything Scan can read from: a string, []byte, []rune,
// io.RuneReader, io.Reader (*os.File included), or an already-built *source.Range. Go has no way
// to retroactively make string/[]byte implement a user interface, so this
// is `any` at the type level and resolved by toRange at the call site —
// the same type-erasure-via-switch shape internal/args uses for
// destinations.
type Source = any

// Result reports how a scan went: the number of fields successfully
// resolved before the first failure (or all of them, on success).
type Result struct {
	Scanned int
}

func toRange(src Source) (*source.Range, *Error) {
	switch v := src.(type) {
	case string:
		return source.FromString(v), nil
	case []byte:
		return source.FromBytes(v), nil
	case []rune:
		return source.FromRunes(v), nil
	case io.RuneReader:
		return source.FromRuneReader(v), nil
	case io.Reader:
		return source.FromReader(v), nil
	case *os.File:
		return source.FromFile(v), nil
	case *source.Range:
		return v, nil
	default:
		return nil, NewError(BadSource, "unsupported scan source type")
	}
}

// NewError and NewWrappedError re-expose internal/scnerr's constructors so
// the root package's own code (and anything embedding a custom reader) can
// build an *Error without reaching into internal/scnerr directly.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func NewWrappedError(kind ErrorKind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// argTypeOf infers the closed ArgType tag for a pointer destination's
// concrete Go type. Custom readers bypass this by passing an
// args.CustomFunc directly (see New). *uint8 and *int32 are the same types
// as *byte and *rune, so they resolve to the integer tags.
func argTypeOf(dest any) (argtype.ArgType, bool) {
	switch dest.(type) {
	case *int8:
		return argtype.Int8, true
	case *int16:
		return argtype.Int16, true
	case *int32:
		return argtype.Int32, true
	case *int64:
		return argtype.Int64, true
	case *uint8:
		return argtype.Uint8, true
	case *uint16:
		return argtype.Uint16, true
	case *uint32:
		return argtype.Uint32, true
	case *uint64:
		return argtype.Uint64, true
	case *float32:
		return argtype.Float32, true
	case *float64:
		return argtype.Float64, true
	case *bool:
		return argtype.Bool, true
	case *string:
		return argtype.String, true
	case *[]string:
		return argtype.RegexMatches, true
	case *uintptr:
		return argtype.Pointer, true
	case *reader.SequenceTarget:
		return argtype.Sequence, true
	case *reader.SetTarget:
		return argtype.Set, true
	case *reader.MapTarget:
		return argtype.Map, true
	default:
		return 0, false
	}
}

// CheckedFormat is a format string that has already been tokenized and
// matched against a fixed destination list; scanning it never re-parses
// the format string.
type CheckedFormat struct {
	checked *format.Checked
	argsOut []args.Arg
	cfg     *scanConfig
}

// New parses and validates formatStr against dests, returning a
// *CheckedFormat reusable across many Scan calls with the same shape. Any
// ScanOption mixed into dests (at any position) configures the returned
// CheckedFormat rather than being treated as a destination — the same
// type-switch-based filtering this package already uses to recognize an
// args.CustomFunc destination.
func New(formatStr string, dests ...any) (*CheckedFormat, error) {
	checked, perr := format.Parse(formatStr)
	if perr != nil {
		return nil, perr
	}
	cfg := newScanConfig()
	var argList []args.Arg
	for _, d := range dests {
		if opt, ok := d.(ScanOption); ok {
			opt(cfg)
			continue
		}
		if cf, ok := d.(args.CustomFunc); ok {
			argList = append(argList, args.Arg{Tag: argtype.Custom, Custom: cf})
			continue
		}
		tag, ok := argTypeOf(d)
		if !ok {
			return nil, NewError(InvalidFormatString, "unsupported destination type for format field")
		}
		argList = append(argList, args.Arg{Tag: tag, Target: d})
	}
	if cerr := checked.CheckAgainst(func(idx int) (argtype.Category, bool) {
		if idx < 0 || idx >= len(argList) {
			return 0, false
		}
		return argList[idx].Category(), true
	}); cerr != nil {
		return nil, cerr
	}
	return &CheckedFormat{checked: checked, argsOut: argList, cfg: cfg}, nil
}

// MustNew is New's panicking counterpart, intended for package-level `var`
// initializers: the closest Go analogue to scnlib's compile-time format
// string validation, since Go has no constexpr/consteval to reject a bad
// literal format string before the program starts running.
func MustNew(formatStr string, dests ...any) *CheckedFormat {
	cf, err := New(formatStr, dests...)
	if err != nil {
		panic(err)
	}
	return cf
}

// Scan parses formatStr fresh (use CheckedFormat.Scan to skip re-parsing)
// and scans src into dests in order.
func Scan(src Source, formatStr string, dests ...any) (Result, error) {
	cf, err := New(formatStr, dests...)
	if err != nil {
		return Result{}, err
	}
	return cf.Scan(src)
}

// Scan runs a previously checked format against src.
func (cf *CheckedFormat) Scan(src Source) (Result, error) {
	r, err := toRange(src)
	if err != nil {
		return Result{}, err
	}
	return scanChecked(r, cf.checked, cf.argsOut, cf.cfg)
}

func scanChecked(r *source.Range, checked *format.Checked, argList []args.Arg, cfg *scanConfig) (Result, error) {
	res := Result{}
	for i, field := range checked.Fields {
		if err := matchLiteral(r, checked.Literals[i]); err != nil {
			cfg.tracer.Fail(err.Kind.String(), err.Msg)
			return res, err
		}
		if field.ArgIndex < 0 || field.ArgIndex >= len(argList) {
			cfg.tracer.Fail("invalid_format_string", "field argument index out of range")
			return res, NewError(InvalidFormatString, "field argument index out of range")
		}
		cfg.tracer.Field(field.ArgIndex, presentationName(field.Spec))
		loc := cfg.locale
		if !field.Spec.Localized {
			loc = locale.Classic()
		}
		n, derr := args.Dispatch(r, argList[field.ArgIndex], field.Spec, loc)
		if derr != nil {
			cfg.tracer.Fail(derr.Kind.String(), derr.Msg)
			return res, derr
		}
		cfg.tracer.Consume("field", n)
		res.Scanned = i + 1
	}
	if err := matchLiteral(r, checked.Literals[len(checked.Fields)]); err != nil {
		return res, err
	}
	if err := r.Sync(); err != nil {
		return res, err
	}
	return res, nil
}

// matchLiteral consumes the literal text between two replacement fields
// (or before the first / after the last) against the source: a run of
// whitespace in the format string matches any amount (including zero) of
// whitespace in the input, following scanf's convention; any other literal
// character must match the input exactly.
func matchLiteral(r *source.Range, lit string) *Error {
	for _, want := range lit {
		if want == ' ' || want == '\t' || want == '\n' || want == '\r' {
			for {
				cp, w, ok := r.PeekRune()
				if !ok || !isASCIISpace(cp) {
					break
				}
				r.Advance(w)
			}
			continue
		}
		cp, w, ok := r.PeekRune()
		if !ok || cp != want {
			return NewError(InvalidScannedValue, "literal text in format string did not match input")
		}
		r.Advance(w)
	}
	return nil
}

func isASCIISpace(cp rune) bool {
	switch cp {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func presentationName(spec format.Spec) string {
	switch spec.Type {
	case format.PresNone:
		return "default"
	case format.PresCharacterSet:
		return "charset"
	case format.PresRegex:
		return "regex"
	default:
		return "typed"
	}
}

// Input scans os.Stdin against formatStr, serialized against any
// concurrent Input/Prompt call via the process-wide stdin lock (spec.md
// §5).
func Input(formatStr string, dests ...any) (Result, error) {
	lock := buffer.StdinLock()
	lock.Lock()
	defer lock.Unlock()
	return Scan(source.Stdin(), formatStr, dests...)
}

// Prompt writes message to os.Stdout, then behaves like Input.
func Prompt(message, formatStr string, dests ...any) (Result, error) {
	lock := buffer.StdinLock()
	lock.Lock()
	defer lock.Unlock()
	os.Stdout.WriteString(message)
	return Scan(source.Stdin(), formatStr, dests...)
}
