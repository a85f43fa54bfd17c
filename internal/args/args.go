// Package args implements the type-erased argument store and the dispatch
// table that routes a parsed format field to the reader for its tag (spec
// C5). Grounded on the teacher's functional-options style for the
// container shape, generalized here to a tagged union over pointer
// destinations instead of unsafe.Pointer: a typed `any` holding a pointer
// (*int64, *string, ...) is the idiomatic Go rendering of the original's
// "function-pointer slot" design, and keeps the dispatch table free of
// unsafe entirely (see DESIGN.md).
package args

import (
	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/format"
	"github.com/daedaluz/scn/internal/locale"
	"github.com/daedaluz/scn/internal/scnerr"
	"github.com/daedaluz/scn/internal/source"
)

// CustomFunc is the escape hatch for caller-defined scanning, the Go
// analogue of the original's function-pointer argument slot.
type CustomFunc func(r *source.Range, spec format.Spec, loc *locale.Locale) error

// Arg is one type-erased scan destination: a closed Tag plus either a
// pointer-typed Target or, for argtype.Custom, a CustomFunc.
type Arg struct {
	Tag    argtype.ArgType
	Target any
	Custom CustomFunc
}

// Category returns the reader family this argument dispatches to.
func (a Arg) Category() argtype.Category {
	return argtype.CategoryOf(a.Tag)
}

// Reader is the signature every per-type reader in internal/reader
// implements. It mutates r in place (advances the cursor) and writes the
// scanned value through target, returning the count of scanned units
// (spec.md's "n" return, used for %n-style introspection) or an error.
type Reader func(r *source.Range, target any, spec format.Spec, loc *locale.Locale) (int, error)

// Table maps each ArgType to the Reader that handles it. Populated by
// internal/reader's init via Register, avoiding a direct import of
// internal/reader here (which would otherwise need to import internal/args
// for the Arg/Reader types, cycling back).
var table = map[argtype.ArgType]Reader{}

// Register installs the reader for a tag. Called from internal/reader
// package-level init functions.
func Register(tag argtype.ArgType, r Reader) {
	table[tag] = r
}

// Dispatch looks up and invokes the reader for arg.Tag.
func Dispatch(r *source.Range, arg Arg, spec format.Spec, loc *locale.Locale) (int, *scnerr.Error) {
	if arg.Tag == argtype.Custom {
		if arg.Custom == nil {
			return 0, scnerr.NewError(scnerr.InvalidFormatString, "custom argument has no reader function")
		}
		if err := arg.Custom(r, spec, loc); err != nil {
			if se, ok := err.(*scnerr.Error); ok {
				return 0, se
			}
			return 0, scnerr.NewWrappedError(scnerr.InvalidScannedValue, "custom reader failed", err)
		}
		return 1, nil
	}
	reader, ok := table[arg.Tag]
	if !ok {
		return 0, scnerr.NewError(scnerr.InvalidFormatString, "no reader registered for argument type")
	}
	n, err := reader(r, arg.Target, spec, loc)
	if err != nil {
		if se, ok := err.(*scnerr.Error); ok {
			return n, se
		}
		return n, scnerr.NewWrappedError(scnerr.InvalidScannedValue, "reader failed", err)
	}
	return n, nil
}
