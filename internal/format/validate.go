package format

import (
	"fmt"

	"github.com/daedaluz/scn/internal/argtype"
	"github.com/daedaluz/scn/internal/scnerr"
)

// CheckAgainst validates every field's spec against the category of the
// argument it resolves to, per spec.md I-F1 ("a format spec's presentation
// type must be compatible with its argument's category") and I-F3 ("fields
// with an explicit arg-id must stay within range of the supplied
// arguments"). categoryOf is typically argtype.CategoryOf composed with a
// lookup from ArgIndex to the caller's argument list.
func (ch *Checked) CheckAgainst(categoryOf func(argIndex int) (argtype.Category, bool)) *scnerr.Error {
	for i, f := range ch.Fields {
		cat, ok := categoryOf(f.ArgIndex)
		if !ok {
			return scnerr.NewError(scnerr.InvalidFormatString,
				fmt.Sprintf("field %d: argument index %d out of range", i, f.ArgIndex))
		}
		if err := checkSpecForCategory(f.Spec, cat); err != nil {
			return err
		}
	}
	return nil
}

func checkSpecForCategory(s Spec, cat argtype.Category) *scnerr.Error {
	if s.Type == PresNone {
		return nil
	}
	allowed, ok := categoryPresentations[cat]
	if !ok {
		return scnerr.NewError(scnerr.InvalidFormatString, "argument category accepts no presentation type")
	}
	for _, p := range allowed {
		if p == s.Type {
			return checkSpecShape(s, cat)
		}
	}
	return scnerr.NewError(scnerr.InvalidFormatString, "presentation type not valid for this argument's category")
}

var categoryPresentations = map[argtype.Category][]Presentation{
	argtype.CategoryInteger: {
		PresIntGeneric, PresIntBinary, PresIntOctal, PresIntDecimal,
		PresIntHex, PresIntUnsigned, PresIntArbitraryBase, PresCodePoint,
	},
	argtype.CategoryFloat: {
		PresFloatFixed, PresFloatScientific, PresFloatHex, PresFloatGeneral,
	},
	argtype.CategoryBool:    {},
	argtype.CategoryChar:    {PresCharFixed, PresCodePoint},
	argtype.CategoryString:  {PresString, PresCharacterSet, PresQuoted, PresCharFixed},
	argtype.CategoryRegex:   {PresRegex},
	argtype.CategoryPointer: {PresPointer},
	// Containers and custom readers resolve their own element specs
	// recursively; the outer field itself carries no presentation type.
	argtype.CategoryContainer: {},
	argtype.CategoryCustom:    {},
}

// checkSpecShape enforces combinations that are syntactically legal but
// semantically contradictory for a given category (I-F2), e.g. a thousands
// separator on a non-localized, non-numeric field, or precision on an
// integer field.
func checkSpecShape(s Spec, cat argtype.Category) *scnerr.Error {
	if cat == argtype.CategoryInteger && s.HasPrecision {
		return scnerr.NewError(scnerr.InvalidFormatString, "precision is not valid for integer fields")
	}
	if s.Thsep && !s.Localized && cat != argtype.CategoryInteger && cat != argtype.CategoryFloat {
		return scnerr.NewError(scnerr.InvalidFormatString, "thousands separator only valid for numeric fields")
	}
	if s.Type == PresIntArbitraryBase && (s.ArbitraryBase < 2 || s.ArbitraryBase > 36) {
		return scnerr.NewError(scnerr.InvalidFormatString, "arbitrary base out of range")
	}
	return nil
}
