// Package argtype defines the closed set of argument type tags the scan
// engine dispatches on (spec C5/C11). It is split out from internal/args so
// that internal/format can validate a spec against a tag without importing
// internal/args (which itself needs internal/format's Spec type to
// dispatch) — avoiding an import cycle between the two.
package argtype

// ArgType is the closed tag every scannable argument carries. The original
// C++ design calls for "a tagged-variant over the builtin reader types...
// do not express this as open-ended polymorphism over every T; the closed
// set is small (≤ 30 tags)" — this is that set.
type ArgType int

const (
	Int8 ArgType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Bool
	Byte         // single narrow code unit
	Rune         // single wide code point
	CodePoint    // decoded code point, regardless of source width
	String       // owned, copying
	StringView   // borrowed, contiguous sources only
	RegexMatches
	Pointer
	Sequence // []T destination, spec.md C14 "sequence" flavour
	Set      // map[T]struct{} destination, C14 "set" flavour
	Map      // map[K]V destination, C14 "map" flavour
	Custom
)

// Category groups tags that share a reader family, used by the format
// validator to decide which specifier combinations are legal (spec I-F1).
type Category int

const (
	CategoryInteger Category = iota
	CategoryFloat
	CategoryBool
	CategoryChar
	CategoryString
	CategoryRegex
	CategoryPointer
	CategoryContainer
	CategoryCustom
)

// CategoryOf returns the reader family a tag belongs to.
func CategoryOf(t ArgType) Category {
	switch t {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64:
		return CategoryInteger
	case Float32, Float64:
		return CategoryFloat
	case Bool:
		return CategoryBool
	case Byte, Rune, CodePoint:
		return CategoryChar
	case String, StringView:
		return CategoryString
	case RegexMatches:
		return CategoryRegex
	case Pointer:
		return CategoryPointer
	case Sequence, Set, Map:
		return CategoryContainer
	default:
		return CategoryCustom
	}
}

// Signed reports whether t is one of the signed integer tags.
func Signed(t ArgType) bool {
	switch t {
	case Int8, Int16, Int32, Int64:
		return true
	}
	return false
}
