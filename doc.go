// Package scn implements a typed, format-string-driven scanning library:
// the mirror image of fmt.Sprintf for reading structured values back out of
// a string, []byte, io.RuneReader, *os.File or stdin.
//
//	var name string
//	var age int64
//	if _, err := scn.Scan("Paul 42", "{} {}", &name, &age); err != nil {
//	    // ...
//	}
//
// A format string's replacement fields (`{}`, `{:x}`, `{:[:alpha:]}`, ...)
// use the same `{[arg-id][:spec]}` grammar fmt.Sprintf's format verbs
// inspire, specialized for reading rather than writing: a width is parsed
// and validated but no reader applies it, precision truncates a string read, and the
// presentation letter selects which reader a field dispatches to (base,
// float form, character set, regex, ...) instead of which formatter.
//
// Destinations are plain pointers (*int64, *string, *bool, ...); the
// library infers the right reader from the pointer's concrete type rather
// than requiring a separate type parameter per call, mirroring how
// fmt.Sscanf accepts ...any.
package scn
