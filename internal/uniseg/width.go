package uniseg

import "github.com/mattn/go-runewidth"

// Width returns the terminal display width of r: 2 for East Asian Wide and
// Fullwidth code points, 1 otherwise (0 for combining marks and control
// characters, matching go-runewidth's condition table).
//
// Grounded on github.com/mattn/go-runewidth, the width engine charm's glow
// uses for the same East-Asian-wide=2/else=1 policy spec.md requires.
func Width(r rune) int {
	return runewidth.RuneWidth(r)
}

// StringWidth sums Width over every code point of s.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}
