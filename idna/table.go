package idna

import "slices"

// category classifies a codepoint according to the IDNA mapping table
// of UTS #46. Every codepoint in [0, 0x10FFFF] has exactly one
// category; codepoints not covered by an explicit run are disallowed.
// The runs cover only part of the assigned repertoire, so besides the
// unassigned space, assigned codepoints outside every run (for example
// U+1F80 or the Arabic presentation forms) are disallowed as well.
type category uint8

const (
	valid category = iota
	ignored
	mapped
	deviation
	disallowed
	disallowedSTD3Valid
	disallowedSTD3Mapped
)

// deltaUpperLower marks a run of alternating uppercase/lowercase
// pairs: codepoints at an even offset from the start of the run map to
// the codepoint that follows them, codepoints at an odd offset are
// valid. This is the same convention the standard library's unicode
// package uses for its UpperLower case ranges, and it compresses the
// long cased stretches of Latin Extended, Greek, Cyrillic and Coptic
// into single entries.
const deltaUpperLower rune = 1 << 21

// A mapEntry describes the disposition of a contiguous run of
// codepoints. Replacements come in two forms: repl holds an explicit
// replacement sequence shared by every codepoint of the run (it may be
// empty, for the zero-width deviations), while a nonzero delta maps
// each codepoint to itself plus the delta.
type mapEntry struct {
	lo, hi   rune
	category category
	repl     string
	delta    rune
}

// lookup returns the category of r together with its replacement
// sequence. The replacement is only meaningful for the mapped,
// deviation and disallowedSTD3Mapped categories.
func lookup(r rune) (category, string) {
	i, ok := slices.BinarySearchFunc(mappings, r, func(e mapEntry, r rune) int {
		switch {
		case e.hi < r:
			return -1
		case e.lo > r:
			return 1
		}
		return 0
	})
	if !ok {
		return disallowed, ""
	}
	e := mappings[i]
	if e.delta == deltaUpperLower {
		if (r-e.lo)%2 == 0 {
			return mapped, string(r + 1)
		}
		return valid, ""
	}
	if e.delta != 0 {
		return e.category, string(r + e.delta)
	}
	return e.category, e.repl
}
