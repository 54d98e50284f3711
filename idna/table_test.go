package idna

import "testing"

// The binary search over mappings requires the runs to be sorted and
// non-overlapping; broken table data would fail silently as wrong
// categories, so check the shape explicitly.
func TestTableShape(t *testing.T) {
	prev := rune(-1)
	for i, e := range mappings {
		if e.lo > e.hi {
			t.Errorf("mappings[%d]: lo %#x > hi %#x", i, e.lo, e.hi)
		}
		if e.lo <= prev {
			t.Errorf("mappings[%d]: lo %#x overlaps previous hi %#x", i, e.lo, prev)
		}
		if e.hi > 0x10FFFF {
			t.Errorf("mappings[%d]: hi %#x beyond Unicode space", i, e.hi)
		}
		if e.repl != "" && e.delta != 0 {
			t.Errorf("mappings[%d]: both repl %q and delta %#x set", i, e.repl, e.delta)
		}
		if e.delta == deltaUpperLower && (e.hi-e.lo)%2 == 0 {
			t.Errorf("mappings[%d]: alternating run %#x..%#x has odd length", i, e.lo, e.hi)
		}
		prev = e.hi
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		r    rune
		cat  category
		repl string
	}{
		{'a', valid, ""},
		{'z', valid, ""},
		{'0', valid, ""},
		{'-', valid, ""},
		{'.', valid, ""},
		{'A', mapped, "a"},
		{'Z', mapped, "z"},
		{'_', disallowedSTD3Valid, ""},
		{'~', disallowedSTD3Valid, ""},
		{0x00AD, ignored, ""},          // soft hyphen
		{0x00DF, deviation, "ss"},      // ß
		{0x03C2, deviation, "\u03c3"},       // ς
		{0x200C, deviation, ""},        // zero width non-joiner
		{0x200D, deviation, ""},        // zero width joiner
		{0x00F1, valid, ""},            // ñ
		{0x00D1, mapped, "\u00f1"},          // Ñ
		{0x094D, valid, ""},            // devanagari virama
		{0x3002, mapped, "."},          // ideographic full stop
		{0xFF0E, mapped, "."},          // fullwidth full stop
		{0xFF61, mapped, "."},          // halfwidth ideographic full stop
		{0xFF21, mapped, "a"},          // fullwidth A
		{0x0391, mapped, "\u03b1"},          // greek capital alpha
		{0x0410, mapped, "\u0430"},          // cyrillic capital a
		{0x2460, mapped, "1"},          // circled digit one
		{0x0130, mapped, "i\u0307"},    // capital I with dot above
		{0x2121, mapped, "tel"},        // telephone sign
		{0xFEFF, ignored, ""},          // zero width no-break space
		{0x00A0, disallowedSTD3Mapped, " "},

		// Alternating uppercase/lowercase runs.
		{0x0100, mapped, "\u0101"},
		{0x0101, valid, ""},
		{0x0139, mapped, "\u013a"},
		{0x013A, valid, ""},

		// Disallowed: unassigned gaps and the top of the last plane
		// (outside every run), and surrogates, private use and the
		// line separator (explicit disallowed runs).
		{0x0378, disallowed, ""},
		{0x03A2, disallowed, ""},
		{0xD800, disallowed, ""},
		{0xE000, disallowed, ""},
		{0x2028, disallowed, ""},
		{0x10FFFF, disallowed, ""},
	}
	for _, tc := range tests {
		cat, repl := lookup(tc.r)
		if cat != tc.cat || repl != tc.repl {
			t.Errorf("lookup(%#x) = (%d, %q), want (%d, %q)", tc.r, cat, repl, tc.cat, tc.repl)
		}
	}
}
