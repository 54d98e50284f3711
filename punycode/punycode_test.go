package punycode_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idnakit/idnakit/punycode"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		// A purely basic input still gets the trailing delimiter; the
		// IDNA layer never calls Encode for such labels, but the raw
		// codec form is part of RFC 3492.
		{"", ""},
		{"abc", "abc-"},
		{"london", "london-"},

		{"mañana", "maana-pta"},
		{"öbb", "bb-eka"},
		{"fuß", "fu-hia"},
		{"bücher", "bcher-kva"},
		{"münchen", "mnchen-3ya"},
		{"☃", "n3h"},
		{"a\u094db", "ab-fsf"},
		{"a\u094d\u200cb", "ab-fsf604u"},
	}
	for _, tc := range tests {
		got, err := punycode.Encode([]rune(tc.input))
		if err != nil {
			t.Errorf("Encode(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Encode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"abc-", "abc"},
		{"a-", "a"},
		{"maana-pta", "mañana"},
		{"bb-eka", "öbb"},
		{"fu-hia", "fuß"},
		{"bcher-kva", "bücher"},
		{"n3h", "☃"},
		{"ab-fsf", "a\u094db"},
		{"ab-fsf604u", "a\u094d\u200cb"},

		// Uppercase digits carry the same values as lowercase ones.
		{"FU-HIA", "FUß"},
		{"bb-EKA", "öbb"},
	}
	for _, tc := range tests {
		got, err := punycode.Decode(tc.input)
		if err != nil {
			t.Errorf("Decode(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if diff := cmp.Diff([]rune(tc.want), got); diff != "" {
			t.Errorf("Decode(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"mañana",
		"öbb",
		"fuß",
		"bücher",
		"παράδειγμα",
		"пример",
		"例え",
		"☃-with-ascii",
		"a\u094d\u200cb",
	}
	for _, in := range inputs {
		enc, err := punycode.Encode([]rune(in))
		if err != nil {
			t.Errorf("Encode(%q): unexpected error: %v", in, err)
			continue
		}
		dec, err := punycode.Decode(enc)
		if err != nil {
			t.Errorf("Decode(%q): unexpected error: %v", enc, err)
			continue
		}
		if diff := cmp.Diff([]rune(in), dec); diff != "" {
			t.Errorf("round trip of %q via %q mismatch (-want +got):\n%s", in, enc, diff)
		}
	}
}

func TestEncodeOverflow(t *testing.T) {
	// A long run of basic codepoints followed by a large codepoint
	// forces the first delta past 2^31-1: the delta advance is
	// multiplied by the number of handled codepoints.
	input := []rune(strings.Repeat("a", 2100) + "\U0010FFFF")
	_, err := punycode.Encode(input)
	var overflow punycode.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("Encode(2100*a + U+10FFFF): got err %v, want OverflowError", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		// A run of '9' digits pushes the accumulated value past the cap.
		{"999999999", punycode.OverflowError{}},
		// Input ends in the middle of a variable-length integer.
		{"b", punycode.InvalidInputError{}},
		{"abc-b", punycode.InvalidInputError{}},
		// A byte that is not a Punycode digit.
		{"ab cd", punycode.InvalidInputError{}},
		// Non-ASCII in the literal portion.
		{"\xc3\xa9-a", punycode.NotBasicError{Byte: 0xC3}},
	}
	for _, tc := range tests {
		_, err := punycode.Decode(tc.input)
		if err == nil {
			t.Errorf("Decode(%q): no error, want %v", tc.input, tc.want)
			continue
		}
		if !errors.Is(err, tc.want) {
			t.Errorf("Decode(%q): got error %v, want %v", tc.input, err, tc.want)
		}
	}
}
