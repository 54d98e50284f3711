package idna

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitLabels(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{""}},
		{"abc", []string{"abc"}},
		{"a.b", []string{"a", "b"}},
		{"a.b.c", []string{"a", "b", "c"}},
		{"a.", []string{"a", ""}},
		{".a", []string{"", "a"}},
		{"..", []string{"", "", ""}},
	}
	for _, tc := range tests {
		var got []string
		for _, l := range splitLabels([]rune(tc.input), '.') {
			got = append(got, string(l))
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("splitLabels(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

func TestMapRunes(t *testing.T) {
	transitional := New()
	nontransitional := New(Transitional(false))
	relaxed := New(StrictDomainName(false))

	tests := []struct {
		name    string
		p       *Profile
		input   string
		want    string
		wantBad string
	}{
		{"case folding", transitional, "ExAmPlE", "example", ""},
		{"deviation rewritten", transitional, "fuß", "fuss", ""},
		{"deviation kept", nontransitional, "fuß", "fuß", ""},
		{"zwnj dropped", transitional, "a\u200cb", "ab", ""},
		{"zwnj kept", nontransitional, "a\u200cb", "a\u200cb", ""},
		{"separators normalised", transitional, "a。b．c｡d", "a.b.c.d", ""},
		{"ignored removed", transitional, "so\u00adft", "soft", ""},
		{"splice grows output", transitional, "a℡b", "atelb", ""},
		{"reported runes not removed", transitional, "a b", "a b", " "},
		{"std3 ascii reported", transitional, "a_b", "a_b", "_"},
		{"std3 ascii accepted when relaxed", relaxed, "a_b", "a_b", ""},
		{"std3 mapping applied when relaxed", relaxed, "a！b", "a!b", ""},
		{"std3 mapping withheld when strict", transitional, "a！b", "a！b", "！"},
	}
	for _, tc := range tests {
		got, bad := tc.p.mapRunes([]rune(tc.input))
		if string(got) != tc.want {
			t.Errorf("%s: mapRunes(%q) = %q, want %q", tc.name, tc.input, string(got), tc.want)
		}
		if string(bad) != tc.wantBad {
			t.Errorf("%s: mapRunes(%q) reported %q, want %q", tc.name, tc.input, string(bad), tc.wantBad)
		}
	}
}

func TestValidateLabel(t *testing.T) {
	p := New()
	tests := []struct {
		label  string
		final  bool
		wantOK bool
	}{
		{"example", false, true},
		{"a", false, true},
		{"", true, true},
		{"", false, false},
		{"-leading", false, false},
		{"trailing-", false, false},
		{"ab-c", false, false},  // hyphen in position 3
		{"abc-d", false, false}, // hyphen in position 4
		{"a-bcd", false, true},  // hyphen in position 2 is fine
		{"xn--a", false, false},
	}
	for _, tc := range tests {
		err := p.validateLabel([]rune(tc.label), tc.final)
		if gotOK := err == nil; gotOK != tc.wantOK {
			t.Errorf("validateLabel(%q, final=%v): err=%v, want ok=%v", tc.label, tc.final, err, tc.wantOK)
		}
	}
}

func TestValidateLabelEmbeddedDot(t *testing.T) {
	p := New(CheckHyphens(false))
	if err := p.validateLabel([]rune("a.b"), false); err == nil {
		t.Error("validateLabel(a.b): no error for embedded full stop")
	}
}

// ASCII labels that do not carry the ACE prefix must survive a label
// codec round trip untouched.
func TestLabelCodecASCIIRoundTrip(t *testing.T) {
	p := New()
	for _, label := range []string{"", "a", "example", "sn-apo3qvuoxuxbt", "123", "with-hyphen"} {
		enc, err := p.encodeLabel(label)
		if err != nil {
			t.Errorf("encodeLabel(%q): %v", label, err)
			continue
		}
		if enc != label {
			t.Errorf("encodeLabel(%q) = %q, want passthrough", label, enc)
		}
		dec, err := p.decodeLabel(enc)
		if err != nil {
			t.Errorf("decodeLabel(%q): %v", enc, err)
			continue
		}
		if dec != label {
			t.Errorf("decodeLabel(encodeLabel(%q)) = %q", label, dec)
		}
	}
}

func TestEncodeLabelACE(t *testing.T) {
	p := New()
	enc, err := p.encodeLabel("bücher")
	if err != nil {
		t.Fatalf("encodeLabel(bücher): %v", err)
	}
	if enc != "xn--bcher-kva" {
		t.Errorf("encodeLabel(bücher) = %q, want xn--bcher-kva", enc)
	}
}
