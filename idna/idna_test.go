package idna_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idnakit/idnakit/idna"
	"github.com/idnakit/idnakit/punycode"
)

func TestToASCII(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"mañana.com", "xn--maana-pta.com"},
		{"öbb.at", "xn--bb-eka.at"},
		{"mycharity。org", "mycharity.org"},
		{"rewanthcool.com", "rewanthcool.com"},
		{"Example.COM", "example.com"},
		{"bücher.example", "xn--bcher-kva.example"},
		{"☃.net", "xn--n3h.net"},
		{"exam\u00adple.com", "example.com"}, // soft hyphen is ignored
		{"a.b.", "a.b."},                     // trailing root dot
		{"", ""},

		// Transitional processing rewrites the deviations: ß becomes
		// ss, the zero-width (non-)joiners vanish.
		{"fuß.de", "fuss.de"},
		{"a\u094d\u200cb", "xn--ab-fsf"},
	}
	for _, tc := range tests {
		got, err := idna.ToASCII(tc.input)
		if err != nil {
			t.Errorf("ToASCII(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToASCII(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestToASCIINonTransitional(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"fuß.de", "xn--fu-hia.de"},
		{"a\u094d\u200cb", "xn--ab-fsf604u"},
	}
	for _, tc := range tests {
		got, err := idna.Display.ToASCII(tc.input)
		if err != nil {
			t.Errorf("Display.ToASCII(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Display.ToASCII(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

// The transitional and non-transitional renderings of a domain
// containing deviation codepoints must differ, and both must be
// well-formed ACE.
func TestDeviationDivergence(t *testing.T) {
	for _, input := range []string{"fuß.de", "a\u094d\u200cb.example"} {
		trans, err := idna.Lookup.ToASCII(input)
		if err != nil {
			t.Fatalf("Lookup.ToASCII(%q): %v", input, err)
		}
		nontrans, err := idna.Display.ToASCII(input)
		if err != nil {
			t.Fatalf("Display.ToASCII(%q): %v", input, err)
		}
		if trans == nontrans {
			t.Errorf("transitional and non-transitional ToASCII(%q) agree on %q, want divergence", input, trans)
		}
	}
}

func TestSeparatorEquivalence(t *testing.T) {
	want, err := idna.ToASCII("mañana.com")
	if err != nil {
		t.Fatal(err)
	}
	for _, sep := range []rune{'。', '．', '｡'} {
		input := "mañana" + string(sep) + "com"
		got, err := idna.ToASCII(input)
		if err != nil {
			t.Errorf("ToASCII(%q): unexpected error: %v", input, err)
			continue
		}
		if got != want {
			t.Errorf("ToASCII(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestToASCIIRejects(t *testing.T) {
	tests := []string{
		// The hyphen rule rejects any label with a hyphen in the
		// first, last, third or fourth position, which is what keeps
		// ACE-shaped Unicode input from reaching the encoder.
		"xn--mañana.com",
		"ab-c.com",
		"abc-.com",
		"-abc.com",
		// Empty labels are only allowed in final position.
		"a..b",
		".example.com",
	}
	for _, input := range tests {
		got, err := idna.ToASCII(input)
		if err == nil {
			t.Errorf("ToASCII(%q) = %q, want error", input, got)
			continue
		}
		var invalid idna.ErrInvalidLabel
		if !errors.As(err, &invalid) {
			t.Errorf("ToASCII(%q): got error %v, want ErrInvalidLabel", input, err)
		}
	}
}

func TestCheckHyphensDisabled(t *testing.T) {
	p := idna.New(idna.CheckHyphens(false))
	got, err := p.ToASCII("ab-c.com")
	if err != nil {
		t.Fatalf("ToASCII(ab-c.com) with hyphen checks off: %v", err)
	}
	if got != "ab-c.com" {
		t.Errorf("ToASCII(ab-c.com) = %q, want unchanged", got)
	}
}

func TestToUnicode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"xn--maana-pta.com", "mañana.com"},
		{"xn--bb-eka.at", "öbb.at"},
		{"xn--fu-hia.de", "fuß.de"},
		{"example.com", "example.com"},
		{"xn--n3h", "☃"},
		// The ACE prefix and payload are case-insensitive.
		{"XN--BB-EKA.at", "öbb.at"},
	}
	for _, tc := range tests {
		got, err := idna.ToUnicode(tc.input)
		if err != nil {
			t.Errorf("ToUnicode(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ToUnicode(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestToUnicodeBadACE(t *testing.T) {
	_, err := idna.ToUnicode("xn--999999999.com")
	var overflow punycode.OverflowError
	if !errors.As(err, &overflow) {
		t.Fatalf("ToUnicode(xn--999999999.com): got err %v, want wrapped OverflowError", err)
	}
}

// Non-transitional conversion must round-trip: encoding and then
// decoding a well-formed Unicode domain reproduces it, modulo the case
// folding applied by the mapper.
func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"bücher.example",
		"пример.испытание",
		"παράδειγμα.δοκιμή",
		"例え.テスト",
		"mañana.com",
		"öbb.at",
		"fuß.de",
	}
	for _, in := range inputs {
		ascii, err := idna.Display.ToASCII(in)
		if err != nil {
			t.Errorf("Display.ToASCII(%q): %v", in, err)
			continue
		}
		back, err := idna.ToUnicode(ascii)
		if err != nil {
			t.Errorf("ToUnicode(%q): %v", ascii, err)
			continue
		}
		if back != in {
			t.Errorf("round trip of %q: got %q via %q", in, back, ascii)
		}
	}
}

func TestReportDisallowed(t *testing.T) {
	var got []rune
	p := idna.New(idna.ReportDisallowed(func(r rune) { got = append(got, r) }))

	// '_' is permitted ASCII outside the STD3 repertoire: it is
	// reported under the strict rules, but reporting alone does not
	// abort the conversion.
	out, err := p.ToASCII("a_b.com")
	if err != nil {
		t.Fatalf("ToASCII(a_b.com): %v", err)
	}
	if out != "a_b.com" {
		t.Errorf("ToASCII(a_b.com) = %q, want unchanged", out)
	}
	if diff := cmp.Diff([]rune{'_'}, got); diff != "" {
		t.Errorf("reported disallowed runes mismatch (-want +got):\n%s", diff)
	}

	// With the strict rules off, the same input reports nothing.
	got = nil
	p = idna.New(idna.StrictDomainName(false), idna.ReportDisallowed(func(r rune) { got = append(got, r) }))
	if _, err := p.ToASCII("a_b.com"); err != nil {
		t.Fatalf("ToASCII(a_b.com): %v", err)
	}
	if len(got) != 0 {
		t.Errorf("reported %q under relaxed rules, want none", string(got))
	}
}

func TestSTD3Relaxation(t *testing.T) {
	// U+FF01 FULLWIDTH EXCLAMATION MARK maps to '!' only when the
	// STD3 rules are off; under the strict rules it is left in place
	// and reported.
	p := idna.New(idna.StrictDomainName(false), idna.CheckHyphens(false))
	got, err := p.ToASCII("a！b")
	if err != nil {
		t.Fatalf("ToASCII(a\\uFF01b): %v", err)
	}
	if got != "a!b" {
		t.Errorf("ToASCII(a\\uFF01b) = %q, want %q", got, "a!b")
	}
}

func TestVerifyDNSLength(t *testing.T) {
	p := idna.New(idna.VerifyDNSLength(true))

	if _, err := p.ToASCII(""); err == nil {
		t.Error("ToASCII(\"\") with length checks: no error, want ErrLength")
	}
	long := strings.Repeat("a", 64) + ".com"
	if _, err := p.ToASCII(long); err == nil {
		t.Error("ToASCII(64-octet label) with length checks: no error, want ErrLength")
	}
	ok := strings.Repeat("a", 63) + ".com"
	if _, err := p.ToASCII(ok); err != nil {
		t.Errorf("ToASCII(63-octet label) with length checks: %v", err)
	}
}

func TestRemoveLeadingDots(t *testing.T) {
	p := idna.New(idna.RemoveLeadingDots(true))
	got, err := p.ToASCII(".example.com")
	if err != nil {
		t.Fatalf("ToASCII(.example.com): %v", err)
	}
	if got != "example.com" {
		t.Errorf("ToASCII(.example.com) = %q, want %q", got, "example.com")
	}
}

// The encoder and decoder hooks allow byte conventions other than
// UTF-8. A Latin-1 pair exercises both directions.
func TestCustomCodec(t *testing.T) {
	latin1Decode := func(s string) []rune {
		rs := make([]rune, len(s))
		for i := 0; i < len(s); i++ {
			rs[i] = rune(s[i])
		}
		return rs
	}
	latin1Encode := func(rs []rune) string {
		bs := make([]byte, len(rs))
		for i, r := range rs {
			bs[i] = byte(r)
		}
		return string(bs)
	}
	p := idna.New(idna.WithDecoder(latin1Decode), idna.WithEncoder(latin1Encode))

	got, err := p.ToASCII("b\xFCcher.de")
	if err != nil {
		t.Fatalf("ToASCII(latin-1 bücher.de): %v", err)
	}
	if got != "xn--bcher-kva.de" {
		t.Errorf("ToASCII(latin-1 bücher.de) = %q, want %q", got, "xn--bcher-kva.de")
	}

	back, err := p.ToUnicode("xn--bcher-kva.de")
	if err != nil {
		t.Fatalf("ToUnicode(xn--bcher-kva.de): %v", err)
	}
	if back != "b\xFCcher.de" {
		t.Errorf("ToUnicode(xn--bcher-kva.de) = %q, want latin-1 bücher.de", back)
	}
}

func TestProfileString(t *testing.T) {
	if got := idna.Lookup.String(); !strings.HasPrefix(got, "Transitional") {
		t.Errorf("Lookup.String() = %q, want Transitional prefix", got)
	}
	if got := idna.Display.String(); !strings.HasPrefix(got, "NonTransitional") {
		t.Errorf("Display.String() = %q, want NonTransitional prefix", got)
	}
}
