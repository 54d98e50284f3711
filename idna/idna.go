// Package idna converts internationalized domain names between their
// Unicode and ASCII Compatible Encoding (ACE) forms, following the
// "Uniform IDNA Processing" model of UTS #46: input codepoints are
// mapped against the IDNA mapping table, segmented into labels,
// validated, and each non-ASCII label is Punycode-encoded behind the
// "xn--" prefix.
//
// The package-level ToASCII and ToUnicode functions use the Lookup
// profile. Callers that need different processing construct their own
// profile:
//
//	p := idna.New(idna.Transitional(false), idna.StrictDomainName(false))
//	ascii, err := p.ToASCII("fuß.de")
//
// Conversion is purely functional: profiles are immutable after New,
// the mapping table is read-only, and every entry point is safe for
// concurrent use.
package idna

import "strings"

// An Option configures a Profile at creation time.
type Option func(*options)

// Transitional sets whether deviation codepoints (ß, ς, ZERO WIDTH
// JOINER and ZERO WIDTH NON-JOINER) are rewritten to their IDNA2003
// equivalents before further mapping. Transitional processing matches
// the behaviour of IDNA2003-era resolvers.
func Transitional(transitional bool) Option {
	return func(o *options) { o.transitional = transitional }
}

// CheckHyphens sets whether labels with a hyphen in the first, last,
// third or fourth position are rejected.
func CheckHyphens(enable bool) Option {
	return func(o *options) { o.checkHyphens = enable }
}

// CheckBidi declares whether the Bidi Rule of RFC 5893 section 2
// should be enforced. The flag is accepted and recorded but the rule
// is not enforced by this package; callers that require it must layer
// it on top.
func CheckBidi(enable bool) Option {
	return func(o *options) { o.checkBidi = enable }
}

// CheckJoiners declares whether the ContextJ rules of RFC 5892
// Appendix A should be enforced. Like CheckBidi, the flag is recorded
// but not enforced by this package.
func CheckJoiners(enable bool) Option {
	return func(o *options) { o.checkJoiners = enable }
}

// StrictDomainName sets whether the ASCII repertoire is limited to
// letters, digits and hyphens as required by STD3. When disabled,
// codepoints that STD3 excludes are accepted, and those with a defined
// mapping (such as fullwidth punctuation) are mapped instead of
// reported as disallowed.
func StrictDomainName(use bool) Option {
	return func(o *options) { o.useSTD3Rules = use }
}

// VerifyDNSLength sets whether ToASCII enforces the DNS length limits:
// a nonempty domain of at most 253 octets, each label between 1 and 63
// octets.
func VerifyDNSLength(verify bool) Option {
	return func(o *options) { o.verifyDNSLength = verify }
}

// RemoveLeadingDots sets whether leading label separators are stripped
// after mapping. Separator-like codepoints that map to a full stop are
// removed as well, since they are normalised before the strip.
func RemoveLeadingDots(remove bool) Option {
	return func(o *options) { o.removeLeadingDots = remove }
}

// Delimiter sets the codepoint that separates labels. The default is
// U+002E FULL STOP. Separator normalisation always produces U+002E
// whatever the delimiter, and a U+002E inside a label is still
// rejected, so other delimiters are only useful for non-DNS name
// spaces.
func Delimiter(sep rune) Option {
	return func(o *options) { o.delimiter = sep }
}

// WithEncoder replaces the function that renders a codepoint sequence
// as a byte string. The default is UTF-8.
func WithEncoder(encode func([]rune) string) Option {
	return func(o *options) { o.encoder = encode }
}

// WithDecoder replaces the function that interprets a byte string as a
// codepoint sequence. The default is UTF-8.
func WithDecoder(decode func(string) []rune) Option {
	return func(o *options) { o.decoder = decode }
}

// ReportDisallowed registers a callback that receives every disallowed
// codepoint the mapper encounters. Disallowed codepoints do not abort
// a conversion by themselves; the callback exists so callers can
// surface them.
func ReportDisallowed(report func(r rune)) Option {
	return func(o *options) { o.reportDisallowed = report }
}

type options struct {
	transitional      bool
	useSTD3Rules      bool
	checkHyphens      bool
	checkBidi         bool
	checkJoiners      bool
	verifyDNSLength   bool
	removeLeadingDots bool
	delimiter         rune

	encoder          func([]rune) string
	decoder          func(string) []rune
	reportDisallowed func(r rune)
}

// A Profile defines the configuration of an IDNA mapper.
type Profile struct {
	options
}

// New creates a Profile. Without options the profile matches Lookup:
// transitional processing, hyphen checking and the STD3 ASCII rules
// are all on, the delimiter is U+002E, and labels are rendered as
// UTF-8.
func New(opts ...Option) *Profile {
	p := &Profile{options{
		transitional: true,
		useSTD3Rules: true,
		checkHyphens: true,
		delimiter:    '.',
		encoder:      func(rs []rune) string { return string(rs) },
		decoder:      func(s string) []rune { return []rune(s) },
	}}
	for _, o := range opts {
		o(&p.options)
	}
	return p
}

var (
	// Lookup is the default profile for resolving domain names.
	Lookup = New()

	// Display is the recommended profile for presenting domain names
	// to users: identical to Lookup but non-transitional, so deviation
	// codepoints round-trip.
	Display = New(Transitional(false))

	// Punycode is a minimally restrictive profile: no hyphen checks
	// and no STD3 repertoire limits, useful for raw ACE conversion of
	// names that are not hostnames.
	Punycode = New(Transitional(false), CheckHyphens(false), StrictDomainName(false))
)

// ToASCII converts a domain name to its ACE form using the Lookup
// profile. For example, ToASCII("bücher.example") is
// "xn--bcher-kva.example".
func ToASCII(s string) (string, error) { return Lookup.ToASCII(s) }

// ToUnicode converts a domain name from its ACE form using the Lookup
// profile. For example, ToUnicode("xn--bcher-kva.example") is
// "bücher.example".
func ToUnicode(s string) (string, error) { return Lookup.ToUnicode(s) }

// ToASCII converts a domain name to its ACE form: the input is mapped,
// split into labels, validated, and every label containing non-ASCII
// codepoints is Punycode-encoded behind the "xn--" prefix.
//
// A failure in any label poisons the whole conversion; the result is
// empty and the error describes the first offending label.
func (p *Profile) ToASCII(s string) (string, error) {
	mapped, disallowedRunes := p.mapRunes(p.decoder(s))
	if p.reportDisallowed != nil {
		for _, r := range disallowedRunes {
			p.reportDisallowed(r)
		}
	}
	if p.removeLeadingDots {
		for len(mapped) > 0 && mapped[0] == p.delimiter {
			mapped = mapped[1:]
		}
	}

	labels := splitLabels(mapped, p.delimiter)
	for i, label := range labels {
		if err := p.validateLabel(label, i == len(labels)-1); err != nil {
			return "", err
		}
	}

	sep := p.encoder([]rune{p.delimiter})
	var b strings.Builder
	for i, label := range labels {
		encoded, err := p.encodeLabel(p.encoder(label))
		if err != nil {
			return "", err
		}
		if p.verifyDNSLength {
			if n := len(encoded); n == 0 && i != len(labels)-1 || n > 63 {
				return "", ErrLength{Subject: encoded, Reason: "label must be 1 to 63 octets"}
			}
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(encoded)
	}
	out := b.String()
	if p.verifyDNSLength {
		n := len(out)
		if n > 0 && out[n-1] == '.' {
			n--
		}
		if n < 1 || n > 253 {
			return "", ErrLength{Subject: out, Reason: "domain must be 1 to 253 octets"}
		}
	}
	return out, nil
}

// ToUnicode converts a domain name from its ACE form. Labels carrying
// the "xn--" prefix are Punycode-decoded; everything else passes
// through unchanged. No mapping or validation is applied: decoding is
// expected to be lossless over valid ACE input.
func (p *Profile) ToUnicode(s string) (string, error) {
	labels := splitLabels(p.decoder(s), p.delimiter)
	sep := p.encoder([]rune{p.delimiter})
	var b strings.Builder
	for i, label := range labels {
		decoded, err := p.decodeLabel(p.encoder(label))
		if err != nil {
			return "", err
		}
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(decoded)
	}
	return b.String(), nil
}

// String reports a description of the profile for debugging.
func (p *Profile) String() string {
	s := "NonTransitional"
	if p.transitional {
		s = "Transitional"
	}
	if p.useSTD3Rules {
		s += ":UseSTD3Rules"
	}
	if p.checkHyphens {
		s += ":CheckHyphens"
	}
	if p.checkBidi {
		s += ":CheckBidi"
	}
	if p.checkJoiners {
		s += ":CheckJoiners"
	}
	if p.verifyDNSLength {
		s += ":VerifyDNSLength"
	}
	return s
}
