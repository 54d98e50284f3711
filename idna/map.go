package idna

import (
	"strings"

	"github.com/idnakit/idnakit/punycode"
)

// acePrefix is the ASCII Compatible Encoding prefix.
const acePrefix = "xn--"

// mapRunes applies the UTS #46 mapping steps to src and returns the
// mapped codepoints together with the disallowed codepoints that were
// encountered. The steps run in a fixed order: deviation rewriting
// (transitional profiles only), separator normalisation, removal of
// ignored codepoints, table mappings, collection of disallowed
// codepoints, and finally the STD3 relaxation for permissive profiles.
//
// Separator normalisation runs after the deviation rewrite so that
// dot-like codepoints produced by a rewrite are still honoured as
// separators.
//
// The mapper never rejects its input. Disallowed codepoints are
// reported, not removed; whether they abort the conversion is decided
// above this layer.
func (p *Profile) mapRunes(src []rune) (out, disallowedRunes []rune) {
	out = src

	if p.transitional {
		out = rewrite(out, func(r rune) (string, bool) {
			if cat, repl := lookup(r); cat == deviation {
				return repl, true
			}
			return "", false
		})
	}

	normalized := make([]rune, len(out))
	for i, r := range out {
		switch r {
		case '。', '．', '｡':
			normalized[i] = '.'
		default:
			normalized[i] = r
		}
	}
	out = normalized

	kept := out[:0:len(out)]
	for _, r := range out {
		if cat, _ := lookup(r); cat != ignored {
			kept = append(kept, r)
		}
	}
	out = kept

	out = rewrite(out, func(r rune) (string, bool) {
		if cat, repl := lookup(r); cat == mapped {
			return repl, true
		}
		return "", false
	})

	for _, r := range out {
		switch cat, _ := lookup(r); cat {
		case disallowed:
			disallowedRunes = append(disallowedRunes, r)
		case disallowedSTD3Valid, disallowedSTD3Mapped:
			if p.useSTD3Rules {
				disallowedRunes = append(disallowedRunes, r)
			}
		}
	}

	if !p.useSTD3Rules {
		out = rewrite(out, func(r rune) (string, bool) {
			if cat, repl := lookup(r); cat == disallowedSTD3Mapped {
				return repl, true
			}
			return "", false
		})
	}

	return out, disallowedRunes
}

// rewrite splices f's replacement into rs wherever f reports one. The
// result may be shorter or longer than the input.
func rewrite(rs []rune, f func(r rune) (string, bool)) []rune {
	out := make([]rune, 0, len(rs))
	for _, r := range rs {
		if repl, ok := f(r); ok {
			out = append(out, []rune(repl)...)
		} else {
			out = append(out, r)
		}
	}
	return out
}

// splitLabels partitions rs on sep. The separator itself is consumed.
// An empty input yields a single empty label, and a trailing separator
// yields an empty trailing label, so the result is never empty.
func splitLabels(rs []rune, sep rune) [][]rune {
	labels := make([][]rune, 0, 4)
	start := 0
	for i, r := range rs {
		if r == sep {
			labels = append(labels, rs[start:i])
			start = i + 1
		}
	}
	return append(labels, rs[start:])
}

// validateLabel checks the structural rules for one label. final
// reports whether this is the last label of the domain; a final empty
// label (the trailing root dot) is permitted, any other empty label is
// not.
//
// The hyphen rule here is stricter than RFC 5891's: a label is
// rejected when position 3 OR position 4 holds a hyphen, where the RFC
// only forbids hyphens in both positions at once. Either reading
// rejects ACE-shaped labels such as "xn--..." on the Unicode side; the
// stricter one also rejects labels such as "ab-c" and "abc-d".
func (p *Profile) validateLabel(label []rune, final bool) error {
	if len(label) == 0 {
		if !final {
			return ErrInvalidLabel{Label: "", Reason: "empty label"}
		}
		return nil
	}
	if p.checkHyphens {
		if label[0] == '-' || label[len(label)-1] == '-' {
			return ErrInvalidLabel{Label: string(label), Reason: "leading or trailing hyphen"}
		}
		if len(label) >= 3 && label[2] == '-' || len(label) >= 4 && label[3] == '-' {
			return ErrInvalidLabel{Label: string(label), Reason: "hyphen in position 3 or 4"}
		}
	}
	for _, r := range label {
		if r == '.' {
			return ErrInvalidLabel{Label: string(label), Reason: "embedded full stop"}
		}
	}
	return nil
}

// encodeLabel converts one rendered label to its ACE form. Labels that
// decode to pure ASCII pass through unchanged; anything else becomes
// an "xn--" label.
func (p *Profile) encodeLabel(s string) (string, error) {
	rs := p.decoder(s)
	ascii := true
	for _, r := range rs {
		if r >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return s, nil
	}
	a, err := punycode.Encode(rs)
	if err != nil {
		return "", ErrLabelCodec{Label: s, Err: err}
	}
	return acePrefix + a, nil
}

// decodeLabel converts one ACE label back to Unicode. Labels without
// the ACE prefix pass through unchanged. The prefix match and the
// Punycode payload are both case-insensitive; the payload is
// lowercased before decoding so that uppercase digits decode to the
// same codepoints as their lowercase forms.
func (p *Profile) decodeLabel(s string) (string, error) {
	if len(s) < len(acePrefix) || !strings.EqualFold(s[:len(acePrefix)], acePrefix) {
		return s, nil
	}
	rs, err := punycode.Decode(strings.ToLower(s[len(acePrefix):]))
	if err != nil {
		return "", ErrLabelCodec{Label: s, Err: err}
	}
	return p.encoder(rs), nil
}
