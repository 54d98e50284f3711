// Package domain provides parsing and processing of internationalized
// domain names and DNS labels on top of the idna codec.
package domain

import (
	"bytes"
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/idnakit/idnakit/idna"
)

// Name is a fully qualified domain name.
//
// A Name is always in canonical Unicode form: NFC-normalized, mapped
// through the IDNA mapping table, validated, and with any ACE labels
// decoded. Labels are stored leaf-first, matching the conventional
// string representation.
type Name struct {
	labels []Label
}

// Parse parses and validates a domain name string. The input may be
// in Unicode form, ACE form, or a mixture of the two; the result is
// canonical Unicode.
func Parse(s string) (Name, error) {
	canonical, err := canonicalize(s)
	if err != nil {
		return Name{}, err
	}

	labels := strings.Split(canonical, ".")
	if last := len(labels) - 1; last >= 0 && labels[last] == "" {
		// Canonical IDNA form allows one trailing dot; here the
		// convention is to omit it. Removing the dot does not change
		// the meaning of the name, so clean it up rather than force
		// the caller to.
		labels = labels[:last]
	}

	ret := Name{
		labels: make([]Label, 0, len(labels)),
	}
	for _, l := range labels {
		ret.labels = append(ret.labels, Label{l})
	}
	return ret, nil
}

// canonicalize maps s to canonical Unicode form: NFC first, then a
// decode of any ACE labels, then a full ACE round trip so that the
// mapping and label validation of the codec apply to the Unicode
// form. Decoding before encoding matters: ToASCII rejects labels that
// look like ACE, so ACE input has to be lifted to Unicode before it
// is re-validated.
func canonicalize(s string) (string, error) {
	u, err := nameCodec.ToUnicode(norm.NFC.String(s))
	if err != nil {
		return "", err
	}
	a, err := nameCodec.ToASCII(u)
	if err != nil {
		return "", err
	}
	return nameCodec.ToUnicode(a)
}

// String returns the domain name in its canonical Unicode string
// format.
func (d Name) String() string {
	var b strings.Builder
	for i, l := range d.labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(l.String())
	}
	return b.String()
}

// ASCIIString returns the domain name in its canonical ACE (aka
// "punycode") form.
func (d Name) ASCIIString() string {
	var b strings.Builder
	for i, l := range d.labels {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(l.ASCIIString())
	}
	return b.String()
}

// NumLabels returns the number of DNS labels in the domain name.
func (d Name) NumLabels() int { return len(d.labels) }

// Labels returns the individual labels of the domain name, leaf
// first.
func (d Name) Labels() []Label {
	// Copy so the caller cannot break the canonical-form invariant by
	// mutating the returned slice.
	return append([]Label(nil), d.labels...)
}

// Compare compares domain names. It returns -1 if d < e, +1 if d > e,
// and 0 if d == e.
//
// Names that are equal under IDNA compare as 0. Unequal names are
// ordered by the first unequal label starting from the TLD.
func (d Name) Compare(e Name) int {
	dl, el := d.labels, e.labels
	for i := 0; i < len(dl) && i < len(el); i++ {
		// Labels are stored leaf-first, so walk from the tail to
		// compare TLD-first.
		if c := dl[len(dl)-1-i].Compare(el[len(el)-1-i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(dl), len(el))
}

// Equal reports whether d and e are equal under IDNA.
func (d Name) Equal(e Name) bool { return d.Compare(e) == 0 }

// CutSuffix removes suffix from d. If d is a child domain of suffix,
// CutSuffix returns the remaining leaf labels and found=true.
// Otherwise it returns nil, false.
func (d Name) CutSuffix(suffix Name) (rest []Label, found bool) {
	// A suffix must leave at least one non-suffix label, so d ==
	// suffix fails the cut.
	if len(suffix.labels) >= len(d.labels) {
		return nil, false
	}

	cut := len(d.labels) - len(suffix.labels)
	if !slices.EqualFunc(d.labels[cut:], suffix.labels, Label.Equal) {
		return nil, false
	}
	return append([]Label(nil), d.labels[:cut]...), true
}

// Label is a domain name label.
type Label struct {
	label string
}

// ParseLabel parses and validates a single domain name label.
func ParseLabel(s string) (Label, error) {
	canonical, err := canonicalize(s)
	if err != nil {
		return Label{}, err
	} else if strings.Contains(canonical, ".") {
		return Label{}, fmt.Errorf("label %q cannot contain a dot", s)
	}

	return Label{canonical}, nil
}

func (l Label) String() string { return l.label }

// ASCIIString returns the label in its ACE form.
func (l Label) ASCIIString() string {
	ret, err := nameCodec.ToASCII(l.label)
	if err != nil {
		// Labels only come from ParseLabel or Parse, which already
		// validated and canonicalized them; converting a canonical
		// U-label to an A-label cannot fail.
		panic(fmt.Sprintf("impossible: U-label to A-label conversion failed: %v", err))
	}
	return ret
}

// AsTLD returns the label as a top-level domain Name.
func (l Label) AsTLD() Name {
	return Name{labels: []Label{l}}
}

// Compare compares domain labels. It returns -1 if l < m, +1 if l > m,
// and 0 if l == m.
//
// Canonical U-labels compare equal exactly when their bytes are
// equal, because the codec has already applied the IDNA case mapping.
// Unequal labels are ordered by the English Unicode collation, with a
// bytewise tie-break so that collation-equivalent but distinct labels
// stay unequal.
func (l Label) Compare(m Label) int {
	bytewise := cmp.Compare(l.label, m.label)
	if bytewise == 0 {
		return 0
	}
	if res := collateLabels(l, m); res != 0 {
		return res
	}
	return bytewise
}

// Equal reports whether domain labels are equal under IDNA.
func (l Label) Equal(m Label) bool { return l.Compare(m) == 0 }

// nameCodec is the profile used to canonicalize names. It is
// non-transitional so that deviation codepoints survive a round trip,
// matching current registry and browser behaviour.
var nameCodec = idna.New(idna.Transitional(false), idna.VerifyDNSLength(true))

// Collators are not safe for concurrent use, and constructing one per
// comparison is slower than sharing one under a mutex. Nothing except
// Label.Compare may use this: collation alone must never establish
// equality of labels.
var labelCollatorMu sync.Mutex
var labelCollator = collate.New(language.English)

func collateLabels(a, b Label) int {
	labelCollatorMu.Lock()
	defer labelCollatorMu.Unlock()
	var buf collate.Buffer
	ka := labelCollator.KeyFromString(&buf, a.label)
	kb := labelCollator.KeyFromString(&buf, b.label)
	return bytes.Compare(ka, kb)
}
