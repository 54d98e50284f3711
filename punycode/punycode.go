// Package punycode implements the Bootstring encoding of Unicode
// codepoint sequences into the limited ASCII repertoire used by
// internationalized domain name labels, as specified in RFC 3492.
//
// The codec operates on one label at a time and is stateless between
// calls. It does not know about the "xn--" ACE prefix or about label
// separators; both belong to the IDNA layer above it.
//
// All internal arithmetic is capped at 2^31-1. The cap is part of the
// wire contract rather than an artifact of the host integer width:
// inputs that push the encoder or decoder state past the cap must be
// rejected, never silently widened, because a wider-integer
// implementation would accept (and mis-decode) strings that a
// conforming one rejects.
package punycode

import (
	"fmt"
	"strings"
)

// Bootstring parameters for Punycode, RFC 3492 section 5.
const (
	base        = 36
	tMin        = 1
	tMax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 128
	delimiter   = '-'

	maxInt = 1<<31 - 1
)

// OverflowError reports that encoding or decoding state exceeded the
// 2^31-1 arithmetic cap.
type OverflowError struct{}

func (OverflowError) Error() string { return "punycode: integer overflow" }

// NotBasicError reports a non-ASCII byte in the literal portion of an
// encoded label, before the last delimiter.
type NotBasicError struct {
	Byte byte
}

func (e NotBasicError) Error() string {
	return fmt.Sprintf("punycode: non-basic byte %#02x in literal portion", e.Byte)
}

// InvalidInputError reports an encoded label that is malformed: it
// contains a byte that is not a Punycode digit, or it ends in the
// middle of a variable-length integer.
type InvalidInputError struct{}

func (InvalidInputError) Error() string { return "punycode: invalid input" }

// adapt computes the new bias after a delta has been encoded or
// decoded, per RFC 3492 section 6.1.
func adapt(delta, numPoints int, firstTime bool) int {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := 0
	for delta > ((base-tMin)*tMax)/2 {
		delta /= base - tMin
		k += base
	}
	return k + ((base-tMin+1)*delta)/(delta+skew)
}

// digitToBasic returns the basic code point representing digit d,
// 0 <= d < base. Output is always lowercase.
func digitToBasic(d int) byte {
	if d < 26 {
		return 'a' + byte(d)
	}
	return '0' + byte(d-26)
}

// basicToDigit returns the digit value of basic code point c, or base
// if c is not a Punycode digit. Uppercase and lowercase letters carry
// the same value.
func basicToDigit(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c-'0') + 26
	case 'A' <= c && c <= 'Z':
		return int(c - 'A')
	case 'a' <= c && c <= 'z':
		return int(c - 'a')
	}
	return base
}

func clampT(k, bias int) int {
	t := k - bias
	if t < tMin {
		return tMin
	}
	if t > tMax {
		return tMax
	}
	return t
}

// Encode encodes a sequence of codepoints as a Punycode string. The
// basic (ASCII) codepoints of the input are copied literally, followed
// by a delimiter if there were any, followed by the encoded form of
// the remaining codepoints.
//
// Note that encoding a purely basic input still appends the delimiter:
// Encode([]rune("abc")) is "abc-". The IDNA layer avoids this by only
// encoding labels that contain at least one non-ASCII codepoint.
func Encode(input []rune) (string, error) {
	out := make([]byte, 0, len(input)+8)
	for _, r := range input {
		if r < initialN {
			out = append(out, byte(r))
		}
	}
	basicLength := len(out)
	if basicLength > 0 {
		out = append(out, delimiter)
	}

	n, delta, bias := initialN, 0, initialBias
	handled := basicLength
	for handled < len(input) {
		// Find the smallest codepoint not yet handled.
		m := maxInt
		for _, r := range input {
			if int(r) >= n && int(r) < m {
				m = int(r)
			}
		}
		if m == maxInt {
			return "", OverflowError{}
		}
		if m-n > (maxInt-delta)/(handled+1) {
			return "", OverflowError{}
		}
		delta += (m - n) * (handled + 1)
		n = m
		for _, r := range input {
			cp := int(r)
			if cp < n {
				delta++
				if delta > maxInt {
					return "", OverflowError{}
				}
			}
			if cp == n {
				q := delta
				for k := base; ; k += base {
					t := clampT(k, bias)
					if q < t {
						break
					}
					out = append(out, digitToBasic(t+(q-t)%(base-t)))
					q = (q - t) / (base - t)
				}
				out = append(out, digitToBasic(q))
				bias = adapt(delta, handled+1, handled == basicLength)
				delta = 0
				handled++
			}
		}
		delta++
		n++
	}
	return string(out), nil
}

// Decode decodes a Punycode string into a sequence of codepoints.
// Everything before the last delimiter is copied literally and must be
// ASCII; the remainder is interpreted as a sequence of variable-length
// integers that insert the non-basic codepoints. Uppercase digits are
// accepted and decode identically to their lowercase equivalents.
func Decode(s string) ([]rune, error) {
	basic := strings.LastIndexByte(s, delimiter)
	if basic < 0 {
		basic = 0
	}
	out := make([]rune, 0, len(s))
	for i := 0; i < basic; i++ {
		if s[i] >= initialN {
			return nil, NotBasicError{s[i]}
		}
		out = append(out, rune(s[i]))
	}

	pos := 0
	if basic > 0 {
		pos = basic + 1
	}
	i, n, bias := 0, initialN, initialBias
	for pos < len(s) {
		oldi, w := i, 1
		for k := base; ; k += base {
			if pos >= len(s) {
				return nil, InvalidInputError{}
			}
			digit := basicToDigit(s[pos])
			pos++
			if digit >= base {
				return nil, InvalidInputError{}
			}
			if digit > (maxInt-i)/w {
				return nil, OverflowError{}
			}
			i += digit * w
			t := clampT(k, bias)
			if digit < t {
				break
			}
			if w > maxInt/(base-t) {
				return nil, OverflowError{}
			}
			w *= base - t
		}
		// The new codepoint is inserted at position i mod the new
		// output length; the quotient advances n.
		out = append(out, 0)
		bias = adapt(i-oldi, len(out), oldi == 0)
		if i/len(out) > maxInt-n {
			return nil, OverflowError{}
		}
		n += i / len(out)
		i %= len(out)
		copy(out[i+1:], out[i:])
		out[i] = rune(n)
		i++
	}
	return out, nil
}
