package punycode

import (
	"math"

	"github.com/wippyai/punycode/errors"
)

// Generalized variable-length integers, RFC 3492 section 3.3.
// Digits are little-endian base-36 with a threshold schedule driven by bias.

// threshold returns t for the digit of weight position k.
func threshold(k, bias uint32) uint32 {
	switch {
	case k <= bias:
		return tMin
	case k >= bias+tMax:
		return tMax
	}
	return k - bias
}

// encodeDigit maps 0..25 to 'a'..'z' and 26..35 to '0'..'9'.
func encodeDigit(d uint32) byte {
	if d < 26 {
		return byte(d) + 'a'
	}
	return byte(d-26) + '0'
}

// digitValue maps [0-9A-Za-z] to its base-36 value. Upper and lower case
// letters are equivalent.
func digitValue(c byte) (uint32, bool) {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c-'0') + 26, true
	case c >= 'A' && c <= 'Z':
		return uint32(c - 'A'), true
	case c >= 'a' && c <= 'z':
		return uint32(c - 'a'), true
	}
	return 0, false
}

// appendVarInt appends the digits of q to dst.
func appendVarInt(dst []byte, bias, q uint32) []byte {
	for k := uint32(base); ; k += base {
		t := threshold(k, bias)
		if q < t {
			break
		}
		dst = append(dst, encodeDigit(t+(q-t)%(base-t)))
		q = (q - t) / (base - t)
	}
	return append(dst, encodeDigit(q))
}

// decodeVarInt reads one variable-length integer from the start of digits and
// returns its value and the number of bytes it occupied. Error offsets are
// relative to digits.
func decodeVarInt(bias uint32, digits []byte) (uint32, int, error) {
	var value uint32
	w := uint32(1)
	n := 0
	for k := uint32(base); ; k += base {
		if n >= len(digits) {
			return 0, n, errors.InvalidInput(errors.PhaseDecode, n, "truncated variable-length integer")
		}
		c := digits[n]
		d, ok := digitValue(c)
		if !ok {
			return 0, n, errors.InvalidDigit(n, c)
		}
		if d > (math.MaxUint32-value)/w {
			return 0, n, errors.Overflow(errors.PhaseDecode, n, "variable-length integer")
		}
		value += d * w
		n++

		t := threshold(k, bias)
		if d < t {
			return value, n, nil
		}
		if w > math.MaxUint32/(base-t) {
			return 0, n - 1, errors.Overflow(errors.PhaseDecode, n-1, "digit weight")
		}
		w *= base - t
	}
}
