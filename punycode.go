package punycode

import (
	"github.com/wippyai/punycode/errors"
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

	delimiter = '-'
)

// maxVarIntDigits bounds the digits of one uint32 variable-length integer.
// Every non-final digit divides the remainder by at least base-tMax.
const maxVarIntDigits = 16

// Progress reports how far a conversion got.
//
// Written is the number of output elements (bytes when encoding, code points
// when decoding) stored in the destination. Consumed is the number of input
// elements fully represented in that output: code points when encoding,
// bytes when decoding. Both are exact on success and on failure.
type Progress struct {
	Written  int
	Consumed int
}

// Sentinel errors for use with errors.Is. They match failures from either
// direction.
var (
	ErrOverflow       error = &errors.Error{Kind: errors.KindOverflow, Offset: errors.NoOffset}
	ErrBufferTooSmall error = &errors.Error{Kind: errors.KindBufferTooSmall, Offset: errors.NoOffset}
	ErrInvalidDigit   error = &errors.Error{Kind: errors.KindInvalidDigit, Offset: errors.NoOffset}
	ErrInvalidInput   error = &errors.Error{Kind: errors.KindInvalidInput, Offset: errors.NoOffset}
)
