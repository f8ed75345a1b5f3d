// Package punycode implements the Punycode transfer encoding of RFC 3492.
//
// Punycode maps a sequence of Unicode code points to a label made only of
// the characters [0-9A-Za-z-] and back again. IDNA uses it to carry
// internationalized domain-name labels in DNS; this package converts a single,
// already-segmented label and performs no normalization, case folding or
// length validation.
//
// # Architecture Overview
//
//	punycode/            Encoder, decoder, bias adapter and digit codec
//	├── errors/          Structured error types (phase, kind, offset)
//	├── domain/          Whole-domain ToASCII/ToUnicode with the "xn--" prefix
//	└── cmd/punycode/    Command-line tool, interactive converter, HTTP service
//
// # Encoding
//
//	label, err := punycode.EncodeString("bücher")
//	// label == "bcher-kva"
//
// Every non-empty run of basic (ASCII) code points is followed by the
// delimiter, so an all-ASCII input also gains a trailing '-':
//
//	label, _ := punycode.EncodeString("Bach") // "Bach-"
//
// # Decoding
//
//	s, err := punycode.DecodeString("bcher-kva")
//	// s == "bücher"
//
// # Fixed-Capacity Buffers
//
// EncodeInto and DecodeInto write into a caller-owned slice and never touch
// an element at or beyond len(dst). When the slice is too short they return
// an error matching ErrBufferTooSmall together with a Progress value that
// reports exactly how much output was written and how much input was
// consumed:
//
//	buf := make([]byte, 4)
//	p, err := punycode.EncodeInto(buf, []rune("bücher"))
//	// errors.Is(err, punycode.ErrBufferTooSmall), p.Written == 4, p.Consumed == 4
//
// # Errors
//
// All failures are *errors.Error values from the errors subpackage. Match
// them with the sentinels ErrOverflow, ErrBufferTooSmall, ErrInvalidDigit and
// ErrInvalidInput:
//
//	if errors.Is(err, punycode.ErrInvalidDigit) { ... }
//
// # Thread Safety
//
// All functions are safe for concurrent use. They keep no state between
// calls apart from a pool of scratch buffers.
package punycode
