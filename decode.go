package punycode

import (
	"bytes"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/punycode/errors"
)

// Decode converts a Punycode label to the code points it represents.
// Digits are accepted in either case.
func Decode(label []byte) ([]rune, error) {
	sink := runeSink{buf: make([]rune, 0, len(label)), limit: unbounded}
	p, err := decode(&sink, label)
	if err != nil {
		return nil, logFailure(err, p)
	}
	return sink.buf, nil
}

// DecodeString converts a Punycode label to a UTF-8 string. It fails with
// ErrInvalidInput when a decoded code point has no UTF-8 encoding (a
// surrogate or a value above U+10FFFF); use Decode to obtain such values.
func DecodeString(s string) (string, error) {
	buf := getRunes()
	defer putRunes(buf)

	sink := runeSink{buf: *buf, limit: unbounded}
	p, err := decode(&sink, []byte(s))
	*buf = sink.buf
	if err != nil {
		return "", logFailure(err, p)
	}

	var b strings.Builder
	b.Grow(len(sink.buf))
	for i, r := range sink.buf {
		if !utf8.ValidRune(r) {
			err := errors.New(errors.PhaseDecode, errors.KindInvalidInput).
				Value(r).
				Detail("code point %#x at position %d has no UTF-8 encoding", r, i).
				Build()
			return "", logFailure(err, p)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// DecodeInto writes the code points of label into dst without writing at or
// beyond len(dst). The result occupies dst[:p.Written]. If dst is too short
// the error matches ErrBufferTooSmall and p.Consumed counts the label bytes
// whose code points were stored.
func DecodeInto(dst []rune, label []byte) (Progress, error) {
	sink := boundedRunes(dst)
	p, err := decode(&sink, label)
	return p, logFailure(err, p)
}

// decode runs the decoder state machine into an empty sink.
func decode(sink *runeSink, label []byte) (Progress, error) {
	var p Progress
	done := func(err error) (Progress, error) {
		p.Written = len(sink.buf)
		return p, err
	}
	capacity := sink.limit

	pos := 0
	b := bytes.LastIndexByte(label, delimiter)
	if b == 0 {
		return done(errors.InvalidInput(errors.PhaseDecode, 0, "delimiter without basic code points"))
	}
	if b > 0 {
		for j, c := range label[:b] {
			if c >= initialN {
				return done(errors.New(errors.PhaseDecode, errors.KindInvalidInput).
					Offset(j).
					Value(c).
					Detail("non-basic byte %#x before delimiter", c).
					Build())
			}
			if !sink.insert(len(sink.buf), rune(c)) {
				return done(errors.BufferTooSmall(errors.PhaseDecode, capacity, j))
			}
			p.Consumed++
		}
		pos = b + 1
		p.Consumed = pos
	}

	if uint64(len(label)) > math.MaxUint32 {
		return done(errors.Overflow(errors.PhaseDecode, errors.NoOffset, "input length"))
	}

	n := uint32(initialN)
	bias := uint32(initialBias)
	i := uint32(0)
	first := true

	for pos < len(label) {
		delta, used, err := decodeVarInt(bias, label[pos:])
		if err != nil {
			if e, ok := err.(*errors.Error); ok {
				e.Offset += pos
			}
			return done(err)
		}

		if delta > math.MaxUint32-i {
			return done(errors.Overflow(errors.PhaseDecode, pos, "insertion state"))
		}
		i += delta

		out := uint32(len(sink.buf)) + 1
		bias = adapt(delta, out, first)
		first = false

		if i/out > math.MaxUint32-n {
			return done(errors.Overflow(errors.PhaseDecode, pos, "code point"))
		}
		n += i / out
		if n > math.MaxInt32 {
			return done(errors.New(errors.PhaseDecode, errors.KindOverflow).
				Offset(pos).
				Value(n).
				Detail("code point %#x exceeds the rune range (max %#x)", n, math.MaxInt32).
				Build())
		}
		i %= out

		if !sink.insert(int(i), rune(n)) {
			return done(errors.BufferTooSmall(errors.PhaseDecode, capacity, pos))
		}
		pos += used
		p.Consumed = pos
		i++
	}

	return done(nil)
}
