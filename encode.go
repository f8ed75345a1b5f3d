package punycode

import (
	"math"
	"unicode/utf8"

	"github.com/wippyai/punycode/errors"
)

// Encode converts a sequence of code points to a Punycode label.
func Encode(src []rune) (string, error) {
	sink := byteSink{buf: make([]byte, 0, len(src)+len(src)/2+1), limit: unbounded}
	p, err := encode(&sink, src, nil)
	if err != nil {
		return "", logFailure(err, p)
	}
	return string(sink.buf), nil
}

// EncodeString converts a UTF-8 string to a Punycode label.
func EncodeString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", logFailure(errors.InvalidInput(errors.PhaseEncode, errors.NoOffset, "input is not valid UTF-8"), Progress{})
	}
	buf := getRunes()
	defer putRunes(buf)
	for _, r := range s {
		*buf = append(*buf, r)
	}
	return Encode(*buf)
}

// AppendEncode appends the Punycode label for src to dst and returns the
// extended slice. On error dst is returned unchanged.
func AppendEncode(dst []byte, src []rune) ([]byte, error) {
	sink := byteSink{buf: dst, limit: unbounded}
	p, err := encode(&sink, src, nil)
	if err != nil {
		return dst, logFailure(err, p)
	}
	return sink.buf, nil
}

// EncodeInto writes the Punycode label for src into dst without writing at or
// beyond len(dst). The label occupies dst[:p.Written]. If dst is too short the
// error matches ErrBufferTooSmall and p reports the partial progress; a
// variable-length integer is never split across that boundary.
func EncodeInto(dst []byte, src []rune) (Progress, error) {
	sink := boundedBytes(dst)
	p, err := encode(&sink, src, nil)
	return p, logFailure(err, p)
}

// encode runs the encoder state machine into sink. trace, when set, is
// called with every code point value selected by the minimum scan.
func encode(sink *byteSink, src []rune, trace func(rune)) (Progress, error) {
	start := len(sink.buf)
	var p Progress
	done := func(err error) (Progress, error) {
		p.Written = len(sink.buf) - start
		return p, err
	}

	if uint64(len(src)) > math.MaxUint32 {
		return done(errors.Overflow(errors.PhaseEncode, errors.NoOffset, "input length"))
	}
	for i, c := range src {
		if c < 0 {
			return done(errors.New(errors.PhaseEncode, errors.KindInvalidInput).
				Offset(i).
				Value(c).
				Detail("negative code point %d", c).
				Build())
		}
	}

	capacity := sink.limit
	for i, c := range src {
		if c < initialN {
			if !sink.writeByte(byte(c)) {
				return done(errors.BufferTooSmall(errors.PhaseEncode, capacity, i))
			}
			p.Consumed++
		}
	}

	basic := uint32(p.Consumed)
	if basic > 0 && !sink.writeByte(delimiter) {
		return done(errors.BufferTooSmall(errors.PhaseEncode, capacity, errors.NoOffset))
	}

	n := uint32(initialN)
	bias := uint32(initialBias)
	delta := uint32(0)
	h := basic
	total := uint32(len(src))
	var scratch [maxVarIntDigits]byte

	for h < total {
		// h < total guarantees an unhandled code point >= n.
		m := uint32(math.MaxUint32)
		for _, c := range src {
			if cp := uint32(c); cp >= n && cp < m {
				m = cp
			}
		}
		if trace != nil {
			trace(rune(m))
		}

		if m-n > (math.MaxUint32-delta)/(h+1) {
			return done(errors.Overflow(errors.PhaseEncode, errors.NoOffset, "delta"))
		}
		delta += (m - n) * (h + 1)
		n = m

		for i, c := range src {
			cp := uint32(c)
			switch {
			case cp < n:
				delta++
				if delta == 0 {
					return done(errors.Overflow(errors.PhaseEncode, i, "delta"))
				}
			case cp == n:
				if !sink.write(appendVarInt(scratch[:0], bias, delta)) {
					return done(errors.BufferTooSmall(errors.PhaseEncode, capacity, i))
				}
				p.Consumed++
				bias = adapt(delta, h+1, h == basic)
				delta = 0
				h++
			}
		}
		delta++
		n++
	}

	return done(nil)
}
