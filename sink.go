package punycode

// Output sinks. A sink with limit < 0 grows without bound; otherwise it never
// holds more than limit elements. Bounded sinks start as dst[:0] over the
// caller's slice, so appends stay inside the caller's backing array.

const unbounded = -1

type byteSink struct {
	buf   []byte
	limit int
}

func boundedBytes(dst []byte) byteSink {
	return byteSink{buf: dst[:0], limit: len(dst)}
}

// writeByte appends c, or reports false when the sink is full.
func (s *byteSink) writeByte(c byte) bool {
	if s.limit >= 0 && len(s.buf) >= s.limit {
		return false
	}
	s.buf = append(s.buf, c)
	return true
}

// write appends all of p or nothing.
func (s *byteSink) write(p []byte) bool {
	if s.limit >= 0 && len(s.buf)+len(p) > s.limit {
		return false
	}
	s.buf = append(s.buf, p...)
	return true
}

type runeSink struct {
	buf   []rune
	limit int
}

func boundedRunes(dst []rune) runeSink {
	return runeSink{buf: dst[:0], limit: len(dst)}
}

// insert places r at index i, shifting the tail right, or reports false when
// the sink is full. i must be within [0, len(buf)].
func (s *runeSink) insert(i int, r rune) bool {
	if s.limit >= 0 && len(s.buf) >= s.limit {
		return false
	}
	s.buf = append(s.buf, 0)
	copy(s.buf[i+1:], s.buf[i:])
	s.buf[i] = r
	return true
}
