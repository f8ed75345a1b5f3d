package punycode

// adapt returns the bias for the next variable-length integer after delta
// was coded. numPoints is the number of code points handled so far, including
// the one just coded, and must be at least 1. first is set only for the first
// delta after the basic code points.
func adapt(delta, numPoints uint32, first bool) uint32 {
	if first {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints

	k := uint32(0)
	for delta > ((base-tMin)*tMax)/2 {
		delta /= base - tMin
		k += base
	}
	return k + (base-tMin+1)*delta/(delta+skew)
}
