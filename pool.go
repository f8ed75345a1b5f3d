package punycode

import "sync"

const (
	// Scratch buffers above poolMaxCap runes come from unusually long
	// labels and are left for the GC instead of being pooled.
	poolMaxCap  = 1024
	poolInitCap = 64
)

// runePool holds the []rune scratch that EncodeString and DecodeString
// convert through before producing their string result.
var runePool = sync.Pool{
	New: func() any {
		buf := make([]rune, 0, poolInitCap)
		return &buf
	},
}

func getRunes() *[]rune {
	return runePool.Get().(*[]rune)
}

// putRunes truncates buf and returns it to the pool unless it grew past
// poolMaxCap.
func putRunes(buf *[]rune) {
	if buf == nil || cap(*buf) > poolMaxCap {
		return
	}
	*buf = (*buf)[:0]
	runePool.Put(buf)
}
