package punycode_test

import (
	"testing"

	"github.com/wippyai/punycode"
)

// RFC 3492 sample (A), Arabic (Egyptian).
var benchUnicode = []rune("ليهمابتكل" +
	"موشعربي؟")

const benchLabel = "egbpdaj6bu4bxfgehfvwxn"

func BenchmarkEncode(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = punycode.Encode(benchUnicode)
	}
}

func BenchmarkEncodeInto(b *testing.B) {
	dst := make([]byte, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = punycode.EncodeInto(dst, benchUnicode)
	}
}

func BenchmarkDecode(b *testing.B) {
	label := []byte(benchLabel)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = punycode.Decode(label)
	}
}

func BenchmarkDecodeInto(b *testing.B) {
	label := []byte(benchLabel)
	dst := make([]rune, 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = punycode.DecodeInto(dst, label)
	}
}

func BenchmarkDecodeString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = punycode.DecodeString(benchLabel)
	}
}
