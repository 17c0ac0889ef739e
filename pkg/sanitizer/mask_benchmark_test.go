package sanitizer_test

import (
	"testing"

	"github.com/dmitrymomot/superutils/pkg/sanitizer"
)

func BenchmarkMaskPhoneNumber(b *testing.B) {
	inputs := []string{
		"13693538454",
		"+86 13693538454",
		"123",
	}
	for _, in := range inputs {
		b.Run(in, func(b *testing.B) {
			b.ResetTimer()
			for b.Loop() {
				_ = sanitizer.MaskPhoneNumber(in)
			}
		})
	}
}

func BenchmarkMaskUsername(b *testing.B) {
	for b.Loop() {
		_ = sanitizer.MaskUsername("张三丰")
	}
}

func BenchmarkLeadingDigits(b *testing.B) {
	for b.Loop() {
		_ = sanitizer.LeadingDigits("111aaa2b3c4d")
	}
}
