package validate_test

import (
	"testing"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func BenchmarkIsCreditCard(b *testing.B) {
	for b.Loop() {
		validate.IsCreditCard("4111 1111 1111 1111")
	}
}

func BenchmarkCardTypeOf(b *testing.B) {
	for b.Loop() {
		validate.CardTypeOf("6759000000000000")
	}
}

func BenchmarkIsDate(b *testing.B) {
	for b.Loop() {
		validate.IsDate("02/29/2000")
	}
}

func BenchmarkIsEmail(b *testing.B) {
	for b.Loop() {
		validate.IsEmail("jane.doe@example.com")
	}
}

func BenchmarkIsValidUPC(b *testing.B) {
	for b.Loop() {
		_, _ = validate.IsValidUPC("036000291452")
	}
}
