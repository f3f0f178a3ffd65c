package validate_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/inputkit/pkg/validate"
)

func TestLuhnSum(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 70, validate.LuhnSum("79927398713"))
	assert.Equal(t, 70, validate.LuhnSum("7992-7398 713"), "non-digits are ignored")
	assert.Equal(t, 0, validate.LuhnSum(""))
	assert.True(t, validate.SumIsMod10(70))
	assert.False(t, validate.SumIsMod10(71))
}

func TestLuhnCheckDigit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 3, validate.LuhnCheckDigit("7992739871"))
	assert.Equal(t, "79927398713", validate.AppendCheckDigit("7992739871"))
	assert.Equal(t, 0, validate.LuhnCheckDigit(""))

	payloads := []string{"", "0", "1", "411111111111111", "37828224631000", "123456789", "2014000000000", "99999999999999999"}
	for _, p := range payloads {
		full := validate.AppendCheckDigit(p)
		assert.True(t, validate.IsCreditCard(full), "payload %q completed as %q", p, full)

		d := validate.LuhnCheckDigit(p)
		for wrong := range 10 {
			if wrong == d {
				continue
			}
			assert.False(t, validate.SumIsMod10(validate.LuhnSum(p+string(rune('0'+wrong)))),
				"payload %q with digit %d", p, wrong)
		}
	}
}

func TestIsCreditCard(t *testing.T) {
	t.Parallel()

	runPredicate(t, validate.IsCreditCard, []predicateCase{
		{"", true},
		{"4111111111111111", true},
		{"4111 1111 1111 1111", true},
		{"4111-1111-1111-1111", true},
		{"4111111111111112", false},
		{"1234567812345670", true},
		{strings.Repeat("0", 19), true},
		{strings.Repeat("0", 20), false},
		{"4111x111111111111", false},
		{" ", false},
	})

	t.Run("agrees with the Luhn sum for digit strings", func(t *testing.T) {
		digitStrings := []string{"0", "18", "79927398710", "79927398713", "4222222222222", "5500000000000004", "6011111111111117", "1234567890123456789"}
		for _, d := range digitStrings {
			assert.Equal(t, validate.SumIsMod10(validate.LuhnSum(d)), validate.IsCreditCard(d), d)
		}
	})
}
