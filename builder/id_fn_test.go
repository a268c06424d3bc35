package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/segfeat/builder"
)

// TestTokenFns verifies each scheme's outputs and panics.
func TestTokenFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.TokenFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"Decimal_zero", builder.DecimalTokenFn, 0, "0", false},
		{"Decimal_multi", builder.DecimalTokenFn, 123, "123", false},

		{"Letter_zero", builder.LetterTokenFn, 0, "A", false},
		{"Letter_endSingle", builder.LetterTokenFn, 25, "Z", false},
		{"Letter_startDouble", builder.LetterTokenFn, 26, "AA", false},
		{"Letter_ZZ", builder.LetterTokenFn, 701, "ZZ", false},
		{"Letter_AAA", builder.LetterTokenFn, 702, "AAA", false},
		{"Letter_neg", builder.LetterTokenFn, -1, "", true},

		{"Prefix_zero", builder.PrefixTokenFn("w"), 0, "w0", false},
		{"Prefix_multi", builder.PrefixTokenFn("tok"), 17, "tok17", false},
		{"Prefix_neg", builder.PrefixTokenFn("w"), -3, "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}
