// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// id_fn.go — token schemes for synthetic sequences.
//
// A TokenFn names the idx-th vocabulary entry when no explicit vocabulary is
// configured. It must be pure: the same idx always gives the same token.

package builder

import (
	"fmt"
	"strconv"
)

// TokenFn generates a token from its zero-based vocabulary index.
type TokenFn func(idx int) string

// DecimalTokenFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
func DecimalTokenFn(idx int) string {
	return strconv.Itoa(idx)
}

// LetterTokenFn returns the spreadsheet-column name of idx: 0→"A", 25→"Z",
// 26→"AA". Capitalised tokens exercise the shape patterns. Panics if idx < 0.
func LetterTokenFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("LetterTokenFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// PrefixTokenFn returns prefix + decimal index, e.g. "w0", "w1".
func PrefixTokenFn(prefix string) TokenFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixTokenFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithDecimalTokens sets the token scheme to DecimalTokenFn.
func WithDecimalTokens() BuilderOption {
	return WithTokenScheme(DecimalTokenFn)
}

// WithLetterTokens sets the token scheme to LetterTokenFn.
func WithLetterTokens() BuilderOption {
	return WithTokenScheme(LetterTokenFn)
}

// WithPrefixTokens sets the token scheme to PrefixTokenFn(prefix).
func WithPrefixTokens(prefix string) BuilderOption {
	return WithTokenScheme(PrefixTokenFn(prefix))
}
