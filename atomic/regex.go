// SPDX-License-Identifier: MIT
// Package: segfeat/atomic
//
// regex.go — character-pattern features over the tokens of a segment.

package atomic

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/katalvlaran/segfeat/core"
)

// ErrBadPattern indicates an empty name or an expression that does not compile.
var ErrBadPattern = errors.New("atomic: invalid pattern")

// Pattern is a named regular expression matched against whole tokens.
type Pattern struct {
	Name string `yaml:"name"`
	Expr string `yaml:"expr"`
}

// DefaultPatterns is the built-in token shape table.
var DefaultPatterns = []Pattern{
	{"singleCapLetterWithDot", `[A-Z]\.`},
	{"singleCapLetter", `[A-Z]`},
	{"isInitCapital", `[A-Z][a-z]+`},
	{"isAllCapital", `[A-Z]+`},
	{"isAllSmallCase", `[a-z]+`},
	{"singleDot", `[.]`},
	{"singleComma", `[,]`},
	{"isSpecialCharacter", `[#;:\-/<>'"()&]`},
	{"singleDigit", `\s*\d\s*`},
	{"twoDigits", `\s*\d{2}\s*`},
	{"threeDigits", `\s*\d{3}\s*`},
	{"fourDigits", `\s*\(*\d{4}\)*\s*`},
	{"isDigits", `\d+`},
	{"containsDigit", `.*\d+.*`},
	{"isNumberRange", `\d+\s*([-]{1,2}\s*\d+)?`},
	{"endsWithDot", `[[:alnum:]]+\.`},
	{"endsWithComma", `\w+[,]`},
	{"endsWithPunctuation", `\w+[;:,.?!]`},
	{"singlePunctuation", `[[:punct:]]`},
	{"singleAmp", `[&]`},
	{"isDashSeparatedWords", `(\w[-])+\w`},
	{"isDashSeparatedSeq", `(([[:alpha:]]+|[[:digit:]]+)[-])+([[:alpha:]]+|[[:digit:]]+)`},
	{"isURL", `[[:alpha:]]+://(\w+\.)\w+(:(\d{2}|\d{4}))?(/\w+)*(/|(/\w+\.\w+))?`},
	{"isEmailId", `\w+@(\w+\.)+\w+`},
	{"containsDashes", `.*--.*`},
	{"containsSpecialCharacters", `.*[#;:\-/<>'"()&].*`},
}

// Regex fires, for every pattern in table order, when the pattern matches
// every token of the scanned segment. Features are label independent.
type Regex struct {
	untrained
	names []string
	res   []*regexp.Regexp

	hits []int
	next int
}

// NewRegex compiles patterns; with none it uses DefaultPatterns.
func NewRegex(patterns ...Pattern) (*Regex, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}
	r := &Regex{
		names: make([]string, len(patterns)),
		res:   make([]*regexp.Regexp, len(patterns)),
		hits:  make([]int, 0, len(patterns)),
	}
	for i, p := range patterns {
		if p.Name == "" {
			return nil, fmt.Errorf("NewRegex: pattern %d has no name: %w", i, ErrBadPattern)
		}
		re, err := regexp.Compile(`^(?:` + p.Expr + `)$`)
		if err != nil {
			return nil, fmt.Errorf("NewRegex: %s: %w: %v", p.Name, ErrBadPattern, err)
		}
		r.names[i], r.res[i] = p.Name, re
	}

	return r, nil
}

// Len returns the number of patterns.
func (r *Regex) Len() int { return len(r.res) }

// Start implements Source.
func (r *Regex) Start(seq core.Sequence, prevPos, pos int) bool {
	r.hits, r.next = r.hits[:0], 0
	first := max(prevPos+1, 0)
	if pos >= seq.Len() || first > pos {
		return false
	}
	for i, re := range r.res {
		ok := true
		for p := first; p <= pos && ok; p++ {
			ok = re.MatchString(seq.Token(p))
		}
		if ok {
			r.hits = append(r.hits, i)
		}
	}

	return r.HasNext()
}

// HasNext implements Source.
func (r *Regex) HasNext() bool { return r.next < len(r.hits) }

// Next implements Source. The ID is the pattern index.
func (r *Regex) Next(f *core.Feature) {
	i := r.hits[r.next]
	r.next++
	f.ID, f.Name, f.Label, f.PrevLabel = i, r.names[i], core.NoLabel, core.NoLabel
}
