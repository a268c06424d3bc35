// SPDX-License-Identifier: MIT
// Package: segfeat/atomic
//
// word.go — token dictionary and the word-identity source.
//
// Policy:
//   • A Dictionary is mutable only while training; Freeze makes it read-only
//     and safe to share between worker registries.
//   • Word fires the token at pos, once per label it was seen with more than
//     cutoff times. Unknown and rare tokens fire nothing.

package atomic

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/segfeat/core"
)

// ErrFrozen indicates a training call on a frozen Dictionary.
var ErrFrozen = errors.New("atomic: dictionary is frozen")

// Dictionary assigns dense ids to tokens and counts (token, label) pairs.
type Dictionary struct {
	numLabels int
	ids       map[string]int
	words     []string
	counts    [][]int // word id -> label -> count
	frozen    bool
}

// NewDictionary returns an empty dictionary for numLabels labels.
func NewDictionary(numLabels int) (*Dictionary, error) {
	if numLabels < 1 {
		return nil, ErrNoLabels
	}

	return &Dictionary{numLabels: numLabels, ids: make(map[string]int)}, nil
}

// Add counts one occurrence of token with label. Labels outside
// [0, numLabels) are ignored.
func (d *Dictionary) Add(token string, label int) error {
	if d.frozen {
		return fmt.Errorf("Add(%q): %w", token, ErrFrozen)
	}
	if label < 0 || label >= d.numLabels {
		return nil
	}
	id, ok := d.ids[token]
	if !ok {
		id = len(d.words)
		d.ids[token] = id
		d.words = append(d.words, token)
		d.counts = append(d.counts, make([]int, d.numLabels))
	}
	d.counts[id][label]++

	return nil
}

// Train adds every labeled position of seq.
func (d *Dictionary) Train(seq core.Sequence) error {
	for pos := 0; pos < seq.Len(); pos++ {
		if err := d.Add(seq.Token(pos), seq.Label(pos)); err != nil {
			return err
		}
	}

	return nil
}

// Freeze makes the dictionary read-only.
func (d *Dictionary) Freeze() { d.frozen = true }

// Frozen reports whether Freeze was called.
func (d *Dictionary) Frozen() bool { return d.frozen }

// Len returns the number of distinct tokens.
func (d *Dictionary) Len() int { return len(d.words) }

// NumLabels returns the label alphabet size.
func (d *Dictionary) NumLabels() int { return d.numLabels }

// ID returns the token id, or -1 when unknown.
func (d *Dictionary) ID(token string) int {
	id, ok := d.ids[token]
	if !ok {
		return -1
	}

	return id
}

// Word returns the token with the given id.
func (d *Dictionary) Word(id int) string { return d.words[id] }

// Count returns how often token was seen with label.
func (d *Dictionary) Count(token string, label int) int {
	id := d.ID(token)
	if id < 0 || label < 0 || label >= d.numLabels {
		return 0
	}

	return d.counts[id][label]
}

// Total returns how often token was seen with any label.
func (d *Dictionary) Total(token string) int {
	id := d.ID(token)
	if id < 0 {
		return 0
	}
	total := 0
	for _, c := range d.counts[id] {
		total += c
	}

	return total
}

// Words returns the known tokens in lexical order.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	sort.Strings(out)

	return out
}

// Word fires the identity of the token at the end of the scanned segment.
type Word struct {
	dict   *Dictionary
	cutoff int

	id    int
	token string
	next  int
}

// NewWord returns a word source over dict. Tokens fire for a label only when
// seen with it more than cutoff times.
func NewWord(dict *Dictionary, cutoff int) *Word {
	if dict == nil {
		panic("atomic: NewWord(nil dictionary)")
	}

	return &Word{dict: dict, cutoff: cutoff, id: -1}
}

// Start implements Source.
func (w *Word) Start(seq core.Sequence, prevPos, pos int) bool {
	w.id, w.next = -1, 0
	if pos < 0 || pos >= seq.Len() {
		return false
	}
	w.token = seq.Token(pos)
	w.id = w.dict.ID(w.token)
	w.skip()

	return w.HasNext()
}

// skip moves next to the first label at or after it that passes the cutoff.
func (w *Word) skip() {
	if w.id < 0 {
		return
	}
	counts := w.dict.counts[w.id]
	for w.next < len(counts) && counts[w.next] <= w.cutoff {
		w.next++
	}
}

// HasNext implements Source.
func (w *Word) HasNext() bool {
	return w.id >= 0 && w.next < w.dict.numLabels
}

// Next implements Source. The ID is the dictionary id of the token.
func (w *Word) Next(f *core.Feature) {
	f.ID, f.Name, f.Label, f.PrevLabel = w.id, w.token, w.next, core.NoLabel
	w.next++
	w.skip()
}

// RequiresTraining reports true until the dictionary is frozen.
func (w *Word) RequiresTraining() bool { return !w.dict.frozen }

// Train counts the token at pos.
func (w *Word) Train(seq core.Sequence, pos int) error {
	return w.dict.Add(seq.Token(pos), seq.Label(pos))
}
