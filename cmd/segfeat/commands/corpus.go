// SPDX-License-Identifier: MIT
// Package: segfeat/cmd/segfeat/commands
//
// corpus.go — the line-oriented corpus format.
//
// One sequence per line, tokens separated by white space. A token may carry
// its gold label as "token/LABEL", where LABEL is one of the model labels.
// Either every token of a line is labeled or none is. Blank lines and lines
// starting with '#' are skipped.

package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/segfeat/core"
)

// ErrMixedLabels indicates a line with both labeled and unlabeled tokens.
var ErrMixedLabels = errors.New("commands: line mixes labeled and unlabeled tokens")

const maxLine = 1 << 20

// ReadCorpus parses the corpus format against the label alphabet.
func ReadCorpus(r io.Reader, labels []string) ([]*core.LabeledSequence, error) {
	index := make(map[string]int, len(labels))
	for i, l := range labels {
		index[l] = i
	}

	var out []*core.LabeledSequence
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		tokens := make([]string, len(fields))
		ys := make([]int, 0, len(fields))
		for i, field := range fields {
			tokens[i] = field
			if cut := strings.LastIndexByte(field, '/'); cut > 0 {
				if y, ok := index[field[cut+1:]]; ok {
					tokens[i] = field[:cut]
					ys = append(ys, y)
				}
			}
		}
		switch len(ys) {
		case 0:
			out = append(out, core.NewSequence(tokens))
		case len(tokens):
			seq, err := core.FromLabels(tokens, ys)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			out = append(out, seq)
		default:
			return nil, fmt.Errorf("line %d: %d of %d tokens labeled: %w", line, len(ys), len(tokens), ErrMixedLabels)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// WriteCorpus writes seqs in the corpus format. Unsegmented sequences are
// written without labels.
func WriteCorpus(w io.Writer, seqs []*core.LabeledSequence, labels []string) error {
	bw := bufio.NewWriter(w)
	for _, seq := range seqs {
		for pos := 0; pos < seq.Len(); pos++ {
			if pos > 0 {
				bw.WriteByte(' ')
			}
			bw.WriteString(seq.Token(pos))
			if y := seq.Label(pos); y != core.NoLabel {
				bw.WriteByte('/')
				bw.WriteString(labels[y])
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
