// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// eachlabel.go — per-label replication.

package generator

import (
	"fmt"

	"github.com/katalvlaran/segfeat/core"
)

// EachLabel repeats every feature of a position generator once per label,
// setting Label to 0..numLabels-1. Boundaries pass through unchanged.
type EachLabel struct {
	g         PositionGenerator
	numLabels int

	cur core.Feature
	y   int
}

// NewEachLabel wraps g.
func NewEachLabel(g PositionGenerator, numLabels int) (*EachLabel, error) {
	if g == nil {
		return nil, fmt.Errorf("NewEachLabel: %w", ErrNilSource)
	}
	if numLabels < 1 {
		return nil, fmt.Errorf("NewEachLabel(%d): %w", numLabels, ErrNoLabels)
	}

	return &EachLabel{g: g, numLabels: numLabels, y: numLabels}, nil
}

// StartAt implements PositionGenerator.
func (e *EachLabel) StartAt(seq core.Sequence, pos int) bool {
	e.g.StartAt(seq, pos)

	return e.pull()
}

// StartSegment implements Scanner.
func (e *EachLabel) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	e.g.StartSegment(seq, prevPos, pos)

	return e.pull()
}

// pull takes the next inner feature, or marks the scan exhausted.
func (e *EachLabel) pull() bool {
	e.y = e.numLabels
	if e.g.HasNext() {
		e.cur.Reset()
		e.g.Next(&e.cur)
		e.y = 0
	}

	return e.HasNext()
}

// HasNext implements Scanner.
func (e *EachLabel) HasNext() bool { return e.y < e.numLabels }

// Next implements Scanner.
func (e *EachLabel) Next(f *core.Feature) {
	*f = e.cur
	f.Label = e.y
	e.y++
	if e.y == e.numLabels {
		e.pull()
	}
}

// MaxBoundaryGap implements Scanner.
func (e *EachLabel) MaxBoundaryGap() int { return e.g.MaxBoundaryGap() }

// RequiresTraining implements Scanner.
func (e *EachLabel) RequiresTraining() bool { return e.g.RequiresTraining() }

// Train implements Scanner.
func (e *EachLabel) Train(seq core.Sequence, pos int) error { return e.g.Train(seq, pos) }
