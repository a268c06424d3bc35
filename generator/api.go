// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// api.go — the iteration protocol shared by every boundary generator, and
// iterator adapters that yield owned copies.
//
// Protocol (strict):
//   • Start* reports whether at least one feature is available.
//   • HasNext/Next drain the scan; Next overwrites the caller's record.
//   • A generator holds one scan at a time; starting a new one abandons the old.
//   • Generators are not safe for concurrent use.

package generator

import (
	"iter"

	"github.com/katalvlaran/segfeat/core"
)

// Scanner is the part of the protocol common to every generator.
//
// StartSegment is the direct segment mode: it bypasses boundary enumeration
// and fires the features of the known segment [prevPos+1, pos], each with
// that exact, closed boundary.
type Scanner interface {
	HasNext() bool
	Next(f *core.Feature)
	MaxBoundaryGap() int
	StartSegment(seq core.Sequence, prevPos, pos int) bool
	RequiresTraining() bool
	Train(seq core.Sequence, pos int) error
}

// PositionGenerator enumerates the boundary features of one scan position.
type PositionGenerator interface {
	Scanner
	StartAt(seq core.Sequence, pos int) bool
}

// SequenceGenerator enumerates the boundary features of a whole sequence.
type SequenceGenerator interface {
	Scanner
	StartScan(seq core.Sequence) bool
}

// All scans seq with g and yields a copy of every feature.
func All(g SequenceGenerator, seq core.Sequence) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		g.StartScan(seq)
		drain(g, yield)
	}
}

// AllAt scans position pos with g and yields a copy of every feature.
func AllAt(g PositionGenerator, seq core.Sequence, pos int) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		g.StartAt(seq, pos)
		drain(g, yield)
	}
}

// Segment runs g in direct segment mode over [prevPos+1, pos].
func Segment(g Scanner, seq core.Sequence, prevPos, pos int) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		g.StartSegment(seq, prevPos, pos)
		drain(g, yield)
	}
}

func drain(g Scanner, yield func(core.Feature) bool) {
	var f core.Feature
	for g.HasNext() {
		f.Reset()
		g.Next(&f)
		if !yield(f) {
			return
		}
	}
}

// Collect returns every feature of seq as a slice; for tests and small inputs.
func Collect(g SequenceGenerator, seq core.Sequence) []core.Feature {
	var out []core.Feature
	for f := range All(g, seq) {
		out = append(out, f)
	}

	return out
}
