// SPDX-License-Identifier: MIT
// Package: segfeat/atomic
//
// source.go — the Source protocol and the label-scoped families
// (start, end, class prior, edge).

package atomic

import (
	"errors"

	"github.com/katalvlaran/segfeat/core"
)

// ErrNoLabels indicates a label-scoped source built for fewer than one label.
var ErrNoLabels = errors.New("atomic: numLabels must be ≥ 1")

// Source is a position-scoped generator of raw feature identifiers. It knows
// nothing about boundaries: Next fills ID, Name, Label and PrevLabel only.
//
// Start scans the segment (prevPos, pos] and reports whether any feature is
// available; HasNext/Next then drain it.
type Source interface {
	Start(seq core.Sequence, prevPos, pos int) bool
	HasNext() bool
	Next(f *core.Feature)
	RequiresTraining() bool
	Train(seq core.Sequence, pos int) error
}

// StartAt scans the single position pos.
func StartAt(src Source, seq core.Sequence, pos int) bool {
	return src.Start(seq, pos-1, pos)
}

// untrained is embedded by sources with no training pass.
type untrained struct{}

func (untrained) RequiresTraining() bool         { return false }
func (untrained) Train(core.Sequence, int) error { return nil }

// labels walks 0..n-1 once per Start.
type labels struct {
	n    int
	next int
}

func newLabels(n int) (labels, error) {
	if n < 1 {
		return labels{}, ErrNoLabels
	}

	return labels{n: n, next: n}, nil
}

func (l *labels) reset(fire bool) bool {
	l.next = l.n
	if fire {
		l.next = 0
	}

	return l.next < l.n
}

func (l *labels) HasNext() bool { return l.next < l.n }

func (l *labels) take() int {
	y := l.next
	l.next++

	return y
}

// Start fires one feature per label for segments beginning at position 0.
type Start struct {
	untrained
	labels
}

// NewStart returns a start-of-sequence source.
func NewStart(numLabels int) (*Start, error) {
	l, err := newLabels(numLabels)
	if err != nil {
		return nil, err
	}

	return &Start{labels: l}, nil
}

// Start implements Source.
func (s *Start) Start(seq core.Sequence, prevPos, pos int) bool {
	return s.reset(prevPos < 0 && pos >= 0 && pos < seq.Len())
}

// Next implements Source.
func (s *Start) Next(f *core.Feature) {
	y := s.take()
	f.ID, f.Name, f.Label, f.PrevLabel = y, "start", y, core.NoLabel
}

// End fires one feature per label for segments ending at the last position.
type End struct {
	untrained
	labels
}

// NewEnd returns an end-of-sequence source.
func NewEnd(numLabels int) (*End, error) {
	l, err := newLabels(numLabels)
	if err != nil {
		return nil, err
	}

	return &End{labels: l}, nil
}

// Start implements Source.
func (e *End) Start(seq core.Sequence, prevPos, pos int) bool {
	return e.reset(pos >= 0 && pos == seq.Len()-1)
}

// Next implements Source.
func (e *End) Next(f *core.Feature) {
	y := e.take()
	f.ID, f.Name, f.Label, f.PrevLabel = y, "end", y, core.NoLabel
}

// ClassPrior fires one feature per label for every segment.
type ClassPrior struct {
	untrained
	labels
}

// NewClassPrior returns a label-prior source.
func NewClassPrior(numLabels int) (*ClassPrior, error) {
	l, err := newLabels(numLabels)
	if err != nil {
		return nil, err
	}

	return &ClassPrior{labels: l}, nil
}

// Start implements Source.
func (c *ClassPrior) Start(seq core.Sequence, prevPos, pos int) bool {
	return c.reset(pos >= 0 && pos < seq.Len())
}

// Next implements Source.
func (c *ClassPrior) Next(f *core.Feature) {
	y := c.take()
	f.ID, f.Name, f.Label, f.PrevLabel = y, "prior", y, core.NoLabel
}

// Edge fires one feature per (previous label, label) pair for every segment
// that has a predecessor.
type Edge struct {
	untrained
	numLabels int
	next      int
	limit     int
}

// NewEdge returns a label-transition source.
func NewEdge(numLabels int) (*Edge, error) {
	if numLabels < 1 {
		return nil, ErrNoLabels
	}

	return &Edge{numLabels: numLabels}, nil
}

// Start implements Source.
func (e *Edge) Start(seq core.Sequence, prevPos, pos int) bool {
	e.next, e.limit = 0, 0
	if prevPos >= 0 && prevPos < pos && pos < seq.Len() {
		e.limit = e.numLabels * e.numLabels
	}

	return e.HasNext()
}

// HasNext implements Source.
func (e *Edge) HasNext() bool { return e.next < e.limit }

// Next implements Source. The ID is prev*numLabels+label.
func (e *Edge) Next(f *core.Feature) {
	id := e.next
	e.next++
	f.ID, f.Name = id, "edge"
	f.PrevLabel, f.Label = id/e.numLabels, id%e.numLabels
}
