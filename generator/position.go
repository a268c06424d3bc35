// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// position.go — the per-position driver and single-position wrappers.

package generator

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
)

// EachPosition turns a PositionGenerator into a SequenceGenerator by walking
// scan positions from N-1 down to 0. It moves to the previous position only
// once the wrapped generator is exhausted, so position-local logic never sees
// more than one position at a time.
type EachPosition struct {
	g     PositionGenerator
	seq   core.Sequence
	pos   int
	inSeg bool
}

// NewEachPosition wraps g. Panics on nil: a driver without a generator is a
// programming error.
func NewEachPosition(g PositionGenerator) *EachPosition {
	if g == nil {
		panic("generator: NewEachPosition(nil)")
	}

	return &EachPosition{g: g, pos: -1}
}

// StartScan implements SequenceGenerator.
func (e *EachPosition) StartScan(seq core.Sequence) bool {
	e.inSeg = false
	e.seq = seq
	e.pos = seq.Len() - 1
	if e.pos >= 0 {
		e.g.StartAt(seq, e.pos)
	}

	return e.advance()
}

// advance steps back until a position fires or the sequence is exhausted.
func (e *EachPosition) advance() bool {
	for e.pos >= 0 && !e.g.HasNext() {
		e.pos--
		if e.pos >= 0 {
			e.g.StartAt(e.seq, e.pos)
		}
	}

	return e.pos >= 0
}

// Position returns the scan position of the next feature.
func (e *EachPosition) Position() int { return e.pos }

// StartSegment implements Scanner by delegating to the wrapped generator.
func (e *EachPosition) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	e.inSeg = true

	return e.g.StartSegment(seq, prevPos, pos)
}

// HasNext implements Scanner.
func (e *EachPosition) HasNext() bool {
	if e.inSeg {
		return e.g.HasNext()
	}

	return e.pos >= 0 && e.g.HasNext()
}

// Next implements Scanner.
func (e *EachPosition) Next(f *core.Feature) {
	e.g.Next(f)
	if !e.inSeg {
		e.advance()
	}
}

// MaxBoundaryGap implements Scanner.
func (e *EachPosition) MaxBoundaryGap() int { return e.g.MaxBoundaryGap() }

// RequiresTraining implements Scanner.
func (e *EachPosition) RequiresTraining() bool { return e.g.RequiresTraining() }

// Train implements Scanner.
func (e *EachPosition) Train(seq core.Sequence, pos int) error { return e.g.Train(seq, pos) }

// Position fires an atomic source at a single position with boundary
// [pos, pos]; kind decides which edges are open.
//
//	BothOpen   the segment contains pos
//	EndOpen    the segment starts at pos
//	StartOpen  the segment ends at pos
//	Exact      the segment is exactly [pos, pos]
type Position struct {
	src  atomic.Source
	kind core.Kind
	so   bool
	eo   bool

	n    int
	b    core.Boundary
	live bool
}

// NewPosition wraps src.
func NewPosition(src atomic.Source, kind core.Kind) (*Position, error) {
	if src == nil {
		return nil, fmt.Errorf("NewPosition: %w", ErrNilSource)
	}
	p := &Position{src: src, kind: kind}
	switch kind {
	case core.BothOpen:
		p.so, p.eo = true, true
	case core.EndOpen:
		p.eo = true
	case core.StartOpen:
		p.so = true
	}

	return p, nil
}

// Kind returns the openness the wrapper assigns.
func (p *Position) Kind() core.Kind { return p.kind }

// StartAt implements PositionGenerator.
func (p *Position) StartAt(seq core.Sequence, pos int) bool {
	p.n = seq.Len()
	p.b = core.Boundary{Start: pos, End: pos, StartOpen: p.so, EndOpen: p.eo}
	p.live = pos >= 0 && pos < p.n && atomic.StartAt(p.src, seq, pos)

	return p.live
}

// StartSegment implements Scanner.
func (p *Position) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	p.n = seq.Len()
	p.b = core.Boundary{Start: prevPos + 1, End: pos}
	p.live = p.b.Within(p.n) && p.src.Start(seq, prevPos, pos)

	return p.live
}

// HasNext implements Scanner.
func (p *Position) HasNext() bool { return p.live && p.src.HasNext() }

// Next implements Scanner.
func (p *Position) Next(f *core.Feature) {
	p.src.Next(f)
	f.Boundary = p.b
	mustContain(f.Boundary, p.n)
}

// MaxBoundaryGap implements Scanner.
func (p *Position) MaxBoundaryGap() int { return 1 }

// RequiresTraining implements Scanner.
func (p *Position) RequiresTraining() bool { return p.src.RequiresTraining() }

// Train implements Scanner.
func (p *Position) Train(seq core.Sequence, pos int) error { return p.src.Train(seq, pos) }
