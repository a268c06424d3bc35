// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// segment.go — generators that enumerate segments by length rather than by
// window offsets: SegmentLength and Candidates.
//
// Both are position generators keyed by the segment's ending position. Under
// EachPosition the pair (ending position, length or candidate index) is
// walked lazily: the per-position count is derived once when the driver
// moves to a new ending position.

package generator

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
)

// lengthName names SegmentLength features.
const lengthName = "len"

// SegmentLength fires one feature per segment length ending at a position:
// lengths 1..min(maxLen, pos+1), ID = length. The end is always closed; the
// start is open only at maxLen, where the segment may really be longer.
type SegmentLength struct {
	maxLen int

	n     int
	pos   int
	l     int
	limit int
	inSeg bool
	seg   core.Boundary
}

// NewSegmentLength returns a length generator capped at maxLen.
func NewSegmentLength(maxLen int) (*SegmentLength, error) {
	if maxLen < 1 {
		return nil, fmt.Errorf("NewSegmentLength(%d): %w", maxLen, ErrBadMaxLength)
	}

	return &SegmentLength{maxLen: maxLen}, nil
}

// StartAt implements PositionGenerator.
func (s *SegmentLength) StartAt(seq core.Sequence, pos int) bool {
	s.inSeg = false
	s.n, s.pos, s.l, s.limit = seq.Len(), pos, 1, 0
	if pos >= 0 && pos < s.n {
		s.limit = min(s.maxLen, pos+1)
	}

	return s.HasNext()
}

// StartSegment implements Scanner: one feature for the known segment, with
// lengths past maxLen folded into maxLen.
func (s *SegmentLength) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	s.inSeg = true
	s.n = seq.Len()
	s.seg = core.Boundary{Start: prevPos + 1, End: pos}
	s.l, s.limit = 1, 0
	if s.seg.Within(s.n) {
		s.limit = 1
	}

	return s.HasNext()
}

// HasNext implements Scanner.
func (s *SegmentLength) HasNext() bool { return s.l <= s.limit }

// Next implements Scanner.
func (s *SegmentLength) Next(f *core.Feature) {
	f.Name, f.Label, f.PrevLabel = lengthName, core.NoLabel, core.NoLabel
	if s.inSeg {
		f.ID = min(s.seg.Len(), s.maxLen)
		f.Boundary = s.seg
		s.l++
		return
	}
	f.ID = s.l
	f.Boundary = core.Boundary{Start: s.pos - s.l + 1, End: s.pos, StartOpen: s.l == s.maxLen}
	mustContain(f.Boundary, s.n)
	s.l++
}

// MaxBoundaryGap implements Scanner.
func (s *SegmentLength) MaxBoundaryGap() int { return s.maxLen }

// RequiresTraining implements Scanner.
func (s *SegmentLength) RequiresTraining() bool { return false }

// Train implements Scanner.
func (s *SegmentLength) Train(core.Sequence, int) error { return nil }

// Candidates fires an atomic source over externally proposed candidate
// segments. The sequence supplies them by implementing core.CandidateIndex;
// sequences that do not scan empty. A candidate of length ≥ maxMemory is
// reported with its start truncated to end-maxMemory+1 and marked open.
type Candidates struct {
	src       atomic.Source
	maxMemory int

	seq   core.Sequence
	index core.CandidateIndex
	n     int
	end   int
	i     int
	count int
	b     core.Boundary
	live  bool
	inSeg bool
}

// NewCandidates wraps src with a memory cap.
func NewCandidates(src atomic.Source, maxMemory int) (*Candidates, error) {
	if src == nil {
		return nil, fmt.Errorf("NewCandidates: %w", ErrNilSource)
	}
	if maxMemory < 1 {
		return nil, fmt.Errorf("NewCandidates(%d): %w", maxMemory, ErrBadMaxLength)
	}

	return &Candidates{src: src, maxMemory: maxMemory}, nil
}

// StartAt implements PositionGenerator for candidates ending at end.
func (c *Candidates) StartAt(seq core.Sequence, end int) bool {
	c.inSeg, c.live = false, false
	c.seq, c.n, c.end = seq, seq.Len(), end
	c.i, c.count = -1, 0
	idx, ok := seq.(core.CandidateIndex)
	if !ok || end < 0 || end >= c.n {
		return false
	}
	c.index = idx
	c.count = idx.NumCandidatesEndingAt(end)

	return c.advance()
}

// advance moves to the next candidate whose source fires.
func (c *Candidates) advance() bool {
	for !c.live || !c.src.HasNext() {
		c.i++
		if c.i >= c.count {
			c.live = false
			return false
		}
		start := c.index.CandidateSegmentStart(c.end, c.i)
		c.b = core.Boundary{Start: start, End: c.end}
		if c.end-start+1 >= c.maxMemory {
			c.b.Start, c.b.StartOpen = c.end-c.maxMemory+1, true
		}
		c.live = c.src.Start(c.seq, start-1, c.end)
	}

	return true
}

// StartSegment implements Scanner.
func (c *Candidates) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	c.inSeg = true
	c.n = seq.Len()
	c.b = core.Boundary{Start: prevPos + 1, End: pos}
	c.live = c.b.Within(c.n) && c.src.Start(seq, prevPos, pos)

	return c.live
}

// HasNext implements Scanner.
func (c *Candidates) HasNext() bool { return c.live && c.src.HasNext() }

// Next implements Scanner.
func (c *Candidates) Next(f *core.Feature) {
	c.src.Next(f)
	f.Boundary = c.b
	mustContain(f.Boundary, c.n)
	if !c.inSeg && !c.src.HasNext() {
		c.advance()
	}
}

// MaxBoundaryGap implements Scanner.
func (c *Candidates) MaxBoundaryGap() int { return c.maxMemory }

// RequiresTraining implements Scanner.
func (c *Candidates) RequiresTraining() bool { return c.src.RequiresTraining() }

// Train implements Scanner.
func (c *Candidates) Train(seq core.Sequence, pos int) error { return c.src.Train(seq, pos) }
