// SPDX-License-Identifier: MIT
// Package: segfeat/core
//
// sequence.go — LabeledSequence, the in-memory Sequence/Segmentation/CandidateIndex.
//
// Contract:
//   • Gold segments are stored once; per-position labels and segment ids are
//     derived at construction so every accessor is O(1).
//   • Candidate segments are grouped by ending position, ascending start.

package core

import (
	"fmt"
	"sort"
)

// Segment is one gold segment: inclusive [Start, End] carrying Label.
type Segment struct {
	Start int
	End   int
	Label int
}

// LabeledSequence is a token sequence with an optional gold segmentation and
// an optional candidate-segment index.
type LabeledSequence struct {
	tokens     []string
	segments   []Segment
	segOf      []int // position -> segment index, nil when unsegmented
	candidates map[int][]int
}

var (
	_ Segmentation   = (*LabeledSequence)(nil)
	_ CandidateIndex = (*LabeledSequence)(nil)
)

// NewSequence returns an unlabeled sequence over tokens.
func NewSequence(tokens []string) *LabeledSequence {
	return &LabeledSequence{tokens: tokens}
}

// NewSegmented returns a sequence whose gold segments tile [0, len(tokens)).
// Segments must be given left to right without gaps or overlap.
func NewSegmented(tokens []string, segments []Segment) (*LabeledSequence, error) {
	segOf := make([]int, len(tokens))
	next := 0
	for i, s := range segments {
		if s.Start != next || s.End < s.Start || s.End >= len(tokens) {
			return nil, fmt.Errorf("NewSegmented: segment %d [%d,%d] after %d: %w",
				i, s.Start, s.End, next, ErrBadSegmentation)
		}
		for p := s.Start; p <= s.End; p++ {
			segOf[p] = i
		}
		next = s.End + 1
	}
	if next != len(tokens) {
		return nil, fmt.Errorf("NewSegmented: segments end at %d, length %d: %w",
			next, len(tokens), ErrBadSegmentation)
	}

	cp := make([]Segment, len(segments))
	copy(cp, segments)

	return &LabeledSequence{tokens: tokens, segments: cp, segOf: segOf}, nil
}

// FromLabels builds a segmentation from per-position labels: each maximal
// run of one label becomes a segment.
func FromLabels(tokens []string, labels []int) (*LabeledSequence, error) {
	if len(tokens) != len(labels) {
		return nil, fmt.Errorf("FromLabels: %d tokens, %d labels: %w",
			len(tokens), len(labels), ErrLengthMismatch)
	}
	var segs []Segment
	for p, y := range labels {
		if p > 0 && labels[p-1] == y {
			segs[len(segs)-1].End = p
			continue
		}
		segs = append(segs, Segment{Start: p, End: p, Label: y})
	}

	return NewSegmented(tokens, segs)
}

// Len returns the number of tokens.
func (s *LabeledSequence) Len() int { return len(s.tokens) }

// Token returns the token at pos.
func (s *LabeledSequence) Token(pos int) string { return s.tokens[pos] }

// Label returns the gold label at pos, or NoLabel when unsegmented.
func (s *LabeledSequence) Label(pos int) int {
	if s.segOf == nil {
		return NoLabel
	}

	return s.segments[s.segOf[pos]].Label
}

// NumSegments returns the number of gold segments (0 when unsegmented).
func (s *LabeledSequence) NumSegments() int { return len(s.segments) }

// SegmentID returns the gold segment containing pos, or -1 when unsegmented.
func (s *LabeledSequence) SegmentID(pos int) int {
	if s.segOf == nil {
		return -1
	}

	return s.segOf[pos]
}

// SegmentStart returns the first position of segment seg.
func (s *LabeledSequence) SegmentStart(seg int) int { return s.segments[seg].Start }

// SegmentEnd returns the last position of segment seg.
func (s *LabeledSequence) SegmentEnd(seg int) int { return s.segments[seg].End }

// SegmentLabel returns the gold label of segment seg.
func (s *LabeledSequence) SegmentLabel(seg int) int { return s.segments[seg].Label }

// Segments returns a copy of the gold segments.
func (s *LabeledSequence) Segments() []Segment {
	cp := make([]Segment, len(s.segments))
	copy(cp, s.segments)

	return cp
}

// Tokens returns the underlying token slice. Callers must not modify it.
func (s *LabeledSequence) Tokens() []string { return s.tokens }

// AddCandidate proposes [start, end] as a candidate segment. Duplicates are ignored.
func (s *LabeledSequence) AddCandidate(start, end int) error {
	b := Boundary{Start: start, End: end}
	if err := b.Check(len(s.tokens)); err != nil {
		return fmt.Errorf("AddCandidate: %w", err)
	}
	if s.candidates == nil {
		s.candidates = make(map[int][]int)
	}
	starts := s.candidates[end]
	i := sort.SearchInts(starts, start)
	if i < len(starts) && starts[i] == start {
		return nil
	}
	starts = append(starts, 0)
	copy(starts[i+1:], starts[i:])
	starts[i] = start
	s.candidates[end] = starts

	return nil
}

// NumCandidatesEndingAt returns how many candidates end at end.
func (s *LabeledSequence) NumCandidatesEndingAt(end int) int { return len(s.candidates[end]) }

// CandidateSegmentStart returns the start of the idx-th candidate ending at end.
// Candidates ending at one position are ordered by ascending start.
func (s *LabeledSequence) CandidateSegmentStart(end, idx int) int { return s.candidates[end][idx] }
