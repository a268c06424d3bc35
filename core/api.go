// SPDX-License-Identifier: MIT
// Package: segfeat/core
//
// api.go — read-only views the engine consumes.

package core

// Sequence is an ordered input of tokens with optional gold labels.
// Label returns NoLabel for unlabeled positions.
type Sequence interface {
	Len() int
	Label(pos int) int
	Token(pos int) string
}

// Segmentation is a Sequence with a gold segmentation. Segments are numbered
// 0..NumSegments()-1 from left to right and tile [0, Len()).
type Segmentation interface {
	Sequence
	NumSegments() int
	SegmentID(pos int) int
	SegmentStart(seg int) int
	SegmentEnd(seg int) int
	SegmentLabel(seg int) int
}

// CandidateIndex lists externally proposed candidate segments by ending position.
type CandidateIndex interface {
	NumCandidatesEndingAt(end int) int
	CandidateSegmentStart(end, idx int) int
}
