// Package core defines the value types and collaborator interfaces shared by
// every segfeat package: the Boundary of a candidate segment, the reusable
// Feature record that generators fill on each Next call, and the Sequence,
// Segmentation and CandidateIndex views the engine reads its input through.
//
// Boundaries:
//
//	A Boundary is the inclusive range [Start, End] of positions a feature
//	applies to, plus two flags. A closed edge is exact. An open edge is a
//	bound: the true segment may extend further in that direction, but the
//	model caps segment length there.
//
//	    tokens:  x0 x1 x2 x3 x4
//	    [1,2] start closed, end open  →  segments [1,2], [1,3], [1,4]
//
// Records:
//
//	Feature is a flyweight. Generators overwrite the record passed to
//	Next on every call; callers that keep a value past the next call copy
//	it (a plain struct assignment is enough).
//
// LabeledSequence is the in-memory implementation of all three input views
// and is what fixtures, examples and the CLI feed the engine.
//
// Errors:
//
//	ErrBoundaryOutOfRange - a boundary violates 0 ≤ start ≤ end < N.
//	ErrBadSegmentation    - gold segments do not tile [0, N) in order.
//	ErrLengthMismatch     - token and label slices differ in length.
package core
