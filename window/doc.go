// Package window describes how a feature observed at one scan position is
// anchored to the segments it can belong to.
//
// What:
//
//	A Window is a pair of offsets plus length bounds, in one of three regimes:
//
//	  Left    both offsets from the segment start       "the token just before"
//	  Right   both offsets from the segment end         "the token just after"
//	  Middle  start offset from the start, end offset   "every interior token"
//	          from the end
//
//	The fourth anchoring (start from the end, end from the start) has no
//	Regime value; New rejects it with ErrUnsupportedAnchoring.
//
// Why:
//
//	A semi-Markov model scores segments, not tokens. Before a token-level
//	feature can be scored it must be attached to every segment boundary it
//	is consistent with. The arithmetic for that is small but easy to get
//	off by one, so it lives here in closed form and is shared by every
//	windowed generator.
//
// Boundary arithmetic:
//
//	For a sequence of length N and scan position p, PositionBounds says
//	whether p can fire at all, PlacementRange gives the valid anchors, and
//	Placement turns one anchor into [start, end]. Every placement has length
//	SegmentLength(), lies in [0, N) and covers p. Flags gives the openness:
//	an unbounded window leaves its non-anchored edge open.
//
// Validation:
//
//	ErrFiniteMaxLength    — Left/Right windows must be Unbounded.
//	ErrUnsupportedWindow  — Middle with start < 0 < end; Left/Right with start > end.
//	ErrInvalidLength      — MinLength < 1 or MaxLength < MinLength.
//
// Complexity: every method is O(1).
package window
