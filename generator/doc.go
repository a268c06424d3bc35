// Package generator enumerates (feature, boundary) candidates for a
// semi-Markov model.
//
// What:
//
//	Generators wrap a boundary-unaware atomic.Source and attach to each raw
//	feature every segment boundary it is consistent with. They compose by
//	delegation, each combinator holding the generator it extends:
//
//	  Windowed       one window; every valid placement per position
//	  MultiWindow    several fixed-placement windows per position
//	  Position       [pos,pos] with a chosen openness
//	  SegmentLength  lengths 1..maxLen ending at a position
//	  Candidates     externally proposed segments ending at a position
//	  EachLabel      replicate across the label alphabet
//	  EachPosition   walk positions N-1 → 0, turning any of the above
//	                 into a whole-sequence generator
//
// Modes:
//
//	Unconstrained: StartAt/StartScan enumerate every candidate boundary;
//	used to build the feature dictionary and to score at decode time.
//	Direct segment: StartSegment(seq, prevPos, pos) fires the features of
//	the known segment [prevPos+1, pos] with that exact boundary; used to
//	score one chosen transition during training.
//
// Records:
//
//	Next(f) overwrites f. All, AllAt and Segment wrap a scan as an
//	iter.Seq that yields copies, for callers that keep features.
//
// Guarantees:
//
//	Every boundary from an unconstrained scan lies in [0, N) and is at most
//	MaxBoundaryGap() long. A violation is a bug and panics with an error
//	wrapping core.ErrBoundaryOutOfRange. Every scan terminates, including
//	on sequences of length 0 and 1. Sequences too short for a window scan
//	empty rather than failing.
//
// Concurrency: generators carry scan state and are not safe for concurrent
// use; give each goroutine its own.
package generator
