// Package registry combines feature families into one ordered scan and
// indexes what they produce.
//
// What:
//
//	A Registry holds sequence generators, one per feature family, and scans
//	them as a single stream in reverse registration order. Every feature
//	carries its family index, so (family, id, label, prev) is a unique key.
//
//	NewDefault builds the standard families: sequence start and end, label
//	prior, label transitions, token identity and token shapes through
//	fixed windows, and segment length. Options add windowed shape families
//	and candidate-segment families.
//
//	A Dictionary assigns dense indices to keys while collecting from a
//	training corpus. For sequences with a gold segmentation, only features
//	that Retain accepts are indexed, apart from retained families.
//
// Modes:
//
//	Scan         all candidate boundaries (dictionary building, decoding)
//	ScanSegment  one known segment, exact boundary (training transitions)
//	ScanGold     every gold segment, filtered by Retain
//
// Concurrency: a Registry is single-goroutine. Build one per worker over a
// frozen atomic.Dictionary and merge per-worker Dictionaries in shard order.
package registry
