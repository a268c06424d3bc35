// SPDX-License-Identifier: MIT
// Package: segfeat/builder
//
// constants.go — constructor names and shared defaults.

package builder

// Constructor names, used as error prefixes.
const (
	MethodBuildCorpus        = "BuildCorpus"
	MethodSegments           = "Segments"
	MethodLabels             = "Labels"
	MethodUnlabeled          = "Unlabeled"
	MethodRandomSegmentation = "RandomSegmentation"
	MethodCandidates         = "Candidates"
	MethodRandomCandidates   = "RandomCandidates"
)

// MinLabels is the smallest label alphabet a corpus can use.
const MinLabels = 1

// MinSequenceLength is the smallest length RandomSegmentation accepts.
// Empty sequences are legal input, but only explicit constructors make them.
const MinSequenceLength = 1

// DefaultMaxSegmentLength caps random segment lengths unless overridden.
const DefaultMaxSegmentLength = 4

// MinProbability and MaxProbability bound RandomCandidates' p, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
