// SPDX-License-Identifier: MIT
// Package: segfeat/core
//
// types.go — Boundary, Feature and their small helpers.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core values.
var (
	// ErrBoundaryOutOfRange indicates a boundary outside [0, N) or with Start > End.
	ErrBoundaryOutOfRange = errors.New("core: boundary out of range")

	// ErrBadSegmentation indicates gold segments that do not tile the sequence.
	ErrBadSegmentation = errors.New("core: segments must tile the sequence in order")

	// ErrLengthMismatch indicates tokens and labels of different lengths.
	ErrLengthMismatch = errors.New("core: tokens and labels differ in length")
)

// NoLabel marks a label-independent feature or the absence of a previous label.
const NoLabel = -1

// Kind classifies a boundary by which of its edges are open.
type Kind int

const (
	// Exact boundaries have both edges closed.
	Exact Kind = iota
	// EndOpen boundaries have an exact start and a lower bound on the end.
	EndOpen
	// StartOpen boundaries have an exact end and an upper bound on the start.
	StartOpen
	// BothOpen boundaries only state that the segment covers [Start, End].
	BothOpen
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case Exact:
		return "exact"
	case EndOpen:
		return "end-open"
	case StartOpen:
		return "start-open"
	case BothOpen:
		return "both-open"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Boundary is the inclusive extent of a candidate segment.
type Boundary struct {
	Start     int
	End       int
	StartOpen bool
	EndOpen   bool
}

// Len returns End-Start+1.
func (b Boundary) Len() int { return b.End - b.Start + 1 }

// Kind reports the boundary's openness class.
func (b Boundary) Kind() Kind {
	switch {
	case b.StartOpen && b.EndOpen:
		return BothOpen
	case b.StartOpen:
		return StartOpen
	case b.EndOpen:
		return EndOpen
	default:
		return Exact
	}
}

// Within reports whether 0 ≤ Start ≤ End < n.
func (b Boundary) Within(n int) bool {
	return b.Start >= 0 && b.Start <= b.End && b.End < n
}

// Check returns ErrBoundaryOutOfRange, with the offending values, unless Within(n).
func (b Boundary) Check(n int) error {
	if b.Within(n) {
		return nil
	}

	return fmt.Errorf("%w: %s for length %d", ErrBoundaryOutOfRange, b, n)
}

// String renders the boundary in interval notation: '(' marks an open edge.
func (b Boundary) String() string {
	l, r := "[", "]"
	if b.StartOpen {
		l = "("
	}
	if b.EndOpen {
		r = ")"
	}

	return fmt.Sprintf("%s%d,%d%s", l, b.Start, b.End, r)
}

// Key is the identity of a feature in a dictionary. Boundaries are not part of it.
type Key struct {
	Family    int `yaml:"family"`
	ID        int `yaml:"id"`
	Label     int `yaml:"label"`
	PrevLabel int `yaml:"prev"`
}

// Feature is one enumerated (identifier, boundary) pair.
//
// Atomic sources fill ID, Name, Label and PrevLabel; boundary generators fill
// the embedded Boundary; the registry sets Family.
type Feature struct {
	ID        int
	Name      string
	Label     int
	PrevLabel int
	Family    int
	Boundary
}

// Reset clears f to a label-independent feature with an empty boundary.
func (f *Feature) Reset() {
	*f = Feature{Label: NoLabel, PrevLabel: NoLabel}
}

// Key returns the dictionary identity of f.
func (f *Feature) Key() Key {
	return Key{Family: f.Family, ID: f.ID, Label: f.Label, PrevLabel: f.PrevLabel}
}

// String renders the feature for logs and CLI dumps.
func (f Feature) String() string {
	return fmt.Sprintf("%s#%d y=%d yp=%d %s", f.Name, f.ID, f.Label, f.PrevLabel, f.Boundary)
}
