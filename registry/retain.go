// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// retain.go — consistency of an enumerated feature with a gold segmentation.

package registry

import "github.com/katalvlaran/segfeat/core"

// Retain reports whether f is consistent with the gold segmentation seg:
//
//	both ends of the boundary fall in the same gold segment;
//	that segment's label equals f.Label;
//	a closed start is the segment's start, a closed end is its end;
//	a previous label requires a preceding segment carrying that label.
//
// Label-independent features (Label == core.NoLabel) never match a labeled
// segment and are rejected.
func Retain(seg core.Segmentation, f *core.Feature) bool {
	if !f.Boundary.Within(seg.Len()) {
		return false
	}
	id := seg.SegmentID(f.Start)
	if id < 0 || id != seg.SegmentID(f.End) {
		return false
	}
	if seg.SegmentLabel(id) != f.Label {
		return false
	}
	if !f.StartOpen && seg.SegmentStart(id) != f.Start {
		return false
	}
	if !f.EndOpen && seg.SegmentEnd(id) != f.End {
		return false
	}
	if f.PrevLabel >= 0 {
		if id == 0 || seg.SegmentLabel(id-1) != f.PrevLabel {
			return false
		}
	}

	return true
}
