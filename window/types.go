// SPDX-License-Identifier: MIT
// Package: segfeat/window
//
// types.go — Regime, Window, Range and the sentinel errors.

package window

import (
	"errors"
	"fmt"
	"math"
)

// Unbounded is the MaxLength of an open-ended window.
const Unbounded = math.MaxInt

// Sentinel errors returned by New and RegimeOf.
var (
	// ErrUnsupportedAnchoring indicates a start relative to the right edge
	// combined with an end relative to the left edge.
	ErrUnsupportedAnchoring = errors.New("window: start relative to right with end relative to left")

	// ErrFiniteMaxLength indicates a Left or Right window with a finite MaxLength.
	ErrFiniteMaxLength = errors.New("window: left/right windows require an unbounded max length")

	// ErrUnsupportedWindow indicates offsets the enumerators cannot place.
	ErrUnsupportedWindow = errors.New("window: unsupported offsets")

	// ErrInvalidLength indicates MinLength < 1 or MaxLength < MinLength.
	ErrInvalidLength = errors.New("window: invalid length bounds")
)

// Regime is how a window is anchored to a segment.
type Regime int

const (
	// Left windows have both offsets relative to the segment start.
	Left Regime = iota
	// Right windows have both offsets relative to the segment end.
	Right
	// Middle windows offset the start from the segment start and the end
	// from the segment end.
	Middle
)

// String returns the regime name.
func (r Regime) String() string {
	switch r {
	case Left:
		return "left"
	case Right:
		return "right"
	case Middle:
		return "middle"
	default:
		return fmt.Sprintf("regime(%d)", int(r))
	}
}

// RegimeOf maps the two anchoring flags to a Regime.
func RegimeOf(startRelativeToLeft, endRelativeToLeft bool) (Regime, error) {
	switch {
	case startRelativeToLeft && endRelativeToLeft:
		return Left, nil
	case !startRelativeToLeft && !endRelativeToLeft:
		return Right, nil
	case startRelativeToLeft:
		return Middle, nil
	default:
		return 0, ErrUnsupportedAnchoring
	}
}

// ParseRegime accepts "left", "right" or "middle".
func ParseRegime(s string) (Regime, error) {
	switch s {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "middle":
		return Middle, nil
	default:
		return 0, fmt.Errorf("ParseRegime(%q): %w", s, ErrUnsupportedAnchoring)
	}
}

// Window is an immutable anchoring rule. Build it with New.
//
// A window covers positions [Start+anchorL, End+anchorR] of a segment, where
// anchorL is the segment start for Left and Middle windows and the segment end
// for Right windows, and anchorR is the segment end for Right and Middle
// windows and the segment start for Left windows.
type Window struct {
	name      string
	start     int
	end       int
	regime    Regime
	minLength int
	maxLength int
}

// Range is an inclusive integer interval; empty when Lo > Hi.
type Range struct {
	Lo int
	Hi int
}

// Empty reports Lo > Hi.
func (r Range) Empty() bool { return r.Lo > r.Hi }

// Contains reports Lo ≤ v ≤ Hi.
func (r Range) Contains(v int) bool { return r.Lo <= v && v <= r.Hi }

// Option customizes a Window in New.
type Option func(*Window)

// WithMinLength sets the minimum segment length. Panics if n < 1.
func WithMinLength(n int) Option {
	if n < 1 {
		panic("window: WithMinLength(n<1)")
	}
	return func(w *Window) {
		w.minLength = n
	}
}

// WithMaxLength sets the maximum segment length; Unbounded for none. Panics if n < 1.
func WithMaxLength(n int) Option {
	if n < 1 {
		panic("window: WithMaxLength(n<1)")
	}
	return func(w *Window) {
		w.maxLength = n
	}
}

// WithName overrides the generated window name.
func WithName(name string) Option {
	return func(w *Window) {
		if name != "" {
			w.name = name
		}
	}
}
