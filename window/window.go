// SPDX-License-Identifier: MIT
// Package: segfeat/window
//
// window.go — validating factory and closed-form boundary arithmetic.
//
// Notation (per regime, L = SegmentLength(), s = Start(), e = End()):
//
//	          posBdry                    featureBdry     placement(anchor a)
//	Left      [max(0,s), N-L+e]          [0, N-L]        [a, a+L-1]
//	Right     [max(0,L-1+s), N-1+e]      [L-1, N-1]      [a-L+1, a]
//	Middle    [max(0,s), N-L+s]  (fixed) [0, N-L]        [a, a+L-1]
//	          [max(0,s), N-1+e]  (range)
//
// posBdry is clipped to [0, N-1]. The anchor is the segment start for Left and
// Middle windows and the segment end for Right windows. For a scan position p
// the valid anchors are PlacementRange(N, p):
//
//	Left      [pos-e, pos-s]       ∩ featureBdry
//	Right     [pos-e, pos-s]       ∩ featureBdry
//	Middle    [pos-s, pos-s]       ∩ featureBdry   (fixed span, s ≥ e)
//	          [pos-e-L+1, pos-s]   ∩ featureBdry   (range, s < e)

package window

import (
	"fmt"
	"strconv"
)

// New validates and returns a window. Offsets are interpreted per RegimeOf.
func New(name string, start int, startRelativeToLeft bool, end int, endRelativeToLeft bool, opts ...Option) (Window, error) {
	regime, err := RegimeOf(startRelativeToLeft, endRelativeToLeft)
	if err != nil {
		return Window{}, fmt.Errorf("New(%s): %w", name, err)
	}

	return NewRegime(name, regime, start, end, opts...)
}

// NewRegime is New with an explicit Regime.
func NewRegime(name string, regime Regime, start, end int, opts ...Option) (Window, error) {
	w := Window{
		name:      name,
		start:     start,
		end:       end,
		regime:    regime,
		minLength: 1,
		maxLength: Unbounded,
	}
	if w.name == "" {
		w.name = defaultName(regime, start, end)
	}
	for _, opt := range opts {
		opt(&w)
	}
	if err := w.validate(); err != nil {
		return Window{}, fmt.Errorf("New(%s): %w", w.name, err)
	}

	return w, nil
}

// MustNew is New that panics on error; for package-level tables.
func MustNew(name string, start int, startRelativeToLeft bool, end int, endRelativeToLeft bool, opts ...Option) Window {
	w, err := New(name, start, startRelativeToLeft, end, endRelativeToLeft, opts...)
	if err != nil {
		panic(err)
	}

	return w
}

func defaultName(regime Regime, start, end int) string {
	s, e := "L", "L"
	switch regime {
	case Right:
		s, e = "R", "R"
	case Middle:
		e = "R"
	}

	return s + strconv.Itoa(start) + e + strconv.Itoa(end)
}

func (w Window) validate() error {
	if w.minLength < 1 || w.maxLength < w.minLength {
		return fmt.Errorf("min %d max %d: %w", w.minLength, w.maxLength, ErrInvalidLength)
	}
	switch w.regime {
	case Left, Right:
		if w.maxLength != Unbounded {
			return fmt.Errorf("max %d: %w", w.maxLength, ErrFiniteMaxLength)
		}
		if w.start > w.end {
			return fmt.Errorf("%s window start %d > end %d: %w", w.regime, w.start, w.end, ErrUnsupportedWindow)
		}
	case Middle:
		if w.start < 0 && w.end > 0 {
			return fmt.Errorf("middle window start %d < 0 < end %d: %w", w.start, w.end, ErrUnsupportedWindow)
		}
	default:
		return ErrUnsupportedAnchoring
	}

	return nil
}

// Name returns the window name.
func (w Window) Name() string { return w.name }

// String returns the window name.
func (w Window) String() string { return w.name }

// Start returns the start offset.
func (w Window) Start() int { return w.start }

// End returns the end offset.
func (w Window) End() int { return w.end }

// Regime returns the anchoring regime.
func (w Window) Regime() Regime { return w.regime }

// MinLength returns the configured minimum segment length.
func (w Window) MinLength() int { return w.minLength }

// MaxLength returns the configured maximum segment length, or Unbounded.
func (w Window) MaxLength() int { return w.maxLength }

// Unbounded reports MaxLength() == Unbounded.
func (w Window) Unbounded() bool { return w.maxLength == Unbounded }

// IsFixedSpan reports a Middle window that pins the segment start at pos-Start.
func (w Window) IsFixedSpan() bool { return w.regime == Middle && w.start >= w.end }

// SegmentLength is the length of every boundary the window places, and so its
// maximum boundary gap: the configured minimum, raised to the shortest segment
// the offsets can describe.
func (w Window) SegmentLength() int {
	switch w.regime {
	case Left:
		return max(w.minLength, w.start+1)
	case Right:
		return max(w.minLength, 1-w.end)
	default:
		return max(w.minLength, w.start-w.end+1)
	}
}

// MinSequenceLength is the shortest sequence the window can fire in.
func (w Window) MinSequenceLength() int {
	l := w.SegmentLength()
	switch w.regime {
	case Left:
		return max(l, l-w.end)
	case Right:
		return max(l, l+w.start)
	default:
		return max(l, max(w.start, -w.end)+1)
	}
}

// Usable reports whether the window can fire at all in a sequence of length n.
func (w Window) Usable(n int) bool {
	return n >= w.MinSequenceLength() && w.SegmentLength() <= w.maxLength
}

// PositionBounds returns posBdry: the scan positions that can fire at all.
func (w Window) PositionBounds(n int) Range {
	l := w.SegmentLength()
	var r Range
	switch {
	case w.regime == Left:
		r = Range{Lo: w.start, Hi: n - l + w.end}
	case w.regime == Right:
		r = Range{Lo: l - 1 + w.start, Hi: n - 1 + w.end}
	case w.IsFixedSpan():
		r = Range{Lo: w.start, Hi: n - l + w.start}
	default:
		r = Range{Lo: w.start, Hi: n - 1 + w.end}
	}

	return Range{Lo: max(0, r.Lo), Hi: min(n-1, r.Hi)}
}

// FeatureBounds returns featureBdry: the anchors whose placement lies in [0, n).
func (w Window) FeatureBounds(n int) Range {
	l := w.SegmentLength()
	if w.regime == Right {
		return Range{Lo: l - 1, Hi: n - 1}
	}

	return Range{Lo: 0, Hi: n - l}
}

// PlacementRange returns cfRange: the anchors whose placement makes the
// window cover pos, clipped to FeatureBounds(n).
func (w Window) PlacementRange(n, pos int) Range {
	fb := w.FeatureBounds(n)
	var r Range
	switch {
	case w.regime == Left, w.regime == Right:
		r = Range{Lo: pos - w.end, Hi: pos - w.start}
	case w.IsFixedSpan():
		r = Range{Lo: pos - w.start, Hi: pos - w.start}
	default:
		r = Range{Lo: pos - w.end - w.SegmentLength() + 1, Hi: pos - w.start}
	}

	return Range{Lo: max(fb.Lo, r.Lo), Hi: min(fb.Hi, r.Hi)}
}

// Flags returns the (startOpen, endOpen) pair of every placed boundary.
func (w Window) Flags() (startOpen, endOpen bool) {
	open := w.Unbounded()
	switch w.regime {
	case Left:
		return false, open
	case Right:
		return open, false
	default:
		return open, open
	}
}

// Placement returns the [start, end] placed at anchor.
func (w Window) Placement(anchor int) (start, end int) {
	l := w.SegmentLength()
	if w.regime == Right {
		return anchor - l + 1, anchor
	}

	return anchor, anchor + l - 1
}

// Covers returns the absolute positions [leftB, rightB] the window covers for
// the known segment [segStart, segEnd]. The result may extend past the sequence.
func (w Window) Covers(segStart, segEnd int) (leftB, rightB int) {
	switch w.regime {
	case Left:
		return segStart + w.start, segStart + w.end
	case Right:
		return segEnd + w.start, segEnd + w.end
	default:
		return segStart + w.start, segEnd + w.end
	}
}

// Accepts reports whether a known segment of length l satisfies the length bounds.
func (w Window) Accepts(l int) bool {
	return w.minLength <= l && l <= w.maxLength
}
