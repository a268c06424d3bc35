// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// multi.go — several fixed-placement windows over one source.
//
// Every window of a MultiWindow places exactly one boundary per scan
// position: Left and Right windows must have start == end, Middle windows
// must be fixed spans (start ≥ end). Feature ids are mixed with the window
// index (id*len(windows)+w) so the same token seen through two windows gives
// two features.

package generator

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/window"
)

// MultiWindow fires each atomic feature once per window that can place it.
type MultiWindow struct {
	src    atomic.Source
	wins   []window.Window
	gap    int
	direct directScan

	n      int
	pos    int
	usable []bool
	cur    core.Feature
	w      int // next window to try for cur, counting down
	ready  bool
	inSeg  bool
}

// NewMultiWindow wraps src with one or more fixed-placement windows.
func NewMultiWindow(src atomic.Source, wins ...window.Window) (*MultiWindow, error) {
	if src == nil {
		return nil, fmt.Errorf("NewMultiWindow: %w", ErrNilSource)
	}
	if len(wins) == 0 {
		return nil, fmt.Errorf("NewMultiWindow: %w", ErrNoWindows)
	}
	gap := 1
	for _, w := range wins {
		fixed := w.IsFixedSpan() || (w.Regime() != window.Middle && w.Start() == w.End())
		if !fixed {
			return nil, fmt.Errorf("NewMultiWindow: %s window %s does not pin one placement: %w",
				w.Regime(), w.Name(), window.ErrUnsupportedWindow)
		}
		gap = max(gap, w.SegmentLength())
	}
	cp := make([]window.Window, len(wins))
	copy(cp, wins)

	return &MultiWindow{
		src:    src,
		wins:   cp,
		gap:    gap,
		direct: newDirectScan(src, cp),
		usable: make([]bool, len(cp)),
	}, nil
}

// StartAt implements PositionGenerator.
func (m *MultiWindow) StartAt(seq core.Sequence, pos int) bool {
	m.inSeg, m.ready = false, false
	m.n, m.pos = seq.Len(), pos
	fires := false
	for i, w := range m.wins {
		m.usable[i] = w.Usable(m.n) && w.PositionBounds(m.n).Contains(pos) && !w.PlacementRange(m.n, pos).Empty()
		fires = fires || m.usable[i]
	}
	if !fires || !atomic.StartAt(m.src, seq, pos) {
		return false
	}
	m.w = -1

	return m.advance()
}

// advance positions (cur, w) on the next usable pair.
func (m *MultiWindow) advance() bool {
	for {
		for ; m.w >= 0; m.w-- {
			if m.usable[m.w] {
				m.ready = true
				return true
			}
		}
		if !m.src.HasNext() {
			m.ready = false
			return false
		}
		m.cur.Reset()
		m.src.Next(&m.cur)
		m.w = len(m.wins) - 1
	}
}

// StartSegment implements Scanner.
func (m *MultiWindow) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	m.inSeg = true

	return m.direct.start(seq, prevPos, pos)
}

// HasNext implements Scanner.
func (m *MultiWindow) HasNext() bool {
	if m.inSeg {
		return m.direct.hasNext()
	}

	return m.ready
}

// Next implements Scanner.
func (m *MultiWindow) Next(f *core.Feature) {
	if m.inSeg {
		m.direct.next(f)
		return
	}

	win := m.wins[m.w]
	f.ID = m.cur.ID*len(m.wins) + m.w
	f.Name = m.cur.Name + m.direct.suffix[m.w]
	f.Label, f.PrevLabel = m.cur.Label, m.cur.PrevLabel
	s, e := win.Placement(win.PlacementRange(m.n, m.pos).Lo)
	so, eo := win.Flags()
	f.Boundary = core.Boundary{Start: s, End: e, StartOpen: so, EndOpen: eo}
	mustContain(f.Boundary, m.n)

	m.w--
	m.advance()
}

// MaxBoundaryGap implements Scanner: the longest placement of any window.
func (m *MultiWindow) MaxBoundaryGap() int { return m.gap }

// RequiresTraining implements Scanner.
func (m *MultiWindow) RequiresTraining() bool { return m.src.RequiresTraining() }

// Train implements Scanner.
func (m *MultiWindow) Train(seq core.Sequence, pos int) error { return m.src.Train(seq, pos) }
