// SPDX-License-Identifier: MIT
// Package: segfeat/generator
//
// windowed.go — the per-position windowed generator.
//
// For one window and one scan position, Windowed pairs every atomic feature
// the inner source fires at that position with every boundary placement the
// window allows:
//
//	for each atomic feature f at pos:          (source order)
//	    for anchor in PlacementRange(N, pos):  (ascending)
//	        yield (f, Placement(anchor))
//
// The placement range depends only on the window and pos, so it is computed
// once per StartAt; the anchor cursor is rewound for each atomic feature.

package generator

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/window"
)

// nameSep joins an atomic feature name and the window name.
const nameSep = ".W."

// directScan runs an atomic source over each window's coverage of a known
// segment, last window first. It backs the direct segment mode of Windowed
// and MultiWindow.
type directScan struct {
	src    atomic.Source
	wins   []window.Window
	suffix []string

	seq core.Sequence
	seg core.Boundary
	w   int // current window; -1 when exhausted
}

func newDirectScan(src atomic.Source, wins []window.Window) directScan {
	d := directScan{src: src, wins: wins, suffix: make([]string, len(wins)), w: -1}
	for i, w := range wins {
		d.suffix[i] = nameSep + w.Name()
	}

	return d
}

func (d *directScan) start(seq core.Sequence, prevPos, pos int) bool {
	d.seq = seq
	d.seg = core.Boundary{Start: prevPos + 1, End: pos}
	d.w = len(d.wins)
	if !d.seg.Within(seq.Len()) {
		d.w = -1
		return false
	}

	return d.nextWindow()
}

// nextWindow moves to the next window whose coverage fires at least one feature.
func (d *directScan) nextWindow() bool {
	n, l := d.seq.Len(), d.seg.Len()
	for d.w--; d.w >= 0; d.w-- {
		win := d.wins[d.w]
		if !win.Accepts(l) {
			continue
		}
		lb, rb := win.Covers(d.seg.Start, d.seg.End)
		if lb >= n || rb < 0 || lb > rb {
			continue
		}
		if d.src.Start(d.seq, max(lb, 0)-1, min(rb, n-1)) {
			return true
		}
	}

	return false
}

func (d *directScan) hasNext() bool { return d.w >= 0 }

func (d *directScan) next(f *core.Feature) {
	d.src.Next(f)
	f.ID = f.ID*len(d.wins) + d.w
	f.Name += d.suffix[d.w]
	f.Boundary = d.seg
	if !d.src.HasNext() {
		d.nextWindow()
	}
}

// Windowed enumerates, for one window, every (atomic feature, boundary) pair
// consistent with a scan position.
type Windowed struct {
	src    atomic.Source
	win    window.Window
	direct directScan

	n      int
	cf     window.Range
	anchor int
	cur    core.Feature
	done   bool
	inSeg  bool
	so, eo bool
}

// NewWindowed wraps src with exactly one window.
func NewWindowed(src atomic.Source, wins ...window.Window) (*Windowed, error) {
	switch {
	case src == nil:
		return nil, fmt.Errorf("NewWindowed: %w", ErrNilSource)
	case len(wins) == 0:
		return nil, fmt.Errorf("NewWindowed: %w", ErrNoWindows)
	case len(wins) > 1:
		return nil, fmt.Errorf("NewWindowed: %d windows: %w", len(wins), ErrTooManyWindows)
	}
	w := &Windowed{src: src, win: wins[0], direct: newDirectScan(src, wins[:1]), done: true}
	w.so, w.eo = w.win.Flags()

	return w, nil
}

// Window returns the generator's window.
func (w *Windowed) Window() window.Window { return w.win }

// StartAt implements PositionGenerator. It reports no features when the window
// cannot fire in a sequence of this length, when pos is outside the window's
// position bounds, or when the inner source fires nothing at pos.
func (w *Windowed) StartAt(seq core.Sequence, pos int) bool {
	w.inSeg, w.done = false, true
	w.n = seq.Len()
	if !w.win.Usable(w.n) || !w.win.PositionBounds(w.n).Contains(pos) {
		return false
	}
	w.cf = w.win.PlacementRange(w.n, pos)
	if w.cf.Empty() || !atomic.StartAt(w.src, seq, pos) {
		return false
	}
	w.done = false
	w.pull()

	return true
}

// pull takes the next atomic feature and rewinds the anchor cursor.
func (w *Windowed) pull() {
	w.cur.Reset()
	w.src.Next(&w.cur)
	w.cur.Name += w.direct.suffix[0]
	w.anchor = w.cf.Lo
}

// StartSegment implements Scanner.
func (w *Windowed) StartSegment(seq core.Sequence, prevPos, pos int) bool {
	w.inSeg = true

	return w.direct.start(seq, prevPos, pos)
}

// HasNext implements Scanner.
func (w *Windowed) HasNext() bool {
	if w.inSeg {
		return w.direct.hasNext()
	}

	return !w.done
}

// Next implements Scanner.
func (w *Windowed) Next(f *core.Feature) {
	if w.inSeg {
		w.direct.next(f)
		return
	}

	f.ID, f.Name, f.Label, f.PrevLabel = w.cur.ID, w.cur.Name, w.cur.Label, w.cur.PrevLabel
	s, e := w.win.Placement(w.anchor)
	f.Boundary = core.Boundary{Start: s, End: e, StartOpen: w.so, EndOpen: w.eo}
	mustContain(f.Boundary, w.n)

	w.anchor++
	if w.anchor <= w.cf.Hi {
		return
	}
	if w.src.HasNext() {
		w.pull()
		return
	}
	w.done = true
}

// MaxBoundaryGap implements Scanner: every placement has the window's segment length.
func (w *Windowed) MaxBoundaryGap() int { return w.win.SegmentLength() }

// RequiresTraining implements Scanner.
func (w *Windowed) RequiresTraining() bool { return w.src.RequiresTraining() }

// Train implements Scanner.
func (w *Windowed) Train(seq core.Sequence, pos int) error { return w.src.Train(seq, pos) }
