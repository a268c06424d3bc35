// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// registry.go — an ordered set of sequence generators scanned as one.
//
// Order:
//   • Families are scanned in reverse registration order: the last family
//     added is exhausted first. Within a family the generator's own order holds.
//   • Family indices are assigned at Add, starting from 0, and stamped on
//     every feature so keys from different families never collide.
//
// Modes:
//   • Scan           every candidate boundary of a sequence.
//   • ScanSegment    the features of one known segment, direct mode.
//   • ScanGold       every gold segment of a segmentation in order, keeping
//                    only features consistent with the gold labels (Retain).

package registry

import (
	"fmt"
	"iter"
	"log/slog"

	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/generator"
)

type mode int

const (
	idle mode = iota
	scanning
	segment
	gold
)

type family struct {
	name   string
	g      generator.SequenceGenerator
	retain bool
}

// Registry drives every registered feature family over a sequence.
//
// A Registry holds scan state and is not safe for concurrent use; build one
// per goroutine (atomic dictionaries may be shared once frozen).
type Registry struct {
	numLabels int
	families  []family
	maxGap    int
	log       *slog.Logger

	mode    mode
	seq     core.Sequence
	prevPos int
	pos     int
	cur     int // family being drained, counting down

	// gold scan state
	seg     core.Segmentation
	segNum  int
	pending core.Feature
	ready   bool
}

// New returns an empty registry for numLabels labels. Its boundary gap
// starts at the configured max memory and grows with each family.
func New(numLabels int, opts ...Option) (*Registry, error) {
	if numLabels < 1 {
		return nil, fmt.Errorf("New(%d): %w", numLabels, ErrNoLabels)
	}
	o := newOptions(opts...)

	return &Registry{numLabels: numLabels, maxGap: o.maxMemory, log: o.logger, cur: -1}, nil
}

// Add registers g as the next family. Features of families added with
// retain=true are always kept when building a dictionary, even if they
// disagree with the gold segmentation.
func (r *Registry) Add(name string, g generator.SequenceGenerator, retain bool) (int, error) {
	if g == nil {
		return -1, fmt.Errorf("Add(%q): %w", name, ErrNilGenerator)
	}
	idx := len(r.families)
	r.families = append(r.families, family{name: name, g: g, retain: retain})
	r.maxGap = max(r.maxGap, g.MaxBoundaryGap())
	r.log.Debug("feature family registered",
		slog.Int("family", idx),
		slog.String("name", name),
		slog.Int("gap", g.MaxBoundaryGap()),
		slog.Bool("retain", retain))

	return idx, nil
}

// NumLabels returns the label alphabet size.
func (r *Registry) NumLabels() int { return r.numLabels }

// NumFamilies returns the number of registered families.
func (r *Registry) NumFamilies() int { return len(r.families) }

// FamilyName returns the name given to family i at registration.
func (r *Registry) FamilyName(i int) string { return r.families[i].name }

// Retained reports whether family i was registered with retain=true.
func (r *Registry) Retained(i int) bool { return r.families[i].retain }

// MaxBoundaryGap returns the longest boundary any family can produce; never
// below 1.
func (r *Registry) MaxBoundaryGap() int { return r.maxGap }

// RequiresTraining reports whether any family still needs a training pass.
func (r *Registry) RequiresTraining() bool {
	for _, f := range r.families {
		if f.g.RequiresTraining() {
			return true
		}
	}

	return false
}

// Train runs the training pass of every family that needs one, over every
// position of every sequence. The first error is returned as is.
func (r *Registry) Train(seqs ...core.Sequence) error {
	for i := range r.families {
		g := r.families[i].g
		if !g.RequiresTraining() {
			continue
		}
		for _, seq := range seqs {
			for pos := 0; pos < seq.Len(); pos++ {
				if err := g.Train(seq, pos); err != nil {
					return err
				}
			}
		}
		r.log.Debug("feature family trained",
			slog.String("name", r.families[i].name),
			slog.Int("sequences", len(seqs)))
	}

	return nil
}

// Scan starts an unconstrained scan of seq and reports whether any feature
// is available.
func (r *Registry) Scan(seq core.Sequence) bool {
	r.mode, r.seq = scanning, seq
	r.cur = len(r.families)

	return r.nextFamily()
}

// ScanSegment starts a direct-mode scan of the segment [prevPos+1, pos].
func (r *Registry) ScanSegment(seq core.Sequence, prevPos, pos int) bool {
	r.mode, r.seq = segment, seq
	r.prevPos, r.pos = prevPos, pos
	r.cur = len(r.families)

	return r.nextFamily()
}

// nextFamily moves cur to the next family, in reverse order, that fires.
func (r *Registry) nextFamily() bool {
	for r.cur--; r.cur >= 0; r.cur-- {
		g := r.families[r.cur].g
		var ok bool
		if r.mode == scanning {
			ok = g.StartScan(r.seq)
		} else {
			ok = g.StartSegment(r.seq, r.prevPos, r.pos)
		}
		if ok && g.HasNext() {
			return true
		}
	}

	return false
}

// ScanGold starts a scan over every gold segment of seg, first to last,
// yielding only the features Retain accepts.
func (r *Registry) ScanGold(seg core.Segmentation) bool {
	r.mode, r.seq, r.seg = gold, seg, seg
	r.segNum, r.cur = -1, -1
	r.ready = r.fetch()

	return r.ready
}

// fetch fills pending with the next retained gold feature.
func (r *Registry) fetch() bool {
	for {
		if r.cur >= 0 && r.families[r.cur].g.HasNext() {
			r.pending.Reset()
			r.raw(&r.pending)
			if Retain(r.seg, &r.pending) {
				return true
			}
			continue
		}
		r.segNum++
		if r.segNum >= r.seg.NumSegments() {
			return false
		}
		r.prevPos, r.pos = r.seg.SegmentStart(r.segNum)-1, r.seg.SegmentEnd(r.segNum)
		r.cur = len(r.families)
		r.nextFamily()
	}
}

// raw takes the next feature of the current family and advances families
// when it runs dry.
func (r *Registry) raw(f *core.Feature) {
	g := r.families[r.cur].g
	g.Next(f)
	f.Family = r.cur
	if !g.HasNext() {
		r.nextFamily()
	}
}

// HasNext reports whether the current scan has another feature.
func (r *Registry) HasNext() bool {
	switch r.mode {
	case gold:
		return r.ready
	case scanning, segment:
		return r.cur >= 0 && r.families[r.cur].g.HasNext()
	default:
		return false
	}
}

// Next overwrites f with the next feature of the current scan.
func (r *Registry) Next(f *core.Feature) {
	if r.mode == gold {
		*f = r.pending
		r.ready = r.fetch()
		return
	}
	r.raw(f)
}

// All yields a copy of every feature of an unconstrained scan of seq.
func (r *Registry) All(seq core.Sequence) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		r.Scan(seq)
		r.drain(yield)
	}
}

// Segment yields a copy of every feature of the segment [prevPos+1, pos].
func (r *Registry) Segment(seq core.Sequence, prevPos, pos int) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		r.ScanSegment(seq, prevPos, pos)
		r.drain(yield)
	}
}

// Gold yields a copy of every retained feature of seg's gold segments.
func (r *Registry) Gold(seg core.Segmentation) iter.Seq[core.Feature] {
	return func(yield func(core.Feature) bool) {
		r.ScanGold(seg)
		r.drain(yield)
	}
}

func (r *Registry) drain(yield func(core.Feature) bool) {
	var f core.Feature
	for r.HasNext() {
		f.Reset()
		r.Next(&f)
		if !yield(f) {
			return
		}
	}
}
