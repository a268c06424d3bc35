// SPDX-License-Identifier: MIT
// Package: segfeat/registry
//
// defaults.go — the standard feature families for segment labeling.
//
// Registration order (scan order is the reverse):
//
//	0 start      label at a segment starting the sequence       [p,p)
//	1 end        label at a segment ending the sequence         (p,p]
//	2 prior      label of every segment                 retain  [p,p)
//	3 edge       label transition                       retain  [p,p)
//	4 word       token identity through DefaultWindows
//	5 regex      token shapes through DefaultWindows, per label
//	6 length     segment length 1..maxMemory, per label
//	7.. windowed token shapes per extra window, per label
//	   candidate token shapes over candidate segments, per label

package registry

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/generator"
	"github.com/katalvlaran/segfeat/window"
)

// DefaultWindows returns the fixed-placement windows of the default word and
// regex families: the first token, the last token, the interior, a
// one-token segment, and the tokens just outside either edge.
func DefaultWindows() []window.Window {
	return []window.Window{
		window.MustNew("start", 0, true, 0, true, window.WithMinLength(2)),
		window.MustNew("end", 0, false, 0, false, window.WithMinLength(2)),
		window.MustNew("continue", 1, true, -1, false, window.WithMinLength(3)),
		window.MustNew("unique", 0, true, 0, false, window.WithMinLength(1), window.WithMaxLength(1)),
		window.MustNew("left-1", -1, true, -1, true),
		window.MustNew("right+1", 1, false, 1, false),
	}
}

// NewDefault returns a registry with the standard families. dict backs the
// word family and is trained through the registry's Train.
func NewDefault(numLabels int, dict *atomic.Dictionary, opts ...Option) (*Registry, error) {
	if dict == nil {
		return nil, fmt.Errorf("NewDefault: %w", ErrNilDictionary)
	}
	r, err := New(numLabels, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewDefault: %w", err)
	}
	o := newOptions(opts...)
	b := builder{r: r, numLabels: numLabels}

	b.position("start", func() (atomic.Source, error) { return atomic.NewStart(numLabels) }, core.EndOpen, false)
	b.position("end", func() (atomic.Source, error) { return atomic.NewEnd(numLabels) }, core.StartOpen, false)
	b.position("prior", func() (atomic.Source, error) { return atomic.NewClassPrior(numLabels) }, core.EndOpen, true)
	b.position("edge", func() (atomic.Source, error) { return atomic.NewEdge(numLabels) }, core.EndOpen, true)

	b.add("word", func() (generator.PositionGenerator, error) {
		return generator.NewMultiWindow(atomic.NewWord(dict, o.wordCutoff), o.windows...)
	}, false)
	b.add("regex", func() (generator.PositionGenerator, error) {
		re, err := atomic.NewRegex(o.patterns...)
		if err != nil {
			return nil, err
		}
		mw, err := generator.NewMultiWindow(re, o.windows...)
		if err != nil {
			return nil, err
		}
		return generator.NewEachLabel(mw, numLabels)
	}, false)
	b.add("length", func() (generator.PositionGenerator, error) {
		sl, err := generator.NewSegmentLength(o.maxMemory)
		if err != nil {
			return nil, err
		}
		return generator.NewEachLabel(sl, numLabels)
	}, false)
	for _, w := range o.windowed {
		b.add("regex"+nameSep+w.Name(), func() (generator.PositionGenerator, error) {
			re, err := atomic.NewRegex(o.patterns...)
			if err != nil {
				return nil, err
			}
			wg, err := generator.NewWindowed(re, w)
			if err != nil {
				return nil, err
			}
			return generator.NewEachLabel(wg, numLabels)
		}, false)
	}
	if o.candidates {
		b.add("candidate", func() (generator.PositionGenerator, error) {
			re, err := atomic.NewRegex(o.patterns...)
			if err != nil {
				return nil, err
			}
			cg, err := generator.NewCandidates(re, o.maxMemory)
			if err != nil {
				return nil, err
			}
			return generator.NewEachLabel(cg, numLabels)
		}, false)
	}
	if b.err != nil {
		return nil, fmt.Errorf("NewDefault: %w", b.err)
	}

	return r, nil
}

// nameSep joins a family name and a window name.
const nameSep = ".W."

// builder registers families until the first error.
type builder struct {
	r         *Registry
	numLabels int
	err       error
}

func (b *builder) add(name string, mk func() (generator.PositionGenerator, error), retain bool) {
	if b.err != nil {
		return
	}
	g, err := mk()
	if err != nil {
		b.err = fmt.Errorf("%s: %w", name, err)
		return
	}
	_, b.err = b.r.Add(name, generator.NewEachPosition(g), retain)
}

func (b *builder) position(name string, mk func() (atomic.Source, error), kind core.Kind, retain bool) {
	b.add(name, func() (generator.PositionGenerator, error) {
		src, err := mk()
		if err != nil {
			return nil, err
		}
		return generator.NewPosition(src, kind)
	}, retain)
}
