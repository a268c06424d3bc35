// Package segfeat enumerates boundary-aware features for semi-Markov
// (segment-based) sequence labeling.
//
// A semi-Markov CRF scores whole segments, so a feature is not attached to
// a token but to a boundary: the segment it belongs to must start at, or
// before, one position and end at, or after, another. segfeat produces
// those features, each tagged with how much of the boundary it pins down,
// so a trainer can share one feature across every segment it covers.
//
// What is inside?
//
//	core/       — Boundary, Feature, Sequence and Segmentation contracts, LabeledSequence
//	window/     — anchoring rules (left, right, middle) and their closed-form arithmetic
//	atomic/     — per-position sources: start, end, prior, edge, word, regex shapes
//	generator/  — windowed, multi-window, segment-length, candidate and per-label generators
//	registry/   — ordered families, scan / segment / gold modes, feature dictionary
//	builder/    — deterministic corpora for tests and benchmarks
//	config/     — YAML model files with .env and environment overrides
//	cmd/segfeat — scan, collect, windows and synth commands
//
// Boundary kinds:
//
//	[s,e]  exact      the segment is exactly s..e
//	[s,e)  end-open   starts at s, ends at e or later
//	(s,e]  start-open ends at e, starts at s or earlier
//	(s,e)  both-open  covers s..e
//
// Quick start:
//
//	dict, _ := atomic.NewDictionary(numLabels)
//	reg, _ := registry.NewDefault(numLabels, dict, registry.WithMaxMemory(4))
//	_ = reg.Train(corpus...)
//	dict.Freeze()
//	for f := range reg.All(seq) {
//		fmt.Println(reg.FamilyName(f.Family), f)
//	}
//
// Generators are single-threaded flyweights: Next fills a caller-owned
// *core.Feature. Give each goroutine its own registry; a frozen word
// dictionary may be shared.
package segfeat
