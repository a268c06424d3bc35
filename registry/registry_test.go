package registry_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/generator"
	"github.com/katalvlaran/segfeat/registry"
	"github.com/katalvlaran/segfeat/window"
)

const (
	labelA = 0
	labelB = 1
)

// RegistrySuite runs the default families over a two-segment gold sequence:
// [0,2] labelled A and [3,5] labelled B.
type RegistrySuite struct {
	suite.Suite
	dict *atomic.Dictionary
	reg  *registry.Registry
	gold *core.LabeledSequence
}

func (s *RegistrySuite) SetupTest() {
	var err error
	s.gold, err = core.NewSegmented(
		[]string{"New", "York", "Times", "said", "it", "."},
		[]core.Segment{{Start: 0, End: 2, Label: labelA}, {Start: 3, End: 5, Label: labelB}},
	)
	s.Require().NoError(err)

	s.dict, err = atomic.NewDictionary(2)
	s.Require().NoError(err)
	s.reg, err = registry.NewDefault(2, s.dict, registry.WithMaxMemory(3))
	s.Require().NoError(err)
	s.Require().True(s.reg.RequiresTraining())
	s.Require().NoError(s.reg.Train(s.gold))
	s.dict.Freeze()
	s.Require().False(s.reg.RequiresTraining())
}

func (s *RegistrySuite) collectGold() []core.Feature {
	var out []core.Feature
	for f := range s.reg.Gold(s.gold) {
		out = append(out, f)
	}

	return out
}

// TestGoldStaysInsideSegments: no retained feature spans both segments.
func (s *RegistrySuite) TestGoldStaysInsideSegments() {
	fs := s.collectGold()
	s.Require().NotEmpty(fs)
	for _, f := range fs {
		inA := f.Start >= 0 && f.End <= 2
		inB := f.Start >= 3 && f.End <= 5
		s.True(inA || inB, "%s spans segments", f)
		if inA {
			s.Equal(labelA, f.Label, "%s", f)
		} else {
			s.Equal(labelB, f.Label, "%s", f)
		}
		s.True(registry.Retain(s.gold, &f))
	}
}

// TestGoldFamilies spots the label-scoped families on their segments.
func (s *RegistrySuite) TestGoldFamilies() {
	type seen struct {
		name  string
		label int
		prev  int
		b     core.Boundary
	}
	got := make(map[seen]bool)
	for _, f := range s.collectGold() {
		got[seen{f.Name, f.Label, f.PrevLabel, f.Boundary}] = true
	}
	a := core.Boundary{Start: 0, End: 2}
	b := core.Boundary{Start: 3, End: 5}

	s.True(got[seen{"start", labelA, core.NoLabel, a}])
	s.True(got[seen{"end", labelB, core.NoLabel, b}])
	s.True(got[seen{"prior", labelA, core.NoLabel, a}])
	s.True(got[seen{"prior", labelB, core.NoLabel, b}])
	s.True(got[seen{"edge", labelB, labelA, b}])
	s.True(got[seen{"len", labelA, core.NoLabel, a}])
	s.False(got[seen{"start", labelB, core.NoLabel, b}])
	s.False(got[seen{"edge", labelB, labelB, b}])
	s.False(got[seen{"prior", labelB, core.NoLabel, a}])
}

// TestScanContainment checks every unconstrained boundary against the
// sequence and the registry's gap.
func (s *RegistrySuite) TestScanContainment() {
	n := s.gold.Len()
	count := 0
	for f := range s.reg.All(s.gold) {
		s.Require().True(f.Within(n), "%s", f)
		s.Require().LessOrEqual(f.Len(), s.reg.MaxBoundaryGap(), "%s", f)
		count++
	}
	s.Positive(count)
}

// TestScanIsRepeatable: two scans of one sequence give identical streams.
func (s *RegistrySuite) TestScanIsRepeatable() {
	var first, second []core.Feature
	for f := range s.reg.All(s.gold) {
		first = append(first, f)
	}
	for f := range s.reg.All(s.gold) {
		second = append(second, f)
	}
	s.Equal(first, second)
}

// TestScanSegmentClosesBoundary: direct mode reports the known segment.
func (s *RegistrySuite) TestScanSegmentClosesBoundary() {
	count := 0
	for f := range s.reg.Segment(s.gold, 2, 5) {
		s.Equal(core.Boundary{Start: 3, End: 5}, f.Boundary, "%s", f)
		count++
	}
	s.Positive(count)
	s.False(s.reg.HasNext())
}

// TestGoldIsRepeatable: a gold scan yields the same stream again after an
// unconstrained scan has reused the registry, with candidate and windowed
// families running in direct segment mode.
func (s *RegistrySuite) TestGoldIsRepeatable() {
	for end := 0; end < s.gold.Len(); end++ {
		for start := max(0, end-3); start <= end; start++ {
			s.Require().NoError(s.gold.AddCandidate(start, end))
		}
	}
	dict, err := atomic.NewDictionary(2)
	s.Require().NoError(err)
	r, err := registry.NewDefault(2, dict,
		registry.WithMaxMemory(3),
		registry.WithCandidates(),
		registry.WithWindowed(window.MustNew("span", 0, true, 1, false, window.WithMinLength(2))),
	)
	s.Require().NoError(err)
	s.Require().NoError(r.Train(s.gold))
	dict.Freeze()

	gold := func() []core.Feature {
		var out []core.Feature
		for f := range r.Gold(s.gold) {
			out = append(out, f)
		}
		return out
	}
	first := gold()
	s.Require().NotEmpty(first)

	all := 0
	for range r.All(s.gold) {
		all++
	}
	s.Greater(all, len(first))

	s.Equal(first, gold())

	families := make(map[string]bool)
	for _, f := range first {
		families[r.FamilyName(f.Family)] = true
		s.True(registry.Retain(s.gold, &f), "%s", f)
	}
	s.True(families["candidate"])
	s.True(families["length"])
}

func (s *RegistrySuite) TestFamilies() {
	s.Equal(7, s.reg.NumFamilies())
	s.Equal("start", s.reg.FamilyName(0))
	s.Equal("length", s.reg.FamilyName(6))
	s.True(s.reg.Retained(2))
	s.True(s.reg.Retained(3))
	s.False(s.reg.Retained(4))
	s.Equal(3, s.reg.MaxBoundaryGap())
	s.Equal(2, s.reg.NumLabels())
}

func TestRegistrySuite(t *testing.T) {
	suite.Run(t, new(RegistrySuite))
}

// TestReverseRegistrationOrder drains the last family first.
func TestReverseRegistrationOrder(t *testing.T) {
	t.Parallel()

	r, err := registry.New(1)
	require.NoError(t, err)

	prior, err := atomic.NewClassPrior(1)
	require.NoError(t, err)
	pg, err := generator.NewPosition(prior, core.Exact)
	require.NoError(t, err)
	idx, err := r.Add("prior", generator.NewEachPosition(pg), false)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	sl, err := generator.NewSegmentLength(2)
	require.NoError(t, err)
	idx, err = r.Add("length", generator.NewEachPosition(sl), false)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 2, r.MaxBoundaryGap())

	var families []int
	for f := range r.All(core.NewSequence([]string{"a", "b"})) {
		families = append(families, f.Family)
	}
	assert.Equal(t, []int{1, 1, 1, 0, 0}, families)

	assert.False(t, r.Scan(core.NewSequence(nil)))
	assert.False(t, r.HasNext())
}

// TestRetain covers each consistency rule.
func TestRetain(t *testing.T) {
	t.Parallel()

	seg, err := core.FromLabels([]string{"a", "b", "c", "d", "e", "f"}, []int{0, 0, 0, 1, 1, 1})
	require.NoError(t, err)

	cases := []struct {
		name string
		f    core.Feature
		want bool
	}{
		{"exact segment", core.Feature{Label: 0, PrevLabel: -1, Boundary: core.Boundary{Start: 0, End: 2}}, true},
		{"wrong label", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 0, End: 2}}, false},
		{"no label", core.Feature{Label: -1, PrevLabel: -1, Boundary: core.Boundary{Start: 0, End: 2}}, false},
		{"spans both", core.Feature{Label: 0, PrevLabel: -1, Boundary: core.Boundary{Start: 2, End: 3, StartOpen: true, EndOpen: true}}, false},
		{"open inside", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 4, End: 4, StartOpen: true, EndOpen: true}}, true},
		{"closed start off", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 4, End: 5}}, false},
		{"open start", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 4, End: 5, StartOpen: true}}, true},
		{"closed end off", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 3, End: 4}}, false},
		{"open end", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 3, End: 4, EndOpen: true}}, true},
		{"prev matches", core.Feature{Label: 1, PrevLabel: 0, Boundary: core.Boundary{Start: 3, End: 5}}, true},
		{"prev differs", core.Feature{Label: 1, PrevLabel: 1, Boundary: core.Boundary{Start: 3, End: 5}}, false},
		{"prev on first", core.Feature{Label: 0, PrevLabel: 0, Boundary: core.Boundary{Start: 0, End: 2}}, false},
		{"outside", core.Feature{Label: 1, PrevLabel: -1, Boundary: core.Boundary{Start: 5, End: 6}}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, registry.Retain(seg, &tc.f), tc.name)
	}
}

// TestDefaultContainment runs every optional family over short sequences.
func TestDefaultContainment(t *testing.T) {
	t.Parallel()

	dict, err := atomic.NewDictionary(3)
	require.NoError(t, err)
	r, err := registry.NewDefault(3, dict,
		registry.WithMaxMemory(4),
		registry.WithCandidates(),
		registry.WithWindowed(
			window.MustNew("span", 0, true, 1, false, window.WithMinLength(2)),
			window.MustNew("head", 0, true, 1, true, window.WithMinLength(2)),
		),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, r.NumFamilies())
	assert.Equal(t, "regex.W.span", r.FamilyName(7))
	assert.Equal(t, 4, r.MaxBoundaryGap())

	words := []string{"Mr", ".", "Smith", "paid", "$", "1,000", "in", "2019"}
	for n := 0; n <= len(words); n++ {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i % 3
		}
		seq, err := core.FromLabels(words[:n], labels)
		require.NoError(t, err)
		for end := 0; end < n; end++ {
			for start := max(0, end-5); start <= end; start++ {
				require.NoError(t, seq.AddCandidate(start, end))
			}
		}
		require.NoError(t, r.Train(seq))
		for f := range r.All(seq) {
			require.True(t, f.Within(n), "n=%d %s", n, f)
			require.LessOrEqual(t, f.Len(), r.MaxBoundaryGap(), "n=%d %s", n, f)
		}
	}
}

func TestConstructorErrors(t *testing.T) {
	t.Parallel()

	_, err := registry.New(0)
	require.ErrorIs(t, err, registry.ErrNoLabels)

	r, err := registry.New(1)
	require.NoError(t, err)
	_, err = r.Add("nil", nil, false)
	require.ErrorIs(t, err, registry.ErrNilGenerator)

	r, err = registry.New(1, registry.WithMaxMemory(5))
	require.NoError(t, err)
	assert.Equal(t, 5, r.MaxBoundaryGap(), "gap starts at max memory")

	_, err = registry.NewDefault(2, nil)
	require.ErrorIs(t, err, registry.ErrNilDictionary)

	dict, err := atomic.NewDictionary(2)
	require.NoError(t, err)
	_, err = registry.NewDefault(2, dict, registry.WithWindows(window.MustNew("", 0, true, 2, true)))
	require.ErrorIs(t, err, window.ErrUnsupportedWindow)
	_, err = registry.NewDefault(2, dict, registry.WithPatterns(atomic.Pattern{Name: "bad", Expr: "("}))
	require.ErrorIs(t, err, atomic.ErrBadPattern)

	assert.Panics(t, func() { registry.WithMaxMemory(0) })
	assert.Panics(t, func() { registry.WithLogger(nil) })
}

func TestRegistryLogsFamilies(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	dict, err := atomic.NewDictionary(2)
	require.NoError(t, err)
	_, err = registry.NewDefault(2, dict, registry.WithLogger(log))
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 7, strings.Count(out, "feature family registered"))
	assert.Contains(t, out, "name=edge")
	assert.Contains(t, out, "retain=true")
}
