package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segfeat/core"
)

// TestBoundaryKind maps openness flags to kinds and interval notation.
func TestBoundaryKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		b    core.Boundary
		kind core.Kind
		str  string
	}{
		{core.Boundary{Start: 1, End: 2}, core.Exact, "[1,2]"},
		{core.Boundary{Start: 1, End: 2, EndOpen: true}, core.EndOpen, "[1,2)"},
		{core.Boundary{Start: 1, End: 2, StartOpen: true}, core.StartOpen, "(1,2]"},
		{core.Boundary{Start: 1, End: 2, StartOpen: true, EndOpen: true}, core.BothOpen, "(1,2)"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, tc.b.Kind())
		assert.Equal(t, tc.str, tc.b.String())
		assert.Equal(t, 2, tc.b.Len())
	}
	assert.Equal(t, "end-open", core.EndOpen.String())
	assert.Equal(t, "kind(9)", core.Kind(9).String())
}

func TestBoundaryCheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, core.Boundary{Start: 0, End: 4}.Check(5))
	assert.ErrorIs(t, core.Boundary{Start: 0, End: 5}.Check(5), core.ErrBoundaryOutOfRange)
	assert.ErrorIs(t, core.Boundary{Start: -1, End: 0}.Check(5), core.ErrBoundaryOutOfRange)
	assert.ErrorIs(t, core.Boundary{Start: 3, End: 2}.Check(5), core.ErrBoundaryOutOfRange)
	assert.False(t, core.Boundary{}.Within(0))
}

func TestFeatureResetAndKey(t *testing.T) {
	t.Parallel()

	f := core.Feature{ID: 3, Name: "x", Label: 1, PrevLabel: 0, Family: 2}
	assert.Equal(t, core.Key{Family: 2, ID: 3, Label: 1, PrevLabel: 0}, f.Key())
	f.Reset()
	assert.Equal(t, core.NoLabel, f.Label)
	assert.Equal(t, core.NoLabel, f.PrevLabel)
	assert.Zero(t, f.ID)
	assert.Empty(t, f.Name)
}

// TestNewSegmented accepts only in-order tilings.
func TestNewSegmented(t *testing.T) {
	t.Parallel()

	tokens := []string{"a", "b", "c", "d"}
	seq, err := core.NewSegmented(tokens, []core.Segment{{0, 1, 2}, {2, 2, 0}, {3, 3, 1}})
	require.NoError(t, err)
	assert.Equal(t, 3, seq.NumSegments())
	assert.Equal(t, []int{0, 0, 1, 2}, []int{seq.SegmentID(0), seq.SegmentID(1), seq.SegmentID(2), seq.SegmentID(3)})
	assert.Equal(t, 2, seq.Label(1))
	assert.Equal(t, 2, seq.SegmentStart(1))
	assert.Equal(t, 3, seq.SegmentEnd(2))
	assert.Equal(t, 1, seq.SegmentLabel(2))

	bad := [][]core.Segment{
		{{0, 1, 0}},                       // short
		{{0, 1, 0}, {1, 3, 0}},            // overlap
		{{0, 0, 0}, {2, 3, 0}},            // gap
		{{0, 1, 0}, {3, 2, 0}, {2, 3, 0}}, // reversed
		{{0, 4, 0}},                       // past the end
	}
	for _, segs := range bad {
		_, err := core.NewSegmented(tokens, segs)
		assert.ErrorIs(t, err, core.ErrBadSegmentation, "%v", segs)
	}
}

func TestFromLabels(t *testing.T) {
	t.Parallel()

	seq, err := core.FromLabels([]string{"a", "b", "c", "d", "e"}, []int{1, 1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []core.Segment{{0, 1, 1}, {2, 3, 0}, {4, 4, 1}}, seq.Segments())

	_, err = core.FromLabels([]string{"a"}, nil)
	require.ErrorIs(t, err, core.ErrLengthMismatch)
}

func TestUnsegmentedSequence(t *testing.T) {
	t.Parallel()

	seq := core.NewSequence([]string{"a", "b"})
	assert.Equal(t, 2, seq.Len())
	assert.Equal(t, "b", seq.Token(1))
	assert.Equal(t, core.NoLabel, seq.Label(0))
	assert.Equal(t, -1, seq.SegmentID(0))
	assert.Zero(t, seq.NumSegments())
}

// TestCandidates keeps starts per end sorted and unique.
func TestCandidates(t *testing.T) {
	t.Parallel()

	seq := core.NewSequence([]string{"a", "b", "c", "d"})
	require.NoError(t, seq.AddCandidate(2, 3))
	require.NoError(t, seq.AddCandidate(0, 3))
	require.NoError(t, seq.AddCandidate(2, 3))
	require.NoError(t, seq.AddCandidate(1, 3))
	require.ErrorIs(t, seq.AddCandidate(2, 4), core.ErrBoundaryOutOfRange)
	require.ErrorIs(t, seq.AddCandidate(3, 2), core.ErrBoundaryOutOfRange)

	require.Equal(t, 3, seq.NumCandidatesEndingAt(3))
	for i, want := range []int{0, 1, 2} {
		assert.Equal(t, want, seq.CandidateSegmentStart(3, i))
	}
	assert.Zero(t, seq.NumCandidatesEndingAt(1))
}
