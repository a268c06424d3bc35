package atomic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
)

func drain(src atomic.Source) []core.Feature {
	var out []core.Feature
	for src.HasNext() {
		var f core.Feature
		f.Reset()
		src.Next(&f)
		out = append(out, f)
	}

	return out
}

func labeled(t *testing.T, tokens []string, labels []int) *core.LabeledSequence {
	t.Helper()
	seq, err := core.FromLabels(tokens, labels)
	require.NoError(t, err)

	return seq
}

// TestLabelScopedSources checks where start, end, prior and edge fire.
func TestLabelScopedSources(t *testing.T) {
	t.Parallel()

	seq := core.NewSequence([]string{"a", "b", "c"})

	start, err := atomic.NewStart(2)
	require.NoError(t, err)
	assert.True(t, atomic.StartAt(start, seq, 0))
	fs := drain(start)
	require.Len(t, fs, 2)
	assert.Equal(t, "start", fs[0].Name)
	assert.Equal(t, []int{0, 1}, []int{fs[0].Label, fs[1].Label})
	assert.False(t, atomic.StartAt(start, seq, 1))
	assert.False(t, start.HasNext())

	end, err := atomic.NewEnd(2)
	require.NoError(t, err)
	assert.False(t, atomic.StartAt(end, seq, 1))
	assert.True(t, atomic.StartAt(end, seq, 2))
	assert.Len(t, drain(end), 2)

	prior, err := atomic.NewClassPrior(3)
	require.NoError(t, err)
	for pos := 0; pos < seq.Len(); pos++ {
		require.True(t, atomic.StartAt(prior, seq, pos))
		assert.Len(t, drain(prior), 3)
	}

	_, err = atomic.NewStart(0)
	require.ErrorIs(t, err, atomic.ErrNoLabels)
	_, err = atomic.NewEdge(0)
	require.ErrorIs(t, err, atomic.ErrNoLabels)
}

// TestEdgePairs enumerates every (prev, label) pair after the first segment.
func TestEdgePairs(t *testing.T) {
	t.Parallel()

	seq := core.NewSequence([]string{"a", "b", "c"})
	edge, err := atomic.NewEdge(2)
	require.NoError(t, err)

	assert.False(t, edge.Start(seq, -1, 0))
	assert.False(t, edge.Start(seq, 2, 2), "empty segment")
	assert.False(t, edge.Start(seq, 2, 1), "reversed segment")
	assert.False(t, edge.HasNext())
	require.True(t, edge.Start(seq, 0, 2))
	fs := drain(edge)
	require.Len(t, fs, 4)
	for i, f := range fs {
		assert.Equal(t, i, f.ID)
		assert.Equal(t, i/2, f.PrevLabel)
		assert.Equal(t, i%2, f.Label)
	}
	assert.False(t, edge.RequiresTraining())
}

// TestDictionaryCounts covers counting, lookups and freezing.
func TestDictionaryCounts(t *testing.T) {
	t.Parallel()

	d, err := atomic.NewDictionary(2)
	require.NoError(t, err)
	seq := labeled(t, []string{"Paris", "is", "Paris"}, []int{1, 0, 1})
	require.NoError(t, d.Train(seq))
	require.NoError(t, d.Add("Paris", 0))
	require.NoError(t, d.Add("ignored", 7))

	assert.Equal(t, 2, d.Len())
	assert.Equal(t, 2, d.Count("Paris", 1))
	assert.Equal(t, 1, d.Count("Paris", 0))
	assert.Equal(t, 3, d.Total("Paris"))
	assert.Equal(t, 0, d.Total("London"))
	assert.Equal(t, -1, d.ID("ignored"))
	assert.Equal(t, "Paris", d.Word(d.ID("Paris")))
	assert.Equal(t, []string{"Paris", "is"}, d.Words())

	d.Freeze()
	assert.True(t, d.Frozen())
	require.ErrorIs(t, d.Add("London", 0), atomic.ErrFrozen)
	require.ErrorIs(t, d.Train(seq), atomic.ErrFrozen)
}

// TestWordCutoff fires only labels seen more than cutoff times.
func TestWordCutoff(t *testing.T) {
	t.Parallel()

	d, err := atomic.NewDictionary(3)
	require.NoError(t, err)
	require.NoError(t, d.Add("Paris", 1))
	require.NoError(t, d.Add("Paris", 1))
	require.NoError(t, d.Add("Paris", 2))

	seq := core.NewSequence([]string{"in", "Paris"})
	w := atomic.NewWord(d, 1)
	assert.True(t, w.RequiresTraining())
	assert.False(t, atomic.StartAt(w, seq, 0), "unknown token")
	require.True(t, atomic.StartAt(w, seq, 1))
	fs := drain(w)
	require.Len(t, fs, 1)
	assert.Equal(t, d.ID("Paris"), fs[0].ID)
	assert.Equal(t, "Paris", fs[0].Name)
	assert.Equal(t, 1, fs[0].Label)

	all := atomic.NewWord(d, 0)
	require.True(t, atomic.StartAt(all, seq, 1))
	assert.Len(t, drain(all), 2)

	d.Freeze()
	assert.False(t, w.RequiresTraining())
	assert.Panics(t, func() { atomic.NewWord(nil, 0) })
}

// TestWordTrain counts the gold label at each position.
func TestWordTrain(t *testing.T) {
	t.Parallel()

	d, err := atomic.NewDictionary(2)
	require.NoError(t, err)
	w := atomic.NewWord(d, 0)
	seq := labeled(t, []string{"a", "b"}, []int{0, 1})
	for pos := 0; pos < seq.Len(); pos++ {
		require.NoError(t, w.Train(seq, pos))
	}
	assert.Equal(t, 1, d.Count("a", 0))
	assert.Equal(t, 1, d.Count("b", 1))
}

// TestRegexWholeSegment fires a pattern only when every token matches.
func TestRegexWholeSegment(t *testing.T) {
	t.Parallel()

	re, err := atomic.NewRegex(
		atomic.Pattern{Name: "cap", Expr: `[A-Z][a-z]+`},
		atomic.Pattern{Name: "digits", Expr: `\d+`},
		atomic.Pattern{Name: "word", Expr: `\w+`},
	)
	require.NoError(t, err)
	assert.Equal(t, 3, re.Len())

	seq := core.NewSequence([]string{"New", "York", "1999", "x!"})
	ids := func(prevPos, pos int) []int {
		var out []int
		re.Start(seq, prevPos, pos)
		for _, f := range drain(re) {
			assert.Equal(t, core.NoLabel, f.Label)
			out = append(out, f.ID)
		}
		return out
	}
	assert.Equal(t, []int{0, 2}, ids(-1, 1))
	assert.Equal(t, []int{1, 2}, ids(1, 2))
	assert.Equal(t, []int{2}, ids(0, 2))
	assert.Empty(t, ids(2, 3), "patterns are anchored to the whole token")
	assert.Empty(t, ids(3, 3), "empty segment")
}

func TestRegexDefaultsAndErrors(t *testing.T) {
	t.Parallel()

	re, err := atomic.NewRegex()
	require.NoError(t, err)
	assert.Equal(t, len(atomic.DefaultPatterns), re.Len())

	seq := core.NewSequence([]string{"foo@example.com"})
	require.True(t, atomic.StartAt(re, seq, 0))
	var names []string
	for _, f := range drain(re) {
		names = append(names, f.Name)
	}
	assert.Contains(t, names, "isEmailId")
	assert.NotContains(t, names, "isAllCapital")

	_, err = atomic.NewRegex(atomic.Pattern{Name: "bad", Expr: `(`})
	require.ErrorIs(t, err, atomic.ErrBadPattern)
	_, err = atomic.NewRegex(atomic.Pattern{Expr: `a`})
	require.ErrorIs(t, err, atomic.ErrBadPattern)
}
