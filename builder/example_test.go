package builder_test

import (
	"fmt"

	"github.com/katalvlaran/segfeat/builder"
)

// ExampleBuildCorpus builds one gold sequence from per-token labels and
// proposes its gold segments as candidates.
func ExampleBuildCorpus() {
	c, err := builder.BuildCorpus(2, nil,
		builder.Labels([]string{"New", "York", "said"}, []int{0, 0, 1}),
		builder.GoldCandidates(),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	seq := c.Sequences[0]
	for _, s := range seq.Segments() {
		fmt.Printf("[%d,%d] y=%d candidates@end=%d\n", s.Start, s.End, s.Label, seq.NumCandidatesEndingAt(s.End))
	}
	// Output:
	// [0,1] y=0 candidates@end=1
	// [2,2] y=1 candidates@end=1
}
