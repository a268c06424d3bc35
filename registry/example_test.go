package registry_test

import (
	"fmt"

	"github.com/katalvlaran/segfeat/atomic"
	"github.com/katalvlaran/segfeat/core"
	"github.com/katalvlaran/segfeat/generator"
	"github.com/katalvlaran/segfeat/registry"
)

// ExampleRegistry_Gold registers a label prior and a segment-length family,
// then lists the features consistent with the gold segments [0,1]=0 and
// [2,2]=1. The family registered last is scanned first.
func ExampleRegistry_Gold() {
	seq, err := core.FromLabels([]string{"a", "b", "c"}, []int{0, 0, 1})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	r, _ := registry.New(2)
	prior, _ := atomic.NewClassPrior(2)
	pg, _ := generator.NewPosition(prior, core.EndOpen)
	_, _ = r.Add("prior", generator.NewEachPosition(pg), true)

	sl, _ := generator.NewSegmentLength(2)
	el, _ := generator.NewEachLabel(sl, 2)
	_, _ = r.Add("length", generator.NewEachPosition(el), false)

	for f := range r.Gold(seq) {
		fmt.Println(f.Family, f)
	}
	// Output:
	// 1 len#2 y=0 yp=-1 [0,1]
	// 0 prior#0 y=0 yp=-1 [0,1]
	// 1 len#1 y=1 yp=-1 [2,2]
	// 0 prior#1 y=1 yp=-1 [2,2]
}
