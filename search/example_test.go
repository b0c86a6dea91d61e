package search_test

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
	"github.com/katalvlaran/genecycle/search"
)

// ExampleFindPlan recovers the single inversion separating two circular
// genomes under the default 2:1 weighting.
func ExampleFindPlan() {
	start, _ := genome.New([]genome.Gene{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	})
	goal, _ := genome.New([]genome.Gene{
		{ID: "A"},
		{ID: "C", Orient: genome.Inverted},
		{ID: "B", Orient: genome.Inverted},
		{ID: "D"},
	})

	plan, err := search.FindPlan(start, goal)
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}

	for _, s := range plan.Steps {
		fmt.Printf("%s cost %d\n", s.Op, s.Cost)
	}
	fmt.Println("total", plan.Cost)

	// Output:
	// Invert(B,C) cost 1
	// total 1
}

// ExampleFindPlan_decomposed prices the same plan under the micro-step
// accounting, where one inversion totals 7.
func ExampleFindPlan_decomposed() {
	start, _ := genome.New([]genome.Gene{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	})
	goal, _ := genome.New([]genome.Gene{
		{ID: "A"},
		{ID: "C", Orient: genome.Inverted},
		{ID: "B", Orient: genome.Inverted},
		{ID: "D"},
	})

	plan, err := search.FindPlan(start, goal, search.WithProfile(ops.Decomposed))
	if err != nil {
		fmt.Println("search failed:", err)
		return
	}
	fmt.Println("steps:", len(plan.Steps), "total:", plan.Cost)

	// Output:
	// steps: 1 total: 7
}
