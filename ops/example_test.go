package ops_test

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
)

// ExampleApply inverts a segment, prints the result, then undoes it with
// the returned algebraic inverse.
func ExampleApply() {
	g, _ := genome.New([]genome.Gene{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	})

	inv, err := ops.Apply(g, ops.InvertOp("B", "C"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Signature(false))

	// The inverse restores the original genome.
	if _, err = ops.Apply(g, inv); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(g.Signature(false))
	// Output:
	// A+ C- B- D+
	// A+ B+ C+ D+
}

// ExampleProfile_PlanCost totals a plan under the two named accountings.
func ExampleProfile_PlanCost() {
	plan := []ops.Operation{
		ops.InvertOp("B", "C"),
		ops.TransposeOp("D", "D", "B"),
	}

	fmt.Println(ops.Monolithic.PlanCost(plan))
	fmt.Println(ops.Decomposed.PlanCost(plan))
	// Output:
	// 3
	// 21
}
