package stepwise_test

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/stepwise"
)

// ExampleMachine walks an inversion through its micro-steps, printing
// the pending obligations as they are discharged.
func ExampleMachine() {
	g, _ := genome.New([]genome.Gene{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	})
	m, _ := stepwise.NewMachine(g)

	_ = m.BeginInvert("B", "C")
	fmt.Println(m.Phase(), "|", m.Pending())

	_ = m.UnlinkLeft()
	_ = m.UnlinkRight()
	_ = m.InvertSegment()
	fmt.Println(m.Phase(), "|", m.Pending())

	_ = m.InsertLinkLeft()
	_ = m.InsertLinkRight()
	_ = m.End()
	fmt.Println(m.Phase(), "|", g.Signature(false), "| cost", m.Cost())
	// Output:
	// inverting | unlink-left,unlink-right,insert-link-left,insert-link-right,invert-segment
	// inverting | insert-link-left,insert-link-right
	// idle | A+ C- B- D+ | cost 7
}
