package genome_test

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
)

// ExampleNew builds a four-gene circular genome and prints its canonical
// clockwise reading.
func ExampleNew() {
	g, err := genome.New([]genome.Gene{
		{ID: "B", Orient: genome.Normal},
		{ID: "C", Orient: genome.Inverted},
		{ID: "D", Orient: genome.Normal},
		{ID: "A", Orient: genome.Normal},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// The signature always starts at the smallest gene ID, so any
	// rotation of the same cycle prints identically.
	fmt.Println(g.Signature(false))
	// Output:
	// A+ B+ C- D+
}

// ExampleGenome_Between checks segment membership on the clockwise cycle
// A→B→C→D→A.
func ExampleGenome_Between() {
	g, _ := genome.New([]genome.Gene{
		{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"},
	})

	in, _ := g.Between("B", "D", "C")
	out, _ := g.NotBetween("B", "D", "A")
	fmt.Println(in, out)
	// Output:
	// true true
}
