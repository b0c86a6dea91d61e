package search_test

import (
	"testing"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
	"github.com/katalvlaran/genecycle/search"
	"github.com/stretchr/testify/require"
)

// mkGenome builds a genome of all-Normal genes in clockwise order.
func mkGenome(t *testing.T, ids ...genome.GeneID) *genome.Genome {
	t.Helper()
	order := make([]genome.Gene, len(ids))
	for i, id := range ids {
		order[i] = genome.Gene{ID: id, Orient: genome.Normal}
	}
	g, err := genome.New(order)
	require.NoError(t, err)

	return g
}

func TestBreakpointBound_ZeroAtGoal(t *testing.T) {
	goal := mkGenome(t, "A", "B", "C", "D")
	est, err := search.NewBreakpointBound(goal, ops.Monolithic)
	require.NoError(t, err)

	h, err := est(mkGenome(t, "A", "B", "C", "D"))
	require.NoError(t, err)
	require.EqualValues(t, 0, h)

	// Rotations are the same genome: still zero.
	h, err = est(mkGenome(t, "C", "D", "A", "B"))
	require.NoError(t, err)
	require.EqualValues(t, 0, h)
}

func TestBreakpointBound_SingleInversionScenario(t *testing.T) {
	// Goal is start with segment B..C inverted: two breakpoints, and the
	// bound must be exactly the true cost of 1 inversion.
	start := mkGenome(t, "A", "B", "C", "D")
	goal := mkGenome(t, "A", "B", "C", "D")
	_, err := ops.Apply(goal, ops.InvertOp("B", "C"))
	require.NoError(t, err)

	est, err := search.NewBreakpointBound(goal, ops.Monolithic)
	require.NoError(t, err)
	h, err := est(start)
	require.NoError(t, err)
	require.EqualValues(t, 1, h)
}

// TestBreakpointBound_Admissible verifies h ≤ true cost along optimal
// plans: every single operation from the goal must score at most its own
// cost.
func TestBreakpointBound_Admissible(t *testing.T) {
	goal := mkGenome(t, "A", "B", "C", "D", "E")
	est, err := search.NewBreakpointBound(goal, ops.Monolithic)
	require.NoError(t, err)

	cases := []ops.Operation{
		ops.InvertOp("B", "D"),
		ops.InvertSingleOp("C"),
		ops.TransposeOp("B", "C", "E"),
		ops.TransvertOp("C", "D", "A"),
	}
	for _, op := range cases {
		g := mkGenome(t, "A", "B", "C", "D", "E")
		inv, aerr := ops.Apply(g, op)
		require.NoError(t, aerr)

		// One application of inv restores the goal, so the true remaining
		// cost from g is at most the cost of inv.
		h, herr := est(g)
		require.NoError(t, herr)
		require.LessOrEqualf(t, h, ops.Monolithic.Cost(inv.Kind), "h inadmissible after %s", op)
	}
}

func TestBreakpointBound_CustomWeights(t *testing.T) {
	// Expensive inversions: the cheapest repair rate becomes the
	// relocation's 2 cost / 3 breakpoints.
	goal := mkGenome(t, "A", "B", "C", "D")
	est, err := search.NewBreakpointBound(goal, ops.Weighted(10, 2))
	require.NoError(t, err)

	start := mkGenome(t, "A", "B", "C", "D")
	_, err = ops.Apply(start, ops.InvertOp("B", "C"))
	require.NoError(t, err)

	// Two breakpoints at rate 2/3: ceil(4/3) = 2.
	h, err := est(start)
	require.NoError(t, err)
	require.EqualValues(t, 2, h)
}

func TestBreakpointBound_Validation(t *testing.T) {
	goal := mkGenome(t, "A", "B", "C")

	_, err := search.NewBreakpointBound(nil, ops.Monolithic)
	require.ErrorIs(t, err, search.ErrNilGenome)

	_, err = search.NewBreakpointBound(goal, ops.Profile{Invert: 0, Transpose: 2, Transvert: 2})
	require.ErrorIs(t, err, search.ErrBadProfile)

	est, err := search.NewBreakpointBound(goal, ops.Monolithic)
	require.NoError(t, err)
	_, err = est(mkGenome(t, "A", "B", "Z"))
	require.ErrorIs(t, err, search.ErrGeneSetMismatch)
}
