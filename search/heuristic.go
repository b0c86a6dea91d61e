// Package search: the breakpoint lower bound.
//
// Admissibility argument. Encode each gene as two extremities (tail,
// head); an adjacency between consecutive genes is the unordered pair of
// the facing extremities, so a segment that is reversed AND flipped
// keeps every internal adjacency intact. An inversion cuts the cycle in
// 2 places and can therefore repair at most 2 broken adjacencies; a
// transposition or transversion cuts in 3 places and repairs at most 3.
// With b adjacencies of the current genome absent from the goal
// (breakpoints), any plan costs at least
//
//	b × min(wInvert/2, wTranspose/3, wTransvert/3)
//
// and since plan costs are integral the ceiling is still a lower bound.
// At the goal b = 0, so the estimate vanishes exactly when it must.
//
// The pair set is unordered, so a genome whose reading direction is
// mirrored against the goal also scores b = 0; the bound is then merely
// weak, never inadmissible, regardless of the mirror-equivalence choice.
package search

import (
	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
)

// NewBreakpointBound builds the admissible breakpoint estimator for the
// given goal genome under the given cost profile.
//
// Errors: ErrNilGenome; ErrBadProfile for non-positive costs. The
// returned estimator reports ErrGeneSetMismatch when queried with a
// genome over a different gene set.
//
// Complexity: O(n) construction; O(n) per estimate.
func NewBreakpointBound(goal *genome.Genome, p ops.Profile) (Estimator, error) {
	if goal == nil {
		return nil, ErrNilGenome
	}
	if p.Invert <= 0 || p.Transpose <= 0 || p.Transvert <= 0 {
		return nil, ErrBadProfile
	}

	// Stable gene indexing and the goal's adjacency set, built once.
	genes := goal.Genes()
	index := make(map[genome.GeneID]int, len(genes))
	var i int
	for i = range genes {
		index[genes[i].ID] = i
	}
	goalAdj := make(map[uint64]struct{}, len(genes))
	for i = range genes {
		u := genes[i]
		v := genes[(i+1)%len(genes)]
		goalAdj[adjacencyKey(index[u.ID], u.Orient, index[v.ID], v.Orient)] = struct{}{}
	}

	// Cheapest cost per repaired breakpoint: the minimum of wI/2, wT/3,
	// wV/3, kept as an exact fraction (num/den) to avoid FP drift.
	num, den := p.Invert, int64(2)
	if p.Transpose*den < num*3 {
		num, den = p.Transpose, 3
	}
	if p.Transvert*den < num*3 {
		num, den = p.Transvert, 3
	}

	return func(cur *genome.Genome) (int64, error) {
		if cur == nil {
			return 0, ErrNilGenome
		}
		order := cur.Genes()
		if len(order) != len(genes) {
			return 0, ErrGeneSetMismatch
		}

		var b int64
		var j int
		for j = range order {
			u := order[j]
			v := order[(j+1)%len(order)]
			iu, ok := index[u.ID]
			if !ok {
				return 0, ErrGeneSetMismatch
			}
			iv, ok := index[v.ID]
			if !ok {
				return 0, ErrGeneSetMismatch
			}
			if _, conserved := goalAdj[adjacencyKey(iu, u.Orient, iv, v.Orient)]; !conserved {
				b++
			}
		}

		// ceil(b·num/den): plan costs are integral, so rounding up is safe.
		return (b*num + den - 1) / den, nil
	}, nil
}

// adjacencyKey encodes the unordered extremity pair facing each other
// between u and its clockwise neighbor v. Extremities: tail = 2·idx,
// head = 2·idx+1; a Normal gene faces its head clockwise, an Inverted
// gene its tail.
func adjacencyKey(iu int, ou genome.Orientation, iv int, ov genome.Orientation) uint64 {
	right := uint64(2*iu) + 1 // head
	if ou == genome.Inverted {
		right = uint64(2 * iu) // tail
	}
	left := uint64(2 * iv) // tail
	if ov == genome.Inverted {
		left = uint64(2*iv) + 1 // head
	}
	if right > left {
		right, left = left, right
	}

	return right<<32 | left
}
