// Package genome: betweenness predicates over the clockwise cycle.
//
// Between and NotBetween are the legality gate for every rearrangement
// operation and the membership test that identifies the affected
// segment.
//
// Trade-off (documented contract): instead of walking the cycle per
// query, each gene's clockwise offset from the anchor is cached in a
// positional index. The index is invalidated by structural mutation
// (Link/Unlink) and rebuilt lazily on the next query in O(n); each query
// is then O(1) modular arithmetic. Search workloads issue O(n³)
// betweenness queries against an unchanged genome per expansion, so
// amortized cost is far below the O(segment) walk the recursive
// definition implies. Correctness, not constant time, is the contract.
//
// Both predicates are defined only on fully-linked genomes; behavior on
// a mid-surgery genome is unspecified (the walk-based rebuild fails with
// ErrUnlinkedGene rather than fabricating an answer).
package genome

// Between reports whether z lies within the clockwise segment from x to
// y inclusive: true iff z == x, z == y, or z is on the clockwise path
// from x before reaching y.
//
// Degenerate case: Between(x, x, z) holds only for z == x (the segment
// is {x}, never the whole genome).
//
// Errors: ErrGeneNotFound if any argument is absent; ErrUnlinkedGene if
// the positional index cannot be rebuilt on a partial genome.
//
// Complexity: O(1) per query; O(n) index rebuild after a mutation.
func (g *Genome) Between(x, y, z GeneID) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	px, py, pz, err := g.positions(x, y, z)
	if err != nil {
		return false, err
	}

	n := len(g.orient)
	// Clockwise offsets measured from x: z is inside iff it is reached no
	// later than y.
	dy := (py - px + n) % n
	dz := (pz - px + n) % n

	return dz <= dy, nil
}

// NotBetween reports whether z lies strictly outside the clockwise
// segment from x to y: z is neither x nor y, and the clockwise walk from
// x does not encounter z before completing the segment. When x == y the
// segment is trivial, so every other gene is outside it.
//
// For pairwise-distinct x, y, z exactly one of Between / NotBetween
// holds.
//
// Errors: as Between.
//
// Complexity: O(1) per query; O(n) index rebuild after a mutation.
func (g *Genome) NotBetween(x, y, z GeneID) (bool, error) {
	in, err := g.Between(x, y, z)
	if err != nil {
		return false, err
	}

	// z == x or z == y both satisfy Between, so the complement already
	// excludes the endpoints.
	return !in, nil
}

// positions returns the clockwise offsets of x, y, z from the anchor,
// rebuilding the positional index if a mutation invalidated it.
// Callers hold g.mu (read side); the index itself is guarded by posMu.
func (g *Genome) positions(x, y, z GeneID) (int, int, int, error) {
	g.posMu.Lock()
	defer g.posMu.Unlock()

	if !g.posFresh {
		if err := g.rebuildPositionsLocked(); err != nil {
			return 0, 0, 0, err
		}
	}

	px, ok := g.pos[x]
	if !ok {
		return 0, 0, 0, ErrGeneNotFound
	}
	py, ok := g.pos[y]
	if !ok {
		return 0, 0, 0, ErrGeneNotFound
	}
	pz, ok := g.pos[z]
	if !ok {
		return 0, 0, 0, ErrGeneNotFound
	}

	return px, py, pz, nil
}

// rebuildPositionsLocked walks the cycle once from the anchor and
// records each gene's clockwise offset. Callers hold posMu and at least
// the read side of g.mu.
func (g *Genome) rebuildPositionsLocked() error {
	n := len(g.orient)
	idx := make(map[GeneID]int, n)
	cur := g.anchor
	var i int
	for i = 0; i < n; i++ {
		idx[cur] = i
		next, ok := g.succ[cur]
		if !ok {
			return ErrUnlinkedGene
		}
		cur = next
	}
	if cur != g.anchor || len(idx) != n {
		return ErrBrokenCycle
	}

	g.pos = idx
	g.posFresh = true

	return nil
}

// invalidatePositions marks the index stale. Callers hold the write side
// of g.mu, which excludes every concurrent reader of posFresh.
func (g *Genome) invalidatePositions() {
	g.posFresh = false
}
