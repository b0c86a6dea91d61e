// Package genome: accessors, mutation primitives, validation, cloning.
//
// Accessors take the read lock and never mutate. The mutation primitives
// (Link, Unlink, Flip) are deliberately low-level: they perform one link
// surgery each, may leave the genome temporarily partial, and mark the
// positional index stale. Higher layers (ops, stepwise) compose them
// into invariant-preserving operations and re-check with Validate.
package genome

// Len returns the number of genes in the genome.
// Complexity: O(1).
func (g *Genome) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.orient)
}

// Has reports whether the gene exists in this genome.
// Complexity: O(1).
func (g *Genome) Has(id GeneID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.orient[id]

	return ok
}

// Succ returns the gene immediately clockwise of x.
// Returns ErrGeneNotFound if x is absent, ErrUnlinkedGene if x's
// clockwise link is currently cut.
// Complexity: O(1).
func (g *Genome) Succ(x GeneID) (GeneID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.succLocked(x)
}

// Pred returns the gene immediately counterclockwise of x.
// Returns ErrGeneNotFound if x is absent, ErrUnlinkedGene if x's
// counterclockwise link is currently cut.
// Complexity: O(1).
func (g *Genome) Pred(x GeneID) (GeneID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.orient[x]; !ok {
		return "", ErrGeneNotFound
	}
	p, ok := g.pred[x]
	if !ok {
		return "", ErrUnlinkedGene
	}

	return p, nil
}

// Orientation returns the reading direction of x.
// Complexity: O(1).
func (g *Genome) Orientation(x GeneID) (Orientation, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	o, ok := g.orient[x]
	if !ok {
		return Normal, ErrGeneNotFound
	}

	return o, nil
}

// Genes returns the genes in clockwise order starting from the anchor
// (the smallest gene ID), making iteration deterministic.
//
// Contract: the genome must be fully linked. On a partially-unlinked
// genome the walk stops at the first cut link and the slice is truncated.
//
// Complexity: O(n).
func (g *Genome) Genes() []Gene {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Gene, 0, len(g.orient))
	cur := g.anchor
	var i int
	for i = 0; i < len(g.orient); i++ {
		out = append(out, Gene{ID: cur, Orient: g.orient[cur]})
		next, ok := g.succ[cur]
		if !ok {
			break // truncated: mid-surgery genome
		}
		cur = next
	}

	return out
}

// Segment returns the gene IDs of the maximal clockwise run from x to y
// inclusive. Well-defined for x == y (the single-gene segment {x}, never
// the whole genome).
//
// Errors: ErrGeneNotFound if x or y is absent; ErrUnlinkedGene if the
// walk hits a cut link; ErrBrokenCycle if y is not reached within n
// steps (only possible on a corrupted genome).
//
// Complexity: O(segment length).
func (g *Genome) Segment(x, y GeneID) ([]GeneID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.orient[x]; !ok {
		return nil, ErrGeneNotFound
	}
	if _, ok := g.orient[y]; !ok {
		return nil, ErrGeneNotFound
	}

	members := make([]GeneID, 0, 4)
	cur := x
	var i int
	for i = 0; i < len(g.orient); i++ {
		members = append(members, cur)
		if cur == y {
			return members, nil
		}
		next, ok := g.succ[cur]
		if !ok {
			return nil, ErrUnlinkedGene
		}
		cur = next
	}

	return nil, ErrBrokenCycle
}

// Link sets b immediately clockwise of a: succ(a) = b, pred(b) = a.
//
// This is raw surgery: the previous partners of a and b keep their stale
// entries until a subsequent Link overwrites them, so a sequence of
// Links may pass through partial states. The positional index is marked
// stale.
//
// Complexity: O(1).
func (g *Genome) Link(a, b GeneID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.orient[a]; !ok {
		return ErrGeneNotFound
	}
	if _, ok := g.orient[b]; !ok {
		return ErrGeneNotFound
	}

	g.succ[a] = b
	g.pred[b] = a
	g.invalidatePositions()

	return nil
}

// Unlink cuts the clockwise link leaving a: succ(a) and the matching
// pred entry of the old target are removed. The genome is partial until
// the surgery completes. The positional index is marked stale.
//
// Errors: ErrGeneNotFound if a is absent; ErrUnlinkedGene if a's link is
// already cut.
//
// Complexity: O(1).
func (g *Genome) Unlink(a GeneID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.orient[a]; !ok {
		return ErrGeneNotFound
	}
	t, ok := g.succ[a]
	if !ok {
		return ErrUnlinkedGene
	}

	delete(g.succ, a)
	if g.pred[t] == a {
		delete(g.pred, t)
	}
	g.invalidatePositions()

	return nil
}

// Flip toggles the orientation of x. Orientation is not positional, so
// the positional index stays fresh.
// Complexity: O(1).
func (g *Genome) Flip(x GeneID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	o, ok := g.orient[x]
	if !ok {
		return ErrGeneNotFound
	}
	g.orient[x] = o.Flip()

	return nil
}

// Validate checks the single-cycle invariant:
//  1. every gene has exactly one successor and one predecessor,
//  2. succ and pred are mutually consistent,
//  3. walking succ from the anchor visits all n genes and returns home.
//
// Returns nil on a well-formed genome, ErrBrokenCycle (or
// ErrUnlinkedGene for cut links) otherwise.
//
// Complexity: O(n).
func (g *Genome) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.orient)
	if len(g.succ) != n || len(g.pred) != n {
		return ErrUnlinkedGene
	}

	// Mutual consistency of the two link maps.
	var a, b GeneID
	for a, b = range g.succ {
		if g.pred[b] != a {
			return ErrBrokenCycle
		}
	}

	// One cycle covering everything: n hops from the anchor return home
	// without revisiting.
	cur := g.anchor
	var i int
	for i = 0; i < n; i++ {
		next, ok := g.succ[cur]
		if !ok {
			return ErrUnlinkedGene
		}
		cur = next
	}
	if cur != g.anchor {
		return ErrBrokenCycle
	}

	return nil
}

// Clone returns a deep copy of the genome: links, orientations, anchor.
// The positional index is rebuilt on first use by the clone.
// Complexity: O(n).
func (g *Genome) Clone() *Genome {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := len(g.orient)
	c := &Genome{
		succ:   make(map[GeneID]GeneID, n),
		pred:   make(map[GeneID]GeneID, n),
		orient: make(map[GeneID]Orientation, n),
		anchor: g.anchor,
	}
	var k, v GeneID
	for k, v = range g.succ {
		c.succ[k] = v
	}
	for k, v = range g.pred {
		c.pred[k] = v
	}
	var o Orientation
	for k, o = range g.orient {
		c.orient[k] = o
	}

	return c
}

// Restore overwrites this genome's links and orientations from src,
// which must be defined over the identical gene set (typically a Clone
// snapshot taken before a surgery sequence). Used for transactional
// rollback of partially applied operations.
//
// Errors: ErrGeneNotFound if the gene sets differ.
//
// Complexity: O(n).
func (g *Genome) Restore(src *Genome) error {
	if src == nil {
		return ErrGeneNotFound
	}
	if !SameGeneSet(g, src) {
		return ErrGeneNotFound
	}

	src.mu.RLock()
	defer src.mu.RUnlock()
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(src.orient)
	g.succ = make(map[GeneID]GeneID, n)
	g.pred = make(map[GeneID]GeneID, n)
	var k, v GeneID
	for k, v = range src.succ {
		g.succ[k] = v
	}
	for k, v = range src.pred {
		g.pred[k] = v
	}
	var o Orientation
	for k, o = range src.orient {
		g.orient[k] = o
	}
	g.invalidatePositions()

	return nil
}

// SameGeneSet reports whether a and b are defined over the identical set
// of gene IDs (orientations and order are not compared).
// Complexity: O(n).
func SameGeneSet(a, b *Genome) bool {
	if a == nil || b == nil {
		return a == b
	}
	a.mu.RLock()
	defer a.mu.RUnlock()
	b.mu.RLock()
	defer b.mu.RUnlock()

	if len(a.orient) != len(b.orient) {
		return false
	}
	var id GeneID
	for id = range a.orient {
		if _, ok := b.orient[id]; !ok {
			return false
		}
	}

	return true
}

// succLocked is the lock-free core of Succ; callers hold g.mu.
func (g *Genome) succLocked(x GeneID) (GeneID, error) {
	if _, ok := g.orient[x]; !ok {
		return "", ErrGeneNotFound
	}
	s, ok := g.succ[x]
	if !ok {
		return "", ErrUnlinkedGene
	}

	return s, nil
}
