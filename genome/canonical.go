// Package genome: canonical signatures for equality testing.
//
// A circular genome has no distinguished starting point, so the same
// genome admits n rotational encodings. Signature normalizes rotation by
// always starting the clockwise reading at the anchor (the smallest gene
// ID, which is stable because genes are never added or removed).
//
// Mirror reflection (reversing the clockwise direction and flipping
// every orientation) is a second, optional folding. Whether a genome
// and its mirror are "the same" is a modelling choice: the rearrangement
// operations themselves distinguish reading direction, so the default
// keeps mirrors distinct; callers modelling physical circular DNA (where
// flipping the molecule is free) fold mirrors by passing mirror=true.
// Both the goal test and the duplicate table of the search package honor
// the same choice.
package genome

import "strings"

// Signature returns a canonical string encoding of the genome:
// the clockwise reading from the anchor, one "id±" token per gene.
// With mirror=true the reflected reading (counterclockwise from the
// anchor, orientations flipped) is also computed and the
// lexicographically smaller of the two is returned, folding
// mirror-equivalent genomes onto one representative.
//
// Contract: the genome must be fully linked (mid-surgery genomes yield
// a truncated, meaningless signature).
//
// Complexity: O(n) time, O(n) space.
func (g *Genome) Signature(mirror bool) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	fwd := g.readingLocked(false)
	if !mirror {
		return fwd
	}

	rev := g.readingLocked(true)
	if rev < fwd {
		return rev
	}

	return fwd
}

// Equal reports whether a and b encode the same genome up to rotation
// (and, with mirror=true, up to reflection).
// Complexity: O(n).
func Equal(a, b *Genome, mirror bool) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Signature(mirror) == b.Signature(mirror)
}

// readingLocked renders one full reading of the cycle starting at the
// anchor: clockwise as stored (reflected=false), or counterclockwise
// with flipped orientations (reflected=true). Callers hold g.mu.
func (g *Genome) readingLocked(reflected bool) string {
	var sb strings.Builder
	// Rough size hint: id + sign + separator per gene.
	sb.Grow(len(g.orient) * 4)

	cur := g.anchor
	var i int
	for i = 0; i < len(g.orient); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		o := g.orient[cur]
		if reflected {
			o = o.Flip()
		}
		sb.WriteString(string(cur))
		sb.WriteString(o.String())

		var (
			next GeneID
			ok   bool
		)
		if reflected {
			next, ok = g.pred[cur]
		} else {
			next, ok = g.succ[cur]
		}
		if !ok {
			break // mid-surgery genome; documented as unspecified
		}
		cur = next
	}

	return sb.String()
}
