// Package ops: operation application (validate, mutate, return inverse).
//
// Each apply helper follows the same discipline:
//  1. Validate every precondition against the intact genome; any
//     violation returns a sentinel error with the genome untouched.
//  2. Capture the boundary genes needed for the mutation and for the
//     explicit inverse.
//  3. Perform the link surgery through genome's primitives.
//  4. Re-check the single-cycle invariant; a breach here is a
//     programming defect and panics.
//
// Complexity: O(segment length) per operation (membership walk + flips +
// relinks), O(1) additional space beyond the membership slice.
package ops

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
)

// Apply executes op on g and returns the operation's algebraic inverse.
// On any error the genome is unchanged.
//
// Errors: ErrNilGenome, ErrUnknownKind, ErrGeneNotFound,
// ErrAnchorInSegment, ErrNoOpRelocation.
func Apply(g *genome.Genome, op Operation) (Operation, error) {
	if g == nil {
		return Operation{}, ErrNilGenome
	}

	switch op.Kind {
	case KindInvert:
		return applyInvert(g, op.X, op.Y)
	case KindTranspose:
		return applyTranspose(g, op.X, op.Y, op.Z)
	case KindTransvert:
		return applyTransvert(g, op.X, op.Y, op.Z)
	default:
		return Operation{}, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(op.Kind))
	}
}

// applyInvert reverses segment x..y in place and flips member
// orientations. The one-gene form (x == y) flips orientation only.
// Inverse: Invert(y, x), the reversed segment read back.
func applyInvert(g *genome.Genome, x, y genome.GeneID) (Operation, error) {
	// 1) Presence checks; single-gene fast path.
	if !g.Has(x) || !g.Has(y) {
		return Operation{}, fmt.Errorf("%w: Invert(%s,%s)", ErrGeneNotFound, x, y)
	}
	if x == y {
		if err := g.Flip(x); err != nil {
			return Operation{}, err
		}

		return InvertSingleOp(x), nil // self-inverse
	}

	// 2) Segment membership and boundary capture on the intact genome.
	members, err := g.Segment(x, y)
	if err != nil {
		return Operation{}, err
	}
	a, err := g.Pred(x)
	if err != nil {
		return Operation{}, err
	}
	b, err := g.Succ(y)
	if err != nil {
		return Operation{}, err
	}

	// 3) Flip every member's orientation.
	var m genome.GeneID
	for _, m = range members {
		mustOK(g.Flip(m))
	}

	// 4) Reverse the internal links: every clockwise pair (v, w) inside
	//    the segment becomes (w, v).
	var i int
	for i = len(members) - 1; i >= 1; i-- {
		mustOK(g.Link(members[i], members[i-1]))
	}

	// 5) Boundary relink. When the segment is the whole genome the two
	//    outside boundary links do not exist; reversing the single wrap
	//    edge completes the mirror instead.
	if len(members) == g.Len() {
		mustOK(g.Link(x, y))
	} else {
		mustOK(g.Link(a, y))
		mustOK(g.Link(x, b))
	}

	assertCycle(g, InvertOp(x, y))

	return InvertOp(y, x), nil
}

// applyTranspose detaches segment x..y, closes the gap, and reinserts it
// immediately clockwise of z, order preserved.
// Inverse: Transpose(x, y, a) with a the captured pre-apply pred(x).
func applyTranspose(g *genome.Genome, x, y, z genome.GeneID) (Operation, error) {
	a, err := validateRelocation(g, x, y, z)
	if err != nil {
		return Operation{}, err
	}
	// The anchor being the segment's current predecessor makes the
	// relocation a no-op; rejected (also the cheapest symmetry filter).
	if z == a {
		return Operation{}, fmt.Errorf("%w: Transpose(%s,%s,%s)", ErrNoOpRelocation, x, y, z)
	}
	b, err := g.Succ(y)
	if err != nil {
		return Operation{}, err
	}

	// 1) Close the gap left by the segment.
	mustOK(g.Link(a, b))

	// 2) Split after z: read succ(z) only now, so an anchor adjacent to
	//    the old segment position resolves to the post-gap neighbor.
	c, err := g.Succ(z)
	if err != nil {
		return Operation{}, err
	}

	// 3) Relink: z → x .. y → c.
	mustOK(g.Link(z, x))
	mustOK(g.Link(y, c))

	assertCycle(g, TransposeOp(x, y, z))

	return TransposeOp(x, y, a), nil
}

// applyTransvert composes Transpose's relocation with Invert's segment
// flip: the segment is reinserted reversed (z → y .. x) with every
// member's orientation flipped.
// Inverse: Transvert(y, x, a) with a the captured pre-apply pred(x).
func applyTransvert(g *genome.Genome, x, y, z genome.GeneID) (Operation, error) {
	a, err := validateRelocation(g, x, y, z)
	if err != nil {
		return Operation{}, err
	}
	members, err := g.Segment(x, y)
	if err != nil {
		return Operation{}, err
	}
	b, err := g.Succ(y)
	if err != nil {
		return Operation{}, err
	}

	// 1) Flip every member's orientation.
	var m genome.GeneID
	for _, m = range members {
		mustOK(g.Flip(m))
	}

	// 2) Close the gap, then split after z (post-gap successor, as in
	//    transpose; correct even when z == a).
	mustOK(g.Link(a, b))
	c, err := g.Succ(z)
	if err != nil {
		return Operation{}, err
	}

	// 3) Reverse the internal links and relink reversed: z → y .. x → c.
	var i int
	for i = len(members) - 1; i >= 1; i-- {
		mustOK(g.Link(members[i], members[i-1]))
	}
	mustOK(g.Link(z, y))
	mustOK(g.Link(x, c))

	assertCycle(g, TransvertOp(x, y, z))

	return TransvertOp(y, x, a), nil
}

// validateRelocation runs the shared relocation preconditions on the
// intact genome and returns the segment's current predecessor a.
//
// Checks (in order): presence of x, y, z; anchor strictly outside the
// segment (NotBetween, which also guarantees z ∉ {x, y} and that the
// segment is not the whole genome).
func validateRelocation(g *genome.Genome, x, y, z genome.GeneID) (genome.GeneID, error) {
	if !g.Has(x) || !g.Has(y) || !g.Has(z) {
		return "", fmt.Errorf("%w: segment %s..%s anchor %s", ErrGeneNotFound, x, y, z)
	}
	out, err := g.NotBetween(x, y, z)
	if err != nil {
		return "", err
	}
	if !out {
		return "", fmt.Errorf("%w: %s within %s..%s", ErrAnchorInSegment, z, x, y)
	}

	return g.Pred(x)
}

// assertCycle traps invariant breaches after a validated mutation.
// A failure here means the surgery logic itself is wrong; panic, since
// every subsequent betweenness query would be meaningless.
func assertCycle(g *genome.Genome, op Operation) {
	if err := g.Validate(); err != nil {
		panic(fmt.Sprintf("ops: cycle invariant violated after %s: %v", op, err))
	}
}

// mustOK panics on errors from genome primitives whose preconditions
// were already established; such a failure is a programming defect.
func mustOK(err error) {
	if err != nil {
		panic(fmt.Sprintf("ops: internal surgery step failed: %v", err))
	}
}
