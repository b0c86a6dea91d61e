// Package ops implements the three rearrangement operations on circular
// oriented genomes (inversion, transposition, transversion) as
// validated, reversible state transitions, plus the operation-cost
// tables used by plan search.
//
// Operations:
//
//   - Invert(x, y): reverse the clockwise segment x..y in place and flip
//     the orientation of every gene in it. The degenerate one-gene form
//     (x == y) flips orientation only, no relinking.
//   - Transpose(x, y, z): detach segment x..y, close the gap, and
//     reinsert it immediately clockwise of z, order preserved.
//   - Transvert(x, y, z): Transpose's relocation with the segment
//     reinserted in reversed order (z → y .. x) and every member's
//     orientation flipped.
//
// Every operation validates parameter distinctness and legality before
// mutating and refuses to mutate on violation: the genome is untouched
// on any error return. Legality is gated by the betweenness predicates
// of the genome package: a relocation anchor must lie strictly outside
// the segment being moved.
//
// Reversibility: Apply returns the operation's algebraic inverse,
// tracked explicitly at apply time (relocations capture the segment's
// original predecessor), never derived later. Applying the inverse
// restores a genome canonically equal to the original, the property
// backtracking search and interactive undo rely on.
//
// Cost model: two named accounting profiles cover the same operations.
// Monolithic bills 1 unit per inversion and 2 per relocation (the
// default 2:1 weighting); Decomposed bills 7 and 14, matching the sum of
// unit-cost micro-steps in the stepwise package (the same 2:1 ratio
// after normalizing by 7). Weighted builds a custom ratio. A plan's total
// cost is the sum of its steps' costs under one profile; profiles are
// never mixed within a plan.
//
// Internal invariant breach after a supposedly-valid mutation is a
// programming defect and panics; it is never returned as an error.
package ops
