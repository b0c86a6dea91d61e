// Package ops: operation and cost-profile types plus sentinel errors.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
)

// Sentinel errors for operation validation.
var (
	// ErrNilGenome indicates a nil *genome.Genome was passed to Apply.
	ErrNilGenome = errors.New("ops: genome is nil")

	// ErrGeneNotFound indicates an operation parameter names an absent gene.
	ErrGeneNotFound = errors.New("ops: gene not found")

	// ErrAnchorInSegment indicates the relocation anchor z lies inside the
	// segment x..y (betweenness precondition violated).
	ErrAnchorInSegment = errors.New("ops: relocation anchor inside segment")

	// ErrNoOpRelocation indicates a transposition whose anchor is the
	// segment's current predecessor: the relocation would reproduce the
	// genome unchanged and is rejected.
	ErrNoOpRelocation = errors.New("ops: relocation to current position")

	// ErrUnknownKind indicates an Operation with an unrecognized Kind tag.
	ErrUnknownKind = errors.New("ops: unknown operation kind")
)

// Kind tags the three rearrangement operations.
type Kind uint8

const (
	// KindInvert reverses a segment in place, flipping orientations.
	KindInvert Kind = iota

	// KindTranspose relocates a segment, order preserved.
	KindTranspose

	// KindTransvert relocates a segment reversed, orientations flipped.
	KindTransvert
)

// String renders the kind tag.
func (k Kind) String() string {
	switch k {
	case KindInvert:
		return "Invert"
	case KindTranspose:
		return "Transpose"
	case KindTransvert:
		return "Transvert"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Operation is one tagged rearrangement with positional parameters.
// X and Y are the segment endpoints (X == Y is the single-gene segment).
// Z is the relocation anchor for Transpose/Transvert and ignored for
// Invert.
type Operation struct {
	Kind Kind
	X, Y genome.GeneID
	Z    genome.GeneID
}

// InvertOp builds an inversion of segment x..y.
func InvertOp(x, y genome.GeneID) Operation {
	return Operation{Kind: KindInvert, X: x, Y: y}
}

// InvertSingleOp builds the degenerate one-gene inversion of x.
func InvertSingleOp(x genome.GeneID) Operation {
	return Operation{Kind: KindInvert, X: x, Y: x}
}

// TransposeOp builds a transposition of segment x..y to after z.
func TransposeOp(x, y, z genome.GeneID) Operation {
	return Operation{Kind: KindTranspose, X: x, Y: y, Z: z}
}

// TransvertOp builds a transversion of segment x..y to after z.
func TransvertOp(x, y, z genome.GeneID) Operation {
	return Operation{Kind: KindTransvert, X: x, Y: y, Z: z}
}

// String renders the operation with its parameters, e.g.
// "Invert(B,C)" or "Transpose(B,C,D)".
func (op Operation) String() string {
	if op.Kind == KindInvert {
		return fmt.Sprintf("%s(%s,%s)", op.Kind, op.X, op.Y)
	}

	return fmt.Sprintf("%s(%s,%s,%s)", op.Kind, op.X, op.Y, op.Z)
}

// Profile is a named cost table over the three operation kinds.
// All entries must be positive; the search package validates this.
type Profile struct {
	// Name identifies the accounting scheme in results and logs.
	Name string

	// Invert is the cost of one inversion (either form).
	Invert int64

	// Transpose is the cost of one transposition.
	Transpose int64

	// Transvert is the cost of one transversion.
	Transvert int64
}

// Monolithic is the default profile: inversion 1, relocation 2, the
// classic 2:1 weighting of transposition/transversion over inversion.
var Monolithic = Profile{Name: "monolithic", Invert: 1, Transpose: 2, Transvert: 2}

// Decomposed bills each operation as the sum of its unit-cost
// micro-steps in the stepwise package: inversion 7, relocation 14.
// Equals Monolithic scaled by 7, so plan rankings coincide.
var Decomposed = Profile{Name: "decomposed", Invert: 7, Transpose: 14, Transvert: 14}

// Weighted builds a custom profile with the given inversion and
// relocation costs (transposition and transversion always share one
// relocation cost). Both must be positive.
func Weighted(invert, relocation int64) Profile {
	return Profile{Name: "weighted", Invert: invert, Transpose: relocation, Transvert: relocation}
}

// Cost returns the profile's cost for one operation kind.
// Unknown kinds cost 0; Apply rejects them before costing matters.
func (p Profile) Cost(k Kind) int64 {
	switch k {
	case KindInvert:
		return p.Invert
	case KindTranspose:
		return p.Transpose
	case KindTransvert:
		return p.Transvert
	default:
		return 0
	}
}

// PlanCost sums the profile's costs over an operation sequence.
// Complexity: O(len(plan)).
func (p Profile) PlanCost(plan []Operation) int64 {
	var total int64
	var op Operation
	for _, op = range plan {
		total += p.Cost(op.Kind)
	}

	return total
}
