// Package stepwise: the operation state machine (begin, micro-steps,
// end, abort).
//
// Every Begin validates against the intact genome exactly as the ops
// package would, so a mid-flight surgery can always run to completion.
// Micro-step methods return an error and perform nothing when the step
// is not enabled; a surgery failure mid-flight (possible only if the
// owner raw-mutated the genome behind the machine's back) leaves the
// obligation pending so Abort can roll back to the Begin snapshot.
package stepwise

import (
	"fmt"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
)

// Decomposed cost accounting: unit cost per micro-step and per End;
// Begin surcharges bring operation totals to 7 / 14 / 14 (inversion /
// transposition / transversion), 7× the monolithic 1 / 2 / 2.
const (
	stepCost           = 1
	endCost            = 1
	beginInvertCost    = 1
	beginTransposeCost = 7
	beginTransvertCost = 6
)

const transposeObligations = ObUnlinkLeft | ObUnlinkRight | ObCloseGap |
	ObBreakAfter | ObInsertLinkLeft | ObInsertLinkRight

const invertObligations = ObUnlinkLeft | ObUnlinkRight | ObInvertSegment |
	ObInsertLinkLeft | ObInsertLinkRight

// BeginInvert opens an inversion of segment x..y as a transaction.
//
// Preconditions: machine idle (ErrBusy); x ≠ y (ErrSingleGeneSegment:
// the degenerate one-gene inversion is a single atomic flip, use ops);
// segment a proper subset of the genome (ErrWholeGenomeSegment);
// both genes present.
func (m *Machine) BeginInvert(x, y genome.GeneID) error {
	if m.phase != PhaseIdle {
		return fmt.Errorf("%w: %s", ErrBusy, m.phase)
	}
	if x == y {
		return ErrSingleGeneSegment
	}
	if !m.g.Has(x) || !m.g.Has(y) {
		return fmt.Errorf("%w: Invert(%s,%s)", ops.ErrGeneNotFound, x, y)
	}

	members, err := m.g.Segment(x, y)
	if err != nil {
		return err
	}
	if len(members) == m.g.Len() {
		return ErrWholeGenomeSegment
	}

	if err = m.captureBoundary(x, y); err != nil {
		return err
	}
	m.x, m.y, m.z = x, y, ""
	m.members = members
	m.snapshot = m.g.Clone()
	m.phase = PhaseInverting
	m.pending = invertObligations
	m.cost += beginInvertCost

	return nil
}

// BeginTranspose opens a transposition of segment x..y to after z.
//
// Preconditions: machine idle (ErrBusy); x, y, z present; z strictly
// outside the segment (ops.ErrAnchorInSegment); z not the segment's
// current predecessor (ops.ErrNoOpRelocation).
func (m *Machine) BeginTranspose(x, y, z genome.GeneID) error {
	if m.phase != PhaseIdle {
		return fmt.Errorf("%w: %s", ErrBusy, m.phase)
	}
	if err := m.validateRelocation(x, y, z); err != nil {
		return err
	}
	if err := m.captureBoundary(x, y); err != nil {
		return err
	}
	if z == m.a {
		return fmt.Errorf("%w: Transpose(%s,%s,%s)", ops.ErrNoOpRelocation, x, y, z)
	}

	m.x, m.y, m.z = x, y, z
	m.members = nil // order preserved; membership not needed
	m.snapshot = m.g.Clone()
	m.phase = PhaseTransposing
	m.pending = transposeObligations
	m.cost += beginTransposeCost

	return nil
}

// BeginTransvert opens a transversion of segment x..y to after z.
//
// Preconditions: as BeginTranspose, except z may be the segment's
// current predecessor (the segment then flips in place).
func (m *Machine) BeginTransvert(x, y, z genome.GeneID) error {
	if m.phase != PhaseIdle {
		return fmt.Errorf("%w: %s", ErrBusy, m.phase)
	}
	if err := m.validateRelocation(x, y, z); err != nil {
		return err
	}
	members, err := m.g.Segment(x, y)
	if err != nil {
		return err
	}
	if err = m.captureBoundary(x, y); err != nil {
		return err
	}

	m.x, m.y, m.z = x, y, z
	m.members = members
	m.snapshot = m.g.Clone()
	m.phase = PhaseTransverting
	m.pending = transposeObligations | ObInvertSegment
	m.cost += beginTransvertCost

	return nil
}

// UnlinkLeft cuts the link entering the segment: pred(x) → x.
func (m *Machine) UnlinkLeft() error {
	if err := m.enabled(ObUnlinkLeft, 0); err != nil {
		return err
	}
	if err := m.g.Unlink(m.a); err != nil {
		return err
	}
	m.discharge(ObUnlinkLeft)

	return nil
}

// UnlinkRight cuts the link leaving the segment: y → succ(y).
func (m *Machine) UnlinkRight() error {
	if err := m.enabled(ObUnlinkRight, 0); err != nil {
		return err
	}
	if err := m.g.Unlink(m.y); err != nil {
		return err
	}
	m.discharge(ObUnlinkRight)

	return nil
}

// CloseGap links the detached segment's old neighbors to each other.
// Requires both unlinks discharged.
func (m *Machine) CloseGap() error {
	if err := m.enabled(ObCloseGap, ObUnlinkLeft|ObUnlinkRight); err != nil {
		return err
	}
	if err := m.g.Link(m.a, m.b); err != nil {
		return err
	}
	m.discharge(ObCloseGap)

	return nil
}

// BreakAfter cuts the cycle immediately clockwise of the anchor z,
// capturing the split point's successor for the insert links.
// Requires CloseGap discharged, so the successor is the post-gap
// neighbor even when the anchor borders the segment's old position.
func (m *Machine) BreakAfter() error {
	if err := m.enabled(ObBreakAfter, ObCloseGap); err != nil {
		return err
	}
	c, err := m.g.Succ(m.z)
	if err != nil {
		return err
	}
	if err = m.g.Unlink(m.z); err != nil {
		return err
	}
	m.c = c
	m.discharge(ObBreakAfter)

	return nil
}

// InvertSegment flips every member's orientation and reverses the
// segment's internal links. Requires both unlinks discharged (the
// segment must be detached before its links are reversed).
func (m *Machine) InvertSegment() error {
	if err := m.enabled(ObInvertSegment, ObUnlinkLeft|ObUnlinkRight); err != nil {
		return err
	}

	var mem genome.GeneID
	for _, mem = range m.members {
		if err := m.g.Flip(mem); err != nil {
			return err
		}
	}
	var i int
	for i = len(m.members) - 1; i >= 1; i-- {
		if err := m.g.Link(m.members[i], m.members[i-1]); err != nil {
			return err
		}
	}
	m.discharge(ObInvertSegment)

	return nil
}

// InsertLinkLeft links the anchor side to the segment:
//
//	inverting:    pred(x) → y
//	transposing:  z → x
//	transverting: z → y (the segment re-enters reversed)
func (m *Machine) InsertLinkLeft() error {
	var from, to genome.GeneID
	switch m.phase {
	case PhaseInverting:
		if err := m.enabled(ObInsertLinkLeft, ObUnlinkLeft|ObUnlinkRight|ObInvertSegment); err != nil {
			return err
		}
		from, to = m.a, m.y
	case PhaseTransposing:
		if err := m.enabled(ObInsertLinkLeft, ObBreakAfter); err != nil {
			return err
		}
		from, to = m.z, m.x
	case PhaseTransverting:
		if err := m.enabled(ObInsertLinkLeft, ObBreakAfter|ObInvertSegment); err != nil {
			return err
		}
		from, to = m.z, m.y
	default:
		return ErrNotInFlight
	}

	if err := m.g.Link(from, to); err != nil {
		return err
	}
	m.discharge(ObInsertLinkLeft)

	return nil
}

// InsertLinkRight links the segment back into the cycle:
//
//	inverting:    x → succ(y)
//	transposing:  y → old succ(z)
//	transverting: x → old succ(z)
func (m *Machine) InsertLinkRight() error {
	var from, to genome.GeneID
	switch m.phase {
	case PhaseInverting:
		if err := m.enabled(ObInsertLinkRight, ObUnlinkLeft|ObUnlinkRight|ObInvertSegment); err != nil {
			return err
		}
		from, to = m.x, m.b
	case PhaseTransposing:
		if err := m.enabled(ObInsertLinkRight, ObBreakAfter); err != nil {
			return err
		}
		from, to = m.y, m.c
	case PhaseTransverting:
		if err := m.enabled(ObInsertLinkRight, ObBreakAfter|ObInvertSegment); err != nil {
			return err
		}
		from, to = m.x, m.c
	default:
		return ErrNotInFlight
	}

	if err := m.g.Link(from, to); err != nil {
		return err
	}
	m.discharge(ObInsertLinkRight)

	return nil
}

// End commits the transaction: enabled only once every obligation is
// discharged. Re-checks the single-cycle invariant; on failure the
// machine stays in flight so Abort can roll back.
func (m *Machine) End() error {
	if m.phase == PhaseIdle {
		return ErrNotInFlight
	}
	if m.pending != 0 {
		return fmt.Errorf("%w: %s", ErrPendingObligations, m.pending)
	}
	if err := m.g.Validate(); err != nil {
		return err
	}

	m.cost += endCost
	m.reset()

	return nil
}

// Abort rolls the genome back to the Begin snapshot and returns the
// machine to idle. Costs already accumulated are not refunded.
func (m *Machine) Abort() error {
	if m.phase == PhaseIdle {
		return ErrNotInFlight
	}
	if err := m.g.Restore(m.snapshot); err != nil {
		return err
	}
	m.reset()

	return nil
}

// enabled verifies that bit is a pending obligation of the in-flight
// operation and that every prerequisite obligation has been discharged.
func (m *Machine) enabled(bit, prereq Obligation) error {
	if m.phase == PhaseIdle {
		return ErrNotInFlight
	}
	if m.pending&bit == 0 {
		return fmt.Errorf("%w: %s during %s", ErrStepNotEnabled, bit, m.phase)
	}
	if m.pending&prereq != 0 {
		return fmt.Errorf("%w: need %s first", ErrObligationOrder, m.pending&prereq)
	}

	return nil
}

// discharge consumes one obligation and bills one unit.
func (m *Machine) discharge(bit Obligation) {
	m.pending &^= bit
	m.cost += stepCost
}

// reset returns the machine to idle, dropping transaction state.
func (m *Machine) reset() {
	m.phase = PhaseIdle
	m.pending = 0
	m.members = nil
	m.snapshot = nil
	m.x, m.y, m.z, m.a, m.b, m.c = "", "", "", "", "", ""
}

// captureBoundary records the segment's outside neighbors on the intact
// genome.
func (m *Machine) captureBoundary(x, y genome.GeneID) error {
	a, err := m.g.Pred(x)
	if err != nil {
		return err
	}
	b, err := m.g.Succ(y)
	if err != nil {
		return err
	}
	m.a, m.b = a, b

	return nil
}

// validateRelocation mirrors the ops package's relocation preconditions.
func (m *Machine) validateRelocation(x, y, z genome.GeneID) error {
	if !m.g.Has(x) || !m.g.Has(y) || !m.g.Has(z) {
		return fmt.Errorf("%w: segment %s..%s anchor %s", ops.ErrGeneNotFound, x, y, z)
	}
	out, err := m.g.NotBetween(x, y, z)
	if err != nil {
		return err
	}
	if !out {
		return fmt.Errorf("%w: %s within %s..%s", ops.ErrAnchorInSegment, z, x, y)
	}

	return nil
}
