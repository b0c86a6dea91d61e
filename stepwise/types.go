// Package stepwise: phases, obligations, sentinel errors, Machine type.
package stepwise

import (
	"errors"
	"strings"

	"github.com/katalvlaran/genecycle/genome"
)

// Sentinel errors for the stepwise machine.
var (
	// ErrNilGenome indicates a nil *genome.Genome was passed to NewMachine.
	ErrNilGenome = errors.New("stepwise: genome is nil")

	// ErrBusy indicates Begin was called while an operation is mid-flight.
	ErrBusy = errors.New("stepwise: operation already in flight")

	// ErrNotInFlight indicates a micro-step, End or Abort was called while
	// the machine is idle.
	ErrNotInFlight = errors.New("stepwise: no operation in flight")

	// ErrStepNotEnabled indicates the micro-step is not an obligation of
	// the in-flight operation, or was already discharged.
	ErrStepNotEnabled = errors.New("stepwise: step not enabled for this operation")

	// ErrObligationOrder indicates the micro-step's prerequisite
	// obligations have not been discharged yet.
	ErrObligationOrder = errors.New("stepwise: prerequisite obligations pending")

	// ErrPendingObligations indicates End was called before every
	// obligation was discharged.
	ErrPendingObligations = errors.New("stepwise: obligations still pending")

	// ErrSingleGeneSegment indicates BeginInvert was called with x == y;
	// the one-gene inversion has no decomposition (use ops.InvertSingleOp).
	ErrSingleGeneSegment = errors.New("stepwise: one-gene segment has no decomposition")

	// ErrWholeGenomeSegment indicates BeginInvert was called on a segment
	// covering the whole genome; the decomposed surgery needs at least one
	// gene outside the segment.
	ErrWholeGenomeSegment = errors.New("stepwise: segment covers the whole genome")
)

// Phase tags what the machine is currently doing.
type Phase uint8

const (
	// PhaseIdle: no operation in flight; Begin* is enabled.
	PhaseIdle Phase = iota

	// PhaseTransposing: a transposition is mid-flight.
	PhaseTransposing

	// PhaseInverting: an inversion is mid-flight.
	PhaseInverting

	// PhaseTransverting: a transversion is mid-flight.
	PhaseTransverting
)

// String renders the phase tag.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTransposing:
		return "transposing"
	case PhaseInverting:
		return "inverting"
	case PhaseTransverting:
		return "transverting"
	default:
		return "unknown"
	}
}

// Obligation is a bitmask of pending sub-steps the in-flight operation
// still owes before End is enabled.
type Obligation uint16

const (
	// ObUnlinkLeft: cut the link entering the segment (pred(x) → x).
	ObUnlinkLeft Obligation = 1 << iota

	// ObUnlinkRight: cut the link leaving the segment (y → succ(y)).
	ObUnlinkRight

	// ObCloseGap: link the segment's old neighbors to each other.
	ObCloseGap

	// ObBreakAfter: cut the cycle immediately clockwise of the anchor z.
	ObBreakAfter

	// ObInsertLinkLeft: link the anchor side to the segment.
	ObInsertLinkLeft

	// ObInsertLinkRight: link the segment back into the cycle.
	ObInsertLinkRight

	// ObInvertSegment: flip member orientations and reverse internal links.
	ObInvertSegment
)

// obligationNames is ordered by bit position for deterministic rendering.
var obligationNames = []struct {
	bit  Obligation
	name string
}{
	{ObUnlinkLeft, "unlink-left"},
	{ObUnlinkRight, "unlink-right"},
	{ObCloseGap, "close-gap"},
	{ObBreakAfter, "break-after"},
	{ObInsertLinkLeft, "insert-link-left"},
	{ObInsertLinkRight, "insert-link-right"},
	{ObInvertSegment, "invert-segment"},
}

// String renders the obligation set as a comma-separated list, e.g.
// "close-gap,insert-link-left". The empty set renders as "none".
func (o Obligation) String() string {
	if o == 0 {
		return "none"
	}

	var sb strings.Builder
	for _, entry := range obligationNames {
		if o&entry.bit == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(entry.name)
	}

	return sb.String()
}

// Machine drives one genome through decomposed operations. At most one
// operation is in flight per machine; the phase tag is the busy flag.
// Not safe for concurrent use; it sequences one owner's steps.
type Machine struct {
	g *genome.Genome

	phase   Phase
	pending Obligation

	// Operation parameters and boundary genes captured at Begin.
	x, y, z genome.GeneID
	a, b    genome.GeneID
	members []genome.GeneID

	// c is the anchor's post-gap successor, captured by BreakAfter.
	c genome.GeneID

	// snapshot backs Abort's rollback.
	snapshot *genome.Genome

	cost int64
}

// NewMachine binds a machine to g. The genome must satisfy the
// single-cycle invariant.
//
// Errors: ErrNilGenome; genome.ErrBrokenCycle / genome.ErrUnlinkedGene
// from validation.
func NewMachine(g *genome.Genome) (*Machine, error) {
	if g == nil {
		return nil, ErrNilGenome
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	return &Machine{g: g, phase: PhaseIdle}, nil
}

// Phase returns the current phase tag.
func (m *Machine) Phase() Phase { return m.phase }

// Pending returns the set of obligations the in-flight operation still
// owes. Zero when idle or when End is enabled.
func (m *Machine) Pending() Obligation { return m.pending }

// InFlight reports whether an operation is mid-flight.
func (m *Machine) InFlight() bool { return m.phase != PhaseIdle }

// Cost returns the accumulated decomposed-profile cost of every
// completed micro-step so far (including Begin surcharges).
func (m *Machine) Cost() int64 { return m.cost }
