// Package stepwise models each rearrangement operation as an explicit
// finite-state machine of ordered atomic micro-steps with pending-work
// bookkeeping, for callers that must apply operations incrementally
// (replay, partial-order execution, external verification) rather than
// atomically through the ops package.
//
// A Machine is bound to exactly one genome and brackets every operation
// as a multi-step transaction:
//
//	Begin{Invert,Transpose,Transvert} → micro-steps → End
//
// Begin validates the full precondition set against the intact genome
// (the same checks the ops package performs), snapshots the genome,
// records the obligations the operation owes, and flips the machine from
// PhaseIdle into the operation's phase. Each micro-step discharges
// exactly one pending obligation:
//
//	Transpose:  UnlinkLeft, UnlinkRight, CloseGap, BreakAfter,
//	            InsertLinkLeft, InsertLinkRight
//	Invert:     UnlinkLeft, UnlinkRight, InvertSegment,
//	            InsertLinkLeft, InsertLinkRight
//	Transvert:  Transpose's six steps plus InvertSegment
//
// The order is partially free; only the constraints that keep the link
// surgery well-defined at every prefix are enforced: CloseGap needs both
// unlinks; BreakAfter needs CloseGap (so the split point's successor is
// well-defined even when the anchor borders the segment's old position);
// the insert links need BreakAfter (and, for transversion, the segment
// flip); inversion's insert links need both unlinks and the segment
// flip.
//
// End is enabled only once every obligation is discharged; it re-checks
// the single-cycle invariant and returns the machine to PhaseIdle. Abort
// rolls the genome back to the Begin snapshot, so a partial operation is
// never left visible. A second Begin while one operation is mid-flight
// fails with ErrBusy. The idle/busy flag sequences operations within
// one owner; it is not a cross-thread synchronization primitive.
//
// Cost accounting: every micro-step and End cost one unit; Begin carries
// a fixed surcharge (1 for inversion, 7 for transposition, 6 for
// transversion), so complete operations total 7, 14 and 14 units: the
// Decomposed profile of the ops package, i.e. the monolithic 1/2/2
// weighting scaled by 7.
package stepwise
