// Package search: the A* engine over rearrangement operations.
//
// We use a dedicated engine struct (instead of anonymous closures) to
// keep dependencies explicit, testing simpler, and hot-path state
// predictable.
package search

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
)

// node is one search state: an owned genome snapshot, accumulated cost
// g, heuristic estimate h, and the back-pointer used to rebuild the plan.
type node struct {
	g      *genome.Genome
	sig    string
	gcost  int64
	h      int64
	parent *node
	via    ops.Operation
}

// frontier is a min-heap over f = g + h with deterministic tie-breaking
// (smaller h first, then signature order).
type frontier []*node

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	fi, fj := f[i].gcost+f[i].h, f[j].gcost+f[j].h
	if fi != fj {
		return fi < fj
	}
	if f[i].h != f[j].h {
		return f[i].h < f[j].h
	}

	return f[i].sig < f[j].sig
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(*node)) }

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return it
}

// engine holds all search data and policies.
type engine struct {
	profile ops.Profile
	est     Estimator
	mirror  bool
	goalSig string

	nodeLimit   int
	useDeadline bool
	deadline    time.Time
	timeLimit   time.Duration
	steps       int // sparse deadline checks counter

	open     frontier
	best     map[string]int64 // canonical signature → lowest g seen
	expanded int
}

// FindPlan searches for a minimum-cost operation sequence transforming
// start into goal (up to canonical equivalence) and returns it as a Plan.
//
// Preconditions and validation (in order):
//  1. start and goal must be non-nil (ErrNilGenome).
//  2. both must satisfy the single-cycle invariant (genome errors).
//  3. both must cover the identical gene set (ErrGeneSetMismatch).
//  4. the profile's costs must be positive (ErrBadProfile).
//
// On success the returned plan is optimal under the selected profile
// provided the estimator is admissible (the default is). On budget
// exhaustion the error wraps ErrNoPlanWithinBound and names the bound
// that was hit.
func FindPlan(start, goal *genome.Genome, opts ...Option) (Plan, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs.
	if start == nil || goal == nil {
		return Plan{}, ErrNilGenome
	}
	if err := start.Validate(); err != nil {
		return Plan{}, err
	}
	if err := goal.Validate(); err != nil {
		return Plan{}, err
	}
	if !genome.SameGeneSet(start, goal) {
		return Plan{}, ErrGeneSetMismatch
	}
	if cfg.Profile.Invert <= 0 || cfg.Profile.Transpose <= 0 || cfg.Profile.Transvert <= 0 {
		return Plan{}, ErrBadProfile
	}

	// 3) Default heuristic: the breakpoint bound against this goal.
	est := cfg.Estimator
	if est == nil {
		var err error
		est, err = NewBreakpointBound(goal, cfg.Profile)
		if err != nil {
			return Plan{}, err
		}
	}

	e := &engine{
		profile:     cfg.Profile,
		est:         est,
		mirror:      cfg.Mirror,
		goalSig:     goal.Signature(cfg.Mirror),
		nodeLimit:   cfg.NodeLimit,
		useDeadline: cfg.TimeLimit > 0,
		timeLimit:   cfg.TimeLimit,
		best:        make(map[string]int64),
	}
	if e.useDeadline {
		e.deadline = time.Now().Add(cfg.TimeLimit)
	}

	return e.run(start)
}

// run drives the A* loop to goal, budget exhaustion, or frontier
// exhaustion.
func (e *engine) run(start *genome.Genome) (Plan, error) {
	h0, err := e.estimate(start)
	if err != nil {
		return Plan{}, err
	}

	startSig := start.Signature(e.mirror)
	root := &node{g: start.Clone(), sig: startSig, h: h0}
	e.best[startSig] = 0
	heap.Push(&e.open, root)

	for e.open.Len() > 0 {
		if e.deadlineCheck() {
			return Plan{Expanded: e.expanded},
				fmt.Errorf("%w: time limit %s exceeded", ErrNoPlanWithinBound, e.timeLimit)
		}

		cur := heap.Pop(&e.open).(*node)

		// Lazy decrease-key: skip entries superseded by a cheaper path.
		if cur.gcost > e.best[cur.sig] {
			continue
		}

		// Goal test at expansion time: with an admissible heuristic the
		// first goal pop carries the optimal cost.
		if cur.sig == e.goalSig {
			return e.reconstruct(cur), nil
		}

		if e.nodeLimit > 0 && e.expanded >= e.nodeLimit {
			return Plan{Expanded: e.expanded},
				fmt.Errorf("%w: node limit %d exceeded", ErrNoPlanWithinBound, e.nodeLimit)
		}
		e.expanded++

		if err = e.expand(cur); err != nil {
			return Plan{}, err
		}
	}

	// Exhaustive search without a budget hit: provably unsolvable (cannot
	// occur for well-formed genomes over one gene set, where the
	// operation set is complete).
	return Plan{Expanded: e.expanded},
		fmt.Errorf("%w: frontier exhausted", ErrNoPlanWithinBound)
}

// expand derives every legal, non-redundant successor of cur and relaxes
// it against the duplicate table.
func (e *engine) expand(cur *node) error {
	var op ops.Operation
	for _, op = range candidates(cur.g, e.profile) {
		child := cur.g.Clone()
		if _, err := ops.Apply(child, op); err != nil {
			// Illegal parameters mean "no such successor", never a crash.
			continue
		}

		sig := child.Signature(e.mirror)
		gc := cur.gcost + e.profile.Cost(op.Kind)
		if seen, ok := e.best[sig]; ok && seen <= gc {
			continue // equal-or-worse re-derivation
		}
		e.best[sig] = gc

		h, err := e.estimate(child)
		if err != nil {
			return err
		}
		heap.Push(&e.open, &node{g: child, sig: sig, gcost: gc, h: h, parent: cur, via: op})
	}

	return nil
}

// estimate runs the heuristic and guards its contract.
func (e *engine) estimate(g *genome.Genome) (int64, error) {
	h, err := e.est(g)
	if err != nil {
		return 0, err
	}
	if h < 0 {
		return 0, ErrBadEstimator
	}

	return h, nil
}

// reconstruct rebuilds the plan by walking the back-pointers.
func (e *engine) reconstruct(goal *node) Plan {
	var depth int
	for n := goal; n.parent != nil; n = n.parent {
		depth++
	}

	steps := make([]Step, depth)
	i := depth - 1
	for n := goal; n.parent != nil; n = n.parent {
		steps[i] = Step{Op: n.via, Cost: e.profile.Cost(n.via.Kind)}
		i--
	}

	return Plan{Steps: steps, Cost: goal.gcost, Expanded: e.expanded}
}

// deadlineCheck performs a rare deadline test (every 4096 pop events).
func (e *engine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

// candidates enumerates the legal, symmetry-filtered operation
// instantiations on g. Filtering rules:
//
//   - Whole-genome inversions produce the same mirror genome for every
//     starting gene; only the anchor-rooted instance is kept.
//   - Transpose(x, y, z) and Transpose(succ(y), z, pred(x)) produce
//     identical genomes; only the shorter-segment instance is kept
//     (gene-ID order breaks exact ties).
//   - Relocation to the segment's own predecessor is skipped: for
//     transposition it is a no-op (ops rejects it anyway), and for
//     transversion it duplicates Invert(x, y), which is at least as
//     cheap under every profile where Invert ≤ Transvert. Profiles that
//     price transversion below inversion keep the in-place instance.
//
// Complexity: O(n³) candidates for an n-gene genome.
func candidates(g *genome.Genome, p ops.Profile) []ops.Operation {
	genes := g.Genes()
	n := len(genes)
	ids := make([]genome.GeneID, n)
	var i int
	for i = range genes {
		ids[i] = genes[i].ID
	}

	out := make([]ops.Operation, 0, n*n)

	// Single-gene inversions.
	for i = 0; i < n; i++ {
		out = append(out, ops.InvertSingleOp(ids[i]))
	}
	if n < 3 {
		// Two genes admit no relocation (the anchor cannot lie outside),
		// and the only multi-gene inversion is the mirror move.
		if n == 2 {
			out = append(out, ops.InvertOp(ids[0], ids[1]))
		}

		return out
	}

	// Segment inversions, length ≥ 2.
	var length, j int
	for i = 0; i < n; i++ {
		for length = 2; length <= n; length++ {
			if length == n && i != 0 {
				continue // mirror duplicate: keep only the anchor-rooted one
			}
			j = (i + length - 1) % n
			out = append(out, ops.InvertOp(ids[i], ids[j]))
		}
	}

	// Relocations: segment length 1..n-2 so at least one legal anchor
	// exists besides pred(x).
	inPlaceTransvert := p.Transvert < p.Invert
	var k, compLen int
	for i = 0; i < n; i++ {
		for length = 1; length <= n-2; length++ {
			j = (i + length - 1) % n
			x, y := ids[i], ids[j]
			after := (i + length) % n   // position of succ(y)
			before := (i - 1 + n) % n   // position of pred(x)
			for k = after; k != before; k = (k + 1) % n {
				z := ids[k]

				// Transpose symmetry: the complement instance moves
				// succ(y)..z after pred(x); emit exactly one of the pair.
				compLen = (k-after+n)%n + 1
				if length < compLen || (length == compLen && x < ids[after]) {
					out = append(out, ops.TransposeOp(x, y, z))
				}

				out = append(out, ops.TransvertOp(x, y, z))
			}
			if inPlaceTransvert {
				out = append(out, ops.TransvertOp(x, y, ids[before]))
			}
		}
	}

	return out
}
