// Package search finds a minimum-cost rearrangement plan between two
// circular oriented genomes over the operation space of the ops package:
// inversion (cost 1), transposition and transversion (cost 2 each, under
// the default 2:1 weighting; any positive profile is accepted).
//
// Algorithm: A* over genome states.
//
//   - Frontier: a container/heap min-queue ordered by f = g + h with
//     deterministic tie-breaking, using "lazy decrease-key": cheaper
//     rediscoveries push duplicates and stale entries are skipped on pop,
//     the same strategy as the dijkstra-style relaxation.
//   - Duplicate avoidance: states are keyed by canonical signature
//     (rotation-normalized; mirror-folded when WithMirrorEquivalence is
//     set). Per signature the lowest cost seen is recorded; any
//     re-derivation at equal or higher cost is discarded, cheaper ones
//     reopen the state, so optimality holds even for an inconsistent
//     (but admissible) heuristic.
//   - Heuristic: NewBreakpointBound, an admissible lower bound from the
//     breakpoint count (see heuristic.go); Zero degrades the search to
//     uniform-cost/Dijkstra and is always valid.
//   - Branching control: symmetric and dominated operation
//     instantiations are filtered before expansion; see candidates in
//     search.go for the exact rules.
//   - Budgets: an optional node limit and a soft time limit with sparse
//     deadline checks (every 4096 pops). Exceeding either reports
//     ErrNoPlanWithinBound, which is recoverable (retry with a larger
//     bound) and is NOT a proof of unsolvability; only frontier
//     exhaustion without a budget hit is.
//
// Goal test: the current genome's canonical signature equals the goal's.
// Whether mirror reflection (reversing the clockwise reading direction)
// counts as equivalent is a modelling choice the caller makes explicitly
// with WithMirrorEquivalence; the default keeps mirrors distinct. The
// goal test and the duplicate table always use the same choice.
//
// Concurrency: expansion is sequential and deterministic, matching the
// rest of the library. Each explored branch owns a private genome clone,
// so no operation is ever observed mid-mutation. Parallel expansion
// would additionally need an atomic insert-if-cheaper duplicate table;
// the state per node is already self-contained for that.
//
// Complexity: the state space is exponential in genome size (this is an
// exact search); practical speed comes from the admissible bound, the
// duplicate table, and symmetry filtering. Per expansion: O(n³)
// candidate operations, each applied to an O(n) clone.
package search
