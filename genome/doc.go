// Package genome defines the central Gene and Genome types and provides
// thread-safe primitives for building, querying, mutating, and cloning
// circular oriented gene orders.
//
// A Genome is a finite set of genes arranged in exactly one directed
// cycle via the clockwise successor relation. Every gene is present
// exactly once and carries an orientation (Normal or Inverted). The
// single-cycle invariant (the successor relation is a total bijection
// forming one cycle, no sub-cycles, no open ends) is established by New
// and re-checkable at any time via Validate.
//
// Three layers of API live here:
//
//   - Accessors: Len, Has, Succ, Pred, Orientation, Genes, Segment.
//   - Betweenness: Between / NotBetween, segment-membership predicates
//     over the clockwise cycle, backed by a positional index that is
//     rebuilt lazily after structural mutation (O(n) rebuild, O(1) per
//     query). See between.go for the contract and the trade-off note.
//   - Mutation primitives: Link, Unlink, Flip. Low-level link surgery
//     for the ops and stepwise packages. A surgery sequence may leave
//     the genome temporarily partial; callers restore the invariant
//     before handing the genome back to readers, and Validate verifies.
//
// Canonical signatures (canonical.go) normalize away the cycle's
// rotational freedom (and, optionally, mirror reflection) so that two
// genomes can be compared for structural equality in O(n).
//
// All APIs use a sync.RWMutex internally, so a fully-linked genome can
// be read from multiple goroutines. Mutation is single-owner by
// convention: each search branch clones its own copy.
//
// Errors (sentinel):
//
//	– ErrEmptyGenome   if a genome is constructed from no genes.
//	– ErrEmptyGeneID   if a gene ID is the empty string.
//	– ErrDuplicateGene if the same gene ID appears twice.
//	– ErrGeneNotFound  if an operation references an absent gene.
//	– ErrUnlinkedGene  if a link query hits a gene whose link was cut.
//	– ErrBrokenCycle   if the single-cycle invariant does not hold.
package genome
