// Package genome: central types, sentinel errors, and the constructor.
//
// This file declares Orientation, GeneID, Gene, Genome, the package's
// sentinel errors, and New, the only way to obtain a valid Genome.
package genome

import (
	"errors"
	"sync"
)

// Sentinel errors for genome construction and queries.
var (
	// ErrEmptyGenome indicates that New was given no genes.
	ErrEmptyGenome = errors.New("genome: genome must contain at least one gene")

	// ErrEmptyGeneID indicates that a gene carries an empty ID.
	ErrEmptyGeneID = errors.New("genome: gene ID is empty")

	// ErrDuplicateGene indicates that the same gene ID appears more than once.
	ErrDuplicateGene = errors.New("genome: duplicate gene ID")

	// ErrGeneNotFound indicates an operation referenced a non-existent gene.
	ErrGeneNotFound = errors.New("genome: gene not found")

	// ErrUnlinkedGene indicates a link query on a gene whose clockwise link
	// has been cut by Unlink and not yet restored.
	ErrUnlinkedGene = errors.New("genome: gene has no clockwise link")

	// ErrBrokenCycle indicates the successor relation does not form exactly
	// one cycle over all present genes.
	ErrBrokenCycle = errors.New("genome: successor relation is not a single cycle")
)

// Orientation is the reading direction of a gene on the cycle.
type Orientation uint8

const (
	// Normal is the reference reading direction.
	Normal Orientation = iota

	// Inverted is the reverse-complement reading direction.
	Inverted
)

// Flip returns the opposite orientation.
func (o Orientation) Flip() Orientation {
	if o == Normal {
		return Inverted
	}

	return Normal
}

// String renders the orientation as the conventional sign: "+" or "-".
func (o Orientation) String() string {
	if o == Inverted {
		return "-"
	}

	return "+"
}

// GeneID uniquely identifies a gene within its Genome.
type GeneID string

// Gene is one oriented gene: a stable identity plus a reading direction.
type Gene struct {
	// ID is the unique identifier of this gene.
	ID GeneID

	// Orient is the gene's current reading direction.
	Orient Orientation
}

// Genome is a circular, oriented gene order.
//
// The clockwise order is stored as a pair of maps (succ, pred) kept
// mutually consistent on every fully-applied mutation, plus a per-gene
// orientation map. The anchor is the lexicographically smallest gene ID,
// fixed at construction; it seeds deterministic iteration and canonical
// signatures. The positional index (pos) caches each gene's clockwise
// offset from the anchor and is rebuilt lazily after structural mutation.
type Genome struct {
	mu sync.RWMutex

	succ   map[GeneID]GeneID
	pred   map[GeneID]GeneID
	orient map[GeneID]Orientation

	// anchor is the smallest gene ID; stable across all mutations because
	// genes are never added or removed after construction.
	anchor GeneID

	// posMu guards pos/posFresh for concurrent readers holding mu.RLock.
	posMu    sync.Mutex
	pos      map[GeneID]int
	posFresh bool
}

// New builds a Genome from genes listed in clockwise order.
//
// Validation (in order):
//  1. order must be non-empty (ErrEmptyGenome).
//  2. every gene ID must be non-empty (ErrEmptyGeneID).
//  3. gene IDs must be unique (ErrDuplicateGene).
//
// The resulting genome links order[i] → order[i+1] and order[n-1] →
// order[0], establishing the single-cycle invariant by construction.
//
// Complexity: O(n) time and space.
func New(order []Gene) (*Genome, error) {
	// 1) Shape validation.
	if len(order) == 0 {
		return nil, ErrEmptyGenome
	}

	n := len(order)
	g := &Genome{
		succ:   make(map[GeneID]GeneID, n),
		pred:   make(map[GeneID]GeneID, n),
		orient: make(map[GeneID]Orientation, n),
	}

	// 2) Per-gene validation and orientation registry.
	var gene Gene
	for _, gene = range order {
		if gene.ID == "" {
			return nil, ErrEmptyGeneID
		}
		if _, dup := g.orient[gene.ID]; dup {
			return nil, ErrDuplicateGene
		}
		g.orient[gene.ID] = gene.Orient
		if g.anchor == "" || gene.ID < g.anchor {
			g.anchor = gene.ID
		}
	}

	// 3) Close the cycle in the listed clockwise order.
	var i int
	for i = 0; i < n; i++ {
		next := order[(i+1)%n].ID
		g.succ[order[i].ID] = next
		g.pred[next] = order[i].ID
	}

	return g, nil
}
