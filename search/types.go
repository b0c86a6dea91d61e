// Package search: result types, sentinel errors, and configuration
// options for plan search.
package search

import (
	"errors"
	"time"

	"github.com/katalvlaran/genecycle/genome"
	"github.com/katalvlaran/genecycle/ops"
)

// Sentinel errors returned by FindPlan.
var (
	// ErrNilGenome indicates a nil start or goal genome.
	ErrNilGenome = errors.New("search: genome is nil")

	// ErrGeneSetMismatch indicates start and goal are defined over
	// different gene sets; no operation sequence can connect them.
	ErrGeneSetMismatch = errors.New("search: start and goal gene sets differ")

	// ErrBadProfile indicates a cost profile with a non-positive entry.
	ErrBadProfile = errors.New("search: profile costs must be positive")

	// ErrBadEstimator indicates the heuristic returned a negative bound.
	ErrBadEstimator = errors.New("search: heuristic returned a negative estimate")

	// ErrNoPlanWithinBound indicates the search ended without reaching the
	// goal. Recoverable: retry with a larger node/time budget. Only the
	// "frontier exhausted" form proves unsolvability.
	ErrNoPlanWithinBound = errors.New("search: no plan found within bound")
)

// Step is one operation of a plan with its cost under the plan's profile.
type Step struct {
	Op   ops.Operation
	Cost int64
}

// Plan is an ordered operation sequence transforming start into goal,
// plus search diagnostics.
type Plan struct {
	// Steps in application order; empty when start already equals goal.
	Steps []Step

	// Cost is the total weighted cost: the sum of the steps' costs.
	Cost int64

	// Expanded counts the states expanded before the goal was reached.
	Expanded int
}

// Estimator is an admissible lower bound on the remaining weighted cost
// from the given genome to the goal: it must never exceed the true
// optimal remaining cost, and must be non-negative.
type Estimator func(*genome.Genome) (int64, error)

// Zero is the trivial admissible estimator; it degrades A* to
// uniform-cost (Dijkstra) search.
func Zero(*genome.Genome) (int64, error) { return 0, nil }

// Options configures FindPlan.
//
// Profile    – cost accounting for operations (default ops.Monolithic).
// Estimator  – heuristic lower bound; nil selects NewBreakpointBound
//              built from the goal genome and the profile.
// NodeLimit  – maximum states to expand; 0 means unbounded.
// TimeLimit  – soft wall-clock budget; 0 means unbounded.
// Mirror     – fold mirror reflection into state equivalence (goal test
//              and duplicate table alike). Default false: a genome and
//              its mirror are distinct states.
type Options struct {
	Profile   ops.Profile
	Estimator Estimator
	NodeLimit int
	TimeLimit time.Duration
	Mirror    bool
}

// Option is a functional option for configuring FindPlan.
type Option func(*Options)

// WithProfile selects the cost accounting profile.
func WithProfile(p ops.Profile) Option {
	return func(o *Options) { o.Profile = p }
}

// WithEstimator overrides the heuristic. Pass Zero for uniform-cost
// search. The estimator must be admissible for plans to be optimal.
func WithEstimator(e Estimator) Option {
	return func(o *Options) { o.Estimator = e }
}

// WithNodeLimit caps the number of expanded states.
// Must be non-negative; panics otherwise (invalid configuration).
func WithNodeLimit(n int) Option {
	if n < 0 {
		panic("search: NodeLimit must be non-negative")
	}

	return func(o *Options) { o.NodeLimit = n }
}

// WithTimeLimit sets a soft wall-clock budget for the search.
// Must be non-negative; panics otherwise (invalid configuration).
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("search: TimeLimit must be non-negative")
	}

	return func(o *Options) { o.TimeLimit = d }
}

// WithMirrorEquivalence treats a genome and its mirror reflection as the
// same state, for both the goal test and duplicate detection.
func WithMirrorEquivalence() Option {
	return func(o *Options) { o.Mirror = true }
}

// DefaultOptions returns the baseline configuration: monolithic 1/2/2
// profile, breakpoint-bound heuristic, no budgets, mirrors distinct.
func DefaultOptions() Options {
	return Options{
		Profile:   ops.Monolithic,
		Estimator: nil,
		NodeLimit: 0,
		TimeLimit: 0,
		Mirror:    false,
	}
}
