// Package genecycle is your in-memory toolkit for circular genome
// rearrangement — from the cyclic gene-order algebra up to cost-optimal
// edit-distance search.
//
// 🚀 What is genecycle?
//
//	A deterministic, zero-dependency library that brings together:
//		• Core primitives: build circular oriented gene orders, mutate safely under locks
//		• Betweenness: segment-membership queries over the clockwise cycle
//		• Rearrangement operations: inversion, transposition, transversion — validated & reversible
//		• Stepwise execution: each operation as an auditable micro-step transaction
//		• Edit distance: A* search with admissible breakpoint lower bounds
//
// ✨ Why choose genecycle?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – single-cycle invariant checked, strict sentinel errors
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – same inputs, same plan, every run
//
// Under the hood, everything is organized under four subpackages:
//
//	genome/   — Gene, Genome, betweenness, canonical signatures & thread-safe primitives
//	ops/      — invert / transpose / transvert with cost profiles and explicit inverses
//	stepwise/ — per-operation state machine: begin → micro-steps → end, with pending-work bookkeeping
//	search/   — cost-optimal plan search (A*) with breakpoint heuristics and resource budgets
//
// Quick ASCII example:
//
//	    A → B → C → D
//	    ↑           │
//	    └───────────┘
//
//	a circular genome of four genes; Invert(B, C) turns it into A → C̄ → B̄ → D at cost 1.
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/genecycle
package genecycle
