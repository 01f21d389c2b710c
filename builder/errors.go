// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using %w.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewEdges indicates that a size parameter is smaller than the allowed
// minimum for the requested constructor.
// Usage: if errors.Is(err, ErrTooFewEdges) { /* report invalid size */ }.
var ErrTooFewEdges = errors.New("builder: parameter too small")

// ErrOddLength indicates a cycle length that cannot exist in a bipartite
// graph.
var ErrOddLength = errors.New("builder: cycle length must be even")

// ErrNeedRandSource indicates that a stochastic constructor or option
// requires a non-nil *rand.Rand (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrNodesExhausted indicates the table has no fresh nodes left on a side
// for a constructor that needs disjoint nodes.
var ErrNodesExhausted = errors.New("builder: node range exhausted")

// ErrConstructFailed indicates a structural failure while assembling the
// table (nil constructor, rejected edge, failed shuffle).
var ErrConstructFailed = errors.New("builder: construction failed")
