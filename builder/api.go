// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildTable(numNodes, bopts, cons...). Creates the
//     table, resolves cfg, runs cons in order, then optionally shuffles.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical tables.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cuckatoo/edges"
)

// Constructor appends edges to t using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Take nodes from cfg.alloc when they promise disjointness.
//   - Emit edges in a stable, documented order.
type Constructor func(t *edges.Table, cfg builderConfig) error

// BuildTable creates an edges.Table with numNodes nodes per side, resolves
// the builder configuration from bopts, and applies all constructors in
// order. Any constructor error is wrapped with the context "BuildTable: %w"
// and returned immediately; no partial table is returned.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
//   - Shuffle: O(E) time and space.
func BuildTable(numNodes uint64, bopts []BuilderOption, cons ...Constructor) (*edges.Table, error) {
	t := edges.NewTable(numNodes)

	cfg := newBuilderConfig(bopts...)
	cfg.alloc = newNodeAllocator(numNodes)

	for i, fn := range cons {
		// Reject a nil constructor to avoid a panic later (programmer error).
		if fn == nil {
			return nil, fmt.Errorf("BuildTable: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTable: %w", err)
		}
	}

	if cfg.shuffle {
		if err := shuffleTable(t, cfg); err != nil {
			return nil, fmt.Errorf("BuildTable: %w", err)
		}
	}

	return t, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// PlantedCycle builds a simple cycle of the given even length (≥ 4) over
// length/2 fresh U nodes and length/2 fresh V nodes.
// Complexity: O(length).
//func PlantedCycle(length int) Constructor

// Path builds an acyclic alternating path of n ≥ 1 edges over fresh nodes.
// Complexity: O(n).
//func Path(n int) Constructor

// Pendants attaches count edges, each with one fresh degree-1 endpoint, to
// nodes already present in the table.
// Complexity: O(count).
//func Pendants(count int) Constructor

// CompleteBipartite builds K_{n1,n2} over n1 fresh U and n2 fresh V nodes.
// Complexity: O(n1*n2).
//func CompleteBipartite(n1, n2 int) Constructor

// RandomSparse adds count edges with endpoints drawn uniformly from the
// whole node range. Requires cfg.rng != nil.
// Complexity: O(count).
//func RandomSparse(count int) Constructor
