// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic: no RNG, no shuffle.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors; alloc is shared by pointer so that
// consecutive constructors draw disjoint nodes.
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Permute edge indices once construction is complete.
	shuffle bool
	// Fresh-node source, bound by BuildTable.
	alloc *nodeAllocator
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,   // no RNG unless explicitly set
		shuffle: false, // keep emission order
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
