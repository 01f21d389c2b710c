// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// impl_random_sparse.go - implementation of RandomSparse(count) constructor.
//
// Model:
//   - Each edge draws U and V independently and uniformly from [0, numNodes),
//     mirroring the shape of a keyed graph at small scale.
//
// Contract:
//   - count ≥ 1 (else ErrTooFewEdges).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Ignores the node allocator: random edges may touch planted components.
//     Planted cycles still survive trimming, since extra edges only raise
//     node degrees.
//
// Determinism:
//   - Draw order is U then V per edge, edges in emission order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cuckatoo/edges"
)

// RandomSparse returns a Constructor that samples count uniform random edges.
func RandomSparse(count int) Constructor {
	return func(t *edges.Table, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast, zero side-effects on invalid input).
		if err := validateMin(methodRandomSparse, count, minRandomEdges); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Sample edges in a stable order.
		n := t.NumNodes()
		if n == 0 {
			return fmt.Errorf("%s: empty node range: %w", methodRandomSparse, ErrNodesExhausted)
		}
		rng := cfg.rng
		for i := 0; i < count; i++ {
			u := rng.Uint64() % n
			v := rng.Uint64() % n
			if err := addEdge(methodRandomSparse, t, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
