// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 edges (else ErrTooFewEdges).
//   • Takes ⌊n/2⌋+1 fresh U nodes and ⌈n/2⌉ fresh V nodes, then emits
//     u_0-v_0, u_1-v_0, u_1-v_1, u_2-v_1, … in that order.
//   • Both ends of the path have degree 1, so lean trimming removes the
//     whole path from the outside in.

package builder

import (
	"github.com/katalvlaran/cuckatoo/edges"
)

// Path returns a Constructor that emits an alternating path of n edges.
func Path(n int) Constructor {
	return func(t *edges.Table, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathEdges); err != nil {
			return err
		}

		// Edge e joins u_{⌈e/2⌉} and v_{⌊e/2⌋}.
		numU := uint64(n/2 + 1)
		numV := uint64((n + 1) / 2)
		us, err := cfg.alloc.take(methodPath, edges.U, numU)
		if err != nil {
			return err
		}
		vs, err := cfg.alloc.take(methodPath, edges.V, numV)
		if err != nil {
			return err
		}

		for e := 0; e < n; e++ {
			if err = addEdge(methodPath, t, us[(e+1)/2], vs[e/2]); err != nil {
				return err
			}
		}

		return nil
	}
}
