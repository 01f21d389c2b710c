// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2).
//
// Contract:
//   • n1 ≥ 1, n2 ≥ 1 (else ErrTooFewEdges).
//   • Takes n1 fresh U nodes and n2 fresh V nodes.
//   • Emits edges in row-major order: for i in [0,n1), j in [0,n2): (u_i, v_j).
//
// Complexity:
//   • Time: O(n1*n2) edges.
//
// K_{2,2} is the smallest graph with a 4-cycle; K_{3,3} contains nine
// 4-cycles and six 6-cycles, which makes it a good stress fixture for
// duplicate suppression in the cycle search.

package builder

import (
	"github.com/katalvlaran/cuckatoo/edges"
)

// CompleteBipartite returns a Constructor that emits every U-V pair between
// n1 fresh U nodes and n2 fresh V nodes.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(t *edges.Table, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, n1, minPartition); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, n2, minPartition); err != nil {
			return err
		}

		us, err := cfg.alloc.take(methodCompleteBipartite, edges.U, uint64(n1))
		if err != nil {
			return err
		}
		vs, err := cfg.alloc.take(methodCompleteBipartite, edges.V, uint64(n2))
		if err != nil {
			return err
		}

		for _, u := range us {
			for _, v := range vs {
				if err = addEdge(methodCompleteBipartite, t, u, v); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
