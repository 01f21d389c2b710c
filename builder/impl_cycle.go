// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// impl_cycle.go - implementation of PlantedCycle(length) constructor.
//
// Contract:
//   • length even and ≥ 4 (else ErrOddLength / ErrTooFewEdges).
//   • Takes k = length/2 fresh nodes on each side: u_0..u_{k-1}, v_0..v_{k-1}.
//   • Emits edges in stable order (u_j, v_j), (u_{j+1 mod k}, v_j) for j=0..k-1,
//     so consecutive edge indices walk the cycle.
//
// Complexity:
//   • Time: O(length). Space: O(length) for the allocated node ids.

package builder

import (
	"github.com/katalvlaran/cuckatoo/edges"
)

// PlantedCycle returns a Constructor that embeds a simple cycle of the given
// length on nodes no other constructor touches.
func PlantedCycle(length int) Constructor {
	return func(t *edges.Table, cfg builderConfig) error {
		// Validate parameter domain early (fail fast, no work on invalid input).
		if err := validateCycleLength(methodPlantedCycle, length); err != nil {
			return err
		}

		k := uint64(length / 2)
		us, err := cfg.alloc.take(methodPlantedCycle, edges.U, k)
		if err != nil {
			return err
		}
		vs, err := cfg.alloc.take(methodPlantedCycle, edges.V, k)
		if err != nil {
			return err
		}

		// Walk u_0 → v_0 → u_1 → v_1 → … → v_{k-1} → u_0.
		for j := uint64(0); j < k; j++ {
			if err = addEdge(methodPlantedCycle, t, us[j], vs[j]); err != nil {
				return err
			}
			if err = addEdge(methodPlantedCycle, t, us[(j+1)%k], vs[j]); err != nil {
				return err
			}
		}

		return nil
	}
}
