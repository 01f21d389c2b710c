// SPDX-License-Identifier: MIT
// Package: cuckatoo/builder
//
// impl_pendants.go - implementation of Pendants(count) constructor.
//
// Contract:
//   • count ≥ 1 (else ErrTooFewEdges).
//   • Pendant p anchors on the edge with index p mod E (E = edges present
//     when the constructor starts). Even p hangs a fresh V leaf off that
//     edge's U node; odd p hangs a fresh U leaf off its V node.
//   • On an empty table each pendant is an isolated edge (both endpoints fresh).
//   • Every pendant has a degree-1 endpoint, so one full trimming round
//     removes all of them.

package builder

import (
	"github.com/katalvlaran/cuckatoo/edges"
)

// Pendants returns a Constructor that hangs count leaf edges off the
// existing table.
func Pendants(count int) Constructor {
	return func(t *edges.Table, cfg builderConfig) error {
		if err := validateMin(methodPendants, count, minPendants); err != nil {
			return err
		}

		base := t.NumEdges()
		for p := uint64(0); p < uint64(count); p++ {
			var u, v uint64
			switch {
			case base == 0:
				// Nothing to anchor on: isolated edge.
				us, err := cfg.alloc.take(methodPendants, edges.U, 1)
				if err != nil {
					return err
				}
				vs, err := cfg.alloc.take(methodPendants, edges.V, 1)
				if err != nil {
					return err
				}
				u, v = us[0], vs[0]
			case p%2 == 0:
				vs, err := cfg.alloc.take(methodPendants, edges.V, 1)
				if err != nil {
					return err
				}
				u, v = t.Endpoint(p%base, edges.U), vs[0]
			default:
				us, err := cfg.alloc.take(methodPendants, edges.U, 1)
				if err != nil {
					return err
				}
				u, v = us[0], t.Endpoint(p%base, edges.V)
			}
			if err := addEdge(methodPendants, t, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}
