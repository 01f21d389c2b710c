package edges

import (
	"errors"
	"fmt"
)

// Table errors.
var (
	ErrNodeOutOfRange = errors.New("edges: node out of range")
	ErrPermutation    = errors.New("edges: invalid permutation")
)

// Table is an explicit edge list. Edge indices are assigned in Add order.
//
// Unlike a Generator, NumEdges is the number of edges added, so a Table need
// not satisfy NumEdges == 2*NumNodes.
type Table struct {
	numNodes uint64
	us, vs   []uint64
}

// NewTable returns an empty table whose sides each hold numNodes nodes.
func NewTable(numNodes uint64) *Table {
	return &Table{numNodes: numNodes}
}

// Add appends the edge (u, v) and returns its index.
func (t *Table) Add(u, v uint64) (uint64, error) {
	if u >= t.numNodes || v >= t.numNodes {
		return 0, fmt.Errorf("Add: (%d,%d) numNodes=%d: %w", u, v, t.numNodes, ErrNodeOutOfRange)
	}
	t.us = append(t.us, u)
	t.vs = append(t.vs, v)

	return uint64(len(t.us) - 1), nil
}

// NumEdges implements Source.
func (t *Table) NumEdges() uint64 { return uint64(len(t.us)) }

// NumNodes implements Source.
func (t *Table) NumNodes() uint64 { return t.numNodes }

// Endpoint implements Source.
func (t *Table) Endpoint(i uint64, s Side) uint64 {
	if s == U {
		return t.us[i]
	}

	return t.vs[i]
}

// Edges returns a copy of all edges in index order.
func (t *Table) Edges() []Edge {
	out := make([]Edge, len(t.us))
	for i := range t.us {
		out[i] = Edge{Index: uint64(i), U: t.us[i], V: t.vs[i]}
	}

	return out
}

// Permute moves the edge at index i to index perm[i]. perm must be a
// permutation of [0, NumEdges).
func (t *Table) Permute(perm []uint64) error {
	n := len(t.us)
	if len(perm) != n {
		return fmt.Errorf("Permute: len=%d numEdges=%d: %w", len(perm), n, ErrPermutation)
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p >= uint64(n) || seen[p] {
			return fmt.Errorf("Permute: target %d: %w", p, ErrPermutation)
		}
		seen[p] = true
	}

	us := make([]uint64, n)
	vs := make([]uint64, n)
	for i, p := range perm {
		us[p] = t.us[i]
		vs[p] = t.vs[i]
	}
	t.us, t.vs = us, vs

	return nil
}
