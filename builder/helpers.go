package builder

import (
	"fmt"

	"github.com/katalvlaran/cuckatoo/edges"
)

// nodeAllocator hands out never-used node ids per side, in ascending order.
type nodeAllocator struct {
	numNodes uint64
	next     [2]uint64 // indexed by edges.Side
}

func newNodeAllocator(numNodes uint64) *nodeAllocator {
	return &nodeAllocator{numNodes: numNodes}
}

// take returns n fresh nodes on side s.
func (a *nodeAllocator) take(method string, s edges.Side, n uint64) ([]uint64, error) {
	if a.numNodes-a.next[s] < n {
		return nil, fmt.Errorf("%s: need %d %s nodes, %d left: %w",
			method, n, s, a.numNodes-a.next[s], ErrNodesExhausted)
	}
	out := make([]uint64, n)
	for i := range out {
		out[i] = a.next[s]
		a.next[s]++
	}

	return out, nil
}

// addEdge appends (u,v) to t with method context on failure.
func addEdge(method string, t *edges.Table, u, v uint64) error {
	if _, err := t.Add(u, v); err != nil {
		return fmt.Errorf("%s: %w: %w", method, ErrConstructFailed, err)
	}

	return nil
}

// shuffleTable permutes t's edge indices with rng.
func shuffleTable(t *edges.Table, cfg builderConfig) error {
	if cfg.rng == nil {
		return fmt.Errorf("%s: %w", methodShuffle, ErrNeedRandSource)
	}
	n := int(t.NumEdges())
	perm := make([]uint64, n)
	for i, p := range cfg.rng.Perm(n) {
		perm[i] = uint64(p)
	}
	if err := t.Permute(perm); err != nil {
		return fmt.Errorf("%s: %w: %w", methodShuffle, ErrConstructFailed, err)
	}

	return nil
}
