package cycles

import (
	"fmt"

	"github.com/katalvlaran/cuckatoo/edges"
)

// Verify replays c against src and reports whether it is a simple cycle of
// exactly length edges. Endpoints are recomputed from the Source; nothing
// from a previous search is trusted.
//
// c may start at any edge and run in either direction: the side shared by
// its first two edges fixes the alternation pattern for the rest.
func Verify(src edges.Source, c Cycle, length int) error {
	if src == nil {
		return ErrNilSource
	}
	if err := validLength(length); err != nil {
		return fmt.Errorf("Verify: %w", err)
	}
	if len(c) != length {
		return fmt.Errorf("Verify: got %d edges, want %d: %w", len(c), length, ErrLength)
	}

	n := src.NumEdges()
	seen := make(map[uint64]struct{}, length)
	ends := make([]edges.Edge, length)
	for i, e := range c {
		if e >= n {
			return fmt.Errorf("Verify: edge %d at position %d, numEdges=%d: %w", e, i, n, ErrEdgeIndex)
		}
		if _, dup := seen[e]; dup {
			return fmt.Errorf("Verify: edge %d at position %d: %w", e, i, ErrDuplicateEdge)
		}
		seen[e] = struct{}{}
		ends[i] = edges.At(src, e)
	}

	// Side shared by c[0] and c[1].
	side := edges.U
	if ends[0].U != ends[1].U {
		side = edges.V
	}

	nodes := [2]map[uint64]struct{}{
		make(map[uint64]struct{}, length/2),
		make(map[uint64]struct{}, length/2),
	}
	for i := 0; i < length; i++ {
		cur, next := ends[i], ends[(i+1)%length]
		shared := cur.Endpoint(side)
		if shared != next.Endpoint(side) {
			if i == length-1 {
				return fmt.Errorf("Verify: last edge %d does not meet first edge %d on %s: %w",
					cur.Index, next.Index, side, ErrNotClosed)
			}
			return fmt.Errorf("Verify: edges %d and %d share no %s node: %w",
				cur.Index, next.Index, side, ErrBroken)
		}
		if _, dup := nodes[side][shared]; dup {
			return fmt.Errorf("Verify: %s node %d: %w", side, shared, ErrRepeatedNode)
		}
		nodes[side][shared] = struct{}{}
		side = side.Other()
	}

	return nil
}

// VerifyProof checks a proof in published form: length edge indices in
// strictly ascending order that together form a single cycle in which
// every node is touched by exactly two proof edges.
func VerifyProof(src edges.Source, proof []uint64, length int) error {
	if src == nil {
		return ErrNilSource
	}
	if err := validLength(length); err != nil {
		return fmt.Errorf("VerifyProof: %w", err)
	}
	if len(proof) != length {
		return fmt.Errorf("VerifyProof: got %d edges, want %d: %w", len(proof), length, ErrLength)
	}

	n := src.NumEdges()
	// uvs[2k] is the U node of proof[k], uvs[2k+1] its V node.
	uvs := make([]uint64, 2*length)
	for k, e := range proof {
		if e >= n {
			return fmt.Errorf("VerifyProof: edge %d, numEdges=%d: %w", e, n, ErrEdgeIndex)
		}
		if k > 0 && e <= proof[k-1] {
			if e == proof[k-1] {
				return fmt.Errorf("VerifyProof: edge %d: %w", e, ErrDuplicateEdge)
			}
			return fmt.Errorf("VerifyProof: edge %d after %d: %w", e, proof[k-1], ErrUnsorted)
		}
		uvs[2*k] = src.Endpoint(e, edges.U)
		uvs[2*k+1] = src.Endpoint(e, edges.V)
	}

	// Follow the cycle: from endpoint i, find the unique other endpoint j on
	// the same side with the same node, then cross that edge (j^1).
	steps, i := 0, 0
	for {
		j := i
		for k := (i + 2) % (2 * length); k != i; k = (k + 2) % (2 * length) {
			if uvs[k] != uvs[i] {
				continue
			}
			if j != i {
				return fmt.Errorf("VerifyProof: node %d touched more than twice: %w", uvs[i], ErrRepeatedNode)
			}
			j = k
		}
		if j == i {
			return fmt.Errorf("VerifyProof: dead end at edge %d: %w", proof[i/2], ErrBroken)
		}
		i = j ^ 1
		steps++
		if i == 0 {
			break
		}
	}
	if steps != length {
		return fmt.Errorf("VerifyProof: cycle of %d edges, want %d: %w", steps, length, ErrShortCycle)
	}

	return nil
}
