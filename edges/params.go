package edges

import (
	"errors"
	"fmt"
)

// Structural limits on edgeBits. Operational limits are narrower and are
// enforced by the engine.
const (
	MinEdgeBits = 1
	MaxEdgeBits = 63
)

// ErrEdgeBits is returned for edgeBits outside [MinEdgeBits, MaxEdgeBits].
var ErrEdgeBits = errors.New("edges: edgeBits out of range")

// Side names one partition of the bipartite graph.
type Side uint8

const (
	// U is the partition addressed by even hash nonces.
	U Side = iota
	// V is the partition addressed by odd hash nonces.
	V
)

// Other returns the opposite partition.
func (s Side) Other() Side { return s ^ 1 }

// String returns "U" or "V".
func (s Side) String() string {
	if s == U {
		return "U"
	}

	return "V"
}

// Params describes the size of a graph. All fields are derived from EdgeBits;
// build it with NewParams.
type Params struct {
	EdgeBits uint
	NumEdges uint64 // 2^EdgeBits
	NumNodes uint64 // per side, NumEdges/2
	NodeMask uint64 // NumNodes-1
}

// NewParams validates edgeBits and derives the remaining fields.
func NewParams(edgeBits uint) (Params, error) {
	if edgeBits < MinEdgeBits || edgeBits > MaxEdgeBits {
		return Params{}, fmt.Errorf("NewParams: edgeBits=%d not in [%d,%d]: %w",
			edgeBits, MinEdgeBits, MaxEdgeBits, ErrEdgeBits)
	}
	numEdges := uint64(1) << edgeBits
	numNodes := numEdges >> 1

	return Params{
		EdgeBits: edgeBits,
		NumEdges: numEdges,
		NumNodes: numNodes,
		NodeMask: numNodes - 1,
	}, nil
}
