package edges

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cuckatoo/siphash"
)

// ErrTooManyEdges is returned by Collect when the source exceeds the limit.
var ErrTooManyEdges = errors.New("edges: edge count exceeds limit")

// Source is a graph whose edges are addressed by index in [0, NumEdges).
// Endpoint must be deterministic and safe to call repeatedly.
type Source interface {
	NumEdges() uint64
	// NumNodes is the number of nodes per side.
	NumNodes() uint64
	// Endpoint returns the node of edge i on side s, in [0, NumNodes).
	Endpoint(i uint64, s Side) uint64
}

// Edge is a materialised edge.
type Edge struct {
	Index uint64
	U, V  uint64
}

// String renders the edge as "index:(u,v)".
func (e Edge) String() string { return fmt.Sprintf("%d:(%d,%d)", e.Index, e.U, e.V) }

// Endpoint returns e's node on side s.
func (e Edge) Endpoint(s Side) uint64 {
	if s == U {
		return e.U
	}

	return e.V
}

// Generator is the keyed edge source of a Cuckatoo graph.
type Generator struct {
	params Params
	keys   siphash.Keys
}

// NewGenerator returns the edge source for keys over a graph of shape p.
func NewGenerator(p Params, k siphash.Keys) *Generator {
	return &Generator{params: p, keys: k}
}

// Params returns the graph shape.
func (g *Generator) Params() Params { return g.params }

// Keys returns the SipHash keys.
func (g *Generator) Keys() siphash.Keys { return g.keys }

// NumEdges implements Source.
func (g *Generator) NumEdges() uint64 { return g.params.NumEdges }

// NumNodes implements Source.
func (g *Generator) NumNodes() uint64 { return g.params.NumNodes }

// Endpoint implements Source: Hash24(keys, 2i+s) masked to the node range.
func (g *Generator) Endpoint(i uint64, s Side) uint64 {
	return siphash.Hash24(&g.keys, i<<1|uint64(s)) & g.params.NodeMask
}

// At materialises edge i of src.
func At(src Source, i uint64) Edge {
	return Edge{Index: i, U: src.Endpoint(i, U), V: src.Endpoint(i, V)}
}

// Each calls fn for every edge of src in index order until fn returns false.
func Each(src Source, fn func(Edge) bool) {
	n := src.NumEdges()
	for i := uint64(0); i < n; i++ {
		if !fn(At(src, i)) {
			return
		}
	}
}

// Collect materialises all edges of src. It refuses sources with more than
// limit edges so a full-size graph is never accidentally loaded.
func Collect(src Source, limit uint64) ([]Edge, error) {
	n := src.NumEdges()
	if n > limit {
		return nil, fmt.Errorf("Collect: numEdges=%d limit=%d: %w", n, limit, ErrTooManyEdges)
	}
	out := make([]Edge, 0, n)
	Each(src, func(e Edge) bool {
		out = append(out, e)
		return true
	})

	return out, nil
}
