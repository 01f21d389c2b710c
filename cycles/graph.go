package cycles

import (
	"github.com/katalvlaran/cuckatoo/bitmap"
	"github.com/katalvlaran/cuckatoo/edges"
)

// halfEdge is one entry of a node's adjacency list: the edge and the
// compact id of its endpoint on the opposite side.
type halfEdge struct {
	edge  uint64
	other uint32
}

// nodeRef names a compact node on one side.
type nodeRef struct {
	side edges.Side
	node uint32
}

// aliveEdge is an alive edge with compact endpoint ids.
type aliveEdge struct {
	index uint64
	node  [2]uint32 // indexed by edges.Side
}

// graph is the adjacency view of the alive edges. Node ids are compacted
// per side to [0, len(adj[s])), so per-walk bitmaps scale with the alive
// graph rather than the full node range.
type graph struct {
	edges []aliveEdge     // ascending by index
	adj   [2][][]halfEdge // adj[side][node]
	comp  []int32         // component id per entry of edges
	size  []int           // edge count per component
}

// buildGraph reads the endpoints of every alive edge once.
func buildGraph(src edges.Source, alive *bitmap.Bitmap) *graph {
	g := &graph{edges: make([]aliveEdge, 0, alive.Count())}
	ids := [2]map[uint64]uint32{{}, {}}

	compact := func(s edges.Side, n uint64) uint32 {
		id, ok := ids[s][n]
		if !ok {
			id = uint32(len(g.adj[s]))
			ids[s][n] = id
			g.adj[s] = append(g.adj[s], nil)
		}
		return id
	}

	alive.Each(func(i uint64) bool {
		var e aliveEdge
		e.index = i
		e.node[edges.U] = compact(edges.U, src.Endpoint(i, edges.U))
		e.node[edges.V] = compact(edges.V, src.Endpoint(i, edges.V))
		g.edges = append(g.edges, e)

		g.adj[edges.U][e.node[edges.U]] = append(g.adj[edges.U][e.node[edges.U]], halfEdge{i, e.node[edges.V]})
		g.adj[edges.V][e.node[edges.V]] = append(g.adj[edges.V][e.node[edges.V]], halfEdge{i, e.node[edges.U]})
		return true
	})

	g.components()

	return g
}

// components labels connected components by breadth-first search over
// both sides and counts the edges in each.
func (g *graph) components() {
	label := [2][]int32{
		make([]int32, len(g.adj[edges.U])),
		make([]int32, len(g.adj[edges.V])),
	}
	for s := range label {
		for i := range label[s] {
			label[s][i] = -1
		}
	}

	var queue []nodeRef
	next := int32(0)
	for _, e := range g.edges {
		root := e.node[edges.U]
		if label[edges.U][root] >= 0 {
			continue
		}
		// new component
		label[edges.U][root] = next
		queue = append(queue[:0], nodeRef{edges.U, root})
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			other := cur.side.Other()
			for _, he := range g.adj[cur.side][cur.node] {
				if label[other][he.other] < 0 {
					label[other][he.other] = next
					queue = append(queue, nodeRef{other, he.other})
				}
			}
		}
		next++
	}

	g.size = make([]int, next)
	g.comp = make([]int32, len(g.edges))
	for i, e := range g.edges {
		c := label[edges.U][e.node[edges.U]]
		g.comp[i] = c
		g.size[c]++
	}
}
