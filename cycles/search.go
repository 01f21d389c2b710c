package cycles

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cuckatoo/bitmap"
	"github.com/katalvlaran/cuckatoo/edges"
)

// ctxCheckEvery is how many walk extensions run between context checks.
const ctxCheckEvery = 256

// Find returns the cycles of the configured length formed by alive edges of
// src, each in canonical walk order. An empty alive-set yields nil and no
// error; a search that finds nothing yields an empty result and no error.
//
// Cycles are recorded as the walk closes them, so MaxSolutions bounds both
// the result and the work done. On cancellation Find returns the cycles
// found so far together with the context error.
//
// Every cycle is independently replayed by Verify before being returned. A
// replay failure aborts the search with ErrUnverifiedCycle.
func Find(src edges.Source, alive *bitmap.Bitmap, opts ...Option) ([]Cycle, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("Find: %w", o.err)
	}
	if alive.Len() != src.NumEdges() {
		return nil, fmt.Errorf("Find: alive len=%d numEdges=%d: %w", alive.Len(), src.NumEdges(), ErrAliveSize)
	}
	n := alive.Count()
	if n == 0 {
		return nil, nil
	}
	if o.MaxEdges > 0 && n > o.MaxEdges {
		return nil, fmt.Errorf("Find: %d alive edges, limit %d: %w", n, o.MaxEdges, ErrTooManyEdges)
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, fmt.Errorf("Find: %w", err)
	}

	g := buildGraph(src, alive)
	found := make([]Cycle, 0)
	seen := make(map[string]struct{})
	log := o.Logger

	s := newSearch(o.Ctx, g, o.Length)
	s.emit = func(walk []uint64) error {
		c := canonical(walk)
		k := key(c)
		if _, dup := seen[k]; dup {
			return nil
		}
		if err := Verify(src, c, o.Length); err != nil {
			log.Error().Err(err).Str("cycle", k).Msg("search produced invalid cycle")
			return fmt.Errorf("cycle [%s]: %w: %w", k, ErrUnverifiedCycle, err)
		}
		seen[k] = struct{}{}
		found = append(found, c)
		log.Debug().Uint64("min_edge", c[0]).Int("found", len(found)).Msg("cycle found")

		if o.MaxSolutions > 0 && len(found) >= o.MaxSolutions {
			return errEnough
		}
		return nil
	}

	for i := range g.edges {
		if g.size[g.comp[i]] < o.Length {
			continue
		}
		if err := s.from(i); err != nil {
			if errors.Is(err, errEnough) {
				break
			}
			return found, fmt.Errorf("Find: %w", err)
		}
	}

	log.Debug().
		Int("alive", len(g.edges)).
		Int("components", len(g.size)).
		Uint64("steps", s.steps).
		Int("cycles", len(found)).
		Msg("search complete")

	return found, nil
}

// errEnough unwinds the walk once MaxSolutions cycles are recorded.
var errEnough = errors.New("cycles: solution limit reached")

// search holds the per-walk state reused across start edges.
type search struct {
	g      *graph
	length int
	ctx    context.Context

	// emit receives every closed walk. The slice is reused; emit must copy
	// it to keep it. A non-nil error stops the search.
	emit func(walk []uint64) error

	visited [2]*bitmap.Bitmap // per side, over compact node ids
	dist    [2][]int32        // edges from home, over edges above start
	queue   []nodeRef
	path    []uint64
	start   uint64 // index of the start edge
	home    uint32 // compact U node the walk must close on
	steps   uint64 // extensions so far, across all start edges
	err     error
}

func newSearch(ctx context.Context, g *graph, length int) *search {
	return &search{
		g:      g,
		length: length,
		ctx:    ctx,
		visited: [2]*bitmap.Bitmap{
			bitmap.MustNew(uint64(len(g.adj[edges.U]))),
			bitmap.MustNew(uint64(len(g.adj[edges.V]))),
		},
		dist: [2][]int32{
			make([]int32, len(g.adj[edges.U])),
			make([]int32, len(g.adj[edges.V])),
		},
		path: make([]uint64, 0, length),
	}
}

// from emits every cycle whose minimum edge is g.edges[i]. Walks leave
// the start edge's U node through the start edge itself, so each such
// cycle is produced exactly once.
func (s *search) from(i int) error {
	e := s.g.edges[i]
	s.start = e.index
	s.home = e.node[edges.U]
	s.path = append(s.path[:0], e.index)
	s.err = nil
	s.distances()

	s.visited[edges.U].Set(uint64(s.home))
	s.visited[edges.V].Set(uint64(e.node[edges.V]))
	s.extend(edges.V, e.node[edges.V])
	s.visited[edges.U].Clear(uint64(s.home))
	s.visited[edges.V].Clear(uint64(e.node[edges.V]))

	return s.err
}

// extend continues the walk from node on side, which the last edge in
// s.path entered. It returns early once s.err is set.
func (s *search) extend(side edges.Side, node uint32) {
	s.steps++
	if s.steps%ctxCheckEvery == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return
		}
	}
	other := side.Other()
	closing := len(s.path) == s.length-1

	for _, he := range s.g.adj[side][node] {
		if he.edge <= s.start {
			continue
		}
		if closing {
			// The closing edge goes V → U and must land on home.
			if other == edges.U && he.other == s.home {
				s.path = append(s.path, he.edge)
				s.err = s.emit(s.path)
				s.path = s.path[:len(s.path)-1]
				if s.err != nil {
					return
				}
			}
			continue
		}
		if s.visited[other].Test(uint64(he.other)) {
			continue
		}
		// Too far from home to close in the edges left.
		if int(s.dist[other][he.other]) > s.length-len(s.path)-1 {
			continue
		}

		s.visited[other].Set(uint64(he.other))
		s.path = append(s.path, he.edge)
		s.extend(other, he.other)
		s.path = s.path[:len(s.path)-1]
		s.visited[other].Clear(uint64(he.other))
		if s.err != nil {
			return
		}
	}
}

// distances labels every node within s.length edges of home with its
// distance, using only edges above the start edge. Other nodes get
// s.length+1. A walk can close only through nodes whose distance fits in
// the edges it has left.
func (s *search) distances() {
	far := int32(s.length + 1)
	for side := range s.dist {
		for i := range s.dist[side] {
			s.dist[side][i] = far
		}
	}

	s.dist[edges.U][s.home] = 0
	s.queue = append(s.queue[:0], nodeRef{edges.U, s.home})
	for head := 0; head < len(s.queue); head++ {
		cur := s.queue[head]
		d := s.dist[cur.side][cur.node]
		if int(d) >= s.length {
			continue
		}
		other := cur.side.Other()
		for _, he := range s.g.adj[cur.side][cur.node] {
			if he.edge <= s.start || s.dist[other][he.other] != far {
				continue
			}
			s.dist[other][he.other] = d + 1
			s.queue = append(s.queue, nodeRef{other, he.other})
		}
	}
}
