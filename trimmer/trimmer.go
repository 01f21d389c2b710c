package trimmer

import (
	"fmt"
	mbits "math/bits"

	"github.com/katalvlaran/cuckatoo/bitmap"
	"github.com/katalvlaran/cuckatoo/edges"
)

// RoundStats describes one full round.
type RoundStats struct {
	Round    int    // 1-based
	RemovedU uint64 // edges removed by the U half-round
	RemovedV uint64 // edges removed by the V half-round
	Alive    uint64 // alive edges after the round
}

// Removed returns the total number of edges removed in the round.
func (s RoundStats) Removed() uint64 { return s.RemovedU + s.RemovedV }

// Result summarises a Run.
type Result struct {
	EdgesBefore uint64
	EdgesAfter  uint64
	// Rounds is the number of full rounds completed.
	Rounds int
	// Fixpoint is true if Run stopped because a round removed nothing.
	Fixpoint bool
	PerRound []RoundStats
}

// Trimmer holds the bitmaps of one trimming session. It is not safe for
// concurrent use.
type Trimmer struct {
	src  edges.Source
	opts Options

	alive     *bitmap.Bitmap // one bit per edge
	seenOnce  *bitmap.Bitmap // one bit per node on the current side
	seenMulti *bitmap.Bitmap
}

// New allocates the bitmaps for src. Unless WithAlive is given, every edge
// starts alive.
func New(src edges.Source, opts ...Option) (*Trimmer, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("New: %w", o.err)
	}

	alive := o.Alive
	if alive == nil {
		var err error
		if alive, err = bitmap.New(src.NumEdges()); err != nil {
			return nil, fmt.Errorf("New: alive: %w", err)
		}
		alive.SetAll()
	} else if alive.Len() != src.NumEdges() {
		return nil, fmt.Errorf("New: alive len=%d numEdges=%d: %w", alive.Len(), src.NumEdges(), ErrAliveSize)
	}

	once, err := bitmap.New(src.NumNodes())
	if err != nil {
		return nil, fmt.Errorf("New: seenOnce: %w", err)
	}
	multi, err := bitmap.New(src.NumNodes())
	if err != nil {
		return nil, fmt.Errorf("New: seenMulti: %w", err)
	}

	return &Trimmer{src: src, opts: o, alive: alive, seenOnce: once, seenMulti: multi}, nil
}

// Alive returns the alive-set. Callers must not modify it while the Trimmer
// is in use.
func (t *Trimmer) Alive() *bitmap.Bitmap { return t.alive }

// HalfRound kills every alive edge whose node on side s has exactly one
// alive incident edge, and returns how many edges it killed.
func (t *Trimmer) HalfRound(s edges.Side) uint64 {
	t.seenOnce.Reset()
	t.seenMulti.Reset()

	// Pass 1: degree ≥ 2 detection.
	t.eachAlive(func(i uint64) {
		n := t.src.Endpoint(i, s)
		if t.seenOnce.TestAndSet(n) {
			t.seenMulti.Set(n)
		}
	})

	// Pass 2: drop edges whose node was seen only once.
	var removed uint64
	t.eachAlive(func(i uint64) {
		if !t.seenMulti.Test(t.src.Endpoint(i, s)) {
			t.alive.Clear(i)
			removed++
		}
	})

	return removed
}

// Round runs one U half-round then one V half-round.
func (t *Trimmer) Round() (removedU, removedV uint64) {
	removedU = t.HalfRound(edges.U)
	removedV = t.HalfRound(edges.V)

	return removedU, removedV
}

// Run trims for up to the configured number of rounds. On context
// cancellation it returns the partial Result together with the context
// error.
func (t *Trimmer) Run() (*Result, error) {
	log := t.opts.Logger
	res := &Result{EdgesBefore: t.alive.Count()}
	res.EdgesAfter = res.EdgesBefore

	for r := 1; r <= t.opts.Rounds; r++ {
		if err := t.opts.Ctx.Err(); err != nil {
			return res, fmt.Errorf("Run: round %d: %w", r, err)
		}
		st := RoundStats{Round: r}
		st.RemovedU = t.HalfRound(edges.U)

		if err := t.opts.Ctx.Err(); err != nil {
			res.EdgesAfter -= st.RemovedU
			return res, fmt.Errorf("Run: round %d after U: %w", r, err)
		}
		st.RemovedV = t.HalfRound(edges.V)

		res.EdgesAfter -= st.Removed()
		st.Alive = res.EdgesAfter
		res.Rounds = r
		res.PerRound = append(res.PerRound, st)

		log.Debug().
			Int("round", r).
			Uint64("removed_u", st.RemovedU).
			Uint64("removed_v", st.RemovedV).
			Uint64("alive", st.Alive).
			Msg("trim round")

		if err := t.opts.OnRound(st); err != nil {
			return res, fmt.Errorf("Run: round %d hook: %w", r, err)
		}
		if st.Removed() == 0 && t.opts.StopAtFixpoint {
			res.Fixpoint = true
			break
		}
	}

	return res, nil
}

// eachAlive visits alive edge indices in ascending order. fn may clear the
// bit it is handed.
func (t *Trimmer) eachAlive(fn func(i uint64)) {
	for wi, w := range t.alive.Words() {
		base := uint64(wi) << 6
		for w != 0 {
			tz := mbits.TrailingZeros64(w)
			fn(base + uint64(tz))
			w &= w - 1
		}
	}
}
