package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/cuckatoo/cycles"
	"github.com/katalvlaran/cuckatoo/edges"
	"github.com/katalvlaran/cuckatoo/keys"
	"github.com/katalvlaran/cuckatoo/siphash"
	"github.com/katalvlaran/cuckatoo/trimmer"
)

// Result describes one attempt.
type Result struct {
	AttemptID uuid.UUID
	// Keys is zero for attempts on an explicit Source.
	Keys           siphash.Keys
	EdgesBefore    uint64
	EdgesAfter     uint64
	Rounds         int
	Cycles         []cycles.Cycle
	TrimDuration   time.Duration
	SearchDuration time.Duration
}

// Solved reports whether at least one cycle was found.
func (r *Result) Solved() bool { return len(r.Cycles) > 0 }

// Proofs returns each cycle in published (ascending) form.
func (r *Result) Proofs() [][]uint64 {
	out := make([][]uint64, len(r.Cycles))
	for i, c := range r.Cycles {
		out[i] = c.Sorted()
	}

	return out
}

// Option configures an Engine.
type Option func(*Engine)

// WithMemoryProbe replaces the operating-system memory probe.
func WithMemoryProbe(p MemoryProbe) Option {
	if p == nil {
		panic("engine: WithMemoryProbe(nil)")
	}
	return func(e *Engine) { e.probe = p }
}

// WithLogger sets the logger passed down to every stage.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine runs attempts for one validated Config. It is not safe for
// concurrent use; run one Engine per goroutine.
type Engine struct {
	cfg    Config
	params edges.Params
	log    zerolog.Logger
	probe  MemoryProbe
	stats  Stats
}

// New validates cfg and checks that its bitmaps fit in memory.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	e := &Engine{cfg: cfg, log: zerolog.Nop(), probe: SystemMemory}
	for _, opt := range opts {
		opt(e)
	}

	params, err := edges.NewParams(cfg.EdgeBits)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	e.params = params

	required, budget, err := checkMemory(cfg, e.probe)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	e.log.Debug().
		Uint("edge_bits", cfg.EdgeBits).
		Uint64("required_bytes", required).
		Uint64("budget_bytes", budget).
		Msg("memory check passed")

	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Params returns the graph shape.
func (e *Engine) Params() edges.Params { return e.params }

// Stats returns a snapshot of the accumulated attempt statistics.
func (e *Engine) Stats() Stats { return e.stats }

// SolveHeader derives keys from header and nonce and solves that graph.
func (e *Engine) SolveHeader(ctx context.Context, header []byte, nonce uint64) (*Result, error) {
	return e.Solve(ctx, keys.Derive(header, nonce))
}

// Solve runs one attempt on the graph keyed by k.
func (e *Engine) Solve(ctx context.Context, k siphash.Keys) (*Result, error) {
	res, err := e.solve(ctx, edges.NewGenerator(e.params, k))
	if res != nil {
		res.Keys = k
	}

	return res, err
}

// SolveSource runs one attempt on an explicit edge source. The source's
// size is not checked against EdgeBits.
func (e *Engine) SolveSource(ctx context.Context, src edges.Source) (*Result, error) {
	return e.solve(ctx, src)
}

func (e *Engine) solve(ctx context.Context, src edges.Source) (*Result, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, fmt.Errorf("solve: attempt id: %w", err)
	}
	log := e.log.With().Str("attempt", id.String()).Logger()
	res := &Result{AttemptID: id}

	start := time.Now()
	tr, err := trimmer.New(src,
		trimmer.WithRounds(e.cfg.TrimRounds),
		trimmer.WithContext(ctx),
		trimmer.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	trimmed, err := tr.Run()
	res.TrimDuration = time.Since(start)
	if trimmed != nil {
		res.EdgesBefore, res.EdgesAfter, res.Rounds = trimmed.EdgesBefore, trimmed.EdgesAfter, trimmed.Rounds
	}
	if err != nil {
		return res, fmt.Errorf("solve: trim: %w", err)
	}

	start = time.Now()
	found, err := cycles.Find(src, tr.Alive(),
		cycles.WithLength(e.cfg.CycleLength),
		cycles.WithMaxSolutions(e.cfg.MaxSolutions),
		cycles.WithMaxEdges(e.cfg.MaxSearchEdges),
		cycles.WithContext(ctx),
		cycles.WithLogger(log),
	)
	res.SearchDuration = time.Since(start)
	res.Cycles = found
	if err != nil {
		return res, fmt.Errorf("solve: search: %w", err)
	}

	e.stats.Add(res)
	log.Info().
		Uint64("edges_before", res.EdgesBefore).
		Uint64("edges_after", res.EdgesAfter).
		Int("rounds", res.Rounds).
		Int("cycles", len(res.Cycles)).
		Dur("trim", res.TrimDuration).
		Dur("search", res.SearchDuration).
		Msg("attempt complete")

	return res, nil
}
